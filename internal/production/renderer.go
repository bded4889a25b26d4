package production

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/comalice/turingx/internal/primitives"
	"github.com/comalice/turingx/internal/tape"
)

// TapeView is the read-only part of a machine needed for rendering.
type TapeView interface {
	Head() int
	Capacity() int
	Cells(origin, n int) ([]primitives.Symbol, error)
	Words() []uint
}

const (
	headOn  = "\x1b[32m\x1b[4m"
	headOff = "\x1b[0m"
)

// TapeRenderer prints tape contents as binary digits, with the head cell
// highlighted (ANSI green underline) or bracketed when Color is false.
type TapeRenderer struct {
	Color bool
}

// Render prints n cells starting at origin.
func (r *TapeRenderer) Render(v TapeView, origin, n int) (string, error) {
	cells, err := v.Cells(origin, n)
	if err != nil {
		return "", err
	}
	head := v.Head()
	var sb strings.Builder
	sb.Grow(n + 16)
	for i, c := range cells {
		if origin+i == head {
			sb.WriteString(r.mark(c))
			continue
		}
		sb.WriteString(c.String())
	}
	return sb.String(), nil
}

// RenderAll prints the whole tape.
func (r *TapeRenderer) RenderAll(v TapeView) (string, error) {
	return r.Render(v, 0, v.Capacity())
}

// RenderObserved prints the words from the first to the last non-zero word,
// widened by pad words on each side and always including the head's word.
func (r *TapeRenderer) RenderObserved(v TapeView, pad int) (string, error) {
	words := v.Words()
	headWord, _ := tape.Locate(v.Head(), tape.WordBits)
	first, last := headWord, headWord
	for i, w := range words {
		if w != 0 {
			first = min(first, i)
			last = max(last, i)
		}
	}
	first = max(first-pad, 0)
	last = min(last+pad, len(words)-1)
	return r.Render(v, first*tape.WordBits, (last-first+1)*tape.WordBits)
}

// Line prints "<state>: <observed tape>" as the step trace of a run.
func (r *TapeRenderer) Line(state string, v TapeView) string {
	body, err := r.RenderObserved(v, 0)
	if err != nil {
		body = "ERROR: " + err.Error()
	}
	return state + ": " + body
}

func (r *TapeRenderer) mark(c primitives.Symbol) string {
	if r.Color {
		return headOn + c.String() + headOff
	}
	return "[" + c.String() + "]"
}

// ExportDOT generates Graphviz DOT source for a program's transition graph.
// Terminal outcomes are drawn as double circles; the initial state is bold.
// current, if non-empty, names the highlighted state.
func ExportDOT(cfg primitives.ProgramConfig, current string) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph %q {\n", cfg.ID)
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=circle, fontsize=10];\n")
	buf.WriteString("  edge [fontsize=9];\n")

	for _, s := range cfg.States {
		attrs := []string{fmt.Sprintf("label=%q", s)}
		if s == cfg.Initial {
			attrs = append(attrs, "style=bold")
		}
		if s == current {
			attrs = append(attrs, "style=filled", "fillcolor=lightgreen")
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", s, strings.Join(attrs, ", "))
	}

	targets := lo.Uniq(lo.FilterMap(cfg.Rules, func(rc primitives.RuleConfig, _ int) (string, bool) {
		return rc.Next, primitives.IsReserved(rc.Next)
	}))
	sort.Strings(targets)
	for _, t := range targets {
		fmt.Fprintf(&buf, "  %q [shape=doublecircle];\n", t)
	}

	byState := lo.GroupBy(cfg.Rules, func(rc primitives.RuleConfig) string { return rc.State })
	for _, s := range cfg.States {
		for _, rc := range byState[s] {
			fmt.Fprintf(&buf, "  %q -> %q [label=\"%d/%d,%s\"];\n", rc.State, rc.Next, rc.Read, rc.Write, rc.Move)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// ExportJSON serializes the program config to JSON.
func ExportJSON(cfg primitives.ProgramConfig) ([]byte, error) {
	return json.MarshalIndent(cfg, "", "  ")
}
