package production

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/comalice/turingx/internal/primitives"
)

// programSchema constrains CUE program files before they are decoded.
// Definitions are closed recursively, so unknown fields are rejected inside
// rules as well as at the top level. Value checks (symbols, directions, tape
// syntax, references) are left to ProgramConfig.Validate so every format
// accepts the same spellings.
const programSchema = `
#Rule: {
	state: string
	read:  int
	write: int
	move:  string
	next:  string
}

#Program: {
	id:      string
	initial: string
	states:  [...string]
	tape?:   string
	rules:   *[] | [...#Rule]
}
`

func decodeCUE(data []byte, name string) (primitives.ProgramConfig, error) {
	var cfg primitives.ProgramConfig

	ctx := cuecontext.New()
	schema := ctx.CompileString(programSchema).LookupPath(cue.ParsePath("#Program"))
	if err := schema.Err(); err != nil {
		return cfg, fmt.Errorf("cue schema: %w", err)
	}

	value := ctx.CompileBytes(data, cue.Filename(name))
	if err := value.Err(); err != nil {
		return cfg, fmt.Errorf("cue compile %s: %w", name, err)
	}

	unified := schema.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return cfg, fmt.Errorf("cue validate %s: %w", name, err)
	}
	if err := unified.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("cue decode %s: %w", name, err)
	}
	return cfg, nil
}
