package production_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/turingx/internal/primitives"
	"github.com/comalice/turingx/internal/production"
	"github.com/comalice/turingx/testutil"
)

func TestLoadProgramFormats(t *testing.T) {
	want := testutil.UnaryConfig()
	for _, fn := range []string{"unary.yaml", "unary.cue"} {
		t.Run(fn, func(t *testing.T) {
			got, err := production.LoadProgram(filepath.Join("testdata", fn))
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestEncodeDecodeProgram(t *testing.T) {
	cfg := testutil.UnaryConfig()
	for _, format := range []production.Format{production.FormatJSON, production.FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			data, err := production.EncodeProgram(cfg, format)
			require.NoError(t, err)
			got, err := production.DecodeProgram(data, format, "mem")
			require.NoError(t, err)
			assert.Equal(t, cfg, got)
		})
	}

	_, err := production.EncodeProgram(cfg, production.FormatCUE)
	assert.ErrorIs(t, err, production.ErrUnknownFormat)
}

func TestDecodeProgramRejects(t *testing.T) {
	tests := []struct {
		name    string
		format  production.Format
		data    string
		wantErr error
	}{
		{
			name:   "unknown json field",
			format: production.FormatJSON,
			data:   `{"id":"x","initial":"a","states":["a"],"rules":[],"extra":1}`,
		},
		{
			name:   "unknown yaml field",
			format: production.FormatYAML,
			data:   "id: x\ninitial: a\nstates: [a]\nextra: 1\n",
		},
		{
			name:    "undefined initial",
			format:  production.FormatJSON,
			data:    `{"id":"x","initial":"b","states":["a"],"rules":[]}`,
			wantErr: primitives.ErrInvalidConfig,
		},
		{
			name:   "cue symbol out of range",
			format: production.FormatCUE,
			data:   `id: "x", initial: "a", states: ["a"], rules: [{state: "a", read: 2, write: 0, move: "R", next: "a"}]`,
		},
		{
			name:   "cue unknown field",
			format: production.FormatCUE,
			data:   `id: "x", initial: "a", states: ["a"], colour: "red"`,
		},
		{
			name:   "cue unknown rule field",
			format: production.FormatCUE,
			data:   `id: "x", initial: "a", states: ["a"], rules: [{state: "a", read: 0, write: 0, move: "R", next: "a", bogus: 7}]`,
		},
		{
			name:   "json unknown rule field",
			format: production.FormatJSON,
			data:   `{"id":"x","initial":"a","states":["a"],"rules":[{"state":"a","read":0,"write":0,"move":"R","next":"a","bogus":7}]}`,
		},
		{
			name:   "yaml unknown rule field",
			format: production.FormatYAML,
			data:   "id: x\ninitial: a\nstates: [a]\nrules:\n  - {state: a, read: 0, write: 0, move: R, next: a, bogus: 7}\n",
		},
		{
			name:    "cue bad direction",
			format:  production.FormatCUE,
			data:    `id: "x", initial: "a", states: ["a"], rules: [{state: "a", read: 0, write: 0, move: "up", next: "a"}]`,
			wantErr: primitives.ErrInvalidDirection,
		},
		{
			name:    "unknown format",
			format:  production.Format("toml"),
			data:    `id = "x"`,
			wantErr: production.ErrUnknownFormat,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := production.DecodeProgram([]byte(tt.data), tt.format, tt.name)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

// TestDecodeProgramSameInEveryFormat feeds one program, written with the
// less common direction and tape spellings, through all three codecs.
func TestDecodeProgramSameInEveryFormat(t *testing.T) {
	want := primitives.ProgramConfig{
		ID:      "spellings",
		Initial: "a",
		States:  []string{"a", "b"},
		Tape:    "10\t01\n1",
		Rules: []primitives.RuleConfig{
			{State: "a", Read: 0, Write: 1, Move: "-1", Next: "b"},
			{State: "a", Read: 1, Write: 1, Move: "+1", Next: "a"},
			{State: "b", Read: 0, Write: 0, Move: "<", Next: "halt"},
			{State: "b", Read: 1, Write: 0, Move: "=", Next: "terminate"},
		},
	}
	inputs := map[production.Format]string{
		production.FormatJSON: `{
  "id": "spellings", "initial": "a", "states": ["a", "b"], "tape": "10\t01\n1",
  "rules": [
    {"state": "a", "read": 0, "write": 1, "move": "-1", "next": "b"},
    {"state": "a", "read": 1, "write": 1, "move": "+1", "next": "a"},
    {"state": "b", "read": 0, "write": 0, "move": "<", "next": "halt"},
    {"state": "b", "read": 1, "write": 0, "move": "=", "next": "terminate"}
  ]
}`,
		production.FormatYAML: `id: spellings
initial: a
states: [a, b]
tape: "10\t01\n1"
rules:
  - {state: a, read: 0, write: 1, move: "-1", next: b}
  - {state: a, read: 1, write: 1, move: "+1", next: a}
  - {state: b, read: 0, write: 0, move: "<", next: halt}
  - {state: b, read: 1, write: 0, move: "=", next: terminate}
`,
		production.FormatCUE: `id: "spellings"
initial: "a"
states: ["a", "b"]
tape: "10\t01\n1"
rules: [
	{state: "a", read: 0, write: 1, move: "-1", next: "b"},
	{state: "a", read: 1, write: 1, move: "+1", next: "a"},
	{state: "b", read: 0, write: 0, move: "<", next: "halt"},
	{state: "b", read: 1, write: 0, move: "=", next: "terminate"},
]
`,
	}
	for format, data := range inputs {
		t.Run(string(format), func(t *testing.T) {
			got, err := production.DecodeProgram([]byte(data), format, "spellings")
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]production.Format{
		"a.json":     production.FormatJSON,
		"dir/b.YAML": production.FormatYAML,
		"c.yml":      production.FormatYAML,
		"d.cue":      production.FormatCUE,
	}
	for path, want := range tests {
		got, err := production.FormatFromPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got, path)
	}
	_, err := production.FormatFromPath("e.txt")
	assert.ErrorIs(t, err, production.ErrUnknownFormat)
}

func TestSaveProgram(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unary.json")
	cfg := testutil.UnaryConfig()
	require.NoError(t, production.SaveProgram(path, cfg))

	got, err := production.LoadProgram(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)

	bad := cfg
	bad.Initial = "nowhere"
	err = production.SaveProgram(filepath.Join(t.TempDir(), "bad.json"), bad)
	assert.ErrorIs(t, err, primitives.ErrInvalidConfig)
}

func TestFileStore(t *testing.T) {
	ctx := context.Background()
	for name, open := range map[string]func(string) (*production.FileStore, error){
		"json": production.NewJSONStore,
		"yaml": production.NewYAMLStore,
	} {
		t.Run(name, func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "programs")
			store, err := open(dir)
			require.NoError(t, err)

			unary := testutil.UnaryConfig()
			walk := testutil.LoopConfig()
			require.NoError(t, store.Save(ctx, walk))
			require.NoError(t, store.Save(ctx, unary))
			require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

			ids, err := store.List(ctx)
			require.NoError(t, err)
			assert.Equal(t, []string{"unary", "walk"}, ids)

			got, err := store.Load(ctx, "unary")
			require.NoError(t, err)
			assert.Equal(t, unary, got)

			_, err = store.Load(ctx, "missing")
			assert.True(t, errors.Is(err, os.ErrNotExist))
		})
	}
}

func TestFileStoreIDMismatch(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store, err := production.NewJSONStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, testutil.UnaryConfig()))
	require.NoError(t, os.Rename(filepath.Join(dir, "unary.json"), filepath.Join(dir, "other.json")))

	_, err = store.Load(ctx, "other")
	assert.ErrorIs(t, err, primitives.ErrInvalidConfig)
}

func TestFileStoreCanceled(t *testing.T) {
	store, err := production.NewJSONStore(t.TempDir())
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, store.Save(ctx, testutil.UnaryConfig()), context.Canceled)
	_, err = store.List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
