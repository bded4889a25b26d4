package main

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/samber/lo"

	"github.com/comalice/turingx/internal/production"
)

func openStore(dir string, format production.Format) (production.ProgramStore, error) {
	switch format {
	case production.FormatJSON:
		return production.NewJSONStore(dir)
	case production.FormatYAML:
		return production.NewYAMLStore(dir)
	}
	return nil, fmt.Errorf("%w: store %q", production.ErrUnknownFormat, format)
}

// importProgram loads and validates a program file, then saves it under its ID.
func importProgram(ctx context.Context, w io.Writer, path, dir string, format production.Format) error {
	cfg, err := production.LoadProgram(path)
	if err != nil {
		return err
	}
	store, err := openStore(dir, format)
	if err != nil {
		return err
	}
	if err := store.Save(ctx, cfg); err != nil {
		return err
	}
	fmt.Fprintf(w, "%s: saved to %s\n", cfg.ID, dir)
	return nil
}

// list prints the IDs of every JSON and YAML program in dir, loading each
// to report the ones that no longer validate.
func list(ctx context.Context, w io.Writer, dir string) error {
	var ids []string
	for _, format := range []production.Format{production.FormatJSON, production.FormatYAML} {
		store, err := openStore(dir, format)
		if err != nil {
			return err
		}
		found, err := store.List(ctx)
		if err != nil {
			return err
		}
		for _, id := range found {
			if _, err := store.Load(ctx, id); err != nil {
				fmt.Fprintf(w, "%s\t(%s, invalid: %v)\n", id, format, err)
				continue
			}
			ids = append(ids, id)
		}
	}
	ids = lo.Uniq(ids)
	sort.Strings(ids)
	for _, id := range ids {
		fmt.Fprintln(w, id)
	}
	return nil
}
