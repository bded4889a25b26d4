// Package production provides production integrations: program file codecs
// and stores, tape and graph rendering, step publishing and trace export.
package production

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/comalice/turingx/internal/primitives"
)

// Format is a program file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCUE  Format = "cue"
)

// ErrUnknownFormat is returned for unsupported file extensions.
var ErrUnknownFormat = errors.New("unknown program format")

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".cue":
		return FormatCUE, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// DecodeProgram parses and validates a program. name is used in CUE positions
// and error messages.
func DecodeProgram(data []byte, format Format, name string) (primitives.ProgramConfig, error) {
	var cfg primitives.ProgramConfig
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return cfg, fmt.Errorf("json unmarshal %s: %w", name, err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return cfg, fmt.Errorf("yaml unmarshal %s: %w", name, err)
		}
	case FormatCUE:
		var err error
		if cfg, err = decodeCUE(data, name); err != nil {
			return cfg, err
		}
	default:
		return cfg, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", name, err)
	}
	return cfg, nil
}

// EncodeProgram serialises a program. CUE output is not supported; CUE files
// are hand-written.
func EncodeProgram(cfg primitives.ProgramConfig, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("json marshal: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("yaml marshal: %w", err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("%w: cannot encode %q", ErrUnknownFormat, format)
}

// LoadProgram reads a program file, choosing the codec by extension.
func LoadProgram(path string) (primitives.ProgramConfig, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return primitives.ProgramConfig{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return primitives.ProgramConfig{}, fmt.Errorf("read %s: %w", path, err)
	}
	return DecodeProgram(data, format, path)
}

// SaveProgram validates cfg and writes it, choosing the codec by extension.
func SaveProgram(path string, cfg primitives.ProgramConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	data, err := EncodeProgram(cfg, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
