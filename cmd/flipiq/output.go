package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/phrazzld/flipiq/internal/domain"
)

type outputFormat string

func (f *outputFormat) Set(val string) error {
	for _, format := range allFormats {
		if val == string(format) {
			*f = format
			return nil
		}
	}
	return fmt.Errorf("invalid output format: %s", val)
}

func (f outputFormat) String() string {
	return string(f)
}

func (f *outputFormat) Type() string {
	return "format"
}

const (
	formatText outputFormat = "text"
	formatJSON outputFormat = "json"
	formatYAML outputFormat = "yaml"
)

var (
	_          pflag.Value = (*outputFormat)(nil)
	allFormats             = []outputFormat{formatText, formatJSON, formatYAML}
)

// writeGuide prints guide to w in the requested format.
func writeGuide(w io.Writer, guide *domain.StudyGuide, format outputFormat, loc *time.Location) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(guide); err != nil {
			return fmt.Errorf("failed to encode guide as JSON: %w", err)
		}
		return nil
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(guide); err != nil {
			return fmt.Errorf("failed to encode guide as YAML: %w", err)
		}
		return enc.Close()
	default:
		return printGuideText(w, guide, loc)
	}
}
