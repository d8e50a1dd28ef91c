package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

// property is one row of a two-column table.
type property struct {
	name  string
	value string
}

// render writes v as JSON or YAML, or props as a Property/Value table.
func render(w io.Writer, format string, v any, props []property) error {
	switch format {
	case OutputFormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(v); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		return nil
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(w)
		defer encoder.Close()
		if err := encoder.Encode(v); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return nil
	default:
		table := tablewriter.NewWriter(w)
		table.Header("Property", "Value")
		for _, p := range props {
			_ = table.Append(p.name, p.value)
		}
		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}
		return nil
	}
}
