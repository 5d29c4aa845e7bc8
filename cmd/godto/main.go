// Package main provides the godto CLI for validating documents against DTO
// schemas.
package main

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

func main() {
	Execute()
}

// writeValue encodes v to out as indented JSON or YAML.
func writeValue(out io.Writer, v any, format string) error {
	switch format {
	case "json", "":
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		b = append(b, '\n')
		_, err = out.Write(b)
		return err
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return enc.Close()
	}
	return fmt.Errorf("unsupported output format %q (want json or yaml)", format)
}
