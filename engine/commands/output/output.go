// Package output encodes command results and writes them to stdout or a file.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Format is an output encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// fileMode restricts written files to the owner since the output holds signer keys.
const fileMode = 0o600

// ParseFormat parses a format name. "yml" is accepted as an alias of yaml.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported output format %q, must be one of yaml, json", s)
	}
}

// Encode encodes v in the given format. The output ends with a newline.
func Encode(v any, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode json: %w", err)
		}

		return append(b, '\n'), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)

		if err := enc.Encode(v); err != nil {
			return nil, fmt.Errorf("failed to encode yaml: %w", err)
		}

		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to encode yaml: %w", err)
		}

		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
}

// Emit writes data to outPath when it is set and prints it to the command output when toStdout is
// true.
func Emit(cmd *cobra.Command, data []byte, outPath string, toStdout bool) error {
	if outPath != "" {
		if err := os.WriteFile(outPath, data, fileMode); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
	}

	if toStdout {
		if _, err := cmd.OutOrStdout().Write(data); err != nil {
			return fmt.Errorf("failed to print output: %w", err)
		}
	}

	return nil
}
