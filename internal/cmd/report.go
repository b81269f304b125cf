package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// Report formats understood by --format.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// writeReport prints v in the requested format. text renders the human form.
func writeReport(out io.Writer, format string, v any, text func() string) error {
	var (
		b   []byte
		err error
	)
	switch format {
	case FormatJSON:
		b, err = json.MarshalIndent(v, "", "  ")
		b = append(b, '\n')
	case FormatYAML:
		b, err = yaml.Marshal(v)
	case FormatTOML:
		b, err = toml.Marshal(v)
	case FormatText, "":
		_, err = fmt.Fprintln(out, text())
		return err
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return fmt.Errorf("encode %s report: %w", format, err)
	}
	_, err = out.Write(b)
	return err
}
