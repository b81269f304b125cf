package cmd

import (
	"fmt"
	"io"

	"github.com/Alia5/bookpictures/fileio"
	"github.com/Alia5/bookpictures/textproc"
)

// Tutorial prints the lines of a file that contain a query.
type Tutorial struct {
	Query      string `arg:"" help:"The searched string"`
	FilePath   string `arg:"" help:"The target file"`
	IgnoreCase bool   `help:"Match regardless of case" env:"IGNORE_CASE"`
}

// Run is called by Kong when the tutorial command is executed.
func (c *Tutorial) Run(out io.Writer) error {
	contents, err := fileio.ReadFile(c.FilePath)
	if err != nil {
		return err
	}

	search := textproc.Search
	if c.IgnoreCase {
		search = textproc.SearchInsensitive
	}
	for _, line := range search(c.Query, string(contents)) {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}
