package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/Alia5/bookpictures/fileio"
	"github.com/Alia5/bookpictures/textproc"
)

// ProcessText groups the text preparation commands.
type ProcessText struct {
	Length              TextLength          `cmd:"" help:"Count the characters of a text"`
	ReplaceEnters       ReplaceEnters       `cmd:"" help:"Replace line breaks with spaces"`
	StripWhitespaces    StripWhitespaces    `cmd:"" help:"Remove all whitespace"`
	RemoveMatchingLines RemoveMatchingLines `cmd:"" help:"Drop lines matching a regular expression"`
}

// TextLength prints the number of characters of a text.
type TextLength struct {
	SourcePath string `arg:"" help:"The path to the source text"`
	Graphemes  bool   `help:"Count user-perceived characters instead of Unicode code points"`
	Format     string `help:"Output format" default:"text" enum:"text,json,yaml,toml"`
}

// LengthReport is the result of process-text length.
type LengthReport struct {
	Path       string `json:"path" yaml:"path" toml:"path"`
	Characters int    `json:"characters" yaml:"characters" toml:"characters"`
	Unit       string `json:"unit" yaml:"unit" toml:"unit"`
}

// Run is called by Kong when the length command is executed.
func (c *TextLength) Run(out io.Writer) error {
	n, err := countChars(c.SourcePath, c.Graphemes)
	if err != nil {
		return err
	}
	report := LengthReport{Path: c.SourcePath, Characters: n, Unit: "codepoints"}
	if c.Graphemes {
		report.Unit = "graphemes"
	}
	return writeReport(out, c.Format, report, func() string {
		return fmt.Sprintf("The total number of characters: %d", n)
	})
}

// ReplaceEnters turns every line break into a space.
type ReplaceEnters struct {
	SourcePath string `arg:"" help:"The path to the source text"`
	TargetPath string `help:"The path for the new text (default: text_without_enters.txt)"`
}

// Run is called by Kong when the replace-enters command is executed.
func (c *ReplaceEnters) Run(logger *slog.Logger) error {
	target := targetOr(c.TargetPath, DefaultReplaceEntersTarget)
	if err := transformText(c.SourcePath, target, textproc.ReplaceNewlines); err != nil {
		return err
	}
	logger.Info("Saved text", "path", target)
	return nil
}

// StripWhitespaces removes every whitespace character.
type StripWhitespaces struct {
	SourcePath string `arg:"" help:"The path to the source text"`
	TargetPath string `help:"The path for the new text (default: text_without_whitespaces.txt)"`
}

// Run is called by Kong when the strip-whitespaces command is executed.
func (c *StripWhitespaces) Run(logger *slog.Logger) error {
	target := targetOr(c.TargetPath, DefaultStripTarget)
	if err := transformText(c.SourcePath, target, textproc.StripWhitespace); err != nil {
		return err
	}
	logger.Info("Saved text", "path", target)
	return nil
}

// RemoveMatchingLines drops the lines that match a regular expression.
type RemoveMatchingLines struct {
	SourcePath string `arg:"" help:"The path to the source text"`
	Regex      string `help:"Lines matching this RE2 expression are removed" required:""`
	TargetPath string `help:"The path for the new text (default: text_with_lines_removed.txt)"`
}

// Run is called by Kong when the remove-matching-lines command is executed.
func (c *RemoveMatchingLines) Run(logger *slog.Logger) error {
	target := targetOr(c.TargetPath, DefaultRemoveLinesTarget)
	re, err := textproc.CompilePattern(c.Regex)
	if err != nil {
		return err
	}

	var removed int
	err = transformText(c.SourcePath, target, func(dst io.Writer, src io.Reader) error {
		var err error
		removed, err = textproc.RemoveMatchingLines(dst, src, re)
		return err
	})
	if err != nil {
		return err
	}
	logger.Info("Saved text", "path", target, "removed", removed)
	return nil
}

func transformText(source, target string, fn func(dst io.Writer, src io.Reader) error) error {
	f, err := fileio.Open(source)
	if err != nil {
		return err
	}
	defer f.Close()

	return fileio.WriteFile(target, func(w io.Writer) error {
		if err := fn(w, f); err != nil {
			return fmt.Errorf("process %s: %w", source, err)
		}
		return nil
	})
}

func countChars(path string, graphemes bool) (int, error) {
	f, err := fileio.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	var n int
	if graphemes {
		n, err = textproc.CountGraphemes(f)
	} else {
		n, err = textproc.CountRunes(f)
	}
	if err != nil {
		return 0, fileio.Unreadable(path, err)
	}
	return n, nil
}
