package main

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/Alia5/bookpictures/internal/cmd"
)

const (
	imageInputs   = "PNG, JPEG, GIF, BMP, WebP, TIFF or SVG"
	rasterOutputs = "PNG, JPEG, GIF, BMP or TIFF, chosen by the target extension"
	textInput     = "UTF-8 text"
	reportOutput  = "a report on stdout (text, json, yaml or toml)"
)

// fileNote tells what a command reads, what it writes and where by default.
type fileNote struct {
	reads, writes, target string
}

// fileNotes is keyed by the command path without aliases, e.g. "process-text length".
var fileNotes = map[string]fileNote{
	"to-black-and-white":                 {reads: imageInputs, writes: rasterOutputs, target: cmd.DefaultGrayscaleTarget},
	"to-grid-image":                      {reads: imageInputs, writes: rasterOutputs, target: cmd.DefaultGridTarget},
	"find-distribution":                  {reads: imageInputs + "; " + textInput, writes: reportOutput},
	"create-custom-image":                {reads: imageInputs + "; " + textInput, writes: "SVG (.svg) or PNG (.png)", target: cmd.DefaultCustomImageTarget + " (" + cmd.DefaultCustomPNGTarget + " with --format=png)"},
	"process-text length":                {reads: textInput, writes: reportOutput},
	"process-text replace-enters":        {reads: textInput, writes: textInput, target: cmd.DefaultReplaceEntersTarget},
	"process-text strip-whitespaces":     {reads: textInput, writes: textInput, target: cmd.DefaultStripTarget},
	"process-text remove-matching-lines": {reads: textInput, writes: textInput, target: cmd.DefaultRemoveLinesTarget},
	"tutorial":                           {reads: textInput, writes: "matching lines on stdout"},
}

// helpPrinter prints kong's help followed by the files the selected command
// works with.
func helpPrinter(options kong.HelpOptions, ctx *kong.Context) error {
	if err := kong.DefaultHelpPrinter(options, ctx); err != nil {
		return err
	}
	_, err := fmt.Fprint(ctx.Stdout, filesSection(commandKey(ctx.Selected())))
	return err
}

func commandKey(n *kong.Node) string {
	var names []string
	for ; n != nil; n = n.Parent {
		if n.Type == kong.CommandNode {
			names = append(names, n.Name)
		}
	}
	slices.Reverse(names)
	return strings.Join(names, " ")
}

// filesSection details a leaf command, or lists the default targets of every
// command below key.
func filesSection(key string) string {
	var b strings.Builder
	if note, ok := fileNotes[key]; ok {
		b.WriteString("\nFiles:\n")
		fmt.Fprintf(&b, "  Reads:   %s\n", note.reads)
		fmt.Fprintf(&b, "  Writes:  %s\n", note.writes)
		if note.target != "" {
			fmt.Fprintf(&b, "  Default: %s\n", note.target)
		}
		return b.String()
	}

	for _, k := range slices.Sorted(maps.Keys(fileNotes)) {
		note := fileNotes[k]
		if note.target == "" || (key != "" && !strings.HasPrefix(k, key+" ")) {
			continue
		}
		if b.Len() == 0 {
			b.WriteString("\nDefault targets:\n")
		}
		fmt.Fprintf(&b, "  %-36s %s\n", k, note.target)
	}
	return b.String()
}
