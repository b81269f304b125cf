package main

import (
	"bytes"
	"runtime/debug"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/bookpictures/internal/cmd"
	"github.com/Alia5/bookpictures/internal/config"
)

func TestFindUserConfig(t *testing.T) {
	t.Setenv("BOOKPICTURES_CONFIG", "")

	assert.Equal(t, "a.yaml", findUserConfig([]string{"--config=a.yaml", "tutorial"}))
	assert.Equal(t, "b.toml", findUserConfig([]string{"tutorial", "--config", "b.toml"}))
	assert.Equal(t, "", findUserConfig([]string{"tutorial", "--config"}))

	t.Setenv("BOOKPICTURES_CONFIG", "env.json")
	assert.Equal(t, "env.json", findUserConfig([]string{"tutorial"}))
}

func helpFor(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	var cli config.CLI
	parser, err := kong.New(&cli,
		kong.Name("bookpictures"),
		kong.Help(helpPrinter),
		kong.Writers(&out, &out),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)
	_, _ = parser.Parse(append(args, "--help"))
	return out.String()
}

func TestHelpShowsCommandFiles(t *testing.T) {
	tests := []struct {
		args []string
		want []string
	}{
		{args: []string{"to-grid-image"}, want: []string{"Reads:   " + imageInputs, "Default: " + cmd.DefaultGridTarget}},
		{args: []string{"create-custom-image"}, want: []string{"SVG (.svg) or PNG (.png)", cmd.DefaultCustomPNGTarget}},
		{args: []string{"process-text", "strip-whitespaces"}, want: []string{"Default: " + cmd.DefaultStripTarget}},
		{args: []string{"tutorial"}, want: []string{"Writes:  matching lines on stdout"}},
	}

	for _, tt := range tests {
		t.Run(tt.args[len(tt.args)-1], func(t *testing.T) {
			help := helpFor(t, tt.args...)
			for _, w := range tt.want {
				assert.Contains(t, help, w)
			}
		})
	}
}

func TestHelpListsDefaultTargets(t *testing.T) {
	help := helpFor(t)
	assert.Contains(t, help, "Default targets:")
	for _, target := range []string{cmd.DefaultGrayscaleTarget, cmd.DefaultGridTarget, cmd.DefaultRemoveLinesTarget} {
		assert.Contains(t, help, target)
	}
}

func TestFilesSectionForGroup(t *testing.T) {
	section := filesSection("process-text")
	assert.Contains(t, section, cmd.DefaultReplaceEntersTarget)
	assert.Contains(t, section, cmd.DefaultStripTarget)
	assert.NotContains(t, section, cmd.DefaultGridTarget)
	assert.NotContains(t, section, "process-text length")
}

func TestVersionString(t *testing.T) {
	assert.Equal(t, "dev", versionString(nil))
	assert.Equal(t, "dev", versionString(&debug.BuildInfo{Main: debug.Module{Version: "(devel)"}}))

	info := &debug.BuildInfo{
		Main: debug.Module{Version: "v1.2.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.modified", Value: "true"},
		},
	}
	assert.Equal(t, "v1.2.0 (0123456-dirty)", versionString(info))

	t.Cleanup(func() { version, commit = "", "" })
	version, commit = "v2.0.0", "cafe"
	assert.Equal(t, "v2.0.0 (cafe-dirty)", versionString(info))
}
