package textproc_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/bookpictures/textproc"
)

func TestCountRunes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{name: "empty", in: "", want: 0},
		{name: "ascii", in: "hello world", want: 11},
		{name: "multibyte", in: "zażółć", want: 6},
		{name: "emoji", in: "a😀b", want: 3},
		{name: "invalid bytes", in: "a\xff\xfeb", want: 4},
		{name: "newlines count", in: "a\nb\r\n", want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := textproc.CountRunes(strings.NewReader(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCountRunesAcrossBufferBoundary(t *testing.T) {
	in := strings.Repeat("ł", 5000)
	got, err := textproc.CountRunes(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 5000, got)
}

func TestCountGraphemes(t *testing.T) {
	got, err := textproc.CountGraphemes(strings.NewReader("é🇵🇱x"))
	require.NoError(t, err)
	assert.Equal(t, 3, got)
}

func TestStripWhitespace(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, textproc.StripWhitespace(&out, strings.NewReader(" a b\tc\n dź\r\n")))
	assert.Equal(t, "abcdź", out.String())
}

func TestReplaceNewlines(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, textproc.ReplaceNewlines(&out, strings.NewReader("one\ntwo\r\nżółw\r")))
	assert.Equal(t, "one two  żółw ", out.String())
}

func TestCompilePattern(t *testing.T) {
	_, err := textproc.CompilePattern("(")
	assert.ErrorIs(t, err, textproc.ErrInvalidPattern)

	re, err := textproc.CompilePattern(`^\d+$`)
	require.NoError(t, err)
	assert.True(t, re.MatchString("123"))
}

func TestRemoveMatchingLines(t *testing.T) {
	re, err := textproc.CompilePattern(`^\s*\d+\s*$`)
	require.NoError(t, err)

	var out bytes.Buffer
	removed, err := textproc.RemoveMatchingLines(&out, strings.NewReader("Chapter\n12\nText here\n  13 \nend"), re)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	assert.Equal(t, "Chapter\nText here\nend\n", out.String())
}

const poem = `Gopher:
simple, fast, productive.
Pick three.
Duct tape.
Good to go.`

func TestSearch(t *testing.T) {
	if diff := cmp.Diff([]string{"simple, fast, productive."}, textproc.Search("duct", poem)); diff != "" {
		t.Errorf("Search mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, textproc.Search("absent", poem))
}

func TestSearchInsensitive(t *testing.T) {
	want := []string{"Gopher:", "Good to go."}
	if diff := cmp.Diff(want, textproc.SearchInsensitive("gO", poem)); diff != "" {
		t.Errorf("SearchInsensitive mismatch (-want +got):\n%s", diff)
	}
}
