// Package textproc prepares the text that gets poured into a halftone grid.
package textproc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// ErrInvalidPattern is returned for regular expressions that fail to compile.
var ErrInvalidPattern = errors.New("invalid pattern")

// CountRunes returns the number of Unicode scalar values read from r.
// Each byte of an invalid UTF-8 sequence counts as one replacement character.
func CountRunes(r io.Reader) (int, error) {
	br := bufio.NewReader(r)
	n := 0
	for {
		_, _, err := br.ReadRune()
		if errors.Is(err, io.EOF) {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		n++
	}
}

// CountGraphemes returns the number of user-perceived characters in r.
func CountGraphemes(r io.Reader) (int, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	return uniseg.GraphemeClusterCount(string(b)), nil
}

// StripWhitespace copies src to dst without any whitespace.
func StripWhitespace(dst io.Writer, src io.Reader) error {
	return mapRunes(dst, src, func(r rune) (rune, bool) {
		return r, !unicode.IsSpace(r)
	})
}

// ReplaceNewlines copies src to dst with every '\n' and '\r' turned into a space.
func ReplaceNewlines(dst io.Writer, src io.Reader) error {
	return mapRunes(dst, src, func(r rune) (rune, bool) {
		if r == '\n' || r == '\r' {
			return ' ', true
		}
		return r, true
	})
}

func mapRunes(dst io.Writer, src io.Reader, fn func(rune) (rune, bool)) error {
	br := bufio.NewReader(src)
	bw := bufio.NewWriter(dst)
	for {
		r, _, err := br.ReadRune()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		if out, keep := fn(r); keep {
			if _, err := bw.WriteRune(out); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// CompilePattern compiles expr with the RE2 syntax of package regexp.
func CompilePattern(expr string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPattern, err)
	}
	return re, nil
}

// RemoveMatchingLines copies every line of src that re does not match to dst.
// Kept lines are terminated with '\n'.
func RemoveMatchingLines(dst io.Writer, src io.Reader, re *regexp.Regexp) (removed int, err error) {
	sc := bufio.NewScanner(src)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	bw := bufio.NewWriter(dst)
	for sc.Scan() {
		line := sc.Text()
		if re.MatchString(line) {
			removed++
			continue
		}
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return removed, err
		}
	}
	if err := sc.Err(); err != nil {
		return removed, err
	}
	return removed, bw.Flush()
}

// Search returns the lines of contents that contain query.
func Search(query, contents string) []string {
	var out []string
	for line := range strings.Lines(contents) {
		line = strings.TrimRight(line, "\r\n")
		if strings.Contains(line, query) {
			out = append(out, line)
		}
	}
	return out
}

// SearchInsensitive is Search with Unicode case folding.
func SearchInsensitive(query, contents string) []string {
	query = strings.ToLower(query)
	var out []string
	for line := range strings.Lines(contents) {
		line = strings.TrimRight(line, "\r\n")
		if strings.Contains(strings.ToLower(line), query) {
			out = append(out, line)
		}
	}
	return out
}
