// Package sequence detects and represents file sequences: sets of files
// in a directory that differ only in a zero-padded frame number, such as
// render.0001.exr through render.0100.exr.
package sequence

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// Pattern is the fixed template shared by every member of a sequence:
// the literal text before the frame number, the literal text after it
// (including the extension), and the exact digit-run width. Padding is
// part of the pattern's identity, so "001" and "0001" members belong to
// different sequences even though both encode frame 1.
type Pattern struct {
	Prefix  string
	Suffix  string
	Padding int
}

// Name reconstructs the filename for the given frame number. For every
// filename that produced this pattern via SplitName, Name round-trips it
// exactly. Frames wider than Padding render at their natural width.
func (p Pattern) Name(frame int) string {
	return fmt.Sprintf("%s%0*d%s", p.Prefix, p.Padding, frame, p.Suffix)
}

// String renders the pattern in the usual frame-token notation,
// e.g. "render.####.exr" for 4-digit padding.
func (p Pattern) String() string {
	return p.Prefix + strings.Repeat("#", p.Padding) + p.Suffix
}

// SplitName splits a bare filename into its sequence pattern and frame
// number. The frame field is the last maximal run of ASCII digits in the
// stem (the filename minus its final dot-separated extension); digits in
// the extension itself are never frame numbers, so "clip.0010.mp4" yields
// frame 10, not 4. Earlier digit runs stay part of the literal prefix.
//
// ok is false for filenames that cannot belong to any sequence: no digit
// run in the stem, or a run too long to fit in an int.
func SplitName(name string) (p Pattern, frame int, ok bool) {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	end := -1
	for i := len(stem) - 1; i >= 0; i-- {
		if isDigit(stem[i]) {
			end = i + 1
			break
		}
	}
	if end < 0 {
		return Pattern{}, 0, false
	}
	start := end
	for start > 0 && isDigit(stem[start-1]) {
		start--
	}

	frame, err := strconv.Atoi(stem[start:end])
	if err != nil {
		return Pattern{}, 0, false
	}

	p = Pattern{
		Prefix:  stem[:start],
		Suffix:  stem[end:] + ext,
		Padding: end - start,
	}
	return p, frame, true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
