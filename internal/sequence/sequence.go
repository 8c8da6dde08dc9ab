package sequence

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
)

// ErrInvalidStep is returned when a missing-frame query is given a
// non-positive step.
var ErrInvalidStep = errors.New("step must be a positive integer")

// Sequence is one detected file sequence: a pattern, the directory it
// lives in, and the set of frame numbers actually observed there.
// A Sequence is immutable once built; every query is derived from
// in-memory state and touches no files.
type Sequence struct {
	Pattern Pattern
	Dir     string

	frames []int // sorted ascending, no duplicates
}

// New builds a Sequence directly from a frame set. The frames are copied,
// sorted and de-duplicated. Group is the usual way to obtain sequences;
// New exists for callers that already know the pattern.
func New(dir string, p Pattern, frames []int) *Sequence {
	sorted := append([]int(nil), frames...)
	sort.Ints(sorted)
	out := sorted[:0]
	for i, f := range sorted {
		if i == 0 || f != sorted[i-1] {
			out = append(out, f)
		}
	}
	return &Sequence{Pattern: p, Dir: dir, frames: out}
}

// Len returns the number of observed frames.
func (s *Sequence) Len() int { return len(s.frames) }

// Start returns the lowest observed frame number, or 0 for an empty
// sequence.
func (s *Sequence) Start() int {
	if len(s.frames) == 0 {
		return 0
	}
	return s.frames[0]
}

// End returns the highest observed frame number, or 0 for an empty
// sequence.
func (s *Sequence) End() int {
	if len(s.frames) == 0 {
		return 0
	}
	return s.frames[len(s.frames)-1]
}

// Frames returns the observed frame numbers in ascending order.
func (s *Sequence) Frames() []int {
	return append([]int(nil), s.frames...)
}

// Files returns the full path of every member, in ascending frame order.
// Paths are rebuilt from the pattern; each one is exactly the filename
// that was grouped into this sequence.
func (s *Sequence) Files() []string {
	paths := make([]string, 0, len(s.frames))
	for _, f := range s.frames {
		paths = append(paths, filepath.Join(s.Dir, s.Pattern.Name(f)))
	}
	return paths
}

// Matches reports whether a bare filename belongs to this sequence's
// pattern (same prefix, suffix and padding width).
func (s *Sequence) Matches(name string) bool {
	p, _, ok := SplitName(name)
	return ok && p == s.Pattern
}

// contains reports whether frame was observed.
func (s *Sequence) contains(frame int) bool {
	i := sort.SearchInts(s.frames, frame)
	return i < len(s.frames) && s.frames[i] == frame
}

// MissingFrames returns the frames absent between the first and last
// observed frame, ascending. Sequences with zero or one frame have
// nothing to be missing.
func (s *Sequence) MissingFrames() []int {
	if len(s.frames) < 2 {
		return nil
	}
	missing, _ := s.MissingFramesIn(s.Start(), s.End(), 1)
	return missing
}

// MissingFramesIn returns every frame in the progression start, start+step,
// ... up to and including end that has no observed member, ascending.
// A start beyond end yields an empty result; a non-positive step is an
// error wrapping ErrInvalidStep.
func (s *Sequence) MissingFramesIn(start, end, step int) ([]int, error) {
	if step <= 0 {
		return nil, fmt.Errorf("step %d: %w", step, ErrInvalidStep)
	}
	var missing []int
	for frame := start; frame <= end; frame += step {
		if !s.contains(frame) {
			missing = append(missing, frame)
		}
	}
	return missing, nil
}

// MissingFiles returns the default-range missing frames rendered as full
// file paths, the names the absent members would have on disk. Frames
// beyond the padding width render at their natural width; whether such a
// path is meaningful is the caller's concern.
func (s *Sequence) MissingFiles() []string {
	frames := s.MissingFrames()
	paths := make([]string, 0, len(frames))
	for _, f := range frames {
		paths = append(paths, filepath.Join(s.Dir, s.Pattern.Name(f)))
	}
	return paths
}

// Debug writes a human-readable dump of the sequence state. The format is
// for eyeballs only and may change.
func (s *Sequence) Debug(w io.Writer) {
	fmt.Fprintf(w, "Sequence has %d files.\n", len(s.frames))
	fmt.Fprintf(w, "Directory: %s\n", s.Dir)
	fmt.Fprintf(w, "Prefix:    %q\n", s.Pattern.Prefix)
	fmt.Fprintf(w, "Suffix:    %q\n", s.Pattern.Suffix)
	fmt.Fprintf(w, "Padding:   %d\n", s.Pattern.Padding)
	fmt.Fprintf(w, "Range:     %d-%d\n", s.Start(), s.End())
	fmt.Fprintf(w, "Frames:    %v\n", s.frames)
	fmt.Fprintf(w, "Missing:   %v\n", s.MissingFrames())
}
