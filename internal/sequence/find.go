package sequence

import (
	"sort"

	"github.com/toadstorm/seqscan/internal/scanner"
)

// Group partitions bare filenames into sequences. Filenames sharing a
// prefix, suffix and padding width form one sequence; filenames with no
// frame field are dropped. Sequences come back in the order their first
// member appears in names, so an unchanged directory listing always
// groups the same way.
func Group(dir string, names []string) []*Sequence {
	var seqs []*Sequence
	byPattern := make(map[Pattern]*Sequence)

	for _, name := range names {
		p, frame, ok := SplitName(name)
		if !ok {
			continue
		}
		s := byPattern[p]
		if s == nil {
			s = &Sequence{Pattern: p, Dir: dir}
			byPattern[p] = s
			seqs = append(seqs, s)
		}
		s.frames = append(s.frames, frame)
	}

	for _, s := range seqs {
		sort.Ints(s.frames)
	}
	return seqs
}

// FindSequences scans a directory (non-recursive) and returns every file
// sequence found in it. If extensions is non-empty, only files whose
// extension (after the last dot, case-sensitive, no leading dot) is in
// the set participate; everything else is silently ignored.
//
// The directory is read exactly once. A missing directory reports
// fs.ErrNotExist, an unreadable one fs.ErrPermission; an empty directory
// is not an error and yields no sequences.
func FindSequences(dir string, extensions []string) ([]*Sequence, error) {
	result, err := scanner.Scan(dir, extensions)
	if err != nil {
		return nil, err
	}
	return Group(dir, result.Names), nil
}
