// Package report generates summary reports of discovered sequences.
package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/toadstorm/seqscan/internal/sequence"
)

// Options controls what Print shows for each sequence.
type Options struct {
	// ShowMissing lists the missing frame numbers under each sequence.
	ShowMissing bool
	// Start and End bound the missing-frame probe range; -1 means use the
	// sequence's own observed bounds.
	Start int
	End   int
	// Step is the frame increment for the probe range.
	Step int
}

// DefaultOptions returns Options probing each sequence's observed range
// with step 1.
func DefaultOptions() Options {
	return Options{Start: -1, End: -1, Step: 1}
}

// Print writes a summary of the discovered sequences to the given writer.
// Sequences appear in scan order. skippedCount is the number of files the
// extension mask excluded.
func Print(w io.Writer, seqs []*sequence.Sequence, skippedCount int, opts Options) error {
	complete := color.New(color.FgGreen)
	gapped := color.New(color.FgRed)

	totalFiles := 0
	for _, s := range seqs {
		totalFiles += s.Len()
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "=== Sequences ===")
	fmt.Fprintf(w, "Sequences found:    %d\n", len(seqs))
	fmt.Fprintf(w, "Files in sequences: %d\n", totalFiles)
	if skippedCount > 0 {
		fmt.Fprintf(w, "Files skipped:      %d\n", skippedCount)
	}

	if len(seqs) == 0 {
		fmt.Fprintln(w, "\nNo sequences found.")
		return nil
	}
	fmt.Fprintln(w)

	for _, s := range seqs {
		start, end := opts.Start, opts.End
		if start < 0 {
			start = s.Start()
		}
		if end < 0 {
			end = s.End()
		}
		missing, err := s.MissingFramesIn(start, end, opts.Step)
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "  %s  %d-%d  ", s.Pattern, s.Start(), s.End())
		if len(missing) == 0 {
			complete.Fprintf(w, "(%d %s)\n", s.Len(), plural(s.Len(), "frame"))
		} else {
			gapped.Fprintf(w, "(%d %s, %d missing)\n", s.Len(), plural(s.Len(), "frame"), len(missing))
		}

		if opts.ShowMissing && len(missing) > 0 {
			fmt.Fprintf(w, "    missing:")
			for _, f := range missing {
				fmt.Fprintf(w, " %d", f)
			}
			fmt.Fprintln(w)
		}
	}
	fmt.Fprintln(w)

	return nil
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
