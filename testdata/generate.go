// This program generates a sample shot directory for trying out seqscan
// by hand: a long render sequence with a couple of gaps, a short
// quicktime sequence, a padding-collision pair and some non-sequence
// noise.
//
//go:build ignore

package main

import (
	"fmt"
	"os"
	"path/filepath"
)

func main() {
	dir := "testdata"
	os.MkdirAll(dir, 0755)

	// Main render pass, frames 1-100 with two dropped frames.
	for frame := 1; frame <= 100; frame++ {
		if frame == 42 || frame == 67 {
			continue
		}
		touch(filepath.Join(dir, fmt.Sprintf("render.%04d.exr", frame)))
	}

	// A short editorial clip; the 4 in mp4 must not read as a frame.
	for frame := 8; frame <= 10; frame++ {
		touch(filepath.Join(dir, fmt.Sprintf("clip.%04d.mp4", frame)))
	}

	// Same name and value, different padding: two distinct sequences.
	touch(filepath.Join(dir, "img.001.exr"))
	touch(filepath.Join(dir, "img.0001.exr"))

	// A single-frame sequence.
	touch(filepath.Join(dir, "still.0010.png"))

	// Files that belong to no sequence.
	os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not a frame\n"), 0644)
	touch(filepath.Join(dir, "reference.jpg"))
}

func touch(path string) {
	os.WriteFile(path, nil, 0644)
}
