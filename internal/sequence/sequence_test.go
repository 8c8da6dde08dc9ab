package sequence

import (
	"bytes"
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func testSeq(frames ...int) *Sequence {
	return New("/shots/sh010", Pattern{Prefix: "render.", Suffix: ".exr", Padding: 4}, frames)
}

func TestNewSortsAndDedupes(t *testing.T) {
	s := testSeq(7, 1, 4, 1, 2)
	want := []int{1, 2, 4, 7}
	if got := s.Frames(); !reflect.DeepEqual(got, want) {
		t.Errorf("Frames() = %v, want %v", got, want)
	}
	if s.Len() != 4 {
		t.Errorf("Len() = %d, want 4", s.Len())
	}
	if s.Start() != 1 || s.End() != 7 {
		t.Errorf("range = %d-%d, want 1-7", s.Start(), s.End())
	}
}

func TestFiles(t *testing.T) {
	s := testSeq(2, 1, 10)
	want := []string{
		filepath.Join("/shots/sh010", "render.0001.exr"),
		filepath.Join("/shots/sh010", "render.0002.exr"),
		filepath.Join("/shots/sh010", "render.0010.exr"),
	}
	if got := s.Files(); !reflect.DeepEqual(got, want) {
		t.Errorf("Files() = %v, want %v", got, want)
	}
}

func TestMatches(t *testing.T) {
	s := testSeq(1)
	if !s.Matches("render.0099.exr") {
		t.Error("expected render.0099.exr to match")
	}
	if s.Matches("render.099.exr") {
		t.Error("padding mismatch should not match")
	}
	if s.Matches("other.0001.exr") {
		t.Error("prefix mismatch should not match")
	}
	if s.Matches("render.0001.png") {
		t.Error("suffix mismatch should not match")
	}
	if s.Matches("notes.txt") {
		t.Error("numberless file should not match")
	}
}

func TestMissingFramesDefaults(t *testing.T) {
	s := testSeq(1, 2, 4, 5, 7)
	want := []int{3, 6}
	if got := s.MissingFrames(); !reflect.DeepEqual(got, want) {
		t.Errorf("MissingFrames() = %v, want %v", got, want)
	}
}

func TestMissingFramesIn(t *testing.T) {
	s := testSeq(1, 2, 4, 5, 7)

	got, err := s.MissingFramesIn(1, 7, 1)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{3, 6}; !reflect.DeepEqual(got, want) {
		t.Errorf("MissingFramesIn(1,7,1) = %v, want %v", got, want)
	}

	got, err = s.MissingFramesIn(1, 10, 1)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{3, 6, 8, 9, 10}; !reflect.DeepEqual(got, want) {
		t.Errorf("MissingFramesIn(1,10,1) = %v, want %v", got, want)
	}

	// Stepped probe only visits odd frames.
	got, err = s.MissingFramesIn(1, 7, 2)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{3}; !reflect.DeepEqual(got, want) {
		t.Errorf("MissingFramesIn(1,7,2) = %v, want %v", got, want)
	}
}

func TestMissingFramesInStartAfterEnd(t *testing.T) {
	s := testSeq(1, 2, 3)
	got, err := s.MissingFramesIn(10, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}

func TestMissingFramesInInvalidStep(t *testing.T) {
	s := testSeq(1, 2, 3)
	for _, step := range []int{0, -1} {
		if _, err := s.MissingFramesIn(1, 10, step); !errors.Is(err, ErrInvalidStep) {
			t.Errorf("step %d: expected ErrInvalidStep, got %v", step, err)
		}
	}
}

func TestMissingFramesSingleFrame(t *testing.T) {
	s := testSeq(10)
	if got := s.MissingFrames(); len(got) != 0 {
		t.Errorf("expected no missing frames, got %v", got)
	}
}

func TestMissingFiles(t *testing.T) {
	s := testSeq(1, 3)
	want := []string{filepath.Join("/shots/sh010", "render.0002.exr")}
	if got := s.MissingFiles(); !reflect.DeepEqual(got, want) {
		t.Errorf("MissingFiles() = %v, want %v", got, want)
	}
}

func TestDebug(t *testing.T) {
	s := testSeq(1, 2, 4)

	var buf bytes.Buffer
	s.Debug(&buf)
	output := buf.String()

	checks := []string{
		"Sequence has 3 files.",
		"/shots/sh010",
		`"render."`,
		`".exr"`,
		"1-4",
		"[3]",
	}
	for _, check := range checks {
		if !strings.Contains(output, check) {
			t.Errorf("debug output missing %q\nFull output:\n%s", check, output)
		}
	}
}
