package mru

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPromote(t *testing.T) {
	x := New([]string{"a", "b", "c", "d"})

	x.Promote(2)
	if diff := cmp.Diff([]string{"c", "a", "b", "d"}, x.Items()); diff != "" {
		t.Errorf("after Promote(2) (-want +got):\n%s", diff)
	}

	x.Promote(0) // already first, no-op
	if diff := cmp.Diff([]string{"c", "a", "b", "d"}, x.Items()); diff != "" {
		t.Errorf("after Promote(0) (-want +got):\n%s", diff)
	}

	x.Promote(3)
	if diff := cmp.Diff([]string{"d", "c", "a", "b"}, x.Items()); diff != "" {
		t.Errorf("after Promote(3) (-want +got):\n%s", diff)
	}
}

func TestPromoteOutOfRange(t *testing.T) {
	x := New([]int{1, 2})
	x.Promote(-1)
	x.Promote(2)
	if diff := cmp.Diff([]int{1, 2}, x.Items()); diff != "" {
		t.Errorf("out-of-range Promote changed items (-want +got):\n%s", diff)
	}
}

func TestNewCopies(t *testing.T) {
	src := []int{1, 2, 3}
	x := New(src)
	src[0] = 9
	if x.Items()[0] != 1 {
		t.Error("index shares backing array with input")
	}
}
