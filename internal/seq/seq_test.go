package seq

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMap(t *testing.T) {
	t.Parallel()

	plus1 := func(x int) int { return x + 1 }
	got := Collect(Map(plus1, Iota(5)))
	want := []int{1, 2, 3, 4, 5}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Map mismatch (-want +got):\n%s", diff)
	}
}

func TestFilter(t *testing.T) {
	t.Parallel()

	got := Collect(Filter(func(x int) bool { return x < 2 }, Of(0, 1, 2, 3, 4, 5)))
	want := []int{0, 1}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Filter mismatch (-want +got):\n%s", diff)
	}

	if got := Collect(Filter(func(int) bool { return false }, Iota(10))); got != nil {
		t.Errorf("empty filter should collect nil, got %v", got)
	}
}

func TestIota(t *testing.T) {
	t.Parallel()

	if diff := cmp.Diff([]int{0, 1, 2}, Collect(Iota(3))); diff != "" {
		t.Errorf("Iota(3) mismatch:\n%s", diff)
	}
	if diff := cmp.Diff([]int{1, 2, 3, 4, 5}, Collect(IotaFrom(1, 6))); diff != "" {
		t.Errorf("IotaFrom(1,6) mismatch:\n%s", diff)
	}
	if got := Collect(Iota(0)); got != nil {
		t.Errorf("Iota(0) should be empty, got %v", got)
	}
}

func TestConcat(t *testing.T) {
	t.Parallel()

	got := Collect(Concat(Of(1), Of(2, 2), Of(3, 3, 3)))
	want := []int{1, 2, 2, 3, 3, 3}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Concat mismatch:\n%s", diff)
	}
}

func TestSequencesRestart(t *testing.T) {
	t.Parallel()

	s := Map(func(x int) int { return x * 2 }, Iota(4))
	first := Collect(s)
	second := Collect(s)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second pass differs:\n%s", diff)
	}
}

func TestEarlyBreak(t *testing.T) {
	t.Parallel()

	n := 0
	for v := range IotaFrom(0, 1000) {
		n++
		if v == 2 {
			break
		}
	}
	if n != 3 {
		t.Errorf("expected 3 iterations before break, got %d", n)
	}
}

func TestCount(t *testing.T) {
	t.Parallel()

	if got := Count(Filter(func(x int) bool { return x%2 == 0 }, Iota(10))); got != 5 {
		t.Errorf("Count = %d, want 5", got)
	}
}
