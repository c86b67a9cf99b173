package grid

import "testing"

func TestNewValidatesDimensions(t *testing.T) {
	t.Parallel()

	if _, err := New(0, 5, 5); err == nil {
		t.Error("expected error for zero nx")
	}
	if _, err := New(5, -1, 5); err == nil {
		t.Error("expected error for negative ny")
	}
	g, err := New(5, 5, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.NumCells() != 25 {
		t.Errorf("expected 25 cells, got %d", g.NumCells())
	}
}

func TestIndexOrdering(t *testing.T) {
	t.Parallel()

	g := MustNew(3, 4, 5)

	// i varies fastest.
	if g.Index(0, 0, 0) != 0 {
		t.Errorf("origin index = %d", g.Index(0, 0, 0))
	}
	if g.Index(1, 0, 0) != 1 {
		t.Errorf("i step index = %d", g.Index(1, 0, 0))
	}
	if g.Index(0, 1, 0) != 3 {
		t.Errorf("j step index = %d", g.Index(0, 1, 0))
	}
	if g.Index(0, 0, 1) != 12 {
		t.Errorf("k step index = %d", g.Index(0, 0, 1))
	}
	if g.Index(2, 3, 4) != g.NumCells()-1 {
		t.Errorf("last cell index = %d, want %d", g.Index(2, 3, 4), g.NumCells()-1)
	}
}

func TestIJKRoundTrip(t *testing.T) {
	t.Parallel()

	g := MustNew(3, 4, 5)
	for idx := 0; idx < g.NumCells(); idx++ {
		i, j, k := g.IJK(idx)
		if !g.Contains(i, j, k) {
			t.Fatalf("IJK(%d) = (%d,%d,%d) outside grid", idx, i, j, k)
		}
		if back := g.Index(i, j, k); back != idx {
			t.Fatalf("Index(IJK(%d)) = %d", idx, back)
		}
	}
}

func TestContains(t *testing.T) {
	t.Parallel()

	g := MustNew(2, 2, 2)
	if g.Contains(2, 0, 0) || g.Contains(0, -1, 0) || g.Contains(0, 0, 2) {
		t.Error("out-of-range coordinates reported as contained")
	}
}
