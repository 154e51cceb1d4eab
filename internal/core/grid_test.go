package core

import "testing"

func TestWrap(t *testing.T) {
	cases := []struct {
		coord, dim, want int
	}{
		{-1, 160, 159},
		{160, 160, 0},
		{0, 160, 0},
		{159, 160, 159},
		{-1, 1, 0},
		{1, 1, 0},
	}
	for _, c := range cases {
		if got := Wrap(c.coord, c.dim); got != c.want {
			t.Fatalf("Wrap(%d, %d) = %d, expected %d", c.coord, c.dim, got, c.want)
		}
	}
}

func TestWrapPanicsFarOutOfRange(t *testing.T) {
	for _, coord := range []int{-11, 20} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("Wrap(%d, 10) should panic", coord)
				}
			}()
			Wrap(coord, 10)
		}()
	}
}

func TestByteGrid(t *testing.T) {
	g := NewByteGrid(4, 3)
	if len(g.Cells()) != 12 {
		t.Fatalf("expected 12 cells, got %d", len(g.Cells()))
	}
	g.Cells()[g.Index(3, 2)] = 1
	g.Cells()[g.Index(1, 0)] = 1
	if g.Index(3, 2) != 11 {
		t.Fatalf("expected index 11, got %d", g.Index(3, 2))
	}
	if g.Population() != 2 {
		t.Fatalf("expected population 2, got %d", g.Population())
	}
	g.Clear()
	if g.Population() != 0 {
		t.Fatalf("expected cleared grid, got population %d", g.Population())
	}

	empty := NewByteGrid(0, 5)
	if len(empty.Cells()) != 0 || empty.Population() != 0 {
		t.Fatal("zero-width grid should be empty")
	}
}
