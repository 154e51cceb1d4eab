package life

import (
	"math"
	"slices"
	"testing"
)

func emptyLife(w, h int) *State {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	l := New(cfg)
	l.Clear()
	return l
}

func expectCells(t *testing.T, l *State, alive map[[2]int]bool, when string) {
	t.Helper()
	size := l.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			got := l.Cell(x, y) == Alive
			if got != alive[[2]int{x, y}] {
				t.Fatalf("%s cell (%d,%d) alive=%v, expected %v", when, x, y, got, alive[[2]int{x, y}])
			}
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	life := emptyLife(5, 5)
	life.SetCell(2, 1, Alive)
	life.SetCell(2, 2, Alive)
	life.SetCell(2, 3, Alive)

	life.Step()
	expectCells(t, life, map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}, "after first step")

	life.Step()
	expectCells(t, life, map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	}, "after second step")
}

func TestBlockStillLife(t *testing.T) {
	for _, size := range [][2]int{{4, 4}, {7, 5}, {16, 9}} {
		life := emptyLife(size[0], size[1])
		life.SetCell(1, 1, Alive)
		life.SetCell(2, 1, Alive)
		life.SetCell(1, 2, Alive)
		life.SetCell(2, 2, Alive)
		initial := append([]uint8(nil), life.Cells()...)

		for i := 0; i < 5; i++ {
			life.Step()
		}

		if !slices.Equal(initial, life.Cells()) {
			t.Fatalf("%dx%d block changed after 5 steps", size[0], size[1])
		}
		if got := life.Generation(); got != 5 {
			t.Fatalf("expected generation 5, got %d", got)
		}
	}
}

func TestStepDoesNotWriteSource(t *testing.T) {
	life := emptyLife(6, 6)
	life.SetCell(1, 0, Alive)
	life.SetCell(2, 1, Alive)
	life.SetCell(0, 2, Alive)
	life.SetCell(1, 2, Alive)
	life.SetCell(2, 2, Alive)

	before := life.Cells()
	snapshot := append([]uint8(nil), before...)
	life.Step()

	if !slices.Equal(before, snapshot) {
		t.Fatal("step mutated the generation it was reading")
	}
	if slices.Equal(life.Cells(), snapshot) {
		t.Fatal("glider did not move")
	}
}

func TestToroidalNeighbors(t *testing.T) {
	const w, h = 8, 6
	src := make([]uint8, w*h)
	src[(w-1)+(h-1)*w] = Alive
	if got := CountNeighbors(src, w, h, 0, 0); got != 1 {
		t.Fatalf("diagonal wrap: expected 1 neighbour at (0,0), got %d", got)
	}

	src = make([]uint8, w*h)
	src[w-1] = Alive
	if got := CountNeighbors(src, w, h, 0, 0); got != 1 {
		t.Fatalf("horizontal wrap: expected 1 neighbour at (0,0), got %d", got)
	}

	src = make([]uint8, w*h)
	src[(h-1)*w] = Alive
	if got := CountNeighbors(src, w, h, 0, 0); got != 1 {
		t.Fatalf("vertical wrap: expected 1 neighbour at (0,0), got %d", got)
	}
}

func TestCornerBlockSurvivesAcrossEdges(t *testing.T) {
	life := emptyLife(6, 6)
	life.SetCell(0, 0, Alive)
	life.SetCell(5, 0, Alive)
	life.SetCell(0, 5, Alive)
	life.SetCell(5, 5, Alive)
	initial := append([]uint8(nil), life.Cells()...)

	life.Step()
	if !slices.Equal(initial, life.Cells()) {
		t.Fatal("block split across the corners should be stable on a torus")
	}
}

func TestResetDensity(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 7
	life := New(cfg)

	cells := life.Cells()
	if len(cells) != 160*90 {
		t.Fatalf("expected %d cells, got %d", 160*90, len(cells))
	}
	alive := 0
	for i, c := range cells {
		if c != Dead && c != Alive {
			t.Fatalf("cell %d has value %d", i, c)
		}
		alive += int(c)
	}
	frac := float64(alive) / float64(len(cells))
	if math.Abs(frac-0.2) > 0.02 {
		t.Fatalf("expected live fraction near 0.2, got %.4f", frac)
	}
	if life.LastStep().Population != alive {
		t.Fatalf("expected reset population %d, got %d", alive, life.LastStep().Population)
	}
}

func TestResetDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 32
	cfg.Height = 24
	life := New(cfg)

	life.Reset(99)
	first := append([]uint8(nil), life.Cells()...)
	life.Step()
	life.Step()
	life.Toggle()

	life.Reset(99)
	if !slices.Equal(first, life.Cells()) {
		t.Fatal("Reset with the same seed not deterministic")
	}
	if life.Generation() != 0 || life.Phase() != 0 || !life.Running() {
		t.Fatalf("reset left generation=%d phase=%d running=%v", life.Generation(), life.Phase(), life.Running())
	}

	life.Reset(100)
	if slices.Equal(first, life.Cells()) {
		t.Fatal("different seeds should produce different boards")
	}
}

func TestResetClearsScratchBuffer(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 10
	cfg.Height = 10
	life := New(cfg)
	life.Step()
	life.Reset(3)

	if life.current != 0 {
		t.Fatalf("expected buffer A to be current after reset, got %d", life.current)
	}
	if n := life.bufs[1].Population(); n != 0 {
		t.Fatalf("expected empty scratch buffer after reset, found %d live cells", n)
	}
}

func TestGenerationCountsSteps(t *testing.T) {
	life := emptyLife(5, 5)
	for i := 1; i <= 4; i++ {
		life.Step()
		if life.Generation() != i {
			t.Fatalf("after %d steps generation=%d", i, life.Generation())
		}
	}
}

func TestStepStats(t *testing.T) {
	life := emptyLife(5, 5)
	life.SetCell(2, 1, Alive)
	life.SetCell(2, 2, Alive)
	life.SetCell(2, 3, Alive)

	life.Step()
	got := life.LastStep()
	want := StepStats{Generation: 1, Population: 3, Births: 2, Deaths: 2}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestZeroSizedGrid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 0
	cfg.Height = 0
	life := New(cfg)

	life.Step()
	if len(life.Cells()) != 0 {
		t.Fatalf("expected no cells, got %d", len(life.Cells()))
	}
	if life.Generation() != 1 {
		t.Fatalf("expected empty step to count, got generation %d", life.Generation())
	}
}

func TestSetCellRejectsInvalidValue(t *testing.T) {
	life := emptyLife(3, 3)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for cell value 2")
		}
	}()
	life.SetCell(1, 1, 2)
}

func TestParameters(t *testing.T) {
	life := New(DefaultConfig())
	p, ok := life.Parameters().Lookup("threshold")
	if !ok {
		t.Fatal("threshold parameter missing")
	}
	if p.Value != "4" {
		t.Fatalf("expected threshold 4, got %s", p.Value)
	}
}
