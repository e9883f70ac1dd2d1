package grid

import (
	"math/rand"
	"testing"
)

func TestGeneratePathEndpoints(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		path := GeneratePath(rng)

		if len(path) == 0 {
			t.Fatalf("seed %d: empty path", seed)
		}
		if path[0].Col != 0 {
			t.Errorf("seed %d: path starts at col %d, want 0", seed, path[0].Col)
		}
		if last := path[len(path)-1]; last.Col != Size-1 {
			t.Errorf("seed %d: path ends at col %d, want %d", seed, last.Col, Size-1)
		}
	}
}

func TestGeneratePathNoRevisits(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		path := GeneratePath(rng)

		seen := make(map[Cell]bool, len(path))
		for _, c := range path {
			if !c.InBounds() {
				t.Fatalf("seed %d: cell %v out of bounds", seed, c)
			}
			if seen[c] {
				t.Fatalf("seed %d: cell %v visited twice", seed, c)
			}
			seen[c] = true
		}
	}
}

func TestGeneratePathStepsAreUpDownRight(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		path := GeneratePath(rng)

		for i := 1; i < len(path); i++ {
			prev, cur := path[i-1], path[i]
			dr, dc := cur.Row-prev.Row, cur.Col-prev.Col
			vertical := dc == 0 && (dr == 1 || dr == -1)
			right := dr == 0 && dc == 1
			if !vertical && !right {
				t.Fatalf("seed %d: illegal step %v -> %v", seed, prev, cur)
			}
		}
	}
}

func TestCellCenter(t *testing.T) {
	x, y := Cell{Row: 2, Col: 5}.Center(64)
	if x != 352 || y != 160 {
		t.Errorf("Center() = (%v, %v), want (352, 160)", x, y)
	}
}

func TestCellBoxKey(t *testing.T) {
	tests := []struct {
		cell Cell
		want string
	}{
		{Cell{Row: 0, Col: 0}, "0-0"},
		{Cell{Row: 4, Col: 7}, "1-2"},
		{Cell{Row: 8, Col: 8}, "2-2"},
	}
	for _, tt := range tests {
		if got := tt.cell.BoxKey(); got != tt.want {
			t.Errorf("BoxKey(%v) = %q, want %q", tt.cell, got, tt.want)
		}
	}
}
