package tilemap

import "testing"

func TestIndexGridCheckedLookup(t *testing.T) {
	const w, h = 4, 3
	g := NewIndexGrid(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.Set(x, y, uint32(y*w+x+1))
		}
	}

	// In-bounds lookups return exactly data[y*w+x]; everything else
	// returns the sentinel 0.
	for y := -2; y < h+2; y++ {
		for x := -2; x < w+2; x++ {
			got := g.At(x, y)
			var want uint32
			if x >= 0 && x < w && y >= 0 && y < h {
				want = g.Data()[y*w+x]
			}
			if got != want {
				t.Errorf("At(%d, %d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestIndexGridFrom(t *testing.T) {
	data := []uint32{1, 2, 3, 4, 5, 6}
	g := IndexGridFrom(3, 2, data)
	if g == nil {
		t.Fatal("IndexGridFrom returned nil for matching length")
	}
	if got := g.At(2, 1); got != 6 {
		t.Errorf("At(2, 1) = %d, want 6", got)
	}

	// Shared storage, not a copy.
	data[0] = 42
	if got := g.At(0, 0); got != 42 {
		t.Errorf("At(0, 0) after slice mutation = %d, want 42", got)
	}

	if g := IndexGridFrom(3, 2, data[:5]); g != nil {
		t.Error("IndexGridFrom accepted a slice of wrong length")
	}
}

func TestIndexGridFill(t *testing.T) {
	g := NewIndexGrid(5, 5)
	g.Fill(9)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if got := g.At(x, y); got != 9 {
				t.Fatalf("At(%d, %d) = %d, want 9", x, y, got)
			}
		}
	}
	if got := g.MaxIndex(); got != 9 {
		t.Errorf("MaxIndex = %d, want 9", got)
	}
}

func TestIndexGridSetOutOfBounds(t *testing.T) {
	g := NewIndexGrid(2, 2)
	g.Set(-1, 0, 7)
	g.Set(0, 2, 7)
	for _, v := range g.Data() {
		if v != 0 {
			t.Fatal("out-of-bounds Set modified the grid")
		}
	}
}
