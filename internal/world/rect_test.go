package world

import "testing"

func TestRectCenter(t *testing.T) {
	tests := []struct {
		x, y, w, h int
		want       Point
	}{
		{0, 0, 7, 7, Point{3, 3}},
		{0, 0, 4, 4, Point{2, 2}},
		{20, 15, 10, 15, Point{25, 22}},
		{3, 9, 6, 9, Point{6, 13}},
	}

	for _, tt := range tests {
		got := NewRect(tt.x, tt.y, tt.w, tt.h).Center()
		if got != tt.want {
			t.Errorf("NewRect(%d,%d,%d,%d).Center() = %v, want %v", tt.x, tt.y, tt.w, tt.h, got, tt.want)
		}
		if want := (Point{tt.x + tt.w/2, tt.y + tt.h/2}); got != want {
			t.Errorf("Center() = %v, want origin plus half size %v", got, want)
		}
	}
}

func TestRectIntersects(t *testing.T) {
	base := NewRect(0, 0, 4, 4)

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlapping", NewRect(3, 3, 4, 4), true},
		{"identical", NewRect(0, 0, 4, 4), true},
		{"contained", NewRect(1, 1, 2, 2), true},
		{"touching right edge", NewRect(4, 0, 4, 4), true},
		{"touching bottom edge", NewRect(0, 4, 4, 4), true},
		{"touching corner", NewRect(4, 4, 2, 2), true},
		{"one tile gap", NewRect(5, 0, 4, 4), false},
		{"far away", NewRect(10, 10, 3, 3), false},
		{"separated vertically only", NewRect(0, 5, 4, 4), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects = %v, want %v", got, tt.want)
			}
			if base.Intersects(tt.other) != tt.other.Intersects(base) {
				t.Error("Intersects should be symmetric")
			}
		})
	}
}

func TestRectInterior(t *testing.T) {
	r := NewRect(2, 3, 4, 3)
	count := 0
	r.Interior(func(x, y int) {
		count++
		if !r.ContainsInterior(Point{x, y}) {
			t.Errorf("(%d,%d) reported as interior but not contained", x, y)
		}
	})

	// Interior of a 4x3 box is 3x2
	if count != 6 {
		t.Errorf("interior tiles = %d, want 6", count)
	}
	if r.ContainsInterior(Point{2, 3}) {
		t.Error("corner should not be interior")
	}
	if r.Width() != 4 || r.Height() != 3 {
		t.Errorf("size = %dx%d, want 4x3", r.Width(), r.Height())
	}
}
