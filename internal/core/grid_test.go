package core

import "testing"

func TestInsetContains(t *testing.T) {
	r := Inset(1280, 720, 20)
	if r.Dx() != 1240 || r.Dy() != 680 {
		t.Fatalf("interior %dx%d, want 1240x680", r.Dx(), r.Dy())
	}
	cases := []struct {
		p    Point
		want bool
	}{
		{Point{20, 20}, true},
		{Point{1240, 680}, true},
		{Point{19, 300}, false},
		{Point{1260, 300}, false},
		{Point{300, 700}, false},
		{Point{300, 0}, false},
	}
	for _, tc := range cases {
		if got := r.Contains(tc.p); got != tc.want {
			t.Errorf("Contains(%v) = %v, want %v", tc.p, got, tc.want)
		}
	}
}

func TestByteGridBounds(t *testing.T) {
	g := NewByteGrid(3, 2)
	g.Set(2, 1, 7)
	g.Set(3, 1, 9)
	if g.At(2, 1) != 7 {
		t.Fatalf("At(2,1) = %d", g.At(2, 1))
	}
	if g.At(3, 1) != 0 || g.At(-1, 0) != 0 {
		t.Fatal("out of range reads must return 0")
	}
	g.Clear()
	for i, v := range g.Cells() {
		if v != 0 {
			t.Fatalf("cell %d = %d after Clear", i, v)
		}
	}
}
