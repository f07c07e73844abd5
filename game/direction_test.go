package game

import "testing"

func TestDirection_Opposite(t *testing.T) {
	cases := []struct {
		d, want Direction
	}{
		{Up, Down},
		{Down, Up},
		{Left, Right},
		{Right, Left},
		{NewDirection(2, -3), NewDirection(-2, 3)},
		{NewDirection(0, 0), NewDirection(0, 0)},
	}
	for _, tc := range cases {
		if got := tc.d.Opposite(); got != tc.want {
			t.Errorf("%v.Opposite()=%v want=%v", tc.d, got, tc.want)
		}
	}
}

func TestDirection_StructuralEquality(t *testing.T) {
	if NewDirection(0, 1) != Right {
		t.Fatalf("NewDirection(0,1) != Right")
	}
	seen := map[Direction]int{Up: 1}
	seen[NewDirection(-1, 0)]++
	if len(seen) != 1 || seen[Up] != 2 {
		t.Fatalf("directions with equal offsets must share a map key: %v", seen)
	}
	if Up.String() != "up" || NewDirection(3, 4).String() != "(3,4)" {
		t.Fatalf("unexpected names %q %q", Up.String(), NewDirection(3, 4).String())
	}
}

func TestPosition_Translate(t *testing.T) {
	p := NewPosition(5, 3)
	cases := []struct {
		d    Direction
		want Position
	}{
		{Up, Position{Row: 4, Col: 3}},
		{Down, Position{Row: 6, Col: 3}},
		{Left, Position{Row: 5, Col: 2}},
		{Right, Position{Row: 5, Col: 4}},
		{NewDirection(-10, -10), Position{Row: -5, Col: -7}},
	}
	for _, tc := range cases {
		if got := p.Translate(tc.d); got != tc.want {
			t.Errorf("%v.Translate(%v)=%v want=%v", p, tc.d, got, tc.want)
		}
	}
	if p != (Position{Row: 5, Col: 3}) {
		t.Fatalf("Translate mutated receiver: %v", p)
	}
}

func TestDirectionBuffer(t *testing.T) {
	var b directionBuffer
	if _, ok := b.Pop(); ok {
		t.Fatalf("pop from empty buffer succeeded")
	}
	if !b.Push(Up) || !b.Push(Left) {
		t.Fatalf("push below capacity failed")
	}
	if b.Push(Down) {
		t.Fatalf("push at capacity succeeded")
	}
	if last, _ := b.Last(); last != Left {
		t.Fatalf("last=%v want left", last)
	}
	if d, _ := b.Pop(); d != Up {
		t.Fatalf("pop=%v want up", d)
	}
	if d, _ := b.Pop(); d != Left {
		t.Fatalf("pop=%v want left", d)
	}
	if b.Len() != 0 {
		t.Fatalf("len=%d want 0", b.Len())
	}
}

func TestParseWallPolicy(t *testing.T) {
	for _, p := range []WallPolicy{WallsBlock, WallsKill} {
		got, err := ParseWallPolicy(p.String())
		if err != nil || got != p {
			t.Fatalf("ParseWallPolicy(%q)=%v,%v", p.String(), got, err)
		}
	}
	if _, err := ParseWallPolicy("wrap"); err == nil {
		t.Fatalf("expected error for unknown policy")
	}
}
