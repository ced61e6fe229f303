package xiangqi

import "testing"

var allSides = []Side{North, South, East, West}

func newTestBoard(t *testing.T, orientation Side, opts ...Option) *Board {
	t.Helper()
	r, err := NewRules(orientation, opts...)
	if err != nil {
		t.Fatalf("NewRules(%v) error: %v", orientation, err)
	}
	return NewBoard(r)
}

// place 按棋子自己记录的位置登记到棋盘上
func place[T Piece](t *testing.T, b *Board, p T) T {
	t.Helper()
	if err := b.AddPiece(p, p.Row(), p.Col()); err != nil {
		t.Fatalf("AddPiece(%v at %v) error: %v", p.Kind(), p.Cell(), err)
	}
	return p
}

type placement struct {
	Kind Kind
	Side Side
	Row  int
	Col  int
}

func snapshot(b *Board) []placement {
	var out []placement
	for _, p := range b.Pieces() {
		out = append(out, placement{Kind: p.Kind(), Side: p.Side(), Row: p.Row(), Col: p.Col()})
	}
	return out
}

func kingCells(kings []*King) []Cell {
	out := make([]Cell, 0, len(kings))
	for _, k := range kings {
		out = append(out, k.Cell())
	}
	return out
}
