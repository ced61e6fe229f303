package xiangqi

import (
	"errors"
	"strings"
	"testing"
)

func TestBoardOutOfBounds(t *testing.T) {
	b := newTestBoard(t, North)
	rook := NewRook(North, b, nil, 0, 0)

	cells := []Cell{{-1, 0}, {0, -1}, {10, 0}, {0, 9}, {10, 9}}
	for _, c := range cells {
		if err := b.AddPiece(rook, c.Row, c.Col); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("AddPiece at %v err = %v, want ErrOutOfBounds", c, err)
		}
		if _, err := b.GetPiece(c.Row, c.Col); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("GetPiece at %v err = %v, want ErrOutOfBounds", c, err)
		}
		if _, err := b.RemovePiece(c.Row, c.Col); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("RemovePiece at %v err = %v, want ErrOutOfBounds", c, err)
		}
	}

	_, err := b.GetPiece(3, 9)
	var oob *OutOfBoundsError
	if !errors.As(err, &oob) {
		t.Fatalf("GetPiece err = %v, want *OutOfBoundsError", err)
	}
	if oob.Row != 3 || oob.Col != 9 || oob.Rows != 10 || oob.Cols != 9 {
		t.Errorf("OutOfBoundsError = %+v", *oob)
	}

	// 东西局 (0,9) 在盘内
	h := newTestBoard(t, East)
	if _, err := h.GetPiece(0, 9); err != nil {
		t.Errorf("east board GetPiece(0,9) err = %v", err)
	}
	if _, err := h.GetPiece(9, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("east board GetPiece(9,0) err = %v, want ErrOutOfBounds", err)
	}
}

func TestAddPieceRecordsPosition(t *testing.T) {
	b := newTestBoard(t, North)
	h := NewHorse(North, b, nil, 0, 1)
	if p, _ := b.GetPiece(0, 1); p != nil {
		t.Fatal("construction must not register the piece on the board")
	}

	if err := b.AddPiece(h, 2, 2); err != nil {
		t.Fatal(err)
	}
	if h.Row() != 2 || h.Col() != 2 {
		t.Errorf("horse at %v, want (2,2)", h.Cell())
	}
	if p, _ := b.GetPiece(2, 2); p != h {
		t.Errorf("GetPiece(2,2) = %v, want the horse", p)
	}

	// 再放一次等于移动：旧格清空，不会一子占两格
	if err := b.AddPiece(h, 4, 3); err != nil {
		t.Fatal(err)
	}
	if p, _ := b.GetPiece(2, 2); p != nil {
		t.Error("old slot still occupied after move")
	}
	if n := len(b.Pieces()); n != 1 {
		t.Errorf("%d pieces on board, want 1", n)
	}
}

func TestAddPieceOverwritesOccupant(t *testing.T) {
	b := newTestBoard(t, North)
	victim := place(t, b, NewSoldier(South, b, nil, 5, 4))
	rook := place(t, b, NewRook(North, b, nil, 0, 4))

	if err := b.AddPiece(rook, 5, 4); err != nil {
		t.Fatal(err)
	}
	if p, _ := b.GetPiece(5, 4); p != rook {
		t.Errorf("GetPiece(5,4) = %v, want the rook", p)
	}
	if victim.Board() != nil {
		t.Error("captured piece still attached to the board")
	}
	if p, _ := b.GetPiece(0, 4); p != nil {
		t.Error("rook origin not cleared")
	}
}

func TestAddPieceNil(t *testing.T) {
	b := newTestBoard(t, North)
	if err := b.AddPiece(nil, 0, 0); !errors.Is(err, ErrNilPiece) {
		t.Fatalf("AddPiece(nil) err = %v, want ErrNilPiece", err)
	}
}

func TestAddPieceMovesBetweenBoards(t *testing.T) {
	a := newTestBoard(t, North)
	b := newTestBoard(t, North)
	k := place(t, a, NewKing(North, a, nil, 0, 4))

	if err := b.AddPiece(k, 1, 4); err != nil {
		t.Fatal(err)
	}
	if p, _ := a.GetPiece(0, 4); p != nil {
		t.Error("piece still on its previous board")
	}
	if k.Board() != b {
		t.Error("piece does not point at its new board")
	}
}

func TestRemovePiece(t *testing.T) {
	b := newTestBoard(t, West)
	c := place(t, b, NewCannon(West, b, nil, 1, 2))

	got, err := b.RemovePiece(1, 2)
	if err != nil {
		t.Fatal(err)
	}
	if got != c {
		t.Errorf("RemovePiece returned %v, want the cannon", got)
	}
	if p, _ := b.GetPiece(1, 2); p != nil {
		t.Error("slot not cleared")
	}
	if c.Board() != nil {
		t.Error("removed piece still attached")
	}

	got, err = b.RemovePiece(1, 2)
	if err != nil || got != nil {
		t.Errorf("RemovePiece on empty slot = %v, %v", got, err)
	}
}

func TestBoardString(t *testing.T) {
	b := newTestBoard(t, North)
	place(t, b, NewKing(North, b, nil, 0, 4))
	place(t, b, NewKing(South, b, nil, 9, 4))

	want := "....x....\n" + strings.Repeat(".........\n", 8) + "....X....\n"
	if got := b.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
}
