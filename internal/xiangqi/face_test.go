package xiangqi

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFaceKingCaptureVertical(t *testing.T) {
	b := newTestBoard(t, North)
	north := place(t, b, NewKing(North, b, nil, 0, 4))
	south := place(t, b, NewKing(South, b, nil, 9, 4))

	if !north.IsValidFaceKingMove(9, 4) || !south.IsValidFaceKingMove(0, 4) {
		t.Fatal("facing kings on an open file should capture each other")
	}
	if !north.CanMoveTo(9, 4) {
		t.Error("face capture must bypass the palace limit in CanMoveTo")
	}
	if !KingsFace(b) {
		t.Error("KingsFace = false for an open file")
	}

	for row := 1; row < 9; row++ {
		screen := place(t, b, NewRook(South, b, nil, row, 4))
		if north.IsValidFaceKingMove(9, 4) || south.IsValidFaceKingMove(0, 4) {
			t.Errorf("screen at (%d,4) did not block the kings", row)
		}
		if KingsFace(b) {
			t.Errorf("KingsFace with screen at (%d,4)", row)
		}
		if _, err := b.RemovePiece(screen.Row(), screen.Col()); err != nil {
			t.Fatal(err)
		}
	}
	if !north.IsValidFaceKingMove(9, 4) {
		t.Error("removing the screen should reopen the file")
	}
}

func TestFaceKingCaptureHorizontal(t *testing.T) {
	b := newTestBoard(t, West)
	west := place(t, b, NewKing(West, b, nil, 4, 0))
	east := place(t, b, NewKing(East, b, nil, 4, 9))

	if !west.IsValidFaceKingMove(4, 9) || !east.IsValidFaceKingMove(4, 0) {
		t.Fatal("facing kings on a shared row should capture each other")
	}
	place(t, b, NewSoldier(West, b, nil, 4, 5))
	if west.IsValidFaceKingMove(4, 9) || east.IsValidFaceKingMove(4, 0) {
		t.Error("screen on the row did not block")
	}
}

func TestFaceKingRequiresSharedFile(t *testing.T) {
	b := newTestBoard(t, North)
	north := place(t, b, NewKing(North, b, nil, 0, 3))
	place(t, b, NewKing(South, b, nil, 9, 4))
	if north.IsValidFaceKingMove(9, 4) {
		t.Error("kings on different files faced")
	}

	// 同一行不算对脸（南北局只看同列）
	h := newTestBoard(t, North)
	k := place(t, h, NewKing(North, h, nil, 2, 3))
	place(t, h, NewKing(South, h, nil, 2, 5))
	if k.IsValidFaceKingMove(2, 5) {
		t.Error("kings sharing a row faced on a north/south board")
	}
}

func TestFaceKingAxisFollowsBoard(t *testing.T) {
	// 东方的将放在南北局上，也只按列对脸
	b := newTestBoard(t, North)
	north := place(t, b, NewKing(North, b, nil, 0, 4))
	east := place(t, b, NewKing(East, b, nil, 0, 8))
	if east.IsValidFaceKingMove(0, 4) || north.IsValidFaceKingMove(0, 8) {
		t.Error("kings sharing a row faced on a north/south board")
	}

	v := newTestBoard(t, North)
	stray := place(t, v, NewKing(East, v, nil, 0, 4))
	south := place(t, v, NewKing(South, v, nil, 9, 4))
	if !stray.IsValidFaceKingMove(9, 4) || !south.IsValidFaceKingMove(0, 4) {
		t.Error("kings on an open column must face regardless of the mover's side")
	}

	// 东西局反过来只按行
	h := newTestBoard(t, East)
	west := place(t, h, NewKing(West, h, nil, 4, 0))
	north2 := place(t, h, NewKing(North, h, nil, 4, 9))
	if !north2.IsValidFaceKingMove(4, 0) || !west.IsValidFaceKingMove(4, 9) {
		t.Error("kings on an open row must face on an east/west board")
	}
	col := place(t, h, NewKing(South, h, nil, 0, 0))
	if col.IsValidFaceKingMove(4, 0) || west.IsValidFaceKingMove(0, 0) {
		t.Error("kings sharing a column faced on an east/west board")
	}
}

func TestFaceKingOnlyTargetsOpposingKing(t *testing.T) {
	b := newTestBoard(t, North)
	north := place(t, b, NewKing(North, b, nil, 0, 4))
	place(t, b, NewKing(North, b, nil, 9, 4))
	place(t, b, NewRook(South, b, nil, 5, 3))
	if north.IsValidFaceKingMove(9, 4) {
		t.Error("king faced its own side")
	}
	if north.IsValidFaceKingMove(5, 4) || north.IsValidFaceKingMove(5, 3) {
		t.Error("face capture on a non-king target")
	}
}

func TestOpposingKings(t *testing.T) {
	b := newTestBoard(t, North)
	n1 := place(t, b, NewKing(North, b, nil, 0, 4))
	n2 := place(t, b, NewKing(North, b, nil, 1, 3))
	place(t, b, NewKing(South, b, nil, 9, 4))
	place(t, b, NewKing(South, b, nil, 8, 3))
	rook := place(t, b, NewRook(South, b, nil, 5, 5))

	first := n1.OpposingKings()
	want := []Cell{{8, 3}, {9, 4}}
	if diff := cmp.Diff(want, kingCells(first)); diff != "" {
		t.Fatalf("OpposingKings (-want +got):\n%s", diff)
	}
	for i := 0; i < 3; i++ {
		again := n1.OpposingKings()
		if len(again) != len(first) {
			t.Fatalf("call %d returned %d kings, want %d", i, len(again), len(first))
		}
		for j := range again {
			if again[j] != first[j] {
				t.Fatalf("call %d: result order changed at %d", i, j)
			}
		}
	}

	if diff := cmp.Diff(want, kingCells(n2.OpposingKings())); diff != "" {
		t.Errorf("second north king sees different kings (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Cell{{0, 4}, {1, 3}}, kingCells(rook.OpposingKings())); diff != "" {
		t.Errorf("south rook OpposingKings (-want +got):\n%s", diff)
	}

	empty := newTestBoard(t, North)
	lone := place(t, empty, NewKing(North, empty, nil, 0, 4))
	if got := lone.OpposingKings(); len(got) != 0 {
		t.Errorf("OpposingKings on a board without enemies = %v", kingCells(got))
	}
}

func TestFaceKingWithMultipleEnemyKings(t *testing.T) {
	b := newTestBoard(t, North)
	north := place(t, b, NewKing(North, b, nil, 0, 4))
	place(t, b, NewKing(South, b, nil, 8, 4))
	place(t, b, NewKing(South, b, nil, 9, 4))

	if !north.IsValidFaceKingMove(8, 4) {
		t.Error("nearest enemy king should be capturable")
	}
	if north.IsValidFaceKingMove(9, 4) {
		t.Error("the first enemy king screens the second")
	}
}
