package xiangqi

import (
	"cmp"
	"context"
	"slices"

	"golang.org/x/sync/errgroup"
)

// TargetsFor 棋子当前能走到的所有格子，行优先。
func TargetsFor(p Piece) []Cell {
	if p == nil || p.Board() == nil {
		return nil
	}
	b := p.Board()
	var out []Cell
	for row := 0; row < b.NumRows(); row++ {
		for col := 0; col < b.NumColumns(); col++ {
			if p.CanMoveTo(row, col) {
				out = append(out, Cell{Row: row, Col: col})
			}
		}
	}
	return out
}

// LegalMoves 生成 side 一方的全部几何合法走法（不考虑被将军）。
// 每个棋子一个 goroutine；判断只读棋盘，调用期间不能有人改棋盘。
func LegalMoves(ctx context.Context, b *Board, side Side) ([]Move, error) {
	if b == nil {
		return nil, ErrNilBoard
	}
	pieces := b.PiecesOf(side)
	perPiece := make([][]Move, len(pieces))

	g, ctx := errgroup.WithContext(ctx)
	for i, pc := range pieces {
		g.Go(func() error {
			from := pc.Cell()
			var moves []Move
			for row := 0; row < b.NumRows(); row++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				for col := 0; col < b.NumColumns(); col++ {
					if pc.CanMoveTo(row, col) {
						moves = append(moves, Move{From: from, To: Cell{Row: row, Col: col}})
					}
				}
			}
			perPiece[i] = moves
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []Move
	for _, ms := range perPiece {
		out = append(out, ms...)
	}
	slices.SortFunc(out, compareMoves)
	return out, nil
}

func compareMoves(a, b Move) int {
	if c := cmp.Compare(a.From.Row, b.From.Row); c != 0 {
		return c
	}
	if c := cmp.Compare(a.From.Col, b.From.Col); c != 0 {
		return c
	}
	if c := cmp.Compare(a.To.Row, b.To.Row); c != 0 {
		return c
	}
	return cmp.Compare(a.To.Col, b.To.Col)
}
