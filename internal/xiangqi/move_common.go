package xiangqi

import "golang.org/x/exp/constraints"

// 所有 IsValid*Move 都只读棋盘，不合法就返回 false，不报错。
// 这里只看几何，落点上是不是己方棋子交给 Piece.CanMoveTo。

func abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

func sign[T constraints.Signed](v T) T {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// displacement 棋子到目标的位移；棋子不在棋盘上或目标出界时 ok=false。
func displacement(targetRow, targetCol int, p Piece) (b *Board, dr, dc int, ok bool) {
	if p == nil {
		return nil, 0, 0, false
	}
	b = p.Board()
	if b == nil || !b.InBounds(targetRow, targetCol) {
		return nil, 0, 0, false
	}
	dr, dc = targetRow-p.Row(), targetCol-p.Col()
	if dr == 0 && dc == 0 {
		return nil, 0, 0, false
	}
	return b, dr, dc, true
}

// countBetween 同一行或同一列上，两格之间（不含两端）的棋子数。
func countBetween(b *Board, fromRow, fromCol, toRow, toCol int) (int, bool) {
	if fromRow != toRow && fromCol != toCol {
		return 0, false
	}
	stepR, stepC := sign(toRow-fromRow), sign(toCol-fromCol)
	if stepR == 0 && stepC == 0 {
		return 0, false
	}
	n := 0
	for r, c := fromRow+stepR, fromCol+stepC; r != toRow || c != toCol; r, c = r+stepR, c+stepC {
		if b.occupant(r, c) != nil {
			n++
		}
	}
	return n, true
}

// IsValidPalaceMove 目标格是否在该子一方的九宫里，与步数无关。
func IsValidPalaceMove(targetRow, targetCol int, p Piece) bool {
	if p == nil || p.Board() == nil {
		return false
	}
	return p.Board().Rules().InPalace(p.Side(), targetRow, targetCol)
}

// 将：上下左右一格，且不出九宫
func IsValidSingleStraightMove(targetRow, targetCol int, p Piece) bool {
	_, dr, dc, ok := displacement(targetRow, targetCol, p)
	if !ok || abs(dr)+abs(dc) != 1 {
		return false
	}
	return IsValidPalaceMove(targetRow, targetCol, p)
}

// 士：斜走一格，且不出九宫
func IsValidSingleDiagonalMove(targetRow, targetCol int, p Piece) bool {
	_, dr, dc, ok := displacement(targetRow, targetCol, p)
	if !ok || abs(dr) != 1 || abs(dc) != 1 {
		return false
	}
	return IsValidPalaceMove(targetRow, targetCol, p)
}

// 象：田字，象眼不能有子。开了河界规则时不能过河。
func IsValidElephantMove(targetRow, targetCol int, p Piece) bool {
	b, dr, dc, ok := displacement(targetRow, targetCol, p)
	if !ok || abs(dr) != 2 || abs(dc) != 2 {
		return false
	}
	if b.occupant(p.Row()+dr/2, p.Col()+dc/2) != nil {
		return false // 塞象眼
	}
	if rules := b.Rules(); rules.RiverRules() && rules.AcrossRiver(p.Side(), targetRow, targetCol) {
		return false
	}
	return true
}

// 车：横竖任意格，中间不能有子
func IsValidRookMove(targetRow, targetCol int, p Piece) bool {
	b, _, _, ok := displacement(targetRow, targetCol, p)
	if !ok {
		return false
	}
	n, line := countBetween(b, p.Row(), p.Col(), targetRow, targetCol)
	return line && n == 0
}

// 炮：走子时中间无子；吃子时中间恰好隔一个炮架
func IsValidCannonMove(targetRow, targetCol int, p Piece) bool {
	b, _, _, ok := displacement(targetRow, targetCol, p)
	if !ok {
		return false
	}
	n, line := countBetween(b, p.Row(), p.Col(), targetRow, targetCol)
	if !line {
		return false
	}
	if b.occupant(targetRow, targetCol) == nil {
		return n == 0
	}
	return n == 1
}
