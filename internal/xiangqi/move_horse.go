package xiangqi

// 马 8 种“日”字：终点 + 马腿（沿长边方向紧挨起点的那一格）
var horseLegMoves = [8]struct {
	Dr, Dc int // 终点
	Br, Bc int // 马腿
}{
	{-2, -1, -1, 0},
	{-2, +1, -1, 0},
	{-1, -2, 0, -1},
	{-1, +2, 0, +1},
	{+1, -2, 0, -1},
	{+1, +2, 0, +1},
	{+2, -1, +1, 0},
	{+2, +1, +1, 0},
}

func IsValidHorseMove(targetRow, targetCol int, p Piece) bool {
	b, dr, dc, ok := displacement(targetRow, targetCol, p)
	if !ok {
		return false
	}
	for _, m := range horseLegMoves {
		if m.Dr != dr || m.Dc != dc {
			continue
		}
		// 憋马腿
		return b.occupant(p.Row()+m.Br, p.Col()+m.Bc) == nil
	}
	return false
}
