package xiangqi

// opposingKings 扫全盘，收集所有不属于 side 的将。
// 不假设对方只有一个将，有几个返回几个。
func opposingKings(b *Board, side Side) []*King {
	if b == nil {
		return nil
	}
	var kings []*King
	for _, pc := range b.squares {
		k, ok := pc.(*King)
		if !ok || k.Side() == side {
			continue
		}
		kings = append(kings, k)
	}
	return kings
}

// IsValidFaceKingMove 王对脸：目标格是对方的将，两将在棋盘的同一条纵线上
// （南北局同列，东西局同行，由棋盘方位决定，与走子方无关），且中间没有任何子。
func IsValidFaceKingMove(targetRow, targetCol int, p Piece) bool {
	b, _, _, ok := displacement(targetRow, targetCol, p)
	if !ok {
		return false
	}
	dst := b.occupant(targetRow, targetCol)
	if dst == nil {
		return false
	}
	found := false
	for _, k := range p.OpposingKings() {
		if k.Equals(dst) {
			found = true
			break
		}
	}
	if !found {
		return false
	}

	if b.Rules().Orientation().Horizontal() {
		if p.Row() != targetRow {
			return false
		}
	} else if p.Col() != targetCol {
		return false
	}
	n, line := countBetween(b, p.Row(), p.Col(), targetRow, targetCol)
	return line && n == 0
}

// KingsFace 盘上是否存在两个异方的将直接对脸（中间无子）。
func KingsFace(b *Board) bool {
	for _, pc := range b.squares {
		k, ok := pc.(*King)
		if !ok {
			continue
		}
		for _, other := range k.OpposingKings() {
			if k.IsValidFaceKingMove(other.Row(), other.Col()) {
				return true
			}
		}
	}
	return false
}
