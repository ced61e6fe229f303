package xiangqi

// 兵：沿本方前进方向走一格，不能后退。
// 开了河界规则时，过河之后还可以横走一格。
func IsValidSoldierMove(targetRow, targetCol int, p Piece) bool {
	b, dr, dc, ok := displacement(targetRow, targetCol, p)
	if !ok {
		return false
	}
	rules := b.Rules()
	side := p.Side()

	fr, fc := rules.Forward(side)
	if fr == 0 && fc == 0 {
		return false
	}
	if dr == fr && dc == fc {
		return true
	}

	if !rules.RiverRules() || !rules.AcrossRiver(side, p.Row(), p.Col()) {
		return false
	}
	lr, lc := rules.Lateral(side)
	return (dr == lr && dc == lc) || (dr == -lr && dc == -lc)
}
