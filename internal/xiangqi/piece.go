package xiangqi

import "unicode"

// Piece 是所有棋子的公共身份：方位、种类、所在棋盘（不持有）和最后记录的位置。
// 构造时不会自动登记到棋盘上，需要调用 Board.AddPiece。
type Piece interface {
	Kind() Kind
	Side() Side
	Label() string
	Icon() any
	Row() int
	Col() int
	Cell() Cell
	Board() *Board

	// CanMoveTo 该种棋子的几何规则，且目标格在盘内、不是原地、没有己方棋子。
	CanMoveTo(targetRow, targetCol int) bool
	// OpposingKings 盘上所有异方的将，行优先。
	OpposingKings() []*King
	Equals(other Piece) bool

	base() *pieceBase
}

// 各种走法能力，棋子只实现自己用得到的那几个
type (
	StraightStepper interface {
		IsValidSingleStraightMove(targetRow, targetCol int) bool
	}
	DiagonalStepper interface {
		IsValidSingleDiagonalMove(targetRow, targetCol int) bool
	}
	PalaceBound interface {
		IsValidPalaceMove(targetRow, targetCol int) bool
	}
	KingFacer interface {
		IsValidFaceKingMove(targetRow, targetCol int) bool
	}
	ElephantJumper interface {
		IsValidElephantMove(targetRow, targetCol int) bool
	}
	SoldierStepper interface {
		IsValidSoldierMove(targetRow, targetCol int) bool
	}
	CannonSlider interface {
		IsValidCannonMove(targetRow, targetCol int) bool
	}
	RookSlider interface {
		IsValidRookMove(targetRow, targetCol int) bool
	}
	HorseJumper interface {
		IsValidHorseMove(targetRow, targetCol int) bool
	}
)

type pieceBase struct {
	kind     Kind
	side     Side
	icon     any
	board    *Board
	row, col int
}

func (p *pieceBase) Kind() Kind       { return p.kind }
func (p *pieceBase) Side() Side       { return p.side }
func (p *pieceBase) Label() string    { return p.kind.Label() }
func (p *pieceBase) Icon() any        { return p.icon }
func (p *pieceBase) Row() int         { return p.row }
func (p *pieceBase) Col() int         { return p.col }
func (p *pieceBase) Cell() Cell       { return Cell{Row: p.row, Col: p.col} }
func (p *pieceBase) Board() *Board    { return p.board }
func (p *pieceBase) base() *pieceBase { return p }

func (p *pieceBase) OpposingKings() []*King {
	return opposingKings(p.board, p.side)
}

// Equals 结构相等：方位、种类、位置、标记都相同即相等，与是否同一对象无关。
func (p *pieceBase) Equals(other Piece) bool {
	if other == nil {
		return false
	}
	o := other.base()
	return p.kind == o.kind && p.side == o.side &&
		p.row == o.row && p.col == o.col && p.Label() == o.Label()
}

// Equal 同 Piece.Equals，但允许两侧为 nil。
func Equal(a, b Piece) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equals(b)
}

// landable 目标格在盘内、不是原地、没有己方棋子
func (p *pieceBase) landable(targetRow, targetCol int) bool {
	if p.board == nil || !p.board.InBounds(targetRow, targetCol) {
		return false
	}
	if targetRow == p.row && targetCol == p.col {
		return false
	}
	dst := p.board.occupant(targetRow, targetCol)
	return dst == nil || dst.Side() != p.side
}

type King struct{ pieceBase }

func NewKing(side Side, b *Board, icon any, row, col int) *King {
	return &King{pieceBase{kind: KindKing, side: side, icon: icon, board: b, row: row, col: col}}
}

func (k *King) IsValidSingleStraightMove(targetRow, targetCol int) bool {
	return IsValidSingleStraightMove(targetRow, targetCol, k)
}

func (k *King) IsValidPalaceMove(targetRow, targetCol int) bool {
	return IsValidPalaceMove(targetRow, targetCol, k)
}

func (k *King) IsValidFaceKingMove(targetRow, targetCol int) bool {
	return IsValidFaceKingMove(targetRow, targetCol, k)
}

// 将：九宫内上下左右一格，或者直接吃掉对脸的将
func (k *King) CanMoveTo(targetRow, targetCol int) bool {
	if !k.landable(targetRow, targetCol) {
		return false
	}
	return k.IsValidSingleStraightMove(targetRow, targetCol) || k.IsValidFaceKingMove(targetRow, targetCol)
}

type Guard struct{ pieceBase }

func NewGuard(side Side, b *Board, icon any, row, col int) *Guard {
	return &Guard{pieceBase{kind: KindGuard, side: side, icon: icon, board: b, row: row, col: col}}
}

func (g *Guard) IsValidSingleDiagonalMove(targetRow, targetCol int) bool {
	return IsValidSingleDiagonalMove(targetRow, targetCol, g)
}

func (g *Guard) IsValidPalaceMove(targetRow, targetCol int) bool {
	return IsValidPalaceMove(targetRow, targetCol, g)
}

// 士：九宫内斜走一格
func (g *Guard) CanMoveTo(targetRow, targetCol int) bool {
	return g.landable(targetRow, targetCol) && g.IsValidSingleDiagonalMove(targetRow, targetCol)
}

type Elephant struct{ pieceBase }

func NewElephant(side Side, b *Board, icon any, row, col int) *Elephant {
	return &Elephant{pieceBase{kind: KindElephant, side: side, icon: icon, board: b, row: row, col: col}}
}

func (e *Elephant) IsValidElephantMove(targetRow, targetCol int) bool {
	return IsValidElephantMove(targetRow, targetCol, e)
}

func (e *Elephant) CanMoveTo(targetRow, targetCol int) bool {
	return e.landable(targetRow, targetCol) && e.IsValidElephantMove(targetRow, targetCol)
}

type Soldier struct{ pieceBase }

func NewSoldier(side Side, b *Board, icon any, row, col int) *Soldier {
	return &Soldier{pieceBase{kind: KindSoldier, side: side, icon: icon, board: b, row: row, col: col}}
}

func (s *Soldier) IsValidSoldierMove(targetRow, targetCol int) bool {
	return IsValidSoldierMove(targetRow, targetCol, s)
}

func (s *Soldier) CanMoveTo(targetRow, targetCol int) bool {
	return s.landable(targetRow, targetCol) && s.IsValidSoldierMove(targetRow, targetCol)
}

type Cannon struct{ pieceBase }

func NewCannon(side Side, b *Board, icon any, row, col int) *Cannon {
	return &Cannon{pieceBase{kind: KindCannon, side: side, icon: icon, board: b, row: row, col: col}}
}

func (c *Cannon) IsValidCannonMove(targetRow, targetCol int) bool {
	return IsValidCannonMove(targetRow, targetCol, c)
}

func (c *Cannon) CanMoveTo(targetRow, targetCol int) bool {
	return c.landable(targetRow, targetCol) && c.IsValidCannonMove(targetRow, targetCol)
}

type Rook struct{ pieceBase }

func NewRook(side Side, b *Board, icon any, row, col int) *Rook {
	return &Rook{pieceBase{kind: KindRook, side: side, icon: icon, board: b, row: row, col: col}}
}

func (r *Rook) IsValidRookMove(targetRow, targetCol int) bool {
	return IsValidRookMove(targetRow, targetCol, r)
}

func (r *Rook) CanMoveTo(targetRow, targetCol int) bool {
	return r.landable(targetRow, targetCol) && r.IsValidRookMove(targetRow, targetCol)
}

type Horse struct{ pieceBase }

func NewHorse(side Side, b *Board, icon any, row, col int) *Horse {
	return &Horse{pieceBase{kind: KindHorse, side: side, icon: icon, board: b, row: row, col: col}}
}

func (h *Horse) IsValidHorseMove(targetRow, targetCol int) bool {
	return IsValidHorseMove(targetRow, targetCol, h)
}

func (h *Horse) CanMoveTo(targetRow, targetCol int) bool {
	return h.landable(targetRow, targetCol) && h.IsValidHorseMove(targetRow, targetCol)
}

// NewPiece 按种类构造棋子，种类未知时返回 nil。
func NewPiece(kind Kind, side Side, b *Board, icon any, row, col int) Piece {
	return newPiece(kind, side, b, icon, row, col)
}

func newPiece(kind Kind, side Side, b *Board, icon any, row, col int) Piece {
	switch kind {
	case KindKing:
		return NewKing(side, b, icon, row, col)
	case KindGuard:
		return NewGuard(side, b, icon, row, col)
	case KindElephant:
		return NewElephant(side, b, icon, row, col)
	case KindSoldier:
		return NewSoldier(side, b, icon, row, col)
	case KindCannon:
		return NewCannon(side, b, icon, row, col)
	case KindRook:
		return NewRook(side, b, icon, row, col)
	case KindHorse:
		return NewHorse(side, b, icon, row, col)
	}
	return nil
}

// 南方、东方大写，北方、西方小写
func pieceToChar(p Piece) rune {
	if p == nil {
		return '.'
	}
	label := p.Label()
	if label == "" {
		return '?'
	}
	ch := rune(label[0])
	if p.Side() == South || p.Side() == East {
		return unicode.ToUpper(ch)
	}
	return unicode.ToLower(ch)
}
