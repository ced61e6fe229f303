package xiangqi

import "strings"

// Board 一格最多一子；棋子记录的 (row, col) 总与所在格一致。
// 尺寸由构造时的 Rules 决定，之后不再改变。
type Board struct {
	rules   *Rules
	squares []Piece
}

func NewBoard(r *Rules) *Board {
	return &Board{
		rules:   r,
		squares: make([]Piece, r.NumRows()*r.NumColumns()),
	}
}

func (b *Board) Rules() *Rules   { return b.rules }
func (b *Board) NumRows() int    { return b.rules.NumRows() }
func (b *Board) NumColumns() int { return b.rules.NumColumns() }

func (b *Board) InBounds(row, col int) bool { return b.rules.InBounds(row, col) }

func (b *Board) indexOf(row, col int) int { return row*b.rules.NumColumns() + col }

func (b *Board) checkBounds(row, col int) error {
	if b.InBounds(row, col) {
		return nil
	}
	return &OutOfBoundsError{Row: row, Col: col, Rows: b.NumRows(), Cols: b.NumColumns()}
}

// occupant 不报错的查询，盘外返回 nil，供走法判断内部使用。
func (b *Board) occupant(row, col int) Piece {
	if !b.InBounds(row, col) {
		return nil
	}
	return b.squares[b.indexOf(row, col)]
}

// AddPiece 把棋子放到 (row, col)，覆盖原有的子（吃子是否合法由调用方负责）。
// 如果棋子原来在某个棋盘上，原来的格子会被清空。
func (b *Board) AddPiece(p Piece, row, col int) error {
	if p == nil {
		return ErrNilPiece
	}
	if err := b.checkBounds(row, col); err != nil {
		return err
	}
	pb := p.base()
	if prev := pb.board; prev != nil && prev.occupant(pb.row, pb.col) == p {
		prev.squares[prev.indexOf(pb.row, pb.col)] = nil
	}

	idx := b.indexOf(row, col)
	if old := b.squares[idx]; old != nil && old != p {
		old.base().board = nil // 被吃掉
	}
	b.squares[idx] = p
	pb.board, pb.row, pb.col = b, row, col
	return nil
}

// GetPiece 返回 (row, col) 上的子，空格返回 nil。
func (b *Board) GetPiece(row, col int) (Piece, error) {
	if err := b.checkBounds(row, col); err != nil {
		return nil, err
	}
	return b.squares[b.indexOf(row, col)], nil
}

// RemovePiece 清空 (row, col)，返回原来的子（可能为 nil）。
func (b *Board) RemovePiece(row, col int) (Piece, error) {
	if err := b.checkBounds(row, col); err != nil {
		return nil, err
	}
	idx := b.indexOf(row, col)
	p := b.squares[idx]
	if p != nil {
		b.squares[idx] = nil
		p.base().board = nil
	}
	return p, nil
}

func (b *Board) Clear() {
	b.replace(make([]Piece, len(b.squares)))
}

func (b *Board) replace(squares []Piece) {
	for _, p := range b.squares {
		if p != nil && p.base().board == b {
			p.base().board = nil
		}
	}
	b.squares = squares
}

// Pieces 按行优先顺序返回盘上所有棋子。
func (b *Board) Pieces() []Piece {
	var out []Piece
	for _, p := range b.squares {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}

// PiecesOf 某一方的全部棋子，行优先。
func (b *Board) PiecesOf(side Side) []Piece {
	var out []Piece
	for _, p := range b.squares {
		if p != nil && p.Side() == side {
			out = append(out, p)
		}
	}
	return out
}

// String 调试用的网格，每行一个换行。
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < b.NumRows(); row++ {
		for col := 0; col < b.NumColumns(); col++ {
			sb.WriteRune(pieceToChar(b.occupant(row, col)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
