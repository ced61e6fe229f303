package xiangqi

import "fmt"

const (
	LongEdge  = 10 // 底线到底线
	ShortEdge = 9  // 底线本身的长度
	NumCells  = LongEdge * ShortEdge

	palaceFileLo = 3
	palaceFileHi = 5
	palaceDepth  = 3 // 九宫纵深：rank 0..2
	riverRank    = 5 // rank >= 5 即已过河
)

// frame 描述某一方视角的坐标系：rank 为离己方底线的距离，file 为横向 0..8。
// 格子 = origin + rank*fwd + file*lat。四个方位全部由 frameOf 推导。
type frame struct {
	originRow, originCol int
	fwdRow, fwdCol       int
	latRow, latCol       int
}

func dimensions(s Side) (rows, cols int) {
	if s.Horizontal() {
		return ShortEdge, LongEdge
	}
	return LongEdge, ShortEdge
}

func frameOf(s Side) frame {
	var f frame
	switch s {
	case North:
		f.fwdRow = 1
	case South:
		f.fwdRow = -1
	case West:
		f.fwdCol = 1
	case East:
		f.fwdCol = -1
	default:
		return f
	}
	// 横向 = 前进方向逆时针转 90 度，这样四方的布局互为旋转
	f.latRow, f.latCol = -f.fwdCol, f.fwdRow

	rows, cols := dimensions(s)
	if f.fwdRow < 0 || f.latRow < 0 {
		f.originRow = rows - 1
	}
	if f.fwdCol < 0 || f.latCol < 0 {
		f.originCol = cols - 1
	}
	return f
}

func (f frame) cell(rank, file int) (row, col int) {
	return f.originRow + rank*f.fwdRow + file*f.latRow,
		f.originCol + rank*f.fwdCol + file*f.latCol
}

func (f frame) coords(row, col int) (rank, file int) {
	dr, dc := row-f.originRow, col-f.originCol
	return dr*f.fwdRow + dc*f.fwdCol, dr*f.latRow + dc*f.latCol
}

// IconSet 由展示层提供，引擎只负责把结果挂到棋子上，不做解释。
type IconSet func(side Side, kind Kind) any

type Option func(*Rules)

// WithRiverRules 打开传统的河界限制：象不过河，兵过河后可以横走一格。
func WithRiverRules() Option {
	return func(r *Rules) { r.river = true }
}

func WithIconSet(icons IconSet) Option {
	return func(r *Rules) { r.icons = icons }
}

// Rules 只有方位这一项状态，所有几何量都由方位算出来。
type Rules struct {
	orientation Side
	rows, cols  int
	river       bool
	icons       IconSet
}

func NewRules(orientation Side, opts ...Option) (*Rules, error) {
	if orientation < North || orientation > West {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSide, orientation)
	}
	r := &Rules{orientation: orientation}
	r.rows, r.cols = dimensions(orientation)
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

func (r *Rules) Orientation() Side { return r.orientation }
func (r *Rules) NumRows() int      { return r.rows }
func (r *Rules) NumColumns() int   { return r.cols }
func (r *Rules) RiverRules() bool  { return r.river }

// Sides 参与对局的两方，先是 orientation 自己。
func (r *Rules) Sides() [2]Side {
	return [2]Side{r.orientation, r.orientation.Opponent()}
}

// Plays 该方是否属于这个方位的棋局（南北局里没有东西方）。
func (r *Rules) Plays(s Side) bool {
	return s >= North && s <= West && s.Horizontal() == r.orientation.Horizontal()
}

func (r *Rules) InBounds(row, col int) bool {
	return row >= 0 && row < r.rows && col >= 0 && col < r.cols
}

// RankFile 把 (row, col) 换算成 side 视角下的 (rank, file)。
func (r *Rules) RankFile(side Side, row, col int) (rank, file int) {
	return frameOf(side).coords(row, col)
}

// CellAt 是 RankFile 的逆运算。
func (r *Rules) CellAt(side Side, rank, file int) (row, col int) {
	return frameOf(side).cell(rank, file)
}

// Forward 兵的前进方向（单位向量）。
func (r *Rules) Forward(side Side) (dRow, dCol int) {
	if !r.Plays(side) {
		return 0, 0
	}
	f := frameOf(side)
	return f.fwdRow, f.fwdCol
}

// Lateral 与 Forward 垂直的横向单位向量。
func (r *Rules) Lateral(side Side) (dRow, dCol int) {
	if !r.Plays(side) {
		return 0, 0
	}
	f := frameOf(side)
	return f.latRow, f.latCol
}

// 是否在九宫
func (r *Rules) InPalace(side Side, row, col int) bool {
	if !r.Plays(side) || !r.InBounds(row, col) {
		return false
	}
	rank, file := r.RankFile(side, row, col)
	return rank >= 0 && rank < palaceDepth && file >= palaceFileLo && file <= palaceFileHi
}

// PalaceCells 九宫的 9 个格子，按行优先顺序。
func (r *Rules) PalaceCells(side Side) []Cell {
	var cells []Cell
	for row := 0; row < r.rows; row++ {
		for col := 0; col < r.cols; col++ {
			if r.InPalace(side, row, col) {
				cells = append(cells, Cell{Row: row, Col: col})
			}
		}
	}
	return cells
}

// AcrossRiver 是否已经过河（进入对方半场）。
func (r *Rules) AcrossRiver(side Side, row, col int) bool {
	if !r.Plays(side) || !r.InBounds(row, col) {
		return false
	}
	rank, _ := r.RankFile(side, row, col)
	return rank >= riverRank
}

func (r *Rules) icon(side Side, kind Kind) any {
	if r.icons == nil {
		return nil
	}
	return r.icons(side, kind)
}

// 开局布子，rank/file 都是该方自己的视角
var openingBackRank = [ShortEdge]Kind{
	KindRook, KindHorse, KindElephant, KindGuard, KindKing, KindGuard, KindElephant, KindHorse, KindRook,
}

type openingSlot struct {
	Kind       Kind
	Rank, File int
}

var openingLayout = func() []openingSlot {
	out := make([]openingSlot, 0, 16)
	for file, k := range openingBackRank {
		out = append(out, openingSlot{k, 0, file})
	}
	out = append(out, openingSlot{KindCannon, 2, 1}, openingSlot{KindCannon, 2, 7})
	for file := 0; file < ShortEdge; file += 2 {
		out = append(out, openingSlot{KindSoldier, 3, file})
	}
	return out
}()

// StartGame 清空棋盘并摆好双方各 16 子的开局。
// 先在临时格子里布好，再整体替换，失败时棋盘保持原样。
func (r *Rules) StartGame(b *Board) error {
	if b == nil {
		return fmt.Errorf("start game: nil board")
	}
	if b.NumRows() != r.rows || b.NumColumns() != r.cols {
		return fmt.Errorf("start game: board is %dx%d, rules want %dx%d",
			b.NumRows(), b.NumColumns(), r.rows, r.cols)
	}

	squares := make([]Piece, r.rows*r.cols)
	for _, side := range r.Sides() {
		for _, slot := range openingLayout {
			row, col := r.CellAt(side, slot.Rank, slot.File)
			if !r.InBounds(row, col) {
				return fmt.Errorf("start game: %v %v: %w",
					side, slot.Kind, &OutOfBoundsError{Row: row, Col: col, Rows: r.rows, Cols: r.cols})
			}
			idx := row*r.cols + col
			if squares[idx] != nil {
				return fmt.Errorf("start game: cell (%d,%d) assigned twice", row, col)
			}
			squares[idx] = newPiece(slot.Kind, side, b, r.icon(side, slot.Kind), row, col)
		}
	}
	b.replace(squares)
	return nil
}
