package xiangqi

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfBounds   = errors.New("cell out of bounds")
	ErrInvalidLayout = errors.New("invalid board layout")
	ErrUnknownSide   = errors.New("unknown side")
	ErrNilPiece      = errors.New("nil piece")
	ErrNilBoard      = errors.New("nil board")
)

// OutOfBoundsError 记录越界的坐标以及棋盘尺寸；errors.Is(err, ErrOutOfBounds) 为真。
type OutOfBoundsError struct {
	Row, Col   int
	Rows, Cols int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("cell (%d,%d) out of bounds for %dx%d board", e.Row, e.Col, e.Rows, e.Cols)
}

func (e *OutOfBoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}
