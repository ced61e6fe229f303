package xiangqi

import (
	"fmt"
	"strings"
)

// Side 是一方的“主场”方位：决定底线、前进方向和九宫位置。
type Side int8

const (
	NoSide Side = -1
	North  Side = 0
	South  Side = 1
	East   Side = 2
	West   Side = 3
)

var sideNames = [...]string{"north", "south", "east", "west"}

func (s Side) String() string {
	if s < North || s > West {
		return "none"
	}
	return sideNames[s]
}

// Opponent 对面的一方：南北互为对手，东西互为对手。
func (s Side) Opponent() Side {
	switch s {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	}
	return NoSide
}

// Horizontal 东西向棋局（棋盘旋转 90 度，9 行 10 列）。
func (s Side) Horizontal() bool {
	return s == East || s == West
}

// ParseSide 接受 "north"/"n" 之类的写法，大小写不敏感。
func ParseSide(name string) (Side, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range sideNames {
		if name == n || name == n[:1] {
			return Side(i), nil
		}
	}
	return NoSide, fmt.Errorf("%w: %q", ErrUnknownSide, name)
}

type Kind int8

const (
	KindNone     Kind = iota
	KindKing          // 将 / 帅
	KindGuard         // 士
	KindElephant      // 象
	KindHorse         // 马
	KindRook          // 车
	KindCannon        // 炮
	KindSoldier       // 兵 / 卒
)

var kindLabels = [...]string{"", "X", "G", "E", "H", "R", "C", "S"}

// Label 每种棋子固定的单字符标记，与方位、位置无关。
func (k Kind) Label() string {
	if k <= KindNone || int(k) >= len(kindLabels) {
		return ""
	}
	return kindLabels[k]
}

func (k Kind) String() string {
	switch k {
	case KindKing:
		return "king"
	case KindGuard:
		return "guard"
	case KindElephant:
		return "elephant"
	case KindHorse:
		return "horse"
	case KindRook:
		return "rook"
	case KindCannon:
		return "cannon"
	case KindSoldier:
		return "soldier"
	}
	return "none"
}

func kindFromLabel(label string) Kind {
	for k := KindKing; k <= KindSoldier; k++ {
		if kindLabels[k] == label {
			return k
		}
	}
	return KindNone
}

// Cell 棋盘上的一个格子（行, 列），0-based。
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

type Move struct {
	From Cell `json:"from"`
	To   Cell `json:"to"`
}

func (m Move) String() string {
	return m.From.String() + "-" + m.To.String()
}
