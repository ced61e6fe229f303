package xiangqi

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Encode 简单 FEN-like：每行用“/”隔开，连续空格用十进制数字压缩；
// 空格后一个字母表示方位（n/s/e/w）。南方、东方大写。
func Encode(b *Board) string {
	var sb strings.Builder
	for row := 0; row < b.NumRows(); row++ {
		if row > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for col := 0; col < b.NumColumns(); col++ {
			pc := b.occupant(row, col)
			if pc == nil {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteRune(pieceToChar(pc))
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(b.Rules().Orientation().String()[:1])
	return sb.String()
}

// Decode 是 Encode 的逆运算，opts 原样传给 NewRules。
func Decode(text string, opts ...Option) (*Board, error) {
	parts := strings.Fields(text)
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: want \"<rows> <orientation>\", got %q", ErrInvalidLayout, text)
	}
	orientation, err := ParseSide(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLayout, err)
	}
	rules, err := NewRules(orientation, opts...)
	if err != nil {
		return nil, err
	}

	// 大写属于南/东，小写属于北/西
	upper, lower := South, North
	if orientation.Horizontal() {
		upper, lower = East, West
	}

	rows := strings.Split(parts[0], "/")
	if len(rows) != rules.NumRows() {
		return nil, fmt.Errorf("%w: %d rows, want %d", ErrInvalidLayout, len(rows), rules.NumRows())
	}
	b := NewBoard(rules)
	for r, line := range rows {
		c := 0
		digits := ""
		flush := func() error {
			if digits == "" {
				return nil
			}
			n, err := strconv.Atoi(digits)
			if err != nil || n == 0 {
				return fmt.Errorf("%w: row %d: bad run %q", ErrInvalidLayout, r, digits)
			}
			c += n
			digits = ""
			return nil
		}
		for _, ch := range line {
			if unicode.IsDigit(ch) {
				digits += string(ch)
				continue
			}
			if err := flush(); err != nil {
				return nil, err
			}
			if ch == '.' {
				c++
				continue
			}
			kind := kindFromLabel(string(unicode.ToUpper(ch)))
			if kind == KindNone {
				return nil, fmt.Errorf("%w: row %d: unknown piece %q", ErrInvalidLayout, r, ch)
			}
			if c >= rules.NumColumns() {
				return nil, fmt.Errorf("%w: row %d too long", ErrInvalidLayout, r)
			}
			side := lower
			if unicode.IsUpper(ch) {
				side = upper
			}
			if err := b.AddPiece(newPiece(kind, side, b, rules.icon(side, kind), r, c), r, c); err != nil {
				return nil, err
			}
			c++
		}
		if err := flush(); err != nil {
			return nil, err
		}
		if c != rules.NumColumns() {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidLayout, r, c, rules.NumColumns())
		}
	}
	return b, nil
}
