package game

import (
	"sync"
	"time"

	"xiangqi/internal/xiangqi"
)

// GameState 一局棋的棋盘。引擎本身不加锁，写操作在这里串行化：
// 同一时刻只有一个写者，读者可以并发（比如并行生成走法）。
type GameState struct {
	ID        string
	CreatedAt time.Time

	mu        sync.RWMutex
	board     *xiangqi.Board
	updatedAt time.Time
}

// Read 持读锁调用 fn，fn 不能修改棋盘。
func (g *GameState) Read(fn func(b *xiangqi.Board)) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	fn(g.board)
}

// Write 持写锁调用 fn；fn 返回错误时照样返回，但不会回滚 fn 已做的修改。
func (g *GameState) Write(fn func(b *xiangqi.Board) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := fn(g.board); err != nil {
		return err
	}
	g.updatedAt = time.Now()
	return nil
}

func (g *GameState) UpdatedAt() time.Time {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.updatedAt
}

// Snapshot 当前局面的文本编码和哈希。
func (g *GameState) Snapshot() (layout string, hash uint64) {
	g.Read(func(b *xiangqi.Board) {
		layout, hash = xiangqi.Encode(b), b.Hash()
	})
	return layout, hash
}
