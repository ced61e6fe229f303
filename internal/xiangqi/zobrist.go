package xiangqi

import (
	"math/rand/v2"
	"sync"
)

const numHashKinds = int(KindSoldier) + 1

// hashKeys 每个 (方位, 种类, 格子) 一个键，另外每种棋盘方位一个键：
// 同样的子摆在南北局和东西局上哈希不同。
type hashKeys struct {
	pieces      [4][numHashKinds][NumCells]uint64
	orientation [4]uint64
}

var (
	hashOnce  sync.Once
	hashTable hashKeys
)

// 固定种子，进程之间哈希可比。
func loadHashKeys() *hashKeys {
	hashOnce.Do(func() {
		rng := rand.New(rand.NewPCG(0x78696e6771, 0x6a69616e67))
		for side := range hashTable.orientation {
			hashTable.orientation[side] = rng.Uint64()
		}
		for side := range hashTable.pieces {
			for k := int(KindKing); k < numHashKinds; k++ {
				for sq := range hashTable.pieces[side][k] {
					hashTable.pieces[side][k][sq] = rng.Uint64()
				}
			}
		}
	})
	return &hashTable
}

func (t *hashKeys) piece(pc Piece, c Cell, cols int) uint64 {
	side, k := pc.Side(), pc.Kind()
	if side < North || side > West || k <= KindNone || int(k) >= numHashKinds {
		return 0
	}
	return t.pieces[side][k][c.Row*cols+c.Col]
}

// Hash 全量计算当前局面的 Zobrist 哈希，由棋盘方位和每个子的 (方位, 种类, 格子) 决定。
func (b *Board) Hash() uint64 {
	t := loadHashKeys()
	h := t.orientation[b.rules.Orientation()]
	for _, pc := range b.Pieces() {
		h ^= t.piece(pc, pc.Cell(), b.NumColumns())
	}
	return h
}
