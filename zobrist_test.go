package spooky

import "testing"

func TestZobristIsStableAndDistinct(t *testing.T) {
	t1 := zobrist()
	t2 := zobrist()
	if t1 != t2 {
		t.Fatalf("zobrist() returned different tables across calls")
	}
	if t1.keyFor(0, Black) == t1.keyFor(0, White) {
		t.Errorf("Black and White keys for the same cell collide")
	}
	if t1.keyFor(0, Black) == t1.keyFor(1, Black) {
		t.Errorf("keys for different cells collide")
	}
	if t1.side() == 0 {
		t.Errorf("side key should not be zero (astronomically unlikely, catches a broken seed)")
	}
}

func TestZobristXORSelfInverse(t *testing.T) {
	tbl := zobrist()
	h := uint64(0)
	h ^= tbl.keyFor(5, Black)
	h ^= tbl.keyFor(5, Black)
	if h != 0 {
		t.Errorf("XORing the same key twice should cancel out, got %d", h)
	}
}
