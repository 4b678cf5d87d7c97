package spooky

import "testing"

func TestMoveEncodeDecodeRoundTrip(t *testing.T) {
	const w, h = 9, 9
	moves := []Move{Place(0, 0), Place(8, 8), Place(3, 5), PassMove()}
	for _, m := range moves {
		action := m.Encode(w, h)
		decoded, err := DecodeAction(action, w, h)
		if err != nil {
			t.Fatalf("DecodeAction(%d): %v", action, err)
		}
		if decoded != m {
			t.Errorf("round trip of %v: got %v", m, decoded)
		}
	}
}

func TestEncodeIsBijective(t *testing.T) {
	const w, h = 4, 4
	seen := make(map[int]bool)
	total := TotalActions(w, h)
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			a := Place(col, row).Encode(w, h)
			if a < 0 || a >= total {
				t.Fatalf("action %d out of range [0,%d)", a, total)
			}
			if seen[a] {
				t.Fatalf("duplicate action %d", a)
			}
			seen[a] = true
		}
	}
	passAction := PassMove().Encode(w, h)
	if passAction != w*h {
		t.Errorf("pass action = %d, want %d", passAction, w*h)
	}
	seen[passAction] = true
	if len(seen) != total {
		t.Errorf("covered %d of %d actions", len(seen), total)
	}
}

func TestDecodeActionRejectsOutOfRange(t *testing.T) {
	const w, h = 9, 9
	if _, err := DecodeAction(-1, w, h); err == nil {
		t.Errorf("DecodeAction(-1): expected error")
	}
	if _, err := DecodeAction(w*h+1, w, h); err == nil {
		t.Errorf("DecodeAction(w*h+1): expected error")
	}
}

func TestMoveString(t *testing.T) {
	if got := PassMove().String(); got != "pass" {
		t.Errorf("PassMove().String() = %q", got)
	}
	if got := Place(2, 3).String(); got != "(2,3)" {
		t.Errorf("Place(2,3).String() = %q", got)
	}
}
