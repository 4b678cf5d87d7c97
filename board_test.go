package spooky

import "testing"

func TestNewBoardRejectsOutOfRangeDimensions(t *testing.T) {
	cases := []struct{ w, h int }{
		{1, 5}, {5, 1}, {33, 10}, {10, 33}, {0, 0}, {-1, 5},
	}
	for _, c := range cases {
		if _, err := NewBoard(c.w, c.h); err == nil {
			t.Errorf("NewBoard(%d,%d): expected error, got nil", c.w, c.h)
		}
	}
}

func TestBoardGetSetRoundTrip(t *testing.T) {
	b, err := NewBoard(9, 9)
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	if err := b.Set(3, 4, Black); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := b.Get(3, 4)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != Black {
		t.Errorf("Get(3,4) = %v, want Black", got)
	}
	if got, _ := b.Get(0, 0); got != Empty {
		t.Errorf("Get(0,0) = %v, want Empty", got)
	}
}

func TestBoardOutOfBounds(t *testing.T) {
	b, _ := NewBoard(9, 9)
	if _, err := b.Get(-1, 0); err == nil {
		t.Errorf("Get(-1,0): expected error")
	}
	if _, err := b.Get(9, 0); err == nil {
		t.Errorf("Get(9,0): expected error")
	}
	if err := b.Set(9, 9, Black); err == nil {
		t.Errorf("Set(9,9): expected error")
	}
}

func TestBoardCloneIsIndependent(t *testing.T) {
	b, _ := NewBoard(5, 5)
	b.Set(1, 1, White)
	clone := b.clone()
	clone.Set(1, 1, Black)
	got, _ := b.Get(1, 1)
	if got != White {
		t.Errorf("mutating clone affected original: got %v, want White", got)
	}
}

func TestBoardColRowInvertsIndex(t *testing.T) {
	b, _ := NewBoard(7, 5)
	for row := 0; row < 5; row++ {
		for col := 0; col < 7; col++ {
			idx := b.index(col, row)
			gotCol, gotRow := b.colRow(idx)
			if gotCol != col || gotRow != row {
				t.Errorf("colRow(index(%d,%d)) = (%d,%d)", col, row, gotCol, gotRow)
			}
		}
	}
}

func TestBoardClear(t *testing.T) {
	b, _ := NewBoard(3, 3)
	b.Set(0, 0, Black)
	b.Set(1, 1, White)
	b.Clear()
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			if got, _ := b.Get(col, row); got != Empty {
				t.Errorf("Get(%d,%d) after Clear = %v, want Empty", col, row, got)
			}
		}
	}
}
