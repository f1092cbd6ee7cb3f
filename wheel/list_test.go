package wheel

import "testing"

func names(l *List[Participant]) []string {
	items := l.Items()
	out := make([]string, len(items))
	for i, p := range items {
		out[i] = p.Name
	}
	return out
}

func abcList() *List[Participant] {
	return NewList([]Participant{{Name: "A"}, {Name: "B"}, {Name: "C"}})
}

func TestAdvanceEmptyList(t *testing.T) {
	l := NewList[Participant](nil)

	l.Advance(1)
	l.Advance(0)
	l.Advance(7)

	if idx := l.SelectedIndex(); idx != -1 {
		t.Errorf("Expected no selection on empty list, got index %d", idx)
	}
	if _, ok := l.Selected(); ok {
		t.Error("Expected Selected to report absent on empty list")
	}
}

func TestAdvanceSelectsFirstRegardlessOfStep(t *testing.T) {
	tests := []struct {
		name string
		step int
	}{
		{"Zero step", 0},
		{"Single step", 1},
		{"Large step", 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := abcList()
			l.Advance(tt.step)
			if idx := l.SelectedIndex(); idx != 0 {
				t.Errorf("Expected first advance to select index 0, got %d", idx)
			}
		})
	}
}

func TestAdvanceWrapsAround(t *testing.T) {
	l := abcList()

	// Repeated Advance(1) visits A, B, C, then wraps to A.
	want := []string{"A", "B", "C", "A"}
	for i, name := range want {
		l.Advance(1)
		got, ok := l.Selected()
		if !ok {
			t.Fatalf("Advance #%d: expected a selection", i+1)
		}
		if got.Name != name {
			t.Errorf("Advance #%d: expected %q, got %q", i+1, name, got.Name)
		}
	}
}

func TestAdvanceModularArithmetic(t *testing.T) {
	tests := []struct {
		name  string
		start int
		step  int
		want  int
	}{
		{"No movement", 1, 0, 1},
		{"Within bounds", 0, 2, 2},
		{"Exact wrap", 1, 2, 0},
		{"Multiple wraps", 2, 7, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := abcList()
			l.Advance(0) // select index 0
			l.Advance(tt.start)
			if idx := l.SelectedIndex(); idx != tt.start {
				t.Fatalf("Setup failed: expected start index %d, got %d", tt.start, idx)
			}

			l.Advance(tt.step)
			if idx := l.SelectedIndex(); idx != tt.want {
				t.Errorf("Expected index %d after Advance(%d) from %d, got %d", tt.want, tt.step, tt.start, idx)
			}
		})
	}
}

func TestRetreat(t *testing.T) {
	t.Run("Empty list", func(t *testing.T) {
		l := NewList[Participant](nil)
		l.Retreat()
		if idx := l.SelectedIndex(); idx != -1 {
			t.Errorf("Expected no selection, got index %d", idx)
		}
	})

	t.Run("No selection selects first", func(t *testing.T) {
		l := abcList()
		l.Retreat()
		if idx := l.SelectedIndex(); idx != 0 {
			t.Errorf("Expected index 0, got %d", idx)
		}
	})

	t.Run("Wraps from first to last", func(t *testing.T) {
		l := abcList()
		l.Advance(0) // select A
		l.Retreat()
		if idx := l.SelectedIndex(); idx != 2 {
			t.Errorf("Expected wrap to index 2, got %d", idx)
		}
	})

	t.Run("Steps back one", func(t *testing.T) {
		l := abcList()
		l.Advance(0)
		l.Advance(2) // C
		l.Retreat()
		if idx := l.SelectedIndex(); idx != 1 {
			t.Errorf("Expected index 1, got %d", idx)
		}
	})
}

func TestClearSelection(t *testing.T) {
	l := abcList()
	l.Advance(1)
	l.ClearSelection()

	if idx := l.SelectedIndex(); idx != -1 {
		t.Errorf("Expected no selection after clear, got index %d", idx)
	}
}

func TestSelectedReturnsCopy(t *testing.T) {
	l := abcList()
	l.Advance(0)

	got, ok := l.Selected()
	if !ok {
		t.Fatal("Expected a selection")
	}
	got.IsWinner = true

	original, _ := l.At(0)
	if original.IsWinner {
		t.Error("Expected mutation of the returned copy to not affect the list entry")
	}
}

func TestUpdateSelected(t *testing.T) {
	l := abcList()

	if l.UpdateSelected(func(p *Participant) { p.IsWinner = true }) {
		t.Error("Expected UpdateSelected to report false with no selection")
	}

	l.Advance(0)
	l.Advance(1) // B
	if !l.UpdateSelected(func(p *Participant) { p.IsWinner = true }) {
		t.Fatal("Expected UpdateSelected to apply")
	}

	entry, _ := l.At(1)
	if !entry.IsWinner {
		t.Error("Expected list entry to be mutated in place")
	}
}

func TestRemoveSelected(t *testing.T) {
	t.Run("Removes and clears selection", func(t *testing.T) {
		l := abcList()
		l.Advance(0)
		l.Advance(1) // B

		l.RemoveSelected()

		if got := l.Len(); got != 2 {
			t.Errorf("Expected length 2, got %d", got)
		}
		if idx := l.SelectedIndex(); idx != -1 {
			t.Errorf("Expected selection cleared, got index %d", idx)
		}
		if got, want := names(l), []string{"A", "C"}; got[0] != want[0] || got[1] != want[1] {
			t.Errorf("Expected remaining items %v, got %v", want, got)
		}
	})

	t.Run("No selection is a no-op", func(t *testing.T) {
		l := abcList()
		l.RemoveSelected()
		if got := l.Len(); got != 3 {
			t.Errorf("Expected length 3, got %d", got)
		}
	})

	t.Run("Empty list is a no-op", func(t *testing.T) {
		l := NewList[Participant](nil)
		l.RemoveSelected()
		if got := l.Len(); got != 0 {
			t.Errorf("Expected length 0, got %d", got)
		}
	})
}

func TestItemsSnapshot(t *testing.T) {
	l := abcList()
	snap := l.Items()
	snap[0].Name = "Z"

	entry, _ := l.At(0)
	if entry.Name != "A" {
		t.Errorf("Expected snapshot mutation to not affect the list, got %q", entry.Name)
	}
}
