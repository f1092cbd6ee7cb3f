package app

// Tab indices into the fixed view set.
const (
	TabHome = iota
	TabParticipants
)

// Tabs is a circular index over a fixed set of view titles.
type Tabs struct {
	Titles []string
	Active int
}

// NewTabs starts on the first title.
func NewTabs(titles ...string) Tabs {
	return Tabs{Titles: titles}
}

// Next moves to the following tab, wrapping past the last.
func (t *Tabs) Next() {
	if len(t.Titles) == 0 {
		return
	}
	t.Active = (t.Active + 1) % len(t.Titles)
}

// Prev moves to the preceding tab, wrapping to the last.
func (t *Tabs) Prev() {
	if len(t.Titles) == 0 {
		return
	}
	if t.Active == 0 {
		t.Active = len(t.Titles) - 1
	} else {
		t.Active--
	}
}
