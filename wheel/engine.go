package wheel

import (
	"math"
	"math/rand"
	"time"
)

// Spin tuning. Speed starts at startSpeed and shrinks multiplicatively each
// tick; once it falls to stopThreshold the next tick lands the cursor. The
// decay fraction is drawn per spin from [minDecayScale/n, maxDecayScale/n)
// for a pool of n, so bigger pools decelerate more slowly per tick and the
// tick count to a stop stays comparable across pool sizes.
const (
	startSpeed    = 3.0
	stopThreshold = 0.1
	minDecayScale = 0.5
	maxDecayScale = 0.9
)

// State is the spin lifecycle.
type State int

const (
	StateIdle State = iota
	StateSpinning
)

// Engine owns the participant pool, the winner history, and the spin
// kinematics. It is single-threaded: the caller serializes Tick with every
// command, one mutator at a time.
type Engine struct {
	list *List[Participant]
	rng  *rand.Rand

	state    State
	position float64
	speed    float64
	decay    float64

	round      int
	spinWinner *WinnerRecord
	winners    []WinnerRecord
}

// NewEngine builds an engine over participants. rng may be nil, in which case
// a time-seeded source is used; pass a seeded one for deterministic spins.
func NewEngine(participants []Participant, rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{
		list: NewList(participants),
		rng:  rng,
	}
}

// StartSpin arms a new round, rearming in place if one is already running.
// Ignored when the pool is empty.
func (e *Engine) StartSpin() {
	n := e.list.Len()
	if n == 0 {
		return
	}

	count := float64(n)
	minDecay := minDecayScale / count
	maxDecay := maxDecayScale / count

	e.decay = minDecay + e.rng.Float64()*(maxDecay-minDecay)
	e.position = 0
	e.speed = startSpeed
	e.spinWinner = nil
	e.state = StateSpinning
}

// Tick advances the spin by one frame: a kinematic step while speed is above
// the stop threshold, the winner landing once it is not, a no-op when idle.
func (e *Engine) Tick() {
	if e.state != StateSpinning {
		return
	}
	if e.speed > stopThreshold {
		e.step()
		return
	}
	e.finalize()
}

// step accumulates fractional progress and moves the cursor by the whole part.
func (e *Engine) step() {
	e.position += e.speed
	whole := int(math.Floor(e.position))
	e.list.Advance(whole)
	e.position -= float64(whole)
	e.speed *= 1 - e.decay
}

// finalize lands the spin on the current cursor: the pool entry is flagged,
// copied into the current-winner slot, and appended to the history. A pool
// emptied mid-spin has no natural winner; the engine stops with none rather
// than spin forever.
func (e *Engine) finalize() {
	e.state = StateIdle

	if !e.list.UpdateSelected(func(p *Participant) { p.IsWinner = true }) {
		e.spinWinner = nil
		return
	}

	winner, _ := e.list.Selected()
	e.round++
	rec := WinnerRecord{Participant: winner, Round: e.round}
	e.spinWinner = &rec
	e.winners = append(e.winners, rec)
}

// StopSpin halts the spin in place. Speed, position, and the current winner
// are left untouched. Idempotent.
func (e *Engine) StopSpin() {
	e.state = StateIdle
}

// ResetSpin stops the spin, zeroes the speed, and clears the current winner.
// Position and decay are stale after this; StartSpin overwrites them.
func (e *Engine) ResetSpin() {
	e.StopSpin()
	e.speed = 0
	e.spinWinner = nil
}

// Advance moves the pool cursor forward by step.
func (e *Engine) Advance(step int) {
	e.list.Advance(step)
}

// Retreat moves the pool cursor back one entry.
func (e *Engine) Retreat() {
	e.list.Retreat()
}

// ClearSelection leaves the pool cursor on nothing.
func (e *Engine) ClearSelection() {
	e.list.ClearSelection()
}

// RemoveSelected drops the entry under the cursor from the pool.
func (e *Engine) RemoveSelected() {
	e.list.RemoveSelected()
}

// Selected returns a copy of the entry under the cursor.
func (e *Engine) Selected() (Participant, bool) {
	return e.list.Selected()
}

// SelectedIndex returns the cursor position, -1 when nothing is selected.
func (e *Engine) SelectedIndex() int {
	return e.list.SelectedIndex()
}

// State returns the spin lifecycle state.
func (e *Engine) State() State {
	return e.state
}

// IsSpinning reports whether a round is in progress.
func (e *Engine) IsSpinning() bool {
	return e.state == StateSpinning
}

// Position returns the fractional progress accumulator.
func (e *Engine) Position() float64 {
	return e.position
}

// Speed returns the current angular speed.
func (e *Engine) Speed() float64 {
	return e.speed
}

// Decay returns the decay fraction drawn for the current spin.
func (e *Engine) Decay() float64 {
	return e.decay
}

// SpinWinner returns the winner of the round that just finished, if any.
// Cleared by the next StartSpin or ResetSpin.
func (e *Engine) SpinWinner() (WinnerRecord, bool) {
	if e.spinWinner == nil {
		return WinnerRecord{}, false
	}
	return *e.spinWinner, true
}

// Winners returns a snapshot of the session winner history, oldest first.
func (e *Engine) Winners() []WinnerRecord {
	out := make([]WinnerRecord, len(e.winners))
	copy(out, e.winners)
	return out
}

// Count returns the pool size.
func (e *Engine) Count() int {
	return e.list.Len()
}

// Participants returns a snapshot of the pool.
func (e *Engine) Participants() []Participant {
	return e.list.Items()
}
