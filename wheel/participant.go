package wheel

// Participant is one entry in the raffle pool.
type Participant struct {
	Name     string
	IsWinner bool
}

// WinnerRecord is one completed round in the session history. Participant is
// an independent copy taken at finalization; the pool entry it came from may
// be removed or win again later.
type WinnerRecord struct {
	Participant Participant
	Round       int
}
