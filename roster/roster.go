// Package roster loads the participant pool from disk and records completed
// rounds to an append-only log.
package roster

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"prizewheel/wheel"
)

// Load reads participants from path, one display name per line. Blank lines
// and '#' comments are skipped, surrounding whitespace is trimmed. The order
// of the file is the order of the wheel.
func Load(path string) ([]wheel.Participant, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open participants file: %w", err)
	}
	defer f.Close()

	var participants []wheel.Participant
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		name := strings.TrimSpace(scanner.Text())
		if name == "" || strings.HasPrefix(name, "#") {
			continue
		}
		participants = append(participants, wheel.Participant{Name: name})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read participants file: %w", err)
	}
	if len(participants) == 0 {
		return nil, fmt.Errorf("no participants in %s", path)
	}
	return participants, nil
}

// WinnerLog appends completed rounds to a JSON-lines file. A nil log discards
// every append, so callers never need to guard.
type WinnerLog struct {
	f   *os.File
	enc *json.Encoder
	now func() time.Time
}

type winnerEntry struct {
	Name  string    `json:"name"`
	Round int       `json:"round"`
	Time  time.Time `json:"time"`
}

// OpenWinnerLog opens path for appending, creating it if needed.
func OpenWinnerLog(path string) (*WinnerLog, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open winner log: %w", err)
	}
	return &WinnerLog{f: f, enc: json.NewEncoder(f), now: time.Now}, nil
}

// Append writes one completed round.
func (l *WinnerLog) Append(rec wheel.WinnerRecord) error {
	if l == nil {
		return nil
	}
	return l.enc.Encode(winnerEntry{
		Name:  rec.Participant.Name,
		Round: rec.Round,
		Time:  l.now(),
	})
}

// Close releases the underlying file.
func (l *WinnerLog) Close() error {
	if l == nil {
		return nil
	}
	return l.f.Close()
}
