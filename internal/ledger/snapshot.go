package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

// Snapshot is the persisted progress record. Its JSON layout is shared with
// the ToyVox web client: {"tokens": n, "unlockedCharacters": [...]}.
type Snapshot struct {
	Tokens             int      `json:"tokens"`
	UnlockedCharacters []string `json:"unlockedCharacters"`
}

// DefaultSnapshot is the state of a fresh install.
func DefaultSnapshot() Snapshot {
	return Snapshot{Tokens: StartingTokens, UnlockedCharacters: []string{}}
}

// Has reports whether id is in the unlocked set.
func (s Snapshot) Has(id string) bool {
	for _, u := range s.UnlockedCharacters {
		if u == id {
			return true
		}
	}
	return false
}

var errNegativeBalance = errors.New("negative token balance")

// decodeSnapshot parses a stored record. Records with a negative balance or
// a missing tokens field are rejected; duplicate and empty ids are dropped.
func decodeSnapshot(data []byte) (Snapshot, error) {
	var raw struct {
		Tokens             *int     `json:"tokens"`
		UnlockedCharacters []string `json:"unlockedCharacters"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	if raw.Tokens == nil {
		return Snapshot{}, errors.New("decode snapshot: missing tokens")
	}
	if *raw.Tokens < 0 {
		return Snapshot{}, errNegativeBalance
	}

	snap := Snapshot{Tokens: *raw.Tokens, UnlockedCharacters: []string{}}
	seen := make(map[string]bool, len(raw.UnlockedCharacters))
	for _, id := range raw.UnlockedCharacters {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		snap.UnlockedCharacters = append(snap.UnlockedCharacters, id)
	}
	sort.Strings(snap.UnlockedCharacters)
	return snap, nil
}

func encodeSnapshot(s Snapshot) ([]byte, error) {
	if s.UnlockedCharacters == nil {
		s.UnlockedCharacters = []string{}
	}
	return json.Marshal(s)
}
