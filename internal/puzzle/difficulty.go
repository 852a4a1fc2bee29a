package puzzle

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDifficulty is returned for preset names outside the table.
var ErrInvalidDifficulty = errors.New("invalid difficulty")

// DefaultDifficulty is the preset used until another is chosen.
const DefaultDifficulty = "medium"

// Difficulty is a named grid size.
type Difficulty struct {
	Name string
	Cols int
	Rows int
}

var presets = []Difficulty{
	{Name: "easy", Cols: 2, Rows: 2},
	{Name: "medium", Cols: 4, Rows: 3},
	{Name: "hard", Cols: 7, Rows: 5},
	{Name: "insane", Cols: 15, Rows: 10},
}

// Difficulties returns the presets from easiest to hardest.
func Difficulties() []Difficulty {
	return append([]Difficulty(nil), presets...)
}

// DifficultyNames returns the preset names in table order.
func DifficultyNames() []string {
	names := make([]string, len(presets))
	for i, d := range presets {
		names[i] = d.Name
	}
	return names
}

// LookupDifficulty finds a preset by name, ignoring case and surrounding space.
func LookupDifficulty(name string) (Difficulty, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, d := range presets {
		if d.Name == n {
			return d, nil
		}
	}
	return Difficulty{}, fmt.Errorf("%w: %q (want one of %s)", ErrInvalidDifficulty, name, strings.Join(DifficultyNames(), ", "))
}
