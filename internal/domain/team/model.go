package team

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMatchNotFound is returned by repositories when the referenced match does not exist.
var ErrMatchNotFound = errors.New("match not found")

// Team is one side registered against a match.
type Team struct {
	ID      int64
	MatchID int64
	Name    string
}

func (t Team) Validate() error {
	if t.MatchID <= 0 {
		return fmt.Errorf("team match id is required")
	}
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
