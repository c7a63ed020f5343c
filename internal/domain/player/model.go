package player

import (
	"errors"
	"fmt"
	"strings"
)

// ErrTeamNotFound is returned by repositories when the referenced team does not exist.
var ErrTeamNotFound = errors.New("team not found")

// Statistics holds career numbers for a player. Nil fields were never
// generated for the player.
type Statistics struct {
	MatchesPlayed *int
	Runs          *int
	Average       *float64
	StrikeRate    *float64
}

// Player is a squad member attached to a team.
type Player struct {
	ID     int64
	TeamID int64
	Name   string
	Role   string
	Stats  Statistics
}

func (p Player) Validate() error {
	if p.TeamID <= 0 {
		return fmt.Errorf("player team id is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("player name is required")
	}
	if strings.TrimSpace(p.Role) == "" {
		return fmt.Errorf("player role is required")
	}

	return nil
}

// IsWellFormed reports whether a roster entry carries both a name and a role.
func IsWellFormed(name, role string) bool {
	return strings.TrimSpace(name) != "" && strings.TrimSpace(role) != ""
}
