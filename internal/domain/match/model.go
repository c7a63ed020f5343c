package match

import (
	"fmt"
	"strings"
	"time"
)

const (
	StatusUpcoming = "upcoming"

	// DateLayout is the only accepted and emitted calendar date format.
	DateLayout = "2006-01-02"
)

// Match is one scheduled fixture between two named sides.
type Match struct {
	ID     int64
	Team1  string
	Team2  string
	Date   time.Time
	Venue  string
	Status string
}

func (m Match) Validate() error {
	if strings.TrimSpace(m.Team1) == "" {
		return fmt.Errorf("team_1 is required")
	}
	if strings.TrimSpace(m.Team2) == "" {
		return fmt.Errorf("team_2 is required")
	}
	if m.Date.IsZero() {
		return fmt.Errorf("date is required")
	}
	if strings.TrimSpace(m.Venue) == "" {
		return fmt.Errorf("venue is required")
	}

	return nil
}

// FormattedDate renders the match date in DateLayout.
func (m Match) FormattedDate() string {
	return m.Date.Format(DateLayout)
}

func ParseDate(raw string) (time.Time, error) {
	parsed, err := time.Parse(DateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q must use YYYY-MM-DD", raw)
	}

	return parsed, nil
}
