package player

import (
	"fmt"
	"strings"

	crerr "github.com/cockroachdb/errors"
)

var (
	ErrDuplicateJersey = crerr.New("jersey number already used in team")
	ErrDuplicateName   = crerr.New("player name already used in team")
)

// Player is a rostered athlete of one team.
type Player struct {
	ID           string
	TeamID       string
	Name         string
	JerseyNumber int
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.TeamID == "" {
		return fmt.Errorf("player team id is required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("player name is required")
	}
	if p.JerseyNumber < 0 {
		return fmt.Errorf("player jersey number must be >= 0")
	}

	return nil
}

// CheckDuplicate rejects a candidate whose jersey number or case-insensitive name
// is already taken by a player of the same team.
func CheckDuplicate(roster []Player, candidate Player) error {
	name := strings.TrimSpace(candidate.Name)
	for _, existing := range roster {
		if existing.TeamID != candidate.TeamID {
			continue
		}
		if existing.JerseyNumber == candidate.JerseyNumber {
			return crerr.Wrapf(ErrDuplicateJersey, "jersey %d", candidate.JerseyNumber)
		}
		if strings.EqualFold(strings.TrimSpace(existing.Name), name) {
			return crerr.Wrapf(ErrDuplicateName, "name %q", name)
		}
	}
	return nil
}
