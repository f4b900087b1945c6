package team

import "fmt"

// Team is a school squad entered in one sport.
type Team struct {
	ID      string
	SportID string
	Name    string
	// Group is the explicit group-stage label, empty when the organiser has not assigned one.
	Group string
	Short string
}

// LogoKey is the file stem used for the team's logo asset.
func (t Team) LogoKey() string {
	if t.Short != "" {
		return t.Short
	}
	return t.ID
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.SportID == "" {
		return fmt.Errorf("team sport id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
