package postgres

import (
	"database/sql"
	"time"
)

type sportTableModel struct {
	ID        int64     `db:"id"`
	PublicID  string    `db:"public_id"`
	Slug      string    `db:"slug"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type teamTableModel struct {
	ID        int64      `db:"id"`
	PublicID  string     `db:"public_id"`
	SportID   string     `db:"sport_public_id"`
	Name      string     `db:"name"`
	Short     string     `db:"short"`
	GroupName string     `db:"group_name"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

type matchTableModel struct {
	ID         int64         `db:"id"`
	PublicID   string        `db:"public_id"`
	SportID    string        `db:"sport_public_id"`
	HomeTeamID string        `db:"home_team_public_id"`
	AwayTeamID string        `db:"away_team_public_id"`
	StartsAt   time.Time     `db:"starts_at"`
	Status     string        `db:"status"`
	StatusNote string        `db:"status_note"`
	HomeScore  sql.NullInt64 `db:"home_score"`
	AwayScore  sql.NullInt64 `db:"away_score"`
	Venue      string        `db:"venue"`
	Stage      string        `db:"stage"`
}

type goalTableModel struct {
	ID         int64     `db:"id"`
	PublicID   string    `db:"public_id"`
	MatchID    string    `db:"match_public_id"`
	TeamID     string    `db:"team_public_id"`
	PlayerName string    `db:"player_name"`
	Minute     int       `db:"minute"`
	OwnGoal    bool      `db:"own_goal"`
	CreatedAt  time.Time `db:"created_at"`
}

type goalInsertModel struct {
	PublicID   string    `db:"public_id"`
	MatchID    string    `db:"match_public_id"`
	TeamID     string    `db:"team_public_id"`
	PlayerName string    `db:"player_name"`
	Minute     int       `db:"minute"`
	OwnGoal    bool      `db:"own_goal"`
	CreatedAt  time.Time `db:"created_at"`
}

type highScorerTableModel struct {
	ID         int64     `db:"id"`
	PublicID   string    `db:"public_id"`
	MatchID    string    `db:"match_public_id"`
	TeamID     string    `db:"team_public_id"`
	PlayerName string    `db:"player_name"`
	CreatedAt  time.Time `db:"created_at"`
}

type highScorerInsertModel struct {
	PublicID   string    `db:"public_id"`
	MatchID    string    `db:"match_public_id"`
	TeamID     string    `db:"team_public_id"`
	PlayerName string    `db:"player_name"`
	CreatedAt  time.Time `db:"created_at"`
}

type playerTableModel struct {
	ID           int64     `db:"id"`
	PublicID     string    `db:"public_id"`
	TeamID       string    `db:"team_public_id"`
	Name         string    `db:"name"`
	JerseyNumber int       `db:"jersey_number"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type playerInsertModel struct {
	PublicID     string `db:"public_id"`
	TeamID       string `db:"team_public_id"`
	Name         string `db:"name"`
	JerseyNumber int    `db:"jersey_number"`
}

type accessRequestTableModel struct {
	ID        int64     `db:"id"`
	PublicID  string    `db:"public_id"`
	TeamID    string    `db:"team_public_id"`
	UserID    string    `db:"user_id"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type accessRequestInsertModel struct {
	PublicID  string    `db:"public_id"`
	TeamID    string    `db:"team_public_id"`
	UserID    string    `db:"user_id"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}
