package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/sports-scoreboard/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the demo tournament into an empty database.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM sports`); err != nil {
		return fmt.Errorf("count sports for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	teams, matches := memory.SeedTeams(), memory.SeedMatches()
	if err := memory.ValidateMatches(teams, matches); err != nil {
		return fmt.Errorf("validate bootstrap seed: %w", err)
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, s := range memory.SeedSports() {
		if err := execNamed(ctx, tx, "sport "+s.ID, `
INSERT INTO sports (public_id, slug, name)
VALUES (:public_id, :slug, :name)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id": s.ID,
			"slug":      s.Slug,
			"name":      s.Name,
		}); err != nil {
			return err
		}
	}

	for _, t := range teams {
		if err := execNamed(ctx, tx, "team "+t.ID, `
INSERT INTO teams (public_id, sport_public_id, name, short, group_name)
VALUES (:public_id, :sport_public_id, :name, :short, :group_name)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":       t.ID,
			"sport_public_id": t.SportID,
			"name":            t.Name,
			"short":           t.Short,
			"group_name":      t.Group,
		}); err != nil {
			return err
		}
	}

	for _, m := range matches {
		if err := execNamed(ctx, tx, "match "+m.ID, `
INSERT INTO matches (public_id, sport_public_id, home_team_public_id, away_team_public_id, starts_at, status, status_note, home_score, away_score, venue, stage)
VALUES (:public_id, :sport_public_id, :home_team_public_id, :away_team_public_id, :starts_at, :status, :status_note, :home_score, :away_score, :venue, :stage)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":           m.ID,
			"sport_public_id":     m.SportID,
			"home_team_public_id": m.HomeTeamID,
			"away_team_public_id": m.AwayTeamID,
			"starts_at":           m.StartsAt.UTC(),
			"status":              m.Status,
			"status_note":         m.StatusNote,
			"home_score":          m.HomeScore,
			"away_score":          m.AwayScore,
			"venue":               m.Venue,
			"stage":               m.Stage,
		}); err != nil {
			return err
		}
	}

	for _, g := range memory.SeedGoals() {
		if err := execNamed(ctx, tx, "goal "+g.ID, `
INSERT INTO goals (public_id, match_public_id, team_public_id, player_name, minute, own_goal, created_at)
VALUES (:public_id, :match_public_id, :team_public_id, :player_name, :minute, :own_goal, :created_at)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":       g.ID,
			"match_public_id": g.MatchID,
			"team_public_id":  g.TeamID,
			"player_name":     g.PlayerName,
			"minute":          g.Minute,
			"own_goal":        g.OwnGoal,
			"created_at":      g.CreatedAt.UTC(),
		}); err != nil {
			return err
		}
	}

	for _, p := range memory.SeedPlayers() {
		if err := execNamed(ctx, tx, "player "+p.ID, `
INSERT INTO players (public_id, team_public_id, name, jersey_number)
VALUES (:public_id, :team_public_id, :name, :jersey_number)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":      p.ID,
			"team_public_id": p.TeamID,
			"name":           p.Name,
			"jersey_number":  p.JerseyNumber,
		}); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}

	return nil
}

func execNamed(ctx context.Context, tx *sqlx.Tx, what, query string, arg map[string]any) error {
	sqlQuery, args, err := sqlx.Named(query, arg)
	if err != nil {
		return fmt.Errorf("bind seed %s query: %w", what, err)
	}
	sqlQuery = tx.Rebind(sqlQuery)
	if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
		return fmt.Errorf("seed %s: %w", what, err)
	}
	return nil
}
