package postgres

import (
	"context"
	"fmt"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/sports-scoreboard/internal/domain/match"
	qb "github.com/riskibarqy/sports-scoreboard/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

var matchSelectColumns = []string{
	"id",
	"public_id",
	"sport_public_id",
	"home_team_public_id",
	"away_team_public_id",
	"starts_at",
	"status::text AS status",
	"status_note",
	"home_score",
	"away_score",
	"venue",
	"stage",
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) ListBySport(ctx context.Context, sportID string) ([]match.Match, error) {
	sb := liveMatches(qb.Eq("sport_public_id", sportID)).OrderBy("starts_at", "public_id")
	return selectAll(ctx, r.db, sb, "matches by sport", matchFromRow)
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	return selectOne(ctx, r.db, liveMatches(qb.Eq("public_id", matchID)), "match", matchFromRow)
}

func liveMatches(conds ...qb.Condition) *qb.SelectBuilder {
	return qb.Select(matchSelectColumns...).From("matches").Where(append(conds, qb.IsNull("deleted_at"))...)
}

func (r *MatchRepository) UpdateScore(ctx context.Context, matchID string, homeScore, awayScore int) error {
	query, args, err := qb.Update("matches").
		Set("home_score", homeScore).
		Set("away_score", awayScore).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", matchID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update match score query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update match score: %w", err)
	}
	if err := requireAffected(result, "match "+matchID); err != nil {
		return fmt.Errorf("update match score: %w", err)
	}
	return nil
}

// UpdateStatus writes the note and, when set, the status. Values the match_status
// enum does not accept come back as match.ErrStatusRejected.
func (r *MatchRepository) UpdateStatus(ctx context.Context, matchID string, update match.StatusUpdate) error {
	builder := qb.Update("matches")
	if update.Status != nil {
		builder = builder.SetExpr("status", "?::match_status", strings.TrimSpace(*update.Status))
	}
	query, args, err := builder.
		Set("status_note", update.StatusNote).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", matchID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update match status query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if update.Status != nil && isEnumRejection(err) {
			return crerr.Wrapf(match.ErrStatusRejected, "status %q: %v", *update.Status, err)
		}
		return fmt.Errorf("update match status: %w", err)
	}
	if err := requireAffected(result, "match "+matchID); err != nil {
		return fmt.Errorf("update match status: %w", err)
	}
	return nil
}

func matchFromRow(row matchTableModel) match.Match {
	return match.Match{
		ID:         row.PublicID,
		SportID:    row.SportID,
		HomeTeamID: row.HomeTeamID,
		AwayTeamID: row.AwayTeamID,
		StartsAt:   row.StartsAt.UTC(),
		Status:     row.Status,
		StatusNote: row.StatusNote,
		HomeScore:  nullInt64ToIntPtr(row.HomeScore),
		AwayScore:  nullInt64ToIntPtr(row.AwayScore),
		Venue:      row.Venue,
		Stage:      row.Stage,
	}
}
