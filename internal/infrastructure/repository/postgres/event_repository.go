package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/sports-scoreboard/internal/domain/goal"
	"github.com/riskibarqy/sports-scoreboard/internal/domain/highscorer"
	qb "github.com/riskibarqy/sports-scoreboard/internal/platform/querybuilder"
)

type GoalRepository struct {
	db *sqlx.DB
}

func NewGoalRepository(db *sqlx.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

func (r *GoalRepository) ListByMatch(ctx context.Context, matchID string) ([]goal.Goal, error) {
	return r.list(ctx, qb.Eq("match_public_id", matchID))
}

func (r *GoalRepository) ListByMatches(ctx context.Context, matchIDs []string) ([]goal.Goal, error) {
	if len(matchIDs) == 0 {
		return []goal.Goal{}, nil
	}
	return r.list(ctx, qb.In("match_public_id", matchIDs))
}

func (r *GoalRepository) list(ctx context.Context, cond qb.Condition) ([]goal.Goal, error) {
	query, args, err := qb.Select("*").From("goals").
		Where(cond).
		OrderBy("minute", "created_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select goals query: %w", err)
	}

	var rows []goalTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select goals: %w", err)
	}

	out := make([]goal.Goal, 0, len(rows))
	for _, row := range rows {
		out = append(out, goal.Goal{
			ID:         row.PublicID,
			MatchID:    row.MatchID,
			TeamID:     row.TeamID,
			PlayerName: row.PlayerName,
			Minute:     row.Minute,
			OwnGoal:    row.OwnGoal,
			CreatedAt:  row.CreatedAt.UTC(),
		})
	}
	return out, nil
}

func (r *GoalRepository) Insert(ctx context.Context, g goal.Goal) error {
	query, args, err := qb.InsertModel("goals", goalInsertModel{
		PublicID:   g.ID,
		MatchID:    g.MatchID,
		TeamID:     g.TeamID,
		PlayerName: g.PlayerName,
		Minute:     g.Minute,
		OwnGoal:    g.OwnGoal,
		CreatedAt:  g.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("build insert goal query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert goal: %w", err)
	}
	return nil
}

type HighScorerRepository struct {
	db *sqlx.DB
}

func NewHighScorerRepository(db *sqlx.DB) *HighScorerRepository {
	return &HighScorerRepository{db: db}
}

func (r *HighScorerRepository) ListByMatches(ctx context.Context, matchIDs []string) ([]highscorer.Event, error) {
	if len(matchIDs) == 0 {
		return []highscorer.Event{}, nil
	}

	query, args, err := qb.Select("*").From("highest_scorers").
		Where(qb.In("match_public_id", matchIDs)).
		OrderBy("created_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select highest scorers query: %w", err)
	}

	var rows []highScorerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select highest scorers: %w", err)
	}

	out := make([]highscorer.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, highscorer.Event{
			ID:         row.PublicID,
			MatchID:    row.MatchID,
			TeamID:     row.TeamID,
			PlayerName: row.PlayerName,
			CreatedAt:  row.CreatedAt.UTC(),
		})
	}
	return out, nil
}

func (r *HighScorerRepository) Insert(ctx context.Context, e highscorer.Event) error {
	query, args, err := qb.InsertModel("highest_scorers", highScorerInsertModel{
		PublicID:   e.ID,
		MatchID:    e.MatchID,
		TeamID:     e.TeamID,
		PlayerName: e.PlayerName,
		CreatedAt:  e.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("build insert highest scorer query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert highest scorer: %w", err)
	}
	return nil
}
