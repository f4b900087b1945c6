package postgres

import (
	"context"
	"fmt"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/sports-scoreboard/internal/domain/player"
	qb "github.com/riskibarqy/sports-scoreboard/internal/platform/querybuilder"
)

const (
	playersJerseyConstraint = "players_team_jersey_key"
	playersNameConstraint   = "players_team_name_key"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamID string) ([]player.Player, error) {
	query, args, err := qb.Select("*").From("players").
		Where(qb.Eq("team_public_id", teamID)).
		OrderBy("jersey_number", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players by team query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players by team: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, player.Player{
			ID:           row.PublicID,
			TeamID:       row.TeamID,
			Name:         row.Name,
			JerseyNumber: row.JerseyNumber,
		})
	}
	return out, nil
}

// Insert maps the roster unique constraints onto the player duplicate errors.
func (r *PlayerRepository) Insert(ctx context.Context, p player.Player) error {
	query, args, err := qb.InsertModel("players", playerInsertModel{
		PublicID:     p.ID,
		TeamID:       p.TeamID,
		Name:         p.Name,
		JerseyNumber: p.JerseyNumber,
	})
	if err != nil {
		return fmt.Errorf("build insert player query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return mapPlayerInsertError(err, p)
	}
	return nil
}

func mapPlayerInsertError(err error, p player.Player) error {
	constraint, ok := uniqueViolation(err)
	if !ok {
		return fmt.Errorf("insert player: %w", err)
	}
	switch constraint {
	case playersJerseyConstraint:
		return crerr.Wrapf(player.ErrDuplicateJersey, "jersey %d", p.JerseyNumber)
	case playersNameConstraint:
		return crerr.Wrapf(player.ErrDuplicateName, "name %q", p.Name)
	default:
		return fmt.Errorf("insert player: %w", err)
	}
}
