package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/sports-scoreboard/internal/domain/team"
	qb "github.com/riskibarqy/sports-scoreboard/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// liveTeams selects teams that have not been soft-deleted.
func liveTeams(conds ...qb.Condition) *qb.SelectBuilder {
	return qb.Select("*").From("teams").Where(append(conds, qb.IsNull("deleted_at"))...)
}

// ListBySport returns teams in insertion order, which is the seed order.
func (r *TeamRepository) ListBySport(ctx context.Context, sportID string) ([]team.Team, error) {
	return selectAll(ctx, r.db, liveTeams(qb.Eq("sport_public_id", sportID)).OrderBy("id"), "teams by sport", teamFromRow)
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	return selectOne(ctx, r.db, liveTeams(qb.Eq("public_id", teamID)), "team", teamFromRow)
}

func teamFromRow(row teamTableModel) team.Team {
	return team.Team{
		ID:      row.PublicID,
		SportID: row.SportID,
		Name:    row.Name,
		Group:   row.GroupName,
		Short:   row.Short,
	}
}
