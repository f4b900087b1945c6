package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/sports-scoreboard/internal/domain/sport"
	qb "github.com/riskibarqy/sports-scoreboard/internal/platform/querybuilder"
)

type SportRepository struct {
	db *sqlx.DB
}

func NewSportRepository(db *sqlx.DB) *SportRepository {
	return &SportRepository{db: db}
}

func (r *SportRepository) List(ctx context.Context) ([]sport.Sport, error) {
	return selectAll(ctx, r.db, qb.Select("*").From("sports").OrderBy("slug"), "sports", sportFromRow)
}

func (r *SportRepository) GetBySlug(ctx context.Context, slug string) (sport.Sport, bool, error) {
	return selectOne(ctx, r.db, qb.Select("*").From("sports").Where(qb.Eq("slug", slug)), "sport", sportFromRow)
}

func (r *SportRepository) GetByID(ctx context.Context, sportID string) (sport.Sport, bool, error) {
	return selectOne(ctx, r.db, qb.Select("*").From("sports").Where(qb.Eq("public_id", sportID)), "sport", sportFromRow)
}

func sportFromRow(row sportTableModel) sport.Sport {
	return sport.Sport{ID: row.PublicID, Slug: row.Slug, Name: row.Name}
}
