package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/sports-scoreboard/internal/domain/accessrequest"
	qb "github.com/riskibarqy/sports-scoreboard/internal/platform/querybuilder"
)

type AccessRequestRepository struct {
	db *sqlx.DB
}

func NewAccessRequestRepository(db *sqlx.DB) *AccessRequestRepository {
	return &AccessRequestRepository{db: db}
}

func (r *AccessRequestRepository) ListPending(ctx context.Context) ([]accessrequest.Request, error) {
	sb := qb.Select("*").From("team_access_requests").
		Where(qb.Eq("status", string(accessrequest.StatusPending))).
		OrderBy("created_at", "id")
	return selectAll(ctx, r.db, sb, "pending access requests", accessRequestFromRow)
}

func (r *AccessRequestRepository) GetByID(ctx context.Context, requestID string) (accessrequest.Request, bool, error) {
	sb := qb.Select("*").From("team_access_requests").Where(qb.Eq("public_id", requestID))
	return selectOne(ctx, r.db, sb, "access request", accessRequestFromRow)
}

func (r *AccessRequestRepository) Insert(ctx context.Context, req accessrequest.Request) error {
	query, args, err := qb.InsertModel("team_access_requests", accessRequestInsertModel{
		PublicID:  req.ID,
		TeamID:    req.TeamID,
		UserID:    req.UserID,
		Status:    string(req.Status),
		CreatedAt: req.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("build insert access request query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert access request: %w", err)
	}
	return nil
}

func (r *AccessRequestRepository) UpdateStatus(ctx context.Context, requestID string, status accessrequest.Status) error {
	query, args, err := qb.Update("team_access_requests").
		Set("status", string(status)).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("public_id", requestID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update access request query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update access request: %w", err)
	}
	if err := requireAffected(result, "access request "+requestID); err != nil {
		return fmt.Errorf("update access request: %w", err)
	}
	return nil
}

func accessRequestFromRow(row accessRequestTableModel) accessrequest.Request {
	return accessrequest.Request{
		ID:        row.PublicID,
		TeamID:    row.TeamID,
		UserID:    row.UserID,
		Status:    accessrequest.Status(row.Status),
		CreatedAt: row.CreatedAt.UTC(),
	}
}
