package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	qb "github.com/riskibarqy/sports-scoreboard/internal/platform/querybuilder"
)

const (
	pqCodeInvalidTextRepresentation = "22P02"
	pqCodeCheckViolation            = "23514"
	pqCodeUniqueViolation           = "23505"
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func pqError(err error) (*pq.Error, bool) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr, true
	}
	return nil, false
}

// isEnumRejection reports a value the column type or its check constraint refused.
func isEnumRejection(err error) bool {
	pqErr, ok := pqError(err)
	if !ok {
		return false
	}
	switch string(pqErr.Code) {
	case pqCodeInvalidTextRepresentation, pqCodeCheckViolation:
		return true
	default:
		return false
	}
}

// uniqueViolation returns the violated constraint name.
func uniqueViolation(err error) (string, bool) {
	pqErr, ok := pqError(err)
	if !ok || string(pqErr.Code) != pqCodeUniqueViolation {
		return "", false
	}
	return pqErr.Constraint, true
}

func nullInt64ToIntPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}

func requireAffected(result sql.Result, what string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return errNoRows{what: what}
	}
	return nil
}

type errNoRows struct {
	what string
}

func (e errNoRows) Error() string { return e.what + " not found" }

// selectAll runs the select and converts every row with conv.
func selectAll[R, T any](ctx context.Context, db sqlx.QueryerContext, sb *qb.SelectBuilder, what string, conv func(R) T) ([]T, error) {
	query, args, err := sb.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select %s query: %w", what, err)
	}
	var rows []R
	if err := sqlx.SelectContext(ctx, db, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select %s: %w", what, err)
	}
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		out = append(out, conv(row))
	}
	return out, nil
}

// selectOne returns the first row, or false when nothing matched.
func selectOne[R, T any](ctx context.Context, db sqlx.QueryerContext, sb *qb.SelectBuilder, what string, conv func(R) T) (T, bool, error) {
	var zero T
	query, args, err := sb.Limit(1).ToSQL()
	if err != nil {
		return zero, false, fmt.Errorf("build select %s query: %w", what, err)
	}
	var row R
	if err := sqlx.GetContext(ctx, db, &row, query, args...); err != nil {
		if isNotFound(err) {
			return zero, false, nil
		}
		return zero, false, fmt.Errorf("select %s: %w", what, err)
	}
	return conv(row), true, nil
}
