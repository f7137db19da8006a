package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/studydesk/internal/logger"
)

var (
	// ErrNotFound is returned when a row to update or delete does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrUsernameTaken is returned when the users.username unique constraint fires.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrEmailTaken is returned when the users.email unique constraint fires.
	ErrEmailTaken = errors.New("email already taken")
)

// TxGetter returns the transaction bound to ctx, or nil.
type TxGetter func(ctx context.Context) *sqlx.Tx

// executor returns the transaction from ctx when present, the pool otherwise.
func executor(ctx context.Context, db *sqlx.DB, txGetter TxGetter) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}

// inTx runs fn inside the request transaction when one is bound to ctx,
// otherwise inside a transaction of its own.
func inTx(ctx context.Context, db *sqlx.DB, txGetter TxGetter, fn func(ex sqlx.ExtContext) error) (err error) {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return fn(tx)
		}
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	return fn(tx)
}

type statement struct {
	query string
	args  []any
}

// execAll executes statements in order and stops at the first error.
func execAll(ctx context.Context, ex sqlx.ExtContext, statements []statement) error {
	for _, st := range statements {
		query := ex.Rebind(st.query)
		_, err := ex.ExecContext(ctx, query, st.args...)
		logQuery(query, st.args, nil, err)
		if err != nil {
			return err
		}
	}
	return nil
}

// logQuery logs a query on a single line together with its outcome.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Infow("query executed",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}

// noRows maps sql.ErrNoRows to a nil error so lookups can return (nil, nil).
func noRows(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	return err
}

// uniqueViolation reports whether err is a unique constraint violation on
// table.column for either supported driver.
func uniqueViolation(err error, table, column string) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && pgErr.ConstraintName == fmt.Sprintf("%s_%s_key", table, column)
	}

	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") && strings.Contains(msg, table+"."+column)
}

// rowsAffected returns ErrNotFound when res touched no rows.
func rowsAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
