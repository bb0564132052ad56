package xpgx

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier - общий интерфейс pgxpool.Pool и pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Runner executes squirrel queries and scans results into db-tagged structs.
type Runner interface {
	Execx(ctx context.Context, query sq.Sqlizer) (pgconn.CommandTag, error)
	Getx(ctx context.Context, dst any, query sq.Sqlizer) error
	Selectx(ctx context.Context, dst any, query sq.Sqlizer) error
}

type Pool interface {
	Runner

	Exec(ctx context.Context, sql string, args []any) (pgconn.CommandTag, error)
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx Runner) error) error
	Ping(ctx context.Context) error
	Close()
}

type pool struct {
	runner
	p *pgxpool.Pool
}

func NewPool(ctx context.Context, dsn string) (Pool, error) {
	p, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.New: %w", err)
	}

	return &pool{runner: runner{q: p}, p: p}, nil
}

func (p *pool) Exec(ctx context.Context, sql string, args []any) (pgconn.CommandTag, error) {
	return p.p.Exec(ctx, sql, args...)
}

func (p *pool) WithinTx(ctx context.Context, fn func(ctx context.Context, tx Runner) error) error {
	tx, err := p.p.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if err = fn(ctx, &runner{q: tx}); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}

	return tx.Commit(ctx)
}

func (p *pool) Ping(ctx context.Context) error {
	return p.p.Ping(ctx)
}

func (p *pool) Close() {
	p.p.Close()
}

type runner struct {
	q Querier
}

func (r *runner) Execx(ctx context.Context, query sq.Sqlizer) (pgconn.CommandTag, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, fmt.Errorf("query.ToSql: %w", err)
	}

	return r.q.Exec(ctx, sql, args...)
}

func (r *runner) Getx(ctx context.Context, dst any, query sq.Sqlizer) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("query.ToSql: %w", err)
	}

	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return err
	}

	return scanOne(rows, dst)
}

func (r *runner) Selectx(ctx context.Context, dst any, query sq.Sqlizer) error {
	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("query.ToSql: %w", err)
	}

	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return err
	}

	return scanAll(rows, dst)
}
