package calendar

import (
	"context"
	"database/sql"
)

// DBExecutor интерфейс для работы с БД
// Поддерживает *sql.DB
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}
