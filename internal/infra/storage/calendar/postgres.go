package calendar

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Saikabilane/AutoSense/internal/domain"
	"github.com/Saikabilane/AutoSense/pkg/psqlbuilder"
)

const (
	tableName = "calendar_slots"

	// insertBatchSize ограничивает число строк в одном INSERT (10 колонок на строку)
	insertBatchSize = 500
)

var tableColumns = []string{
	"slot_id",
	"day",
	"time",
	"status",
	"vehicle_id",
	"risk_level",
	"service_type",
	"capacity",
	"used",
	"vehicle_type",
}

const createTableSQL = `CREATE TABLE IF NOT EXISTS calendar_slots (
	slot_id      BIGINT PRIMARY KEY CHECK (slot_id > 0),
	day          TEXT NOT NULL,
	time         TEXT NOT NULL,
	status       TEXT NOT NULL,
	vehicle_id   TEXT NOT NULL DEFAULT '',
	risk_level   TEXT NOT NULL DEFAULT '',
	service_type TEXT NOT NULL DEFAULT '',
	capacity     INTEGER NOT NULL CHECK (capacity > 0),
	used         INTEGER NOT NULL CHECK (used >= 0 AND used <= capacity),
	vehicle_type TEXT NOT NULL DEFAULT ''
)`

// PostgresStore хранит календарь в одной плоской таблице calendar_slots
// Запись выполняется целиком: DELETE + INSERT в одной транзакции
type PostgresStore struct {
	db DBExecutor
}

// NewPostgresStore создает хранилище календаря поверх PostgreSQL
func NewPostgresStore(db DBExecutor) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema создает таблицу календаря, если её нет
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createTableSQL); err != nil {
		return fmt.Errorf("%w: EnsureSchema - create table: %v", ErrExecQuery, err)
	}
	return nil
}

// Load читает весь календарь в порядке slot_id
func (s *PostgresStore) Load(ctx context.Context) (*domain.Calendar, error) {
	query, args, err := psqlbuilder.Select(tableColumns...).
		From(tableName).
		OrderBy("slot_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Load - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Load - execute query: %v", ErrStoreUnreadable, err)
	}
	defer rows.Close()

	slots := make([]*domain.Slot, 0)
	for rows.Next() {
		var slot domain.Slot
		if err := rows.Scan(
			&slot.ID,
			&slot.Day,
			&slot.Time,
			&slot.Status,
			&slot.VehicleID,
			&slot.RiskLevel,
			&slot.ServiceType,
			&slot.Capacity,
			&slot.Used,
			&slot.VehicleType,
		); err != nil {
			return nil, fmt.Errorf("%w: Load - scan row: %v", ErrStoreCorrupt, err)
		}
		slots = append(slots, &slot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Load - iterate rows: %v", ErrStoreUnreadable, err)
	}

	if len(slots) == 0 {
		return nil, fmt.Errorf("%w: Load - table %s is empty", ErrStoreUnreadable, tableName)
	}

	cal := domain.NewCalendar(slots)
	if err := validateCalendar(cal); err != nil {
		return nil, err
	}

	return cal, nil
}

// Save перезаписывает таблицу календаря целиком в одной транзакции
func (s *PostgresStore) Save(ctx context.Context, cal *domain.Calendar) (err error) {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("%w: Save - begin: %v", ErrTransaction, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, "LOCK TABLE "+tableName+" IN EXCLUSIVE MODE"); err != nil {
		return fmt.Errorf("%w: Save - lock table: %v", ErrExecQuery, err)
	}

	deleteQuery, deleteArgs, err := psqlbuilder.Delete(tableName).ToSql()
	if err != nil {
		return fmt.Errorf("%w: Save - build delete query: %v", ErrBuildQuery, err)
	}
	if _, err = tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: Save - delete rows: %v", ErrExecQuery, err)
	}

	for start := 0; start < len(cal.Slots); start += insertBatchSize {
		end := min(start+insertBatchSize, len(cal.Slots))

		insert := psqlbuilder.Insert(tableName).Columns(tableColumns...)
		for _, slot := range cal.Slots[start:end] {
			insert = insert.Values(
				slot.ID,
				slot.Day,
				slot.Time,
				slot.Status,
				slot.VehicleID,
				slot.RiskLevel,
				slot.ServiceType,
				slot.Capacity,
				slot.Used,
				slot.VehicleType,
			)
		}

		query, args, buildErr := insert.ToSql()
		if buildErr != nil {
			return fmt.Errorf("%w: Save - build insert query: %v", ErrBuildQuery, buildErr)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: Save - insert rows: %v", ErrExecQuery, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: Save - commit: %v", ErrTransaction, err)
	}

	return nil
}
