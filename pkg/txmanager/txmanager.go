// Package txmanager сериализует операции над календарем: каждая операция
// выполняется под одной блокировкой на полном цикле load-mutate-save.
package txmanager

import (
	"context"
	"sync"

	"github.com/Saikabilane/AutoSense/internal/domain"
)

// Store хранилище календаря с полной перезаписью таблицы
type Store interface {
	Load(ctx context.Context) (*domain.Calendar, error)
	Save(ctx context.Context, cal *domain.Calendar) error
}

// TransactionManager единственный писатель календаря в процессе
type TransactionManager struct {
	mu    sync.Mutex
	store Store
}

// NewTransactionManager создает менеджер поверх хранилища
func NewTransactionManager(store Store) *TransactionManager {
	return &TransactionManager{store: store}
}

// Do загружает календарь, выполняет fn и сохраняет результат, если fn вернула nil
// При ошибке fn таблица не перезаписывается
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context, cal *domain.Calendar) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cal, err := m.store.Load(ctx)
	if err != nil {
		return err
	}

	if err := fn(ctx, cal); err != nil {
		return err
	}

	return m.store.Save(ctx, cal)
}

// DoReadOnly загружает календарь и выполняет fn без сохранения
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context, cal *domain.Calendar) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cal, err := m.store.Load(ctx)
	if err != nil {
		return err
	}

	return fn(ctx, cal)
}

// Replace заменяет календарь целиком без чтения текущего состояния
func (m *TransactionManager) Replace(ctx context.Context, cal *domain.Calendar) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.store.Save(ctx, cal)
}
