package calendar

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/Saikabilane/AutoSense/internal/domain"
)

// FileStore хранит календарь в одном CSV файле
// Каждая запись перезаписывает файл целиком
type FileStore struct {
	path string
}

// NewFileStore создает хранилище календаря поверх CSV файла
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path возвращает путь к файлу календаря
func (s *FileStore) Path() string {
	return s.path
}

// Load читает весь календарь из файла
func (s *FileStore) Load(_ context.Context) (*domain.Calendar, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: Load - open %s: %v", ErrStoreUnreadable, s.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(domain.CalendarColumns)

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: Load - %s is empty", ErrStoreCorrupt, s.path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Load - read header: %v", ErrStoreCorrupt, err)
	}
	if !slices.Equal(header, domain.CalendarColumns) {
		return nil, fmt.Errorf("%w: Load - unexpected header %v", ErrStoreCorrupt, header)
	}

	slots := make([]*domain.Slot, 0)
	for line := 2; ; line++ {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: Load - read row: %v", ErrStoreCorrupt, err)
		}

		slot, err := decodeSlot(row)
		if err != nil {
			return nil, fmt.Errorf("%w: Load - line %d: %v", ErrStoreCorrupt, line, err)
		}
		slots = append(slots, slot)
	}

	if len(slots) == 0 {
		return nil, fmt.Errorf("%w: Load - %s has no slots", ErrStoreCorrupt, s.path)
	}

	cal := domain.NewCalendar(slots)
	if err := validateCalendar(cal); err != nil {
		return nil, err
	}

	return cal, nil
}

// Save записывает календарь во временный файл и атомарно подменяет им основной
func (s *FileStore) Save(_ context.Context, cal *domain.Calendar) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: Save - create temp file: %v", ErrStoreWrite, err)
	}
	tmpPath := tmp.Name()
	// После успешного Rename файла уже нет, ошибка удаления игнорируется
	defer os.Remove(tmpPath)

	w := csv.NewWriter(tmp)
	if err := w.Write(domain.CalendarColumns); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: Save - write header: %v", ErrStoreWrite, err)
	}
	for _, slot := range cal.Slots {
		if err := w.Write(encodeSlot(slot)); err != nil {
			tmp.Close()
			return fmt.Errorf("%w: Save - write slot %d: %v", ErrStoreWrite, slot.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: Save - flush: %v", ErrStoreWrite, err)
	}

	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: Save - chmod: %v", ErrStoreWrite, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: Save - sync: %v", ErrStoreWrite, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: Save - close: %v", ErrStoreWrite, err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("%w: Save - rename to %s: %v", ErrStoreWrite, s.path, err)
	}

	return nil
}
