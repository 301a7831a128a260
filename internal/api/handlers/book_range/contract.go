package book_range

import (
	"context"

	bookRange "github.com/Saikabilane/AutoSense/internal/usecase/book_range"
)

type BookRangeUseCase interface {
	Execute(ctx context.Context, req *bookRange.Request) (*bookRange.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
