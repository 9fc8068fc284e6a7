package services

import (
	"context"

	"github.com/custodia-labs/md2docx/internal/core/domain"
	"github.com/custodia-labs/md2docx/internal/core/ports/driven"
	"github.com/custodia-labs/md2docx/internal/core/ports/driving"
	"github.com/custodia-labs/md2docx/internal/logger"
)

// Ensure WatchService implements the interface.
var _ driving.WatchService = (*WatchService)(nil)

// WatchService reconverts the input whenever it changes.
type WatchService struct {
	converter driving.ConverterService
	watcher   driven.FileWatcher
}

// NewWatchService creates a new watch service. watcher may be nil,
// in which case Watch returns domain.ErrNotImplemented.
func NewWatchService(converter driving.ConverterService, watcher driven.FileWatcher) *WatchService {
	return &WatchService{
		converter: converter,
		watcher:   watcher,
	}
}

// Watch converts once the watch is armed and then after every change until
// ctx is cancelled.
// Conversion failures are reported and do not stop the watch, so a missing
// input can appear later. Cancellation returns nil.
func (s *WatchService) Watch(
	ctx context.Context,
	req domain.ConvertRequest,
	report func(*domain.ConvertResult, error),
) error {
	if s.converter == nil || s.watcher == nil {
		return domain.ErrNotImplemented
	}
	if report == nil {
		report = func(*domain.ConvertResult, error) {}
	}

	convert := func(ctx context.Context) {
		result, err := s.converter.Convert(ctx, req)
		if err != nil && ctx.Err() != nil {
			return
		}
		report(result, err)
	}

	logger.Info("watching %s", req.InputPath)
	err := s.watcher.Watch(ctx, req.InputPath, convert)
	if ctx.Err() != nil {
		return nil
	}
	return err
}
