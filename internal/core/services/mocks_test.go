package services

import (
	"context"
	"sync"

	"github.com/custodia-labs/md2docx/internal/core/domain"
)

type mockReader struct {
	text  string
	err   error
	paths []string
}

func (m *mockReader) Read(_ context.Context, path string) (string, error) {
	m.paths = append(m.paths, path)
	if m.err != nil {
		return "", m.err
	}
	return m.text, nil
}

type mockPipeline struct {
	fn    func(string) string
	err   error
	calls int
}

func (m *mockPipeline) Transform(_ context.Context, text string) (string, error) {
	m.calls++
	if m.err != nil {
		return "", m.err
	}
	if m.fn != nil {
		return m.fn(text), nil
	}
	return text, nil
}

type mockPackager struct {
	doc  *domain.Document
	path string
	size int64
	err  error
}

func (m *mockPackager) Write(_ context.Context, doc *domain.Document, outputPath string) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.doc = doc
	m.path = outputPath
	return m.size, nil
}

type mockInspector struct {
	info *domain.PackageInfo
	err  error
}

func (m *mockInspector) Inspect(_ context.Context, _ string) (*domain.PackageInfo, error) {
	return m.info, m.err
}

// mockWatcher fires onChange once for arming plus a fixed number of
// changes, then blocks until the context is cancelled.
type mockWatcher struct {
	changes int
	err     error
	path    string
}

func (m *mockWatcher) Watch(ctx context.Context, path string, onChange func(ctx context.Context)) error {
	m.path = path
	if m.err != nil {
		return m.err
	}
	for i := 0; i <= m.changes; i++ {
		onChange(ctx)
	}
	<-ctx.Done()
	return nil
}

type mockConverter struct {
	mu      sync.Mutex
	results []*domain.ConvertResult
	errs    []error
	calls   int
}

func (m *mockConverter) Convert(_ context.Context, req domain.ConvertRequest) (*domain.ConvertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := m.calls
	m.calls++
	if i < len(m.errs) && m.errs[i] != nil {
		return nil, m.errs[i]
	}
	if i < len(m.results) {
		return m.results[i], nil
	}
	return &domain.ConvertResult{OutputPath: req.OutputPath}, nil
}

func (m *mockConverter) Parse(_ context.Context, text string, _ domain.SourceFormat) ([]domain.Block, error) {
	return ParseBlocks(text), nil
}

func (m *mockConverter) Inspect(_ context.Context, _ string) (*domain.PackageInfo, error) {
	return nil, domain.ErrNotImplemented
}
