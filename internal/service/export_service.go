package service

import (
	"bytes"
	"context"
	"errors"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/export"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/table"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/pkg/metrics"
)

// ── export errors ──

// ErrUnknownEntity no table is registered under the requested name
var ErrUnknownEntity = errors.New("unknown entity")

// ExportService turns the current view of any entity table into an .xlsx download
type ExportService interface {
	// Export returns the workbook and its suggested filename
	Export(ctx context.Context, entity string, q table.Query) (*bytes.Buffer, string, error)
	// Entities the names Export accepts, sorted
	Entities() []string
}

type exportService struct {
	exporters map[string]Exporter
	metrics   *metrics.Metrics
	now       func() time.Time
	logger    *zap.Logger
}

// NewExportService creates an ExportService over the named exporters
func NewExportService(exporters map[string]Exporter, m *metrics.Metrics, logger *zap.Logger) ExportService {
	return &exportService{exporters: exporters, metrics: m, now: time.Now, logger: logger}
}

func (s *exportService) Export(ctx context.Context, entity string, q table.Query) (*bytes.Buffer, string, error) {
	ex, ok := s.exporters[entity]
	if !ok {
		return nil, "", ErrUnknownEntity
	}
	buf, err := ex.Export(ctx, q)
	if err != nil {
		if !errors.Is(err, export.ErrEmpty) {
			s.logger.Error("export failed", zap.String("entity", entity), zap.Error(err))
		}
		return nil, "", err
	}
	s.metrics.ObserveExport(entity)
	s.logger.Info("export generated", zap.String("entity", entity), zap.Int("bytes", buf.Len()))
	return buf, export.Filename(entity, s.now()), nil
}

func (s *exportService) Entities() []string {
	out := make([]string, 0, len(s.exporters))
	for name := range s.exporters {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
