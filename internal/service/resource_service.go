package service

import (
	"bytes"
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/dto"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/export"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/gateway"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/repository"
	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/internal/table"
	apperrors "github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/pkg/errors"
)

// ── resource errors ──

var (
	// ErrDeleteNotConfirmed a delete arrived without the user's confirmation; nothing was sent
	ErrDeleteNotConfirmed = errors.New("delete requires confirmation")
	// ErrNoPictureField the entity does not take a photo
	ErrNoPictureField = errors.New("entity does not accept a photo")
)

// Entity how one backend resource is shown and written
type Entity[T any] struct {
	// Name used in export filenames, metrics and logs
	Name string
	// Title sheet name of the export
	Title string
	// Lookups reference lists the columns join against
	Lookups LookupSet
	Columns func(*Lookups) []table.Column[T]
	// PictureField camelCase form field of the photo; empty when the entity has none
	PictureField string
	// Picture the stored photo URL of a record
	Picture func(T) string
}

// Exporter writes the filtered, sorted table of one entity as a workbook
type Exporter interface {
	Export(ctx context.Context, q table.Query) (*bytes.Buffer, error)
}

// ResourceService CRUD plus the table view of one entity.
// C and U are the create and update request types.
type ResourceService[T, C, U any] interface {
	Exporter
	Name() string
	// PictureField form field of the photo, empty when the entity has none
	PictureField() string
	Table(ctx context.Context, q table.Query) (*dto.TableResponse[T], error)
	Count(ctx context.Context) (int, error)
	Get(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, req *C, photo *gateway.File) (*T, error)
	Update(ctx context.Context, id int64, req *U, photo *gateway.File) (*T, error)
	// Delete removes the record only when confirmed; otherwise it returns
	// ErrDeleteNotConfirmed without contacting the backend.
	Delete(ctx context.Context, id int64, confirmed bool) error
}

type resourceService[T, C, U any] struct {
	entity   Entity[T]
	repo     *repository.Repository
	rows     repository.ResourceRepository[T]
	pictures PictureService
	export   export.Options
	logger   *zap.Logger
}

// NewResourceService creates the service of one entity over rows
func NewResourceService[T, C, U any](
	entity Entity[T],
	repo *repository.Repository,
	rows repository.ResourceRepository[T],
	pictures PictureService,
	exportOpts export.Options,
	logger *zap.Logger,
) ResourceService[T, C, U] {
	return newResourceService[T, C, U](entity, repo, rows, pictures, exportOpts, logger)
}

func newResourceService[T, C, U any](
	entity Entity[T],
	repo *repository.Repository,
	rows repository.ResourceRepository[T],
	pictures PictureService,
	exportOpts export.Options,
	logger *zap.Logger,
) *resourceService[T, C, U] {
	if exportOpts.SheetName == "" {
		exportOpts.SheetName = entity.Title
	}
	return &resourceService[T, C, U]{
		entity:   entity,
		repo:     repo,
		rows:     rows,
		pictures: pictures,
		export:   exportOpts,
		logger:   logger.With(zap.String("entity", entity.Name)),
	}
}

func (s *resourceService[T, C, U]) Name() string { return s.entity.Name }

func (s *resourceService[T, C, U]) PictureField() string { return s.entity.PictureField }

// ────────────────────── Table ──────────────────────

// load fetches the rows and the lookups they join against in parallel
func (s *resourceService[T, C, U]) load(ctx context.Context) ([]T, *Lookups, error) {
	var (
		rows []T
		lk   = &Lookups{}
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = s.rows.List(gctx)
		return err
	})
	if s.entity.Lookups != 0 {
		g.Go(func() error {
			var err error
			lk, err = LoadLookups(gctx, s.repo, s.entity.Lookups)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return rows, lk, nil
}

func (s *resourceService[T, C, U]) view(ctx context.Context, q table.Query) (*table.View[T], error) {
	rows, lk, err := s.load(ctx)
	if err != nil {
		s.logger.Error("load table failed", zap.Error(err))
		return nil, err
	}
	v := table.NewView(s.entity.Columns(lk))
	if err := v.Load(rows); err != nil {
		return nil, err
	}
	if _, err := v.Apply(q); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *resourceService[T, C, U]) Table(ctx context.Context, q table.Query) (*dto.TableResponse[T], error) {
	v, err := s.view(ctx, q)
	if err != nil {
		return nil, err
	}
	return tableResponse(v), nil
}

func tableResponse[T any](v *table.View[T]) *dto.TableResponse[T] {
	rows := v.Current()
	if rows == nil {
		rows = []T{}
	}
	q := v.Query()
	echo := dto.TableQueryResponse{Filters: q.Filters}
	if q.Search.Active() {
		echo.SearchColumn, echo.SearchTerm = q.Search.Column, q.Search.Term
	}
	if q.Sort.Column != "" {
		echo.SortColumn, echo.SortOrder = q.Sort.Column, "ascend"
		if q.Sort.Desc {
			echo.SortOrder = "descend"
		}
	}
	return &dto.TableResponse[T]{
		Columns:    v.Meta(),
		Rows:       rows,
		Highlights: v.Highlights(),
		Total:      v.Total(),
		Filtered:   len(rows),
		Query:      echo,
	}
}

func (s *resourceService[T, C, U]) Count(ctx context.Context) (int, error) {
	rows, err := s.rows.List(ctx)
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}

// ────────────────────── Export ──────────────────────

func (s *resourceService[T, C, U]) Export(ctx context.Context, q table.Query) (*bytes.Buffer, error) {
	v, err := s.view(ctx, q)
	if err != nil {
		return nil, err
	}
	return export.Workbook(v.Columns(), v.Current(), s.export)
}

// ────────────────────── CRUD ──────────────────────

func (s *resourceService[T, C, U]) Get(ctx context.Context, id int64) (*T, error) {
	return s.rows.GetByID(ctx, id)
}

// payload builds the request body: the request's fields plus the photo, if any.
// A photo promotes the body to multipart.
func (s *resourceService[T, C, U]) payload(req any, photo *gateway.File) (gateway.Payload, error) {
	if photo != nil && s.entity.PictureField == "" {
		return nil, ErrNoPictureField
	}
	if err := s.pictures.Validate(photo); err != nil {
		return nil, err
	}
	fields, err := gateway.Fields(req)
	if err != nil {
		return nil, err
	}
	if photo != nil {
		fields[s.entity.PictureField] = photo
	}
	return gateway.Inspect(fields), nil
}

func (s *resourceService[T, C, U]) Create(ctx context.Context, req *C, photo *gateway.File) (*T, error) {
	body, err := s.payload(req, photo)
	if err != nil {
		return nil, err
	}
	out, err := s.rows.Create(ctx, body)
	if err != nil {
		s.logUpstream("create failed", err)
		return nil, err
	}
	return out, nil
}

func (s *resourceService[T, C, U]) Update(ctx context.Context, id int64, req *U, photo *gateway.File) (*T, error) {
	body, err := s.payload(req, photo)
	if err != nil {
		return nil, err
	}

	// the replaced photo is removed once the new one is stored
	var previous string
	if photo != nil && s.entity.Picture != nil {
		current, err := s.rows.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		previous = s.entity.Picture(*current)
	}

	out, err := s.rows.Update(ctx, id, body)
	if err != nil {
		s.logUpstream("update failed", err, zap.Int64("id", id))
		return nil, err
	}

	if previous != "" && previous != s.entity.Picture(*out) {
		if err := s.pictures.DeleteByURL(ctx, previous); err != nil {
			s.logger.Warn("previous picture not removed", zap.String("url", previous), zap.Error(err))
		}
	}
	return out, nil
}

func (s *resourceService[T, C, U]) Delete(ctx context.Context, id int64, confirmed bool) error {
	if !confirmed {
		return ErrDeleteNotConfirmed
	}
	if err := s.rows.Delete(ctx, id); err != nil {
		s.logUpstream("delete failed", err, zap.Int64("id", id))
		return err
	}
	s.logger.Info("record deleted", zap.Int64("id", id))
	return nil
}

// logUpstream rejections by the backend are expected and logged quieter than transport failures
func (s *resourceService[T, C, U]) logUpstream(msg string, err error, fields ...zap.Field) {
	fields = append(fields, zap.Error(err))
	if _, ok := apperrors.AsUpstream(err); ok {
		s.logger.Warn(msg, fields...)
		return
	}
	s.logger.Error(msg, fields...)
}

