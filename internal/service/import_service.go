package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/wellspring/internal/db"
	"github.com/alexanderramin/wellspring/internal/importer"
	"github.com/alexanderramin/wellspring/internal/repository"
)

type importService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

// NewImportService imports all collections in a single transaction.
func NewImportService(uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *importService) Import(ctx context.Context, path string) (*ImportResult, error) {
	schema, err := importer.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading import data: %w", err)
	}
	return s.ImportSchema(ctx, schema)
}

// ImportSchema validates, converts and stores schema. A routine whose date
// is already taken by a different routine replaces it.
func (s *importService) ImportSchema(ctx context.Context, schema *importer.ImportSchema) (res *ImportResult, err error) {
	fields := map[string]any{}
	done := track(ctx, s.observer, "import", fields)
	defer func() { done(err) }()

	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		fields["validation_errors"] = len(errs)
		return nil, formatValidationErrors(errs)
	}
	bundle, err := importer.Convert(schema)
	if err != nil {
		return nil, fmt.Errorf("converting import data: %w", err)
	}

	res = &ImportResult{}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		routines := repository.NewSQLiteRoutineRepo(tx)
		workouts := repository.NewSQLiteWorkoutRepo(tx)
		diets := repository.NewSQLiteDietRepo(tx)

		for i := range bundle.Routines {
			rt := &bundle.Routines[i]
			existing, err := routines.GetByDate(ctx, rt.Date)
			switch {
			case err == nil && existing.ID != rt.ID:
				if err := routines.Delete(ctx, existing.ID); err != nil {
					return err
				}
				res.ReplacedRoutines++
			case err != nil && !errors.Is(err, repository.ErrNotFound):
				return err
			}
			if err := routines.Upsert(ctx, rt); err != nil {
				return err
			}
			res.Routines++
		}
		for i := range bundle.Workouts {
			if err := workouts.Upsert(ctx, &bundle.Workouts[i]); err != nil {
				return err
			}
			res.Workouts++
		}
		for i := range bundle.Diets {
			if err := diets.Upsert(ctx, &bundle.Diets[i]); err != nil {
				return err
			}
			res.Diets++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["routines"] = res.Routines
	fields["workouts"] = res.Workouts
	fields["diets"] = res.Diets
	return res, nil
}

func formatValidationErrors(errs []error) error {
	return &ValidationError{
		Msg: fmt.Sprintf("import validation failed (%d errors):\n%v", len(errs), errors.Join(errs...)),
	}
}

type exportService struct {
	history  HistorySource
	observer UseCaseObserver
}

func NewExportService(history HistorySource, observers ...UseCaseObserver) ExportService {
	return &exportService{history: history, observer: useCaseObserverOrNoop(observers)}
}

func (s *exportService) Export(ctx context.Context, path string, asDir bool) (res *ExportResult, err error) {
	done := track(ctx, s.observer, "export", map[string]any{"path": path, "dir": asDir})
	defer func() { done(err) }()

	h, err := s.history.LoadHistory(ctx)
	if err != nil {
		return nil, err
	}
	schema := importer.FromBundle(&importer.Bundle{Routines: h.Routines, Workouts: h.Workouts, Diets: h.Diets})
	if asDir {
		err = schema.WriteDir(path)
	} else {
		err = schema.WriteFile(path)
	}
	if err != nil {
		return nil, err
	}
	return &ExportResult{
		Path:     path,
		Routines: len(h.Routines),
		Workouts: len(h.Workouts),
		Diets:    len(h.Diets),
	}, nil
}
