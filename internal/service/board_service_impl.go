package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/alexanderramin/planboard/internal/calendar"
	"github.com/alexanderramin/planboard/internal/contract"
	"github.com/alexanderramin/planboard/internal/db"
	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/alexanderramin/planboard/internal/repository"
)

type boardService struct {
	remote    Remote
	plannings repository.PlanningRepo
	meta      repository.MetaRepo
	uow       db.UnitOfWork
	logger    *slog.Logger
	observer  UseCaseObserver

	duplicatePriority int
}

// BoardOptions tunes the controllers created by the board service.
type BoardOptions struct {
	Logger            *slog.Logger
	DuplicatePriority int
}

func NewBoardService(
	remote Remote,
	plannings repository.PlanningRepo,
	meta repository.MetaRepo,
	uow db.UnitOfWork,
	opts BoardOptions,
	observers ...UseCaseObserver,
) BoardService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &boardService{
		remote:            remote,
		plannings:         plannings,
		meta:              meta,
		uow:               uow,
		logger:            logger,
		observer:          useCaseObserverOrNoop(observers),
		duplicatePriority: opts.DuplicatePriority,
	}
}

func (s *boardService) Sync(ctx context.Context) (result *SyncResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer observe(ctx, s.observer, "sync", startedAt, fields, &err)

	taskRecs, err := s.remote.ListTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching tasks: %w", err)
	}
	planRecs, err := s.remote.ListPlannings(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching plannings: %w", err)
	}

	byID := make(map[string]*contract.TaskRecord, len(taskRecs))
	tasks := make([]*domain.Task, 0, len(taskRecs))
	for i := range taskRecs {
		rec := &taskRecs[i]
		byID[rec.ID.String()] = rec
		t := contract.ToTask(*rec)
		tasks = append(tasks, &t)
	}

	result = &SyncResult{At: startedAt}
	items := make([]*domain.PlanningItem, 0, len(planRecs))
	for _, rec := range planRecs {
		item := contract.ToPlanning(rec, byID[rec.TaskID.String()])
		if verr := item.Validate(); verr != nil {
			s.logger.WarnContext(ctx, "skipping planning", "error", verr)
			result.Skipped++
			continue
		}
		items = append(items, &item)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteTaskRepo(tx).ReplaceAll(ctx, tasks); err != nil {
			return err
		}
		if err := repository.NewSQLitePlanningRepo(tx).ReplaceAll(ctx, items); err != nil {
			return err
		}
		return repository.NewSQLiteMetaRepo(tx).Set(ctx, repository.MetaLastSync, startedAt.Format(time.RFC3339))
	})
	if err != nil {
		return nil, fmt.Errorf("storing snapshot: %w", err)
	}

	result.Tasks = len(tasks)
	result.Plannings = len(items)
	fields["tasks"] = result.Tasks
	fields["plannings"] = result.Plannings
	fields["skipped"] = result.Skipped
	return result, nil
}

func (s *boardService) Load(ctx context.Context, start time.Time, days int, extraDates ...string) (*calendar.Board, error) {
	board := calendar.NewBoard(start, days)
	window := board.Window()

	for _, d := range extraDates {
		if !domain.ValidDate(d) {
			return nil, fmt.Errorf("%w %q", domain.ErrInvalidDate, d)
		}
		board.EnsureList(d)
	}

	items, err := s.plannings.ListByDateRange(ctx, window[0], window[len(window)-1])
	if err != nil {
		return nil, fmt.Errorf("loading board: %w", err)
	}
	for _, d := range extraDates {
		if d >= window[0] && d <= window[len(window)-1] {
			continue
		}
		extra, err := s.plannings.ListByDateRange(ctx, d, d)
		if err != nil {
			return nil, fmt.Errorf("loading board: %w", err)
		}
		items = append(items, extra...)
	}

	board.Load(dedupe(items))
	return board, nil
}

// dedupe drops repeated plannings when extra dates overlap.
func dedupe(items []*domain.PlanningItem) []*domain.PlanningItem {
	seen := make(map[string]bool, len(items))
	out := items[:0]
	for _, it := range items {
		if seen[it.ID] {
			continue
		}
		seen[it.ID] = true
		out = append(out, it)
	}
	return out
}

func (s *boardService) Controller(board *calendar.Board, notifier calendar.Notifier) *calendar.Controller {
	return calendar.NewController(board, s.remote, notifier,
		calendar.WithLogger(s.logger),
		calendar.WithDuplicatePriority(s.duplicatePriority),
	)
}

func (s *boardService) Apply(ctx context.Context, out *calendar.Outcome) (err error) {
	if out == nil {
		return nil
	}
	startedAt := time.Now().UTC()
	fields := map[string]any{"touched": len(out.Touched), "removed": len(out.Removed)}
	defer observe(ctx, s.observer, "apply-outcome", startedAt, fields, &err)

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		plannings := repository.NewSQLitePlanningRepo(tx)
		tasks := repository.NewSQLiteTaskRepo(tx)

		stated := make(map[string]bool)
		for _, item := range out.Touched {
			if err := plannings.Upsert(ctx, item); err != nil {
				return err
			}
			if item.TaskID == "" || stated[item.TaskID] {
				continue
			}
			stated[item.TaskID] = true
			if err := plannings.SetTaskState(ctx, item.TaskID, item.TaskState); err != nil {
				return err
			}
			if err := tasks.SetState(ctx, item.TaskID, item.TaskState); err != nil && !errors.Is(err, repository.ErrNotFound) {
				return err
			}
		}
		for _, id := range out.Removed {
			if err := plannings.Delete(ctx, id); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *boardService) Planning(ctx context.Context, id string) (*domain.PlanningItem, error) {
	return s.plannings.GetByID(ctx, id)
}

func (s *boardService) LastSync(ctx context.Context) (time.Time, bool) {
	v, err := s.meta.Get(ctx, repository.MetaLastSync)
	if err != nil {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
