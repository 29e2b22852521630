package reconcile

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Engine reconciles request catalogs against a Library.
type Engine struct {
	library Library
	opts    Options
	logger  *zap.Logger
}

// NewEngine creates a new engine. An empty OnCheckError defaults to CheckErrorDelete.
func NewEngine(library Library, opts Options, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.OnCheckError == "" {
		opts.OnCheckError = CheckErrorDelete
	}
	return &Engine{
		library: library,
		opts:    opts,
		logger:  logger,
	}
}

// Run scans every catalog in order. Every catalog logs a start and a finish line;
// one that fails is marked aborted and the failures are returned joined once all
// catalogs have been processed.
func (e *Engine) Run(ctx context.Context, catalogs []Catalog) error {
	var errs []error

	for _, catalog := range catalogs {
		l := e.logger.With(zap.String("target", catalog.Name()))
		l.Info("Processing started", zap.Bool("dry_run", e.opts.DryRun))

		stats, err := e.Scan(ctx, catalog)
		fields := append(statsFields(stats), zap.Bool("aborted", err != nil))
		if err != nil {
			l.Error("Processing finished", append(fields, zap.Error(err))...)
			errs = append(errs, fmt.Errorf("%s: %w", catalog.Name(), err))
			continue
		}

		l.Info("Processing finished", fields...)
	}

	return errors.Join(errs...)
}

// Scan walks a catalog page by page until the service reports the last page.
// After a page that produced a deletion the same index is fetched again, since
// the deletion shifted later entries into the current offset window.
func (e *Engine) Scan(ctx context.Context, catalog Catalog) (Stats, error) {
	var stats Stats
	pageIndex := 1

	for fetches := 0; ; fetches++ {
		if e.opts.MaxPageFetches > 0 && fetches >= e.opts.MaxPageFetches {
			return stats, fmt.Errorf("%w: %d fetches, stopped at page %d", ErrFetchLimit, fetches, pageIndex)
		}

		page, err := catalog.FetchPage(ctx, pageIndex)
		if err != nil {
			return stats, fmt.Errorf("fetch page %d: %w", pageIndex, err)
		}
		stats.Pages++

		outcomes := e.scanPage(ctx, catalog, page.Entries)
		stats.add(outcomes)

		e.logger.Debug("Page scanned",
			zap.String("target", catalog.Name()),
			zap.Int("page_index", pageIndex),
			zap.Int("page", page.Number),
			zap.Int("pages", page.Count),
			zap.Int("entries", len(page.Entries)),
		)

		if page.Number >= page.Count {
			return stats, nil
		}

		if !anyDeleted(outcomes) {
			pageIndex++
		}
	}
}

// scanPage reconciles all entries concurrently and waits for every one of them.
// Each goroutine writes only its own slot, so the slice needs no locking.
func (e *Engine) scanPage(ctx context.Context, catalog Catalog, entries []Entry) []Outcome {
	outcomes := make([]Outcome, len(entries))

	var g errgroup.Group
	if e.opts.Concurrency > 0 {
		g.SetLimit(e.opts.Concurrency)
	}
	for i, entry := range entries {
		g.Go(func() error {
			outcomes[i] = e.Reconcile(ctx, catalog, entry)
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}

// Reconcile decides whether entry should be deleted and deletes it if so.
// It never returns an error: failures are logged and reflected in the Outcome.
func (e *Engine) Reconcile(ctx context.Context, catalog Catalog, entry Entry) Outcome {
	l := e.logger.With(
		zap.String("target", catalog.Name()),
		zap.Int("id", entry.ID),
		zap.String("media_type", string(entry.Kind)),
	)
	if entry.ExternalRef != nil {
		l = l.With(zap.Int("external_id", *entry.ExternalRef))
	}

	if !e.shouldDelete(ctx, l, entry) {
		return OutcomeKept
	}

	if e.opts.DryRun {
		l.Info("Would delete media")
		return OutcomeWouldDelete
	}

	if err := catalog.Delete(ctx, entry.ID); err != nil {
		l.Error("Failed to delete media", zap.Error(err))
		return OutcomeDeleteFailed
	}

	l.Info("Deleted media")
	return OutcomeDeleted
}

func (e *Engine) shouldDelete(ctx context.Context, l *zap.Logger, entry Entry) bool {
	if entry.ExternalRef == nil {
		l.Debug("Media has no library reference")
		return true
	}

	exists, err := e.library.Exists(ctx, entry.Kind, *entry.ExternalRef)
	if err != nil {
		if e.opts.OnCheckError == CheckErrorKeep {
			l.Warn("Existence check failed, keeping media", zap.Error(err))
			return false
		}
		l.Warn("Existence check failed, treating media as missing", zap.Error(err))
		return true
	}

	return !exists
}

func anyDeleted(outcomes []Outcome) bool {
	for _, o := range outcomes {
		if o == OutcomeDeleted {
			return true
		}
	}
	return false
}

func statsFields(s Stats) []zap.Field {
	return []zap.Field{
		zap.Int("pages", s.Pages),
		zap.Int("kept", s.Kept),
		zap.Int("deleted", s.Deleted),
		zap.Int("delete_failed", s.DeleteFailed),
		zap.Int("would_delete", s.WouldDelete),
	}
}
