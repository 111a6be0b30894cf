package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/aroma/internal/client/models"
	"github.com/dmitrijs2005/aroma/internal/client/storage"
	"github.com/dmitrijs2005/aroma/internal/logging"
)

// VisitReport summarises the visit log.
type VisitReport struct {
	Total int
	// Pages lists distinct pages in the order they were first visited.
	Pages []string
	Today int
}

// StatsService keeps the local page-visit log.
type StatsService interface {
	Track(ctx context.Context, page string) error
	Report(ctx context.Context) (VisitReport, error)
	LogReport(ctx context.Context)
}

type statsService struct {
	store *storage.Store
	log   logging.Logger
	now   func() time.Time
}

func NewStatsService(store *storage.Store, log logging.Logger) StatsService {
	return &statsService{store: store, log: log.With("component", "stats"), now: time.Now}
}

func (s *statsService) Track(ctx context.Context, page string) error {
	now := s.now()
	v := models.Visit{
		Page: page,
		Date: now.Format(time.RFC3339),
		Time: now.Format(time.TimeOnly),
	}
	if err := storage.AppendJSON(ctx, s.store, storage.KeyVisits, v); err != nil {
		return fmt.Errorf("track visit: %w", err)
	}
	return nil
}

func (s *statsService) Report(ctx context.Context) (VisitReport, error) {
	var visits []models.Visit
	if _, err := s.store.GetJSON(ctx, storage.KeyVisits, &visits); err != nil {
		return VisitReport{}, fmt.Errorf("read visits: %w", err)
	}

	now := s.now()
	y, m, d := now.Date()
	seen := make(map[string]struct{})
	r := VisitReport{Total: len(visits), Pages: []string{}}
	for _, v := range visits {
		if _, ok := seen[v.Page]; !ok {
			seen[v.Page] = struct{}{}
			r.Pages = append(r.Pages, v.Page)
		}
		at, err := time.Parse(time.RFC3339, v.Date)
		if err != nil {
			continue
		}
		vy, vm, vd := at.In(now.Location()).Date()
		if vy == y && vm == m && vd == d {
			r.Today++
		}
	}
	return r, nil
}

// LogReport writes the current report to the log. Errors are logged too.
func (s *statsService) LogReport(ctx context.Context) {
	r, err := s.Report(ctx)
	if err != nil {
		s.log.Error(ctx, "visit report failed", "error", err)
		return
	}
	s.log.Info(ctx, "visit report", "total", r.Total, "pages", r.Pages, "today", r.Today)
}
