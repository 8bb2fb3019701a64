package portfolio

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-builder/internal/application/seed"
	"github.com/khoahotran/portfolio-builder/internal/application/service"
	"github.com/khoahotran/portfolio-builder/internal/domain/portfolio"
	"github.com/khoahotran/portfolio-builder/pkg/apperror"
	"github.com/khoahotran/portfolio-builder/pkg/logger"
)

const maxIDAttempts = 8

// Store owns the authoritative portfolio list and mirrors every change to the
// repository as one whole-list snapshot. A mutation is applied in memory only
// after the snapshot write succeeded.
type Store struct {
	mu         sync.RWMutex
	portfolios []portfolio.Portfolio
	currentID  string

	repo      portfolio.Repository
	logger    logger.Logger
	publisher service.EventPublisher
	seeder    seed.Seeder
	seedEmpty bool
	now       func() time.Time
	newID     func() string
}

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

func WithSeeder(sd seed.Seeder) Option {
	return func(s *Store) { s.seeder = sd }
}

// WithSeedOnEmpty controls whether Initialize seeds samples when no snapshot
// is stored. Enabled by default.
func WithSeedOnEmpty(enabled bool) Option {
	return func(s *Store) { s.seedEmpty = enabled }
}

func WithPublisher(p service.EventPublisher) Option {
	return func(s *Store) { s.publisher = p }
}

func NewStore(repo portfolio.Repository, log logger.Logger, opts ...Option) *Store {
	s := &Store{
		portfolios: []portfolio.Portfolio{},
		repo:       repo,
		logger:     log,
		seeder:     seed.DefaultSeeder(),
		seedEmpty:  true,
		now:        func() time.Time { return time.Now().UTC() },
		newID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Initialize loads the stored snapshot. A missing or unreadable snapshot
// falls back to the sample set, which is persisted right away. Any other
// load failure is returned.
func (s *Store) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.repo.Load(ctx)
	switch {
	case err == nil:
		for i := range list {
			list[i].Normalize()
		}
		s.portfolios = list
		s.currentID = ""
		s.logger.Info("Loaded portfolios from storage", zap.Int("count", len(list)))
		return nil

	case errors.Is(err, portfolio.ErrSnapshotNotFound), errors.Is(err, portfolio.ErrCorruptSnapshot):
		if errors.Is(err, portfolio.ErrCorruptSnapshot) {
			s.logger.Warn("Stored portfolios are corrupt, falling back to samples", zap.Error(err))
		}
		if !s.seedEmpty {
			s.portfolios = []portfolio.Portfolio{}
			s.currentID = ""
			return nil
		}
		return s.reseedLocked(ctx)

	default:
		return apperror.NewStorage("failed to load portfolios", err)
	}
}

// Reset discards every stored portfolio and replaces the list with samples.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	err := s.reseedLocked(ctx)
	s.mu.Unlock()

	if err != nil {
		return err
	}
	s.publish(ctx, service.EventPortfolioReset, "")
	return nil
}

func (s *Store) reseedLocked(ctx context.Context) error {
	seeded := s.seeder.Seed(s.now())
	if err := s.persist(ctx, seeded); err != nil {
		return err
	}
	s.portfolios = seeded
	s.currentID = ""
	s.logger.Info("Seeded sample portfolios", zap.Int("count", len(seeded)))
	return nil
}

// Create stamps the draft with a fresh id and timestamps, puts it first in
// the list and makes it the current portfolio.
func (s *Store) Create(ctx context.Context, d portfolio.Draft) (portfolio.Portfolio, error) {
	p, err := s.applyCreate(ctx, d)
	if err != nil {
		return portfolio.Portfolio{}, err
	}
	s.publish(ctx, service.EventPortfolioCreated, p.ID)
	return p, nil
}

func (s *Store) applyCreate(ctx context.Context, d portfolio.Draft) (portfolio.Portfolio, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.uniqueIDLocked()
	if err != nil {
		return portfolio.Portfolio{}, err
	}
	p := portfolio.New(id, d, s.now())

	next := make([]portfolio.Portfolio, 0, len(s.portfolios)+1)
	next = append(next, p)
	next = append(next, s.portfolios...)
	if err := s.persist(ctx, next); err != nil {
		return portfolio.Portfolio{}, err
	}

	s.portfolios = next
	s.currentID = p.ID
	s.logger.Info("Portfolio created", zap.String("portfolio_id", p.ID), zap.String("template", string(p.Template)))
	return p.Clone(), nil
}

func (s *Store) uniqueIDLocked() (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id := s.newID()
		if id != "" && s.indexLocked(id) < 0 {
			return id, nil
		}
	}
	return "", apperror.NewConflict("portfolio", "id", "generated")
}

// Update merges the patch into the portfolio with the given id. An unknown
// id is not an error: ok is false and nothing changes.
func (s *Store) Update(ctx context.Context, id string, patch portfolio.Patch) (portfolio.Portfolio, bool, error) {
	p, ok, err := s.applyUpdate(ctx, id, patch)
	if ok && err == nil {
		s.publish(ctx, service.EventPortfolioUpdated, id)
	}
	return p, ok, err
}

func (s *Store) applyUpdate(ctx context.Context, id string, patch portfolio.Patch) (portfolio.Portfolio, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		s.logger.Debug("Update ignored, portfolio not found", zap.String("portfolio_id", id))
		return portfolio.Portfolio{}, false, nil
	}

	updated := s.portfolios[idx].Clone()
	patch.Apply(&updated)
	updated.UpdatedAt = s.now()

	next := make([]portfolio.Portfolio, len(s.portfolios))
	copy(next, s.portfolios)
	next[idx] = updated
	if err := s.persist(ctx, next); err != nil {
		return portfolio.Portfolio{}, true, err
	}

	s.portfolios = next
	s.logger.Info("Portfolio updated", zap.String("portfolio_id", id), zap.Bool("current", s.currentID == id))
	return updated.Clone(), true, nil
}

// Delete removes the portfolio with the given id and clears the current
// portfolio if it was the one removed. Unknown ids are ignored.
func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	ok, err := s.applyDelete(ctx, id)
	if ok && err == nil {
		s.publish(ctx, service.EventPortfolioDeleted, id)
	}
	return ok, err
}

func (s *Store) applyDelete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		s.logger.Debug("Delete ignored, portfolio not found", zap.String("portfolio_id", id))
		return false, nil
	}

	next := make([]portfolio.Portfolio, 0, len(s.portfolios)-1)
	next = append(next, s.portfolios[:idx]...)
	next = append(next, s.portfolios[idx+1:]...)
	if err := s.persist(ctx, next); err != nil {
		return true, err
	}

	s.portfolios = next
	if s.currentID == id {
		s.currentID = ""
	}
	s.logger.Info("Portfolio deleted", zap.String("portfolio_id", id))
	return true, nil
}

func (s *Store) GetByID(id string) (portfolio.Portfolio, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return portfolio.Portfolio{}, false
	}
	return s.portfolios[idx].Clone(), true
}

// Current returns the portfolio most recently created by the builder flow.
func (s *Store) Current() (portfolio.Portfolio, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.currentID == "" {
		return portfolio.Portfolio{}, false
	}
	idx := s.indexLocked(s.currentID)
	if idx < 0 {
		return portfolio.Portfolio{}, false
	}
	return s.portfolios[idx].Clone(), true
}

func (s *Store) List() []portfolio.Portfolio {
	return s.selectAll(func(portfolio.Portfolio) bool { return true })
}

func (s *Store) Filter(f portfolio.Filters) []portfolio.Portfolio {
	return s.selectAll(f.Matches)
}

func (s *Store) Search(q string) []portfolio.Portfolio {
	return s.selectAll(func(p portfolio.Portfolio) bool { return portfolio.MatchesSearch(p, q) })
}

func (s *Store) Query(q portfolio.Query) []portfolio.Portfolio {
	return s.selectAll(q.Matches)
}

func (s *Store) Facets() portfolio.Facets {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return portfolio.BuildFacets(s.portfolios)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.portfolios)
}

func (s *Store) selectAll(match func(portfolio.Portfolio) bool) []portfolio.Portfolio {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return portfolio.Select(s.portfolios, match)
}

func (s *Store) indexLocked(id string) int {
	for i := range s.portfolios {
		if s.portfolios[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) persist(ctx context.Context, list []portfolio.Portfolio) error {
	if err := s.repo.Save(ctx, list); err != nil {
		s.logger.Error("Failed to save portfolios", err, zap.Int("count", len(list)))
		return apperror.NewStorage("failed to save portfolios", err)
	}
	return nil
}

// publish must be called without s.mu held: publishers may block on the
// network.
func (s *Store) publish(ctx context.Context, eventType, id string) {
	if s.publisher == nil {
		return
	}
	evt := service.PortfolioEvent{EventType: eventType, PortfolioID: id, OccurredAt: s.now()}
	if err := s.publisher.PublishPortfolioEvent(ctx, evt); err != nil {
		s.logger.Warn("Failed to publish portfolio event", zap.String("event_type", eventType), zap.String("portfolio_id", id), zap.Error(err))
	}
}
