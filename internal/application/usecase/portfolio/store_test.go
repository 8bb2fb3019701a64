package portfolio

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/khoahotran/portfolio-builder/internal/application/seed"
	"github.com/khoahotran/portfolio-builder/internal/application/service"
	"github.com/khoahotran/portfolio-builder/internal/domain/portfolio"
	"github.com/khoahotran/portfolio-builder/pkg/apperror"
	"github.com/khoahotran/portfolio-builder/pkg/logger"
)

type memoryRepo struct {
	mu       sync.Mutex
	stored   []portfolio.Portfolio
	has      bool
	loadErr  error
	saveErr  error
	saveHits int
}

func (r *memoryRepo) Load(ctx context.Context) ([]portfolio.Portfolio, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	if !r.has {
		return nil, portfolio.ErrSnapshotNotFound
	}
	return cloneAll(r.stored), nil
}

func (r *memoryRepo) Save(ctx context.Context, list []portfolio.Portfolio) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saveHits++
	if r.saveErr != nil {
		return r.saveErr
	}
	r.stored = cloneAll(list)
	r.has = true
	return nil
}

func (r *memoryRepo) snapshot() []portfolio.Portfolio {
	r.mu.Lock()
	defer r.mu.Unlock()
	return cloneAll(r.stored)
}

func cloneAll(in []portfolio.Portfolio) []portfolio.Portfolio {
	out := make([]portfolio.Portfolio, len(in))
	for i, p := range in {
		out[i] = p.Clone()
	}
	return out
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []service.PortfolioEvent
	err    error
}

func (p *recordingPublisher) PublishPortfolioEvent(ctx context.Context, evt service.PortfolioEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
	return p.err
}

// gatedPublisher blocks every publish until release is closed, like a
// writer waiting on an unreachable broker.
type gatedPublisher struct {
	entered chan struct{}
	release chan struct{}
}

func (p *gatedPublisher) PublishPortfolioEvent(ctx context.Context, evt service.PortfolioEvent) error {
	p.entered <- struct{}{}
	<-p.release
	return nil
}

func draft(name, title string, tpl portfolio.Template, skills ...string) portfolio.Draft {
	d := portfolio.Draft{
		Template: tpl,
		Hero:     portfolio.Hero{Name: name, Title: title},
		About:    portfolio.About{Bio: name + " bio"},
	}
	for i, s := range skills {
		d.Skills = append(d.Skills, portfolio.Skill{ID: fmt.Sprint(i + 1), Name: s, Level: 50, Category: portfolio.CategoryOther})
	}
	return d
}

type StoreTestSuite struct {
	suite.Suite
	ctx       context.Context
	repo      *memoryRepo
	publisher *recordingPublisher
	clock     time.Time
	store     *Store
}

func (s *StoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = &memoryRepo{}
	s.publisher = &recordingPublisher{}
	s.clock = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	s.store = NewStore(s.repo, logger.NewNopLogger(),
		WithClock(func() time.Time { return s.clock }),
		WithPublisher(s.publisher),
		WithSeedOnEmpty(false),
	)
	s.Require().NoError(s.store.Initialize(s.ctx))
}

func (s *StoreTestSuite) tick() {
	s.clock = s.clock.Add(time.Minute)
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) TestCreate_AssignsIdentityAndPrepends() {
	first, err := s.store.Create(s.ctx, draft("Ada", "Engineer", portfolio.TemplateTech))
	s.Require().NoError(err)
	s.tick()
	second, err := s.store.Create(s.ctx, draft("Grace", "Admiral", portfolio.TemplateElegant))
	s.Require().NoError(err)

	s.NotEmpty(first.ID)
	s.NotEqual(first.ID, second.ID)
	s.Equal(s.clock, second.CreatedAt)
	s.Equal(second.CreatedAt, second.UpdatedAt)

	list := s.store.List()
	s.Require().Len(list, 2)
	s.Equal(second.ID, list[0].ID, "newest first")
	s.Equal(first.ID, list[1].ID)

	cur, ok := s.store.Current()
	s.True(ok)
	s.Equal(second.ID, cur.ID)

	s.Equal(list, s.repo.snapshot(), "durable copy mirrors memory")
	s.Len(s.publisher.events, 2)
	s.Equal(service.EventPortfolioCreated, s.publisher.events[0].EventType)
}

func (s *StoreTestSuite) TestCreate_IDsPairwiseDistinct() {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		p, err := s.store.Create(s.ctx, draft(fmt.Sprintf("P%d", i), "Dev", portfolio.TemplateModern))
		s.Require().NoError(err)
		s.False(seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
	}
	s.Equal(50, s.store.Len())
}

func (s *StoreTestSuite) TestCreate_RetriesCollidingIDs() {
	ids := []string{"same", "same", "other"}
	store := NewStore(s.repo, logger.NewNopLogger(), WithIDGenerator(func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}))

	a, err := store.Create(s.ctx, draft("A", "x", portfolio.TemplateModern))
	s.Require().NoError(err)
	b, err := store.Create(s.ctx, draft("B", "x", portfolio.TemplateModern))
	s.Require().NoError(err)

	s.Equal("same", a.ID)
	s.Equal("other", b.ID)
}

func (s *StoreTestSuite) TestCreate_GivesUpOnConstantIDs() {
	store := NewStore(s.repo, logger.NewNopLogger(), WithIDGenerator(func() string { return "fixed" }))
	_, err := store.Create(s.ctx, draft("A", "x", portfolio.TemplateModern))
	s.Require().NoError(err)

	_, err = store.Create(s.ctx, draft("B", "x", portfolio.TemplateModern))
	s.ErrorIs(err, apperror.ErrConflict)
	s.Equal(1, store.Len())
}

func (s *StoreTestSuite) TestUpdate_MergesAndRefreshesTimestamp() {
	p, err := s.store.Create(s.ctx, draft("Ada", "Engineer", portfolio.TemplateTech, "Go"))
	s.Require().NoError(err)
	s.tick()

	title := "Principal Engineer"
	got, ok, err := s.store.Update(s.ctx, p.ID, portfolio.Patch{Hero: &portfolio.HeroPatch{Title: &title}})
	s.Require().NoError(err)
	s.True(ok)

	s.Equal("Principal Engineer", got.Hero.Title)
	s.Equal("Ada", got.Hero.Name)
	s.Equal(p.CreatedAt, got.CreatedAt)
	s.Equal(s.clock, got.UpdatedAt)

	cur, _ := s.store.Current()
	s.Equal("Principal Engineer", cur.Hero.Title, "current reflects the update")

	stored, _ := s.store.GetByID(p.ID)
	s.Equal(got, stored)
	s.Equal(service.EventPortfolioUpdated, s.publisher.events[len(s.publisher.events)-1].EventType)
}

func (s *StoreTestSuite) TestUpdate_UnknownIDLeavesStoreUnchanged() {
	_, err := s.store.Create(s.ctx, draft("Ada", "Engineer", portfolio.TemplateTech))
	s.Require().NoError(err)
	before := s.store.List()
	saves := s.repo.saveHits
	events := len(s.publisher.events)

	title := "ghost"
	_, ok, err := s.store.Update(s.ctx, "missing", portfolio.Patch{Hero: &portfolio.HeroPatch{Title: &title}})
	s.NoError(err)
	s.False(ok)

	s.Equal(before, s.store.List())
	s.Equal(saves, s.repo.saveHits, "no write for a no-op")
	s.Len(s.publisher.events, events)
}

func (s *StoreTestSuite) TestDelete_ThenLookupIsNotFound() {
	p, err := s.store.Create(s.ctx, draft("Ada", "Engineer", portfolio.TemplateTech))
	s.Require().NoError(err)

	ok, err := s.store.Delete(s.ctx, p.ID)
	s.Require().NoError(err)
	s.True(ok)

	_, found := s.store.GetByID(p.ID)
	s.False(found)
	_, hasCurrent := s.store.Current()
	s.False(hasCurrent, "deleting the current portfolio clears it")
	s.Empty(s.repo.snapshot())
}

func (s *StoreTestSuite) TestDelete_UnknownIDIsNoop() {
	_, err := s.store.Create(s.ctx, draft("Ada", "Engineer", portfolio.TemplateTech))
	s.Require().NoError(err)

	ok, err := s.store.Delete(s.ctx, "missing")
	s.NoError(err)
	s.False(ok)
	s.Equal(1, s.store.Len())
}

func (s *StoreTestSuite) TestDelete_OtherKeepsCurrent() {
	a, _ := s.store.Create(s.ctx, draft("A", "x", portfolio.TemplateTech))
	b, _ := s.store.Create(s.ctx, draft("B", "x", portfolio.TemplateTech))

	_, err := s.store.Delete(s.ctx, a.ID)
	s.Require().NoError(err)

	cur, ok := s.store.Current()
	s.True(ok)
	s.Equal(b.ID, cur.ID)
}

func (s *StoreTestSuite) TestSaveFailure_IsRecoverable() {
	p, err := s.store.Create(s.ctx, draft("Ada", "Engineer", portfolio.TemplateTech))
	s.Require().NoError(err)
	before := s.store.List()

	s.repo.saveErr = errors.New("quota exceeded")

	_, err = s.store.Create(s.ctx, draft("Grace", "Admiral", portfolio.TemplateTech))
	s.ErrorIs(err, apperror.ErrStorage)

	title := "changed"
	_, ok, err := s.store.Update(s.ctx, p.ID, portfolio.Patch{Hero: &portfolio.HeroPatch{Title: &title}})
	s.True(ok)
	s.ErrorIs(err, apperror.ErrStorage)

	_, err = s.store.Delete(s.ctx, p.ID)
	s.ErrorIs(err, apperror.ErrStorage)

	s.Equal(before, s.store.List(), "memory untouched after failed writes")
	s.Equal(before, s.repo.snapshot())

	s.repo.saveErr = nil
	_, err = s.store.Create(s.ctx, draft("Grace", "Admiral", portfolio.TemplateTech))
	s.NoError(err, "store keeps working once storage recovers")
	s.Equal(2, s.store.Len())
}

func (s *StoreTestSuite) TestPublishFailureDoesNotFailMutation() {
	s.publisher.err = errors.New("broker down")
	_, err := s.store.Create(s.ctx, draft("Ada", "Engineer", portfolio.TemplateTech))
	s.NoError(err)
	s.Equal(1, s.store.Len())
}

func (s *StoreTestSuite) TestReadsReturnCopies() {
	p, err := s.store.Create(s.ctx, draft("Ada", "Engineer", portfolio.TemplateTech, "Go"))
	s.Require().NoError(err)

	got, _ := s.store.GetByID(p.ID)
	got.Skills[0].Name = "mutated"
	got.Hero.Name = "mutated"

	again, _ := s.store.GetByID(p.ID)
	s.Equal("Go", again.Skills[0].Name)
	s.Equal("Ada", again.Hero.Name)
}

func (s *StoreTestSuite) TestFilterAndQuery() {
	_, _ = s.store.Create(s.ctx, draft("Ada", "Software Engineer", portfolio.TemplateTech, "Go"))
	_, _ = s.store.Create(s.ctx, draft("Grace", "Data Engineer", portfolio.TemplateModern, "Python"))
	_, _ = s.store.Create(s.ctx, draft("Linus", "Designer", portfolio.TemplateTech, "Figma"))

	got := s.store.Filter(portfolio.Filters{Template: portfolio.TemplateTech, Role: "engineer"})
	s.Require().Len(got, 1)
	s.Equal("Ada", got[0].Hero.Name)

	got = s.store.Search("grace")
	s.Require().Len(got, 1)

	got = s.store.Query(portfolio.Query{Search: "e", Filters: portfolio.Filters{Skills: []string{"figma", "go"}}})
	s.Len(got, 2)

	facets := s.store.Facets()
	s.Equal([]string{"Figma", "Go", "Python"}, facets.Skills)
}

func TestInitialize_UsesStoredSnapshot(t *testing.T) {
	stored := []portfolio.Portfolio{portfolio.New("kept", draft("Ada", "Engineer", portfolio.TemplateTech), time.Now().UTC())}
	repo := &memoryRepo{stored: stored, has: true}

	store := NewStore(repo, logger.NewNopLogger())
	require.NoError(t, store.Initialize(context.Background()))

	list := store.List()
	require.Len(t, list, 1)
	assert.Equal(t, "kept", list[0].ID)
	assert.Equal(t, 0, repo.saveHits, "loading must not rewrite storage")
}

func TestInitialize_KeepsEmptySnapshot(t *testing.T) {
	repo := &memoryRepo{stored: []portfolio.Portfolio{}, has: true}
	store := NewStore(repo, logger.NewNopLogger())
	require.NoError(t, store.Initialize(context.Background()))
	assert.Equal(t, 0, store.Len())
}

func TestInitialize_SeedsWhenNothingStored(t *testing.T) {
	repo := &memoryRepo{}
	store := NewStore(repo, logger.NewNopLogger())
	require.NoError(t, store.Initialize(context.Background()))

	assert.Equal(t, 15, store.Len())
	assert.Len(t, repo.snapshot(), 15, "seeded list is persisted")
}

func TestInitialize_SeedsWhenSnapshotCorrupt(t *testing.T) {
	repo := &memoryRepo{loadErr: fmt.Errorf("decode: %w", portfolio.ErrCorruptSnapshot)}
	store := NewStore(repo, logger.NewNopLogger(), WithSeeder(seed.Seeder{Templates: seed.SampleTemplates(), Copies: 1}))

	require.NoError(t, store.Initialize(context.Background()))
	assert.Equal(t, 5, store.Len())
}

func TestInitialize_BackendFailureIsReturned(t *testing.T) {
	repo := &memoryRepo{loadErr: errors.New("connection refused")}
	store := NewStore(repo, logger.NewNopLogger())

	err := store.Initialize(context.Background())
	assert.ErrorIs(t, err, apperror.ErrStorage)
}

func TestScenario_SeededReactFilter(t *testing.T) {
	store := NewStore(&memoryRepo{}, logger.NewNopLogger())
	require.NoError(t, store.Initialize(context.Background()))
	require.Equal(t, 15, store.Len())

	got := store.Filter(portfolio.Filters{Skills: []string{"React"}})
	require.Len(t, got, 3)
	for _, p := range got {
		assert.Contains(t, []string{"sample-1-copy-1", "sample-1-copy-2", "sample-1-copy-3"}, p.ID)
	}
}

func TestReset_ReplacesUserData(t *testing.T) {
	repo := &memoryRepo{}
	pub := &recordingPublisher{}
	store := NewStore(repo, logger.NewNopLogger(), WithPublisher(pub))
	require.NoError(t, store.Initialize(context.Background()))

	p, err := store.Create(context.Background(), draft("Ada", "Engineer", portfolio.TemplateTech))
	require.NoError(t, err)
	require.Equal(t, 16, store.Len())

	require.NoError(t, store.Reset(context.Background()))
	assert.Equal(t, 15, store.Len())
	_, found := store.GetByID(p.ID)
	assert.False(t, found)
	_, hasCurrent := store.Current()
	assert.False(t, hasCurrent)
	assert.Equal(t, service.EventPortfolioReset, pub.events[len(pub.events)-1].EventType)
}

func TestStore_ConcurrentAccess(t *testing.T) {
	store := NewStore(&memoryRepo{}, logger.NewNopLogger(), WithSeedOnEmpty(false))
	require.NoError(t, store.Initialize(context.Background()))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_, err := store.Create(context.Background(), draft(fmt.Sprintf("P%d", i), "Dev", portfolio.TemplateTech, "Go"))
			assert.NoError(t, err)
		}(i)
		go func() {
			defer wg.Done()
			_ = store.Filter(portfolio.Filters{Skills: []string{"go"}})
		}()
	}
	wg.Wait()
	assert.Equal(t, 20, store.Len())
}

func TestStore_SlowPublisherDoesNotBlockReads(t *testing.T) {
	pub := &gatedPublisher{entered: make(chan struct{}, 1), release: make(chan struct{})}
	store := NewStore(&memoryRepo{}, logger.NewNopLogger(), WithSeedOnEmpty(false), WithPublisher(pub))
	require.NoError(t, store.Initialize(context.Background()))

	created := make(chan portfolio.Portfolio, 1)
	go func() {
		p, err := store.Create(context.Background(), draft("Ada", "Dev", portfolio.TemplateTech, "Go"))
		assert.NoError(t, err)
		created <- p
	}()
	<-pub.entered

	reads := make(chan int, 1)
	go func() {
		_ = store.List()
		_ = store.Filter(portfolio.Filters{Skills: []string{"go"}})
		reads <- store.Len()
	}()

	select {
	case n := <-reads:
		assert.Equal(t, 1, n, "mutation is visible while the event is still in flight")
	case <-time.After(2 * time.Second):
		close(pub.release)
		<-created
		t.Fatal("reads blocked behind event publish")
	}

	close(pub.release)
	p := <-created
	got, ok := store.GetByID(p.ID)
	require.True(t, ok)
	assert.Equal(t, "Ada", got.Hero.Name)
}
