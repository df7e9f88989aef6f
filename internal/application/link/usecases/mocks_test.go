package usecases

import (
	"context"
	"sync"

	"github.com/orris-inc/toolbox/internal/domain/link"
	"github.com/orris-inc/toolbox/internal/domain/plan"
)

type memLinkRepository struct {
	mu     sync.Mutex
	links  map[uint]*link.Link
	clicks []*link.ClickEvent
	nextID uint

	RecordClickErr error
}

func newMemLinkRepository() *memLinkRepository {
	return &memLinkRepository{links: map[uint]*link.Link{}, nextID: 1}
}

func (r *memLinkRepository) Create(ctx context.Context, l *link.Link) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.links {
		if existing.ShortCode() == l.ShortCode() {
			return link.ErrShortCodeTaken
		}
	}
	l.SetID(r.nextID)
	r.nextID++
	r.links[l.ID()] = l
	return nil
}

func (r *memLinkRepository) GetByID(ctx context.Context, id uint) (*link.Link, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.links[id]
	if !ok {
		return nil, link.ErrLinkNotFound
	}
	return l, nil
}

func (r *memLinkRepository) GetByShortCode(ctx context.Context, code string) (*link.Link, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, l := range r.links {
		if l.ShortCode() == code {
			return l, nil
		}
	}
	return nil, link.ErrLinkNotFound
}

func (r *memLinkRepository) ListByOwner(ctx context.Context, userID uint) ([]*link.Link, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*link.Link
	for id := uint(1); id < r.nextID; id++ {
		l, ok := r.links[id]
		if ok && (userID == 0 || l.UserID() == userID) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *memLinkRepository) Update(ctx context.Context, l *link.Link) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.links[l.ID()] = l
	return nil
}

func (r *memLinkRepository) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.links[id]; !ok {
		return link.ErrLinkNotFound
	}
	delete(r.links, id)
	return nil
}

func (r *memLinkRepository) RecordClick(ctx context.Context, event *link.ClickEvent) error {
	if r.RecordClickErr != nil {
		return r.RecordClickErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clicks = append(r.clicks, event)
	return nil
}

func (r *memLinkRepository) ListClicks(ctx context.Context, linkID uint, limit int) ([]*link.ClickEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*link.ClickEvent
	for _, c := range r.clicks {
		if c.LinkID == linkID && len(out) < limit {
			out = append(out, c)
		}
	}
	return out, nil
}

type mockQuotaGuard struct {
	RequireFunc func(ctx context.Context, userID uint, kind plan.ResourceKind) error
	calls       int
}

func (m *mockQuotaGuard) Require(ctx context.Context, userID uint, kind plan.ResourceKind) error {
	m.calls++
	if m.RequireFunc != nil {
		return m.RequireFunc(ctx, userID, kind)
	}
	return nil
}

// sequenceCodes returns the given codes in order.
func sequenceCodes(codes ...string) CodeGenerator {
	i := 0
	return func() (string, error) {
		c := codes[i%len(codes)]
		i++
		return c, nil
	}
}
