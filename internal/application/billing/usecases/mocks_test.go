package usecases

import (
	"context"
	"sync"

	"github.com/orris-inc/toolbox/internal/domain/user"
)

// memUserRepository keeps users in a map keyed by id.
type memUserRepository struct {
	mu      sync.Mutex
	users   map[uint]*user.User
	updates int

	UpdateErr error
}

func newMemUserRepository(users ...*user.User) *memUserRepository {
	r := &memUserRepository{users: map[uint]*user.User{}}
	for _, u := range users {
		r.users[u.ID()] = u
	}
	return r
}

func (r *memUserRepository) Create(ctx context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	_ = u.SetID(uint(len(r.users) + 1))
	r.users[u.ID()] = u
	return nil
}

func (r *memUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

func (r *memUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username() == username {
			return u, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (r *memUserRepository) ListByStripeCustomerID(ctx context.Context, customerID string) ([]*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*user.User
	for _, u := range r.users {
		if c := u.Billing().CustomerID; c != nil && *c == customerID {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *memUserRepository) Update(ctx context.Context, u *user.User) error {
	if r.UpdateErr != nil {
		return r.UpdateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updates++
	r.users[u.ID()] = u
	return nil
}

func (r *memUserRepository) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

func (r *memUserRepository) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	return nil, 0, nil
}

func (r *memUserRepository) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}

type mockClaimer struct {
	ClaimFunc func(ctx context.Context, eventID string) (bool, error)

	claimed  map[string]bool
	released []string
}

func newMockClaimer() *mockClaimer {
	return &mockClaimer{claimed: map[string]bool{}}
}

func (m *mockClaimer) Claim(ctx context.Context, eventID string) (bool, error) {
	if m.ClaimFunc != nil {
		return m.ClaimFunc(ctx, eventID)
	}
	if m.claimed[eventID] {
		return false, nil
	}
	m.claimed[eventID] = true
	return true, nil
}

func (m *mockClaimer) Release(ctx context.Context, eventID string) error {
	delete(m.claimed, eventID)
	m.released = append(m.released, eventID)
	return nil
}

type passthroughTransactor struct{}

func (passthroughTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
