package usecases

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/orris-inc/toolbox/internal/application/quota"
	"github.com/orris-inc/toolbox/internal/domain/user"
	"github.com/orris-inc/toolbox/internal/shared/authorization"
)

type memUserRepository struct {
	mu     sync.Mutex
	users  map[uint]*user.User
	nextID uint

	CountErr error
}

func newMemUserRepository() *memUserRepository {
	return &memUserRepository{users: map[uint]*user.User{}, nextID: 1}
}

func (r *memUserRepository) Create(ctx context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Username() == u.Username() {
			return user.ErrUsernameTaken
		}
	}
	if err := u.SetID(r.nextID); err != nil {
		return err
	}
	r.nextID++
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
	return nil, nil
}

func (r *memUserRepository) Update(ctx context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID()]; !ok {
		return user.ErrUserNotFound
	}
	r.users[u.ID()] = u
	return nil
}

func (r *memUserRepository) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return user.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *memUserRepository) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*user.User
	for _, u := range r.users {
		if filter.Username != "" && !strings.Contains(u.Username(), filter.Username) {
			continue
		}
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out, int64(len(out)), nil
}

func (r *memUserRepository) Count(ctx context.Context) (int64, error) {
	if r.CountErr != nil {
		return 0, r.CountErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}

// plainHasher prefixes instead of hashing.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (plainHasher) Verify(password, hash string) error {
	if hash != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

type mockTokenIssuer struct {
	GenerateFunc func(userID uint, role authorization.UserRole) (string, error)
}

func (m *mockTokenIssuer) Generate(userID uint, role authorization.UserRole) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID, role)
	}
	return "token-" + role.String(), nil
}

type mockUsageReporter struct {
	UsageFunc func(ctx context.Context, userID uint) (*quota.UsageSummary, error)
}

func (m *mockUsageReporter) Usage(ctx context.Context, userID uint) (*quota.UsageSummary, error) {
	if m.UsageFunc != nil {
		return m.UsageFunc(ctx, userID)
	}
	return &quota.UsageSummary{UserID: userID, Kinds: []quota.KindUsage{{Kind: "links", Current: 1}}}, nil
}
