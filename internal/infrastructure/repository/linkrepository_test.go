package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/toolbox/internal/domain/client"
	"github.com/orris-inc/toolbox/internal/domain/link"
	"github.com/orris-inc/toolbox/internal/domain/plan"
	"github.com/orris-inc/toolbox/internal/domain/qrcode"
)

func TestLinkRepository_ShortCodeCollision(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLinkRepository(db)
	ctx := context.Background()

	first, err := link.NewLink(1, "aB3dE5gH", "https://example.com", "")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, first))

	second, err := link.NewLink(2, "aB3dE5gH", "https://other.example", "")
	require.NoError(t, err)
	assert.ErrorIs(t, repo.Create(ctx, second), link.ErrShortCodeTaken)
}

func TestLinkRepository_RecordClick(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLinkRepository(db)
	ctx := context.Background()

	l, err := link.NewLink(1, "Zz9Yy8Xx", "https://example.com", "")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, l))

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.RecordClick(ctx, &link.ClickEvent{
			LinkID:    l.ID(),
			ClickedAt: time.Now(),
			Referer:   "https://news.example",
			UserAgent: "curl/8",
		}))
	}

	found, err := repo.GetByShortCode(ctx, "Zz9Yy8Xx")
	require.NoError(t, err)
	assert.Equal(t, int64(3), found.Clicks())

	events, err := repo.ListClicks(ctx, l.ID(), 2)
	require.NoError(t, err)
	assert.Len(t, events, 2)
	assert.Equal(t, "curl/8", events[0].UserAgent)

	assert.ErrorIs(t, repo.RecordClick(ctx, &link.ClickEvent{LinkID: 999, ClickedAt: time.Now()}), link.ErrLinkNotFound)
}

func TestLinkRepository_ToggleKeepsClicks(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLinkRepository(db)
	ctx := context.Background()

	l, err := link.NewLink(1, "Qq1Ww2Ee", "https://example.com", "")
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, l))
	require.NoError(t, repo.RecordClick(ctx, &link.ClickEvent{LinkID: l.ID(), ClickedAt: time.Now()}))

	l.Toggle()
	require.NoError(t, repo.Update(ctx, l))

	found, err := repo.GetByID(ctx, l.ID())
	require.NoError(t, err)
	assert.False(t, found.IsActive())
	assert.Equal(t, int64(1), found.Clicks())
}

func TestResourceCounter_CountsPerOwner(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	qrRepo := NewQRCodeRepository(db)
	clientRepo := NewClientRepository(db)
	counter := NewResourceCounter(db)

	for i := 0; i < 3; i++ {
		q, err := qrcode.NewQRCode(1, "hello", "", 0)
		require.NoError(t, err)
		require.NoError(t, qrRepo.Create(ctx, q))
	}
	c, err := client.NewClient(2, client.Details{Name: "Acme"})
	require.NoError(t, err)
	require.NoError(t, clientRepo.Create(ctx, c))

	n, err := counter.Count(ctx, 1, plan.ResourceQRCodes)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	n, err = counter.Count(ctx, 1, plan.ResourceClients)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = counter.Count(ctx, 2, plan.ResourceClients)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = counter.Count(ctx, 1, plan.ResourceKind("invoices"))
	assert.Error(t, err)
}

func TestClientRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewClientRepository(db)
	ctx := context.Background()

	c, err := client.NewClient(1, client.Details{Name: "Acme", Email: "a@acme.test"})
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, c))

	require.NoError(t, c.Update(client.Details{Name: "Acme SAS"}))
	require.NoError(t, repo.Update(ctx, c))

	found, err := repo.GetByID(ctx, c.ID())
	require.NoError(t, err)
	assert.Equal(t, "Acme SAS", found.Details().Name)
	assert.Empty(t, found.Details().Email)

	require.NoError(t, repo.Delete(ctx, c.ID()))
	assert.ErrorIs(t, repo.Delete(ctx, c.ID()), client.ErrClientNotFound)
}
