package quota

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orris-inc/toolbox/internal/domain/plan"
	"github.com/orris-inc/toolbox/internal/domain/user"
	apperrors "github.com/orris-inc/toolbox/internal/shared/errors"
	"github.com/orris-inc/toolbox/internal/shared/logger"
)

func TestEvaluate_FreeTierBoundary(t *testing.T) {
	tests := []struct {
		name        string
		kind        plan.ResourceKind
		current     int64
		wantAllowed bool
	}{
		{"links below ceiling", plan.ResourceLinks, 2, true},
		{"links at ceiling", plan.ResourceLinks, 3, false},
		{"qr codes at ceiling", plan.ResourceQRCodes, 3, false},
		{"first site", plan.ResourceSites, 0, true},
		{"second site", plan.ResourceSites, 1, false},
		{"fifth client", plan.ResourceClients, 4, true},
		{"sixth client", plan.ResourceClients, 5, false},
		{"over ceiling stays denied", plan.ResourceLinks, 7, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEvaluator(subjectOf(&Subject{UserID: 1, Tier: plan.TierFree}), countOf(tt.current), logger.NewNopLogger())

			d, err := e.Evaluate(context.Background(), 1, tt.kind)
			require.NoError(t, err)

			assert.Equal(t, tt.wantAllowed, d.Allowed)
			assert.Equal(t, tt.current, d.Current)
			assert.Equal(t, plan.Ceiling(plan.TierFree, tt.kind), d.Limit)
		})
	}
}

func TestEvaluate_PremiumIsUnlimited(t *testing.T) {
	e := NewEvaluator(subjectOf(&Subject{UserID: 1, Tier: plan.TierPremium}), countOf(10000), logger.NewNopLogger())

	d, err := e.Evaluate(context.Background(), 1, plan.ResourceSites)
	require.NoError(t, err)

	assert.True(t, d.Allowed)
	assert.Equal(t, int64(10000), d.Current)
	assert.True(t, d.Limit.IsUnlimited())
}

func TestEvaluate_AdminBypassesCounting(t *testing.T) {
	counter := countOf(50)
	e := NewEvaluator(subjectOf(&Subject{UserID: 1, IsAdmin: true, Tier: plan.TierFree}), counter, logger.NewNopLogger())

	d, err := e.Evaluate(context.Background(), 1, plan.ResourceLinks)
	require.NoError(t, err)

	assert.True(t, d.Allowed)
	assert.Zero(t, d.Current)
	assert.True(t, d.Limit.IsUnlimited())
	assert.Zero(t, counter.Calls())
}

func TestEvaluate_UnknownUserDenied(t *testing.T) {
	subjects := &mockSubjectReader{
		GetSubjectFunc: func(ctx context.Context, userID uint) (*Subject, error) {
			return nil, user.ErrUserNotFound
		},
	}
	counter := countOf(0)
	e := NewEvaluator(subjects, counter, logger.NewNopLogger())

	d, err := e.Evaluate(context.Background(), 99, plan.ResourceLinks)
	require.NoError(t, err)

	assert.False(t, d.Allowed)
	assert.Zero(t, d.Current)
	assert.Equal(t, plan.Bounded(0), d.Limit)
	assert.Zero(t, counter.Calls())
}

func TestEvaluate_PropagatesDataErrors(t *testing.T) {
	dbErr := errors.New("connection reset")

	t.Run("subject", func(t *testing.T) {
		subjects := &mockSubjectReader{
			GetSubjectFunc: func(ctx context.Context, userID uint) (*Subject, error) {
				return nil, dbErr
			},
		}
		e := NewEvaluator(subjects, countOf(0), logger.NewNopLogger())

		_, err := e.Evaluate(context.Background(), 1, plan.ResourceLinks)
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("counter", func(t *testing.T) {
		counter := &mockResourceCounter{
			CountFunc: func(ctx context.Context, userID uint, kind plan.ResourceKind) (int64, error) {
				return 0, dbErr
			},
		}
		e := NewEvaluator(subjectOf(&Subject{UserID: 1, Tier: plan.TierFree}), counter, logger.NewNopLogger())

		_, err := e.Evaluate(context.Background(), 1, plan.ResourceLinks)
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestEvaluate_IsIdempotent(t *testing.T) {
	e := NewEvaluator(subjectOf(&Subject{UserID: 1, Tier: plan.TierFree}), countOf(2), logger.NewNopLogger())

	first, err := e.Evaluate(context.Background(), 1, plan.ResourceQRCodes)
	require.NoError(t, err)
	second, err := e.Evaluate(context.Background(), 1, plan.ResourceQRCodes)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRequire(t *testing.T) {
	recorder := &mockRecorder{}
	e := NewEvaluator(subjectOf(&Subject{UserID: 1, Tier: plan.TierFree}), countOf(1), logger.NewNopLogger())
	e.SetRecorder(recorder)

	err := e.Require(context.Background(), 1, plan.ResourceSites)
	require.Error(t, err)
	assert.True(t, apperrors.IsQuotaExceededError(err))
	assert.Equal(t, "1/1", apperrors.GetAppError(err).Details)

	require.NoError(t, e.Require(context.Background(), 1, plan.ResourceLinks))

	require.Len(t, recorder.records, 2)
	assert.False(t, recorder.records[0].allowed)
	assert.True(t, recorder.records[1].allowed)
}

func TestUsage(t *testing.T) {
	counts := map[plan.ResourceKind]int64{
		plan.ResourceLinks:   2,
		plan.ResourceQRCodes: 3,
		plan.ResourceSites:   0,
		plan.ResourceClients: 1,
	}
	counter := &mockResourceCounter{
		CountFunc: func(ctx context.Context, userID uint, kind plan.ResourceKind) (int64, error) {
			return counts[kind], nil
		},
	}
	e := NewEvaluator(subjectOf(&Subject{UserID: 4, Tier: plan.TierFree}), counter, logger.NewNopLogger())

	summary, err := e.Usage(context.Background(), 4)
	require.NoError(t, err)
	require.Len(t, summary.Kinds, 4)

	links := summary.Kinds[0]
	assert.Equal(t, plan.ResourceLinks, links.Kind)
	assert.True(t, links.Allowed)
	require.NotNil(t, links.Remaining)
	assert.Equal(t, int64(1), *links.Remaining)

	qr := summary.Kinds[1]
	assert.False(t, qr.Allowed)
	assert.Equal(t, int64(0), *qr.Remaining)
}

func TestUsage_AdminShowsCountsWithUnlimited(t *testing.T) {
	e := NewEvaluator(subjectOf(&Subject{UserID: 1, IsAdmin: true, Tier: plan.TierFree}), countOf(12), logger.NewNopLogger())

	summary, err := e.Usage(context.Background(), 1)
	require.NoError(t, err)

	for _, row := range summary.Kinds {
		assert.Equal(t, int64(12), row.Current)
		assert.True(t, row.Limit.IsUnlimited())
		assert.Nil(t, row.Remaining)
	}
}
