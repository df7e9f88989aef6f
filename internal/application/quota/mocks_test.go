package quota

import (
	"context"
	"sync"

	"github.com/orris-inc/toolbox/internal/domain/plan"
)

type mockSubjectReader struct {
	GetSubjectFunc func(ctx context.Context, userID uint) (*Subject, error)
}

func (m *mockSubjectReader) GetSubject(ctx context.Context, userID uint) (*Subject, error) {
	if m.GetSubjectFunc != nil {
		return m.GetSubjectFunc(ctx, userID)
	}
	return nil, nil
}

type mockResourceCounter struct {
	CountFunc func(ctx context.Context, userID uint, kind plan.ResourceKind) (int64, error)

	mu    sync.Mutex
	calls int
}

func (m *mockResourceCounter) Count(ctx context.Context, userID uint, kind plan.ResourceKind) (int64, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	if m.CountFunc != nil {
		return m.CountFunc(ctx, userID, kind)
	}
	return 0, nil
}

func (m *mockResourceCounter) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

type decisionRecord struct {
	kind    plan.ResourceKind
	allowed bool
}

type mockRecorder struct {
	records []decisionRecord
}

func (m *mockRecorder) RecordQuotaDecision(kind plan.ResourceKind, allowed bool) {
	m.records = append(m.records, decisionRecord{kind: kind, allowed: allowed})
}

func subjectOf(s *Subject) *mockSubjectReader {
	return &mockSubjectReader{
		GetSubjectFunc: func(ctx context.Context, userID uint) (*Subject, error) {
			return s, nil
		},
	}
}

func countOf(n int64) *mockResourceCounter {
	return &mockResourceCounter{
		CountFunc: func(ctx context.Context, userID uint, kind plan.ResourceKind) (int64, error) {
			return n, nil
		},
	}
}
