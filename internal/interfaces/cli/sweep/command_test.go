package sweep

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vnstore/paycore/internal/shared/logger"
)

type mockBatchJob struct {
	results []int
	err     error
	calls   int
}

func (m *mockBatchJob) Execute(context.Context) (int, error) {
	if m.calls >= len(m.results) {
		m.calls++
		return 0, m.err
	}
	n := m.results[m.calls]
	m.calls++
	return n, nil
}

func TestDrain(t *testing.T) {
	tests := []struct {
		name      string
		job       *mockBatchJob
		wantTotal int
		wantCalls int
		wantErr   bool
	}{
		{"nothing stale", &mockBatchJob{}, 0, 1, false},
		{"two full batches", &mockBatchJob{results: []int{100, 100, 3}}, 203, 4, false},
		{"error stops the loop", &mockBatchJob{results: []int{100}, err: errors.New("db down")}, 100, 2, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, err := drain(context.Background(), tt.job, logger.NewLogger())
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantTotal, total)
			assert.Equal(t, tt.wantCalls, tt.job.calls)
		})
	}
}
