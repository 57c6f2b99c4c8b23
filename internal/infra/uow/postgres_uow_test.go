//go:build unit

package uow

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"serialization failure", &pgconn.PgError{Code: "40001"}, true},
		{"deadlock", fmt.Errorf("lock day: %w", &pgconn.PgError{Code: "40P01"}), true},
		{"unique violation", &pgconn.PgError{Code: "23505"}, false},
		{"not a postgres error", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, retryable(tt.err))
		})
	}
}

func TestRetryPolicy_Backoff(t *testing.T) {
	p := retryPolicy{retries: 3, base: 100 * time.Millisecond}

	for attempt, floor := range []time.Duration{100, 200, 400} {
		floor *= time.Millisecond
		for range 20 {
			got := p.backoff(attempt)
			assert.GreaterOrEqual(t, got, floor)
			assert.LessOrEqual(t, got, floor+floor/5)
		}
	}
}
