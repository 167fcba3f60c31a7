package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahathirrr/portfolio/pkg/logger"
)

func TestAddCronJob_InvalidExpression(t *testing.T) {
	s, err := New(logger.NewNop())
	require.NoError(t, err)
	s.Start()
	defer s.Stop()

	err = s.AddCronJob("bad", "not a cron", func(context.Context) error { return nil })
	assert.Error(t, err)
}

func TestWrap_RecordsStats(t *testing.T) {
	s, err := New(logger.NewNop())
	require.NoError(t, err)
	s.Start()
	defer s.Stop()

	fail := true
	require.NoError(t, s.AddCronJob("database-backup", "0 3 * * *", func(context.Context) error {
		if fail {
			return errors.New("pg_dump: connection refused")
		}
		return nil
	}))

	run := s.wrap("database-backup", func(ctx context.Context) error {
		if fail {
			return errors.New("pg_dump: connection refused")
		}
		return nil
	})

	run()
	stats, ok := s.Stats("database-backup")
	require.True(t, ok)
	assert.Equal(t, 1, stats.RunCount)
	assert.Equal(t, 1, stats.ErrorCount)
	assert.Equal(t, "pg_dump: connection refused", stats.LastError)
	assert.Equal(t, "0 3 * * *", stats.Schedule)

	fail = false
	run()
	stats, _ = s.Stats("database-backup")
	assert.Equal(t, 2, stats.RunCount)
	assert.Equal(t, 1, stats.ErrorCount)
	assert.Empty(t, stats.LastError)

	_, ok = s.Stats("unknown")
	assert.False(t, ok)
}
