package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer

	return slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func TestReportPoolWait(t *testing.T) {
	tests := []struct {
		name      string
		prev, cur sql.DBStats
		wantLog   string
	}{
		{
			name:    "no new waits",
			prev:    sql.DBStats{WaitCount: 3, WaitDuration: time.Second},
			cur:     sql.DBStats{WaitCount: 3, WaitDuration: time.Second},
			wantLog: "",
		},
		{
			name:    "short wait is debug",
			prev:    sql.DBStats{WaitCount: 1},
			cur:     sql.DBStats{WaitCount: 3, WaitDuration: 10 * time.Millisecond},
			wantLog: `"level":"DEBUG"`,
		},
		{
			name:    "long wait warns",
			prev:    sql.DBStats{},
			cur:     sql.DBStats{WaitCount: 2, WaitDuration: 300 * time.Millisecond},
			wantLog: `"level":"WARN"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, buf := newBufferLogger()

			reportPoolWait(context.Background(), log, tt.prev, tt.cur)

			if tt.wantLog == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.wantLog)
			assert.Contains(t, buf.String(), `"waits":2`)
		})
	}
}

func TestGormLogger_ParamsFilter(t *testing.T) {
	query := "UPDATE user_profiles SET phone_number = $1 WHERE user_id = $2"

	sqlText, params := newGormLogger(nil, false).ParamsFilter(context.Background(), query, "+491701234567", 7)
	assert.Equal(t, query, sqlText)
	assert.Nil(t, params)

	_, params = newGormLogger(nil, true).ParamsFilter(context.Background(), query, "+491701234567", 7)
	assert.Equal(t, []any{"+491701234567", 7}, params)
}

func TestGormLogger_Trace(t *testing.T) {
	fc := func() (string, int64) { return "SELECT 1", 1 }

	t.Run("record not found is quiet", func(t *testing.T) {
		log, buf := newBufferLogger()
		newGormLogger(log, false).Trace(context.Background(), time.Now(), fc, gorm.ErrRecordNotFound)

		assert.Empty(t, buf.String())
	})

	t.Run("failure is logged", func(t *testing.T) {
		log, buf := newBufferLogger()
		newGormLogger(log, false).Trace(context.Background(), time.Now(), fc, errors.New("deadlock detected"))

		assert.Contains(t, buf.String(), "GORM query failed")
		assert.Contains(t, buf.String(), "deadlock detected")
	})

	t.Run("slow query warns", func(t *testing.T) {
		log, buf := newBufferLogger()
		newGormLogger(log, false).Trace(context.Background(), time.Now().Add(-time.Second), fc, nil)

		assert.Contains(t, buf.String(), "GORM slow query")
	})

	t.Run("fast query only in debug", func(t *testing.T) {
		log, buf := newBufferLogger()
		newGormLogger(log, false).Trace(context.Background(), time.Now(), fc, nil)
		assert.Empty(t, buf.String())

		newGormLogger(log, true).Trace(context.Background(), time.Now(), fc, nil)
		assert.Contains(t, buf.String(), "GORM query")
	})

	t.Run("silent mode", func(t *testing.T) {
		log, buf := newBufferLogger()
		newGormLogger(log, true).LogMode(logger.Silent).Trace(context.Background(), time.Now(), fc, errors.New("boom"))

		assert.Empty(t, buf.String())
	})
}
