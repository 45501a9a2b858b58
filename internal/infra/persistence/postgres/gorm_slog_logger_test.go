package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"recruit/config"
	deliverycontext "recruit/internal/delivery/context"
	"recruit/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func captureLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer

	return slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var lines []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		lines = append(lines, entry)
	}

	return lines
}

func sqlFn(sql string) func() (string, int64) {
	return func() (string, int64) { return sql, 1 }
}

func TestGormSlogLogger_ParamsFilterDropsValues(t *testing.T) {
	l := &gormSlogLogger{}

	sql, params := l.ParamsFilter(context.Background(), "SELECT * FROM users WHERE email = $1", "jane@example.com")

	assert.Equal(t, "SELECT * FROM users WHERE email = $1", sql)
	assert.Nil(t, params)
}

func TestGormSlogLogger_Trace(t *testing.T) {
	tests := []struct {
		name      string
		debug     bool
		elapsed   time.Duration
		err       error
		wantMsg   string
		wantLevel string
	}{
		{name: "failed query", err: errors.New("connection reset"), wantMsg: "GORM query failed", wantLevel: "ERROR"},
		{name: "record not found is quiet", err: gorm.ErrRecordNotFound},
		{name: "slow query", elapsed: time.Second, wantMsg: "GORM slow query", wantLevel: "WARN"},
		{name: "fast query without debug", elapsed: time.Millisecond},
		{name: "fast query with debug", debug: true, elapsed: time.Millisecond, wantMsg: "GORM query", wantLevel: "DEBUG"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, buf := captureLogger()
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug
			l := newGormSlogLogger(base, cfg)

			l.Trace(context.Background(), time.Now().Add(-tt.elapsed), sqlFn("DELETE FROM otp_records WHERE email = $1"), tt.err)

			lines := logLines(t, buf)
			if tt.wantMsg == "" {
				assert.Empty(t, lines)

				return
			}
			require.Len(t, lines, 1)
			assert.Equal(t, tt.wantMsg, lines[0]["msg"])
			assert.Equal(t, tt.wantLevel, lines[0]["level"])
			assert.Equal(t, "DELETE FROM otp_records WHERE email = $1", lines[0]["sql"])
		})
	}
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	base, baseBuf := captureLogger()
	scoped, scopedBuf := captureLogger()
	ctx := deliverycontext.WithLogger(context.Background(), scoped.With(slog.String("request_id", "req-7")))
	l := newGormSlogLogger(base, &config.Config{})

	l.Trace(ctx, time.Now(), sqlFn("SELECT 1"), errors.New("boom"))

	assert.Empty(t, baseBuf.String())
	lines := logLines(t, scopedBuf)
	require.Len(t, lines, 1)
	assert.Equal(t, "req-7", lines[0]["request_id"])
}

func TestGormSlogLogger_LogMode(t *testing.T) {
	base, buf := captureLogger()
	l := newGormSlogLogger(base, &config.Config{}).LogMode(logger.Silent)

	l.Error(context.Background(), "failed %s", "x")
	l.Trace(context.Background(), time.Now(), sqlFn("SELECT 1"), errors.New("boom"))

	assert.Empty(t, buf.String())

	l = l.LogMode(logger.Info)
	l.Info(context.Background(), "connected to %s", "recruit")

	lines := logLines(t, buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "GORM INFO", lines[0]["msg"])
	assert.Equal(t, "connected to recruit", lines[0]["message"])
}
