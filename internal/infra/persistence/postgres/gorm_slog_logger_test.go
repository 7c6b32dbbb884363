package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"stampcard/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestGormLogger(debug bool) (logger.Interface, *bytes.Buffer) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newGormSlogLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), cfg), &buf
}

func sqlFn() (string, int64) {
	return "SELECT * FROM loyalty_cards WHERE id = 'x'", 1
}

func TestGormSlogLogger_Trace(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		begin   time.Time
		err     error
		want    string
		wantOut bool
	}{
		{name: "query failed", begin: time.Now(), err: errors.New("connection reset"), want: "Query failed", wantOut: true},
		{name: "record not found is quiet", begin: time.Now(), err: gorm.ErrRecordNotFound},
		{name: "slow query", begin: time.Now().Add(-time.Second), want: "Slow query", wantOut: true},
		{name: "fast query hidden at warn", begin: time.Now()},
		{name: "fast query shown in debug", debug: true, begin: time.Now(), want: "[Postgres] Query", wantOut: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, buf := newTestGormLogger(tt.debug)

			l.Trace(context.Background(), tt.begin, sqlFn, tt.err)

			if !tt.wantOut {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), "component=postgres")
			assert.Contains(t, buf.String(), "loyalty_cards")
		})
	}
}

func TestGormSlogLogger_LogMode(t *testing.T) {
	l, buf := newTestGormLogger(false)

	l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))
	assert.Empty(t, buf.String())

	l.Info(context.Background(), "hidden %d", 1)
	assert.Empty(t, buf.String())

	l.Warn(context.Background(), "pool %s", "busy")
	assert.Contains(t, buf.String(), "[Postgres] pool busy")
}
