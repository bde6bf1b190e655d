package postgres

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"addressbook/config"
	deliverycontext "addressbook/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func sqlFn(sql string) func() (string, int64) {
	return func() (string, int64) { return sql, 1 }
}

func TestGormSlogLogger_TraceError(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&buf), &config.Config{})

	l.Trace(context.Background(), time.Now(), sqlFn(`SELECT * FROM "addresses"`), errors.New("boom"))

	assert.Contains(t, buf.String(), "Query failed")
	assert.Contains(t, buf.String(), "boom")
}

func TestGormSlogLogger_IgnoresRecordNotFound(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&buf), &config.Config{})

	l.Trace(context.Background(), time.Now(), sqlFn(`SELECT * FROM "addresses"`), gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_SlowQuery(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&buf), &config.Config{})

	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn(`SELECT * FROM "addresses"`), nil)

	assert.Contains(t, buf.String(), "Slow query")
}

func TestGormSlogLogger_QueriesOnlyInDebug(t *testing.T) {
	var quiet, verbose bytes.Buffer
	debugCfg := &config.Config{}
	debugCfg.Env.Debug = true

	newGormSlogLogger(newBufferLogger(&quiet), &config.Config{}).
		Trace(context.Background(), time.Now(), sqlFn(`SELECT 1`), nil)
	newGormSlogLogger(newBufferLogger(&verbose), debugCfg).
		Trace(context.Background(), time.Now(), sqlFn(`SELECT 1`), nil)

	assert.Empty(t, quiet.String())
	assert.Contains(t, verbose.String(), "SELECT 1")
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&base), &config.Config{})
	ctx := deliverycontext.WithLogger(context.Background(), newBufferLogger(&scoped).With(slog.String("request_id", "req-1")))

	l.Trace(ctx, time.Now(), sqlFn(`SELECT 1`), errors.New("boom"))

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), "request_id=req-1")
}

func TestGormSlogLogger_Silent(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&buf), &config.Config{}).LogMode(logger.Silent)

	l.Trace(context.Background(), time.Now(), sqlFn(`SELECT 1`), errors.New("boom"))
	l.Error(context.Background(), "failed %s", "x")

	assert.Empty(t, buf.String())
}
