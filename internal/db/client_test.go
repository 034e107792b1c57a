// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"errors"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
)

func TestPagination(t *testing.T) {
	testCases := []struct {
		name           string
		page, size     int64
		expectedOffset uint64
		expectedSize   uint64
	}{
		{name: "defaults", page: 0, size: 0, expectedOffset: 0, expectedSize: defaultPageSize},
		{name: "second page", page: 2, size: 10, expectedOffset: 10, expectedSize: 10},
		{name: "negative page", page: -3, size: 25, expectedOffset: 0, expectedSize: 25},
		{name: "clamped size", page: 1, size: 10000, expectedOffset: 0, expectedSize: maxPageSize},
		{name: "clamped page", page: 1 << 62, size: 500, expectedOffset: uint64(maxPage-1) * maxPageSize, expectedSize: maxPageSize},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			size := PageSize(tc.size)
			if size != tc.expectedSize {
				t.Errorf("expected size %d, got %d", tc.expectedSize, size)
			}
			if offset := Offset(tc.page, size); offset != tc.expectedOffset {
				t.Errorf("expected offset %d, got %d", tc.expectedOffset, offset)
			}
		})
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := Config{DSN: "postgres://localhost/test"}.withDefaults()

	if cfg.MaxConns != 20 {
		t.Errorf("expected 20 max conns, got %d", cfg.MaxConns)
	}
	if cfg.ConnectTimeout != 2*time.Second || cfg.AcquireTimeout != 2*time.Second {
		t.Errorf("unexpected timeouts %v %v", cfg.ConnectTimeout, cfg.AcquireTimeout)
	}
	if cfg.MaxConnIdleTime != 30*time.Second {
		t.Errorf("expected 30s idle time, got %v", cfg.MaxConnIdleTime)
	}

	custom := Config{MaxConns: 5, AcquireTimeout: time.Second}.withDefaults()
	if custom.MaxConns != 5 || custom.AcquireTimeout != time.Second {
		t.Errorf("expected explicit values to be kept, got %+v", custom)
	}
}

func TestFailedRunnerSurfacesBeginError(t *testing.T) {
	beginErr := errors.New("begin failed")
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).RunWith(failedRunner{err: beginErr})

	var id string
	err := builder.Select("id").From("tenants").QueryRowContext(context.Background()).Scan(&id)
	if !errors.Is(err, beginErr) {
		t.Fatalf("expected begin error, got %v", err)
	}

	_, err = builder.Insert("tenants").Columns("id").Values("x").ExecContext(context.Background())
	if !errors.Is(err, beginErr) {
		t.Fatalf("expected begin error on exec, got %v", err)
	}
}
