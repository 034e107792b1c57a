// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBClientInterface is the pool wrapper used by storage and services.
// Statement maps to a one-shot query, WithTx to a transaction and Acquire
// to a dedicated connection the caller must release.
type DBClientInterface interface {
	Statement(context.Context) sq.StatementBuilderType
	WithTx(context.Context, func(context.Context) error) error
	Acquire(context.Context) (*pgxpool.Conn, error)
	Ping(context.Context) error
	Close()
}

// TxRunnerInterface is the slice of the client services depend on to group writes.
type TxRunnerInterface interface {
	WithTx(context.Context, func(context.Context) error) error
}

type TxInterface interface {
	Commit() error
	Rollback() error
	sq.BaseRunner
}
