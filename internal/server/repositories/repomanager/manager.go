// Package repomanager vends repository implementations bound to a database
// handle and runs schema migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	"github.com/finweave/insight-server/internal/dbx"
	"github.com/finweave/insight-server/internal/server/repositories/profiles"
	"github.com/finweave/insight-server/internal/server/repositories/users"
)

// RepositoryManager lets services obtain repositories bound either to the
// shared *sql.DB or to a transaction handle.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Profiles(db dbx.DBTX) profiles.Repository
}
