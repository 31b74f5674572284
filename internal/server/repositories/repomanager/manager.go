package repomanager

import (
	"context"
	"database/sql"

	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/dbx"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/server/repositories/announcements"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/server/repositories/complaints"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/server/repositories/otps"
	"github.com/itsmenoahpoli/brgy-konek-mobile/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	OTPs(db dbx.DBTX) otps.Repository
	Announcements(db dbx.DBTX) announcements.Repository
	Complaints(db dbx.DBTX) complaints.Repository
}
