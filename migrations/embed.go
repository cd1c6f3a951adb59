// Package migrations embeds the SQL schema applied on startup.
package migrations

import "embed"

// FS holds the migration files for both stores: the record store under
// records/ and the media store under media/.
//
//go:embed records/*.sql media/*.sql
var FS embed.FS

// Directories inside FS, one per database file.
const (
	RecordsDir = "records"
	MediaDir   = "media"
)
