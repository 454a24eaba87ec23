// ABOUTME: Embedded goose migration files
// ABOUTME: Exposes the SQL schema as an fs.FS for goose
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
