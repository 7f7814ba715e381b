// Package domainsync holds assets shared by the commands of the domain
// registration sync service.
package domainsync

import "embed"

// Migrations contains the goose SQL migrations of the service.
//
//go:embed migrations/*.sql
var Migrations embed.FS
