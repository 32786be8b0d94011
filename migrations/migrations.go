// Package migrations содержит goose миграции схемы, встраиваемые в бинарь.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
