// Package migrations хранит SQL-миграции PostgreSQL, вшитые в бинарник сервера.
package migrations

import "embed"

// FS содержит файлы postgres/*.sql в формате golang-migrate
// (<версия>_<имя>.up.sql / .down.sql).
//
//go:embed postgres/*.sql
var FS embed.FS

// Dir — каталог внутри FS, из которого читаются миграции.
const Dir = "postgres"
