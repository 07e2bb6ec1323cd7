// Package sqlite implementa el almacén de registros sobre un archivo SQLite
// (WAL, un solo escritor, llaves foráneas activas).
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Store conexión al archivo SQLite compartida por los repositorios.
type Store struct {
	db *sql.DB
}

// Open crea o abre la base en path y aplica pragmas y esquema (idempotente).
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite: %w", err)
	}
	// SQLite admite un solo escritor: una conexión serializa los Append
	// y evita SQLITE_BUSY.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("conectar sqlite: %w", err)
	}
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = FULL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			db.Close()
			return nil, fmt.Errorf("ejecutar %q: %w", p, err)
		}
	}
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("aplicar esquema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close cierra la conexión.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Suppliers repositorio del catálogo sobre este archivo.
func (s *Store) Suppliers() *SupplierRepo { return &SupplierRepo{db: s.db} }

// Records repositorio del log de registros sobre este archivo.
func (s *Store) Records() *RecordRepo { return &RecordRepo{db: s.db} }
