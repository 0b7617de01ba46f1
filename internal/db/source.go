// Package db introspects live databases into the schema model so they can be
// used as generation inputs alongside HCL files.
package db

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tordrt/atlas2ts/internal/schema"
)

// Database kinds recognised by ParseDatabaseURL
const (
	Postgres = "postgres"
	MySQL    = "mysql"
	SQLite   = "sqlite"
)

// IsDatabaseURL reports whether input names a database rather than a file
func IsDatabaseURL(input string) bool {
	_, _, err := ParseDatabaseURL(input)
	return err == nil
}

// ParseDatabaseURL detects the database kind and returns the driver connection string
func ParseDatabaseURL(url string) (dbType, connectionStr string, err error) {
	if url == "" {
		return "", "", fmt.Errorf("database URL is required")
	}

	if strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://") {
		return Postgres, url, nil
	}

	if strings.HasPrefix(url, "mysql://") {
		return MySQL, strings.TrimPrefix(url, "mysql://"), nil
	}

	if strings.HasPrefix(url, "sqlite://") {
		return SQLite, strings.TrimPrefix(url, "sqlite://"), nil
	}

	return "", "", fmt.Errorf("invalid database URL scheme (must start with postgres://, mysql://, or sqlite://)")
}

// Introspect connects to url and extracts one schema fragment. schemaName
// defaults to "public" for PostgreSQL and to the DSN database for MySQL.
func Introspect(ctx context.Context, url, schemaName string) (*schema.Schema, error) {
	dbType, connStr, err := ParseDatabaseURL(url)
	if err != nil {
		return nil, err
	}

	switch dbType {
	case Postgres:
		return introspectPostgres(ctx, connStr, schemaName)
	case MySQL:
		return introspectMySQL(ctx, connStr, schemaName)
	default:
		return introspectSQLite(ctx, connStr)
	}
}

func introspectPostgres(ctx context.Context, connStr, schemaName string) (*schema.Schema, error) {
	client, err := NewPostgresClient(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer func() {
		if err := client.Close(ctx); err != nil {
			slog.Warn("failed to close PostgreSQL connection", "error", err)
		}
	}()

	if schemaName == "" {
		schemaName = "public"
	}
	return NewPostgresExtractor(client, schemaName).ExtractSchema(ctx)
}

func introspectMySQL(ctx context.Context, connStr, schemaName string) (*schema.Schema, error) {
	if schemaName == "" {
		var err error
		schemaName, err = ParseDatabaseName(connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to determine database name: %w (please specify a schema name)", err)
		}
	}

	client, err := NewMySQLClient(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MySQL: %w", err)
	}
	defer func() {
		if err := client.Close(); err != nil {
			slog.Warn("failed to close MySQL connection", "error", err)
		}
	}()

	return NewMySQLExtractor(client, schemaName).ExtractSchema(ctx)
}

func introspectSQLite(ctx context.Context, path string) (*schema.Schema, error) {
	client, err := NewSQLiteClient(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite: %w", err)
	}
	defer func() {
		if err := client.Close(); err != nil {
			slog.Warn("failed to close SQLite connection", "error", err)
		}
	}()

	return NewSQLiteExtractor(client).ExtractSchema(ctx)
}
