package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/tordrt/atlas2ts/internal/schema"
)

// SQLiteExtractor builds the schema model from a SQLite database
type SQLiteExtractor struct {
	client *SQLiteClient
}

// NewSQLiteExtractor creates a SQLite extractor
func NewSQLiteExtractor(client *SQLiteClient) *SQLiteExtractor {
	return &SQLiteExtractor{client: client}
}

// ExtractSchema reads every user table, in name order
func (e *SQLiteExtractor) ExtractSchema(ctx context.Context) (*schema.Schema, error) {
	tableNames, err := e.getTableNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get table names: %w", err)
	}

	s := &schema.Schema{}
	for _, tableName := range tableNames {
		def, err := e.extractColumns(ctx, tableName)
		if err != nil {
			return nil, fmt.Errorf("failed to extract table %s: %w", tableName, err)
		}
		s.AddTable(tableName, def)
	}
	return s, nil
}

func (e *SQLiteExtractor) getTableNames(ctx context.Context) ([]string, error) {
	query := `
		SELECT name
		FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
		ORDER BY name
	`

	rows, err := e.client.GetDB().QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var tableName string
		if err := rows.Scan(&tableName); err != nil {
			return nil, err
		}
		tables = append(tables, tableName)
	}

	return tables, rows.Err()
}

func (e *SQLiteExtractor) extractColumns(ctx context.Context, tableName string) (schema.TableDefinition, error) {
	query := fmt.Sprintf("PRAGMA table_info(%s)", quoteIdent(tableName))

	var def schema.TableDefinition
	rows, err := e.client.GetDB().QueryContext(ctx, query)
	if err != nil {
		return def, err
	}
	defer rows.Close()

	for rows.Next() {
		var cid, notNull, pk int
		var name, colType string
		var defaultValue sql.NullString

		if err := rows.Scan(&cid, &name, &colType, &notNull, &defaultValue, &pk); err != nil {
			return def, err
		}

		def.AddColumn(name, schema.ColumnDefinition{
			Type:       strings.ToLower(colType),
			Nullable:   notNull == 0,
			HasDefault: defaultValue.Valid,
		})
	}

	return def, rows.Err()
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
