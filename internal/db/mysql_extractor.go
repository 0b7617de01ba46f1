package db

import (
	"context"
	"fmt"

	"github.com/tordrt/atlas2ts/internal/schema"
)

// MySQLExtractor builds the schema model from a MySQL database
type MySQLExtractor struct {
	client     *MySQLClient
	schemaName string
}

// NewMySQLExtractor creates an extractor for schemaName
func NewMySQLExtractor(client *MySQLClient, schemaName string) *MySQLExtractor {
	return &MySQLExtractor{
		client:     client,
		schemaName: schemaName,
	}
}

// ExtractSchema reads every base table of the database, in name order
func (e *MySQLExtractor) ExtractSchema(ctx context.Context) (*schema.Schema, error) {
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

func (e *MySQLExtractor) getTableNames(ctx context.Context) ([]string, error) {
	query := `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = ? AND table_type = 'BASE TABLE'
		ORDER BY table_name
	`

	rows, err := e.client.GetDB().QueryContext(ctx, query, e.schemaName)
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

func (e *MySQLExtractor) extractColumns(ctx context.Context, tableName string) (schema.TableDefinition, error) {
	// column_type keeps parameters, e.g. varchar(255) or decimal(10,2)
	query := `
		SELECT
			c.column_name,
			c.column_type,
			c.is_nullable,
			c.column_default IS NOT NULL
		FROM information_schema.columns c
		WHERE c.table_schema = ? AND c.table_name = ?
		ORDER BY c.ordinal_position
	`

	var def schema.TableDefinition
	rows, err := e.client.GetDB().QueryContext(ctx, query, e.schemaName, tableName)
	if err != nil {
		return def, err
	}
	defer rows.Close()

	for rows.Next() {
		var name, nullable string
		var col schema.ColumnDefinition
		if err := rows.Scan(&name, &col.Type, &nullable, &col.HasDefault); err != nil {
			return def, err
		}
		col.Nullable = nullable == "YES"
		def.AddColumn(name, col)
	}

	return def, rows.Err()
}
