package schema

// Schema represents one parsed schema fragment
type Schema struct {
	Tables []Table
}

// Table is a named table with every definition the source declared for it.
// Only the first definition is used during generation.
type Table struct {
	Name        string
	Definitions []TableDefinition
}

// TableDefinition holds the columns of a single table block
type TableDefinition struct {
	Columns []Column
}

// Column is a named column with every definition the source declared for it
type Column struct {
	Name        string
	Definitions []ColumnDefinition
}

// ColumnDefinition represents a single column block
type ColumnDefinition struct {
	// Type is the raw column type, possibly wrapped as ${...}
	Type       string
	Nullable   bool
	HasDefault bool
}

// Effective returns the first definition of the table, or an empty one
func (t Table) Effective() TableDefinition {
	if len(t.Definitions) == 0 {
		return TableDefinition{}
	}
	return t.Definitions[0]
}

// Effective returns the first definition of the column
func (c Column) Effective() ColumnDefinition {
	if len(c.Definitions) == 0 {
		return ColumnDefinition{}
	}
	return c.Definitions[0]
}

// FindTable returns the table with the given name, if present
func (s *Schema) FindTable(name string) *Table {
	for i := range s.Tables {
		if s.Tables[i].Name == name {
			return &s.Tables[i]
		}
	}
	return nil
}

// AddTable appends a definition under name, creating the table entry on first use
func (s *Schema) AddTable(name string, def TableDefinition) {
	if t := s.FindTable(name); t != nil {
		t.Definitions = append(t.Definitions, def)
		return
	}
	s.Tables = append(s.Tables, Table{Name: name, Definitions: []TableDefinition{def}})
}

// AddColumn appends a definition under name, creating the column entry on first use
func (d *TableDefinition) AddColumn(name string, def ColumnDefinition) {
	for i := range d.Columns {
		if d.Columns[i].Name == name {
			d.Columns[i].Definitions = append(d.Columns[i].Definitions, def)
			return
		}
	}
	d.Columns = append(d.Columns, Column{Name: name, Definitions: []ColumnDefinition{def}})
}
