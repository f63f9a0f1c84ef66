package sqlite

import (
	"fmt"
	"strings"
)

// The schema is described as data, built once at package init and
// validated before first use. Ill-formed declarations fail store
// construction, not individual queries.

// schemaVersion is pinned via PRAGMA user_version. A fresh store is
// stamped with it; any other value is a fatal initialization failure.
// There is no migration path.
const schemaVersion = 1

const (
	tablePlants          = "plants"
	tableGardenPlantings = "garden_plantings"
)

// Column describes one table column. A non-nil Codec marks the column
// as non-primitive: the query layer converts through the codec on
// every bind and scan.
type Column struct {
	Name    string
	Type    string
	NotNull bool
	Default string
	Codec   Codec
}

// ForeignKey constrains child columns to reference parent columns.
// Parent and child column lists must have equal arity.
type ForeignKey struct {
	Columns       []string
	ParentTable   string
	ParentColumns []string
}

// Index is a secondary index over a subset of a table's columns.
type Index struct {
	Name    string
	Columns []string
}

// Table is one entity table: columns, primary key, constraints.
// AutoIncrement marks a single INTEGER primary key as store-assigned
// and monotonically increasing.
type Table struct {
	Name          string
	Columns       []Column
	PrimaryKey    []string
	AutoIncrement bool
	ForeignKeys   []ForeignKey
	Indexes       []Index
}

// Schema is the full store layout at one pinned version.
type Schema struct {
	Version int
	Tables  []Table
}

// gardenSchema is the persisted layout. Column names are part of the
// external interface and must stay stable across releases.
var gardenSchema = Schema{
	Version: schemaVersion,
	Tables: []Table{
		{
			Name: tablePlants,
			Columns: []Column{
				{Name: "id", Type: "TEXT", NotNull: true},
				{Name: "name", Type: "TEXT", NotNull: true},
				{Name: "description", Type: "TEXT", NotNull: true},
				{Name: "growZoneNumber", Type: "INTEGER", NotNull: true},
				{Name: "wateringInterval", Type: "INTEGER", NotNull: true, Default: "7"},
				{Name: "imageUrl", Type: "TEXT", NotNull: true, Default: "''"},
			},
			PrimaryKey: []string{"id"},
		},
		{
			Name: tableGardenPlantings,
			Columns: []Column{
				{Name: "id", Type: "INTEGER"},
				{Name: "plant_id", Type: "TEXT", NotNull: true},
				{Name: "plant_date", Type: "INTEGER", NotNull: true, Codec: TimeMillis{}},
				{Name: "last_watering_date", Type: "INTEGER", NotNull: true, Codec: TimeMillis{}},
			},
			PrimaryKey:    []string{"id"},
			AutoIncrement: true,
			ForeignKeys: []ForeignKey{
				{
					Columns:       []string{"plant_id"},
					ParentTable:   tablePlants,
					ParentColumns: []string{"id"},
				},
			},
			Indexes: []Index{
				{Name: "index_garden_plantings_plant_id", Columns: []string{"plant_id"}},
			},
		},
	},
}

// Validate checks the schema for structural errors: duplicate names,
// primary keys or indexes over unknown columns, and ill-formed foreign
// keys (arity mismatch, unknown parent table or column).
func (s *Schema) Validate() error {
	if s.Version <= 0 {
		return fmt.Errorf("schema version must be positive, got %d", s.Version)
	}

	byName := make(map[string]*Table, len(s.Tables))
	for i := range s.Tables {
		t := &s.Tables[i]
		if _, dup := byName[t.Name]; dup {
			return fmt.Errorf("duplicate table %q", t.Name)
		}
		byName[t.Name] = t
	}

	for _, t := range s.Tables {
		cols := make(map[string]struct{}, len(t.Columns))
		for _, c := range t.Columns {
			if c.Name == "" || c.Type == "" {
				return fmt.Errorf("table %q: column needs a name and type", t.Name)
			}
			if _, dup := cols[c.Name]; dup {
				return fmt.Errorf("table %q: duplicate column %q", t.Name, c.Name)
			}
			cols[c.Name] = struct{}{}
		}

		if len(t.PrimaryKey) == 0 {
			return fmt.Errorf("table %q: missing primary key", t.Name)
		}
		for _, pk := range t.PrimaryKey {
			if _, ok := cols[pk]; !ok {
				return fmt.Errorf("table %q: primary key column %q does not exist", t.Name, pk)
			}
		}
		if t.AutoIncrement && len(t.PrimaryKey) != 1 {
			return fmt.Errorf("table %q: autoincrement requires a single-column primary key", t.Name)
		}

		for _, fk := range t.ForeignKeys {
			if len(fk.Columns) != len(fk.ParentColumns) {
				return fmt.Errorf("table %q: foreign key arity mismatch (%d child, %d parent columns)",
					t.Name, len(fk.Columns), len(fk.ParentColumns))
			}
			if len(fk.Columns) == 0 {
				return fmt.Errorf("table %q: empty foreign key", t.Name)
			}
			for _, c := range fk.Columns {
				if _, ok := cols[c]; !ok {
					return fmt.Errorf("table %q: foreign key column %q does not exist", t.Name, c)
				}
			}
			parent, ok := byName[fk.ParentTable]
			if !ok {
				return fmt.Errorf("table %q: foreign key references unknown table %q", t.Name, fk.ParentTable)
			}
			for _, pc := range fk.ParentColumns {
				if !parent.hasColumn(pc) {
					return fmt.Errorf("table %q: foreign key references unknown column %s.%s",
						t.Name, fk.ParentTable, pc)
				}
			}
		}

		for _, idx := range t.Indexes {
			if idx.Name == "" || len(idx.Columns) == 0 {
				return fmt.Errorf("table %q: index needs a name and columns", t.Name)
			}
			for _, c := range idx.Columns {
				if _, ok := cols[c]; !ok {
					return fmt.Errorf("table %q: index %q column %q does not exist", t.Name, idx.Name, c)
				}
			}
		}
	}

	return nil
}

// DDL renders the schema as CREATE statements. Validate must have
// succeeded first; DDL assumes a well-formed schema.
func (s *Schema) DDL() []string {
	stmts := make([]string, 0, len(s.Tables))
	for _, t := range s.Tables {
		stmts = append(stmts, t.createTable())
		for _, idx := range t.Indexes {
			stmts = append(stmts, fmt.Sprintf(
				"CREATE INDEX IF NOT EXISTS %s ON %s (%s)",
				idx.Name, t.Name, strings.Join(idx.Columns, ", ")))
		}
	}
	return stmts
}

func (t *Table) createTable() string {
	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE IF NOT EXISTS %s (\n", t.Name)

	inlinePK := t.AutoIncrement && len(t.PrimaryKey) == 1

	for i, c := range t.Columns {
		if i > 0 {
			b.WriteString(",\n")
		}
		fmt.Fprintf(&b, "\t%s %s", c.Name, c.Type)
		if inlinePK && c.Name == t.PrimaryKey[0] {
			b.WriteString(" PRIMARY KEY AUTOINCREMENT")
		}
		if c.NotNull {
			b.WriteString(" NOT NULL")
		}
		if c.Default != "" {
			fmt.Fprintf(&b, " DEFAULT %s", c.Default)
		}
	}

	if !inlinePK {
		fmt.Fprintf(&b, ",\n\tPRIMARY KEY (%s)", strings.Join(t.PrimaryKey, ", "))
	}
	for _, fk := range t.ForeignKeys {
		fmt.Fprintf(&b, ",\n\tFOREIGN KEY (%s) REFERENCES %s (%s)",
			strings.Join(fk.Columns, ", "), fk.ParentTable, strings.Join(fk.ParentColumns, ", "))
	}

	b.WriteString("\n)")
	return b.String()
}

func (t *Table) hasColumn(name string) bool {
	for _, c := range t.Columns {
		if c.Name == name {
			return true
		}
	}
	return false
}

// codecs indexes the schema's column codecs as table -> column -> codec.
func (s *Schema) codecs() map[string]map[string]Codec {
	out := make(map[string]map[string]Codec)
	for _, t := range s.Tables {
		for _, c := range t.Columns {
			if c.Codec == nil {
				continue
			}
			if out[t.Name] == nil {
				out[t.Name] = make(map[string]Codec)
			}
			out[t.Name][c.Name] = c.Codec
		}
	}
	return out
}
