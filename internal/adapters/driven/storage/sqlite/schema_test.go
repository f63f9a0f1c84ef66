package sqlite

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGardenSchema_IsValid(t *testing.T) {
	assert.NoError(t, gardenSchema.Validate())
}

func TestSchema_ValidateRejectsBadVersion(t *testing.T) {
	s := Schema{Version: 0}
	err := s.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "version")
}

func TestSchema_ValidateRejectsDuplicateTable(t *testing.T) {
	s := Schema{Version: 1, Tables: []Table{
		{Name: "t", Columns: []Column{{Name: "id", Type: "TEXT"}}, PrimaryKey: []string{"id"}},
		{Name: "t", Columns: []Column{{Name: "id", Type: "TEXT"}}, PrimaryKey: []string{"id"}},
	}}
	err := s.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate table "t"`)
}

func TestSchema_ValidateRejectsDuplicateColumn(t *testing.T) {
	s := Schema{Version: 1, Tables: []Table{
		{
			Name: "t",
			Columns: []Column{
				{Name: "id", Type: "TEXT"},
				{Name: "id", Type: "INTEGER"},
			},
			PrimaryKey: []string{"id"},
		},
	}}
	err := s.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate column "id"`)
}

func TestSchema_ValidateRejectsMissingPrimaryKey(t *testing.T) {
	s := Schema{Version: 1, Tables: []Table{
		{Name: "t", Columns: []Column{{Name: "id", Type: "TEXT"}}},
	}}
	err := s.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing primary key")
}

func TestSchema_ValidateRejectsUnknownPrimaryKeyColumn(t *testing.T) {
	s := Schema{Version: 1, Tables: []Table{
		{Name: "t", Columns: []Column{{Name: "id", Type: "TEXT"}}, PrimaryKey: []string{"nope"}},
	}}
	err := s.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `primary key column "nope"`)
}

func TestSchema_ValidateRejectsCompositeAutoincrement(t *testing.T) {
	s := Schema{Version: 1, Tables: []Table{
		{
			Name: "t",
			Columns: []Column{
				{Name: "a", Type: "INTEGER"},
				{Name: "b", Type: "INTEGER"},
			},
			PrimaryKey:    []string{"a", "b"},
			AutoIncrement: true,
		},
	}}
	err := s.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "autoincrement")
}

func TestSchema_ValidateRejectsForeignKeyArityMismatch(t *testing.T) {
	s := Schema{Version: 1, Tables: []Table{
		{Name: "parent", Columns: []Column{{Name: "id", Type: "TEXT"}}, PrimaryKey: []string{"id"}},
		{
			Name: "child",
			Columns: []Column{
				{Name: "id", Type: "INTEGER"},
				{Name: "parent_id", Type: "TEXT"},
			},
			PrimaryKey: []string{"id"},
			ForeignKeys: []ForeignKey{
				{Columns: []string{"parent_id"}, ParentTable: "parent", ParentColumns: []string{"id", "extra"}},
			},
		},
	}}
	err := s.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "arity mismatch")
}

func TestSchema_ValidateRejectsUnknownParentTable(t *testing.T) {
	s := Schema{Version: 1, Tables: []Table{
		{
			Name:       "child",
			Columns:    []Column{{Name: "id", Type: "INTEGER"}, {Name: "parent_id", Type: "TEXT"}},
			PrimaryKey: []string{"id"},
			ForeignKeys: []ForeignKey{
				{Columns: []string{"parent_id"}, ParentTable: "missing", ParentColumns: []string{"id"}},
			},
		},
	}}
	err := s.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown table "missing"`)
}

func TestSchema_ValidateRejectsUnknownParentColumn(t *testing.T) {
	s := Schema{Version: 1, Tables: []Table{
		{Name: "parent", Columns: []Column{{Name: "id", Type: "TEXT"}}, PrimaryKey: []string{"id"}},
		{
			Name:       "child",
			Columns:    []Column{{Name: "id", Type: "INTEGER"}, {Name: "parent_id", Type: "TEXT"}},
			PrimaryKey: []string{"id"},
			ForeignKeys: []ForeignKey{
				{Columns: []string{"parent_id"}, ParentTable: "parent", ParentColumns: []string{"uuid"}},
			},
		},
	}}
	err := s.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parent.uuid")
}

func TestSchema_ValidateRejectsIndexOverUnknownColumn(t *testing.T) {
	s := Schema{Version: 1, Tables: []Table{
		{
			Name:       "t",
			Columns:    []Column{{Name: "id", Type: "TEXT"}},
			PrimaryKey: []string{"id"},
			Indexes:    []Index{{Name: "idx_t_missing", Columns: []string{"missing"}}},
		},
	}}
	err := s.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `column "missing"`)
}

func TestSchema_DDLRendersAutoincrementInline(t *testing.T) {
	stmts := gardenSchema.DDL()
	require.Len(t, stmts, 3) // two tables + one index

	joined := strings.Join(stmts, ";\n")
	assert.Contains(t, joined, "CREATE TABLE IF NOT EXISTS plants")
	assert.Contains(t, joined, "CREATE TABLE IF NOT EXISTS garden_plantings")
	assert.Contains(t, joined, "id INTEGER PRIMARY KEY AUTOINCREMENT")
	assert.Contains(t, joined, "FOREIGN KEY (plant_id) REFERENCES plants (id)")
	assert.Contains(t, joined, "CREATE INDEX IF NOT EXISTS index_garden_plantings_plant_id ON garden_plantings (plant_id)")
	assert.Contains(t, joined, "wateringInterval INTEGER NOT NULL DEFAULT 7")
	assert.Contains(t, joined, "imageUrl TEXT NOT NULL DEFAULT ''")
}

func TestSchema_DDLRendersTableLevelPrimaryKey(t *testing.T) {
	ddl := gardenSchema.Tables[0].createTable()
	assert.Contains(t, ddl, "PRIMARY KEY (id)")
	assert.NotContains(t, ddl, "AUTOINCREMENT")
}

func TestSchema_CodecsIndexedByTableAndColumn(t *testing.T) {
	codecs := gardenSchema.codecs()
	require.Contains(t, codecs, tableGardenPlantings)
	assert.Contains(t, codecs[tableGardenPlantings], "plant_date")
	assert.Contains(t, codecs[tableGardenPlantings], "last_watering_date")
	assert.NotContains(t, codecs, tablePlants)
}
