package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTableColumns(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE cards (name TEXT PRIMARY KEY, printings TEXT, types TEXT)").Error
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "cards")
	require.NoError(t, err)
	assert.Len(t, columns, 3)

	colMap := make(map[string]string)
	for _, col := range columns {
		colMap[col.Field] = col.Type
	}
	assert.Equal(t, "text", colMap["name"])
	assert.Equal(t, "text", colMap["printings"])

	// PRAGMA table_info returns an empty result for a non-existent table
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestMissingColumns(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.Exec("CREATE TABLE cards (name TEXT, types TEXT)").Error)

	missing, err := MissingColumns(db, "cards", "name", "printings", "types")
	require.NoError(t, err)
	assert.Equal(t, []string{"printings"}, missing)

	missing, err = MissingColumns(db, "absent", "name")
	require.NoError(t, err)
	assert.Equal(t, []string{"name"}, missing)
}
