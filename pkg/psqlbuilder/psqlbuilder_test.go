package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDollarPlaceholders(t *testing.T) {
	query, args, err := Select("slot_id", "used").
		From("calendar_slots").
		Where(squirrel.Eq{"status": "FREE"}).
		Where(squirrel.Lt{"used": 5}).
		ToSql()
	require.NoError(t, err)

	assert.Equal(t, "SELECT slot_id, used FROM calendar_slots WHERE status = $1 AND used < $2", query)
	assert.Equal(t, []interface{}{"FREE", 5}, args)
}

func TestInsertMultipleRows(t *testing.T) {
	query, args, err := Insert("calendar_slots").
		Columns("slot_id", "day").
		Values(1, "Monday").
		Values(2, "Monday").
		ToSql()
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO calendar_slots (slot_id,day) VALUES ($1,$2),($3,$4)", query)
	assert.Len(t, args, 4)
}
