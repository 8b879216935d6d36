package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type taggedRow struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Skipped   string    `db:"-"`
	Untagged  string
	CreatedAt time.Time `db:"created_at"`
	hidden    string    `db:"hidden"`
}

func TestStructTagValues(t *testing.T) {
	cols := StructTagValues(taggedRow{})
	assert.Equal(t, []string{"id", "name", "created_at"}, cols)

	cols = StructTagValues(&taggedRow{})
	assert.Equal(t, []string{"id", "name", "created_at"}, cols)
}

func TestStructToMap(t *testing.T) {
	now := time.Now()
	m := StructToMap(&taggedRow{ID: "abc", Name: "Shelter", Skipped: "x", CreatedAt: now, hidden: "y"})

	require.Len(t, m, 3)
	assert.Equal(t, "abc", m["id"])
	assert.Equal(t, "Shelter", m["name"])
	assert.Equal(t, now, m["created_at"])
}

func TestStructTagValuesPanicsOnNonStruct(t *testing.T) {
	assert.Panics(t, func() { StructTagValues(42) })
}

func TestErrorWrapOrNil(t *testing.T) {
	assert.NoError(t, ErrorWrapOrNil(nil, "ignored"))

	base := errors.New("boom")
	err := ErrorWrapOrNil(base, "failed to fetch")
	assert.EqualError(t, err, "failed to fetch: boom")
	assert.ErrorIs(t, err, base)

	assert.Equal(t, base, ErrorWrapOrNil(base, ""))
}

func TestNanoID(t *testing.T) {
	id := NanoID()
	assert.Len(t, id, NanoidSize)
	assert.Len(t, NanoIDSize(12), 12)
	assert.NotEqual(t, NanoID(), NanoID())
}

func TestRoundFloat64(t *testing.T) {
	assert.Equal(t, 1.2, RoundFloat64(1.24, 1))
	assert.Equal(t, 1.3, RoundFloat64(1.25, 1))
	assert.Equal(t, 3.0, RoundFloat64(2.96, 1))
}

func TestPtrString(t *testing.T) {
	assert.Equal(t, "", PtrString(nil))
	assert.Equal(t, "hi", PtrString(StringPtr("hi")))
}
