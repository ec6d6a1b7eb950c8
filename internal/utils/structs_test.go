package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type row struct {
	ID        string    `db:"id" form:"id"`
	Name      *string   `db:"name" form:"name"`
	Note      *string   `db:"note" form:"note"`
	CreatedAt time.Time `db:"created_at" form:"-"`
	Skipped   string
	hidden    string `db:"hidden"`
}

func TestStructTagValues(t *testing.T) {
	assert.Equal(t, []string{"id", "name", "note", "created_at"}, StructTagValues(row{}))
	assert.Equal(t, []string{"id", "name", "note", "created_at"}, StructTagValues(&row{}))
}

func TestStructToMapKeepsNilPointers(t *testing.T) {
	m := StructToMap(&row{ID: "abc", hidden: "x"})
	assert.Len(t, m, 4)
	assert.Equal(t, "abc", m["id"])
	assert.Nil(t, m["name"])
}

func TestFormToMapSkipsUnsubmittedFields(t *testing.T) {
	m := FormToMap(row{ID: "abc", Name: StringPtr("Jane"), Note: nil})
	assert.Equal(t, map[string]any{"id": "abc", "name": "Jane"}, m)
}

func TestStructValuePanicsOnNonStruct(t *testing.T) {
	assert.Panics(t, func() { StructTagValues("nope") })
}

func TestNanoID(t *testing.T) {
	id := NanoID()
	assert.Len(t, id, NanoidSize)
	assert.Regexp(t, `^[0-9a-zA-Z]+$`, id)
	assert.Len(t, NanoIDSize(8), 8)
	assert.NotEqual(t, NanoID(), NanoID())
}
