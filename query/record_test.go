package query

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_Number(t *testing.T) {
	record := Record{
		"float":  42.5,
		"int":    7,
		"number": json.Number("3.14"),
		"string": "not a number",
		"bool":   true,
	}

	v, ok := record.Number("float")
	assert.True(t, ok)
	assert.Equal(t, 42.5, v)

	v, ok = record.Number("int")
	assert.True(t, ok)
	assert.Equal(t, 7.0, v)

	v, ok = record.Number("number")
	assert.True(t, ok)
	assert.Equal(t, 3.14, v)

	v, ok = record.Number("string")
	assert.False(t, ok)
	assert.Equal(t, 0.0, v)

	_, ok = record.Number("bool")
	assert.False(t, ok)

	v, ok = record.Number("missing")
	assert.False(t, ok)
	assert.Equal(t, 0.0, v)
}

func TestRecord_Text(t *testing.T) {
	record := Record{"name": "aave", "tvl": 100.0}

	assert.Equal(t, "aave", record.Text("name"))
	assert.Equal(t, "", record.Text("tvl"))
	assert.Equal(t, "", record.Text("missing"))
}

func TestUnwrapRecords_BareList(t *testing.T) {
	raw := json.RawMessage(`[{"project":"A"},{"project":"B"}]`)

	records, err := UnwrapRecords(raw)
	require.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, "A", records[0].Text("project"))
}

func TestUnwrapRecords_DataWrapper(t *testing.T) {
	raw := json.RawMessage(`{"status":"success","data":[{"project":"A"}]}`)

	records, err := UnwrapRecords(raw)
	require.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, "A", records[0].Text("project"))
}

func TestUnwrapRecords_EmptyList(t *testing.T) {
	records, err := UnwrapRecords(json.RawMessage(`[]`))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestUnwrapRecords_UnexpectedShape(t *testing.T) {
	_, err := UnwrapRecords(json.RawMessage(`{"coins":{}}`))
	assert.Error(t, err)

	_, err = UnwrapRecords(json.RawMessage(`42`))
	assert.Error(t, err)
}
