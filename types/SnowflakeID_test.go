package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnowflakeIDMarshalsAsString(t *testing.T) {
	// Past 2^53 a plain JSON number loses precision in JavaScript clients.
	id := SnowflakeID(1879048192345678901)
	b, err := json.Marshal(id)
	require.NoError(t, err)
	assert.Equal(t, `"1879048192345678901"`, string(b))
}

func TestSnowflakeIDUnmarshalAcceptsBothForms(t *testing.T) {
	var fromString, fromNumber SnowflakeID
	require.NoError(t, json.Unmarshal([]byte(`"1879048192345678901"`), &fromString))
	require.NoError(t, json.Unmarshal([]byte(`42`), &fromNumber))
	assert.Equal(t, SnowflakeID(1879048192345678901), fromString)
	assert.Equal(t, SnowflakeID(42), fromNumber)
}

func TestSnowflakeIDUnmarshalRejectsGarbage(t *testing.T) {
	var id SnowflakeID
	assert.Error(t, json.Unmarshal([]byte(`"not-a-number"`), &id))
	assert.Error(t, json.Unmarshal([]byte(`{"id":1}`), &id))
}

func TestSnowflakeIDScan(t *testing.T) {
	var id SnowflakeID
	require.NoError(t, id.Scan(int64(99)))
	assert.Equal(t, SnowflakeID(99), id)

	require.NoError(t, id.Scan([]byte("1879048192345678901")))
	assert.Equal(t, SnowflakeID(1879048192345678901), id)

	assert.Error(t, id.Scan(3.14))
}
