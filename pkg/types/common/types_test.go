package common

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	a := NewID()
	b := NewID()
	assert.False(t, a.IsZero())
	assert.NotEqual(t, a, b)
	assert.Len(t, a.String(), 36)
}

func TestTimestampJSONRoundTrip(t *testing.T) {
	orig := Timestamp(time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC))
	data, err := json.Marshal(orig)
	require.NoError(t, err)
	assert.Equal(t, `"2026-03-14T09:26:53Z"`, string(data))

	var parsed Timestamp
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.True(t, orig.Time().Equal(parsed.Time()))
}

func TestEnvelopes(t *testing.T) {
	ok := OK(map[string]string{"smiles": "NCC(=O)O"})
	assert.True(t, ok.Success)
	assert.Nil(t, ok.Error)

	fail := Fail("PEP_002", "unknown residue", "code=Xyz")
	assert.False(t, fail.Success)
	require.NotNil(t, fail.Error)
	assert.Equal(t, "PEP_002", fail.Error.Code)
	assert.Equal(t, "code=Xyz", fail.Error.Detail)
}
