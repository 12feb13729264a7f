package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataRecord_Decode(t *testing.T) {
	t.Parallel()

	var rows []DataRecord
	payload := `[
		{"timestamp": "2022-04-01", "operator": "Chevron", "oil_bbl": 1200.5, "rig_count": 3},
		{"timestamp": "Fri, 01 Jul 2022 00:00:00 GMT", "operator": 77, "oil_bbl": null}
	]`
	require.NoError(t, json.Unmarshal([]byte(payload), &rows))
	require.Len(t, rows, 2)

	assert.Equal(t, "2022-04-01", rows[0].Timestamp.String())
	assert.Equal(t, "Chevron", rows[0].Operator)
	assert.Equal(t, 1200.5, rows[0].Fields["oil_bbl"])
	assert.Equal(t, float64(3), rows[0].Fields["rig_count"])
	assert.NotContains(t, rows[0].Fields, "timestamp")

	assert.Equal(t, "2022-07-01", rows[1].Timestamp.String())
	assert.Equal(t, "77", rows[1].Operator)
}

func TestDataRecord_MarshalFlat(t *testing.T) {
	t.Parallel()

	rec, err := DecodeRecord(map[string]any{
		"timestamp": "2022-04-01",
		"operator":  "Chevron",
		"oil_bbl":   10.0,
	})
	require.NoError(t, err)

	out, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.JSONEq(t, `{"timestamp":"2022-04-01","operator":"Chevron","oil_bbl":10}`, string(out))
}

func TestDataRecord_EpochAndBadDates(t *testing.T) {
	t.Parallel()

	rec, err := DecodeRecord(map[string]any{"timestamp": float64(1656633600000)})
	require.NoError(t, err)
	assert.Equal(t, "2022-07-01", rec.Timestamp.String())

	rec, err = DecodeRecord(map[string]any{"timestamp": "soon"})
	require.NoError(t, err)
	assert.True(t, rec.Timestamp.IsZero())
}
