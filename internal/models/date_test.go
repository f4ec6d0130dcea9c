package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSONRoundTrip(t *testing.T) {
	t.Parallel()

	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2023-07-02"`), &d))
	assert.Equal(t, 2023, d.Year())
	assert.Equal(t, time.July, d.Month())
	assert.Equal(t, 2, d.Day())

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2023-07-02"`, string(out))
}

func TestDateJSONNull(t *testing.T) {
	t.Parallel()

	var d Date
	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.True(t, d.IsZero())

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, "null", string(out), "zero date marshals to null")
}

func TestDateJSONInvalid(t *testing.T) {
	t.Parallel()

	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"02/07/2023"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`20230702`), &d))
}

func TestDateSQLRoundTrip(t *testing.T) {
	t.Parallel()

	var d Date
	require.NoError(t, d.Scan(time.Date(2023, 7, 2, 15, 4, 5, 0, time.UTC)))
	assert.Equal(t, "2023-07-02", d.Format(DateLayout), "scan truncates the time component")

	v, err := d.Value()
	require.NoError(t, err)
	assert.Equal(t, d.Time, v)

	var zero Date
	v, err = zero.Value()
	require.NoError(t, err)
	assert.Nil(t, v, "zero date stores as NULL")

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())
}
