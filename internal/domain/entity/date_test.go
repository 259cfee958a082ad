package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_MarshalJSON(t *testing.T) {
	d := NewDate(2015, time.April, 1)
	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2015-04-01"`, string(b))
}

func TestDate_UnmarshalJSON(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2020-12-31"`), &d))
	assert.Equal(t, NewDate(2020, time.December, 31).Time, d.Time)
}

func TestDate_UnmarshalJSON_Invalid(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"31-12-2020"`), &d))
}

func TestDate_ScanTime(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2015, 4, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2015-04-01", d.Format("2006-01-02"))
}

func TestDate_ScanString(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan("2015-04-01"))
	assert.Equal(t, "2015-04-01", d.Format("2006-01-02"))
}

func TestDate_ScanUnsupported(t *testing.T) {
	var d Date
	assert.Error(t, d.Scan(42))
}
