package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDay(t *testing.T) {
	day, err := ParseDay("2024-01-31")
	require.NoError(t, err)

	assert.Equal(t, 2024, day.Year)
	assert.Equal(t, time.January, day.Month)
	assert.Equal(t, 31, day.Day)
	assert.Equal(t, "2024-01-31", day.String())
}

func TestParseDay_Invalid(t *testing.T) {
	for _, s := range []string{"", "2024-13-01", "31/01/2024", "2024-01-01T00:00:00Z"} {
		_, err := ParseDay(s)
		assert.Error(t, err, s)
	}
}

func TestDay_JSON(t *testing.T) {
	type payload struct {
		Date Day `json:"date"`
	}

	var p payload
	err := json.Unmarshal([]byte(`{"date":"2025-12-01"}`), &p)
	require.NoError(t, err)
	assert.Equal(t, "2025-12-01", p.Date.String())

	b, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2025-12-01"}`, string(b))

	err = json.Unmarshal([]byte(`{"date":"not-a-date"}`), &p)
	assert.Error(t, err)
}

func TestDay_Within(t *testing.T) {
	from, _ := ParseDay("2025-12-01")
	to, _ := ParseDay("2025-12-31")

	inside, _ := ParseDay("2025-12-15")
	before, _ := ParseDay("2025-11-30")
	after, _ := ParseDay("2026-01-01")

	assert.True(t, from.Within(from, to))
	assert.True(t, to.Within(from, to))
	assert.True(t, inside.Within(from, to))
	assert.False(t, before.Within(from, to))
	assert.False(t, after.Within(from, to))
}

func TestDay_Scan(t *testing.T) {
	var d Day

	require.NoError(t, d.Scan(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-02-29", d.String())

	require.NoError(t, d.Scan("2024-03-01"))
	assert.Equal(t, "2024-03-01", d.String())

	require.NoError(t, d.Scan([]byte("2024-03-02T00:00:00Z")))
	assert.Equal(t, "2024-03-02", d.String())

	assert.Error(t, d.Scan(42))
}

func TestDay_Value(t *testing.T) {
	d, _ := ParseDay("2024-01-01")

	v, err := d.Value()
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), v)
}

func TestDay_Compare(t *testing.T) {
	first, err := ParseDay("2024-01-31")
	require.NoError(t, err)
	second, err := ParseDay("2024-02-01")
	require.NoError(t, err)

	assert.Equal(t, -1, first.Compare(second))
	assert.Equal(t, 1, second.Compare(first))
	assert.Equal(t, 0, first.Compare(first))
}
