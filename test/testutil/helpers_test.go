package testutil

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMockJSON(t *testing.T) {
	data := LoadMockJSON(t, "open_exchange_rates.json")

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "open_exchange", doc["provider"])
}

func TestMockDataPath(t *testing.T) {
	path := MockDataPath(t, "skyfare_fares.json")
	assert.Contains(t, path, "response-mock")
	assert.Contains(t, path, "skyfare_fares.json")
}

func TestMustParseTime(t *testing.T) {
	got := MustParseTime(t, "2026-10-05T10:00:00Z")
	assert.Equal(t, time.Date(2026, 10, 5, 10, 0, 0, 0, time.UTC), got)
}

func TestMustParseDate(t *testing.T) {
	got := MustParseDate(t, "2026-10-05")
	assert.Equal(t, time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC), got)
}

func TestPtr(t *testing.T) {
	v := Ptr(42)
	require.NotNil(t, v)
	assert.Equal(t, 42, *v)

	s := Ptr("deal")
	assert.Equal(t, "deal", *s)
}

func TestFloatPtr(t *testing.T) {
	f := FloatPtr(0.92)
	require.NotNil(t, f)
	assert.Equal(t, 0.92, *f)
}
