package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()

	assert.Equal(t, 15, c.Len())

	// Spot-check a few entries for locale data.
	all := c.From("XXX")
	byAirport := make(map[string]Destination, len(all))
	for _, d := range all {
		byAirport[d.Airport] = d
	}

	cdg, ok := byAirport["CDG"]
	require.True(t, ok)
	assert.Equal(t, "Paris", cdg.City)
	assert.Equal(t, "France", cdg.Country)
	assert.Equal(t, "EUR", cdg.Currency)

	mex, ok := byAirport["MEX"]
	require.True(t, ok)
	assert.Equal(t, "MXN", mex.Currency)
}

func TestFrom_ExcludesDeparture(t *testing.T) {
	c := Default()

	destinations := c.From("JFK")
	assert.Len(t, destinations, c.Len()-1)
	for _, d := range destinations {
		assert.NotEqual(t, "JFK", d.Airport)
	}
}

func TestFrom_NormalizesDeparture(t *testing.T) {
	c := Default()

	destinations := c.From(" jfk ")
	assert.Len(t, destinations, c.Len()-1)
	for _, d := range destinations {
		assert.NotEqual(t, "JFK", d.Airport)
	}
}

func TestFrom_UnknownDepartureKeepsAll(t *testing.T) {
	c := Default()
	assert.Len(t, c.From("ZRH"), c.Len())
}

func TestNew(t *testing.T) {
	c := New([]Destination{
		{Airport: "CDG", City: "Paris", Country: "France", Currency: "EUR"},
		{Airport: "LHR", City: "London", Country: "United Kingdom", Currency: "GBP"},
	})

	assert.Equal(t, 2, c.Len())
	assert.Len(t, c.From("CDG"), 1)
}
