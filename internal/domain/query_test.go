package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendationQuery_Validate(t *testing.T) {
	validQuery := func() *RecommendationQuery {
		return &RecommendationQuery{
			BaseCurrency:     "USD",
			DepartureAirport: "JFK",
			OutboundDate:     "2026-10-05",
			ReturnDate:       "2026-10-12",
			Limit:            5,
		}
	}

	tests := []struct {
		name        string
		modify      func(*RecommendationQuery)
		wantErr     bool
		errContains string
	}{
		{
			name:    "valid query passes",
			modify:  func(q *RecommendationQuery) {},
			wantErr: false,
		},
		{
			name:    "empty optional fields pass",
			modify:  func(q *RecommendationQuery) { q.BaseCurrency = ""; q.OutboundDate = ""; q.ReturnDate = ""; q.Limit = 0 },
			wantErr: false,
		},
		{
			name:        "empty departure airport fails",
			modify:      func(q *RecommendationQuery) { q.DepartureAirport = "" },
			wantErr:     true,
			errContains: "departure airport is required",
		},
		{
			name:        "malformed departure airport fails",
			modify:      func(q *RecommendationQuery) { q.DepartureAirport = "JFK1" },
			wantErr:     true,
			errContains: "IATA",
		},
		{
			name:        "lowercase departure airport fails without normalization",
			modify:      func(q *RecommendationQuery) { q.DepartureAirport = "jfk" },
			wantErr:     true,
			errContains: "IATA",
		},
		{
			name:        "malformed base currency fails",
			modify:      func(q *RecommendationQuery) { q.BaseCurrency = "DOLLARS" },
			wantErr:     true,
			errContains: "ISO 4217",
		},
		{
			name:        "malformed outbound date fails",
			modify:      func(q *RecommendationQuery) { q.OutboundDate = "05-10-2026" },
			wantErr:     true,
			errContains: "YYYY-MM-DD",
		},
		{
			name:        "impossible outbound date fails",
			modify:      func(q *RecommendationQuery) { q.OutboundDate = "2026-13-45" },
			wantErr:     true,
			errContains: "not a valid date",
		},
		{
			name:        "malformed return date fails",
			modify:      func(q *RecommendationQuery) { q.ReturnDate = "someday" },
			wantErr:     true,
			errContains: "YYYY-MM-DD",
		},
		{
			name:        "negative limit fails",
			modify:      func(q *RecommendationQuery) { q.Limit = -1 },
			wantErr:     true,
			errContains: "limit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuery()
			tt.modify(q)

			err := q.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidRequest), "expected wrapped ErrInvalidRequest")
			if tt.errContains != "" {
				assert.Contains(t, err.Error(), tt.errContains)
			}
		})
	}
}

func TestRecommendationQuery_Normalize(t *testing.T) {
	q := &RecommendationQuery{
		BaseCurrency:     " usd",
		DepartureAirport: "jfk ",
		OutboundDate:     "2026-10-05T08:00:00Z",
		ReturnDate:       "2026-10-12",
	}

	q.Normalize()

	assert.Equal(t, "USD", q.BaseCurrency)
	assert.Equal(t, "JFK", q.DepartureAirport)
	assert.Equal(t, "2026-10-05", q.OutboundDate)
	assert.Equal(t, "2026-10-12", q.ReturnDate)

	// Normalize then validate is the canonical order: case variants of a
	// valid query must validate cleanly.
	assert.NoError(t, q.Validate())
}

func TestRecommendationQuery_SetDefaults(t *testing.T) {
	q := &RecommendationQuery{DepartureAirport: "JFK"}
	q.SetDefaults()
	assert.Equal(t, DefaultBaseCurrency, q.BaseCurrency)

	q = &RecommendationQuery{DepartureAirport: "JFK", BaseCurrency: "EUR"}
	q.SetDefaults()
	assert.Equal(t, "EUR", q.BaseCurrency)
}
