package nlp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC) // понедельник

func TestParse_FullPhrase(t *testing.T) {
	res, err := Parse("Vorrei prenotare domani alle 20 per tre persone", now)
	require.NoError(t, err)

	assert.Equal(t, "2025-06-17", res.Date)
	assert.Equal(t, "20:00", res.Time)
	assert.Equal(t, 3, res.PartySize)
}

func TestParse_Dates(t *testing.T) {
	tests := []struct {
		text string
		date string
	}{
		{"prenotare oggi alle 20", "2025-06-16"},
		{"stasera alle 21 per due", "2025-06-16"},
		{"domani alle 20", "2025-06-17"},
		{"dopodomani alle 20", "2025-06-18"},
		{"alle 20 per due persone", "2025-06-16"}, // без даты = сегодня
	}

	for _, tt := range tests {
		res, err := Parse(tt.text, now)
		require.NoError(t, err, tt.text)
		assert.Equal(t, tt.date, res.Date, tt.text)
	}
}

func TestParse_Times(t *testing.T) {
	tests := []struct {
		text string
		time string
	}{
		{"domani alle 20", "20:00"},
		{"domani alle 20:30", "20:30"},
		{"domani alle 20.30", "20:30"},
		{"domani alle ore 19:15", "19:15"},
		{"per le 19.30 per due", "19:30"},
		{"domani alle 9", "09:00"},
	}

	for _, tt := range tests {
		res, err := Parse(tt.text, now)
		require.NoError(t, err, tt.text)
		assert.Equal(t, tt.time, res.Time, tt.text)
	}
}

func TestParse_PartySizes(t *testing.T) {
	tests := []struct {
		text  string
		party int
	}{
		{"domani alle 20 per 4 persone", 4},
		{"domani alle 20 per quattro persone", 4},
		{"domani alle 20 per una persona", 1},
		{"domani alle 20 siamo in dodici", 12},
		{"domani alle 20", DefaultPartySize},
	}

	for _, tt := range tests {
		res, err := Parse(tt.text, now)
		require.NoError(t, err, tt.text)
		assert.Equal(t, tt.party, res.PartySize, tt.text)
	}
}

func TestParse_NoTime(t *testing.T) {
	_, err := Parse("vorrei prenotare per due persone", now)
	assert.Error(t, err)
}

func TestParse_Empty(t *testing.T) {
	_, err := Parse("   ", now)
	assert.Error(t, err)
}
