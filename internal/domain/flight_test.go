package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewFlight_Pricing(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	date := now.AddDate(0, 1, 0)

	domestic := NewFlight(KindDomestic, "WIZ102", "Budapest", "Szeged", decimal.NewFromInt(20000), "Wizz Air", date, now)
	assert.True(t, decimal.NewFromInt(16000).Equal(domestic.Price), "got %s", domestic.Price)

	international := NewFlight(KindInternational, "WIZ201", "Budapest", "London", decimal.NewFromInt(50000), "Wizz Air", date, now)
	assert.True(t, decimal.NewFromInt(65000).Equal(international.Price), "got %s", international.Price)
}

func TestNewFlight_StatusFixedAtConstruction(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	future := NewFlight(KindDomestic, "WIZ102", "Budapest", "Szeged", decimal.NewFromInt(20000), "Wizz Air", now.Add(time.Hour), now)
	assert.Equal(t, FlightStatusActive, future.Status)

	past := NewFlight(KindDomestic, "WIZ001", "Budapest", "Debrecen", decimal.NewFromInt(15000), "Wizz Air", now.Add(-time.Hour), now)
	assert.Equal(t, FlightStatusInactive, past.Status)

	// Strictly after: a departure exactly at now is already inactive.
	boundary := NewFlight(KindDomestic, "WIZ003", "Budapest", "Pécs", decimal.NewFromInt(10000), "Wizz Air", now, now)
	assert.Equal(t, FlightStatusInactive, boundary.Status)
}

func TestFlightKind_Mapping(t *testing.T) {
	assert.Equal(t, "Domestic", KindDomestic.Label())
	assert.Equal(t, 2, KindDomestic.FlightHours())
	assert.True(t, decimal.RequireFromString("0.8").Equal(KindDomestic.Multiplier()))

	assert.Equal(t, "International", KindInternational.Label())
	assert.Equal(t, 8, KindInternational.FlightHours())
	assert.True(t, decimal.RequireFromString("1.3").Equal(KindInternational.Multiplier()))
}

func TestNewBooking_SnapshotsFlight(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	flight := NewFlight(KindInternational, "WIZ201", "Budapest", "London", decimal.NewFromInt(50000), "Wizz Air", now.AddDate(0, 0, 45), now)

	b := NewBooking("AB123", flight, "Szabó Éva")

	assert.Equal(t, "AB123", b.ID)
	assert.Equal(t, "WIZ201", b.FlightNumber)
	assert.Equal(t, "Budapest", b.Origin)
	assert.Equal(t, "London", b.Destination)
	assert.Equal(t, flight.Date, b.Date)
	assert.True(t, flight.Price.Equal(b.Price))
	assert.Equal(t, BookingStatusActive, b.Status)
}
