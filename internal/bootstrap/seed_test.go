package bootstrap

import (
	"testing"

	"flightdesk/internal/domain"
	"flightdesk/internal/ident"
	"flightdesk/internal/service/booking"
	"flightdesk/internal/service/flights"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed_DemoScenario(t *testing.T) {
	airline := domain.NewAirline("Wizz Air Hungary")
	flightSvc := flights.NewFlightService(airline)
	bookingSvc := booking.NewBookingService(ident.NewRandomGenerator(), decimal.RequireFromString("0.7"), 2)

	require.NoError(t, Seed(flightSvc, bookingSvc))

	stats := flightSvc.Stats()
	assert.Equal(t, "Wizz Air Hungary", stats.Airline)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.Active)
	assert.Equal(t, 2, stats.Domestic)
	assert.Equal(t, 1, stats.International)

	counts := bookingSvc.Counts()
	assert.Equal(t, booking.Counts{Total: 6, Active: 6, Cancelled: 0}, counts)

	all := flightSvc.List()
	require.Len(t, all, 3)
	assert.Equal(t, "WIZ001", all[0].Number)
	assert.Equal(t, domain.FlightStatusInactive, all[0].Status)
	assert.Equal(t, "WIZ102", all[1].Number)
	assert.True(t, decimal.NewFromInt(16000).Equal(all[1].Price), "got %s", all[1].Price)
	assert.Equal(t, "WIZ201", all[2].Number)
	assert.True(t, decimal.NewFromInt(65000).Equal(all[2].Price), "got %s", all[2].Price)

	perFlight := map[string]int{}
	seen := map[string]bool{}
	for _, b := range bookingSvc.List() {
		perFlight[b.FlightNumber]++
		assert.False(t, seen[b.ID], "duplicate reference %s", b.ID)
		seen[b.ID] = true
	}
	assert.Equal(t, 2, perFlight["WIZ102"])
	assert.Equal(t, 4, perFlight["WIZ201"])
}
