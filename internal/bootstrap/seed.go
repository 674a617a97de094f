package bootstrap

import (
	"fmt"
	"time"

	"flightdesk/internal/service/booking"
	"flightdesk/internal/service/flights"
)

const seedDateLayout = "2006-01-02"

// Seed loads the demo airline: one past-dated flight kept for the history
// view and two bookable ones, plus six bookings spread over the bookable
// flights. The future flights are dated relative to now so they stay
// active no matter when the process starts.
func Seed(flightSvc flights.FlightUseCase, bookingSvc booking.BookingUseCase) error {
	now := time.Now()

	seedFlights := []flights.AddFlightInput{
		{Number: "WIZ001", Origin: "Budapest", Destination: "Debrecen", BasePrice: "15000", Airline: "Wizz Air", Date: "2023-01-01", Kind: "1"},
		{Number: "WIZ102", Origin: "Budapest", Destination: "Szeged", BasePrice: "20000", Airline: "Wizz Air", Date: now.AddDate(0, 0, 30).Format(seedDateLayout), Kind: "1"},
		{Number: "WIZ201", Origin: "Budapest", Destination: "London", BasePrice: "50000", Airline: "Wizz Air", Date: now.AddDate(0, 0, 45).Format(seedDateLayout), Kind: "2"},
	}
	for _, input := range seedFlights {
		if _, err := flightSvc.Add(input); err != nil {
			return err
		}
	}

	seedBookings := []struct {
		flightNumber string
		passengers   []string
	}{
		{"WIZ102", []string{"Nagy János", "Kovács Béla"}},
		{"WIZ201", []string{"Szabó Éva", "Kiss Zoltán", "Tóth Mária", "Horváth Péter"}},
	}
	for _, sb := range seedBookings {
		flight, ok := flightSvc.Find(sb.flightNumber)
		if !ok {
			return fmt.Errorf("seed flight %s missing", sb.flightNumber)
		}
		for _, passenger := range sb.passengers {
			if _, err := bookingSvc.Book(flight, passenger); err != nil {
				return err
			}
		}
	}
	return nil
}
