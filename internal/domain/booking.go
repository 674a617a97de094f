package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingStatusActive    BookingStatus = "ACTIVE"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// Booking snapshots the flight data at booking time; later changes to the
// flight never reach an existing booking.
type Booking struct {
	ID           string
	FlightNumber string
	Origin       string
	Destination  string
	Date         time.Time
	Passenger    string
	Price        decimal.Decimal
	Status       BookingStatus
}

func NewBooking(id string, flight Flight, passenger string) Booking {
	return Booking{
		ID:           id,
		FlightNumber: flight.Number,
		Origin:       flight.Origin,
		Destination:  flight.Destination,
		Date:         flight.Date,
		Passenger:    passenger,
		Price:        flight.Price,
		Status:       BookingStatusActive,
	}
}
