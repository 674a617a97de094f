package domain

import (
	"errors"
	"fmt"
)

var ErrDuplicateFlightNumber = errors.New("flight number already exists")

// Airline owns the ordered flight list and enforces flight number
// uniqueness at insertion.
type Airline struct {
	Name    string
	flights []Flight
}

func NewAirline(name string) *Airline {
	return &Airline{Name: name}
}

// AddFlight appends the flight, preserving insertion order. The list is
// never touched when the number is already taken.
func (a *Airline) AddFlight(f Flight) error {
	for _, existing := range a.flights {
		if existing.Number == f.Number {
			return fmt.Errorf("%w: %s", ErrDuplicateFlightNumber, f.Number)
		}
	}
	a.flights = append(a.flights, f)
	return nil
}

func (a *Airline) FindByNumber(number string) (Flight, bool) {
	for _, f := range a.flights {
		if f.Number == number {
			return f, true
		}
	}
	return Flight{}, false
}

// Flights returns a copy of the flight list in insertion order.
func (a *Airline) Flights() []Flight {
	out := make([]Flight, len(a.flights))
	copy(out, a.flights)
	return out
}
