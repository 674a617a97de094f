package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type FlightStatus string

const (
	FlightStatusActive   FlightStatus = "ACTIVE"
	FlightStatusInactive FlightStatus = "INACTIVE"
)

// FlightKind tags a flight as domestic or international. The kind decides
// the fare multiplier, the nominal flight time and the display label.
type FlightKind int

const (
	KindDomestic FlightKind = iota + 1
	KindInternational
)

var (
	domesticMultiplier      = decimal.RequireFromString("0.8")
	internationalMultiplier = decimal.RequireFromString("1.3")
)

func (k FlightKind) Multiplier() decimal.Decimal {
	switch k {
	case KindInternational:
		return internationalMultiplier
	default:
		return domesticMultiplier
	}
}

func (k FlightKind) FlightHours() int {
	switch k {
	case KindInternational:
		return 8
	default:
		return 2
	}
}

func (k FlightKind) Label() string {
	switch k {
	case KindInternational:
		return "International"
	default:
		return "Domestic"
	}
}

type Flight struct {
	Number      string
	Origin      string
	Destination string
	Airline     string
	Date        time.Time
	Kind        FlightKind
	Price       decimal.Decimal
	Status      FlightStatus
}

// NewFlight prices the flight from the base fare and the kind multiplier.
// Status is fixed at construction: active only while the departure date is
// still strictly ahead of now. It is never re-derived afterwards.
func NewFlight(kind FlightKind, number, origin, destination string, basePrice decimal.Decimal, airline string, date, now time.Time) Flight {
	status := FlightStatusInactive
	if date.After(now) {
		status = FlightStatusActive
	}
	return Flight{
		Number:      number,
		Origin:      origin,
		Destination: destination,
		Airline:     airline,
		Date:        date,
		Kind:        kind,
		Price:       basePrice.Mul(kind.Multiplier()),
		Status:      status,
	}
}
