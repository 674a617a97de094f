package flights

import (
	"errors"
	"strings"
	"time"

	"flightdesk/internal/domain"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

var (
	ErrInvalidPrice = errors.New("base fare must be a positive number")
	ErrInvalidDate  = errors.New("date must use the YYYY-MM-DD format")
	ErrInvalidKind  = errors.New("flight type must be 1 (Domestic) or 2 (International)")
)

type FlightUseCase interface {
	List() []domain.Flight
	ListActive() []domain.Flight
	Find(number string) (domain.Flight, bool)
	Add(input AddFlightInput) (domain.Flight, error)
	Stats() Stats
}

// AddFlightInput carries the raw prompt answers. Add owns all validation so
// a bad field never leaves partial state behind.
type AddFlightInput struct {
	Number      string
	Origin      string
	Destination string
	BasePrice   string
	Airline     string
	Date        string
	Kind        string
}

type Stats struct {
	Airline       string
	Total         int
	Active        int
	Domestic      int
	International int
}

type FlightService struct {
	airline *domain.Airline
	now     func() time.Time
}

func NewFlightService(airline *domain.Airline) *FlightService {
	return &FlightService{airline: airline, now: time.Now}
}

func (s *FlightService) List() []domain.Flight {
	return s.airline.Flights()
}

// ListActive filters on the status fixed at construction time; the booking
// path re-checks the departure date on its own.
func (s *FlightService) ListActive() []domain.Flight {
	var active []domain.Flight
	for _, f := range s.airline.Flights() {
		if f.Status == domain.FlightStatusActive {
			active = append(active, f)
		}
	}
	return active
}

func (s *FlightService) Find(number string) (domain.Flight, bool) {
	return s.airline.FindByNumber(number)
}

func (s *FlightService) Add(input AddFlightInput) (domain.Flight, error) {
	basePrice, err := decimal.NewFromString(strings.TrimSpace(input.BasePrice))
	if err != nil || !basePrice.IsPositive() {
		return domain.Flight{}, ErrInvalidPrice
	}

	date, err := time.Parse(dateLayout, strings.TrimSpace(input.Date))
	if err != nil {
		return domain.Flight{}, ErrInvalidDate
	}

	var kind domain.FlightKind
	switch strings.TrimSpace(input.Kind) {
	case "1":
		kind = domain.KindDomestic
	case "2":
		kind = domain.KindInternational
	default:
		return domain.Flight{}, ErrInvalidKind
	}

	flight := domain.NewFlight(
		kind,
		strings.ToUpper(strings.TrimSpace(input.Number)),
		strings.TrimSpace(input.Origin),
		strings.TrimSpace(input.Destination),
		basePrice,
		strings.TrimSpace(input.Airline),
		date,
		s.now(),
	)
	if err := s.airline.AddFlight(flight); err != nil {
		return domain.Flight{}, err
	}
	return flight, nil
}

func (s *FlightService) Stats() Stats {
	stats := Stats{Airline: s.airline.Name}
	for _, f := range s.airline.Flights() {
		stats.Total++
		if f.Status == domain.FlightStatusActive {
			stats.Active++
		}
		switch f.Kind {
		case domain.KindInternational:
			stats.International++
		default:
			stats.Domestic++
		}
	}
	return stats
}

var _ FlightUseCase = (*FlightService)(nil)
