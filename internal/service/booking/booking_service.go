package booking

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"flightdesk/internal/domain"
	"flightdesk/internal/ident"

	"github.com/shopspring/decimal"
)

var (
	ErrPassengerNameTooShort = errors.New("passenger name is too short")
	ErrFlightDeparted        = errors.New("flight has already departed")
	ErrBookingNotFound       = errors.New("no active booking with that reference")
)

type BookingUseCase interface {
	Book(flight domain.Flight, passenger string) (domain.Booking, error)
	FindActive(id string) (domain.Booking, error)
	Cancel(id string) (domain.Booking, decimal.Decimal, error)
	List() []domain.Booking
	Counts() Counts
}

type Counts struct {
	Total     int
	Active    int
	Cancelled int
}

// BookingService owns every booking ever made in the process plus the set
// of references handed out, so a reference is never reused even after
// cancellation.
type BookingService struct {
	bookings   []domain.Booking
	usedRefs   map[string]struct{}
	refs       ident.Generator
	refundRate decimal.Decimal
	minNameLen int
	now        func() time.Time
}

func NewBookingService(refs ident.Generator, refundRate decimal.Decimal, minNameLen int) *BookingService {
	return &BookingService{
		usedRefs:   make(map[string]struct{}),
		refs:       refs,
		refundRate: refundRate,
		minNameLen: minNameLen,
		now:        time.Now,
	}
}

func (s *BookingService) Book(flight domain.Flight, passenger string) (domain.Booking, error) {
	passenger = strings.TrimSpace(passenger)
	if utf8.RuneCountInString(passenger) < s.minNameLen {
		return domain.Booking{}, ErrPassengerNameTooShort
	}
	// The status cached on the flight is display-only; the departure date
	// decides whether the flight can still be booked.
	if !flight.Date.After(s.now()) {
		return domain.Booking{}, ErrFlightDeparted
	}

	id, err := s.nextRef()
	if err != nil {
		return domain.Booking{}, err
	}
	b := domain.NewBooking(id, flight, passenger)
	s.bookings = append(s.bookings, b)
	return b, nil
}

// nextRef draws candidate references until one clears the used set, then
// records it as taken.
func (s *BookingService) nextRef() (string, error) {
	for {
		id, err := s.refs.BookingRef()
		if err != nil {
			return "", err
		}
		if _, taken := s.usedRefs[id]; !taken {
			s.usedRefs[id] = struct{}{}
			return id, nil
		}
	}
}

func (s *BookingService) FindActive(id string) (domain.Booking, error) {
	i := s.activeIndex(id)
	if i < 0 {
		return domain.Booking{}, ErrBookingNotFound
	}
	return s.bookings[i], nil
}

// Cancel flips the matching active booking to cancelled and returns the
// refund. A second cancel of the same reference reports not found.
func (s *BookingService) Cancel(id string) (domain.Booking, decimal.Decimal, error) {
	i := s.activeIndex(id)
	if i < 0 {
		return domain.Booking{}, decimal.Zero, ErrBookingNotFound
	}
	s.bookings[i].Status = domain.BookingStatusCancelled
	b := s.bookings[i]
	return b, b.Price.Mul(s.refundRate), nil
}

func (s *BookingService) activeIndex(id string) int {
	for i, b := range s.bookings {
		if b.ID == id && b.Status == domain.BookingStatusActive {
			return i
		}
	}
	return -1
}

func (s *BookingService) List() []domain.Booking {
	out := make([]domain.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}

func (s *BookingService) Counts() Counts {
	counts := Counts{Total: len(s.bookings)}
	for _, b := range s.bookings {
		if b.Status == domain.BookingStatusActive {
			counts.Active++
		} else {
			counts.Cancelled++
		}
	}
	return counts
}

var _ BookingUseCase = (*BookingService)(nil)
