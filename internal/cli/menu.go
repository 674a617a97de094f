package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"flightdesk/internal/domain"
	"flightdesk/internal/money"
	"flightdesk/internal/service/booking"
	"flightdesk/internal/service/flights"
)

const dateLayout = "2006-01-02"

// Menu is the interactive surface over the two use cases. It reads line by
// line from in and writes everything, prompts included, to out.
type Menu struct {
	in       *bufio.Scanner
	out      io.Writer
	flights  flights.FlightUseCase
	bookings booking.BookingUseCase
	currency string
}

func NewMenu(in io.Reader, out io.Writer, flightSvc flights.FlightUseCase, bookingSvc booking.BookingUseCase, currency string) *Menu {
	return &Menu{
		in:       bufio.NewScanner(in),
		out:      out,
		flights:  flightSvc,
		bookings: bookingSvc,
		currency: currency,
	}
}

// Run drives the menu until the user picks exit or input runs out. Every
// operation recovers locally; an error never stops the loop.
func (m *Menu) Run() {
	for {
		m.printMenu()
		choice, ok := m.prompt("\nChoose an option (1-7): ")
		if !ok {
			return
		}
		switch strings.TrimSpace(choice) {
		case "1":
			m.bookTicket()
		case "2":
			m.cancelBooking()
		case "3":
			m.listBookings()
		case "4":
			m.addFlight()
		case "5":
			m.listFlights()
		case "6":
			m.systemStatus()
		case "7":
			fmt.Fprintln(m.out, "\nThank you for using the flight booking system!")
			return
		default:
			fmt.Fprintln(m.out, "Invalid choice! Please pick a number between 1 and 7.")
		}
	}
}

func (m *Menu) printMenu() {
	fmt.Fprintln(m.out, "\n"+strings.Repeat("=", 50))
	fmt.Fprintln(m.out, "Flight Booking System")
	fmt.Fprintln(m.out, strings.Repeat("=", 50))
	fmt.Fprintln(m.out, "1. Book a ticket")
	fmt.Fprintln(m.out, "2. Cancel a booking")
	fmt.Fprintln(m.out, "3. List bookings")
	fmt.Fprintln(m.out, "4. Add a new flight")
	fmt.Fprintln(m.out, "5. List flights")
	fmt.Fprintln(m.out, "6. System status")
	fmt.Fprintln(m.out, "7. Exit")
}

// prompt prints the label and reads one line. ok is false once input is
// exhausted, which aborts the running operation.
func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		return "", false
	}
	return m.in.Text(), true
}

func (m *Menu) bookTicket() {
	active := m.flights.ListActive()
	if len(active) == 0 {
		fmt.Fprintln(m.out, "No active flights available for booking!")
		return
	}

	fmt.Fprintln(m.out, "\nAvailable flights:")
	for i, f := range active {
		fmt.Fprintf(m.out, "%d. %s\n", i+1, m.formatFlight(f))
	}

	raw, ok := m.prompt("\nSelect a flight (number): ")
	if !ok {
		return
	}
	choice, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		fmt.Fprintln(m.out, "Invalid input!")
		return
	}
	if choice < 1 || choice > len(active) {
		fmt.Fprintln(m.out, "Invalid selection!")
		return
	}
	flight := active[choice-1]
	fmt.Fprintf(m.out, "\nSelected flight: %s - %s -> %s (%s)\n",
		flight.Number, flight.Origin, flight.Destination, money.Format(flight.Price, m.currency))

	name, ok := m.prompt("\nPassenger name: ")
	if !ok {
		return
	}

	b, err := m.bookings.Book(flight, name)
	if err != nil {
		fmt.Fprintf(m.out, "Booking failed: %v\n", err)
		return
	}
	fmt.Fprintln(m.out, "\nBooking created!")
	fmt.Fprintf(m.out, "Booking reference: %s\n", b.ID)
	fmt.Fprintf(m.out, "Amount due: %s\n", money.Format(b.Price, m.currency))
}

func (m *Menu) cancelBooking() {
	if m.bookings.Counts().Total == 0 {
		fmt.Fprintln(m.out, "There are no bookings in the system!")
		return
	}

	raw, ok := m.prompt("Booking reference to cancel: ")
	if !ok {
		return
	}
	id := strings.ToUpper(strings.TrimSpace(raw))

	b, err := m.bookings.FindActive(id)
	if err != nil {
		fmt.Fprintln(m.out, "No active booking found with that reference!")
		return
	}
	fmt.Fprintln(m.out, "\nBooking details:")
	fmt.Fprintln(m.out, m.formatBooking(b))

	confirm, ok := m.prompt("\nReally cancel this booking? (y/n): ")
	if !ok {
		return
	}
	if strings.ToLower(strings.TrimSpace(confirm)) != "y" {
		fmt.Fprintln(m.out, "Cancellation aborted by user.")
		return
	}

	_, refund, err := m.bookings.Cancel(id)
	if err != nil {
		fmt.Fprintln(m.out, "No active booking found with that reference!")
		return
	}
	fmt.Fprintln(m.out, "\nBooking cancelled!")
	fmt.Fprintf(m.out, "Refund amount: %s\n", money.Format(refund, m.currency))
}

func (m *Menu) listBookings() {
	all := m.bookings.List()
	if len(all) == 0 {
		fmt.Fprintln(m.out, "There are no bookings in the system!")
		return
	}

	var active, cancelled []domain.Booking
	for _, b := range all {
		if b.Status == domain.BookingStatusActive {
			active = append(active, b)
		} else {
			cancelled = append(cancelled, b)
		}
	}

	fmt.Fprintf(m.out, "\nBookings (%d):\n", len(all))
	fmt.Fprintln(m.out, strings.Repeat("=", 50))

	fmt.Fprintf(m.out, "\nActive bookings (%d):\n", len(active))
	for _, b := range active {
		fmt.Fprintf(m.out, "\n%s\n", m.formatBooking(b))
	}

	if len(cancelled) > 0 {
		fmt.Fprintf(m.out, "\nCancelled bookings (%d):\n", len(cancelled))
		for _, b := range cancelled {
			fmt.Fprintf(m.out, "\n%s\n", m.formatBooking(b))
		}
	}
}

func (m *Menu) addFlight() {
	fmt.Fprintln(m.out, "\nAdd a new flight:")

	var input flights.AddFlightInput
	prompts := []struct {
		label string
		dst   *string
	}{
		{"Flight number: ", &input.Number},
		{"Origin airport: ", &input.Origin},
		{"Destination: ", &input.Destination},
		{"Base fare: ", &input.BasePrice},
		{"Airline: ", &input.Airline},
		{"Date (YYYY-MM-DD): ", &input.Date},
		{"Type (1 - Domestic, 2 - International): ", &input.Kind},
	}
	for _, p := range prompts {
		v, ok := m.prompt(p.label)
		if !ok {
			return
		}
		*p.dst = v
	}

	flight, err := m.flights.Add(input)
	if err != nil {
		fmt.Fprintf(m.out, "Could not add flight: %v\n", err)
		return
	}
	fmt.Fprintf(m.out, "\nFlight added: %s\n", m.formatFlight(flight))
}

func (m *Menu) listFlights() {
	all := m.flights.List()
	if len(all) == 0 {
		fmt.Fprintln(m.out, "There are no flights in the system!")
		return
	}

	fmt.Fprintf(m.out, "\nFlights (%d):\n", len(all))
	fmt.Fprintln(m.out, strings.Repeat("=", 50))
	for i, f := range all {
		fmt.Fprintf(m.out, "%d. %s\n", i+1, m.formatFlight(f))
	}
}

func (m *Menu) systemStatus() {
	stats := m.flights.Stats()
	counts := m.bookings.Counts()

	fmt.Fprintln(m.out, "\nSystem status:")
	fmt.Fprintln(m.out, strings.Repeat("=", 50))
	fmt.Fprintf(m.out, "Airline: %s\n", stats.Airline)
	fmt.Fprintf(m.out, "Flights: %d\n", stats.Total)
	fmt.Fprintf(m.out, "Active flights: %d\n", stats.Active)
	fmt.Fprintf(m.out, "Domestic flights: %d\n", stats.Domestic)
	fmt.Fprintf(m.out, "International flights: %d\n", stats.International)
	fmt.Fprintf(m.out, "\nBookings: %d\n", counts.Total)
	fmt.Fprintf(m.out, "Active bookings: %d\n", counts.Active)
	fmt.Fprintf(m.out, "Cancelled bookings: %d\n", counts.Cancelled)
}

func (m *Menu) formatFlight(f domain.Flight) string {
	return fmt.Sprintf("[%s] %s | %s -> %s\n   Type: %s (%dh) | Date: %s | Price: %s",
		f.Status, f.Number, f.Origin, f.Destination,
		f.Kind.Label(), f.Kind.FlightHours(), f.Date.Format(dateLayout), money.Format(f.Price, m.currency))
}

func (m *Menu) formatBooking(b domain.Booking) string {
	return fmt.Sprintf("Booking: %s | Passenger: %s\n   Flight: %s (%s -> %s)\n   Date: %s | Price: %s | Status: %s",
		b.ID, b.Passenger, b.FlightNumber, b.Origin, b.Destination,
		b.Date.Format(dateLayout), money.Format(b.Price, m.currency), b.Status)
}
