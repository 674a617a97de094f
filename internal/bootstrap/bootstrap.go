package bootstrap

import (
	"fmt"
	"io"

	"flightdesk/config"
	"flightdesk/internal/cli"
	"flightdesk/internal/domain"
	"flightdesk/internal/ident"
	"flightdesk/internal/service/booking"
	"flightdesk/internal/service/flights"
)

// Run assembles the services, loads the demo data when enabled and blocks
// in the menu loop until the user exits.
func Run(cfg *config.Config, in io.Reader, out io.Writer) error {
	refundRate, err := cfg.Booking.RefundRateDecimal()
	if err != nil {
		return err
	}

	airline := domain.NewAirline(cfg.App.AirlineName)
	flightSvc := flights.NewFlightService(airline)
	bookingSvc := booking.NewBookingService(ident.NewRandomGenerator(), refundRate, cfg.Booking.MinPassengerNameLen)

	if cfg.Seed.DemoData {
		fmt.Fprintln(out, "Flight booking system - loading demo data...")
		if err := Seed(flightSvc, bookingSvc); err != nil {
			return fmt.Errorf("seed demo data: %w", err)
		}
		fmt.Fprintln(out, "Demo data loaded!")
	}

	cli.NewMenu(in, out, flightSvc, bookingSvc, cfg.App.Currency).Run()
	return nil
}
