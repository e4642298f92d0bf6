package skyfare

import (
	"fmt"

	"github.com/travel-deals/travel-deal-recommendation-service/internal/domain"
)

// normalizeFare converts an upstream offering to the domain FlightFare.
// Negative prices are rejected; a negative carbon estimate is treated as
// unreported rather than inventing data.
func normalizeFare(f fareDTO) (domain.FlightFare, error) {
	if f.Price < 0 {
		return domain.FlightFare{}, fmt.Errorf("negative price %v for %s-%s", f.Price, f.Origin, f.Destination)
	}

	fare := domain.NewFlightFare(f.Price, f.Currency, f.Airlines, f.DurationMinutes)
	fare.OutboundDate = domain.NormalizeDate(f.OutboundDate)
	fare.ReturnDate = domain.NormalizeDate(f.ReturnDate)

	if f.CarbonKg != nil && *f.CarbonKg >= 0 {
		kg := *f.CarbonKg
		fare.CarbonKg = &kg
	}

	return fare, nil
}
