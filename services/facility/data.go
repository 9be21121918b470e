package facility

import (
	"context"
	"fmt"
	"time"

	"cryoflow/models"
)

const defaultRefreshDelay = 1500 * time.Millisecond

// DefaultLoader returns a loader that stands in for the upstream facility
// feed: it waits the given delay, then returns a fresh copy of the center
// dataset.
func DefaultLoader(delay time.Duration) Loader {
	return func(ctx context.Context) (map[string]models.FacilityRecord, error) {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		return SeedCenters(), nil
	}
}

func bookingLink(center, slug string) string {
	return fmt.Sprintf("https://hirefrederick.com/us-cryotherapy-%s/%s", center, slug)
}

func centerLink(center string) string {
	return fmt.Sprintf("https://hirefrederick.com/us-cryotherapy-%s", center)
}

// SeedCenters builds the center dataset. Keys are lower-case center names as
// the platform supplies them.
func SeedCenters() map[string]models.FacilityRecord {
	return map[string]models.FacilityRecord{
		"davis": {
			Services: []models.ServiceOffering{
				{Name: "whole-body cryotherapy", BookingLink: bookingLink("davis", "whole-body")},
				{Name: "localized cryotherapy", BookingLink: bookingLink("davis", "localized")},
				{Name: "cryo facial", BookingLink: bookingLink("davis", "facial")},
				{Name: "compression therapy", BookingLink: bookingLink("davis", "compression")},
			},
			GeneralBookingLink: centerLink("davis"),
			BusinessLink:       centerLink("davis") + "/contact",
			Hours:              "Mon-Fri 10am-7pm, Sat-Sun 10am-5pm",
		},
		"roseville": {
			Services: []models.ServiceOffering{
				{Name: "whole-body cryotherapy", BookingLink: bookingLink("roseville", "whole-body")},
				{Name: "localized cryotherapy", BookingLink: bookingLink("roseville", "localized")},
				{Name: "infrared sauna", BookingLink: bookingLink("roseville", "sauna")},
			},
			GeneralBookingLink: centerLink("roseville"),
			BusinessLink:       centerLink("roseville") + "/contact",
			Hours:              "Mon-Sat 9am-7pm, Sun 10am-4pm",
		},
		"reno": {
			Services: []models.ServiceOffering{
				{Name: "whole-body cryotherapy", BookingLink: bookingLink("reno", "whole-body")},
				{Name: "cryo facial", BookingLink: bookingLink("reno", "facial")},
				{Name: "compression therapy", BookingLink: bookingLink("reno", "compression")},
			},
			GeneralBookingLink: centerLink("reno"),
			BusinessLink:       centerLink("reno") + "/contact",
			Hours:              "Mon-Fri 9am-8pm, Sat-Sun 9am-5pm",
		},
	}
}
