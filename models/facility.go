package models

// ServiceOffering is one bookable service at a center.
type ServiceOffering struct {
	Name        string `json:"name"`
	BookingLink string `json:"bookingLink"`
}

// FacilityRecord describes one center. Immutable within a cache epoch; the
// facility store replaces records wholesale on refresh.
type FacilityRecord struct {
	Services           []ServiceOffering `json:"services"`
	GeneralBookingLink string            `json:"generalBookingLink"`
	BusinessLink       string            `json:"businessLink"`
	Hours              string            `json:"hours"`
}

// FindService returns the offering whose name equals the given (lower-cased)
// service name.
func (f FacilityRecord) FindService(name string) (ServiceOffering, bool) {
	for _, svc := range f.Services {
		if svc.Name == name {
			return svc, true
		}
	}
	return ServiceOffering{}, false
}

// ServiceNames returns the offered service names in display order.
func (f FacilityRecord) ServiceNames() []string {
	names := make([]string, 0, len(f.Services))
	for _, svc := range f.Services {
		names = append(names, svc.Name)
	}
	return names
}
