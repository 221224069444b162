package response_models

type ServiceLink struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// LinkSet bundles every partner link produced for a trip.
type LinkSet struct {
	FlightLink      string        `json:"flight_link"`
	HotelLink       string        `json:"hotel_link"`
	ServiceLinks    []ServiceLink `json:"service_links"`
	ProtectionLinks []ServiceLink `json:"protection_links"`
}
