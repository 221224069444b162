package services

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"voyago/internal/config"
	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/internal/repositories"
)

type LinksServiceInterface interface {
	BuildFlightLink(origin, destination, checkIn, checkOut, travelerType string) string
	BuildHotelLink(city, checkIn, checkOut, travelerType string) string
	BuildServiceLinks(city, interests, checkIn, checkOut string) []response_models.ServiceLink
	BuildProtectionLinks(destination string) []response_models.ServiceLink
	BuildAll(req request_models.TripRequest) response_models.LinkSet
}

// LinksService holds the affiliate configuration injected once at startup;
// all methods are pure functions of their arguments plus that config, except
// for one cache-busting timestamp on the events link.
type LinksService struct {
	cfg *config.Config
}

func NewLinksService(cfg *config.Config) LinksServiceInterface {
	return &LinksService{cfg: cfg}
}

// passengerCounts maps traveler type to flight passenger counts. Unrecognized
// types book as a couple.
func passengerCounts(travelerType string) (adults, children int) {
	switch travelerType {
	case request_models.TravelerSolo:
		return 1, 0
	case request_models.TravelerFamily:
		return 2, 2
	case request_models.TravelerFriends:
		return 3, 0
	default:
		return 2, 0
	}
}

func hotelRooms(travelerType string) int {
	if travelerType == request_models.TravelerFriends {
		return 2
	}
	return 1
}

func cityCodeFor(city string) string {
	if code, ok := repositories.ResolveCityCode(city); ok {
		return code.Code
	}
	return repositories.SynthesizeCityCode(city)
}

func (l *LinksService) BuildFlightLink(origin, destination, checkIn, checkOut, travelerType string) string {
	if origin == "" {
		origin = "London"
	}
	from := cityCodeFor(origin)
	to := cityCodeFor(destination)
	adults, children := passengerCounts(travelerType)

	q := url.Values{}
	q.Set("type", "ROUNDTRIP")
	q.Set("adults", strconv.Itoa(adults))
	q.Set("children", strconv.Itoa(children))
	q.Set("cabinClass", "ECONOMY")
	q.Set("from", from)
	q.Set("to", to)
	q.Set("depart", checkIn)
	q.Set("return", checkOut)
	q.Set("aid", l.cfg.BookingAID)
	q.Set("label", l.cfg.BookingLabel)

	return fmt.Sprintf("https://flights.booking.com/flights/%s.CITY-%s.CITY/?%s", from, to, q.Encode())
}

func (l *LinksService) BuildHotelLink(city, checkIn, checkOut, travelerType string) string {
	adults, children := passengerCounts(travelerType)

	q := url.Values{}
	q.Set("ss", city)
	q.Set("checkin", checkIn)
	q.Set("checkout", checkOut)
	q.Set("group_adults", strconv.Itoa(adults))
	q.Set("group_children", strconv.Itoa(children))
	q.Set("no_rooms", strconv.Itoa(hotelRooms(travelerType)))
	q.Set("nflt", "review_score=80")
	q.Set("aid", l.cfg.BookingAID)
	q.Set("label", l.cfg.BookingLabel)

	return "https://www.booking.com/searchresults.html?" + q.Encode()
}

// withParams appends query parameters to a partner base URL that may already
// carry its own affiliate path or query string.
func withParams(base string, params url.Values) string {
	if len(params) == 0 {
		return base
	}
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + params.Encode()
}

func (l *LinksService) BuildServiceLinks(city, interests, checkIn, checkOut string) []response_models.ServiceLink {
	cityParam := url.Values{"city": {city}}

	eventParams := url.Values{"q": {city}}
	// Cache buster keeps the events partner from serving a stale redirect.
	eventParams.Set("t", strconv.FormatInt(time.Now().Unix(), 10))

	attractionParams := url.Values{"q": {city}}
	if checkIn != "" {
		attractionParams.Set("date", checkIn)
	}

	rentalParams := url.Values{"location": {city}}
	if checkIn != "" && checkOut != "" {
		rentalParams.Set("from", checkIn)
		rentalParams.Set("to", checkOut)
	}

	return []response_models.ServiceLink{
		{
			Title:       "📶 eSIM for " + city,
			URL:         withParams(l.cfg.AiraloLink, cityParam),
			Description: "Instant mobile data, no roaming charges, installed before you land.",
		},
		{
			Title:       "🎤 Events & Concerts",
			URL:         withParams(l.cfg.TicketNetworkLink, eventParams),
			Description: "Concerts, sports and shows in " + city + " during your stay.",
		},
		{
			Title:       "🎟️ Attractions & Tours",
			URL:         withParams(l.cfg.TiqetsLink, attractionParams),
			Description: "Skip-the-line tickets for museums and top sights.",
		},
		{
			Title:       "🚗 Car Rental",
			URL:         withParams(l.cfg.LocalrentLink, rentalParams),
			Description: "Local rental companies, no deposit on most cars.",
		},
	}
}

func (l *LinksService) BuildProtectionLinks(destination string) []response_models.ServiceLink {
	destParam := url.Values{}
	if destination != "" {
		destParam.Set("destination", destination)
	}

	return []response_models.ServiceLink{
		{
			Title:       "🛡️ Travel Insurance",
			URL:         withParams(l.cfg.EktaInsuranceLink, destParam),
			Description: "Medical and trip coverage from €1/day.",
		},
		{
			Title:       "✈️ Flight Delay Compensation",
			URL:         l.cfg.AirhelpLink,
			Description: "Up to €600 for delayed or cancelled EU flights.",
		},
		{
			Title:       "💶 Compensation Check",
			URL:         l.cfg.CompensairLink,
			Description: "Free check whether a past flight qualifies for a payout.",
		},
		{
			Title:       "📱 Backup eSIM",
			URL:         withParams(l.cfg.YesimLink, destParam),
			Description: "Second data plan in case the primary eSIM has no local coverage.",
		},
	}
}

func (l *LinksService) BuildAll(req request_models.TripRequest) response_models.LinkSet {
	travelerType := req.NormalizedTravelerType()
	return response_models.LinkSet{
		FlightLink:      l.BuildFlightLink(req.OriginCity, req.DestinationCity, req.CheckIn, req.CheckOut, travelerType),
		HotelLink:       l.BuildHotelLink(req.DestinationCity, req.CheckIn, req.CheckOut, travelerType),
		ServiceLinks:    l.BuildServiceLinks(req.DestinationCity, req.Interests, req.CheckIn, req.CheckOut),
		ProtectionLinks: l.BuildProtectionLinks(req.DestinationCity),
	}
}
