package request_models

import (
	"strings"

	"voyago/pkg/utils"
)

// Traveler types drive passenger-count derivation in the link builder.
const (
	TravelerSolo    = "Solo"
	TravelerCouple  = "Couple"
	TravelerFamily  = "Family"
	TravelerFriends = "Friends"
)

type TripRequest struct {
	DestinationCity string `json:"destination_city" binding:"required"`
	OriginCity      string `json:"origin_city,omitempty"`
	TravelerType    string `json:"traveler_type"`
	Interests       string `json:"interests"`
	CheckIn         string `json:"check_in" binding:"required"`
	CheckOut        string `json:"check_out" binding:"required"`
	Budget          string `json:"budget,omitempty"`
}

// Validate checks the fields binding tags cannot: parseable dates and a
// check-out strictly after check-in.
func (t TripRequest) Validate() error {
	if strings.TrimSpace(t.DestinationCity) == "" {
		return utils.ErrInvalidTripRequest
	}
	in, errIn := utils.ParseTripDate(t.CheckIn)
	out, errOut := utils.ParseTripDate(t.CheckOut)
	if errIn != nil || errOut != nil {
		return utils.ErrInvalidTripRequest
	}
	if !out.After(in) {
		return utils.ErrInvalidDateRange
	}
	return nil
}

// NormalizedTravelerType maps free-form input onto one of the four known
// traveler types. Unrecognized values stay as-is; the link builder treats
// them as the default couple booking.
func (t TripRequest) NormalizedTravelerType() string {
	switch strings.ToLower(strings.TrimSpace(t.TravelerType)) {
	case "solo", "single", "alone":
		return TravelerSolo
	case "couple", "pair":
		return TravelerCouple
	case "family", "family with kids":
		return TravelerFamily
	case "friends", "group":
		return TravelerFriends
	}
	return t.TravelerType
}
