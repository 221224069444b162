package services

import (
	"fmt"
	"strings"
	"time"

	"voyago/internal/models/request_models"
	mem "voyago/pkg/memcache"
	"voyago/pkg/utils"
)

// SessionTTL bounds how long a half-finished conversation survives.
const SessionTTL = 30 * time.Minute

// SessionStep is the question the bot is currently waiting on.
type SessionStep int

const (
	StepOrigin SessionStep = iota
	StepDestination
	StepCheckIn
	StepCheckOut
	StepTravelerType
	StepInterests
	StepBudget
)

// TripSession is one in-flight conversation, keyed by Telegram chat ID.
type TripSession struct {
	Step    SessionStep
	Request request_models.TripRequest
}

type SessionServiceInterface interface {
	// Start begins (or restarts) a conversation and returns the first question.
	Start(chatID int64) string
	// Advance consumes one user answer. It returns the next question to send,
	// and done=true with the completed request once every field is collected.
	// Unknown chat IDs yield ErrSessionNotFound.
	Advance(chatID int64, input string) (reply string, done bool, req request_models.TripRequest, err error)
	Cancel(chatID int64)
	Active() int
	Sweep() int
}

type SessionService struct {
	sessions *mem.Store[int64, TripSession]
}

func NewSessionService() SessionServiceInterface {
	return &SessionService{
		sessions: mem.NewStore[int64, TripSession](SessionTTL),
	}
}

const (
	askOrigin       = "✈️ Where are you flying from? (city name)"
	askDestination  = "🌍 Where do you want to go?"
	askCheckIn      = "📅 When does your trip start? (YYYY-MM-DD)"
	askCheckOut     = "📅 When does it end? (YYYY-MM-DD)"
	askTravelerType = "👥 Who is traveling? (Solo / Couple / Family / Friends)"
	askInterests    = "🎯 What are you into? (Culture, Food, Nature, Beach, Nightlife)"
	askBudget       = "💰 What's your total budget? (e.g. €500, or 'skip')"
)

func (s *SessionService) Start(chatID int64) string {
	s.sessions.Put(chatID, TripSession{Step: StepOrigin})
	return askOrigin
}

func (s *SessionService) Advance(chatID int64, input string) (string, bool, request_models.TripRequest, error) {
	sess, ok := s.sessions.Get(chatID)
	if !ok {
		return "", false, request_models.TripRequest{}, utils.ErrSessionNotFound
	}

	input = strings.TrimSpace(input)
	switch sess.Step {
	case StepOrigin:
		if input == "" {
			s.sessions.Touch(chatID)
			return askOrigin, false, request_models.TripRequest{}, nil
		}
		sess.Request.OriginCity = input
		sess.Step = StepDestination
		s.sessions.Put(chatID, sess)
		return askDestination, false, request_models.TripRequest{}, nil

	case StepDestination:
		if input == "" {
			s.sessions.Touch(chatID)
			return askDestination, false, request_models.TripRequest{}, nil
		}
		sess.Request.DestinationCity = input
		sess.Step = StepCheckIn
		s.sessions.Put(chatID, sess)
		return askCheckIn, false, request_models.TripRequest{}, nil

	case StepCheckIn:
		if _, err := utils.ParseTripDate(input); err != nil {
			s.sessions.Touch(chatID)
			return "That doesn't look like a date. " + askCheckIn, false, request_models.TripRequest{}, nil
		}
		sess.Request.CheckIn = input
		sess.Step = StepCheckOut
		s.sessions.Put(chatID, sess)
		return askCheckOut, false, request_models.TripRequest{}, nil

	case StepCheckOut:
		out, err := utils.ParseTripDate(input)
		if err != nil {
			s.sessions.Touch(chatID)
			return "That doesn't look like a date. " + askCheckOut, false, request_models.TripRequest{}, nil
		}
		in, _ := utils.ParseTripDate(sess.Request.CheckIn)
		if !out.After(in) {
			s.sessions.Touch(chatID)
			return fmt.Sprintf("The end date must be after %s. %s", sess.Request.CheckIn, askCheckOut),
				false, request_models.TripRequest{}, nil
		}
		sess.Request.CheckOut = input
		sess.Step = StepTravelerType
		s.sessions.Put(chatID, sess)
		return askTravelerType, false, request_models.TripRequest{}, nil

	case StepTravelerType:
		sess.Request.TravelerType = input
		sess.Step = StepInterests
		s.sessions.Put(chatID, sess)
		return askInterests, false, request_models.TripRequest{}, nil

	case StepInterests:
		sess.Request.Interests = input
		sess.Step = StepBudget
		s.sessions.Put(chatID, sess)
		return askBudget, false, request_models.TripRequest{}, nil

	case StepBudget:
		if !strings.EqualFold(input, "skip") {
			sess.Request.Budget = input
		}
		req := sess.Request
		s.sessions.Delete(chatID)
		return "", true, req, nil
	}

	// Unreachable with a well-formed session.
	s.sessions.Delete(chatID)
	return "", false, request_models.TripRequest{}, utils.ErrSessionNotFound
}

func (s *SessionService) Cancel(chatID int64) {
	s.sessions.Delete(chatID)
}

func (s *SessionService) Active() int {
	return s.sessions.Len()
}

func (s *SessionService) Sweep() int {
	return s.sessions.Sweep()
}
