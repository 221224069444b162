package services

import (
	"fmt"
	"strings"

	"voyago/internal/models/request_models"
	"voyago/internal/repositories"
	"voyago/pkg/utils"
)

// FallbackServiceInterface renders the guaranteed guide text used when no
// generated result survives validation.
type FallbackServiceInterface interface {
	Render(req request_models.TripRequest, budget utils.BudgetInfo, duration int) string
}

type FallbackService struct {
	library repositories.GuideLibrary
}

func NewFallbackService(library repositories.GuideLibrary) FallbackServiceInterface {
	return &FallbackService{library: library}
}

// Render returns the static city guide when the destination is known,
// otherwise a generic template built from the request fields. Always
// non-empty.
func (f *FallbackService) Render(req request_models.TripRequest, budget utils.BudgetInfo, duration int) string {
	if tpl, ok := f.library.Find(req.DestinationCity); ok {
		return f.renderStatic(tpl, req, budget, duration)
	}
	return f.renderGeneric(req, budget, duration)
}

// matchedInterest returns the first recognized interest keyword present in
// the free-text interests field, in the same fixed order the prompt uses.
func matchedInterest(interests string) string {
	lower := strings.ToLower(interests)
	for _, key := range interestOrder {
		if strings.Contains(lower, key) {
			return key
		}
	}
	return ""
}

func (f *FallbackService) renderStatic(tpl *repositories.GuideTemplate, req request_models.TripRequest, budget utils.BudgetInfo, duration int) string {
	interest := matchedInterest(req.Interests)

	overview := tpl.Overview
	if extra, ok := tpl.InterestOverviews[interest]; ok {
		overview += " " + extra
	} else if extra, ok := tpl.InterestOverviews["default"]; ok {
		overview += " " + extra
	}

	days, ok := tpl.Itineraries[interest]
	if !ok {
		days = tpl.Itineraries["default"]
	}
	if len(days) > duration {
		days = days[:duration]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🌍 %s TRAVEL GUIDE\n\n", strings.ToUpper(tpl.Name))
	b.WriteString(overview)
	b.WriteString("\n\n📅 DAY-BY-DAY ITINERARY\n")
	for _, day := range days {
		b.WriteString(day)
		b.WriteString("\n\n")
	}
	if duration > len(days) && tpl.ExtraDay != "" {
		b.WriteString(tpl.ExtraDay)
		fmt.Fprintf(&b, "\nDays %d-%d: Revisit favorites, day trips, or relaxed neighborhood wandering.\n\n", len(days)+2, duration)
	}

	fmt.Fprintf(&b, "💰 BUDGET BREAKDOWN (%s total, ~%s/day)\n%s\n\n",
		budget.Display, budget.DisplayDaily, levelSection(tpl.BudgetBreakdown, budget.Level))
	fmt.Fprintf(&b, "💡 MONEY-SAVING TIPS\n%s\n\n", levelSection(tpl.MoneySavingTips, budget.Level))
	fmt.Fprintf(&b, "🍽️ LOCAL FOOD\n%s\n\n", levelSection(tpl.LocalFood, budget.Level))
	fmt.Fprintf(&b, "🤫 LOCAL SECRET\n%s\n\n", tpl.LocalSecret)
	fmt.Fprintf(&b, "ℹ️ PRACTICAL INFO\n%s", tpl.PracticalInfo)

	return b.String()
}

func levelSection(sections map[string]string, level string) string {
	if text, ok := sections[level]; ok {
		return text
	}
	// Mid-range text reads sensibly for any level if the tier is missing.
	if text, ok := sections[utils.BudgetLevelMidRange]; ok {
		return text
	}
	for _, text := range sections {
		return text
	}
	return ""
}

// genericInterestLines drive the interest-branching phrasing of the generic
// template for cities outside the library.
var genericInterestLines = map[string]string{
	"culture":   "Start each day at a major museum or historic site before the crowds, and book timed tickets online where offered.",
	"food":      "Build days around the central food market, then follow where locals queue at lunch.",
	"nature":    "Ask your accommodation for the nearest green escape; city parks and riverside paths are usually free.",
	"beach":     "Head to the most popular beach early, then move along the coast as the day crowds arrive.",
	"nightlife": "Nightlife districts wake up late; eat where locals eat first, then follow the noise.",
}

func (f *FallbackService) renderGeneric(req request_models.TripRequest, budget utils.BudgetInfo, duration int) string {
	city := req.DestinationCity
	travelerType := req.NormalizedTravelerType()
	if travelerType == "" {
		travelerType = request_models.TravelerCouple
	}

	interestLine := "Mix the city's signature sights with unplanned wandering; the best finds are rarely in the top-ten lists."
	if line, ok := genericInterestLines[matchedInterest(req.Interests)]; ok {
		interestLine = line
	}

	var perDay [4]int
	switch budget.Level {
	case utils.BudgetLevelBudget:
		perDay = [4]int{30, 15, 5, 10}
	case utils.BudgetLevelLuxury:
		perDay = [4]int{150, 70, 25, 50}
	default:
		perDay = [4]int{70, 35, 8, 25}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🌍 %s TRAVEL GUIDE\n\n", strings.ToUpper(city))
	fmt.Fprintf(&b, "%s is waiting for you! Here is a %d-day %s plan for a %s trip.\n\n",
		city, duration, budget.Level, travelerType)

	b.WriteString("📅 DAY-BY-DAY ITINERARY\n")
	for day := 1; day <= duration; day++ {
		switch day {
		case 1:
			fmt.Fprintf(&b, "Day 1: Morning - Old town and main square of %s on foot. Afternoon - The city's most famous landmark. Evening - Dinner in the liveliest central neighborhood.\n", city)
		case 2:
			fmt.Fprintf(&b, "Day 2: Morning - Top museum or viewpoint in %s. Afternoon - Local market and side streets. Evening - %s\n", city, interestLine)
		default:
			fmt.Fprintf(&b, "Day %d: Pick a neighborhood you have not seen, find its market, its park and its best-reviewed lunch spot, and let the day unfold.\n", day)
		}
	}

	fmt.Fprintf(&b, "\n💰 BUDGET BREAKDOWN (%s total, ~%s/day)\n", budget.Display, budget.DisplayDaily)
	fmt.Fprintf(&b, "• Accommodation: ~€%d/night\n• Food: ~€%d/day\n• Transport: ~€%d/day\n• Activities: ~€%d/day\n\n",
		perDay[0], perDay[1], perDay[2], perDay[3])

	b.WriteString("💡 TIPS\n")
	fmt.Fprintf(&b, "• %s\n", interestLine)
	b.WriteString("• Free walking tours exist in almost every city; tip what it was worth.\n")
	b.WriteString("• A transit day pass usually beats single tickets from the second ride.\n\n")

	fmt.Fprintf(&b, "ℹ️ Check visa rules and local holidays for %s before you travel.", city)
	return b.String()
}
