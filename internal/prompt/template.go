// README: Prompt templates and placeholder substitution for itinerary generation.
package prompt

import "regexp"

// FreeText is the template used when the user picked a concrete place.
const FreeText = `Generate a travel plan for Location: {location}, for {totalDays} days and {totalNight} nights, for {traveler} with a {budget} budget, preferring {accommodation} stays and a {activity} activity pace, travelling {startDate} to {endDate}. Include flight details with airline name, approximate price and a booking url; a list of hotel options each with name, address, pricePerNight, rating, latitude/longitude coordinates, a short description and a booking url; and a day-by-day itinerary for {totalDays} days where each day lists places to visit with name, details, ticketPrice, latitude/longitude coordinates and an info url, ordered by the best time to visit. Respond with exactly one JSON object whose single top-level key is "travelPlan" containing keys destination, budget, flight, hotels and itinerary. Do not include any text outside the JSON object.`

// Category is the template used when the user picked an abstract destination
// category (e.g. "beach", "mountains") instead of a concrete place.
const Category = `Pick one destination that best matches the category "{category}" for a trip of {totalDays} days and {totalNight} nights, for {traveler} with a {budget} budget, preferring {accommodation} stays and a {activity} activity pace, travelling {startDate} to {endDate}. Then generate a travel plan for it. Include flight details with airline name, approximate price and a booking url; a list of hotel options each with name, address, pricePerNight, rating, latitude/longitude coordinates, a short description and a booking url; and a day-by-day itinerary for {totalDays} days where each day lists places to visit with name, details, ticketPrice, latitude/longitude coordinates and an info url, ordered by the best time to visit. Respond with exactly one JSON object whose single top-level key is "travelPlan" containing keys destination, budget, flight, hotels and itinerary. Do not include any text outside the JSON object.`

var placeholderRe = regexp.MustCompile(`\{[a-zA-Z][a-zA-Z0-9_]*\}`)

// Render substitutes every {name} placeholder in template with vars[name].
// Tokens with no matching entry are replaced with the empty string rather than
// left literal; substitution is deliberately lenient and never fails.
func Render(template string, vars map[string]string) string {
	return placeholderRe.ReplaceAllStringFunc(template, func(token string) string {
		name := token[1 : len(token)-1]
		return vars[name]
	})
}
