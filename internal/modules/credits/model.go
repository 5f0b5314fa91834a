package credits

import "errors"

// ErrExhausted is returned when a user has no generation credits remaining
// for the current month.
var ErrExhausted = errors.New("monthly generation credits exhausted")

// MonthlyAllowance is the number of itinerary generations granted per month.
const MonthlyAllowance = 20

// monthFormat keys the rolling monthly cycle.
const monthFormat = "2006-01"
