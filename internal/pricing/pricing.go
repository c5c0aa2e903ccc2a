// Package pricing computes the price owed for a training session as of a
// given instant. All amounts are integer minor currency units (cents).
package pricing

import (
	"time"

	"traininghub/internal/domain"
)

// DaysUntil returns the number of days from now until date, rounded up.
// A date in the past yields a negative count.
func DaysUntil(date, now time.Time) int {
	diff := date.Sub(now)
	days := int(diff / (24 * time.Hour))
	if diff%(24*time.Hour) > 0 {
		days++
	}
	return days
}

// Quote computes the current price for a session of the given service.
// The early-bird price applies when the service has one and the session is at
// least EarlyBirdDays away. A session in the past simply fails the threshold
// and quotes the base price; a nil or non-positive early-bird price means the
// service has no early-bird tier.
func Quote(svc *domain.TrainingService, sessionDate, now time.Time) domain.PriceQuote {
	days := DaysUntil(sessionDate, now)
	quote := domain.PriceQuote{
		BasePrice:        svc.BasePrice,
		FinalPrice:       svc.BasePrice,
		DiscountAmount:   0,
		DiscountType:     domain.DiscountTypeBase,
		IsEarlyBird:      false,
		DaysUntilSession: days,
	}
	if svc.EarlyBirdPrice == nil || *svc.EarlyBirdPrice <= 0 {
		return quote
	}
	if days >= svc.EarlyBirdDays {
		quote.FinalPrice = *svc.EarlyBirdPrice
		quote.DiscountAmount = svc.BasePrice - *svc.EarlyBirdPrice
		quote.DiscountType = domain.DiscountTypeEarlyBird
		quote.IsEarlyBird = true
	}
	return quote
}
