package railnet

// FarePolicy converts a routed distance into a ticket price. Pricing is
// business policy layered over routing results, never part of the
// engine: callers apply a policy to a [Route] after the query returns.
type FarePolicy struct {
	Base              int // flat component, applied to every ticket
	PerKm             int // per-kilometre component
	SeniorDiscountPct int // percentage off for senior passengers, 0-100
}

// DefaultFarePolicy returns the stock tariff: fare = 10 + 2×km, with a
// 50% senior concession.
func DefaultFarePolicy() FarePolicy {
	return FarePolicy{Base: 10, PerKm: 2, SeniorDiscountPct: 50}
}

// Fare prices a journey of the given distance.
func (p FarePolicy) Fare(distKm int) int {
	return p.Base + p.PerKm*distKm
}

// SeniorFare prices a journey with the senior concession applied.
// The discount truncates toward zero.
func (p FarePolicy) SeniorFare(distKm int) int {
	full := p.Fare(distKm)
	return full - full*p.SeniorDiscountPct/100
}
