package resolver

import (
	"math/rand/v2"
	"strconv"
	"strings"

	"shortlink/internal/domain"
)

// DestinationResolver selects one destination among a link's rules.
// The random draw is the only source of nondeterminism and is
// injectable for tests.
type DestinationResolver struct {
	draw func(n int) int
}

func NewDestinationResolver() *DestinationResolver {
	// The package-level generator is safe for concurrent use and does
	// not need to be cryptographically strong here.
	return &DestinationResolver{draw: rand.IntN}
}

// NewDestinationResolverWithDraw fixes the random draw. Tests use it
// to make weighted selection reproducible.
func NewDestinationResolverWithDraw(draw func(n int) int) *DestinationResolver {
	return &DestinationResolver{draw: draw}
}

// Resolve returns the target of a matching rule, or the link's
// primary destination when no rule matches. It never fails: rule
// evaluation falls back, never errors.
func (r *DestinationResolver) Resolve(link *domain.ShortLink, visit *domain.VisitorContext) string {
	if len(link.Rules) == 0 {
		return link.Destination
	}

	var matched []domain.DestinationRule
	for _, rule := range link.Rules {
		if ruleMatches(rule, visit) {
			matched = append(matched, rule)
		}
	}

	switch len(matched) {
	case 0:
		return link.Destination
	case 1:
		return matched[0].TargetURL
	}
	return r.pick(matched).TargetURL
}

// pick draws uniformly in [0, totalWeight) and walks the candidates
// in original order, so each rule wins with probability proportional
// to its weight.
func (r *DestinationResolver) pick(matched []domain.DestinationRule) domain.DestinationRule {
	total := 0
	for _, rule := range matched {
		total += rule.Weight
	}
	if total <= 0 {
		// Weights are clamped to >= 1 at write time; if that invariant
		// is ever violated, the first candidate wins.
		return matched[0]
	}

	n := r.draw(total)
	for _, rule := range matched {
		n -= rule.Weight
		if n < 0 {
			return rule
		}
	}
	return matched[len(matched)-1]
}

func ruleMatches(rule domain.DestinationRule, visit *domain.VisitorContext) bool {
	switch rule.Dimension {
	case domain.DimCountry:
		return strings.EqualFold(visit.Country, rule.Value)
	case domain.DimDevice:
		return strings.EqualFold(visit.Device, rule.Value)
	case domain.DimBrowser:
		return strings.EqualFold(visit.Browser, rule.Value)
	case domain.DimOS:
		return strings.EqualFold(visit.OS, rule.Value)
	case domain.DimTime:
		return hourInRange(rule.Value, visit.Hour)
	case domain.DimReferrer:
		return visit.ReferrerHost != "" && strings.Contains(visit.ReferrerHost, strings.ToLower(rule.Value))
	case domain.DimLanguage:
		return visit.Language != "" && strings.HasPrefix(visit.Language, strings.ToLower(rule.Value))
	}
	return false
}

// hourInRange matches an "HH-HH" range against an hour of day, with
// wraparound for overnight ranges ("22-06" covers 22..23 and 0..6).
func hourInRange(value string, hour int) bool {
	from, to, found := strings.Cut(value, "-")
	if !found {
		return false
	}

	start, err := strconv.Atoi(strings.TrimSpace(from))
	if err != nil || start < 0 || start > 23 {
		return false
	}
	end, err := strconv.Atoi(strings.TrimSpace(to))
	if err != nil || end < 0 || end > 23 {
		return false
	}

	if start <= end {
		return hour >= start && hour <= end
	}
	return hour >= start || hour <= end
}
