package domain

import (
	"errors"
	"strings"
)

// Dimension is the visitor attribute a destination rule matches on.
type Dimension string

const (
	DimCountry  Dimension = "country"
	DimDevice   Dimension = "device"
	DimBrowser  Dimension = "browser"
	DimOS       Dimension = "os"
	DimTime     Dimension = "time"
	DimReferrer Dimension = "referrer"
	DimLanguage Dimension = "language"
)

var dimensions = map[Dimension]bool{
	DimCountry:  true,
	DimDevice:   true,
	DimBrowser:  true,
	DimOS:       true,
	DimTime:     true,
	DimReferrer: true,
	DimLanguage: true,
}

var ErrMalformedRule = errors.New("malformed destination rule")

// DestinationRule routes matching visitors to an alternate target.
// Weight is always >= 1; ParseRule enforces both invariants at write
// time so the resolver never sees a malformed rule.
type DestinationRule struct {
	TargetURL string    `json:"target_url"`
	Dimension Dimension `json:"dimension"`
	Value     string    `json:"value"`
	Weight    int       `json:"weight"`
}

// ParseRule decomposes a "dimension:value" rule string into a typed
// rule. The value may itself contain colons (referrer hosts with
// ports), so only the first colon splits.
func ParseRule(target, rule string, weight int) (DestinationRule, error) {
	dim, value, found := strings.Cut(rule, ":")
	if !found {
		return DestinationRule{}, ErrMalformedRule
	}

	dim = strings.ToLower(strings.TrimSpace(dim))
	value = strings.ToLower(strings.TrimSpace(value))
	if dim == "" || value == "" || !dimensions[Dimension(dim)] {
		return DestinationRule{}, ErrMalformedRule
	}

	if weight < 1 {
		weight = 1
	}

	return DestinationRule{
		TargetURL: target,
		Dimension: Dimension(dim),
		Value:     value,
		Weight:    weight,
	}, nil
}
