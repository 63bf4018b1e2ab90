// Package shipping resolves a buyer country to shipping zone options from
// a static rate table baked into the binary. The table is loaded once and
// never mutated at runtime.
package shipping

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

//go:embed rates.json
var ratesJSON []byte

type Method struct {
	Name              string  `json:"name"`
	Currency          string  `json:"currency"`
	Cost              float64 `json:"cost"`
	Description       string  `json:"description,omitempty"`
	EstimatedDelivery string  `json:"estimatedDelivery"`
}

type Zone struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Currency    string   `json:"currency"`
	Countries   []string `json:"countries"`
	States      []string `json:"states,omitempty"`
	Method      Method   `json:"method"`
}

type ratesConfig struct {
	Zones    map[string]Zone `json:"zones"`
	Fallback struct {
		Zone    string `json:"zone"`
		Message string `json:"message"`
	} `json:"fallback"`
}

// Option is one zone a buyer can choose at checkout.
type Option struct {
	Zone           string   `json:"zone"`
	ZoneName       string   `json:"zoneName"`
	States         []string `json:"states,omitempty"`
	ShippingMethod Method   `json:"shippingMethod"`
}

type ZonesResponse struct {
	Country string   `json:"country"`
	Zones   []Option `json:"zones"`
}

type Resolver struct {
	cfg ratesConfig
}

func NewResolver() (*Resolver, error) {
	var cfg ratesConfig
	if err := json.Unmarshal(ratesJSON, &cfg); err != nil {
		return nil, fmt.Errorf("parse shipping rates: %w", err)
	}
	if _, ok := cfg.Zones[cfg.Fallback.Zone]; !ok {
		return nil, fmt.Errorf("shipping rates: fallback zone %q is not defined", cfg.Fallback.Zone)
	}
	return &Resolver{cfg: cfg}, nil
}

// ZonesFor returns the zone options for a country. Nigeria always gets
// both Lagos zones so the buyer picks one; other countries get their
// matching zone or the configured fallback.
func (r *Resolver) ZonesFor(country string) ZonesResponse {
	countryCode := strings.ToUpper(strings.TrimSpace(country))

	if countryCode == "NG" {
		return ZonesResponse{
			Country: countryCode,
			Zones: []Option{
				r.option("within_lagos"),
				r.option("outside_lagos"),
			},
		}
	}

	zoneKey := r.zoneKeyFor(countryCode)
	return ZonesResponse{
		Country: countryCode,
		Zones:   []Option{r.option(zoneKey)},
	}
}

// CountriesInZone lists the member countries of a zone, empty for an
// unknown zone key.
func (r *Resolver) CountriesInZone(zone string) []string {
	z, ok := r.cfg.Zones[zone]
	if !ok {
		return nil
	}
	return z.Countries
}

// Countries returns every shippable country code, sorted and distinct.
func (r *Resolver) Countries() []string {
	set := map[string]struct{}{}
	for _, z := range r.cfg.Zones {
		for _, c := range z.Countries {
			set[c] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

func (r *Resolver) zoneKeyFor(countryCode string) string {
	for key, z := range r.cfg.Zones {
		for _, c := range z.Countries {
			if c == countryCode {
				return key
			}
		}
	}
	return r.cfg.Fallback.Zone
}

func (r *Resolver) option(zoneKey string) Option {
	z := r.cfg.Zones[zoneKey]
	return Option{
		Zone:           zoneKey,
		ZoneName:       z.Name,
		States:         z.States,
		ShippingMethod: z.Method,
	}
}
