package rank

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Metric is the configuration of a metric in a Profile.
type Metric struct {
	Weight        float64 `yaml:"weight"`
	LowerIsBetter bool    `yaml:"lower_is_better"`
}

// Profile is a named ranking configuration, read from YAML:
//
//	strategy: composite
//	metrics:
//	  yield: {weight: 40}
//	  volatility: {weight: 30, lower_is_better: true}
//	  trend_12m: {weight: 30}
type Profile struct {
	Strategy string            `yaml:"strategy"`
	Metrics  map[string]Metric `yaml:"metrics"`
}

// DefaultProfile ranks on yield, dividend stability and price momentum.
var DefaultProfile = Profile{
	Strategy: Composite{}.Name(),
	Metrics: map[string]Metric{
		"yield":      {Weight: 40},
		"volatility": {Weight: 30, LowerIsBetter: true},
		"trend_12m":  {Weight: 30},
	},
}

// LoadProfile decodes a YAML profile. The strategy defaults to composite.
func LoadProfile(r io.Reader) (Profile, error) {
	var p Profile
	if err := yaml.NewDecoder(r).Decode(&p); err != nil && err != io.EOF {
		return Profile{}, fmt.Errorf("cannot decode ranking profile: %w", err)
	}
	if p.Strategy == "" {
		p.Strategy = DefaultProfile.Strategy
	}
	if _, err := p.RankStrategy(); err != nil {
		return Profile{}, err
	}
	if err := p.Criteria().Validate(); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// Criteria returns the criteria of the profile.
func (p Profile) Criteria() Criteria {
	c := Criteria{
		Weights:       make(map[string]float64, len(p.Metrics)),
		LowerIsBetter: make(map[string]bool, len(p.Metrics)),
	}
	for name, m := range p.Metrics {
		c.Weights[name] = m.Weight
		if m.LowerIsBetter {
			c.LowerIsBetter[name] = true
		}
	}
	return c
}

// RankStrategy returns the strategy of the profile.
func (p Profile) RankStrategy() (Strategy, error) { return ParseStrategy(p.Strategy) }

// Rank ranks entities with the profile's strategy and criteria.
func (p Profile) Rank(entities []Entity) ([]Result, error) {
	s, err := p.RankStrategy()
	if err != nil {
		return nil, err
	}
	return s.Rank(entities, p.Criteria())
}
