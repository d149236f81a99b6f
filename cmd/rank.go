package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/yield/rank"
	"github.com/etnz/yield/renderer"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

type rankCmd struct {
	out      output
	profile  string
	strategy string
	path     string
}

func (*rankCmd) Name() string     { return "rank" }
func (*rankCmd) Synopsis() string { return "rank securities on weighted metrics" }
func (*rankCmd) Usage() string {
	return `ycs rank [-profile <file>] [-strategy <strategy>] [-path <jsonpath>] [-json] [-xlsx <file>] [<file>]

  Reads entities {"entity_id", "metrics": {"<name>": <value>|null}} and ranks
  them under the weights of a YAML profile:

    strategy: composite        # or rank-weighted
    metrics:
      yield: {weight: 40}
      volatility: {weight: 30, lower_is_better: true}
      trend_12m: {weight: 30}

  The profile above is used by default. Entities lacking a weighted metric
  are excluded.
`
}

func (c *rankCmd) SetFlags(f *flag.FlagSet) {
	c.out.register(f)
	f.StringVar(&c.profile, "profile", "", "YAML ranking profile")
	f.StringVar(&c.strategy, "strategy", "", "ranking strategy (composite, rank-weighted), overrides the profile")
	f.StringVar(&c.path, "path", "", "JSONPath of the entities in the input document")
}

func (c *rankCmd) loadProfile() (rank.Profile, error) {
	if c.profile == "" {
		return rank.DefaultProfile, nil
	}
	f, err := os.Open(c.profile)
	if err != nil {
		return rank.Profile{}, err
	}
	defer f.Close()
	p, err := rank.LoadProfile(f)
	if err != nil {
		return rank.Profile{}, fmt.Errorf("%s: %w", c.profile, err)
	}
	return p, nil
}

func (c *rankCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	profile, err := c.loadProfile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading profile: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.strategy != "" {
		profile.Strategy = c.strategy
	}
	if _, err := profile.RankStrategy(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	entities, err := decodeEntities(f.Arg(0), c.path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading entities: %v\n", err)
		return subcommands.ExitFailure
	}
	criteria := profile.Criteria()
	_, excluded, err := rank.Eligible(entities, criteria)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	for _, id := range excluded {
		log.Warn().Str("entity", id).Strs("metrics", criteria.Metrics()).Msg("excluded for missing metrics")
	}
	results, err := profile.Rank(entities)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error ranking: %v\n", err)
		return subcommands.ExitFailure
	}

	r := renderer.Ranking{Strategy: profile.Strategy, Metrics: criteria.Metrics(), Results: results, Excluded: excluded}
	return c.out.emit(renderer.RenderRanking(r), r, renderer.RankingSheet(r))
}
