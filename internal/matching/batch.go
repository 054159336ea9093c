package matching

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/recruit-matcher/internal/types"
)

// maxConcurrentMatches caps concurrency during batch ranking so the
// on-demand embedding calls in the skill layer do not fan out unbounded.
const maxConcurrentMatches = 8

// RankedMatch pairs a match result with the index of the candidate it was
// produced for, so callers can map results back to their own identifiers.
type RankedMatch struct {
	CandidateIndex int
	Result         *types.MatchResult
}

// RankAll matches every candidate against the requirement concurrently and
// returns the results sorted by total score, highest first. Individual
// matches never fail (degraded inputs fall back per the matcher contract);
// the only error source is context cancellation.
func (m *Matcher) RankAll(ctx context.Context, candidates []*types.CandidateProfile, requirement *types.RequirementProfile) ([]RankedMatch, error) {
	results := make([]RankedMatch, len(candidates))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentMatches)

	for i, candidate := range candidates {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = RankedMatch{
				CandidateIndex: i,
				Result:         m.Match(ctx, candidate, requirement),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Result.TotalScore > results[j].Result.TotalScore
	})
	return results, nil
}
