// Package matching implements the multi-dimensional engine that scores a
// candidate profile against a job requirement profile: skill-set matching,
// semantic similarity, experience and education comparison, combined into a
// weighted composite score with an explainable breakdown.
package matching

import (
	"context"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/jonathan/recruit-matcher/internal/types"
)

// Default thresholds for the fuzzy and semantic matching tiers.
const (
	DefaultFuzzyThreshold    = 80   // minimum token-sort ratio (0-100)
	DefaultSemanticThreshold = 0.75 // minimum cosine similarity (0-1)
)

// Embedder generates embedding vectors from text. The Gemini implementation
// lives in internal/embedding; tests supply deterministic fakes.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// skillSynonyms maps canonical skill names to their known spelling variants
// and abbreviations. The reverse lookup is built once per SkillMatcher.
var skillSynonyms = map[string][]string{
	"javascript":                  {"js", "ecmascript", "javascript", "java script"},
	"python":                      {"py", "python", "python3", "python 3"},
	"machine learning":            {"ml", "machine learning", "mlearning", "machine-learning"},
	"artificial intelligence":     {"ai", "artificial intelligence", "a.i."},
	"react":                       {"react.js", "reactjs", "react"},
	"node":                        {"node.js", "nodejs", "node"},
	"angular":                     {"angular.js", "angularjs", "angular"},
	"vue":                         {"vue.js", "vuejs", "vue"},
	"typescript":                  {"ts", "typescript", "type script"},
	"postgresql":                  {"postgres", "postgresql", "psql"},
	"mongodb":                     {"mongo", "mongodb", "mongo db"},
	"sql":                         {"sql", "structured query language"},
	"nosql":                       {"nosql", "no-sql", "no sql"},
	"c++":                         {"cpp", "c++", "c plus plus"},
	"c#":                          {"csharp", "c#", "c sharp"},
	"natural language processing": {"nlp", "natural language processing", "text analytics"},
	"deep learning":               {"dl", "deep learning", "neural networks"},
	"devops":                      {"devops", "dev ops", "development operations"},
	"ci/cd":                       {"cicd", "ci/cd", "continuous integration"},
	"docker":                      {"docker", "containerization"},
	"kubernetes":                  {"k8s", "kubernetes", "kube"},
	"aws":                         {"aws", "amazon web services"},
	"azure":                       {"azure", "microsoft azure"},
	"gcp":                         {"gcp", "google cloud platform", "google cloud"},
}

// SkillMatcher classifies each required skill as matched or missing against
// a candidate's skill set, recording an auditable method and confidence per
// decision. The synonym map is built once at construction and is read-only
// afterwards, so a single matcher is safe for concurrent use.
type SkillMatcher struct {
	fuzzyThreshold    int
	semanticThreshold float64
	embedder          Embedder
	synonyms          map[string]string
}

// SkillMatcherOption configures a SkillMatcher.
type SkillMatcherOption func(*SkillMatcher)

// WithFuzzyThreshold overrides the minimum token-sort ratio (0-100) for the
// fuzzy tier.
func WithFuzzyThreshold(threshold int) SkillMatcherOption {
	return func(m *SkillMatcher) { m.fuzzyThreshold = threshold }
}

// WithSemanticThreshold overrides the minimum cosine similarity (0-1) for
// the semantic tier.
func WithSemanticThreshold(threshold float64) SkillMatcherOption {
	return func(m *SkillMatcher) { m.semanticThreshold = threshold }
}

// NewSkillMatcher creates a skill matcher. The embedder powers the semantic
// tier and may be nil, in which case that tier is skipped.
func NewSkillMatcher(embedder Embedder, opts ...SkillMatcherOption) *SkillMatcher {
	m := &SkillMatcher{
		fuzzyThreshold:    DefaultFuzzyThreshold,
		semanticThreshold: DefaultSemanticThreshold,
		embedder:          embedder,
		synonyms:          buildSynonymMap(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// buildSynonymMap creates the reverse variant-to-canonical lookup.
func buildSynonymMap() map[string]string {
	reverse := make(map[string]string)
	for canonical, variants := range skillSynonyms {
		for _, variant := range variants {
			reverse[strings.ToLower(variant)] = canonical
		}
	}
	return reverse
}

// NormalizeSkill returns the canonical lowercase form of a skill. Skills
// without a known synonym entry canonicalize to their own lowercased,
// trimmed form.
func (m *SkillMatcher) NormalizeSkill(skill string) string {
	lower := strings.ToLower(strings.TrimSpace(skill))
	if canonical, ok := m.synonyms[lower]; ok {
		return canonical
	}
	return lower
}

// MatchSkills matches each required skill against the candidate's skills
// using three strategies in fixed priority order: exact match on canonical
// forms, fuzzy token-sort similarity, then semantic similarity via on-demand
// embeddings. The first tier to succeed wins.
//
// The returned matched and missing slices partition requiredSkills (original
// casing preserved), and detail holds exactly one entry per required skill.
// A failing embedder downgrades the affected skill to "no match" rather than
// aborting the whole call.
func (m *SkillMatcher) MatchSkills(ctx context.Context, candidateSkills, requiredSkills []string) (matched, missing []string, detail map[string]types.SkillMatch) {
	matched = []string{}
	missing = []string{}
	detail = make(map[string]types.SkillMatch, len(requiredSkills))

	if len(requiredSkills) == 0 {
		return matched, missing, detail
	}

	if len(candidateSkills) == 0 {
		for _, skill := range requiredSkills {
			missing = append(missing, skill)
			detail[skill] = types.SkillMatch{Method: types.MatchMethodNone, Score: 0.0}
		}
		return matched, missing, detail
	}

	candidateNormalized := make([]string, len(candidateSkills))
	for i, s := range candidateSkills {
		candidateNormalized[i] = m.NormalizeSkill(s)
	}

	// Candidate skill embeddings are computed at most once per call, on the
	// first required skill that reaches the semantic tier.
	var candidateEmbeddings [][]float64

	for _, required := range requiredSkills {
		requiredNorm := m.NormalizeSkill(required)

		outcome, ok := m.matchExact(requiredNorm, candidateSkills, candidateNormalized)
		if !ok {
			outcome, ok = m.matchFuzzy(requiredNorm, candidateSkills, candidateNormalized)
		}
		if !ok {
			outcome, ok, candidateEmbeddings = m.matchSemantic(ctx, required, candidateSkills, candidateEmbeddings)
		}

		if ok {
			matched = append(matched, required)
			detail[required] = outcome
		} else {
			missing = append(missing, required)
			detail[required] = types.SkillMatch{Method: types.MatchMethodNone, Score: 0.0}
		}
	}

	return matched, missing, detail
}

// matchExact looks for an exact match between canonical forms.
func (m *SkillMatcher) matchExact(requiredNorm string, candidateSkills, candidateNormalized []string) (types.SkillMatch, bool) {
	for i, candNorm := range candidateNormalized {
		if candNorm == requiredNorm {
			return types.SkillMatch{
				Method:         types.MatchMethodExact,
				Score:          1.0,
				CandidateSkill: candidateSkills[i],
			}, true
		}
	}
	return types.SkillMatch{}, false
}

// matchFuzzy finds the best token-order-insensitive string match at or above
// the fuzzy threshold.
func (m *SkillMatcher) matchFuzzy(requiredNorm string, candidateSkills, candidateNormalized []string) (types.SkillMatch, bool) {
	bestScore := 0
	bestIdx := -1
	for i, candNorm := range candidateNormalized {
		score := fuzzy.TokenSortRatio(requiredNorm, candNorm)
		if score >= m.fuzzyThreshold && score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}
	if bestIdx < 0 {
		return types.SkillMatch{}, false
	}
	return types.SkillMatch{
		Method:         types.MatchMethodFuzzy,
		Score:          float64(bestScore) / 100.0,
		CandidateSkill: candidateSkills[bestIdx],
	}, true
}

// matchSemantic embeds the required skill and every candidate skill and
// accepts the best cosine similarity at or above the semantic threshold.
// Candidate embeddings are passed through so they are generated only once
// per MatchSkills call. Any embedding failure disables the tier for the
// current skill without failing the match.
func (m *SkillMatcher) matchSemantic(ctx context.Context, required string, candidateSkills []string, candidateEmbeddings [][]float64) (types.SkillMatch, bool, [][]float64) {
	if m.embedder == nil {
		return types.SkillMatch{}, false, candidateEmbeddings
	}

	requiredEmb, err := m.embedder.Embed(ctx, required)
	if err != nil {
		return types.SkillMatch{}, false, candidateEmbeddings
	}

	if candidateEmbeddings == nil {
		candidateEmbeddings = make([][]float64, len(candidateSkills))
		for i, skill := range candidateSkills {
			emb, err := m.embedder.Embed(ctx, skill)
			if err != nil {
				continue // leave nil, skipped below
			}
			candidateEmbeddings[i] = emb
		}
	}

	bestScore := -1.0
	bestIdx := -1
	for i, emb := range candidateEmbeddings {
		if emb == nil {
			continue
		}
		score := CosineSimilarity(requiredEmb, emb)
		if score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}

	if bestIdx < 0 || bestScore < m.semanticThreshold {
		return types.SkillMatch{}, false, candidateEmbeddings
	}
	return types.SkillMatch{
		Method:         types.MatchMethodSemantic,
		Score:          bestScore,
		CandidateSkill: candidateSkills[bestIdx],
	}, true, candidateEmbeddings
}
