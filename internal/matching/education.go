package matching

import (
	"strings"

	"github.com/jonathan/recruit-matcher/internal/types"
)

// Credential levels, ordered lowest to highest for "meets or exceeds"
// comparisons.
const (
	levelAssociate = "associate"
	levelBachelor  = "bachelor"
	levelMaster    = "master"
	levelDoctorate = "doctorate"
)

// educationHierarchy orders credential levels for hierarchy traversal.
var educationHierarchy = []string{levelAssociate, levelBachelor, levelMaster, levelDoctorate}

// educationKeywords maps each credential level to the keywords that signal
// it in free text. Includes common French credential names alongside the
// English ones.
var educationKeywords = map[string][]string{
	levelDoctorate: {"phd", "doctorate", "doctoral", "doctorat"},
	levelMaster:    {"master", "msc", "m.sc", "masters", "mastère"},
	levelBachelor:  {"bachelor", "bsc", "b.sc", "licence", "undergraduate"},
	levelAssociate: {"associate", "dut", "bts"},
}

// detectionOrder checks higher levels first so that a requirement naming
// both (e.g. "Master or Bachelor") resolves to the higher one.
var detectionOrder = []string{levelDoctorate, levelMaster, levelBachelor, levelAssociate}

// EducationFit scores the candidate's education against the requirement's
// education requirements on a 0-1 scale.
//
// No requirements scores 1.0 (nothing to satisfy); a candidate with neither
// education nor diploma entries scores 0.3. When a required credential level
// is detected by keyword, the candidate scores 1.0 for holding that level or
// above, 0.7 for exactly one level below, and 0.4 otherwise. Without a
// detectable level the score is the fraction of requirement strings found
// verbatim in the candidate's combined education text.
func EducationFit(candidate *types.CandidateProfile, requirement *types.RequirementProfile) float64 {
	if len(requirement.EducationRequirements) == 0 {
		return 1.0
	}

	if !candidate.HasEducation() {
		return 0.3
	}

	candidateText := candidate.EducationText()
	requiredLevel := detectLevel(requirement.EducationText())

	if requiredLevel == "" {
		found := 0
		for _, req := range requirement.EducationRequirements {
			if strings.Contains(candidateText, strings.ToLower(req)) {
				found++
			}
		}
		score := float64(found) / float64(len(requirement.EducationRequirements))
		if score > 1.0 {
			score = 1.0
		}
		return score
	}

	requiredIdx := levelIndex(requiredLevel)

	// Meets or exceeds the requirement.
	for i := requiredIdx; i < len(educationHierarchy); i++ {
		if hasLevel(candidateText, educationHierarchy[i]) {
			return 1.0
		}
	}

	// Exactly one level below.
	if requiredIdx > 0 && hasLevel(candidateText, educationHierarchy[requiredIdx-1]) {
		return 0.7
	}

	return 0.4
}

// detectLevel returns the highest credential level whose keywords appear in
// the text, or "" when none match.
func detectLevel(text string) string {
	for _, level := range detectionOrder {
		if hasLevel(text, level) {
			return level
		}
	}
	return ""
}

// hasLevel reports whether any keyword for the level appears in the text.
func hasLevel(text, level string) bool {
	for _, kw := range educationKeywords[level] {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// levelIndex returns the hierarchy index of a level.
func levelIndex(level string) int {
	for i, l := range educationHierarchy {
		if l == level {
			return i
		}
	}
	return 0
}
