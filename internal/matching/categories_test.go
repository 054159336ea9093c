package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorize(t *testing.T) {
	m := NewSkillMatcher(nil)

	got := m.Categorize([]string{
		"Python", "JS", "ReactJS", "Postgres", "K8s", "ML", "Team Leadership",
	})

	assert.Equal(t, map[string][]string{
		CategoryLanguages:  {"Python", "JS"},
		CategoryFrameworks: {"ReactJS"},
		CategoryDatabases:  {"Postgres"},
		CategoryCloud:      {"K8s"},
		CategoryAIData:     {"ML"},
		CategoryOther:      {"Team Leadership"},
	}, got)
}

func TestCategorize_EmptyInput(t *testing.T) {
	m := NewSkillMatcher(nil)
	assert.Empty(t, m.Categorize(nil))
}

func TestCategorize_OmitsEmptyCategories(t *testing.T) {
	m := NewSkillMatcher(nil)

	got := m.Categorize([]string{"Python"})

	assert.Len(t, got, 1)
	assert.NotContains(t, got, CategoryDatabases)
}
