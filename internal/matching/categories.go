package matching

// Skill category names.
const (
	CategoryLanguages  = "Programming Languages"
	CategoryFrameworks = "Frameworks & Libraries"
	CategoryDatabases  = "Databases"
	CategoryCloud      = "Cloud & DevOps"
	CategoryAIData     = "AI & Data Science"
	CategoryOther      = "Other"
)

// Category membership sets, keyed by canonical skill form.
var (
	languageSkills = map[string]bool{
		"python": true, "javascript": true, "java": true, "c++": true,
		"c#": true, "typescript": true, "go": true, "rust": true,
		"php": true, "ruby": true,
	}
	frameworkSkills = map[string]bool{
		"react": true, "angular": true, "vue": true, "node": true,
		"django": true, "flask": true, "spring": true, "express": true,
	}
	databaseSkills = map[string]bool{
		"sql": true, "postgresql": true, "mongodb": true, "mysql": true,
		"redis": true, "cassandra": true,
	}
	cloudSkills = map[string]bool{
		"aws": true, "azure": true, "gcp": true, "docker": true,
		"kubernetes": true, "ci/cd": true, "devops": true, "terraform": true,
	}
	aiDataSkills = map[string]bool{
		"machine learning": true, "deep learning": true,
		"natural language processing": true, "artificial intelligence": true,
		"tensorflow": true, "pytorch": true,
	}
)

// Categorize buckets skills into broad categories by their canonical form.
// Skills matching no known category fall into "Other". Categories with no
// members are omitted from the result. Input casing is preserved in the
// returned lists.
func (m *SkillMatcher) Categorize(skills []string) map[string][]string {
	categories := make(map[string][]string)

	for _, skill := range skills {
		canonical := m.NormalizeSkill(skill)

		var category string
		switch {
		case languageSkills[canonical]:
			category = CategoryLanguages
		case frameworkSkills[canonical]:
			category = CategoryFrameworks
		case databaseSkills[canonical]:
			category = CategoryDatabases
		case cloudSkills[canonical]:
			category = CategoryCloud
		case aiDataSkills[canonical]:
			category = CategoryAIData
		default:
			category = CategoryOther
		}
		categories[category] = append(categories[category], skill)
	}

	return categories
}
