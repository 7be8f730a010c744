package resume

// Constant vocabularies for skill categorization and education field
// tagging. Read-only after startup; order is matching priority.

var skillCategories = []struct {
	Name     string
	Keywords []string
}{
	{"programming", []string{"python", "java", "javascript", "c++", "ruby", "php", "swift", "kotlin"}},
	{"web", []string{"html", "css", "react", "angular", "vue", "node", "django", "flask"}},
	{"database", []string{"sql", "mysql", "postgresql", "mongodb", "oracle", "redis"}},
	{"tools", []string{"git", "docker", "kubernetes", "jenkins", "aws", "azure", "gcp"}},
	{"soft_skills", []string{"leadership", "communication", "teamwork", "problem solving", "analytical"}},
}

const uncategorized = "uncategorized"

var degreeKeywords = []string{
	"b.tech", "b.e.", "bachelor", "master", "mba", "phd", "m.tech", "m.e.", "diploma",
}

var majorKeywords = []string{
	"computer science", "information technology", "electronics", "mechanical", "civil", "electrical",
}

var instituteKeywords = []string{
	"university", "college", "institute", "school",
}
