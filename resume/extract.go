package resume

import (
	"regexp"
	"strings"

	"aihub/types"
)

const defaultSummary = "Motivated professional seeking opportunities."

// minEntryLen discards entry fragments too short to carry any field.
const minEntryLen = 10

var (
	nameRe = regexp.MustCompile(`^[A-Z][a-z]+(?: [A-Z][a-z]+){1,2}$`)

	nameDisqualifiers = []string{
		"Mother", "Father", "School", "College", "University",
		"Resume", "Curriculum", "Vitae", "CV",
	}

	summaryHeaderRe = regexp.MustCompile(`(?i)\b(?:professional\s+summary|summary|profile|objective|about\s*me|bio)\b`)

	skillDelimRe = regexp.MustCompile(`[,;•\n\t\-]+`)

	dateLineRe = regexp.MustCompile(`(?i)\b(?:(?:19|20)\d{2}|jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)`)

	durationRe = regexp.MustCompile(`(?:19|20)\d{2}(?:\s*-\s*(?:19|20)\d{2})?`)

	scoreRe = regexp.MustCompile(`(?i)(?:cgpa|gpa|percentage|score)\s*:?\s*([\d.]+)`)

	techLineRe = regexp.MustCompile(`(?i)(?:technology|tech\s*stack|tools\s*used)\s*:?\s*(.*)`)

	techDelimRe = regexp.MustCompile(`[,|•\-]+`)
)

// extractName inspects the first five lines for a 2-3 token capitalized name,
// skipping lines that carry contact details or known non-name words.
func extractName(lines []string) string {
	limit := 5
	if len(lines) < limit {
		limit = len(lines)
	}
	for _, line := range lines[:limit] {
		if hasContactMatch(line) {
			continue
		}
		if !nameRe.MatchString(line) {
			continue
		}
		if containsAny(line, nameDisqualifiers) {
			continue
		}
		return line
	}
	return "Unknown"
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// extractSummary captures text between a summary-style header and the next
// known section header. Without such a header it concatenates the leading
// non-name lines; the canned default is the last resort.
func extractSummary(text string, lines []string, name string) string {
	if loc := summaryHeaderRe.FindStringIndex(text); loc != nil {
		rest := text[loc[1]:]
		if next := sectionHeaderRe.FindStringIndex(rest); next != nil {
			rest = rest[:next[0]]
		}
		if s := capWords(rest, 50); s != "" {
			return s
		}
	}

	var collected []string
	for _, line := range lines {
		if sectionHeaderRe.MatchString(line) {
			break
		}
		if line == name {
			continue
		}
		collected = append(collected, line)
		if len(collected) == 10 {
			break
		}
	}
	if s := capWords(strings.Join(collected, " "), 50); s != "" {
		return s
	}
	return defaultSummary
}

func capWords(s string, n int) string {
	fields := strings.Fields(s)
	if len(fields) > n {
		fields = fields[:n]
	}
	return strings.Join(fields, " ")
}

// extractSkills splits the skills span on common delimiters and returns the
// ordered flat list plus the taxonomy buckets. Tokens under 2 characters or
// spanning 5+ words are dropped.
func extractSkills(text string) ([]string, map[string][]string) {
	skills := []string{}
	categories := map[string][]string{}

	for _, raw := range skillDelimRe.Split(text, -1) {
		token := strings.TrimSpace(raw)
		if len([]rune(token)) < 2 || len(strings.Fields(token)) >= 5 {
			continue
		}
		skill := capitalizeToken(token)
		skills = append(skills, skill)

		cat := categorize(token)
		categories[cat] = append(categories[cat], skill)
	}
	if len(categories) == 0 {
		categories = nil
	}
	return skills, categories
}

// categorize matches a token against the taxonomy; the first matching
// category wins.
func categorize(token string) string {
	lower := strings.ToLower(token)
	for _, cat := range skillCategories {
		for _, kw := range cat.Keywords {
			if strings.Contains(lower, kw) {
				return cat.Name
			}
		}
	}
	return uncategorized
}

func capitalizeToken(s string) string {
	lower := strings.ToLower(s)
	r := []rune(lower)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}

// splitEntries breaks a section span into entries at line boundaries
// preceding a capitalized line.
func splitEntries(text string) []string {
	var entries []string
	var buf []string

	flush := func() {
		if len(buf) > 0 {
			entries = append(entries, strings.Join(buf, "\n"))
			buf = nil
		}
	}

	for _, line := range strings.Split(text, "\n") {
		if len(line) > 0 && line[0] >= 'A' && line[0] <= 'Z' {
			flush()
		}
		buf = append(buf, line)
	}
	flush()
	return entries
}

func entryLines(entry string) []string {
	var lines []string
	for _, line := range strings.Split(entry, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// extractExperience decomposes the experience span into structured entries.
// Within an entry, a line carrying a year or month name becomes the dates,
// the first two capitalized lines become position then company, and
// everything else is description.
func extractExperience(text string) []types.ExperienceEntry {
	entries := []types.ExperienceEntry{}

	for _, raw := range splitEntries(text) {
		if len(strings.TrimSpace(raw)) < minEntryLen {
			continue
		}

		var e types.ExperienceEntry
		e.Description = []string{}
		for _, line := range entryLines(raw) {
			switch {
			case dateLineRe.MatchString(line):
				e.Dates = line
			case line[0] >= 'A' && line[0] <= 'Z':
				if e.Position == "" {
					e.Position = line
				} else if e.Company == "" {
					e.Company = line
				}
			default:
				e.Description = append(e.Description, line)
			}
		}
		entries = append(entries, e)
	}
	return entries
}

// extractProjects decomposes the projects span: first line is the project
// name, a technologies line is split into the tech list, a dated line is the
// duration, the rest is description.
func extractProjects(text string) []types.ProjectEntry {
	projects := []types.ProjectEntry{}

	for _, raw := range splitEntries(text) {
		if len(strings.TrimSpace(raw)) < minEntryLen {
			continue
		}

		p := types.ProjectEntry{Technologies: []string{}, Description: []string{}}
		for _, line := range entryLines(raw) {
			switch {
			case p.Name == "":
				p.Name = line
			case techLineRe.MatchString(line):
				m := techLineRe.FindStringSubmatch(line)
				for _, tech := range techDelimRe.Split(m[1], -1) {
					tech = strings.TrimSpace(tech)
					if tech != "" {
						p.Technologies = append(p.Technologies, tech)
					}
				}
			case dateLineRe.MatchString(line):
				p.Duration = line
			default:
				p.Description = append(p.Description, line)
			}
		}
		if p.Name != "" {
			projects = append(projects, p)
		}
	}
	return projects
}

// extractEducation tags degree, major and institute via keyword containment
// from the fixed vocabularies, plus a duration year range and a numeric
// score. Entries with neither a degree nor an institute are dropped.
func extractEducation(text string) []types.EducationEntry {
	education := []types.EducationEntry{}

	for _, raw := range splitEntries(text) {
		if len(strings.TrimSpace(raw)) < minEntryLen {
			continue
		}

		lower := strings.ToLower(raw)
		var e types.EducationEntry

		for _, kw := range degreeKeywords {
			if strings.Contains(lower, kw) {
				e.Degree = lineContaining(raw, kw)
				break
			}
		}
		for _, kw := range majorKeywords {
			if strings.Contains(lower, kw) {
				e.Major = kw
				break
			}
		}
		for _, kw := range instituteKeywords {
			if line := lineContaining(raw, kw); line != "" {
				e.Institute = line
				break
			}
		}
		e.Duration = durationRe.FindString(raw)
		if m := scoreRe.FindStringSubmatch(raw); m != nil {
			e.Score = m[1]
		}

		if e.Degree != "" || e.Institute != "" {
			education = append(education, e)
		}
	}
	return education
}

func lineContaining(entry, keyword string) string {
	for _, line := range entryLines(entry) {
		if strings.Contains(strings.ToLower(line), keyword) {
			return line
		}
	}
	return ""
}

// extractCertifications keeps lines long enough to name a certification,
// dropping stray section keywords.
func extractCertifications(text string) []string {
	certs := []string{}
	for _, line := range entryLines(text) {
		if len(line) <= 10 {
			continue
		}
		lower := strings.ToLower(line)
		if strings.HasPrefix(lower, "education") ||
			strings.HasPrefix(lower, "skills") ||
			strings.HasPrefix(lower, "experience") {
			continue
		}
		certs = append(certs, line)
	}
	return certs
}
