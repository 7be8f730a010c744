package resume

import (
	"regexp"
	"strings"
)

// SectionKind labels a canonical resume section.
type SectionKind string

const (
	SectionExperience     SectionKind = "experience"
	SectionEducation      SectionKind = "education"
	SectionSkills         SectionKind = "skills"
	SectionProjects       SectionKind = "projects"
	SectionCertifications SectionKind = "certifications"
	SectionAchievements   SectionKind = "achievements"
	SectionUnknown        SectionKind = "unknown"
)

// sectionPatterns maps each kind to its header alternation. Order is a
// deliberate priority: a header occurrence is classified against the
// patterns in this order and the first match wins.
var sectionPatterns = []struct {
	Kind    SectionKind
	Pattern string
}{
	{SectionExperience, `Experience|Work\s*History|Professional\s*Experience|Career`},
	{SectionEducation, `Education|Academic\s*Background`},
	{SectionSkills, `Skills|Technical\s*Skills|Core\s*Competencies`},
	{SectionProjects, `Projects|Portfolio|Key\s*Projects`},
	{SectionCertifications, `Certifications|Licenses|Training`},
	{SectionAchievements, `Awards|Honors|Achievements`},
}

var (
	sectionHeaderRe = regexp.MustCompile(`(?i)(` + joinSectionPatterns() + `)`)
	sectionKindRes  = compileSectionKinds()
)

func joinSectionPatterns() string {
	parts := make([]string, len(sectionPatterns))
	for i, sp := range sectionPatterns {
		parts[i] = sp.Pattern
	}
	return strings.Join(parts, "|")
}

func compileSectionKinds() []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(sectionPatterns))
	for i, sp := range sectionPatterns {
		// Anchored: classification checks the matched header text only.
		res[i] = regexp.MustCompile(`(?i)^(?:` + sp.Pattern + `)`)
	}
	return res
}

// SectionSpan is a contiguous slice of the original text attributed to one
// section: from the end of its header match to the start of the next header
// match (or end of text).
type SectionSpan struct {
	Kind  SectionKind
	Start int
	End   int
	Text  string
}

// Segment locates section headers in the raw text and slices it into labeled
// spans. Spans are non-overlapping and ordered; unmatched text belongs to no
// span. A header keyword inside body prose produces a false positive span,
// an accepted limitation of header-based segmentation.
func Segment(text string) []SectionSpan {
	matches := sectionHeaderRe.FindAllStringIndex(text, -1)
	spans := make([]SectionSpan, 0, len(matches))

	for i, m := range matches {
		start := m[1]
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}

		header := text[m[0]:m[1]]
		kind := SectionUnknown
		for j, re := range sectionKindRes {
			if re.MatchString(header) {
				kind = sectionPatterns[j].Kind
				break
			}
		}

		spans = append(spans, SectionSpan{
			Kind:  kind,
			Start: start,
			End:   end,
			Text:  strings.TrimSpace(text[start:end]),
		})
	}
	return spans
}

// sectionTexts collapses spans into a kind→text lookup. When a kind occurs
// more than once the later span wins, matching document-order assignment.
func sectionTexts(spans []SectionSpan) map[SectionKind]string {
	out := make(map[SectionKind]string, len(spans))
	for _, s := range spans {
		out[s.Kind] = s.Text
	}
	return out
}
