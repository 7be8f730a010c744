package resume

import (
	"fmt"
	"strings"

	"aihub/types"
)

const fallbackBio = "Motivated professional seeking opportunities to grow and contribute."

// bioHighlightLimit truncates the experience highlight.
const bioHighlightLimit = 100

// SynthesizeBio composes a one-paragraph bio from the summary, the top eight
// skills and the most recent experience entry. Deterministic for identical
// inputs; returns the canned fallback when nothing contributes.
func SynthesizeBio(summary string, skills []string, experience []types.ExperienceEntry) string {
	var parts []string

	if summary != "" {
		parts = append(parts, summary)
	}
	if len(skills) > 0 {
		top := skills
		if len(top) > 8 {
			top = top[:8]
		}
		parts = append(parts, fmt.Sprintf("Skilled in %s.", strings.Join(top, ", ")))
	}
	if len(experience) > 0 {
		if hl := experienceHighlight(experience[0]); hl != "" {
			parts = append(parts, "Experience includes: "+hl)
		}
	}

	bio := strings.TrimSpace(strings.Join(parts, " "))
	if bio == "" {
		return fallbackBio
	}
	return bio
}

// experienceHighlight picks the leading text of an entry and truncates it.
func experienceHighlight(e types.ExperienceEntry) string {
	lead := e.Position
	if lead == "" {
		lead = e.Company
	}
	if lead == "" && len(e.Description) > 0 {
		lead = e.Description[0]
	}
	if lead == "" {
		lead = e.Dates
	}
	if r := []rune(lead); len(r) > bioHighlightLimit {
		return string(r[:bioHighlightLimit]) + "..."
	}
	return lead
}
