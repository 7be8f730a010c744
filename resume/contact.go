package resume

import (
	"regexp"
	"strings"

	"aihub/types"
)

var (
	emailRe    = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	linkedinRe = regexp.MustCompile(`(?i)linkedin\.com/in/[\w-]+`)
	githubRe   = regexp.MustCompile(`(?i)github\.com/[\w-]+`)

	// phonePatterns are tried in priority order; the first match wins.
	// Reordering changes output for ambiguous inputs.
	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\+?[\d][\d\s-]{9,}`),
		regexp.MustCompile(`\(\d{3}\)\s*\d{3}[-\s]?\d{4}`),
		regexp.MustCompile(`\d{3}[-\s]?\d{3}[-\s]?\d{4}`),
	}
)

// locationProbeLimit bounds how much text the entity tagger sees.
const locationProbeLimit = 1000

// extractContact pulls contact details out of the full text. Every field is
// independent and optional; a missing tagger only leaves location empty.
func extractContact(text string, tagger *LocationTagger) types.ContactInfo {
	info := types.ContactInfo{}

	if m := emailRe.FindString(text); m != "" {
		info.Email = m
	}
	for _, re := range phonePatterns {
		if m := re.FindString(text); m != "" {
			info.Phone = strings.TrimSpace(m)
			break
		}
	}
	if m := linkedinRe.FindString(text); m != "" {
		info.LinkedIn = "https://www." + m
	}
	if m := githubRe.FindString(text); m != "" {
		info.GitHub = m
	}

	head := text
	if runes := []rune(head); len(runes) > locationProbeLimit {
		head = string(runes[:locationProbeLimit])
	}
	info.Location = tagger.Location(head)

	return info
}

// hasContactMatch reports whether a line contains any contact detail, used to
// disqualify lines from name detection.
func hasContactMatch(line string) bool {
	if emailRe.MatchString(line) || linkedinRe.MatchString(line) || githubRe.MatchString(line) {
		return true
	}
	for _, re := range phonePatterns {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}
