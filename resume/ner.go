package resume

import (
	"os"

	prose "github.com/jdkato/prose/v2"
)

// LocationTagger wraps the named-entity model used for location guessing.
// It is probed once at process start and shared read-only; a nil tagger means
// the capability is absent, which is a configuration fact, not an error.
type LocationTagger struct{}

// NewLocationTagger probes the entity model. Returns nil when disabled via
// NER_DISABLED or when the model cannot be initialised.
func NewLocationTagger() *LocationTagger {
	if os.Getenv("NER_DISABLED") != "" {
		return nil
	}
	// Warm the model; first document creation loads it.
	if _, err := prose.NewDocument("probe", prose.WithSegmentation(false)); err != nil {
		return nil
	}
	return &LocationTagger{}
}

// Location returns the first geographic entity found in text, or "".
// Safe to call on a nil tagger.
func (t *LocationTagger) Location(text string) string {
	if t == nil || text == "" {
		return ""
	}
	doc, err := prose.NewDocument(text, prose.WithSegmentation(false))
	if err != nil {
		return ""
	}
	for _, ent := range doc.Entities() {
		if ent.Label == "GPE" || ent.Label == "LOC" {
			return ent.Text
		}
	}
	return ""
}
