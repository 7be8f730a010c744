package resume

import "testing"

func TestLocationTaggerNilReceiver(t *testing.T) {
	var tagger *LocationTagger
	if got := tagger.Location("Works out of Berlin"); got != "" {
		t.Errorf("location = %q, want empty for nil tagger", got)
	}
}

func TestNewLocationTaggerDisabled(t *testing.T) {
	t.Setenv("NER_DISABLED", "1")
	if tagger := NewLocationTagger(); tagger != nil {
		t.Error("tagger must be nil when NER_DISABLED is set")
	}
}
