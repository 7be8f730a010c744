package resume

import (
	"context"
	"log/slog"

	"aihub/types"
)

// Extractor converts a resume file into a portfolio record. Both the remote
// parser and the in-house heuristic pipeline satisfy it with an identical
// output contract.
type Extractor interface {
	Extract(ctx context.Context, path string) (*types.PortfolioRecord, error)
}

// HeuristicExtractor is the in-house regex pipeline: loader → section
// segmenter → field extractors → bio. Field extraction never fails; only
// document loading can return an error.
type HeuristicExtractor struct {
	tagger *LocationTagger
}

func NewHeuristicExtractor(tagger *LocationTagger) *HeuristicExtractor {
	return &HeuristicExtractor{tagger: tagger}
}

func (e *HeuristicExtractor) Extract(_ context.Context, path string) (*types.PortfolioRecord, error) {
	raw, lines, err := LoadLines(path)
	if err != nil {
		return nil, err
	}

	sections := sectionTexts(Segment(raw))

	contact := extractContact(raw, e.tagger)
	name := extractName(lines)
	summary := extractSummary(raw, lines, name)
	skills, categories := extractSkills(sections[SectionSkills])
	experience := extractExperience(sections[SectionExperience])

	rec := &types.PortfolioRecord{
		Hero: types.Hero{
			Name:    name,
			Bio:     SynthesizeBio(summary, skills, experience),
			Contact: &contact,
		},
		About:           types.About{Summary: summary},
		Skills:          skills,
		SkillCategories: categories,
		Experience:      experience,
		Education:       extractEducation(sections[SectionEducation]),
		Projects:        extractProjects(sections[SectionProjects]),
		Certifications:  extractCertifications(sections[SectionCertifications]),
		Contact:         contact,
	}
	return rec, nil
}

// Orchestrator selects which extractor runs. The preferred path is the
// remote parser when it was detected at startup; any of its failures is
// logged and absorbed, triggering the fallback transparently.
type Orchestrator struct {
	preferred Extractor
	fallback  Extractor
	logger    *slog.Logger
}

func NewOrchestrator(preferred, fallback Extractor, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{preferred: preferred, fallback: fallback, logger: logger}
}

// ResumeToPortfolio runs exactly one extraction per request. Unsupported
// extensions short-circuit before either path.
func (o *Orchestrator) ResumeToPortfolio(ctx context.Context, path string) (*types.PortfolioRecord, error) {
	if _, err := Detect(path); err != nil {
		return nil, err
	}

	if o.preferred != nil {
		rec, err := o.preferred.Extract(ctx, path)
		if err == nil {
			return rec, nil
		}
		o.logger.Warn("preferred resume parser failed, falling back", "path", path, "error", err)
	}

	return o.fallback.Extract(ctx, path)
}
