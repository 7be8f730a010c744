package resume

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"aihub/types"
)

// RemoteExtractor is the preferred extraction path: a high-quality resume
// parser running as an external service. Presence is detected once at
// process start; at runtime its failures never surface past the
// orchestrator.
type RemoteExtractor struct {
	url    string
	client *http.Client
}

// DetectRemoteParser probes RESUME_PARSER_URL. A missing variable or a
// failed probe means the capability is absent and nil is returned.
func DetectRemoteParser(ctx context.Context, logger *slog.Logger) *RemoteExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	url := os.Getenv("RESUME_PARSER_URL")
	if url == "" {
		return nil
	}

	r := &RemoteExtractor{
		url:    strings.TrimRight(url, "/"),
		client: &http.Client{Timeout: 30 * time.Second},
	}
	if err := r.probe(ctx); err != nil {
		logger.Warn("resume parser unavailable, using in-house extractor", "url", url, "error", err)
		return nil
	}
	logger.Info("resume parser detected", "url", url)
	return r
}

func (r *RemoteExtractor) probe(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url+"/healthy", nil)
	if err != nil {
		return err
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("parser health check returned status %d", resp.StatusCode)
	}
	return nil
}

type parseResponse struct {
	Name           string                  `json:"name"`
	TotalExp       string                  `json:"total_exp"`
	Skills         []string                `json:"skills"`
	Experience     []types.ExperienceEntry `json:"experience"`
	Education      []types.EducationEntry  `json:"education"`
	Certifications []string                `json:"certifications"`
	Email          string                  `json:"email"`
	Phone          string                  `json:"phone"`
	LinkedIn       string                  `json:"linkedin"`
	GitHub         string                  `json:"github"`
}

// Extract uploads the file to the parser service and maps its fields into
// the portfolio schema.
func (r *RemoteExtractor) Extract(ctx context.Context, path string) (*types.PortfolioRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url+"/parse", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("resume parser: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("resume parser returned status %d", resp.StatusCode)
	}

	var parsed parseResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode parser response: %w", err)
	}

	return mapParsed(&parsed), nil
}

func mapParsed(p *parseResponse) *types.PortfolioRecord {
	name := p.Name
	if name == "" {
		name = "Unknown"
	}
	summary := p.TotalExp
	if summary == "" {
		summary = defaultSummary
	}

	contact := types.ContactInfo{
		Email:    p.Email,
		Phone:    p.Phone,
		LinkedIn: p.LinkedIn,
		GitHub:   p.GitHub,
	}

	rec := &types.PortfolioRecord{
		Hero: types.Hero{
			Name:    name,
			Bio:     "Auto-extracted from resume",
			Contact: &contact,
		},
		About:          types.About{Summary: summary},
		Skills:         p.Skills,
		Experience:     p.Experience,
		Education:      p.Education,
		Projects:       []types.ProjectEntry{},
		Certifications: p.Certifications,
		Contact:        contact,
	}
	if rec.Skills == nil {
		rec.Skills = []string{}
	}
	if rec.Experience == nil {
		rec.Experience = []types.ExperienceEntry{}
	}
	if rec.Education == nil {
		rec.Education = []types.EducationEntry{}
	}
	if rec.Certifications == nil {
		rec.Certifications = []string{}
	}
	return rec
}
