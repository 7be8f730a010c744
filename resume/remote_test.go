package resume

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectRemoteParserAbsent(t *testing.T) {
	t.Setenv("RESUME_PARSER_URL", "")
	if r := DetectRemoteParser(context.Background(), nil); r != nil {
		t.Errorf("got %+v, want nil without RESUME_PARSER_URL", r)
	}
}

func TestDetectRemoteParserUnhealthy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	t.Setenv("RESUME_PARSER_URL", srv.URL)
	if r := DetectRemoteParser(context.Background(), nil); r != nil {
		t.Errorf("got %+v, want nil for failing health check", r)
	}
}

func TestDetectRemoteParserUnreachable(t *testing.T) {
	t.Setenv("RESUME_PARSER_URL", "http://127.0.0.1:1")
	if r := DetectRemoteParser(context.Background(), nil); r != nil {
		t.Errorf("got %+v, want nil for unreachable parser", r)
	}
}

func TestRemoteExtract(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/healthy":
			w.WriteHeader(http.StatusOK)
		case "/parse":
			if err := r.ParseMultipartForm(1 << 20); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			if _, _, err := r.FormFile("file"); err != nil {
				http.Error(w, "no file", http.StatusBadRequest)
				return
			}
			json.NewEncoder(w).Encode(map[string]any{
				"name":      "Jane Doe",
				"total_exp": "5 years of backend work",
				"skills":    []string{"Go", "Postgres"},
				"email":     "jane@example.com",
			})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	t.Setenv("RESUME_PARSER_URL", srv.URL)
	remote := DetectRemoteParser(context.Background(), nil)
	require.NotNil(t, remote)

	path := writeResume(t, "resume.txt", sampleResume)
	rec, err := remote.Extract(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", rec.Hero.Name)
	assert.Equal(t, "5 years of backend work", rec.About.Summary)
	assert.Equal(t, []string{"Go", "Postgres"}, rec.Skills)
	assert.Equal(t, "jane@example.com", rec.Contact.Email)
	assert.NotNil(t, rec.Experience)
	assert.NotNil(t, rec.Education)
	assert.NotNil(t, rec.Certifications)
}

func TestRemoteExtractDefaults(t *testing.T) {
	rec := mapParsed(&parseResponse{})

	assert.Equal(t, "Unknown", rec.Hero.Name)
	assert.Equal(t, defaultSummary, rec.About.Summary)
	assert.Empty(t, rec.Skills)
	assert.NotNil(t, rec.Skills)
}

func TestRemoteExtractBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/healthy" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	t.Setenv("RESUME_PARSER_URL", srv.URL)
	remote := DetectRemoteParser(context.Background(), nil)
	require.NotNil(t, remote)

	path := writeResume(t, "resume.txt", sampleResume)
	_, err := remote.Extract(context.Background(), path)
	require.Error(t, err)
}
