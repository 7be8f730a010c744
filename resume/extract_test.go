package resume

import (
	"reflect"
	"strings"
	"testing"
)

func TestExtractName(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{
			name:  "first line",
			lines: []string{"John Smith", "Software Engineer"},
			want:  "John Smith",
		},
		{
			name:  "three tokens",
			lines: []string{"Jane Mary Doe"},
			want:  "Jane Mary Doe",
		},
		{
			name:  "skips contact line",
			lines: []string{"john@example.com", "John Smith"},
			want:  "John Smith",
		},
		{
			name:  "disqualifying word",
			lines: []string{"Delhi University", "resume body"},
			want:  "Unknown",
		},
		{
			name:  "all caps rejected",
			lines: []string{"JOHN SMITH"},
			want:  "Unknown",
		},
		{
			name:  "beyond first five lines ignored",
			lines: []string{"a", "b", "c", "d", "e", "John Smith"},
			want:  "Unknown",
		},
		{
			name:  "empty input",
			lines: nil,
			want:  "Unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractName(tt.lines); got != tt.want {
				t.Errorf("extractName = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractSkillsEmpty(t *testing.T) {
	skills, categories := extractSkills("")
	if len(skills) != 0 {
		t.Errorf("skills = %v, want empty", skills)
	}
	if skills == nil {
		t.Error("skills must be an empty list, not nil")
	}
	if categories != nil {
		t.Errorf("categories = %v, want nil", categories)
	}
}

func TestExtractSkills(t *testing.T) {
	skills, categories := extractSkills("Python, SQL; Docker\nLeadership\nX\na very long skill phrase spanning many words")

	want := []string{"Python", "Sql", "Docker", "Leadership"}
	if !reflect.DeepEqual(skills, want) {
		t.Errorf("skills = %v, want %v", skills, want)
	}

	if got := categories["programming"]; !reflect.DeepEqual(got, []string{"Python"}) {
		t.Errorf("programming = %v", got)
	}
	if got := categories["database"]; !reflect.DeepEqual(got, []string{"Sql"}) {
		t.Errorf("database = %v", got)
	}
	if got := categories["tools"]; !reflect.DeepEqual(got, []string{"Docker"}) {
		t.Errorf("tools = %v", got)
	}
	if got := categories["soft_skills"]; !reflect.DeepEqual(got, []string{"Leadership"}) {
		t.Errorf("soft_skills = %v", got)
	}
}

func TestExtractSkillsUncategorized(t *testing.T) {
	skills, categories := extractSkills("Terraform, Figma")
	if len(skills) != 2 {
		t.Fatalf("skills = %v", skills)
	}
	if got := categories[uncategorized]; !reflect.DeepEqual(got, []string{"Terraform", "Figma"}) {
		t.Errorf("uncategorized = %v", got)
	}
}

func TestExtractSummary(t *testing.T) {
	t.Run("between header and next section", func(t *testing.T) {
		text := "John Smith\nSummary\nSeasoned backend developer with ten years of experience.\nSkills\nGo"
		got := extractSummary(text, cleanLines(text), "John Smith")
		if !strings.Contains(got, "Seasoned backend developer") {
			t.Errorf("summary = %q", got)
		}
		if strings.Contains(got, "Go") {
			t.Errorf("summary leaked into next section: %q", got)
		}
	})

	t.Run("leading lines fallback", func(t *testing.T) {
		text := "John Smith\nBuilds reliable systems.\nSkills\nGo"
		got := extractSummary(text, cleanLines(text), "John Smith")
		if got != "Builds reliable systems." {
			t.Errorf("summary = %q", got)
		}
	})

	t.Run("canned default", func(t *testing.T) {
		if got := extractSummary("", nil, "Unknown"); got != defaultSummary {
			t.Errorf("summary = %q, want %q", got, defaultSummary)
		}
	})

	t.Run("word cap", func(t *testing.T) {
		text := "Summary\n" + strings.Repeat("word ", 80)
		got := extractSummary(text, cleanLines(text), "Unknown")
		if n := len(strings.Fields(got)); n != 50 {
			t.Errorf("summary has %d words, want 50", n)
		}
	})
}

func TestExtractExperience(t *testing.T) {
	text := "Software Engineer\nworked on backend systems\nimproved latency\nJan 2020 - Dec 2021\nData Analyst\nanalyzed things"
	entries := extractExperience(text)

	if len(entries) != 3 {
		t.Fatalf("got %d entries: %+v", len(entries), entries)
	}
	if entries[0].Position != "Software Engineer" {
		t.Errorf("position = %q", entries[0].Position)
	}
	if want := []string{"worked on backend systems", "improved latency"}; !reflect.DeepEqual(entries[0].Description, want) {
		t.Errorf("description = %v", entries[0].Description)
	}
	if entries[1].Dates != "Jan 2020 - Dec 2021" {
		t.Errorf("dates = %q", entries[1].Dates)
	}
	if entries[2].Position != "Data Analyst" {
		t.Errorf("position = %q", entries[2].Position)
	}
}

func TestExtractExperienceEmpty(t *testing.T) {
	if entries := extractExperience(""); len(entries) != 0 {
		t.Errorf("entries = %+v, want none", entries)
	}
}

func TestExtractExperienceShortEntriesDropped(t *testing.T) {
	if entries := extractExperience("Acme\nBeta"); len(entries) != 0 {
		t.Errorf("entries = %+v, want none", entries)
	}
}

func TestExtractProjects(t *testing.T) {
	text := "Portfolio Website\ntech stack: React, Node\nbuilt a personal site"
	projects := extractProjects(text)

	if len(projects) != 1 {
		t.Fatalf("got %d projects: %+v", len(projects), projects)
	}
	p := projects[0]
	if p.Name != "Portfolio Website" {
		t.Errorf("name = %q", p.Name)
	}
	if want := []string{"React", "Node"}; !reflect.DeepEqual(p.Technologies, want) {
		t.Errorf("technologies = %v", p.Technologies)
	}
	if want := []string{"built a personal site"}; !reflect.DeepEqual(p.Description, want) {
		t.Errorf("description = %v", p.Description)
	}
}

func TestExtractEducation(t *testing.T) {
	text := "B.Tech Computer Science, ABC University\n2016 - 2020\ncgpa: 8.7"
	education := extractEducation(text)

	if len(education) != 1 {
		t.Fatalf("got %d entries: %+v", len(education), education)
	}
	e := education[0]
	if !strings.Contains(e.Degree, "B.Tech") {
		t.Errorf("degree = %q", e.Degree)
	}
	if e.Major != "computer science" {
		t.Errorf("major = %q", e.Major)
	}
	if !strings.Contains(e.Institute, "ABC University") {
		t.Errorf("institute = %q", e.Institute)
	}
	if e.Duration != "2016 - 2020" {
		t.Errorf("duration = %q", e.Duration)
	}
	if e.Score != "8.7" {
		t.Errorf("score = %q", e.Score)
	}
}

func TestExtractEducationNoDegreeNoInstitute(t *testing.T) {
	if education := extractEducation("attended some classes somewhere"); len(education) != 0 {
		t.Errorf("education = %+v, want none", education)
	}
}

func TestExtractCertifications(t *testing.T) {
	text := "AWS Certified Solutions Architect\nshort\nSkills listed elsewhere\nGoogle Cloud Professional Engineer"
	certs := extractCertifications(text)

	want := []string{"AWS Certified Solutions Architect", "Google Cloud Professional Engineer"}
	if !reflect.DeepEqual(certs, want) {
		t.Errorf("certs = %v, want %v", certs, want)
	}
}
