package portfolio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDocument() Portfolio {
	return Portfolio{
		PersonalInfo: PersonalInfo{
			Name:  "Ada Example",
			Title: "Software Engineer",
			Bio:   "Builds things.",
		},
		Experience: []Experience{
			{ID: "exp-1", CompanyName: "Acme", Role: "Engineer", Dates: "2020 - 2022"},
		},
		SideProjects: []SideProject{
			{ID: "proj-1", Name: "Widget", Description: "A widget."},
		},
		Skills:      []Skill{{Name: "Go"}},
		SocialLinks: []SocialLink{{Platform: "GitHub", URL: "https://github.com/ada"}},
		Contact:     Contact{Email: "ada@example.com", IntroText: "Say hi."},
	}
}

func TestPortfolio_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *Portfolio)
		wantErr string
	}{
		{name: "valid document", mutate: func(p *Portfolio) {}, wantErr: ""},
		{
			name:    "missing name",
			mutate:  func(p *Portfolio) { p.PersonalInfo.Name = "" },
			wantErr: "personal_info.name",
		},
		{
			name:    "missing title",
			mutate:  func(p *Portfolio) { p.PersonalInfo.Title = "" },
			wantErr: "personal_info.title",
		},
		{
			name:    "experience without id",
			mutate:  func(p *Portfolio) { p.Experience[0].ID = "" },
			wantErr: "id is required",
		},
		{
			name: "duplicate experience id",
			mutate: func(p *Portfolio) {
				p.Experience = append(p.Experience, Experience{ID: "exp-1", CompanyName: "Other"})
			},
			wantErr: "duplicate id",
		},
		{
			name:    "side project without name",
			mutate:  func(p *Portfolio) { p.SideProjects[0].Name = "" },
			wantErr: "name is required",
		},
		{
			name:    "skill without name",
			mutate:  func(p *Portfolio) { p.Skills[0].Name = "" },
			wantErr: "name is required",
		},
		{
			name:    "social link without url",
			mutate:  func(p *Portfolio) { p.SocialLinks[0].URL = "" },
			wantErr: "platform and url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := validDocument()
			tt.mutate(&doc)

			err := doc.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "portfolio.yaml")

	content := `
personal_info:
  name: Ada Example
  title: Software Engineer
  bio: "Builds things."
experience:
  - id: exp-1
    company_name: Acme
    role: Engineer
    dates: "2020 - 2022"
    description: Built widgets.
    technologies: [Go, MySQL]
side_projects:
  - id: proj-1
    name: Widget
    description: A widget.
    technologies: [Go]
skills:
  - name: Go
social_links:
  - platform: GitHub
    url: https://github.com/ada
contact:
  email: ada@example.com
  intro_text: Say hi.
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Ada Example", p.PersonalInfo.Name)
	require.Len(t, p.Experience, 1)
	assert.Equal(t, []string{"Go", "MySQL"}, p.Experience[0].Technologies)
	require.Len(t, p.SideProjects, 1)
	assert.Equal(t, "Widget", p.SideProjects[0].Name)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte(":\n  - not yaml"), 0o644))
	_, err = Load(bad)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("personal_info:\n  title: Engineer\n"), 0o644))
	_, err = Load(invalid)
	assert.Error(t, err)
}
