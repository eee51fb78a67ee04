// Package portfolio models the static content document driving the site:
// personal info, work experience, side projects, skills, and social links.
// The document is loaded once at startup and treated as immutable.
package portfolio

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type PersonalInfo struct {
	Name             string `yaml:"name" json:"name"`
	Title            string `yaml:"title" json:"title"`
	Bio              string `yaml:"bio" json:"bio"`
	ProfileImage     string `yaml:"profile_image" json:"profile_image"`
	ProfileImageHint string `yaml:"profile_image_hint,omitempty" json:"profile_image_hint,omitempty"`
}

type Experience struct {
	ID           string   `yaml:"id" json:"id"`
	CompanyName  string   `yaml:"company_name" json:"company_name"`
	Role         string   `yaml:"role" json:"role"`
	Dates        string   `yaml:"dates" json:"dates"`
	Description  string   `yaml:"description" json:"description"`
	LogoURL      string   `yaml:"logo_url" json:"logo_url"`
	CompanyURL   string   `yaml:"company_url" json:"company_url"`
	Technologies []string `yaml:"technologies" json:"technologies"`
}

type SideProject struct {
	ID           string   `yaml:"id" json:"id"`
	Name         string   `yaml:"name" json:"name"`
	Description  string   `yaml:"description" json:"description"`
	ImageURL     string   `yaml:"image_url" json:"image_url"`
	ProjectURL   string   `yaml:"project_url" json:"project_url"`
	RepoURL      string   `yaml:"repo_url,omitempty" json:"repo_url,omitempty"`
	Status       string   `yaml:"status,omitempty" json:"status,omitempty"`
	Technologies []string `yaml:"technologies" json:"technologies"`
}

type Skill struct {
	Name string `yaml:"name" json:"name"`
}

type SocialLink struct {
	Platform string `yaml:"platform" json:"platform"`
	URL      string `yaml:"url" json:"url"`
}

type Contact struct {
	Email     string `yaml:"email" json:"email"`
	IntroText string `yaml:"intro_text" json:"intro_text"`
}

// Portfolio is the full content document.
type Portfolio struct {
	PersonalInfo PersonalInfo  `yaml:"personal_info" json:"personal_info"`
	Experience   []Experience  `yaml:"experience" json:"experience"`
	SideProjects []SideProject `yaml:"side_projects" json:"side_projects"`
	Skills       []Skill       `yaml:"skills" json:"skills"`
	SocialLinks  []SocialLink  `yaml:"social_links" json:"social_links"`
	Contact      Contact       `yaml:"contact" json:"contact"`
}

// Load reads and validates a portfolio content document from a YAML file.
func Load(path string) (*Portfolio, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read portfolio content: %w", err)
	}

	var p Portfolio
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse portfolio content: %w", err)
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid portfolio content: %w", err)
	}

	return &p, nil
}

// Validate checks the content document for the fields the site cannot render
// without.
func (p *Portfolio) Validate() error {
	if p.PersonalInfo.Name == "" {
		return fmt.Errorf("personal_info.name is required")
	}
	if p.PersonalInfo.Title == "" {
		return fmt.Errorf("personal_info.title is required")
	}

	seen := make(map[string]bool)
	for i, exp := range p.Experience {
		if exp.ID == "" {
			return fmt.Errorf("experience[%d]: id is required", i)
		}
		if seen[exp.ID] {
			return fmt.Errorf("experience[%d]: duplicate id %q", i, exp.ID)
		}
		seen[exp.ID] = true
		if exp.CompanyName == "" {
			return fmt.Errorf("experience[%d]: company_name is required", i)
		}
	}

	seen = make(map[string]bool)
	for i, sp := range p.SideProjects {
		if sp.ID == "" {
			return fmt.Errorf("side_projects[%d]: id is required", i)
		}
		if seen[sp.ID] {
			return fmt.Errorf("side_projects[%d]: duplicate id %q", i, sp.ID)
		}
		seen[sp.ID] = true
		if sp.Name == "" {
			return fmt.Errorf("side_projects[%d]: name is required", i)
		}
	}

	for i, s := range p.Skills {
		if s.Name == "" {
			return fmt.Errorf("skills[%d]: name is required", i)
		}
	}

	for i, l := range p.SocialLinks {
		if l.Platform == "" || l.URL == "" {
			return fmt.Errorf("social_links[%d]: platform and url are required", i)
		}
	}

	return nil
}
