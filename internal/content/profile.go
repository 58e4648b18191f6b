// Package content holds the portfolio data rendered by the terminal page and
// the HTML page: a YAML profile plus optional markdown publication files.
package content

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Profile is everything shown on the page.
type Profile struct {
	Name     string `yaml:"name"`
	Headline string `yaml:"headline"`
	Tagline  string `yaml:"tagline"`
	Location string `yaml:"location"`

	// About is markdown.
	About string `yaml:"about"`
	// Technologies is the "recently working with" list under About.
	Technologies []string `yaml:"technologies"`

	Experience     []Experience    `yaml:"experience"`
	Education      []Education     `yaml:"education"`
	Publications   []Publication   `yaml:"publications"`
	Certifications []Certification `yaml:"certifications"`
	Projects       []Project       `yaml:"projects"`
	Skills         []SkillCategory `yaml:"skills"`
	Contact        Contact         `yaml:"contact"`
}

// Experience is one position.
type Experience struct {
	Title        string   `yaml:"title"`
	Company      string   `yaml:"company"`
	Period       string   `yaml:"period"`
	Location     string   `yaml:"location"`
	Highlights   []string `yaml:"highlights"`
	Achievements []string `yaml:"achievements"`
	Skills       []string `yaml:"skills"`
}

// Education is one degree or programme.
type Education struct {
	Degree  string   `yaml:"degree"`
	School  string   `yaml:"school"`
	Period  string   `yaml:"period"`
	Details []string `yaml:"details"`
}

// Publication is one paper. Abstract is markdown.
type Publication struct {
	Slug     string   `yaml:"slug"`
	Title    string   `yaml:"title"`
	Authors  string   `yaml:"authors"`
	Journal  string   `yaml:"journal"`
	Year     int      `yaml:"year"`
	DOI      string   `yaml:"doi"`
	ArxivID  string   `yaml:"arxiv_id"`
	Keywords []string `yaml:"keywords"`
	Abstract string   `yaml:"abstract"`
}

// Certification is one certificate.
type Certification struct {
	Title  string `yaml:"title"`
	Issuer string `yaml:"issuer"`
	Date   string `yaml:"date"`
	URL    string `yaml:"url"`
}

// Project is one project card. Description is markdown.
type Project struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Tech        []string `yaml:"tech"`
	Repo        string   `yaml:"repo"`
	URL         string   `yaml:"url"`
}

// SkillCategory groups skills under a title.
type SkillCategory struct {
	Title  string  `yaml:"title"`
	Skills []Skill `yaml:"skills"`
}

// Skill is a named proficiency from 0 to 100.
type Skill struct {
	Name        string `yaml:"name"`
	Level       int    `yaml:"level"`
	Description string `yaml:"description"`
}

// Contact lists ways to reach the author.
type Contact struct {
	Email   string `yaml:"email"`
	Message string `yaml:"message"`
	Links   []Link `yaml:"links"`
}

// Link is a labelled URL.
type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// Parse decodes and validates a YAML profile.
func Parse(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// LoadProfile reads path, or the built-in profile when path is empty.
func LoadProfile(path string) (*Profile, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile %s: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Load reads the profile and merges publication files from pubDir, if set.
// File publications replace profile entries with the same slug.
func Load(profilePath, pubDir string) (*Profile, error) {
	p, err := LoadProfile(profilePath)
	if err != nil {
		return nil, err
	}
	if pubDir == "" {
		return p, nil
	}
	pubs, err := LoadPublications(pubDir)
	if err != nil {
		return nil, err
	}
	p.mergePublications(pubs)
	return p, nil
}

func (p *Profile) mergePublications(pubs []Publication) {
	bySlug := make(map[string]int, len(p.Publications))
	for i, pub := range p.Publications {
		if pub.Slug != "" {
			bySlug[pub.Slug] = i
		}
	}
	for _, pub := range pubs {
		if i, ok := bySlug[pub.Slug]; ok {
			p.Publications[i] = pub
			continue
		}
		p.Publications = append(p.Publications, pub)
	}
}

// HasSection reports whether the page section id has anything to show.
// Unknown ids never do.
func (p *Profile) HasSection(id string) bool {
	if p == nil {
		return false
	}
	switch id {
	case "hero":
		return true
	case "about":
		return p.About != "" || len(p.Technologies) > 0
	case "experience":
		return len(p.Experience) > 0
	case "education":
		return len(p.Education) > 0
	case "publications":
		return len(p.Publications) > 0
	case "certifications":
		return len(p.Certifications) > 0
	case "projects":
		return len(p.Projects) > 0
	case "skills":
		return len(p.Skills) > 0
	case "contact":
		c := p.Contact
		return c.Message != "" || c.Email != "" || len(c.Links) > 0
	default:
		return false
	}
}

// Validate rejects entries the page cannot render.
func (p *Profile) Validate() error {
	var errs []error
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, errors.New("name is required"))
	}
	for i, e := range p.Experience {
		if e.Title == "" {
			errs = append(errs, fmt.Errorf("experience[%d]: title is required", i))
		}
	}
	for i, e := range p.Education {
		if e.Degree == "" {
			errs = append(errs, fmt.Errorf("education[%d]: degree is required", i))
		}
	}
	for i, pub := range p.Publications {
		if pub.Title == "" {
			errs = append(errs, fmt.Errorf("publications[%d]: title is required", i))
		}
	}
	for i, c := range p.Certifications {
		if c.Title == "" {
			errs = append(errs, fmt.Errorf("certifications[%d]: title is required", i))
		}
	}
	for i, pr := range p.Projects {
		if pr.Title == "" {
			errs = append(errs, fmt.Errorf("projects[%d]: title is required", i))
		}
	}
	for i, cat := range p.Skills {
		if cat.Title == "" {
			errs = append(errs, fmt.Errorf("skills[%d]: title is required", i))
		}
		for j, s := range cat.Skills {
			if s.Level < 0 || s.Level > 100 {
				errs = append(errs, fmt.Errorf("skills[%d].skills[%d] %q: level %d outside 0-100", i, j, s.Name, s.Level))
			}
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid profile: %w", errors.Join(errs...))
	}
	return nil
}
