// Package content holds the static payload rendered by the portfolio:
// the profile, the project catalog and the skills list.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultPayload []byte

var ErrDuplicateID = errors.New("content: duplicate project id")

type Profile struct {
	AcademicBackground string `yaml:"academic_background" json:"academic_background"`
	FirstName          string `yaml:"first_name" json:"first_name"`
	LastName           string `yaml:"last_name" json:"last_name"`
	Description        string `yaml:"description" json:"description"`
	Email              string `yaml:"email" json:"email"`
	Phone              string `yaml:"phone" json:"phone"`
	LinkedIn           string `yaml:"linkedin" json:"linkedin"`
	GitHub             string `yaml:"github" json:"github"`
	Twitter            string `yaml:"twitter" json:"twitter"`
	WhatsApp           string `yaml:"whatsapp" json:"whatsapp"`
	Location           string `yaml:"location" json:"location"`
	AvatarURL          string `yaml:"avatar_url" json:"avatar_url"`
	CVPath             string `yaml:"cv_path" json:"cv_path"`
	FooterYear         int    `yaml:"footer_year" json:"footer_year"`
}

// FullName joins first and last name.
func (p Profile) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// MailTo is the mail client hand-off URI for the profile email.
func (p Profile) MailTo() string {
	return "mailto:" + p.Email
}

type Project struct {
	ID        int      `yaml:"id" json:"id"`
	Title     string   `yaml:"title" json:"title"`
	ShortDesc string   `yaml:"short_desc" json:"short_desc"`
	FullDesc  string   `yaml:"full_desc" json:"full_desc"`
	Tech      []string `yaml:"tech" json:"tech"`
	Emoji     string   `yaml:"emoji" json:"emoji"`
	Link      string   `yaml:"link" json:"link"`
}

// Content is the whole payload. Catalog is built from Projects on load
// and is never mutated afterwards.
type Content struct {
	Profile  Profile   `yaml:"profile" json:"profile"`
	Projects []Project `yaml:"projects" json:"projects"`
	Skills   []string  `yaml:"skills" json:"skills"`

	catalog *Catalog
}

// Catalog returns the immutable project catalog.
func (c *Content) Catalog() *Catalog {
	return c.catalog
}

// Default returns the payload compiled into the binary.
func Default() (*Content, error) {
	return Parse(defaultPayload)
}

// Load reads a YAML payload from path, or the compiled-in payload if path
// is empty.
func Load(path string) (*Content, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("content: read %s: %w", path, err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("content: parse payload: %w", err)
	}
	catalog, err := NewCatalog(c.Projects)
	if err != nil {
		return nil, err
	}
	c.catalog = catalog
	c.Projects = catalog.All()
	return &c, nil
}
