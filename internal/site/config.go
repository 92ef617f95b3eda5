// Package site serves the personal website: templated pages driven by a
// nav table, with the pre-rendered bibliography embedded on the
// publications page.
package site

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Page describes one page in the site's nav table.
type Page struct {
	ID      string `yaml:"id"`                // route name: served as /<id>.html
	Name    string `yaml:"name"`              // nav link text and page title
	Desc    string `yaml:"desc,omitempty"`    // meta description
	Content string `yaml:"content,omitempty"` // page body HTML (pubs gets the bibliography instead)
}

// Config represents site configuration stored in site.yml.
type Config struct {
	Listen       string   `yaml:"listen,omitempty"`
	BibFiles     []string `yaml:"bib_files"` // ordered: abbreviation file first
	AuthorFilter string   `yaml:"author_filter,omitempty"`
	Pages        []Page   `yaml:"pages"`
}

const (
	// DefaultListen is used when the config omits a listen address.
	DefaultListen = ":8080"
	// PubsPageID is the page that carries the rendered bibliography.
	PubsPageID = "pubs"
	// HomePageID is the page served at the site root.
	HomePageID = "home"
)

// LoadConfig reads and validates a site.yml file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if cfg.Listen == "" {
		cfg.Listen = DefaultListen
	}
	if len(cfg.BibFiles) == 0 {
		return nil, fmt.Errorf("site.yml must list at least one bib file")
	}
	if len(cfg.Pages) == 0 {
		return nil, fmt.Errorf("site.yml must define at least one page")
	}

	seen := make(map[string]bool)
	for i, p := range cfg.Pages {
		if p.ID == "" {
			return nil, fmt.Errorf("page entry %d must have an 'id'", i+1)
		}
		if p.Name == "" {
			return nil, fmt.Errorf("page entry %d (%s) must have a 'name'", i+1, p.ID)
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("duplicate page id %q", p.ID)
		}
		seen[p.ID] = true
	}
	for _, id := range []string{HomePageID, PubsPageID} {
		if !seen[id] {
			return nil, fmt.Errorf("site.yml pages must include %q", id)
		}
	}

	return &cfg, nil
}

// PageByID returns the page with the given id, or false if none exists.
func (c *Config) PageByID(id string) (Page, bool) {
	for _, p := range c.Pages {
		if p.ID == id {
			return p, true
		}
	}
	return Page{}, false
}
