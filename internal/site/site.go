// Package site provides the registry of observing sites.
package site

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"
	_ "time/tzdata" // zone rules without a system zoneinfo

	"gopkg.in/yaml.v3"

	"github.com/litescript/ls-nightsky/internal/astro"
)

//go:embed sites.yaml
var defaultCatalog []byte

// DefaultCode is the site used when none is configured.
const DefaultCode = "kpno"

// Errors returned by the registry.
var (
	ErrNotFound    = errors.New("site not found")
	ErrInvalidSite = errors.New("invalid site record")
)

// Site is an observing location. Values are immutable once built.
type Site struct {
	Code       string
	Name       string
	LonDeg     float64 // east positive
	LatDeg     float64
	ElevationM float64
	Zone       string // IANA time zone
	loc        *time.Location
}

// Location returns the site's time zone.
func (s Site) Location() *time.Location {
	if s.loc == nil {
		return time.UTC
	}
	return s.loc
}

// Observer returns the site as an astro.Observer.
func (s Site) Observer() astro.Observer {
	return astro.Observer{
		LatDeg:     s.LatDeg,
		LonDeg:     s.LonDeg,
		ElevationM: s.ElevationM,
	}
}

// record is the catalog form of a site.
type record struct {
	Code      string  `yaml:"code"`
	Name      string  `yaml:"name"`
	Lon       float64 `yaml:"lon"`
	Lat       float64 `yaml:"lat"`
	Elevation float64 `yaml:"elevation"`
	Zone      string  `yaml:"zone"`
}

type catalog struct {
	Sites []record `yaml:"sites"`
}

// Registry is a read-only set of sites keyed by lowercase code.
// It is safe for concurrent use once built.
type Registry struct {
	sites map[string]Site
}

// Default returns the registry built from the embedded catalog.
func Default() (*Registry, error) {
	return Load(bytes.NewReader(defaultCatalog))
}

// Load parses a YAML catalog.
func Load(r io.Reader) (*Registry, error) {
	reg := &Registry{sites: make(map[string]Site)}
	if err := reg.merge(r, false); err != nil {
		return nil, err
	}
	return reg, nil
}

// LoadWithOverride returns the embedded catalog with the records of the
// file at path added. Records in the file replace embedded ones with the
// same code. An empty path yields the embedded catalog alone.
func LoadWithOverride(path string) (*Registry, error) {
	reg, err := Default()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return reg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open site catalog: %w", err)
	}
	defer f.Close()

	if err := reg.merge(f, true); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return reg, nil
}

func (r *Registry) merge(in io.Reader, replace bool) error {
	var c catalog
	dec := yaml.NewDecoder(in)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse site catalog: %w", err)
	}

	seen := make(map[string]bool, len(c.Sites))
	for i, rec := range c.Sites {
		s, err := rec.site()
		if err != nil {
			return fmt.Errorf("site %d: %w", i+1, err)
		}
		key := strings.ToLower(s.Code)
		if seen[key] {
			return fmt.Errorf("%w: duplicate code %q", ErrInvalidSite, s.Code)
		}
		seen[key] = true
		if _, exists := r.sites[key]; exists && !replace {
			return fmt.Errorf("%w: duplicate code %q", ErrInvalidSite, s.Code)
		}
		r.sites[key] = s
	}
	return nil
}

func (rec record) site() (Site, error) {
	code := strings.TrimSpace(rec.Code)
	switch {
	case code == "":
		return Site{}, fmt.Errorf("%w: empty code", ErrInvalidSite)
	case rec.Lat < -90 || rec.Lat > 90:
		return Site{}, fmt.Errorf("%w: %s latitude %v", ErrInvalidSite, code, rec.Lat)
	case rec.Lon < -180 || rec.Lon > 360:
		return Site{}, fmt.Errorf("%w: %s longitude %v", ErrInvalidSite, code, rec.Lon)
	}

	zone := rec.Zone
	if zone == "" {
		zone = "UTC"
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return Site{}, fmt.Errorf("%w: %s zone %q: %v", ErrInvalidSite, code, zone, err)
	}

	lon := rec.Lon
	if lon > 180 {
		lon -= 360
	}

	name := rec.Name
	if name == "" {
		name = code
	}

	return Site{
		Code:       strings.ToLower(code),
		Name:       name,
		LonDeg:     lon,
		LatDeg:     rec.Lat,
		ElevationM: rec.Elevation,
		Zone:       zone,
		loc:        loc,
	}, nil
}

// Lookup finds a site by code, ignoring case.
func (r *Registry) Lookup(code string) (Site, error) {
	s, ok := r.sites[strings.ToLower(strings.TrimSpace(code))]
	if !ok {
		return Site{}, fmt.Errorf("%w: %q", ErrNotFound, code)
	}
	return s, nil
}

// Codes returns all site codes in sorted order.
func (r *Registry) Codes() []string {
	codes := make([]string, 0, len(r.sites))
	for c := range r.sites {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}

// All returns every site, sorted by code.
func (r *Registry) All() []Site {
	codes := r.Codes()
	out := make([]Site, len(codes))
	for i, c := range codes {
		out[i] = r.sites[c]
	}
	return out
}

// Len returns the number of sites.
func (r *Registry) Len() int {
	return len(r.sites)
}
