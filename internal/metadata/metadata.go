package metadata

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Descriptor describes one PDF in the corpus. Immutable once loaded.
type Descriptor struct {
	SHA1          string `json:"sha1" validate:"required,hexadecimal,len=40"`
	FileName      string `json:"file_name"`
	CompanyName   string `json:"company_name" validate:"required"`
	MajorIndustry string `json:"major_industry"`

	// Report-level flags extracted upstream. They let boolean questions be
	// answered without opening the PDF.
	HasShareBuybackPlans    bool `json:"has_share_buyback_plans"`
	HasDividendPolicyChange bool `json:"has_dividend_policy_changes"`
	MentionsMergers         bool `json:"mentions_recent_mergers_and_acquisitions"`
}

// Match is a fuzzy lookup candidate with its word-overlap score.
type Match struct {
	Descriptor Descriptor
	Score      int
}

// Store holds the loaded PDF metadata with lookup indexes.
type Store struct {
	descriptors []Descriptor
	bySHA1      map[string]Descriptor
	byCompany   map[string]Descriptor
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads and validates the PDF metadata file.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read metadata file: %w", err)
	}
	var descriptors []Descriptor
	if err := json.Unmarshal(data, &descriptors); err != nil {
		return nil, fmt.Errorf("parse metadata file %s: %w", path, err)
	}
	return New(descriptors)
}

// New builds a store from descriptors, validating each entry.
func New(descriptors []Descriptor) (*Store, error) {
	s := &Store{
		descriptors: descriptors,
		bySHA1:      make(map[string]Descriptor, len(descriptors)),
		byCompany:   make(map[string]Descriptor, len(descriptors)),
	}
	for i, d := range descriptors {
		if err := validate.Struct(&d); err != nil {
			return nil, fmt.Errorf("invalid metadata entry %d: %w", i, err)
		}
		s.bySHA1[d.SHA1] = d
		s.byCompany[strings.ToLower(d.CompanyName)] = d
	}
	return s, nil
}

// Len returns the number of descriptors.
func (s *Store) Len() int { return len(s.descriptors) }

// BySHA1 looks up a descriptor by its PDF hash.
func (s *Store) BySHA1(sha1 string) (Descriptor, bool) {
	d, ok := s.bySHA1[sha1]
	return d, ok
}

// Exact looks up a descriptor by company name, case-insensitively.
func (s *Store) Exact(name string) (Descriptor, bool) {
	d, ok := s.byCompany[strings.ToLower(name)]
	return d, ok
}

// FindCompany resolves a company name to its descriptor. It tries an exact
// match first, then falls back to the best fuzzy match.
func (s *Store) FindCompany(name string) (Descriptor, bool) {
	if d, ok := s.Exact(name); ok {
		return d, true
	}
	matches := s.Matches(name)
	if len(matches) == 0 {
		return Descriptor{}, false
	}
	return matches[0].Descriptor, true
}

// Matches returns all fuzzy candidates for a company name, best first.
// The score is the number of words shared between the two names.
func (s *Store) Matches(name string) []Match {
	want := wordSet(name)
	var matches []Match
	for _, d := range s.descriptors {
		score := overlap(want, wordSet(d.CompanyName))
		if score > 0 {
			matches = append(matches, Match{Descriptor: d, Score: score})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	return matches
}

func wordSet(name string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(name)) {
		set[w] = struct{}{}
	}
	return set
}

func overlap(a, b map[string]struct{}) int {
	n := 0
	for w := range a {
		if _, ok := b[w]; ok {
			n++
		}
	}
	return n
}
