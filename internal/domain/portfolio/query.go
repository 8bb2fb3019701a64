package portfolio

import (
	"sort"
	"strings"
)

// Filters are the gallery's structured criteria. Every non-empty criterion
// must hold; empty ones are ignored. All string comparisons fold case.
type Filters struct {
	Skills   []string `json:"skills,omitempty"`
	Role     string   `json:"role,omitempty"`
	Template Template `json:"template,omitempty"`
}

func (f Filters) IsZero() bool {
	return len(f.Skills) == 0 && f.Role == "" && f.Template == ""
}

func (f Filters) Matches(p Portfolio) bool {
	if len(f.Skills) > 0 && !hasAnySkill(p, f.Skills) {
		return false
	}
	if f.Role != "" {
		if !containsFold(p.Hero.Title, f.Role) && !containsFold(p.About.Bio, f.Role) {
			return false
		}
	}
	if f.Template != "" && p.Template != f.Template {
		return false
	}
	return true
}

func hasAnySkill(p Portfolio, names []string) bool {
	for _, s := range p.Skills {
		for _, want := range names {
			if strings.EqualFold(s.Name, want) {
				return true
			}
		}
	}
	return false
}

// MatchesSearch reports whether the free-text query appears in the name,
// title, bio or any skill name. An empty query matches everything.
func MatchesSearch(p Portfolio, q string) bool {
	q = strings.TrimSpace(q)
	if q == "" {
		return true
	}
	if containsFold(p.Hero.Name, q) || containsFold(p.Hero.Title, q) || containsFold(p.About.Bio, q) {
		return true
	}
	for _, s := range p.Skills {
		if containsFold(s.Name, q) {
			return true
		}
	}
	return false
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// Query combines the free-text search with structured filters.
type Query struct {
	Search string
	Filters
}

func (q Query) Matches(p Portfolio) bool {
	return MatchesSearch(p, q.Search) && q.Filters.Matches(p)
}

// Select returns the matching portfolios, preserving order.
func Select(list []Portfolio, match func(Portfolio) bool) []Portfolio {
	out := make([]Portfolio, 0, len(list))
	for _, p := range list {
		if match(p) {
			out = append(out, p.Clone())
		}
	}
	return out
}

// Facets feed the gallery's filter dropdowns.
type Facets struct {
	Skills []string `json:"skills"`
	Roles  []string `json:"roles"`
}

func BuildFacets(list []Portfolio) Facets {
	skills := map[string]struct{}{}
	roles := map[string]struct{}{}
	for _, p := range list {
		for _, s := range p.Skills {
			if s.Name != "" {
				skills[s.Name] = struct{}{}
			}
		}
		if p.Hero.Title != "" {
			roles[p.Hero.Title] = struct{}{}
		}
	}
	return Facets{Skills: sortedKeys(skills), Roles: sortedKeys(roles)}
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
