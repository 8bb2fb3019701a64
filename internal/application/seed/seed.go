// Package seed builds the placeholder portfolios shown when the gallery
// has no stored data.
package seed

import (
	"fmt"
	"time"

	"github.com/khoahotran/portfolio-builder/internal/domain/portfolio"
)

const DefaultCopies = 3

type Seeder struct {
	Templates []portfolio.Draft
	Copies    int
}

func DefaultSeeder() Seeder {
	return Seeder{Templates: SampleTemplates(), Copies: DefaultCopies}
}

func (s Seeder) Seed(now time.Time) []portfolio.Portfolio {
	return Expand(s.Templates, s.Copies, now)
}

// Expand produces len(templates)*copies portfolios. Copies form the outer
// loop, so the result reads copy 1 of every template, then copy 2, and so on.
// Copy i of template j is stamped now - j days - 2i hours.
func Expand(templates []portfolio.Draft, copies int, now time.Time) []portfolio.Portfolio {
	if copies <= 0 {
		return []portfolio.Portfolio{}
	}
	out := make([]portfolio.Portfolio, 0, len(templates)*copies)
	for i := 0; i < copies; i++ {
		for j, tpl := range templates {
			stamp := now.Add(-time.Duration(j) * 24 * time.Hour).Add(-time.Duration(i) * 2 * time.Hour)
			p := portfolio.New(SampleID(j, i), tpl, stamp)

			p.Hero.Name = fmt.Sprintf("%s %d", p.Hero.Name, i+1)
			p.Hero.Title = fmt.Sprintf("%s %d", p.Hero.Title, i+1)
			p.About.Email = fmt.Sprintf("copy%d.%s", i+1, p.About.Email)
			p.About.Phone = fmt.Sprintf("+1 (555) %d-%d-%d", 100+i, 200+j, 300+i)

			out = append(out, p)
		}
	}
	return out
}

// SampleID names a copy of a template, both indexes zero based.
func SampleID(template, dup int) string {
	return fmt.Sprintf("sample-%d-copy-%d", template+1, dup+1)
}
