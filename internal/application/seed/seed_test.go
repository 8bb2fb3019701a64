package seed

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/portfolio-builder/internal/domain/portfolio"
)

var now = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func TestExpand_FifteenDistinctIDs(t *testing.T) {
	got := DefaultSeeder().Seed(now)
	require.Len(t, got, 15)

	want := map[string]bool{}
	for j := 1; j <= 5; j++ {
		for i := 1; i <= 3; i++ {
			want[fmt.Sprintf("sample-%d-copy-%d", j, i)] = true
		}
	}
	seen := map[string]bool{}
	for _, p := range got {
		assert.True(t, want[p.ID], "unexpected id %s", p.ID)
		assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
	}
}

func TestExpand_Deterministic(t *testing.T) {
	assert.Equal(t, DefaultSeeder().Seed(now), DefaultSeeder().Seed(now))
}

func TestExpand_PerturbsCopies(t *testing.T) {
	got := Expand(SampleTemplates(), 3, now)

	// copy 2 (i=1) of template 4 (j=3) sits at index i*5+j.
	p := got[1*5+3]
	assert.Equal(t, "sample-4-copy-2", p.ID)
	assert.Equal(t, "Emma Thompson 2", p.Hero.Name)
	assert.Equal(t, "AI Research Scientist 2", p.Hero.Title)
	assert.Equal(t, "copy2.emma.thompson@ai-research.com", p.About.Email)
	assert.Equal(t, "+1 (555) 101-203-301", p.About.Phone)
	assert.Equal(t, portfolio.TemplateTech, p.Template)

	wantStamp := now.Add(-3 * 24 * time.Hour).Add(-2 * time.Hour)
	assert.Equal(t, wantStamp, p.CreatedAt)
	assert.Equal(t, wantStamp, p.UpdatedAt)

	// untouched fields are copied verbatim
	assert.Equal(t, "emma.thompson@ai-research.com", p.Contact.Email)
	assert.Equal(t, "Explore Research", p.Hero.CtaText)
	assert.Len(t, p.Skills, 6)
}

func TestExpand_FirstCopyOfFirstTemplateIsNewest(t *testing.T) {
	got := Expand(SampleTemplates(), 3, now)
	assert.Equal(t, "sample-1-copy-1", got[0].ID)
	assert.Equal(t, now, got[0].CreatedAt)
	for _, p := range got[1:] {
		assert.True(t, p.CreatedAt.Before(now))
	}
}

func TestExpand_DoesNotAliasTemplates(t *testing.T) {
	templates := SampleTemplates()
	got := Expand(templates, 2, now)

	got[0].Skills[0].Name = "Changed"
	got[0].Projects[0].Technologies[0] = "Changed"

	assert.Equal(t, "React", templates[0].Skills[0].Name)
	assert.Equal(t, "React", got[5].Skills[0].Name)
	assert.Equal(t, "React", templates[0].Projects[0].Technologies[0])
	assert.Equal(t, "James Wilson", templates[0].Hero.Name)
}

func TestExpand_NoCopies(t *testing.T) {
	assert.Empty(t, Expand(SampleTemplates(), 0, now))
}

func TestSampleTemplates_PassValidation(t *testing.T) {
	for _, d := range SampleTemplates() {
		assert.NoError(t, portfolio.ValidateDraft(d), d.Hero.Name)
	}
}

func TestSampleTemplates_OneTemplateEach(t *testing.T) {
	var got []portfolio.Template
	for _, d := range SampleTemplates() {
		got = append(got, d.Template)
	}
	assert.Equal(t, portfolio.Templates, got)
}
