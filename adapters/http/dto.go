package http

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/khoahotran/portfolio-builder/internal/domain/portfolio"
	"github.com/khoahotran/portfolio-builder/pkg/apperror"
)

// PortfolioSummaryDTO is one gallery card.
type PortfolioSummaryDTO struct {
	ID        string             `json:"id"`
	Template  portfolio.Template `json:"template"`
	Name      string             `json:"name"`
	Title     string             `json:"title"`
	Image     string             `json:"image"`
	Location  string             `json:"location"`
	Skills    []string           `json:"skills"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

func ToPortfolioSummaryDTO(p portfolio.Portfolio) PortfolioSummaryDTO {
	skills := make([]string, len(p.Skills))
	for i, s := range p.Skills {
		skills[i] = s.Name
	}
	return PortfolioSummaryDTO{
		ID:        p.ID,
		Template:  p.Template,
		Name:      p.Hero.Name,
		Title:     p.Hero.Title,
		Image:     p.Hero.Image,
		Location:  p.About.Location,
		Skills:    skills,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func ToPortfolioSummaryDTOs(list []portfolio.Portfolio) []PortfolioSummaryDTO {
	dtos := make([]PortfolioSummaryDTO, len(list))
	for i, p := range list {
		dtos[i] = ToPortfolioSummaryDTO(p)
	}
	return dtos
}

type TemplateDTO struct {
	ID portfolio.Template `json:"id"`
}

// ParseListQuery reads ?q=&skills=a,b&role=&template= . Skills may also be
// repeated (?skills=a&skills=b).
func ParseListQuery(c *gin.Context) (portfolio.Query, error) {
	q := portfolio.Query{
		Search: strings.TrimSpace(c.Query("q")),
		Filters: portfolio.Filters{
			Role:     strings.TrimSpace(c.Query("role")),
			Template: portfolio.Template(strings.TrimSpace(c.Query("template"))),
		},
	}
	for _, raw := range c.QueryArray("skills") {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				q.Skills = append(q.Skills, s)
			}
		}
	}

	if q.Template != "" && !q.Template.Valid() {
		return portfolio.Query{}, apperror.NewValidation([]apperror.FieldError{
			{Field: "template", Rule: "oneof", Param: templateList()},
		})
	}
	return q, nil
}

func templateList() string {
	names := make([]string, len(portfolio.Templates))
	for i, t := range portfolio.Templates {
		names[i] = string(t)
	}
	return strings.Join(names, " ")
}
