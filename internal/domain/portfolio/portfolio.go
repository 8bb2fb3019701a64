package portfolio

import (
	"context"
	"errors"
	"time"
)

type Template string

const (
	TemplateModern   Template = "modern"
	TemplateCreative Template = "creative"
	TemplateElegant  Template = "elegant"
	TemplateTech     Template = "tech"
	TemplateArtistic Template = "artistic"
)

// Templates lists every template tag in gallery order.
var Templates = []Template{TemplateModern, TemplateCreative, TemplateElegant, TemplateTech, TemplateArtistic}

func (t Template) Valid() bool {
	switch t {
	case TemplateModern, TemplateCreative, TemplateElegant, TemplateTech, TemplateArtistic:
		return true
	}
	return false
}

type SkillCategory string

const (
	CategoryFrontend SkillCategory = "frontend"
	CategoryBackend  SkillCategory = "backend"
	CategoryDesign   SkillCategory = "design"
	CategoryTools    SkillCategory = "tools"
	CategoryOther    SkillCategory = "other"
)

type Hero struct {
	Name     string `json:"name" validate:"required"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Image    string `json:"image" validate:"omitempty,url"`
	CtaText  string `json:"ctaText"`
	CtaLink  string `json:"ctaLink"`
}

type About struct {
	Bio        string `json:"bio"`
	Experience int    `json:"experience" validate:"gte=0"`
	Education  string `json:"education"`
	Location   string `json:"location"`
	Email      string `json:"email" validate:"omitempty,email"`
	Phone      string `json:"phone"`
	LinkedIn   string `json:"linkedin" validate:"omitempty,url"`
	GitHub     string `json:"github" validate:"omitempty,url"`
	Website    string `json:"website" validate:"omitempty,url"`
}

type Skill struct {
	ID       string        `json:"id"`
	Name     string        `json:"name" validate:"required"`
	Level    int           `json:"level" validate:"min=1,max=100"`
	Category SkillCategory `json:"category" validate:"oneof=frontend backend design tools other"`
	Icon     string        `json:"icon,omitempty"`
}

type Service struct {
	ID          string `json:"id"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Price       string `json:"price,omitempty"`
}

type Project struct {
	ID           string   `json:"id"`
	Title        string   `json:"title" validate:"required"`
	Description  string   `json:"description"`
	Image        string   `json:"image" validate:"omitempty,url"`
	Technologies []string `json:"technologies"`
	LiveURL      string   `json:"liveUrl,omitempty" validate:"omitempty,url"`
	GitHubURL    string   `json:"githubUrl,omitempty" validate:"omitempty,url"`
	Featured     bool     `json:"featured"`
}

type Testimonial struct {
	ID      string `json:"id"`
	Name    string `json:"name" validate:"required"`
	Role    string `json:"role"`
	Company string `json:"company"`
	Content string `json:"content"`
	Avatar  string `json:"avatar" validate:"omitempty,url"`
	Rating  int    `json:"rating" validate:"min=1,max=5"`
}

type BlogPost struct {
	ID      string   `json:"id"`
	Title   string   `json:"title" validate:"required"`
	Excerpt string   `json:"excerpt"`
	Content string   `json:"content"`
	Image   string   `json:"image" validate:"omitempty,url"`
	Date    string   `json:"date"`
	Tags    []string `json:"tags"`
}

type Contact struct {
	Email     string `json:"email" validate:"omitempty,email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	LinkedIn  string `json:"linkedin" validate:"omitempty,url"`
	GitHub    string `json:"github" validate:"omitempty,url"`
	Twitter   string `json:"twitter,omitempty" validate:"omitempty,url"`
	Instagram string `json:"instagram,omitempty" validate:"omitempty,url"`
}

// Draft is everything the builder flow assembles before the record exists.
type Draft struct {
	Template     Template      `json:"template" validate:"required,oneof=modern creative elegant tech artistic"`
	Hero         Hero          `json:"hero"`
	About        About         `json:"about"`
	Skills       []Skill       `json:"skills" validate:"dive"`
	Services     []Service     `json:"services" validate:"dive"`
	Projects     []Project     `json:"projects" validate:"dive"`
	Testimonials []Testimonial `json:"testimonials" validate:"dive"`
	Blog         []BlogPost    `json:"blog" validate:"dive"`
	Contact      Contact       `json:"contact"`
}

type Portfolio struct {
	ID           string        `json:"id"`
	Template     Template      `json:"template"`
	Hero         Hero          `json:"hero"`
	About        About         `json:"about"`
	Skills       []Skill       `json:"skills"`
	Services     []Service     `json:"services"`
	Projects     []Project     `json:"projects"`
	Testimonials []Testimonial `json:"testimonials"`
	Blog         []BlogPost    `json:"blog"`
	Contact      Contact       `json:"contact"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

// New stamps a draft with its identity and timestamps.
func New(id string, d Draft, now time.Time) Portfolio {
	d = d.Clone()
	p := Portfolio{
		ID:           id,
		Template:     d.Template,
		Hero:         d.Hero,
		About:        d.About,
		Skills:       d.Skills,
		Services:     d.Services,
		Projects:     d.Projects,
		Testimonials: d.Testimonials,
		Blog:         d.Blog,
		Contact:      d.Contact,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	p.Normalize()
	return p
}

// Draft strips identity and timestamps.
func (p Portfolio) Draft() Draft {
	c := p.Clone()
	return Draft{
		Template:     c.Template,
		Hero:         c.Hero,
		About:        c.About,
		Skills:       c.Skills,
		Services:     c.Services,
		Projects:     c.Projects,
		Testimonials: c.Testimonials,
		Blog:         c.Blog,
		Contact:      c.Contact,
	}
}

// Normalize replaces nil sections with empty ones so that the JSON form
// never carries null where the gallery expects an array.
func (p *Portfolio) Normalize() {
	if p.Skills == nil {
		p.Skills = []Skill{}
	}
	if p.Services == nil {
		p.Services = []Service{}
	}
	if p.Projects == nil {
		p.Projects = []Project{}
	}
	if p.Testimonials == nil {
		p.Testimonials = []Testimonial{}
	}
	if p.Blog == nil {
		p.Blog = []BlogPost{}
	}
	for i := range p.Projects {
		if p.Projects[i].Technologies == nil {
			p.Projects[i].Technologies = []string{}
		}
	}
	for i := range p.Blog {
		if p.Blog[i].Tags == nil {
			p.Blog[i].Tags = []string{}
		}
	}
}

func (p Portfolio) Clone() Portfolio {
	p.Skills = cloneSlice(p.Skills)
	p.Services = cloneSlice(p.Services)
	p.Projects = cloneProjects(p.Projects)
	p.Testimonials = cloneSlice(p.Testimonials)
	p.Blog = cloneBlog(p.Blog)
	return p
}

func (d Draft) Clone() Draft {
	d.Skills = cloneSlice(d.Skills)
	d.Services = cloneSlice(d.Services)
	d.Projects = cloneProjects(d.Projects)
	d.Testimonials = cloneSlice(d.Testimonials)
	d.Blog = cloneBlog(d.Blog)
	return d
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func cloneProjects(in []Project) []Project {
	out := cloneSlice(in)
	for i := range out {
		out[i].Technologies = cloneSlice(out[i].Technologies)
	}
	return out
}

func cloneBlog(in []BlogPost) []BlogPost {
	out := cloneSlice(in)
	for i := range out {
		out[i].Tags = cloneSlice(out[i].Tags)
	}
	return out
}

var (
	ErrSnapshotNotFound = errors.New("portfolio snapshot not found")
	ErrCorruptSnapshot  = errors.New("portfolio snapshot is corrupt")
)

// Repository is the durable mirror of the whole portfolio list. Every Save
// overwrites the previous snapshot.
type Repository interface {
	Load(ctx context.Context) ([]Portfolio, error)
	Save(ctx context.Context, portfolios []Portfolio) error
}
