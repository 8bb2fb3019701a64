package portfolio

// HeroPatch carries the hero fields a caller wants to change. Nil means keep.
type HeroPatch struct {
	Name     *string `json:"name,omitempty"`
	Title    *string `json:"title,omitempty"`
	Subtitle *string `json:"subtitle,omitempty"`
	Image    *string `json:"image,omitempty" validate:"omitempty,url"`
	CtaText  *string `json:"ctaText,omitempty"`
	CtaLink  *string `json:"ctaLink,omitempty"`
}

type AboutPatch struct {
	Bio        *string `json:"bio,omitempty"`
	Experience *int    `json:"experience,omitempty" validate:"omitempty,gte=0"`
	Education  *string `json:"education,omitempty"`
	Location   *string `json:"location,omitempty"`
	Email      *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone      *string `json:"phone,omitempty"`
	LinkedIn   *string `json:"linkedin,omitempty" validate:"omitempty,url"`
	GitHub     *string `json:"github,omitempty" validate:"omitempty,url"`
	Website    *string `json:"website,omitempty" validate:"omitempty,url"`
}

type ContactPatch struct {
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone     *string `json:"phone,omitempty"`
	Address   *string `json:"address,omitempty"`
	LinkedIn  *string `json:"linkedin,omitempty" validate:"omitempty,url"`
	GitHub    *string `json:"github,omitempty" validate:"omitempty,url"`
	Twitter   *string `json:"twitter,omitempty" validate:"omitempty,url"`
	Instagram *string `json:"instagram,omitempty" validate:"omitempty,url"`
}

// Patch is a partial update. Structured sections merge field by field,
// list sections replace wholesale.
type Patch struct {
	Template     *Template      `json:"template,omitempty" validate:"omitempty,oneof=modern creative elegant tech artistic"`
	Hero         *HeroPatch     `json:"hero,omitempty"`
	About        *AboutPatch    `json:"about,omitempty"`
	Skills       *[]Skill       `json:"skills,omitempty" validate:"omitempty,dive"`
	Services     *[]Service     `json:"services,omitempty" validate:"omitempty,dive"`
	Projects     *[]Project     `json:"projects,omitempty" validate:"omitempty,dive"`
	Testimonials *[]Testimonial `json:"testimonials,omitempty" validate:"omitempty,dive"`
	Blog         *[]BlogPost    `json:"blog,omitempty" validate:"omitempty,dive"`
	Contact      *ContactPatch  `json:"contact,omitempty"`
}

func (pt Patch) IsEmpty() bool {
	return pt.Template == nil && pt.Hero == nil && pt.About == nil &&
		pt.Skills == nil && pt.Services == nil && pt.Projects == nil &&
		pt.Testimonials == nil && pt.Blog == nil && pt.Contact == nil
}

// Apply merges the patch into p. Timestamps are the caller's business.
func (pt Patch) Apply(p *Portfolio) {
	if pt.Template != nil {
		p.Template = *pt.Template
	}
	if h := pt.Hero; h != nil {
		set(&p.Hero.Name, h.Name)
		set(&p.Hero.Title, h.Title)
		set(&p.Hero.Subtitle, h.Subtitle)
		set(&p.Hero.Image, h.Image)
		set(&p.Hero.CtaText, h.CtaText)
		set(&p.Hero.CtaLink, h.CtaLink)
	}
	if a := pt.About; a != nil {
		set(&p.About.Bio, a.Bio)
		set(&p.About.Experience, a.Experience)
		set(&p.About.Education, a.Education)
		set(&p.About.Location, a.Location)
		set(&p.About.Email, a.Email)
		set(&p.About.Phone, a.Phone)
		set(&p.About.LinkedIn, a.LinkedIn)
		set(&p.About.GitHub, a.GitHub)
		set(&p.About.Website, a.Website)
	}
	if pt.Skills != nil {
		p.Skills = cloneSlice(*pt.Skills)
	}
	if pt.Services != nil {
		p.Services = cloneSlice(*pt.Services)
	}
	if pt.Projects != nil {
		p.Projects = cloneProjects(*pt.Projects)
	}
	if pt.Testimonials != nil {
		p.Testimonials = cloneSlice(*pt.Testimonials)
	}
	if pt.Blog != nil {
		p.Blog = cloneBlog(*pt.Blog)
	}
	if c := pt.Contact; c != nil {
		set(&p.Contact.Email, c.Email)
		set(&p.Contact.Phone, c.Phone)
		set(&p.Contact.Address, c.Address)
		set(&p.Contact.LinkedIn, c.LinkedIn)
		set(&p.Contact.GitHub, c.GitHub)
		set(&p.Contact.Twitter, c.Twitter)
		set(&p.Contact.Instagram, c.Instagram)
	}
	p.Normalize()
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
