package seed

import (
	"fmt"

	"github.com/khoahotran/portfolio-builder/internal/domain/portfolio"
)

func unsplash(photo string, width int) string {
	return fmt.Sprintf("https://images.unsplash.com/photo-%s?ixlib=rb-4.0.3&auto=format&fit=crop&w=%d&q=80", photo, width)
}

const (
	photoJames   = "1507003211169-0a1dd7228f2d"
	photoMaria   = "1494790108755-2616b612b786"
	photoRobert  = "1472099645785-5658abf4ff4e"
	photoGallery = "1449824913935-59a10b8d2000"
)

// SampleTemplates returns the five reference portfolios, one per template.
// Every call builds fresh values.
func SampleTemplates() []portfolio.Draft {
	return []portfolio.Draft{
		jamesWilson(),
		mariaRodriguez(),
		robertAnderson(),
		emmaThompson(),
		carlosMendez(),
	}
}

func jamesWilson() portfolio.Draft {
	return portfolio.Draft{
		Template: portfolio.TemplateModern,
		Hero: portfolio.Hero{
			Name:     "James Wilson",
			Title:    "Full Stack Developer",
			Subtitle: "Building innovative web solutions with cutting-edge technologies",
			Image:    unsplash(photoJames, 400),
			CtaText:  "View Projects",
			CtaLink:  "#projects",
		},
		About: portfolio.About{
			Bio:        "Passionate full-stack developer with 6+ years of experience creating scalable applications. Specialized in React, Node.js, and cloud technologies.",
			Experience: 6,
			Education:  "B.S. Computer Science, University of California",
			Location:   "Seattle, WA",
			Email:      "james.wilson@techdev.com",
			Phone:      "+1 (555) 234-5678",
			LinkedIn:   "https://linkedin.com/in/jameswilson",
			GitHub:     "https://github.com/jameswilson",
			Website:    "https://jameswilson.dev",
		},
		Skills: []portfolio.Skill{
			{ID: "1", Name: "React", Level: 95, Category: portfolio.CategoryFrontend, Icon: "⚛️"},
			{ID: "2", Name: "Node.js", Level: 92, Category: portfolio.CategoryBackend, Icon: "🟢"},
			{ID: "3", Name: "TypeScript", Level: 90, Category: portfolio.CategoryFrontend, Icon: "📘"},
			{ID: "4", Name: "Python", Level: 88, Category: portfolio.CategoryBackend, Icon: "🐍"},
			{ID: "5", Name: "AWS", Level: 85, Category: portfolio.CategoryTools, Icon: "☁️"},
			{ID: "6", Name: "Docker", Level: 82, Category: portfolio.CategoryTools, Icon: "🐳"},
		},
		Services: []portfolio.Service{
			{ID: "1", Title: "Web Development", Description: "Full-stack web applications with modern frameworks", Icon: "💻"},
			{ID: "2", Title: "API Development", Description: "RESTful and GraphQL APIs with best practices", Icon: "🔌"},
			{ID: "3", Title: "Cloud Solutions", Description: "Scalable cloud infrastructure on AWS and Azure", Icon: "☁️"},
		},
		Projects: []portfolio.Project{
			{
				ID:           "1",
				Title:        "E-Learning Platform",
				Description:  "A comprehensive learning management system with video streaming and analytics",
				Image:        unsplash("1522202176988-66273c2fd55f", 400),
				Technologies: []string{"React", "Node.js", "MongoDB", "AWS"},
				LiveURL:      "https://elearning-platform.com",
				GitHubURL:    "https://github.com/jameswilson/elearning",
				Featured:     true,
			},
			{
				ID:           "2",
				Title:        "Social Media Dashboard",
				Description:  "Real-time social media analytics and management platform",
				Image:        unsplash("1551288049-bebda4e38f71", 400),
				Technologies: []string{"Vue.js", "Firebase", "Chart.js"},
				LiveURL:      "https://social-dashboard.com",
				GitHubURL:    "https://github.com/jameswilson/social-dashboard",
				Featured:     true,
			},
		},
		Testimonials: []portfolio.Testimonial{
			{
				ID:      "1",
				Name:    "Jennifer Davis",
				Role:    "Product Manager",
				Company: "TechCorp",
				Content: "James delivered exceptional results and exceeded our expectations.",
				Avatar:  unsplash(photoMaria, 100),
				Rating:  5,
			},
		},
		Blog: []portfolio.BlogPost{},
		Contact: portfolio.Contact{
			Email:    "james.wilson@techdev.com",
			Phone:    "+1 (555) 234-5678",
			Address:  "Seattle, WA",
			LinkedIn: "https://linkedin.com/in/jameswilson",
			GitHub:   "https://github.com/jameswilson",
			Twitter:  "https://twitter.com/jameswilson",
		},
	}
}

func mariaRodriguez() portfolio.Draft {
	return portfolio.Draft{
		Template: portfolio.TemplateCreative,
		Hero: portfolio.Hero{
			Name:     "Maria Rodriguez",
			Title:    "Creative Director",
			Subtitle: "Transforming ideas into stunning visual experiences",
			Image:    unsplash(photoMaria, 400),
			CtaText:  "See My Work",
			CtaLink:  "#projects",
		},
		About: portfolio.About{
			Bio:        "Creative director with 8+ years of experience in branding, digital design, and visual storytelling. Passionate about creating memorable brand experiences.",
			Experience: 8,
			Education:  "B.F.A. Graphic Design, Parsons School of Design",
			Location:   "Los Angeles, CA",
			Email:      "maria.rodriguez@creative.com",
			Phone:      "+1 (555) 345-6789",
			LinkedIn:   "https://linkedin.com/in/mariarodriguez",
			GitHub:     "https://github.com/mariarodriguez",
			Website:    "https://mariarodriguez.design",
		},
		Skills: []portfolio.Skill{
			{ID: "1", Name: "Adobe Creative Suite", Level: 95, Category: portfolio.CategoryDesign, Icon: "🎨"},
			{ID: "2", Name: "Figma", Level: 92, Category: portfolio.CategoryDesign, Icon: "🎯"},
			{ID: "3", Name: "Sketch", Level: 88, Category: portfolio.CategoryDesign, Icon: "📱"},
			{ID: "4", Name: "Brand Strategy", Level: 90, Category: portfolio.CategoryDesign, Icon: "🎭"},
			{ID: "5", Name: "Motion Graphics", Level: 85, Category: portfolio.CategoryDesign, Icon: "🎬"},
			{ID: "6", Name: "Typography", Level: 92, Category: portfolio.CategoryDesign, Icon: "📝"},
		},
		Services: []portfolio.Service{
			{ID: "1", Title: "Brand Identity", Description: "Complete brand identity and visual systems", Icon: "🎨"},
			{ID: "2", Title: "Digital Design", Description: "Web and mobile interface design", Icon: "💻"},
			{ID: "3", Title: "Creative Direction", Description: "Art direction and creative strategy", Icon: "🎭"},
		},
		Projects: []portfolio.Project{
			{
				ID:           "1",
				Title:        "Fashion Brand Rebrand",
				Description:  "Complete rebranding for a luxury fashion brand including logo, packaging, and digital presence",
				Image:        unsplash("1441986300917-64674bd600d8", 400),
				Technologies: []string{"Adobe Illustrator", "Photoshop", "InDesign"},
				LiveURL:      "https://fashion-rebrand.com",
				Featured:     true,
			},
			{
				ID:           "2",
				Title:        "Restaurant Brand Identity",
				Description:  "Brand identity design for a modern farm-to-table restaurant chain",
				Image:        unsplash("1414235077428-338989a2e8c0", 400),
				Technologies: []string{"Adobe Creative Suite", "Typography", "Color Theory"},
				LiveURL:      "https://restaurant-brand.com",
				Featured:     true,
			},
		},
		Testimonials: []portfolio.Testimonial{
			{
				ID:      "1",
				Name:    "David Thompson",
				Role:    "Marketing Director",
				Company: "Fashion House",
				Content: "Maria transformed our brand with her creative vision and attention to detail.",
				Avatar:  unsplash(photoRobert, 100),
				Rating:  5,
			},
		},
		Blog: []portfolio.BlogPost{},
		Contact: portfolio.Contact{
			Email:    "maria.rodriguez@creative.com",
			Phone:    "+1 (555) 345-6789",
			Address:  "Los Angeles, CA",
			LinkedIn: "https://linkedin.com/in/mariarodriguez",
			GitHub:   "https://github.com/mariarodriguez",
			Twitter:  "https://twitter.com/mariarodriguez",
		},
	}
}

func robertAnderson() portfolio.Draft {
	return portfolio.Draft{
		Template: portfolio.TemplateElegant,
		Hero: portfolio.Hero{
			Name:     "Dr. Robert Anderson",
			Title:    "Senior Business Consultant",
			Subtitle: "Strategic solutions for enterprise transformation and growth",
			Image:    unsplash(photoRobert, 400),
			CtaText:  "Schedule Consultation",
			CtaLink:  "#contact",
		},
		About: portfolio.About{
			Bio:        "Senior business consultant with 15+ years helping Fortune 500 companies optimize operations, drive innovation, and achieve sustainable growth.",
			Experience: 15,
			Education:  "MBA, Harvard Business School",
			Location:   "Chicago, IL",
			Email:      "robert.anderson@consulting.com",
			Phone:      "+1 (555) 456-7890",
			LinkedIn:   "https://linkedin.com/in/robertanderson",
			Website:    "https://robertandersonconsulting.com",
		},
		Skills: []portfolio.Skill{
			{ID: "1", Name: "Strategic Planning", Level: 95, Category: portfolio.CategoryOther, Icon: "📊"},
			{ID: "2", Name: "Business Analysis", Level: 92, Category: portfolio.CategoryOther, Icon: "📈"},
			{ID: "3", Name: "Process Optimization", Level: 90, Category: portfolio.CategoryOther, Icon: "⚙️"},
			{ID: "4", Name: "Change Management", Level: 88, Category: portfolio.CategoryOther, Icon: "🔄"},
			{ID: "5", Name: "Financial Modeling", Level: 85, Category: portfolio.CategoryOther, Icon: "💰"},
			{ID: "6", Name: "Leadership", Level: 92, Category: portfolio.CategoryOther, Icon: "👥"},
		},
		Services: []portfolio.Service{
			{ID: "1", Title: "Strategic Consulting", Description: "Business strategy and transformation consulting", Icon: "📊"},
			{ID: "2", Title: "Process Optimization", Description: "Streamlining operations and improving efficiency", Icon: "⚙️"},
			{ID: "3", Title: "Change Management", Description: "Guiding organizations through transformation", Icon: "🔄"},
		},
		Projects: []portfolio.Project{
			{
				ID:           "1",
				Title:        "Global Supply Chain Optimization",
				Description:  "Reduced operational costs by 30% through supply chain restructuring for a manufacturing company",
				Image:        unsplash("1558618666-fcd25c85cd64", 400),
				Technologies: []string{"Process Mapping", "Data Analysis", "Change Management"},
				Featured:     true,
			},
			{
				ID:           "2",
				Title:        "Digital Transformation Initiative",
				Description:  "Led digital transformation for a traditional retail chain, increasing online sales by 400%",
				Image:        unsplash("1460925895917-afdab827c52f", 400),
				Technologies: []string{"Digital Strategy", "Technology Implementation", "Training Programs"},
				Featured:     true,
			},
		},
		Testimonials: []portfolio.Testimonial{
			{
				ID:      "1",
				Name:    "Lisa Chen",
				Role:    "CEO",
				Company: "Manufacturing Corp",
				Content: "Dr. Anderson's strategic insights completely transformed our business operations.",
				Avatar:  unsplash(photoMaria, 100),
				Rating:  5,
			},
		},
		Blog: []portfolio.BlogPost{},
		Contact: portfolio.Contact{
			Email:    "robert.anderson@consulting.com",
			Phone:    "+1 (555) 456-7890",
			Address:  "Chicago, IL",
			LinkedIn: "https://linkedin.com/in/robertanderson",
			Twitter:  "https://twitter.com/robertanderson",
		},
	}
}

func emmaThompson() portfolio.Draft {
	return portfolio.Draft{
		Template: portfolio.TemplateTech,
		Hero: portfolio.Hero{
			Name:     "Emma Thompson",
			Title:    "AI Research Scientist",
			Subtitle: "Pioneering the future of artificial intelligence and machine learning",
			Image:    unsplash(photoMaria, 400),
			CtaText:  "Explore Research",
			CtaLink:  "#projects",
		},
		About: portfolio.About{
			Bio:        "AI research scientist with 7+ years developing cutting-edge machine learning algorithms. Published 20+ papers and led research teams at top tech companies.",
			Experience: 7,
			Education:  "Ph.D. Computer Science, Stanford University",
			Location:   "San Francisco, CA",
			Email:      "emma.thompson@ai-research.com",
			Phone:      "+1 (555) 567-8901",
			LinkedIn:   "https://linkedin.com/in/emmathompson",
			GitHub:     "https://github.com/emmathompson",
			Website:    "https://emmathompson.ai",
		},
		Skills: []portfolio.Skill{
			{ID: "1", Name: "Machine Learning", Level: 95, Category: portfolio.CategoryBackend, Icon: "🤖"},
			{ID: "2", Name: "Python", Level: 92, Category: portfolio.CategoryBackend, Icon: "🐍"},
			{ID: "3", Name: "TensorFlow", Level: 90, Category: portfolio.CategoryBackend, Icon: "🧠"},
			{ID: "4", Name: "PyTorch", Level: 88, Category: portfolio.CategoryBackend, Icon: "🔥"},
			{ID: "5", Name: "Research", Level: 95, Category: portfolio.CategoryOther, Icon: "🔬"},
			{ID: "6", Name: "Data Science", Level: 90, Category: portfolio.CategoryBackend, Icon: "📊"},
		},
		Services: []portfolio.Service{
			{ID: "1", Title: "AI Consulting", Description: "AI strategy and implementation for businesses", Icon: "🤖"},
			{ID: "2", Title: "Research Collaboration", Description: "Academic and industry research partnerships", Icon: "🔬"},
			{ID: "3", Title: "ML Model Development", Description: "Custom machine learning model development", Icon: "🧠"},
		},
		Projects: []portfolio.Project{
			{
				ID:           "1",
				Title:        "Natural Language Processing Model",
				Description:  "Developed a state-of-the-art NLP model for sentiment analysis with 95% accuracy",
				Image:        unsplash("1551288049-bebda4e38f71", 400),
				Technologies: []string{"Python", "TensorFlow", "NLP", "BERT"},
				LiveURL:      "https://nlp-research.com",
				GitHubURL:    "https://github.com/emmathompson/nlp-model",
				Featured:     true,
			},
			{
				ID:           "2",
				Title:        "Computer Vision System",
				Description:  "Built a computer vision system for autonomous vehicles with real-time object detection",
				Image:        unsplash("1484480974693-6ca0a78fb36b", 400),
				Technologies: []string{"Python", "OpenCV", "PyTorch", "YOLO"},
				LiveURL:      "https://cv-system.com",
				GitHubURL:    "https://github.com/emmathompson/cv-system",
				Featured:     true,
			},
		},
		Testimonials: []portfolio.Testimonial{
			{
				ID:      "1",
				Name:    "Michael Park",
				Role:    "Research Director",
				Company: "AI Labs",
				Content: "Emma's research contributions have been groundbreaking in the field of AI.",
				Avatar:  unsplash(photoRobert, 100),
				Rating:  5,
			},
		},
		Blog: []portfolio.BlogPost{},
		Contact: portfolio.Contact{
			Email:    "emma.thompson@ai-research.com",
			Phone:    "+1 (555) 567-8901",
			Address:  "San Francisco, CA",
			LinkedIn: "https://linkedin.com/in/emmathompson",
			GitHub:   "https://github.com/emmathompson",
			Twitter:  "https://twitter.com/emmathompson",
		},
	}
}

func carlosMendez() portfolio.Draft {
	return portfolio.Draft{
		Template: portfolio.TemplateArtistic,
		Hero: portfolio.Hero{
			Name:     "Carlos Mendez",
			Title:    "Fine Art Photographer",
			Subtitle: "Capturing the beauty of life through artistic photography",
			Image:    unsplash(photoJames, 400),
			CtaText:  "View Gallery",
			CtaLink:  "#projects",
		},
		About: portfolio.About{
			Bio:        "Award-winning fine art photographer with 12+ years of experience. Specializing in landscape, portrait, and conceptual photography with exhibitions worldwide.",
			Experience: 12,
			Education:  "M.F.A. Photography, School of Visual Arts",
			Location:   "Miami, FL",
			Email:      "carlos.mendez@fineart.com",
			Phone:      "+1 (555) 678-9012",
			LinkedIn:   "https://linkedin.com/in/carlosmendez",
			Website:    "https://carlosmendez.art",
		},
		Skills: []portfolio.Skill{
			{ID: "1", Name: "Portrait Photography", Level: 95, Category: portfolio.CategoryDesign, Icon: "📸"},
			{ID: "2", Name: "Adobe Lightroom", Level: 92, Category: portfolio.CategoryDesign, Icon: "🎨"},
			{ID: "3", Name: "Adobe Photoshop", Level: 90, Category: portfolio.CategoryDesign, Icon: "🖌️"},
			{ID: "4", Name: "Fine Art Printing", Level: 88, Category: portfolio.CategoryDesign, Icon: "🖼️"},
			{ID: "5", Name: "Exhibition Curation", Level: 85, Category: portfolio.CategoryDesign, Icon: "🎭"},
			{ID: "6", Name: "Art Direction", Level: 90, Category: portfolio.CategoryDesign, Icon: "🎨"},
		},
		Services: []portfolio.Service{
			{ID: "1", Title: "Fine Art Photography", Description: "Professional fine art photography for galleries and collectors", Icon: "📸"},
			{ID: "2", Title: "Portrait Sessions", Description: "Artistic portrait photography for individuals and families", Icon: "👤"},
			{ID: "3", Title: "Exhibition Services", Description: "Gallery exhibitions and art curation services", Icon: "🖼️"},
		},
		Projects: []portfolio.Project{
			{
				ID:           "1",
				Title:        "Urban Landscape Series",
				Description:  "Award-winning series capturing the architectural beauty of modern cities",
				Image:        unsplash(photoGallery, 400),
				Technologies: []string{"Canon EOS R5", "Adobe Lightroom", "Fine Art Printing"},
				LiveURL:      "https://urban-landscapes.com",
				Featured:     true,
			},
			{
				ID:           "2",
				Title:        "Human Connection Portraits",
				Description:  "Intimate portrait series exploring human emotions and connections",
				Image:        unsplash(photoJames, 400),
				Technologies: []string{"Sony A7S III", "Studio Lighting", "Post-Processing"},
				LiveURL:      "https://human-connection.com",
				Featured:     true,
			},
		},
		Testimonials: []portfolio.Testimonial{
			{
				ID:      "1",
				Name:    "Sarah Williams",
				Role:    "Gallery Director",
				Company: "Contemporary Art Gallery",
				Content: "Carlos's work has been featured in our most successful exhibitions.",
				Avatar:  unsplash(photoMaria, 100),
				Rating:  5,
			},
		},
		Blog: []portfolio.BlogPost{},
		Contact: portfolio.Contact{
			Email:     "carlos.mendez@fineart.com",
			Phone:     "+1 (555) 678-9012",
			Address:   "Miami, FL",
			LinkedIn:  "https://linkedin.com/in/carlosmendez",
			Instagram: "https://instagram.com/carlosmendez",
		},
	}
}
