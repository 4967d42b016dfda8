package catalog

// Static suggestion catalog shown during onboarding and on the services
// page. Professionals attach their own price and description; anything not
// listed here is added as a custom service.

type Service struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

type Category struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var Categories = []Category{
	{Value: "all", Label: "All Categories"},
	{Value: "beauty", Label: "Beauty & Wellness"},
	{Value: "auto", Label: "Automotive Services"},
	{Value: "pet", Label: "Pet Services"},
	{Value: "food", Label: "Food & Beverage"},
	{Value: "home", Label: "Home & Lifestyle"},
	{Value: "tech", Label: "Tech & Specialty"},
	{Value: "eco", Label: "Sustainability & Niche"},
	{Value: "creative", Label: "Creative & Retail"},
}

var Services = []Service{
	{
		ID:          "beauty-wellness",
		Title:       "Beauty & Wellness",
		Description: "Experience professional beauty and wellness services in the comfort of your home.",
		Category:    "beauty",
	},
	{
		ID:          "auto-care",
		Title:       "Auto Care",
		Description: "Mobile auto services from oil changes to detailing, right in your driveway.",
		Category:    "auto",
	},
	{
		ID:          "pet-services",
		Title:       "Pet Services",
		Description: "Professional pet grooming, walking, and care services that come to you.",
		Category:    "pet",
	},
	{
		ID:          "food-trucks",
		Title:       "Food Trucks",
		Description: "Bring the restaurant experience to your event with on-demand food truck services.",
		Category:    "food",
	},
	{
		ID:          "home-services",
		Title:       "Home Services",
		Description: "From plumbing to electrical work, get professional home services on demand.",
		Category:    "home",
	},
	{
		ID:          "tech-services",
		Title:       "Tech Services",
		Description: "On-site tech support and repair for all your devices and technology needs.",
		Category:    "tech",
	},
	{
		ID:          "eco-services",
		Title:       "Eco-Friendly Services",
		Description: "Sustainable and eco-friendly services from solar consultations to green cleaning.",
		Category:    "eco",
	},
}

// FindService returns the catalog entry for an id, if any.
func FindService(id string) (Service, bool) {
	for _, s := range Services {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}

// ServicesByCategory filters the catalog; "all" and "" return everything.
func ServicesByCategory(category string) []Service {
	if category == "" || category == "all" {
		return Services
	}
	out := make([]Service, 0, len(Services))
	for _, s := range Services {
		if s.Category == category {
			out = append(out, s)
		}
	}
	return out
}
