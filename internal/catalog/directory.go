package catalog

// Seeded professional directory used by the public listing until enough
// verified professionals exist, and by the booking form's pre-selection.

type DirectoryEntry struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Services     []string `json:"services"`
	Rating       float64  `json:"rating"`
	Bio          string   `json:"bio"`
	Location     string   `json:"location"`
	Availability []string `json:"availability"`
	Verified     bool     `json:"verified"`
}

var Directory = []DirectoryEntry{
	{
		ID:           "1",
		Name:         "Jessica Martinez",
		Services:     []string{"Eyelashes", "Makeup"},
		Rating:       4.9,
		Bio:          "Certified lash artist with 5 years experience in both classic and volume lash extensions.",
		Location:     "Mobile - Greater LA Area",
		Availability: []string{"Mon", "Tue", "Thu", "Fri"},
		Verified:     true,
	},
	{
		ID:           "2",
		Name:         "Michael Chen",
		Services:     []string{"Tattoo"},
		Rating:       4.8,
		Bio:          "Specialized in fine line tattoos with over 7 years of experience in the industry.",
		Location:     "Mobile - San Diego Area",
		Availability: []string{"Wed", "Thu", "Fri", "Sat"},
		Verified:     true,
	},
	{
		ID:           "3",
		Name:         "Aisha Johnson",
		Services:     []string{"Spray Tanning", "Waxing"},
		Rating:       4.7,
		Bio:          "Licensed esthetician offering custom spray tans and full body waxing services.",
		Location:     "Mobile - Orange County",
		Availability: []string{"Mon", "Tue", "Sat", "Sun"},
		Verified:     true,
	},
	{
		ID:           "4",
		Name:         "David Kim",
		Services:     []string{"Brow Tint", "Makeup"},
		Rating:       4.5,
		Bio:          "Celebrity makeup artist specializing in natural looks and eyebrow shaping.",
		Location:     "Mobile - Beverly Hills",
		Availability: []string{"Tue", "Wed", "Thu", "Sat"},
		Verified:     false,
	},
	{
		ID:           "5",
		Name:         "Sophia Rodriguez",
		Services:     []string{"Eyelashes", "Brow Tint"},
		Rating:       4.9,
		Bio:          "Specialized in Russian volume lashes and microblading with 4+ years experience.",
		Location:     "Mobile - San Francisco Area",
		Availability: []string{"Mon", "Fri", "Sat", "Sun"},
		Verified:     true,
	},
	{
		ID:           "6",
		Name:         "James Wilson",
		Services:     []string{"Tattoo"},
		Rating:       4.8,
		Bio:          "Award-winning tattoo artist with a specialty in watercolor and minimalist designs.",
		Location:     "Mobile - Portland Area",
		Availability: []string{"Wed", "Thu", "Fri", "Sat"},
		Verified:     true,
	},
}

// VerifiedDirectory mirrors the public listing filter.
func VerifiedDirectory() []DirectoryEntry {
	out := make([]DirectoryEntry, 0, len(Directory))
	for _, p := range Directory {
		if p.Verified {
			out = append(out, p)
		}
	}
	return out
}
