package portfolio

import (
	"github.com/a-h/templ"

	"github.com/codr1/personafolio/internal/models"
	"github.com/codr1/personafolio/internal/portfolio"
)

type Project struct {
	Title       string
	Description string
	Tags        []string
}

type Profile struct {
	Name     string
	Title    string
	About    string
	Projects []Project
	Skills   []string
	Contact  string
}

type PageData struct {
	Personas []models.PersonaConfig
	State    portfolio.State
	Document portfolio.DocumentSnapshot
	Profile  Profile
	Notice   string
}

func (d PageData) Visible(element portfolio.Element) bool {
	return d.Document.Visible[element]
}

func hiddenClass(visible bool) string {
	if visible {
		return ""
	}
	return "hidden"
}

func selectPath(id models.PersonaID) string {
	return "/api/v1/personas/" + string(id) + "/select"
}

// cardStyle borders a persona card in its primary color.
func cardStyle(persona models.PersonaConfig) templ.SafeCSS {
	if _, err := models.HexToRGB(persona.PrimaryColor); err != nil {
		return ""
	}
	return templ.SafeCSS("border-color: " + persona.PrimaryColor)
}

func DefaultProfile() Profile {
	return Profile{
		Name:  "Alex Rivera",
		Title: "Full-Stack Engineer",
		About: "Builds reliable web platforms and the tooling around them.",
		Projects: []Project{
			{Title: "Realtime Court Booking", Description: "Reservation engine with waitlists and reminders.", Tags: []string{"Go", "SQLite", "htmx"}},
			{Title: "Media Relay", Description: "Streaming proxy with adaptive transcoding.", Tags: []string{"Go", "HLS", "gRPC"}},
			{Title: "Design Token Studio", Description: "Generates themed stylesheets from brand palettes.", Tags: []string{"CSS", "Go", "Color"}},
		},
		Skills:  []string{"Distributed systems", "Frontend architecture", "Team leadership", "Product discovery"},
		Contact: "alex@example.com",
	}
}
