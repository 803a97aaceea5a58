package layouts

import (
	"fmt"
	"strings"

	"github.com/a-h/templ"

	"github.com/codr1/personafolio/internal/portfolio"
)

type BasePage struct {
	Title       string
	BodyClass   string
	Stylesheets []portfolio.StyleNode
	// RefreshSeconds reloads the page while a generation runs without htmx.
	RefreshSeconds int
}

// styleElement builds the <style> tag for one injected stylesheet. templ does
// not interpolate inside <style>, so the element is assembled here.
func styleElement(node portfolio.StyleNode) string {
	return fmt.Sprintf(`<style id="%s" data-persona="%s">%s</style>`,
		templ.EscapeString(node.ID),
		templ.EscapeString(string(node.Persona)),
		sanitizeCSS(node.CSS),
	)
}

// sanitizeCSS keeps generated CSS from closing its <style> element early.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
