package web

import (
	"embed"
	"html/template"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Templates parses the embedded page templates for the gin engine.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))
}

// render draws a page template with the pending flashes and the current
// identity merged into the data, so every page can show notifications and
// the right navigation state.
func render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Flashes"] = popFlashes(c)
	data["User"] = identityFrom(c)
	c.HTML(status, name, data)
}
