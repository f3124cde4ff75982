package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

// Template names a file under templates/ without its extension.
type Template string

const (
	TemplateWelcome Template = "welcome"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Render executes the named template with data.
func Render(name Template, data map[string]string) (string, error) {
	var body bytes.Buffer
	if err := templates.ExecuteTemplate(&body, fmt.Sprintf("%s.html", name), data); err != nil {
		return "", err
	}
	return body.String(), nil
}
