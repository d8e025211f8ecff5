package report

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"moneybrief/internal/model"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"trimPeriod": func(s string) string { return strings.TrimSuffix(s, ".") },
	"date":       func(r *model.Report) string { return r.GeneratedAt.Format("January 2, 2006") },
	"safeCSS":    func(s string) template.CSS { return template.CSS(s) }, // Band colors are built in
}).ParseFS(templateFS, "templates/*.html"))

// RenderHTML renders the on-screen results page
func RenderHTML(r *model.Report) (string, error) {
	return render("page.html", r)
}

// RenderEmailHTML renders the body of the report email
func RenderEmailHTML(r *model.Report) (string, error) {
	return render("email.html", r)
}

func render(name string, r *model.Report) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, r); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}
