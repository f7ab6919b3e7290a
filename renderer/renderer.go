// Package renderer renders reports to markdown strings.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/foliokit/folio"
)

//go:embed templates
var embedded embed.FS

// templates holds the markdown templates for all reports.
var templates = mustSub(embedded, "templates")

func mustSub(f fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(f, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

// ValuationMarkdown renders a valuation report to a markdown string.
func ValuationMarkdown(report *folio.ValuationReport) string {
	partials := map[string]string{
		"valuation_lines": "valuation_lines.md",
	}
	return renderTemplate("valuation", "valuation.md", partials, report)
}

// PerformanceMarkdown renders a performance report to a markdown string.
func PerformanceMarkdown(report *folio.PerformanceReport) string {
	return renderTemplate("performance", "performance.md", nil, report)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
