package render

import (
	"bytes"
	"fmt"
	"html/template"
)

// Page carries the header fields rendered above the block grid.
type Page struct {
	Title       string
	Description string
	Document    Document
}

const pageTemplate = `<article class="project">
<header class="project-header">
<h1>{{.Title}}</h1>
{{if .Description}}<p class="project-description">{{.Description}}</p>{{end}}
</header>
<div class="block-grid">
{{range .Document.Cells}}{{template "cell" .}}{{end}}
</div>
{{if .Document.Team}}<section class="team">
<div class="cell cell-left cell-spacer"></div>
<div class="cell cell-right team-list">
{{range .Document.Team}}<div class="team-member"><span class="team-role">{{.Role}}</span><span class="team-name">{{.Name}}</span></div>
{{end}}</div>
</section>{{end}}
</article>
{{define "cell"}}{{if .IsSpacer}}<div class="cell cell-{{.Column}} cell-spacer"></div>
{{else if .IsImage}}<div class="cell cell-{{.Column}}{{if .RowSpan}} row-{{.Row}} rowspan-{{.RowSpan}}{{else if .Row}} row-{{.Row}}{{end}} cell-image"><img src="{{.Src}}" alt="{{.Alt}}"></div>
{{else}}<div class="cell cell-{{.Column}}{{if .RowSpan}} row-{{.Row}} rowspan-{{.RowSpan}}{{else if .Row}} row-{{.Row}}{{end}} cell-text">{{.HTML}}</div>
{{end}}{{end}}`

var page = template.Must(template.New("project").Parse(pageTemplate))

// HTML renders the page body. Used by both the public project route and
// the admin preview route so the two can never drift apart.
func HTML(p Page) (template.HTML, error) {
	var buf bytes.Buffer
	if err := page.Execute(&buf, p); err != nil {
		return "", fmt.Errorf("render project page: %w", err)
	}
	return template.HTML(buf.String()), nil
}
