package player

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// templateFuncs provides utility functions for screen templates.
var templateFuncs = sprig.TxtFuncMap()

// renderTemplate expands a screen template with the provided data.
func renderTemplate(tmplStr string, data any) (string, error) {
	tmpl, err := template.New("").Funcs(templateFuncs).Parse(tmplStr)
	if err != nil {
		return "", fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, data)
	if err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}

	return buf.String(), nil
}

const bannerTemplate = `
========================================
          T H E   L I F E   P A T H
========================================
A journey through the stations of a life.
Your choices will shape who you become.
`

const mapTemplate = `
--- The Life Path ---
Traveller: {{ .Player }}
Happiness: {{ .Stats.Happiness }}   Income: {{ .Stats.Income }}   Status: {{ .Stats.Status }}

{{ range $i, $r := .Regions -}}
 {{ add $i 1 }}. {{ $r.Region.Icon.Glyph }} {{ $r.Region.Name }}{{ if $r.Completed }}  [completed]{{ else if $r.Locked }}  [locked]{{ else }}  <- next{{ end }}
{{ end -}}

Progress: {{ .Done }} of {{ .Total }} stages
{{- if .CanFinish }}
All stages complete! Type 'finish' to see who you have become.
{{- end }}
{{- if .Recent }}

Recent travellers:
{{- range .Recent }}
  {{ .Player }} - {{ .Title }}
{{- end }}
{{- end }}
`

const summaryTemplate = `
--- Stage complete: {{ .Name }} ---
{{ if gt .Rewards.Happiness 0 }}  Happiness +{{ .Rewards.Happiness }}
{{ end -}}
{{ if gt .Rewards.Income 0 }}  Income    +{{ .Rewards.Income }}
{{ end -}}
{{ if gt .Rewards.Status 0 }}  Status    +{{ .Rewards.Status }}
{{ end -}}
`

const resultsTemplate = `
========================================
  {{ .Title | upper }}
========================================
{{ .Description }}

Final standing for {{ .Player }}:
  Happiness: {{ .Stats.Happiness }}
  Income:    {{ .Stats.Income }}
  Status:    {{ .Stats.Status }}

Journey time: {{ .Elapsed }}
`
