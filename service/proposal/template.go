package proposal

import (
	"bytes"
	"fmt"
	"text/template"
)

const proposalCreatedTpl = `### #{{.Number}} NEW PROPOSAL "{{.Action}}"

{{- range .Info}}
* {{.Key}}: {{.Value}}
{{- end}}
{{- range .Meta}}
* {{.Key}}: {{.Value}}{{if .Hint}} ({{.Hint}}){{end}}
{{- end}}
`

const proposalApprovedTpl = `Approved By {{.ApprovedBy}}

({{.ApprovedCount}} Votes In Total)
`

const proposalPassedTpl = "Proposal Passed"

var templates = map[string]*template.Template{
	"proposal_created":  template.Must(template.New("proposal_created").Parse(proposalCreatedTpl)),
	"proposal_approved": template.Must(template.New("proposal_approved").Parse(proposalApprovedTpl)),
	"proposal_passed":   template.Must(template.New("proposal_passed").Parse(proposalPassedTpl)),
}

func execute(name string, data interface{}) []byte {
	t, ok := templates[name]
	if !ok {
		panic(fmt.Sprintf("template %q not found", name))
	}

	var b bytes.Buffer
	if err := t.Execute(&b, data); err != nil {
		panic(err)
	}

	return b.Bytes()
}
