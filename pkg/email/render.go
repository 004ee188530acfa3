package email

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/jobiq/jobiq/pkg/domain"
)

// Renderer produces the digest email body. Job descriptions arrive from
// ingestion as untrusted HTML and are sanitized before they reach a mail
// client.
type Renderer struct {
	baseURL   string
	htmlTmpl  *template.Template
	sanitizer *bluemonday.Policy
	stripper  *bluemonday.Policy
}

const htmlTemplate = `<html>
<body>
<p>Hi {{.Name}},</p>
<p>Here are this week's top job matches for you:</p>
{{range .Jobs}}
<div>
  <h3><a href="{{.URL}}">{{.Title}}</a> at {{.Company}}</h3>
  {{if .Location}}<p>{{.Location}}</p>{{end}}
  {{if .Salary}}<p>{{.Salary}}</p>{{end}}
  <p>{{.Description}}</p>
</div>
{{end}}
<p>Manage your digest preferences at <a href="{{.BaseURL}}/settings">{{.BaseURL}}/settings</a>.</p>
</body>
</html>`

// NewRenderer creates a digest renderer
func NewRenderer(baseURL string) (*Renderer, error) {
	tmpl, err := template.New("digest").Parse(htmlTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse digest template: %w", err)
	}

	return &Renderer{
		baseURL:   strings.TrimRight(baseURL, "/"),
		htmlTmpl:  tmpl,
		sanitizer: bluemonday.UGCPolicy(),
		stripper:  bluemonday.StrictPolicy(),
	}, nil
}

type renderedJob struct {
	URL         string
	Title       string
	Company     string
	Location    string
	Salary      string
	Description template.HTML
}

// RenderHTML renders the sanitized HTML digest body
func (r *Renderer) RenderHTML(displayName string, jobs []*domain.Job) (string, error) {
	data := struct {
		Name    string
		BaseURL string
		Jobs    []renderedJob
	}{
		Name:    displayName,
		BaseURL: r.baseURL,
		Jobs:    make([]renderedJob, 0, len(jobs)),
	}

	for _, job := range jobs {
		data.Jobs = append(data.Jobs, renderedJob{
			URL:      job.URL,
			Title:    job.Title,
			Company:  job.Company,
			Location: job.Location,
			Salary:   formatSalary(job),
			// sanitized, safe to inject as HTML
			Description: template.HTML(r.sanitizer.Sanitize(snippet(job.Description, 400))), //nolint:gosec
		})
	}

	var sb strings.Builder
	if err := r.htmlTmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("execute digest template: %w", err)
	}
	return sb.String(), nil
}

// RenderText renders the plain-text digest body
func (r *Renderer) RenderText(displayName string, jobs []*domain.Job) (string, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Hi %s,\n\nHere are this week's top job matches for you:\n\n", displayName)

	for i, job := range jobs {
		fmt.Fprintf(&sb, "%d. %s at %s\n", i+1, job.Title, job.Company)
		if job.Location != "" {
			fmt.Fprintf(&sb, "   %s\n", job.Location)
		}
		if salary := formatSalary(job); salary != "" {
			fmt.Fprintf(&sb, "   %s\n", salary)
		}
		if desc := strings.TrimSpace(r.stripper.Sanitize(snippet(job.Description, 200))); desc != "" {
			fmt.Fprintf(&sb, "   %s\n", desc)
		}
		fmt.Fprintf(&sb, "   %s\n\n", job.URL)
	}

	fmt.Fprintf(&sb, "Manage your digest preferences at %s/settings\n", r.baseURL)
	return sb.String(), nil
}

func formatSalary(job *domain.Job) string {
	switch {
	case job.SalaryMin > 0 && job.SalaryMax > job.SalaryMin:
		return fmt.Sprintf("%s %d - %d", job.Currency, job.SalaryMin, job.SalaryMax)
	case job.SalaryMin > 0:
		return fmt.Sprintf("%s %d", job.Currency, job.SalaryMin)
	default:
		return ""
	}
}

func snippet(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	cut := s[:maxLen]
	if idx := strings.LastIndex(cut, " "); idx > 0 {
		cut = cut[:idx]
	}
	return cut + "…"
}
