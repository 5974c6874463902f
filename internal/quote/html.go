package quote

import (
	"fmt"
	"html/template"
	"strings"
)

// HTML renders the document into a standalone page suitable for printing.
func HTML(doc Document) (string, error) {
	var sb strings.Builder
	if err := pageTemplate.Execute(&sb, doc); err != nil {
		return "", fmt.Errorf("executing quote template: %w", err)
	}
	return sb.String(), nil
}

var pageTemplate = template.Must(template.New("quote").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <style>
    body { font-family: Arial, sans-serif; color: #222; margin: 0; padding: 20px; }
    .header { background: linear-gradient(135deg, #ff7043, #ff915f); padding: 28px 30px 24px; color: #fff; border-radius: 18px; text-align: center; margin-bottom: 30px; }
    .header h1 { margin: 0; font-size: 2.2em; letter-spacing: 1px; }
    .header .tagline { margin: 6px 0 0; font-size: 0.95em; opacity: 0.9; }
    .header .date { margin-top: 8px; font-size: 0.8em; font-weight: 600; background: rgba(255,255,255,0.18); display: inline-block; padding: 4px 10px; border-radius: 20px; }
    .section { margin-top: 28px; padding: 22px 24px; border: 1px solid #ffe0d3; border-radius: 16px; background: linear-gradient(180deg, #fff, #fff8f5); }
    .section-title { margin: 0 0 14px; font-size: 1.25em; display: flex; align-items: center; gap: 8px; color: #ff5a22; }
    .feature-list { list-style: none; padding: 0; margin: 0; display: grid; grid-template-columns: 1fr 1fr; gap: 10px 26px; }
    .feature-list li { background: #ffffff; border: 1px solid #ffe0d3; padding: 10px 12px 9px 14px; border-radius: 10px; font-size: 0.9em; display: flex; align-items: flex-start; gap: 8px; }
    .feature-list li:before { content: '✔'; color: #ff7043; font-weight: 700; }
    .summary-box { margin-top: 30px; background: linear-gradient(135deg, #fff0ea, #ffe9e1); border: 2px dashed #ff8a57; padding: 22px 26px 24px; border-radius: 18px; text-align: center; }
    .summary-box h2 { margin: 0 0 10px; font-size: 1.6em; color: #ff4e14; }
    .summary-box .amount { font-size: 2.1em; font-weight: 700; letter-spacing: 1px; color: #d83d00; }
    .contacts { margin-top: 34px; padding: 20px 22px 18px; border-radius: 16px; background: #1f1f1f; color: #fafafa; }
    .contacts h3 { margin: 0 0 14px; font-size: 1.05em; letter-spacing: 1px; text-transform: uppercase; color: #ffb199; }
    .contact-item { display: flex; align-items: center; gap: 10px; font-size: 0.9em; background: #2b2b2b; padding: 10px 12px; border-radius: 10px; margin-bottom: 8px; }
    .contact-icon { background: #ff7043; color: #fff; width: 26px; height: 26px; display: flex; align-items: center; justify-content: center; border-radius: 8px; font-size: 0.85em; font-weight: 600; }
    .footer-note { margin-top: 28px; font-size: 0.65em; text-align: center; opacity: 0.65; letter-spacing: 0.5px; }
    @media (max-width: 600px) { .feature-list { grid-template-columns: 1fr; } .header h1 { font-size: 1.8em; } }
  </style>
</head>
<body>
  <div class="header">
    <h1>{{.Title}}</h1>
    <div class="tagline">{{.Tagline}}</div>
    <div class="date">Proposal Date: {{.Date}}</div>
  </div>

  <div class="section">
    <h3 class="section-title"><span>✅</span> Base Package ({{.BasePrice}})</h3>
    <ul class="feature-list">
      {{range .BaseFeatures}}<li>{{.}}</li>{{end}}
    </ul>
  </div>

  {{if .AddOns}}
  <div class="section">
    <h3 class="section-title"><span>➕</span> Selected Add-On Features</h3>
    <ul class="feature-list">
      {{range .AddOns}}<li>{{.}}</li>{{end}}
    </ul>
  </div>
  {{end}}

  <div class="summary-box">
    <h2>Total Investment</h2>
    <div class="amount">{{.Total}}</div>
  </div>

  <div class="contacts">
    <h3>Contact Details</h3>
    {{range .Contacts}}
    <div class="contact-item">
      <span class="contact-icon">{{.Initial}}</span>
      <strong>{{.Name}}</strong> | {{.Phone}}
    </div>
    {{end}}
  </div>

  <div class="footer-note">
    {{.FooterNote}}
  </div>
</body>
</html>
`))
