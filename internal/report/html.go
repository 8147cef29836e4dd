package report

import (
	"bytes"
	"fmt"
	"html"

	"github.com/blaisecz/wellness-outcomes/internal/domain"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

const htmlStyle = `body{font-family:-apple-system,Segoe UI,Helvetica,Arial,sans-serif;color:#1F2937;max-width:900px;margin:40px auto;padding:0 24px;line-height:1.5}
h1{color:#1E3A8A;border-bottom:3px solid #3B82F6;padding-bottom:8px}
h2{color:#1E40AF;margin-top:32px}
table{border-collapse:collapse;width:100%;margin:12px 0}
th,td{border:1px solid #E5E7EB;padding:6px 10px;font-size:14px}
th{background:#F3F4F6;text-align:left}
code{font-size:11px;letter-spacing:-1px}
em{color:#6B7280}`

// RenderHTML renders the Markdown report as a standalone HTML document.
func RenderHTML(a *domain.OrganizationAnalytics) ([]byte, error) {
	var body bytes.Buffer
	if err := markdown.Convert([]byte(RenderMarkdown(a)), &body); err != nil {
		return nil, fmt.Errorf("render report html: %w", err)
	}

	var doc bytes.Buffer
	fmt.Fprintf(&doc, "<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n<title>%s Wellness Report</title>\n<style>%s</style>\n</head>\n<body>\n",
		html.EscapeString(a.Organization.Name), htmlStyle)
	doc.Write(body.Bytes())
	doc.WriteString("</body>\n</html>\n")
	return doc.Bytes(), nil
}
