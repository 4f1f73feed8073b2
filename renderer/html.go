package renderer

import (
	"bytes"
	"fmt"
	"html"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

const htmlPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: Helvetica, Arial, sans-serif; margin: 2em; }
table { border-collapse: collapse; margin-bottom: 1.5em; }
th, td { border: 1px solid #ccc; padding: 4px 8px; }
th { background: #007bff; color: #fff; }
tr:nth-child(even) td { background: #f0f0f0; }
</style>
</head>
<body>
%s</body>
</html>
`

// HTML renders the report as a standalone HTML page.
func HTML(w io.Writer, r *Report) error {
	var body bytes.Buffer
	gm := goldmark.New(goldmark.WithExtensions(extension.Table))
	if err := gm.Convert([]byte(Markdown(r)), &body); err != nil {
		return fmt.Errorf("could not convert report to HTML: %w", err)
	}
	if _, err := fmt.Fprintf(w, htmlPage, html.EscapeString(r.Title), body.String()); err != nil {
		return fmt.Errorf("could not write HTML report: %w", err)
	}
	return nil
}
