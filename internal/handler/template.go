package handler

import "html/template"

var pageTemplate = template.Must(template.New("index.html").Parse(indexHTML))

// Template returns the parsed page template for gin's SetHTMLTemplate.
func Template() *template.Template {
	return pageTemplate
}

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Dextro DataLake</title>
<style>
body { font-family: sans-serif; margin: 2rem auto; max-width: 72rem; color: #1f2430; }
h1 { font-size: 1.4rem; }
table { border-collapse: collapse; width: 100%; margin-top: 1rem; }
th, td { border: 1px solid #d4d8e0; padding: 0.4rem 0.7rem; text-align: left; }
th { background: #f0f2f7; }
.summary span { display: inline-block; margin-right: 2rem; font-weight: 600; }
.error { border: 1px solid #d9534f; background: #fdf3f2; padding: 1rem; border-radius: 4px; }
.error h2 { margin-top: 0; font-size: 1.1rem; color: #b52b27; }
.empty { color: #6b7280; font-style: italic; margin-top: 1rem; }
a.export { display: inline-block; margin-top: 0.5rem; }
</style>
</head>
<body>
<h1>Dextro DataLake &mdash; {{.Table}}</h1>
{{if .ErrorText}}
<div class="error">
<h2>{{.ErrorKind}}</h2>
<p>{{.ErrorText}}</p>
<p>{{.Remedy}}</p>
</div>
{{else}}
<div class="summary">
<span>Rows: {{.RowCount}}</span>
<span>Columns: {{.ColumnCount}}</span>
</div>
<a class="export" href="/export">Download CSV</a>
{{if eq .RowCount 0}}
{{if .Columns}}
<table>
<tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr>
</table>
{{end}}
<p class="empty">No records in this table.</p>
{{else}}
<table>
<tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr>
{{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{end}}
</table>
{{end}}
{{end}}
</body>
</html>
`
