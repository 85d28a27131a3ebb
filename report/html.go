package report

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"strings"

	"github.com/gear6io/tablediff/catalog"
	"github.com/gear6io/tablediff/pkg/errors"
)

// htmlTemplate renders the whole report as a single self-contained page
var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"diffClass":  diffClass,
	"formatSize": formatSize,
	"minMax":     minMax,
	"statusName": statusName,
}).Parse(htmlPage))

// WriteHTML renders the report as HTML
func (r *Report) WriteHTML(w io.Writer) error {
	if err := htmlTemplate.Execute(w, r); err != nil {
		return errors.New(ErrRenderFailed, "failed to render HTML report", err)
	}
	return nil
}

// SaveHTML writes the HTML report to a file
func (r *Report) SaveHTML(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.New(ErrWriteFailed, "failed to create report file", err).AddContext("path", path)
	}
	defer file.Close()

	return r.WriteHTML(file)
}

func diffClass(line string) string {
	switch {
	case strings.HasPrefix(line, "+"):
		return "added"
	case strings.HasPrefix(line, "-"):
		return "removed"
	case strings.HasPrefix(line, "@"):
		return "hunk"
	default:
		return "context"
	}
}

func formatSize(bytes int64) string {
	switch {
	case bytes >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(bytes)/(1<<20))
	case bytes >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(bytes)/(1<<10))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

func minMax(col *catalog.ColumnInfo) string {
	if col.MinValue == nil || col.MaxValue == nil {
		return "-"
	}
	return fmt.Sprintf("%g .. %g", *col.MinValue, *col.MaxValue)
}

func statusName(status string) string {
	switch status {
	case "identical":
		return "Identical"
	case "different":
		return "Different"
	case "source-only":
		return "Only in source"
	case "target-only":
		return "Only in target"
	default:
		return status
	}
}

const htmlPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Comparison Report</title>
<style>
body { font-family: -apple-system, "Segoe UI", Roboto, sans-serif; margin: 2em; color: #1c1e21; }
h1 { border-bottom: 2px solid #ddd; padding-bottom: .3em; }
.meta { color: #666; font-size: .9em; }
.summary { display: flex; gap: 1.5em; margin: 1em 0; }
.summary div { background: #f5f6f7; border-radius: 6px; padding: .8em 1.2em; }
.summary .count { font-size: 1.6em; font-weight: 600; }
section.result { border: 1px solid #e0e0e0; border-radius: 6px; margin: 1.2em 0; padding: 1em; }
.status { display: inline-block; border-radius: 4px; padding: .15em .6em; font-size: .85em; font-weight: 600; }
.status.identical { background: #e6f4ea; color: #1e7e34; }
.status.different { background: #fdecea; color: #c0392b; }
.status.source-only, .status.target-only { background: #fef7e0; color: #b7791f; }
pre.diff { background: #fafbfc; border: 1px solid #eee; padding: .8em; overflow-x: auto; font-size: .85em; }
pre.diff .added { color: #1e7e34; }
pre.diff .removed { color: #c0392b; }
pre.diff .hunk { color: #6f42c1; }
table.catalog { border-collapse: collapse; margin: .8em 0; font-size: .85em; }
table.catalog th, table.catalog td { border: 1px solid #ddd; padding: .3em .7em; text-align: left; }
table.catalog th { background: #f5f6f7; }
</style>
</head>
<body>
<h1>Comparison Report</h1>
<p class="meta">Run {{.RunID}} &middot; generated {{.GeneratedAt.Format "2006-01-02 15:04:05 MST"}} &middot; precision {{.Precision}}</p>
<p class="meta">Source: {{.Source}}<br>Target: {{.Target}}</p>

<div class="summary">
  <div><div class="count">{{.Summary.Total}}</div>compared</div>
  <div><div class="count">{{.Summary.Identical}}</div>identical</div>
  <div><div class="count">{{.Summary.Different}}</div>different</div>
  <div><div class="count">{{.Summary.SourceOnly}}</div>source only</div>
  <div><div class="count">{{.Summary.TargetOnly}}</div>target only</div>
</div>

{{range .Results}}
<section class="result">
  <h2>{{if .SourcePath}}{{.SourcePath}}{{else}}{{.TargetPath}}{{end}}</h2>
  <span class="status {{.Status}}">{{statusName .Status}}</span>

  {{if .DiffLines}}
  <pre class="diff">{{range .DiffLines}}<span class="{{diffClass .}}">{{.}}</span>
{{end}}</pre>
  {{end}}

  {{if .SourceCatalog}}
  <h3>Source catalog</h3>
  {{template "catalog" .SourceCatalog}}
  {{end}}
  {{if .TargetCatalog}}
  <h3>Target catalog</h3>
  {{template "catalog" .TargetCatalog}}
  {{end}}
</section>
{{end}}

{{define "catalog"}}
<p class="meta">{{.RowCount}} rows &middot; {{.ColumnCount}} columns &middot; {{formatSize .FileSizeBytes}} &middot; delimiter "{{.Delimiter}}"</p>
<table class="catalog">
  <tr><th>Column</th><th>Type</th><th>Nulls</th><th>Unique</th><th>Range</th></tr>
  {{$cat := .}}
  {{range .Headers}}
  {{with $cat.Column .}}
  <tr>
    <td>{{.Name}}</td>
    <td>{{.DataType}}</td>
    <td>{{printf "%.2f%%" .NullPercentage}}</td>
    <td>{{.UniqueCount}}</td>
    <td>{{minMax .}}</td>
  </tr>
  {{end}}
  {{end}}
</table>
{{end}}
</body>
</html>
`
