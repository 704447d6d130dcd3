package render

const htmlTemplate = `{{define "html" -}}
<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{if .Name}}{{.Name}} - {{end}}Resume</title>
<style>
body{font-family:Arial,Helvetica,sans-serif;max-width:800px;margin:0 auto;padding:24px;color:#222;line-height:1.45}
h1{margin-bottom:4px}
h2{border-bottom:1px solid #ccc;padding-bottom:4px;margin-top:28px}
h3{margin-bottom:2px}
.meta{color:#555;margin-top:0}
ul{padding-left:20px}
</style>
</head>
<body>
<header>
<h1>{{if .Name}}{{text .Name}}{{else}}Resume{{end}}</h1>
{{- if .Title}}
<p class="title">{{text .Title}}</p>
{{- end}}
{{- with .Contact}}
<p class="contact">{{text (join . " | ")}}</p>
{{- end}}
{{- with .Links}}
<p class="links">{{range $i, $l := .}}{{if $i}} | {{end}}<a href="{{$l.URL}}">{{text $l.Label}}</a>{{end}}</p>
{{- end}}
</header>
{{- if .Summary}}
<section class="summary">
<h2>Summary</h2>
<p>{{text .Summary}}</p>
</section>
{{- end}}
{{- with .Experience}}
<section class="experience">
<h2>Experience</h2>
{{- range .}}
<article>
<h3>{{text .Heading}}</h3>
{{- if .Meta}}
<p class="meta">{{text .Meta}}</p>
{{- end}}
{{- if .Description}}
<p>{{text .Description}}</p>
{{- end}}
{{- with .Bullets}}
<ul>
{{- range .}}
<li>{{text .}}</li>
{{- end}}
</ul>
{{- end}}
{{- with .Achievements}}
<p><strong>Key achievements:</strong></p>
<ul class="achievements">
{{- range .}}
<li>{{text .}}</li>
{{- end}}
</ul>
{{- end}}
{{- if .Technologies}}
<p><strong>Technologies:</strong> {{text .Technologies}}</p>
{{- end}}
</article>
{{- end}}
</section>
{{- end}}
{{- with .Education}}
<section class="education">
<h2>Education</h2>
{{- range .}}
<article>
<h3>{{text .Heading}}</h3>
{{- if .Meta}}
<p class="meta">{{text .Meta}}</p>
{{- end}}
</article>
{{- end}}
</section>
{{- end}}
{{- with .Skills}}
<section class="skills">
<h2>Skills</h2>
<ul>
{{- range .}}
<li><strong>{{text .Label}}:</strong> {{text .Joined}}</li>
{{- end}}
</ul>
</section>
{{- end}}
</body>
</html>
{{end}}`

const markdownTemplate = `{{define "markdown" -}}
# {{if .Name}}{{.Name}}{{else}}Resume{{end}}
{{- if .Title}}

**{{.Title}}**
{{- end}}
{{- with .Contact}}

{{join . " | "}}
{{- end}}
{{- with .Links}}

{{range $i, $l := .}}{{if $i}} | {{end}}[{{$l.Label}}]({{$l.URL}}){{end}}
{{- end}}
{{- if .Summary}}

## Summary

{{.Summary}}
{{- end}}
{{- with .Experience}}

## Experience
{{- range .}}

### {{.Heading}}
{{- if .Meta}}

*{{.Meta}}*
{{- end}}
{{- if .Description}}

{{.Description}}
{{- end}}
{{- with .Bullets}}
{{range .}}
- {{.}}
{{- end}}
{{- end}}
{{- with .Achievements}}

**Key achievements:**
{{range .}}
- {{.}}
{{- end}}
{{- end}}
{{- if .Technologies}}

**Technologies:** {{.Technologies}}
{{- end}}
{{- end}}
{{- end}}
{{- with .Education}}

## Education
{{- range .}}

### {{.Heading}}
{{- if .Meta}}

{{.Meta}}
{{- end}}
{{- end}}
{{- end}}
{{- with .Skills}}

## Skills
{{range .}}
- **{{.Label}}:** {{.Joined}}
{{- end}}
{{- end}}
{{end}}`

const textTemplate = `{{define "text" -}}
{{if .Name}}{{.Name}}{{else}}Resume{{end}}
{{- if .Title}}
{{.Title}}
{{- end}}
{{- with .Contact}}
{{join . " | "}}
{{- end}}
{{- range .Links}}
{{.Label}}: {{.URL}}
{{- end}}
{{- if .Summary}}

SUMMARY
-------
{{.Summary}}
{{- end}}
{{- with .Experience}}

EXPERIENCE
----------
{{- range .}}

{{.Heading}}
{{- if .Meta}}
{{.Meta}}
{{- end}}
{{- if .Description}}
{{.Description}}
{{- end}}
{{- range .Bullets}}
  - {{.}}
{{- end}}
{{- with .Achievements}}
  Key achievements:
{{- range .}}
  - {{.}}
{{- end}}
{{- end}}
{{- if .Technologies}}
  Technologies: {{.Technologies}}
{{- end}}
{{- end}}
{{- end}}
{{- with .Education}}

EDUCATION
---------
{{- range .}}

{{.Heading}}
{{- if .Meta}}
{{.Meta}}
{{- end}}
{{- end}}
{{- end}}
{{- with .Skills}}

SKILLS
------
{{- range .}}
{{.Label}}: {{.Joined}}
{{- end}}
{{- end}}
{{end}}`
