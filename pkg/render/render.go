// Package render превращает нормализованное резюме в HTML, Markdown и
// простой текст. Рендер зависит только от входа: без часов и без кэша.
package render

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"

	"github.com/artem13815/folio/pkg/resume"
)

// Formatted: три представления одного резюме.
type Formatted struct {
	HTML      string `json:"html"`
	Markdown  string `json:"markdown"`
	PlainText string `json:"plainText"`
}

var (
	funcs = map[string]any{"join": strings.Join}

	htmlTmpl = htmltemplate.Must(htmltemplate.New("resume").
			Funcs(htmltemplate.FuncMap(funcs)).
			Funcs(htmltemplate.FuncMap{"text": textNode}).
			Parse(htmlTemplate))
	textTmpl = texttemplate.Must(texttemplate.New("resume").Funcs(texttemplate.FuncMap(funcs)).Parse(markdownTemplate + textTemplate))
)

// textNode экранирует только &, < и >. Стандартный экранер html/template
// превращает "C++" в "C&#43;&#43;", и текст перестаёт совпадать с Markdown.
func textNode(s string) htmltemplate.HTML {
	return htmltemplate.HTML(textEscaper.Replace(s))
}

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Render рендерит все три формата. Ошибки бывают только при исполнении
// шаблона и означают ошибку в коде, а не плохой вход.
func Render(in resume.Input) (Formatted, error) {
	doc := newDocument(in)
	var out Formatted
	var buf bytes.Buffer
	if err := htmlTmpl.ExecuteTemplate(&buf, "html", doc); err != nil {
		return Formatted{}, fmt.Errorf("render html: %w", err)
	}
	out.HTML = buf.String()
	buf.Reset()
	if err := textTmpl.ExecuteTemplate(&buf, "markdown", doc); err != nil {
		return Formatted{}, fmt.Errorf("render markdown: %w", err)
	}
	out.Markdown = buf.String()
	buf.Reset()
	if err := textTmpl.ExecuteTemplate(&buf, "text", doc); err != nil {
		return Formatted{}, fmt.Errorf("render text: %w", err)
	}
	out.PlainText = buf.String()
	return out, nil
}
