package analysis

import (
	"strings"

	"github.com/artem13815/folio/pkg/nlp"
	"github.com/artem13815/folio/pkg/resume"
)

// Keywords сравнивает резюме с описанием вакансии. Пустое описание даёт
// нейтральный результат (Applicable=false), а не ошибку.
func Keywords(in resume.Input, jobDescription string) KeywordAnalysis {
	return matchKeywords(flatten(in), jobDescription)
}

func matchKeywords(resumeText, jobDescription string) KeywordAnalysis {
	out := KeywordAnalysis{Keywords: []string{}, Matched: []string{}, Missing: []string{}}
	if strings.TrimSpace(jobDescription) == "" {
		return out
	}
	out.Applicable = true
	out.Keywords = nlp.ExtractKeywords(jobDescription)
	hay := nlp.NewHaystack(resumeText)
	for _, kw := range out.Keywords {
		if hay.Contains(kw) {
			out.Matched = append(out.Matched, kw)
		} else {
			out.Missing = append(out.Missing, kw)
		}
	}
	if len(out.Keywords) > 0 {
		out.MatchRatio = float64(len(out.Matched)) / float64(len(out.Keywords))
	}
	return out
}

// flatten склеивает всё, где может встретиться ключевое слово.
func flatten(in resume.Input) string {
	var b strings.Builder
	add := func(s string) {
		if s == "" {
			return
		}
		b.WriteString(s)
		b.WriteByte('\n')
	}
	add(in.PersonalInfo.Title)
	add(in.PersonalInfo.Summary)
	for _, cat := range resume.Categories {
		for _, s := range in.Skills[cat] {
			add(s)
		}
	}
	for _, e := range in.Experience {
		add(e.Title)
		add(e.Description)
		for _, s := range e.Responsibilities {
			add(s)
		}
		for _, s := range e.Achievements {
			add(s)
		}
		for _, s := range e.Technologies {
			add(s)
		}
	}
	for _, ed := range in.Education {
		add(ed.Degree)
		add(ed.Field)
	}
	return b.String()
}
