package generator

import (
	"github.com/artem13815/folio/pkg/nlp"
	"github.com/artem13815/folio/pkg/resume"
)

var itSupportPhrases = []string{
	"it support", "help desk", "helpdesk", "service desk",
	"desktop support", "technical support", "it technician",
}

// IsITSupportRole сообщает, похоже ли описание вакансии
// на позицию IT-поддержки.
func IsITSupportRole(jobDescription string) bool {
	norm := nlp.Normalize(jobDescription)
	if norm == "" {
		return false
	}
	for _, p := range itSupportPhrases {
		if nlp.ContainsPhrase(norm, nlp.Normalize(p)) {
			return true
		}
	}
	return false
}

// ITSupportSkills оставляет в навыках только корзины it_support и tools.
// Вход без навыков IT-поддержки возвращается без изменений.
func ITSupportSkills(in resume.Input) resume.Input {
	if len(in.Skills[resume.CategoryITSupport]) == 0 {
		return in
	}
	return resume.WithSkills(in, resume.Skills{
		resume.CategoryITSupport: in.Skills[resume.CategoryITSupport],
		resume.CategoryTools:     in.Skills[resume.CategoryTools],
	})
}
