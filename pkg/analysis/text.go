package analysis

import (
	"fmt"
	"strings"

	"github.com/artem13815/folio/pkg/nlp"
)

var sectionHeadings = []struct {
	id       CheckID
	name     string
	keywords []string
}{
	{CheckExperience, "Work experience section", []string{"experience", "employment", "work history"}},
	{CheckEducation, "Education section", []string{"education", "university", "degree"}},
	{CheckSkills, "Skills section", []string{"skills", "technologies"}},
}

// AnalyzeText анализирует сырой текст загруженного резюме. Структуры нет,
// поэтому часть проверок заменена поиском заголовков разделов.
func AnalyzeText(text, jobDescription string) TextReport {
	words := nlp.WordCount(text)
	lower := strings.ToLower(text)
	quantified := reNumber.MatchString(text)

	checks := []Check{
		newCheck(CheckContactInfo, "Contact information",
			reEmail.MatchString(text), "email address found", "no email address found"),
	}
	for _, s := range sectionHeadings {
		found := ""
		for _, k := range s.keywords {
			if strings.Contains(lower, k) {
				found = k
				break
			}
		}
		checks = append(checks, newCheck(s.id, s.name, found != "",
			fmt.Sprintf("found %q", found), "section heading not found"))
	}
	checks = append(checks,
		newCheck(CheckQuantified, "Quantifiable achievements", quantified,
			"numbers found", "no numbers, percentages or amounts found"),
		lengthCheck(words),
		charsetCheck(text),
	)
	rep := summarize(checks)

	kw := matchKeywords(text, jobDescription)
	out := TextReport{
		KeywordAnalysis: kw,
		Checks:          rep.Checks,
		Score:           rep.Score,
		WordCount:       words,
		Suggestions:     []Suggestion{},
	}
	for i, m := range kw.Missing {
		if i == maxKeywordSuggestions {
			break
		}
		out.Suggestions = append(out.Suggestions, Suggestion{
			Rule:     "missing_keyword",
			Priority: PriorityMedium,
			Message:  fmt.Sprintf("Consider mentioning %q if it reflects your real experience.", m),
		})
	}
	for _, c := range rep.Failed() {
		out.Suggestions = append(out.Suggestions, Suggestion{
			Rule:     "ats_" + string(c.ID),
			Priority: PriorityLow,
			Message:  fmt.Sprintf("%s: %s.", c.Name, c.Note),
		})
	}
	return out
}
