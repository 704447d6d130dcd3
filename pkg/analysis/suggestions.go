package analysis

import (
	"fmt"

	"github.com/artem13815/folio/pkg/resume"
)

const maxKeywordSuggestions = 5

// Suggest применяет фиксированный набор правил в порядке приоритета.
// Одинаковый вход даёт одинаковый список; если советовать нечего, пустой срез.
func Suggest(in resume.Input, kw KeywordAnalysis, ats ATSReport) []Suggestion {
	out := []Suggestion{}
	covered := map[CheckID]bool{}
	add := func(rule string, p Priority, format string, args ...any) {
		out = append(out, Suggestion{Rule: rule, Priority: p, Message: fmt.Sprintf(format, args...)})
	}

	p := in.PersonalInfo
	if p.FullName == "" || p.Email == "" {
		add("contact_info", PriorityHigh, "Add your full name and email address so recruiters can reach you.")
		covered[CheckContactInfo] = true
	}
	if p.Summary == "" {
		add("summary", PriorityHigh, "Add a 2-3 sentence professional summary at the top of the resume.")
		covered[CheckSummary] = true
	}
	if len(in.Experience) == 0 {
		add("experience", PriorityHigh, "Add at least one work experience entry.")
		covered[CheckExperience] = true
	}
	for _, e := range in.Experience {
		if len(e.Responsibilities)+len(e.Achievements) == 0 {
			add("experience_bullets", PriorityHigh, "Add responsibilities or achievements to %q.", entryName(e))
		}
	}
	if in.BulletCount() > 0 && countQuantified(in) == 0 {
		add("quantify", PriorityMedium, "Quantify your achievements with numbers, percentages or amounts.")
		covered[CheckQuantified] = true
	}
	if n := in.Skills.Count(); n < minSkills {
		add("skills", PriorityMedium, "List at least %d skills; currently %d.", minSkills, n)
		covered[CheckSkills] = true
	}
	for i, m := range kw.Missing {
		if i == maxKeywordSuggestions {
			break
		}
		add("missing_keyword", PriorityMedium, "Consider mentioning %q if it reflects your real experience.", m)
	}
	for _, c := range ats.Failed() {
		if covered[c.ID] {
			continue
		}
		add("ats_"+string(c.ID), PriorityLow, "%s: %s.", c.Name, c.Note)
	}
	return out
}

func entryName(e resume.Experience) string {
	switch {
	case e.Title != "" && e.Company != "":
		return e.Title + " at " + e.Company
	case e.Title != "":
		return e.Title
	case e.Company != "":
		return e.Company
	default:
		return "untitled position"
	}
}
