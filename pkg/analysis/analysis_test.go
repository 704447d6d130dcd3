package analysis

import (
	"strings"

	"github.com/artem13815/folio/pkg/resume"
)

// strongInput passes every structural check.
func strongInput() resume.Input {
	return resume.Normalize(resume.Input{
		PersonalInfo: resume.PersonalInfo{
			FullName: "Jane Doe",
			Email:    "jane@example.com",
			Title:    "Backend Engineer",
			Summary:  "Backend engineer focused on Go services and PostgreSQL.",
		},
		Experience: []resume.Experience{{
			Company: "Acme",
			Title:   "Senior Engineer",
			Responsibilities: []string{
				"Designed a billing service handling 2M requests per day",
				"Led a team of 4 engineers",
				"Migrated 30 services to Kubernetes",
			},
			Achievements: []string{
				"Reduced p99 latency by 40%",
				"Saved $120k per year on infrastructure",
			},
			Technologies: []string{"Go", "Docker"},
		}},
		Education: []resume.Education{{Degree: "BSc", Field: "Computer Science", Institution: "TU Berlin"}},
		Skills: resume.Skills{
			resume.CategoryLanguages: {"Go", "Python", "SQL"},
			resume.CategoryDatabases: {"PostgreSQL", "Redis"},
			resume.CategoryDevOps:    {"Docker", "Kubernetes", "Terraform"},
		},
	}, nil)
}

func wordsText(n int) string {
	return strings.TrimSpace(strings.Repeat("word ", n))
}

func checkByID(r ATSReport, id CheckID) (Check, bool) {
	for _, c := range r.Checks {
		if c.ID == id {
			return c, true
		}
	}
	return Check{}, false
}
