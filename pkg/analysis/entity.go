package analysis

// KeywordAnalysis: сопоставление резюме с описанием вакансии.
// Applicable=false означает, что описание вакансии не передано.
type KeywordAnalysis struct {
	Applicable bool     `json:"applicable"`
	Keywords   []string `json:"keywords"`
	Matched    []string `json:"matched"`
	Missing    []string `json:"missing"`
	MatchRatio float64  `json:"matchRatio"`
}

// CheckID: идентификатор эвристики ATS.
type CheckID string

const (
	CheckContactInfo   CheckID = "contact_info"
	CheckSummary       CheckID = "summary"
	CheckExperience    CheckID = "experience"
	CheckEducation     CheckID = "education"
	CheckSkills        CheckID = "skills"
	CheckQuantified    CheckID = "quantified_achievements"
	CheckBulletRange   CheckID = "bullet_count"
	CheckLength        CheckID = "length"
	CheckSupportedChar CheckID = "supported_characters"
)

// Check: результат одной эвристики.
type Check struct {
	ID     CheckID `json:"id"`
	Name   string  `json:"name"`
	Passed bool    `json:"passed"`
	Weight int     `json:"weight"`
	Note   string  `json:"note"`
}

// ATSReport: структурная оценка "дружелюбности" к ATS.
// Score: взвешенная доля пройденных проверок, 0..100.
type ATSReport struct {
	Checks []Check `json:"checks"`
	Score  int     `json:"aggregateScore"`
	Passed int     `json:"passed"`
	Total  int     `json:"total"`
}

// Failed возвращает непройденные проверки в порядке отчёта.
func (r ATSReport) Failed() []Check {
	var out []Check
	for _, c := range r.Checks {
		if !c.Passed {
			out = append(out, c)
		}
	}
	return out
}

type QualityReport struct {
	Score              int     `json:"score"`
	Grade              string  `json:"grade"`
	HasSummary         bool    `json:"hasSummary"`
	ExperienceCount    int     `json:"experienceCount"`
	EducationCount     int     `json:"educationCount"`
	SkillCount         int     `json:"skillCount"`
	SkillCategoryCount int     `json:"skillCategoryCount"`
	BulletCount        int     `json:"bulletCount"`
	QuantifiedBullets  int     `json:"quantifiedBullets"`
	ActionVerbRatio    float64 `json:"actionVerbRatio"`
	WordCount          int     `json:"wordCount"`
}

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Suggestion: один конкретный совет.
type Suggestion struct {
	Rule     string   `json:"rule"`
	Priority Priority `json:"priority"`
	Message  string   `json:"message"`
}

// TextReport: анализ загруженного файла резюме (только текст, без структуры).
type TextReport struct {
	KeywordAnalysis KeywordAnalysis `json:"keywordAnalysis"`
	Checks          []Check         `json:"checks"`
	Score           int             `json:"aggregateScore"`
	WordCount       int             `json:"wordCount"`
	Suggestions     []Suggestion    `json:"suggestions"`
}
