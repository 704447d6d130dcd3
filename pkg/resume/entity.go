package resume

// Input: каноническое представление резюме, с которым работают все стадии
// пайплайна. После Normalize ни одно поле не nil.
type Input struct {
	PersonalInfo PersonalInfo `json:"personalInfo"`
	Experience   []Experience `json:"experience"`
	Education    []Education  `json:"education"`
	Skills       Skills       `json:"skills"`
}

type PersonalInfo struct {
	FullName string   `json:"fullName"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone,omitempty"`
	Title    string   `json:"title,omitempty"`
	Summary  string   `json:"summary,omitempty"`
	Location Location `json:"location"`
	Links    Links    `json:"links"`
}

type Location struct {
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`
}

type Links struct {
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Website  string `json:"website,omitempty"`
}

// Experience: одно место работы. При IsCurrent поле EndDate игнорируется.
type Experience struct {
	ID               string   `json:"id"`
	Company          string   `json:"company"`
	Title            string   `json:"title"`
	Location         string   `json:"location,omitempty"`
	StartDate        string   `json:"startDate"` // YYYY-MM-DD, YYYY-MM или свободный текст
	EndDate          string   `json:"endDate,omitempty"`
	IsCurrent        bool     `json:"isCurrent"`
	Description      string   `json:"description,omitempty"`
	Responsibilities []string `json:"responsibilities"`
	Achievements     []string `json:"achievements"`
	Technologies     []string `json:"technologies"`
}

// Bullets: сначала обязанности, потом достижения.
func (e Experience) Bullets() []string {
	out := make([]string, 0, len(e.Responsibilities)+len(e.Achievements))
	out = append(out, e.Responsibilities...)
	return append(out, e.Achievements...)
}

type Education struct {
	ID             string `json:"id"`
	Degree         string `json:"degree"`
	Field          string `json:"field"`
	Institution    string `json:"institution"`
	GraduationDate string `json:"graduationDate"`
	GPA            string `json:"gpa,omitempty"`
}

// Skills группирует названия навыков по категориям; порядок внутри
// категории сохраняется.
type Skills map[Category][]string

// Count возвращает общее число навыков.
func (s Skills) Count() int {
	n := 0
	for _, names := range s {
		n += len(names)
	}
	return n
}

// BulletCount: число пунктов обязанностей и достижений
// по всем местам работы.
func (in Input) BulletCount() int {
	n := 0
	for _, e := range in.Experience {
		n += len(e.Responsibilities) + len(e.Achievements)
	}
	return n
}
