package render

import (
	"strings"
	"time"

	"github.com/artem13815/folio/pkg/resume"
)

// document: общая модель представления для всех трёх шаблонов.
// Всё, что отличается между форматами, живёт в шаблонах.
type document struct {
	Name       string
	Title      string
	Contact    []string
	Links      []link
	Summary    string
	Experience []job
	Education  []school
	Skills     []skillGroup
}

type link struct {
	Label string
	URL   string
}

type job struct {
	Title        string
	Company      string
	Location     string
	Period       string
	Description  string
	Bullets      []string
	Achievements []string
	Technologies string
}

// Heading: должность и компания, пустые части пропускаются.
func (j job) Heading() string {
	return joinNonEmpty(" - ", j.Title, j.Company)
}

// Meta: строка "место | период".
func (j job) Meta() string {
	return joinNonEmpty(" | ", j.Location, j.Period)
}

type school struct {
	Degree      string
	Field       string
	Institution string
	Graduated   string
	GPA         string
}

func (s school) Heading() string {
	if s.Field == "" {
		return s.Degree
	}
	if s.Degree == "" {
		return s.Field
	}
	return s.Degree + " in " + s.Field
}

func (s school) Meta() string {
	var grad, gpa string
	if s.Graduated != "" {
		grad = "Graduated " + s.Graduated
	}
	if s.GPA != "" {
		gpa = "GPA " + s.GPA
	}
	return joinNonEmpty(" | ", s.Institution, grad, gpa)
}

type skillGroup struct {
	Label string
	Names []string
}

func (g skillGroup) Joined() string { return strings.Join(g.Names, ", ") }

const presentLabel = "Present"

func newDocument(in resume.Input) document {
	p := in.PersonalInfo
	d := document{
		Name:    p.FullName,
		Title:   p.Title,
		Summary: p.Summary,
	}
	location := joinNonEmpty(", ", p.Location.City, p.Location.Country)
	for _, c := range []string{p.Email, p.Phone, location} {
		if c != "" {
			d.Contact = append(d.Contact, c)
		}
	}
	for _, l := range []link{
		{Label: "LinkedIn", URL: p.Links.LinkedIn},
		{Label: "GitHub", URL: p.Links.GitHub},
		{Label: "Website", URL: p.Links.Website},
	} {
		if l.URL != "" {
			d.Links = append(d.Links, l)
		}
	}
	for _, e := range in.Experience {
		d.Experience = append(d.Experience, job{
			Title:        e.Title,
			Company:      e.Company,
			Location:     e.Location,
			Period:       period(e),
			Description:  e.Description,
			Bullets:      e.Responsibilities,
			Achievements: e.Achievements,
			Technologies: strings.Join(e.Technologies, ", "),
		})
	}
	for _, ed := range in.Education {
		d.Education = append(d.Education, school{
			Degree:      ed.Degree,
			Field:       ed.Field,
			Institution: ed.Institution,
			Graduated:   displayDate(ed.GraduationDate),
			GPA:         ed.GPA,
		})
	}
	for _, cat := range resume.Categories {
		names := in.Skills[cat]
		if len(names) == 0 {
			continue
		}
		d.Skills = append(d.Skills, skillGroup{Label: cat.Label(), Names: names})
	}
	return d
}

// period не показывает EndDate для текущего места работы.
func period(e resume.Experience) string {
	end := displayDate(e.EndDate)
	if e.IsCurrent {
		end = presentLabel
	}
	start := displayDate(e.StartDate)
	switch {
	case start == "":
		return end
	case end == "":
		return start
	default:
		return start + " - " + end
	}
}

var dateLayouts = []string{"2006-01-02", "2006-01", time.RFC3339}

func displayDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("Jan 2006")
		}
	}
	return s
}

func joinNonEmpty(sep string, parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}
