package resume

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// Normalize приводит присланный клиентом Input к каноническому виду.
// Никогда не падает: отсутствующие поля становятся пустыми строками/срезами.
func Normalize(in Input, cls *Classifier) Input {
	out := Input{
		PersonalInfo: normalizePersonal(in.PersonalInfo),
		Experience:   make([]Experience, 0, len(in.Experience)),
		Education:    make([]Education, 0, len(in.Education)),
		Skills:       emptySkills(),
	}
	for _, e := range in.Experience {
		e.ID = strings.TrimSpace(e.ID)
		e.Company = strings.TrimSpace(e.Company)
		e.Title = strings.TrimSpace(e.Title)
		e.Location = strings.TrimSpace(e.Location)
		e.StartDate = strings.TrimSpace(e.StartDate)
		e.EndDate = strings.TrimSpace(e.EndDate)
		e.Description = strings.TrimSpace(e.Description)
		if e.IsCurrent {
			e.EndDate = ""
		}
		e.Responsibilities = cleanList(e.Responsibilities)
		e.Achievements = cleanList(e.Achievements)
		e.Technologies = cleanList(e.Technologies)
		out.Experience = append(out.Experience, e)
	}
	for _, ed := range in.Education {
		out.Education = append(out.Education, Education{
			ID:             strings.TrimSpace(ed.ID),
			Degree:         strings.TrimSpace(ed.Degree),
			Field:          strings.TrimSpace(ed.Field),
			Institution:    strings.TrimSpace(ed.Institution),
			GraduationDate: strings.TrimSpace(ed.GraduationDate),
			GPA:            strings.TrimSpace(ed.GPA),
		})
	}
	// Ключи раскладываются в каноническом порядке, чтобы слияние двух меток
	// в одну корзину было детерминированным.
	known := make(map[Category]bool, len(Categories))
	for _, cat := range Categories {
		known[cat] = true
		if names, ok := in.Skills[cat]; ok {
			out.Skills[cat] = append(out.Skills[cat], cleanList(names)...)
		}
	}
	var extra []string
	for label := range in.Skills {
		if !known[label] {
			extra = append(extra, string(label))
		}
	}
	sort.Strings(extra)
	for _, label := range extra {
		cat := cls.Classify(label)
		out.Skills[cat] = append(out.Skills[cat], cleanList(in.Skills[Category(label)])...)
	}
	return out
}

// NormalizeRecords собирает Input из строк хранилища. Отсутствующая запись
// personal_info даёт пустой PersonalInfo.
func NormalizeRecords(rec Records, cls *Classifier) Input {
	out := Input{
		Experience: make([]Experience, 0, len(rec.Experience)),
		Education:  make([]Education, 0, len(rec.Education)),
		Skills:     emptySkills(),
	}
	if p := rec.PersonalInfo; p != nil {
		out.PersonalInfo = normalizePersonal(PersonalInfo{
			FullName: deref(p.FullName),
			Email:    deref(p.Email),
			Phone:    deref(p.Phone),
			Title:    deref(p.Title),
			Summary:  deref(p.Summary),
			Location: Location{City: deref(p.City), Country: deref(p.Country)},
			Links:    Links{LinkedIn: deref(p.LinkedIn), GitHub: deref(p.GitHub), Website: deref(p.Website)},
		})
	}
	for _, r := range rec.Experience {
		current := r.IsCurrent != nil && *r.IsCurrent
		e := Experience{
			ID:               idString(r.ID),
			Company:          strings.TrimSpace(deref(r.Company)),
			Title:            strings.TrimSpace(deref(r.Position)),
			Location:         strings.TrimSpace(deref(r.Location)),
			StartDate:        formatDate(r.StartDate),
			IsCurrent:        current,
			Description:      strings.TrimSpace(deref(r.Description)),
			Responsibilities: cleanList(r.Responsibilities),
			Achievements:     cleanList(r.Achievements),
			Technologies:     cleanList(r.Technologies),
		}
		if !current {
			e.EndDate = formatDate(r.EndDate)
		}
		out.Experience = append(out.Experience, e)
	}
	for _, r := range rec.Education {
		ed := Education{
			ID:             idString(r.ID),
			Degree:         strings.TrimSpace(deref(r.Degree)),
			Field:          strings.TrimSpace(deref(r.Field)),
			Institution:    strings.TrimSpace(deref(r.Institution)),
			GraduationDate: formatDate(r.GraduationDate),
		}
		if r.GPA != nil {
			ed.GPA = strconv.FormatFloat(*r.GPA, 'f', -1, 64)
		}
		out.Education = append(out.Education, ed)
	}
	for _, r := range rec.Skills {
		name := strings.TrimSpace(deref(r.Name))
		if name == "" {
			continue
		}
		cat := cls.Classify(deref(r.Category))
		out.Skills[cat] = append(out.Skills[cat], name)
	}
	return out
}

// WithSkills возвращает копию in с заменённым разделом навыков.
// Аргументы не изменяются.
func WithSkills(in Input, skills Skills) Input {
	out := in.Clone()
	out.Skills = emptySkills()
	for _, cat := range Categories {
		if names, ok := skills[cat]; ok {
			out.Skills[cat] = append([]string{}, names...)
		}
	}
	return out
}

// Clone возвращает глубокую копию.
func (in Input) Clone() Input {
	out := Input{
		PersonalInfo: in.PersonalInfo,
		Experience:   make([]Experience, len(in.Experience)),
		Education:    append([]Education{}, in.Education...),
		Skills:       make(Skills, len(in.Skills)),
	}
	for i, e := range in.Experience {
		e.Responsibilities = append([]string{}, e.Responsibilities...)
		e.Achievements = append([]string{}, e.Achievements...)
		e.Technologies = append([]string{}, e.Technologies...)
		out.Experience[i] = e
	}
	for cat, names := range in.Skills {
		out.Skills[cat] = append([]string{}, names...)
	}
	return out
}

func normalizePersonal(p PersonalInfo) PersonalInfo {
	return PersonalInfo{
		FullName: strings.TrimSpace(p.FullName),
		Email:    strings.TrimSpace(p.Email),
		Phone:    strings.TrimSpace(p.Phone),
		Title:    strings.TrimSpace(p.Title),
		Summary:  strings.TrimSpace(p.Summary),
		Location: Location{
			City:    strings.TrimSpace(p.Location.City),
			Country: strings.TrimSpace(p.Location.Country),
		},
		Links: Links{
			LinkedIn: strings.TrimSpace(p.Links.LinkedIn),
			GitHub:   strings.TrimSpace(p.Links.GitHub),
			Website:  strings.TrimSpace(p.Links.Website),
		},
	}
}

func emptySkills() Skills {
	s := make(Skills, len(Categories))
	for _, cat := range Categories {
		s[cat] = []string{}
	}
	return s
}

// cleanList обрезает пробелы и выкидывает пустые строки; nil не возвращает.
func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.UTC().Format(dateLayout)
}

func idString(id uuid.UUID) string {
	if id == uuid.Nil {
		return ""
	}
	return id.String()
}
