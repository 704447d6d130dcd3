package analysis

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/artem13815/folio/pkg/nlp"
	"github.com/artem13815/folio/pkg/resume"
)

// Пороговые значения эвристик.
const (
	minBullets = 5
	maxBullets = 40
	minWords   = 200
	maxWords   = 1000
)

// Веса проверок, в сумме 100.
var checkWeights = map[CheckID]int{
	CheckContactInfo:   15,
	CheckSummary:       10,
	CheckExperience:    20,
	CheckEducation:     10,
	CheckSkills:        15,
	CheckQuantified:    10,
	CheckBulletRange:   10,
	CheckLength:        5,
	CheckSupportedChar: 5,
}

var (
	reNumber = regexp.MustCompile(`\d|%|\$`)
	reEmail  = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
)

// ATS оценивает структуру резюме; не зависит от описания вакансии.
// plainText: текстовая версия того же резюме (длина и символы).
func ATS(in resume.Input, plainText string) ATSReport {
	p := in.PersonalInfo
	bullets := in.BulletCount()
	quantified := countQuantified(in)
	words := nlp.WordCount(plainText)
	categories := 0
	for _, cat := range resume.Categories {
		if len(in.Skills[cat]) > 0 {
			categories++
		}
	}

	checks := []Check{
		newCheck(CheckContactInfo, "Contact information",
			p.FullName != "" && p.Email != "",
			"full name and email present", "add a full name and an email address"),
		newCheck(CheckSummary, "Professional summary",
			p.Summary != "",
			"summary present", "no professional summary"),
		newCheck(CheckExperience, "Work experience section",
			len(in.Experience) > 0,
			fmt.Sprintf("%d experience entries", len(in.Experience)), "no experience entries"),
		newCheck(CheckEducation, "Education section",
			len(in.Education) > 0,
			fmt.Sprintf("%d education entries", len(in.Education)), "no education entries"),
		newCheck(CheckSkills, "Skills section",
			in.Skills.Count() > 0,
			fmt.Sprintf("%d skills in %d categories", in.Skills.Count(), categories), "no skills listed"),
		newCheck(CheckQuantified, "Quantifiable achievements",
			quantified > 0,
			fmt.Sprintf("%d bullets contain numbers", quantified), "no bullet contains a number, percentage or amount"),
		newCheck(CheckBulletRange, "Bullet count",
			bullets >= minBullets && bullets <= maxBullets,
			fmt.Sprintf("%d bullets", bullets),
			fmt.Sprintf("%d bullets, expected %d-%d", bullets, minBullets, maxBullets)),
		lengthCheck(words),
		charsetCheck(plainText),
	}
	return summarize(checks)
}

func newCheck(id CheckID, name string, passed bool, okNote, failNote string) Check {
	note := failNote
	if passed {
		note = okNote
	}
	return Check{ID: id, Name: name, Passed: passed, Weight: checkWeights[id], Note: note}
}

func lengthCheck(words int) Check {
	return newCheck(CheckLength, "Document length",
		words >= minWords && words <= maxWords,
		fmt.Sprintf("%d words", words),
		fmt.Sprintf("%d words, expected %d-%d", words, minWords, maxWords))
}

// charsetCheck не пропускает управляющие символы, private-use и
// символы вроде эмодзи и псевдографики, которые парсеры портят.
func charsetCheck(text string) Check {
	var bad []string
	seen := map[rune]bool{}
	for _, r := range text {
		if r == '\n' || r == '\t' || r == '\r' {
			continue
		}
		if unicode.IsControl(r) || unicode.Is(unicode.Co, r) || unicode.Is(unicode.So, r) || r == unicode.ReplacementChar {
			if !seen[r] {
				seen[r] = true
				bad = append(bad, fmt.Sprintf("%U", r))
			}
		}
	}
	fail := ""
	if len(bad) > 0 {
		if len(bad) > 5 {
			bad = bad[:5]
		}
		fail = "unsupported characters: " + strings.Join(bad, ", ")
	}
	return newCheck(CheckSupportedChar, "Supported characters", len(bad) == 0, "plain characters only", fail)
}

func summarize(checks []Check) ATSReport {
	rep := ATSReport{Checks: checks, Total: len(checks)}
	total, got := 0, 0
	for _, c := range checks {
		total += c.Weight
		if c.Passed {
			rep.Passed++
			got += c.Weight
		}
	}
	if total > 0 {
		rep.Score = got * 100 / total
	}
	return rep
}

func countQuantified(in resume.Input) int {
	n := 0
	for _, e := range in.Experience {
		for _, b := range e.Bullets() {
			if reNumber.MatchString(b) {
				n++
			}
		}
	}
	return n
}
