package analysis

import (
	"strings"

	"github.com/artem13815/folio/pkg/nlp"
	"github.com/artem13815/folio/pkg/resume"
)

const minSkills = 8

var actionVerbs = map[string]struct{}{}

func init() {
	for _, v := range strings.Fields(`achieved architected automated built championed collaborated
		configured created cut decreased delivered deployed designed developed drove enabled
		engineered established expanded implemented improved increased introduced launched led
		maintained managed mentored migrated optimized orchestrated owned partnered reduced
		refactored resolved saved scaled shipped simplified spearheaded streamlined supported
		trained transformed upgraded wrote`) {
		actionVerbs[v] = struct{}{}
	}
}

// Quality считает показатели полноты и качества формулировок.
func Quality(in resume.Input, plainText string) QualityReport {
	rep := QualityReport{
		HasSummary:      in.PersonalInfo.Summary != "",
		ExperienceCount: len(in.Experience),
		EducationCount:  len(in.Education),
		SkillCount:      in.Skills.Count(),
		BulletCount:     in.BulletCount(),
		WordCount:       nlp.WordCount(plainText),
	}
	for _, cat := range resume.Categories {
		if len(in.Skills[cat]) > 0 {
			rep.SkillCategoryCount++
		}
	}
	rep.QuantifiedBullets = countQuantified(in)

	withVerb := 0
	for _, e := range in.Experience {
		for _, b := range e.Bullets() {
			if startsWithActionVerb(b) {
				withVerb++
			}
		}
	}
	if rep.BulletCount > 0 {
		rep.ActionVerbRatio = float64(withVerb) / float64(rep.BulletCount)
	}

	// полнота 60, формулировки 40
	score := 0
	if in.PersonalInfo.FullName != "" && in.PersonalInfo.Email != "" {
		score += 10
	}
	if rep.HasSummary {
		score += 10
	}
	if rep.ExperienceCount > 0 {
		score += 15
	}
	if rep.EducationCount > 0 {
		score += 10
	}
	switch {
	case rep.SkillCount >= minSkills:
		score += 15
	case rep.SkillCount > 0:
		score += 7
	}
	if rep.BulletCount > 0 {
		score += int(20 * rep.ActionVerbRatio)
		score += 20 * rep.QuantifiedBullets / rep.BulletCount
	}
	rep.Score = score
	rep.Grade = grade(score)
	return rep
}

func startsWithActionVerb(bullet string) bool {
	tokens := nlp.Tokens(nlp.Normalize(bullet))
	if len(tokens) == 0 {
		return false
	}
	_, ok := actionVerbs[tokens[0]]
	return ok
}

func grade(score int) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 75:
		return "B"
	case score >= 60:
		return "C"
	case score >= 40:
		return "D"
	default:
		return "F"
	}
}
