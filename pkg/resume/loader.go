package resume

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

var (
	ErrFetchPersonalInfo = errors.New("fetch personal info")
	ErrFetchExperience   = errors.New("fetch experience")
	ErrFetchEducation    = errors.New("fetch education")
	ErrFetchSkills       = errors.New("fetch skills")
)

// Load выполняет четыре независимых чтения параллельно и ждёт все.
// При первой ошибке возвращает её (обёрнутую в соответствующий Err*),
// частичные данные не отдаются.
func Load(ctx context.Context, src Source) (Records, error) {
	var (
		personal   *PersonalInfoRecord
		experience []ExperienceRecord
		education  []EducationRecord
		skills     []SkillRecord
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := src.PersonalInfo(gctx)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrFetchPersonalInfo, err)
		}
		personal = p
		return nil
	})
	g.Go(func() error {
		rows, err := src.Experience(gctx)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrFetchExperience, err)
		}
		experience = rows
		return nil
	})
	g.Go(func() error {
		rows, err := src.Education(gctx)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrFetchEducation, err)
		}
		education = rows
		return nil
	})
	g.Go(func() error {
		rows, err := src.Skills(gctx)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrFetchSkills, err)
		}
		skills = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return Records{}, err
	}
	return Records{
		PersonalInfo: personal,
		Experience:   experience,
		Education:    education,
		Skills:       skills,
	}, nil
}
