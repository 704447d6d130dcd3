package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/folio/pkg/resume"
	storage "github.com/artem13815/folio/pkg/storage/postgres"
)

// ProfileRepository хранит исходные данные резюме: personal_info,
// experience, education, skills. Пайплайн только читает их.
type ProfileRepository struct {
	pool *pgxpool.Pool
}

var _ resume.Repository = (*ProfileRepository)(nil)

// NewProfileRepository создаёт таблицы при первом запуске.
func NewProfileRepository(ctx context.Context, pool *pgxpool.Pool) (*ProfileRepository, error) {
	if err := storage.Migrate(ctx, pool, profileSchema); err != nil {
		return nil, fmt.Errorf("profile schema: %w", err)
	}
	return &ProfileRepository{pool: pool}, nil
}

const profileSchema = `
CREATE TABLE IF NOT EXISTS personal_info (
	id SMALLINT PRIMARY KEY DEFAULT 1 CHECK (id = 1),
	full_name TEXT,
	email TEXT,
	phone TEXT,
	title TEXT,
	summary TEXT,
	city TEXT,
	country TEXT,
	linkedin TEXT,
	github TEXT,
	website TEXT,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE TABLE IF NOT EXISTS experience (
	id UUID PRIMARY KEY,
	company TEXT,
	position TEXT,
	location TEXT,
	start_date DATE,
	end_date DATE,
	is_current BOOLEAN,
	description TEXT,
	responsibilities TEXT[],
	achievements TEXT[],
	technologies TEXT[],
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE TABLE IF NOT EXISTS education (
	id UUID PRIMARY KEY,
	degree TEXT,
	field TEXT,
	institution TEXT,
	graduation_date DATE,
	gpa DOUBLE PRECISION,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE TABLE IF NOT EXISTS skills (
	id UUID PRIMARY KEY,
	name TEXT NOT NULL,
	category TEXT,
	proficiency INTEGER,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_experience_start ON experience(start_date DESC);
CREATE INDEX IF NOT EXISTS idx_skills_proficiency ON skills(proficiency DESC);
`

// PersonalInfo возвращает (nil, nil), пока строка не создана.
func (r *ProfileRepository) PersonalInfo(ctx context.Context) (*resume.PersonalInfoRecord, error) {
	row := r.pool.QueryRow(ctx, `
SELECT full_name, email, phone, title, summary, city, country, linkedin, github, website
FROM personal_info WHERE id = 1
`)
	var p resume.PersonalInfoRecord
	if err := row.Scan(&p.FullName, &p.Email, &p.Phone, &p.Title, &p.Summary,
		&p.City, &p.Country, &p.LinkedIn, &p.GitHub, &p.Website); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProfileRepository) UpsertPersonalInfo(ctx context.Context, p resume.PersonalInfoRecord) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO personal_info (id, full_name, email, phone, title, summary, city, country, linkedin, github, website, updated_at)
VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now())
ON CONFLICT (id) DO UPDATE SET
	full_name = EXCLUDED.full_name,
	email = EXCLUDED.email,
	phone = EXCLUDED.phone,
	title = EXCLUDED.title,
	summary = EXCLUDED.summary,
	city = EXCLUDED.city,
	country = EXCLUDED.country,
	linkedin = EXCLUDED.linkedin,
	github = EXCLUDED.github,
	website = EXCLUDED.website,
	updated_at = now()
`, p.FullName, p.Email, p.Phone, p.Title, p.Summary, p.City, p.Country, p.LinkedIn, p.GitHub, p.Website)
	return err
}

// Experience: все строки, сначала самые поздние по дате начала.
func (r *ProfileRepository) Experience(ctx context.Context) ([]resume.ExperienceRecord, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, company, position, location, start_date, end_date, is_current,
	description, responsibilities, achievements, technologies
FROM experience
ORDER BY start_date DESC NULLS LAST, created_at DESC
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := []resume.ExperienceRecord{}
	for rows.Next() {
		var e resume.ExperienceRecord
		if err := rows.Scan(&e.ID, &e.Company, &e.Position, &e.Location, &e.StartDate, &e.EndDate,
			&e.IsCurrent, &e.Description, &e.Responsibilities, &e.Achievements, &e.Technologies); err != nil {
			return nil, err
		}
		res = append(res, e)
	}
	return res, rows.Err()
}

func (r *ProfileRepository) CreateExperience(ctx context.Context, e resume.ExperienceRecord) (resume.ExperienceRecord, error) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	_, err := r.pool.Exec(ctx, `
INSERT INTO experience (id, company, position, location, start_date, end_date, is_current,
	description, responsibilities, achievements, technologies)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
`, e.ID, e.Company, e.Position, e.Location, e.StartDate, e.EndDate, e.IsCurrent,
		e.Description, e.Responsibilities, e.Achievements, e.Technologies)
	if err != nil {
		return resume.ExperienceRecord{}, err
	}
	return e, nil
}

func (r *ProfileRepository) DeleteExperience(ctx context.Context, id uuid.UUID) error {
	return r.deleteByID(ctx, `DELETE FROM experience WHERE id = $1`, id)
}

// Education: все строки, сначала самые поздние по выпуску.
func (r *ProfileRepository) Education(ctx context.Context) ([]resume.EducationRecord, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, degree, field, institution, graduation_date, gpa
FROM education
ORDER BY graduation_date DESC NULLS LAST, created_at DESC
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := []resume.EducationRecord{}
	for rows.Next() {
		var e resume.EducationRecord
		if err := rows.Scan(&e.ID, &e.Degree, &e.Field, &e.Institution, &e.GraduationDate, &e.GPA); err != nil {
			return nil, err
		}
		res = append(res, e)
	}
	return res, rows.Err()
}

func (r *ProfileRepository) CreateEducation(ctx context.Context, e resume.EducationRecord) (resume.EducationRecord, error) {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	_, err := r.pool.Exec(ctx, `
INSERT INTO education (id, degree, field, institution, graduation_date, gpa)
VALUES ($1, $2, $3, $4, $5, $6)
`, e.ID, e.Degree, e.Field, e.Institution, e.GraduationDate, e.GPA)
	if err != nil {
		return resume.EducationRecord{}, err
	}
	return e, nil
}

func (r *ProfileRepository) DeleteEducation(ctx context.Context, id uuid.UUID) error {
	return r.deleteByID(ctx, `DELETE FROM education WHERE id = $1`, id)
}

// Skills: все строки, сначала с наибольшим уровнем.
func (r *ProfileRepository) Skills(ctx context.Context) ([]resume.SkillRecord, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, name, category, proficiency
FROM skills
ORDER BY proficiency DESC NULLS LAST, name
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := []resume.SkillRecord{}
	for rows.Next() {
		var s resume.SkillRecord
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.Proficiency); err != nil {
			return nil, err
		}
		res = append(res, s)
	}
	return res, rows.Err()
}

func (r *ProfileRepository) CreateSkill(ctx context.Context, s resume.SkillRecord) (resume.SkillRecord, error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	_, err := r.pool.Exec(ctx, `
INSERT INTO skills (id, name, category, proficiency)
VALUES ($1, $2, $3, $4)
`, s.ID, s.Name, s.Category, s.Proficiency)
	if err != nil {
		return resume.SkillRecord{}, err
	}
	return s, nil
}

func (r *ProfileRepository) DeleteSkill(ctx context.Context, id uuid.UUID) error {
	return r.deleteByID(ctx, `DELETE FROM skills WHERE id = $1`, id)
}

func (r *ProfileRepository) deleteByID(ctx context.Context, query string, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return resume.ErrNotFound
	}
	return nil
}
