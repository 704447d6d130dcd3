package resume

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Строки хранилища. Любое поле может отсутствовать, поэтому указатели.

type PersonalInfoRecord struct {
	FullName *string `json:"fullName"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Title    *string `json:"title"`
	Summary  *string `json:"summary"`
	City     *string `json:"city"`
	Country  *string `json:"country"`
	LinkedIn *string `json:"linkedin"`
	GitHub   *string `json:"github"`
	Website  *string `json:"website"`
}

type ExperienceRecord struct {
	ID               uuid.UUID  `json:"id"`
	Company          *string    `json:"company"`
	Position         *string    `json:"position"`
	Location         *string    `json:"location"`
	StartDate        *time.Time `json:"startDate"`
	EndDate          *time.Time `json:"endDate"`
	IsCurrent        *bool      `json:"isCurrent"`
	Description      *string    `json:"description"`
	Responsibilities []string   `json:"responsibilities"`
	Achievements     []string   `json:"achievements"`
	Technologies     []string   `json:"technologies"`
}

type EducationRecord struct {
	ID             uuid.UUID  `json:"id"`
	Degree         *string    `json:"degree"`
	Field          *string    `json:"field"`
	Institution    *string    `json:"institution"`
	GraduationDate *time.Time `json:"graduationDate"`
	GPA            *float64   `json:"gpa"`
}

type SkillRecord struct {
	ID          uuid.UUID `json:"id"`
	Name        *string   `json:"name"`
	Category    *string   `json:"category"`
	Proficiency *int      `json:"proficiency"`
}

// Records: четыре набора строк, из которых собирается Input.
type Records struct {
	PersonalInfo *PersonalInfoRecord
	Experience   []ExperienceRecord
	Education    []EducationRecord
	Skills       []SkillRecord
}

// Source: чтение из внешнего хранилища. PersonalInfo возвращает
// (nil, nil), если строки нет.
type Source interface {
	PersonalInfo(ctx context.Context) (*PersonalInfoRecord, error)
	Experience(ctx context.Context) ([]ExperienceRecord, error)
	Education(ctx context.Context) ([]EducationRecord, error)
	Skills(ctx context.Context) ([]SkillRecord, error)
}

// Repository: порт админки: чтение плюс запись исходных строк.
type Repository interface {
	Source
	UpsertPersonalInfo(ctx context.Context, rec PersonalInfoRecord) error
	CreateExperience(ctx context.Context, rec ExperienceRecord) (ExperienceRecord, error)
	DeleteExperience(ctx context.Context, id uuid.UUID) error
	CreateEducation(ctx context.Context, rec EducationRecord) (EducationRecord, error)
	DeleteEducation(ctx context.Context, id uuid.UUID) error
	CreateSkill(ctx context.Context, rec SkillRecord) (SkillRecord, error)
	DeleteSkill(ctx context.Context, id uuid.UUID) error
}

// ErrNotFound: строка с таким id отсутствует.
var ErrNotFound = errors.New("not found")
