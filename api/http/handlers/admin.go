package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/artem13815/folio/api/http/presenter"
	"github.com/artem13815/folio/pkg/logger"
	"github.com/artem13815/folio/pkg/resume"
)

const (
	dateLayout       = "2006-01-02"
	defaultPageLimit = 50
)

// AdminHandler: CRUD над исходными записями резюме. Только для администратора.
type AdminHandler struct {
	repo resume.Repository
	log  *zap.Logger
}

func NewAdminHandler(repo resume.Repository, log *zap.Logger) *AdminHandler {
	return &AdminHandler{repo: repo, log: logger.OrNop(log)}
}

// @Summary Get personal info
// @Tags    admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resume.PersonalInfoRecord
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /api/admin/personal-info [get]
func (h *AdminHandler) GetPersonalInfo(c *fiber.Ctx) error {
	rec, err := h.repo.PersonalInfo(c.UserContext())
	if err != nil {
		return h.internal(c, "get personal info", err)
	}
	if rec == nil {
		return presenter.Error(c, http.StatusNotFound, "personal info is not set")
	}
	return presenter.JSON(c, http.StatusOK, rec)
}

// @Summary Create or replace personal info
// @Tags    admin
// @Accept  json
// @Produce json
// @Security BearerAuth
// @Param   input body resume.PersonalInfoRecord true "personal info"
// @Success 200 {object} resume.PersonalInfoRecord
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /api/admin/personal-info [put]
func (h *AdminHandler) PutPersonalInfo(c *fiber.Ctx) error {
	var rec resume.PersonalInfoRecord
	if err := c.BodyParser(&rec); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if isBlank(rec.FullName) || isBlank(rec.Email) {
		return presenter.Error(c, http.StatusBadRequest, "fullName and email are required")
	}
	if err := h.repo.UpsertPersonalInfo(c.UserContext(), rec); err != nil {
		return h.internal(c, "upsert personal info", err)
	}
	return presenter.JSON(c, http.StatusOK, rec)
}

type experienceRequest struct {
	Company          string   `json:"company"`
	Title            string   `json:"title"`
	Location         string   `json:"location"`
	StartDate        string   `json:"startDate"`
	EndDate          string   `json:"endDate"`
	IsCurrent        bool     `json:"isCurrent"`
	Description      string   `json:"description"`
	Responsibilities []string `json:"responsibilities"`
	Achievements     []string `json:"achievements"`
	Technologies     []string `json:"technologies"`
}

func (r experienceRequest) record() (resume.ExperienceRecord, error) {
	start, err := parseDate(r.StartDate)
	if err != nil {
		return resume.ExperienceRecord{}, err
	}
	end, err := parseDate(r.EndDate)
	if err != nil {
		return resume.ExperienceRecord{}, err
	}
	if r.IsCurrent {
		end = nil
	}
	current := r.IsCurrent
	return resume.ExperienceRecord{
		Company:          optional(r.Company),
		Position:         optional(r.Title),
		Location:         optional(r.Location),
		StartDate:        start,
		EndDate:          end,
		IsCurrent:        &current,
		Description:      optional(r.Description),
		Responsibilities: r.Responsibilities,
		Achievements:     r.Achievements,
		Technologies:     r.Technologies,
	}, nil
}

// @Summary List experience
// @Tags    admin
// @Produce json
// @Security BearerAuth
// @Param   limit  query int false "page size (max 200)"
// @Param   offset query int false "offset"
// @Success 200 {object} map[string]any
// @Router  /api/admin/experience [get]
func (h *AdminHandler) ListExperience(c *fiber.Ctx) error {
	rows, err := h.repo.Experience(c.UserContext())
	if err != nil {
		return h.internal(c, "list experience", err)
	}
	limit, offset := parseLimitOffset(c, defaultPageLimit)
	return presenter.JSON(c, http.StatusOK, paginate(rows, limit, offset))
}

// @Summary Create experience entry
// @Tags    admin
// @Accept  json
// @Produce json
// @Security BearerAuth
// @Param   input body experienceRequest true "experience entry"
// @Success 201 {object} resume.ExperienceRecord
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /api/admin/experience [post]
func (h *AdminHandler) CreateExperience(c *fiber.Ctx) error {
	var req experienceRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.Company) == "" || strings.TrimSpace(req.Title) == "" {
		return presenter.Error(c, http.StatusBadRequest, "company and title are required")
	}
	rec, err := req.record()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	saved, err := h.repo.CreateExperience(c.UserContext(), rec)
	if err != nil {
		return h.internal(c, "create experience", err)
	}
	return presenter.JSON(c, http.StatusCreated, saved)
}

// @Summary Delete experience entry
// @Tags    admin
// @Security BearerAuth
// @Param   id path string true "entry id"
// @Success 204
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /api/admin/experience/{id} [delete]
func (h *AdminHandler) DeleteExperience(c *fiber.Ctx) error {
	return h.deleteByID(c, h.repo.DeleteExperience)
}

type educationRequest struct {
	Degree         string   `json:"degree"`
	Field          string   `json:"field"`
	Institution    string   `json:"institution"`
	GraduationDate string   `json:"graduationDate"`
	GPA            *float64 `json:"gpa"`
}

// @Summary List education
// @Tags    admin
// @Produce json
// @Security BearerAuth
// @Param   limit  query int false "page size (max 200)"
// @Param   offset query int false "offset"
// @Success 200 {object} map[string]any
// @Router  /api/admin/education [get]
func (h *AdminHandler) ListEducation(c *fiber.Ctx) error {
	rows, err := h.repo.Education(c.UserContext())
	if err != nil {
		return h.internal(c, "list education", err)
	}
	limit, offset := parseLimitOffset(c, defaultPageLimit)
	return presenter.JSON(c, http.StatusOK, paginate(rows, limit, offset))
}

// @Summary Create education entry
// @Tags    admin
// @Accept  json
// @Produce json
// @Security BearerAuth
// @Param   input body educationRequest true "education entry"
// @Success 201 {object} resume.EducationRecord
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /api/admin/education [post]
func (h *AdminHandler) CreateEducation(c *fiber.Ctx) error {
	var req educationRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.Degree) == "" || strings.TrimSpace(req.Institution) == "" {
		return presenter.Error(c, http.StatusBadRequest, "degree and institution are required")
	}
	grad, err := parseDate(req.GraduationDate)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	saved, err := h.repo.CreateEducation(c.UserContext(), resume.EducationRecord{
		Degree:         optional(req.Degree),
		Field:          optional(req.Field),
		Institution:    optional(req.Institution),
		GraduationDate: grad,
		GPA:            req.GPA,
	})
	if err != nil {
		return h.internal(c, "create education", err)
	}
	return presenter.JSON(c, http.StatusCreated, saved)
}

// @Summary Delete education entry
// @Tags    admin
// @Security BearerAuth
// @Param   id path string true "entry id"
// @Success 204
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /api/admin/education/{id} [delete]
func (h *AdminHandler) DeleteEducation(c *fiber.Ctx) error {
	return h.deleteByID(c, h.repo.DeleteEducation)
}

type skillRequest struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Proficiency *int   `json:"proficiency"`
}

// @Summary List skills
// @Tags    admin
// @Produce json
// @Security BearerAuth
// @Param   limit  query int false "page size (max 200)"
// @Param   offset query int false "offset"
// @Success 200 {object} map[string]any
// @Router  /api/admin/skills [get]
func (h *AdminHandler) ListSkills(c *fiber.Ctx) error {
	rows, err := h.repo.Skills(c.UserContext())
	if err != nil {
		return h.internal(c, "list skills", err)
	}
	limit, offset := parseLimitOffset(c, defaultPageLimit)
	return presenter.JSON(c, http.StatusOK, paginate(rows, limit, offset))
}

// @Summary Create skill
// @Tags    admin
// @Accept  json
// @Produce json
// @Security BearerAuth
// @Param   input body skillRequest true "skill"
// @Success 201 {object} resume.SkillRecord
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /api/admin/skills [post]
func (h *AdminHandler) CreateSkill(c *fiber.Ctx) error {
	var req skillRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if strings.TrimSpace(req.Name) == "" {
		return presenter.Error(c, http.StatusBadRequest, "name is required")
	}
	if req.Proficiency != nil && (*req.Proficiency < 0 || *req.Proficiency > 100) {
		return presenter.Error(c, http.StatusBadRequest, "proficiency must be between 0 and 100")
	}
	saved, err := h.repo.CreateSkill(c.UserContext(), resume.SkillRecord{
		Name:        optional(req.Name),
		Category:    optional(req.Category),
		Proficiency: req.Proficiency,
	})
	if err != nil {
		return h.internal(c, "create skill", err)
	}
	return presenter.JSON(c, http.StatusCreated, saved)
}

// @Summary Delete skill
// @Tags    admin
// @Security BearerAuth
// @Param   id path string true "skill id"
// @Success 204
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /api/admin/skills/{id} [delete]
func (h *AdminHandler) DeleteSkill(c *fiber.Ctx) error {
	return h.deleteByID(c, h.repo.DeleteSkill)
}

func (h *AdminHandler) deleteByID(c *fiber.Ctx, del func(ctx context.Context, id uuid.UUID) error) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid id")
	}
	if err := del(c.UserContext(), id); err != nil {
		if errors.Is(err, resume.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "not found")
		}
		return h.internal(c, "delete", err)
	}
	return c.SendStatus(http.StatusNoContent)
}

func (h *AdminHandler) internal(c *fiber.Ctx, op string, err error) error {
	h.log.Error("admin "+op, zap.Error(err))
	return presenter.Error(c, http.StatusInternalServerError, "internal error")
}

// parseDate: пустая строка означает "нет даты".
func parseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, errors.New("dates must use YYYY-MM-DD")
	}
	return &t, nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func isBlank(p *string) bool {
	return p == nil || strings.TrimSpace(*p) == ""
}
