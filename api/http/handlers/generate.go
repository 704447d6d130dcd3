package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/artem13815/folio/api/http/presenter"
	"github.com/artem13815/folio/pkg/generator"
	"github.com/artem13815/folio/pkg/logger"
	"github.com/artem13815/folio/pkg/resume"
)

const (
	msgFetchPersonalInfo = "Failed to fetch personal info"
	msgGenerateFailed    = "Failed to generate resume"
	msgInvalidJSON       = "Invalid JSON body"
)

// GenerateHandler открывает пайплайн резюме по HTTP.
type GenerateHandler struct {
	uc      generator.UseCase
	log     *zap.Logger
	timeout time.Duration
}

// NewGenerateHandler: timeout <= 0 отключает дедлайн запроса.
func NewGenerateHandler(uc generator.UseCase, log *zap.Logger, timeout time.Duration) *GenerateHandler {
	return &GenerateHandler{uc: uc, log: logger.OrNop(log), timeout: timeout}
}

// Generate строит резюме из customData или из сохранённых записей.
// @Summary Generate resume
// @Description Нормализует данные, рендерит HTML/Markdown/текст и возвращает отчёты качества, ATS и ключевых слов.
// @Tags    resume
// @Accept  json
// @Produce json
// @Param   input body generator.Request false "generation request"
// @Success 200 {object} generator.Result
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /api/resume/generate [post]
func (h *GenerateHandler) Generate(c *fiber.Ctx) (err error) {
	defer func() {
		if r := recover(); r != nil {
			h.log.Error("generate resume panicked", zap.Any("panic", r))
			err = presenter.Error(c, http.StatusInternalServerError, msgGenerateFailed)
		}
	}()

	var req generator.Request
	if body := c.Body(); len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			return presenter.Error(c, http.StatusBadRequest, msgInvalidJSON)
		}
	}

	ctx := c.UserContext()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	res, err := h.uc.Generate(ctx, req)
	if err != nil {
		h.log.Warn("generate resume failed", zap.Error(err))
		if errors.Is(err, resume.ErrFetchPersonalInfo) {
			return presenter.Error(c, http.StatusInternalServerError, msgFetchPersonalInfo)
		}
		return presenter.Error(c, http.StatusInternalServerError, msgGenerateFailed)
	}
	return presenter.JSON(c, http.StatusOK, res)
}

type endpointDescription struct {
	Endpoint    string            `json:"endpoint"`
	Method      string            `json:"method"`
	Description string            `json:"description"`
	Version     string            `json:"version"`
	Body        map[string]string `json:"body"`
	Formats     []string          `json:"formats"`
	Response    []string          `json:"response"`
}

// Describe возвращает статическое описание эндпоинта генерации.
// @Summary Describe generate endpoint
// @Tags    resume
// @Produce json
// @Success 200 {object} endpointDescription
// @Router  /api/resume/generate [get]
func (h *GenerateHandler) Describe(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, endpointDescription{
		Endpoint:    "/api/resume/generate",
		Method:      http.MethodPost,
		Description: "Generates a formatted resume with quality, keyword and ATS analysis",
		Version:     generator.Version,
		Body: map[string]string{
			"targetJobDescription": "optional job description to match keywords against",
			"format":               "html | markdown | text | all (default html)",
			"customData":           "optional resume data; when absent stored records are used",
		},
		Formats:  []string{string(generator.FormatHTML), string(generator.FormatMarkdown), string(generator.FormatText), string(generator.FormatAll)},
		Response: []string{"formattedResume", "qualityReport", "keywordAnalysis", "suggestions", "atsReport", "metadata"},
	})
}
