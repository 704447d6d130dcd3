package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/artem13815/folio/api/http/presenter"
	"github.com/artem13815/folio/pkg/analysis"
	"github.com/artem13815/folio/pkg/logger"
	"github.com/artem13815/folio/pkg/metrics"
	"github.com/artem13815/folio/pkg/resume"
)

type ResumeHandler struct {
	log *zap.Logger
	// Лимит размера загружаемого файла в байтах
	maxBytes int64
}

func NewResumeHandler(log *zap.Logger) *ResumeHandler {
	return &ResumeHandler{log: logger.OrNop(log), maxBytes: 15 << 20} // 15MB
}

type analyzeResponse struct {
	Filename string              `json:"filename"`
	SizeB    int                 `json:"sizeB"`
	Report   analysis.TextReport `json:"report"`
}

// Analyze обрабатывает загруженное резюме (PDF/DOCX), извлекает текст
// и проверяет его теми же эвристиками ATS и ключевых слов, что и генератор.
// @Summary Анализ загруженного резюме
// @Description Принимает файл резюме в формате PDF или DOCX и необязательное описание вакансии.
// @Tags    resume
// @Accept  multipart/form-data
// @Produce json
// @Param   file formData file true "Файл резюме (PDF или DOCX)"
// @Param   targetJobDescription formData string false "Описание вакансии"
// @Success 200 {object} analyzeResponse
// @Failure 400 {object} presenter.ErrorResponse "Ошибка валидации или чтения файла"
// @Router  /api/resume/analyze [post]
func (h *ResumeHandler) Analyze(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "file is required (pdf or docx)")
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if ext != ".pdf" && ext != ".docx" {
		return presenter.Error(c, http.StatusBadRequest, "unsupported file format: only pdf and docx are allowed")
	}
	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := readAtMost(file, h.maxBytes)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	text, err := resume.ParseResumeText(fh.Filename, data)
	if err != nil {
		if errors.Is(err, resume.ErrUnsupportedFormat) {
			return presenter.Error(c, http.StatusBadRequest, "unsupported file format: only pdf and docx are allowed")
		}
		h.log.Info("parse uploaded resume", zap.String("filename", fh.Filename), zap.Error(err))
		return presenter.Error(c, http.StatusBadRequest, fmt.Sprintf("failed to read resume: %v", err))
	}
	if strings.TrimSpace(text) == "" {
		return presenter.Error(c, http.StatusBadRequest, "empty resume content")
	}

	report := analysis.AnalyzeText(text, c.FormValue("targetJobDescription"))
	metrics.ResumeUploadsAnalyzed.WithLabelValues(strings.TrimPrefix(ext, ".")).Inc()

	return presenter.JSON(c, http.StatusOK, analyzeResponse{
		Filename: fh.Filename,
		SizeB:    len(data),
		Report:   report,
	})
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("file too large: limit is %d bytes", max)
	}
	return b, nil
}
