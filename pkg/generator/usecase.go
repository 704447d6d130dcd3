package generator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/artem13815/folio/pkg/analysis"
	"github.com/artem13815/folio/pkg/logger"
	"github.com/artem13815/folio/pkg/metrics"
	"github.com/artem13815/folio/pkg/nlp"
	"github.com/artem13815/folio/pkg/render"
	"github.com/artem13815/folio/pkg/resume"
)

// ErrNoSource: нет ни customData, ни хранилища.
var ErrNoSource = errors.New("no resume data source configured")

const (
	sourceCustom = "custom"
	sourceStore  = "store"
)

// UseCase: генерация резюме: нормализация → рендер → анализ → советы.
type UseCase interface {
	Generate(ctx context.Context, req Request) (Result, error)
}

type service struct {
	src        resume.Source
	classifier *resume.Classifier
	log        *zap.Logger
	now        func() time.Time
}

// NewService собирает пайплайн. src может быть nil, тогда обслуживаются
// только запросы с customData.
func NewService(src resume.Source, classifier *resume.Classifier, log *zap.Logger) UseCase {
	if classifier == nil {
		classifier = resume.NewClassifier()
	}
	return &service{
		src:        src,
		classifier: classifier,
		log:        logger.OrNop(log),
		now:        time.Now,
	}
}

func (s *service) Generate(ctx context.Context, req Request) (Result, error) {
	start := s.now()
	source := sourceCustom
	if req.CustomData == nil {
		source = sourceStore
	}

	in, err := s.input(ctx, req)
	if err != nil {
		metrics.ResumeGenerationFailures.WithLabelValues(failureReason(err)).Inc()
		s.log.Error("load resume data", zap.String("source", source), zap.Error(err))
		return Result{}, err
	}

	jd := req.TargetJobDescription
	if IsITSupportRole(jd) {
		in = ITSupportSkills(in)
	}

	formatted, err := render.Render(in)
	if err != nil {
		metrics.ResumeGenerationFailures.WithLabelValues("render").Inc()
		s.log.Error("render resume", zap.Error(err))
		return Result{}, fmt.Errorf("render resume: %w", err)
	}

	kw := analysis.Keywords(in, jd)
	ats := analysis.ATS(in, formatted.PlainText)
	quality := analysis.Quality(in, formatted.PlainText)
	suggestions := analysis.Suggest(in, kw, ats)

	format := ParseFormat(req.Format)
	words := nlp.WordCount(formatted.PlainText)
	res := Result{
		FormattedResume: selectFormat(formatted, format),
		QualityReport:   quality,
		KeywordAnalysis: kw,
		Suggestions:     suggestions,
		ATSReport:       ats,
		Metadata: Metadata{
			GeneratedAt:  s.now().UTC(),
			Version:      Version,
			TargetRole:   in.PersonalInfo.Title,
			ResumeLength: lengthBucket(words),
			WordCount:    words,
			BulletCount:  in.BulletCount(),
			DataSource:   source,
			Format:       format,
		},
	}

	metrics.ResumeGenerations.WithLabelValues(string(format), source).Inc()
	metrics.ResumeGenerationDuration.WithLabelValues(source).Observe(time.Since(start).Seconds())
	metrics.ResumeATSScore.Observe(float64(ats.Score))
	s.log.Info("resume generated",
		zap.String("source", source),
		zap.String("format", string(format)),
		zap.Int("atsScore", ats.Score),
		zap.Int("qualityScore", quality.Score),
		zap.Bool("keywordAnalysis", kw.Applicable),
		zap.Int("suggestions", len(suggestions)),
	)
	return res, nil
}

func (s *service) input(ctx context.Context, req Request) (resume.Input, error) {
	if req.CustomData != nil {
		return resume.Normalize(*req.CustomData, s.classifier), nil
	}
	if s.src == nil {
		return resume.Input{}, ErrNoSource
	}
	recs, err := resume.Load(ctx, s.src)
	if err != nil {
		return resume.Input{}, err
	}
	return resume.NormalizeRecords(recs, s.classifier), nil
}

func selectFormat(f render.Formatted, format Format) render.Formatted {
	switch format {
	case FormatAll:
		return f
	case FormatMarkdown:
		return render.Formatted{Markdown: f.Markdown}
	case FormatText:
		return render.Formatted{PlainText: f.PlainText}
	default:
		return render.Formatted{HTML: f.HTML}
	}
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, resume.ErrFetchPersonalInfo):
		return "fetch_personal_info"
	case errors.Is(err, resume.ErrFetchExperience):
		return "fetch_experience"
	case errors.Is(err, resume.ErrFetchEducation):
		return "fetch_education"
	case errors.Is(err, resume.ErrFetchSkills):
		return "fetch_skills"
	case errors.Is(err, ErrNoSource):
		return "no_source"
	default:
		return "other"
	}
}
