package generator

import (
	"strings"
	"time"

	"github.com/artem13815/folio/pkg/analysis"
	"github.com/artem13815/folio/pkg/render"
	"github.com/artem13815/folio/pkg/resume"
)

// Version: версия разметки документа и схемы отчётов.
const Version = "1.0.0"

// Format: какой рендер вернуть клиенту.
type Format string

const (
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
	FormatText     Format = "text"
	FormatAll      Format = "all"
)

// ParseFormat отображает значение из запроса на Format; пустое или
// неизвестное значение даёт HTML.
func ParseFormat(s string) Format {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatHTML, FormatMarkdown, FormatText, FormatAll:
		return f
	default:
		return FormatHTML
	}
}

type Request struct {
	TargetJobDescription string        `json:"targetJobDescription,omitempty"`
	Format               string        `json:"format,omitempty"`
	CustomData           *resume.Input `json:"customData,omitempty"`
}

type LengthBucket string

const (
	LengthShort    LengthBucket = "short"
	LengthStandard LengthBucket = "standard"
	LengthLong     LengthBucket = "long"
)

func lengthBucket(words int) LengthBucket {
	switch {
	case words < 300:
		return LengthShort
	case words <= 800:
		return LengthStandard
	default:
		return LengthLong
	}
}

type Metadata struct {
	GeneratedAt  time.Time    `json:"generatedAt"`
	Version      string       `json:"version"`
	TargetRole   string       `json:"targetRole,omitempty"`
	ResumeLength LengthBucket `json:"resumeLength"`
	WordCount    int          `json:"wordCount"`
	BulletCount  int          `json:"bulletCount"`
	DataSource   string       `json:"dataSource"`
	Format       Format       `json:"format"`
}

// Result: ответ пайплайна. В FormattedResume заполнен только запрошенный
// формат, если не запрошен "all".
type Result struct {
	FormattedResume render.Formatted         `json:"formattedResume"`
	QualityReport   analysis.QualityReport   `json:"qualityReport"`
	KeywordAnalysis analysis.KeywordAnalysis `json:"keywordAnalysis"`
	Suggestions     []analysis.Suggestion    `json:"suggestions"`
	ATSReport       analysis.ATSReport       `json:"atsReport"`
	Metadata        Metadata                 `json:"metadata"`
}
