package generator

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/artem13815/folio/pkg/resume"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func str(s string) *string { return &s }

type stubSource struct {
	personalErr error
	skillsErr   error
}

func (s stubSource) PersonalInfo(context.Context) (*resume.PersonalInfoRecord, error) {
	if s.personalErr != nil {
		return nil, s.personalErr
	}
	return &resume.PersonalInfoRecord{FullName: str("Jane Doe"), Email: str("jane@example.com"), Title: str("SRE")}, nil
}

func (s stubSource) Experience(context.Context) ([]resume.ExperienceRecord, error) {
	return []resume.ExperienceRecord{{Company: str("Acme"), Position: str("SRE")}}, nil
}

func (s stubSource) Education(context.Context) ([]resume.EducationRecord, error) {
	return nil, nil
}

func (s stubSource) Skills(context.Context) ([]resume.SkillRecord, error) {
	if s.skillsErr != nil {
		return nil, s.skillsErr
	}
	return []resume.SkillRecord{{Name: str("Go"), Category: str("languages")}}, nil
}

var fixedNow = time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

func newTestService(src resume.Source) *service {
	s := NewService(src, nil, nil).(*service)
	s.now = func() time.Time { return fixedNow }
	return s
}

func customInput() *resume.Input {
	return &resume.Input{
		PersonalInfo: resume.PersonalInfo{FullName: "Jane Doe", Email: "jane@example.com", Title: "Support Engineer"},
		Experience: []resume.Experience{{
			Company: "Acme", Title: "Support Engineer", Responsibilities: []string{"Resolved 50 tickets a week"},
		}},
		Skills: resume.Skills{
			resume.CategoryLanguages: {"Go"},
			resume.CategoryITSupport: {"Active Directory"},
			resume.CategoryTools:     {"Jira"},
		},
	}
}

func TestGenerate_CustomDataDefaultsToHTML(t *testing.T) {
	res, err := newTestService(nil).Generate(context.Background(), Request{CustomData: customInput()})

	require.NoError(t, err)
	assert.Contains(t, res.FormattedResume.HTML, "Jane Doe")
	assert.Empty(t, res.FormattedResume.Markdown)
	assert.Empty(t, res.FormattedResume.PlainText)
	assert.Equal(t, FormatHTML, res.Metadata.Format)
	assert.Equal(t, "custom", res.Metadata.DataSource)
	assert.Equal(t, fixedNow, res.Metadata.GeneratedAt)
	assert.Equal(t, Version, res.Metadata.Version)
	assert.Equal(t, "Support Engineer", res.Metadata.TargetRole)
	assert.Equal(t, LengthShort, res.Metadata.ResumeLength)
	assert.Equal(t, 1, res.Metadata.BulletCount)
	assert.False(t, res.KeywordAnalysis.Applicable)
	assert.NotNil(t, res.Suggestions)
}

func TestGenerate_FormatSelection(t *testing.T) {
	svc := newTestService(nil)
	cases := []struct {
		format string
		check  func(t *testing.T, res Result)
	}{
		{"markdown", func(t *testing.T, res Result) {
			assert.NotEmpty(t, res.FormattedResume.Markdown)
			assert.Empty(t, res.FormattedResume.HTML)
			assert.Empty(t, res.FormattedResume.PlainText)
		}},
		{"TEXT", func(t *testing.T, res Result) {
			assert.NotEmpty(t, res.FormattedResume.PlainText)
			assert.Empty(t, res.FormattedResume.HTML)
		}},
		{"all", func(t *testing.T, res Result) {
			assert.NotEmpty(t, res.FormattedResume.HTML)
			assert.NotEmpty(t, res.FormattedResume.Markdown)
			assert.NotEmpty(t, res.FormattedResume.PlainText)
		}},
		{"pdf", func(t *testing.T, res Result) {
			assert.Equal(t, FormatHTML, res.Metadata.Format)
			assert.NotEmpty(t, res.FormattedResume.HTML)
		}},
	}
	for _, tc := range cases {
		t.Run(tc.format, func(t *testing.T) {
			res, err := svc.Generate(context.Background(), Request{Format: tc.format, CustomData: customInput()})
			require.NoError(t, err)
			tc.check(t, res)
		})
	}
}

func TestGenerate_FromStore(t *testing.T) {
	res, err := newTestService(stubSource{}).Generate(context.Background(), Request{Format: "text"})

	require.NoError(t, err)
	assert.Equal(t, "store", res.Metadata.DataSource)
	assert.Contains(t, res.FormattedResume.PlainText, "SRE - Acme")
	assert.Contains(t, res.FormattedResume.PlainText, "Languages: Go")
}

func TestGenerate_StoreErrors(t *testing.T) {
	boom := errors.New("timeout")

	_, err := newTestService(stubSource{personalErr: boom}).Generate(context.Background(), Request{})
	assert.ErrorIs(t, err, resume.ErrFetchPersonalInfo)

	_, err = newTestService(stubSource{skillsErr: boom}).Generate(context.Background(), Request{})
	assert.ErrorIs(t, err, resume.ErrFetchSkills)
	assert.NotErrorIs(t, err, resume.ErrFetchPersonalInfo)

	_, err = newTestService(nil).Generate(context.Background(), Request{})
	assert.ErrorIs(t, err, ErrNoSource)
}

func TestGenerate_CustomDataSkipsStore(t *testing.T) {
	src := stubSource{personalErr: errors.New("must not be called")}

	res, err := newTestService(src).Generate(context.Background(), Request{CustomData: customInput()})

	require.NoError(t, err)
	assert.Equal(t, "custom", res.Metadata.DataSource)
}

func TestGenerate_ITSupportOverride(t *testing.T) {
	req := Request{
		Format:               "text",
		TargetJobDescription: "IT Support Specialist: help desk tickets, Active Directory, Jira",
		CustomData:           customInput(),
	}

	res, err := newTestService(nil).Generate(context.Background(), req)

	require.NoError(t, err)
	text := res.FormattedResume.PlainText
	assert.Contains(t, text, "IT Support: Active Directory")
	assert.Contains(t, text, "Tools: Jira")
	assert.NotContains(t, text, "Languages: Go")
	assert.True(t, res.KeywordAnalysis.Applicable)
	assert.Contains(t, res.KeywordAnalysis.Matched, "Active Directory")
}

func TestGenerate_DoesNotMutateCustomData(t *testing.T) {
	in := customInput()
	req := Request{TargetJobDescription: "help desk role", CustomData: in}

	_, err := newTestService(nil).Generate(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, []string{"Go"}, in.Skills[resume.CategoryLanguages])
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatHTML, ParseFormat(""))
	assert.Equal(t, FormatMarkdown, ParseFormat(" Markdown "))
	assert.Equal(t, FormatAll, ParseFormat("all"))
	assert.Equal(t, FormatHTML, ParseFormat("docx"))
}

func TestLengthBucket(t *testing.T) {
	assert.Equal(t, LengthShort, lengthBucket(299))
	assert.Equal(t, LengthStandard, lengthBucket(300))
	assert.Equal(t, LengthStandard, lengthBucket(800))
	assert.Equal(t, LengthLong, lengthBucket(801))
}
