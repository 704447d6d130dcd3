package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/folio/pkg/resume"
)

func sampleInput() resume.Input {
	return resume.Normalize(resume.Input{
		PersonalInfo: resume.PersonalInfo{
			FullName: "Jane Doe",
			Email:    "jane@example.com",
			Phone:    "+1 555 0100",
			Title:    "Backend Engineer",
			Summary:  "Engineer with 8 years of experience building APIs.",
			Location: resume.Location{City: "Berlin", Country: "Germany"},
			Links:    resume.Links{GitHub: "https://github.com/jane"},
		},
		Experience: []resume.Experience{
			{
				Company:          "Acme",
				Title:            "Senior Engineer",
				Location:         "Remote",
				StartDate:        "2021-03-01",
				EndDate:          "2023-01-01",
				IsCurrent:        true,
				Responsibilities: []string{"Designed billing service", "Led on-call rotation"},
				Achievements:     []string{"Cut latency by 40%"},
				Technologies:     []string{"Go", "PostgreSQL"},
			},
			{
				Company:          "Initech",
				Title:            "Engineer",
				StartDate:        "2018-05",
				EndDate:          "2021-02",
				Responsibilities: []string{"Maintained TPS reports pipeline"},
			},
		},
		Education: []resume.Education{
			{Degree: "BSc", Field: "Computer Science", Institution: "TU Berlin", GraduationDate: "2018-06-30", GPA: "3.8"},
		},
		Skills: resume.Skills{
			resume.CategoryLanguages: {"Go", "Python"},
			resume.CategoryDatabases: {"PostgreSQL"},
		},
	}, nil)
}

func TestRender_AllFormatsCarrySameContent(t *testing.T) {
	out, err := Render(sampleInput())
	require.NoError(t, err)

	facts := []string{
		"Jane Doe", "Backend Engineer", "jane@example.com", "Berlin, Germany",
		"Senior Engineer - Acme", "Designed billing service", "Led on-call rotation",
		"Cut latency by 40%", "Go, PostgreSQL", "Engineer - Initech",
		"BSc in Computer Science", "TU Berlin", "Jun 2018", "GPA 3.8",
		"Languages", "Go, Python", "Databases",
	}
	for name, doc := range map[string]string{"html": out.HTML, "markdown": out.Markdown, "text": out.PlainText} {
		for _, f := range facts {
			assert.Contains(t, doc, f, "%s rendering lacks %q", name, f)
		}
	}
}

func TestRender_Deterministic(t *testing.T) {
	in := sampleInput()

	first, err := Render(in)
	require.NoError(t, err)
	second, err := Render(in)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRender_CurrentPositionShowsPresent(t *testing.T) {
	// без Normalize: EndDate остаётся, но не должен попасть в документ
	in := resume.Input{Experience: []resume.Experience{{
		Company: "Acme", Title: "SRE", StartDate: "2021-03-01", EndDate: "2023-01-01", IsCurrent: true,
	}}}

	out, err := Render(in)
	require.NoError(t, err)

	for _, doc := range []string{out.HTML, out.Markdown, out.PlainText} {
		assert.Contains(t, doc, "Mar 2021 - Present")
		assert.NotContains(t, doc, "Jan 2023")
	}
}

func TestRender_SkillOverrideIsReflected(t *testing.T) {
	in := sampleInput()
	before, err := Render(in)
	require.NoError(t, err)

	after, err := Render(resume.WithSkills(in, resume.Skills{resume.CategoryITSupport: {"Active Directory"}}))
	require.NoError(t, err)

	assert.Contains(t, before.PlainText, "Python")
	assert.NotContains(t, after.PlainText, "Python")
	assert.Contains(t, after.PlainText, "IT Support: Active Directory")
	assert.Contains(t, after.Markdown, "**IT Support:** Active Directory")
}

func TestRender_EscapesHTML(t *testing.T) {
	in := resume.Input{PersonalInfo: resume.PersonalInfo{FullName: `<script>alert("x")</script>`}}

	out, err := Render(in)
	require.NoError(t, err)

	assert.NotContains(t, out.HTML, "<script>")
	assert.Contains(t, out.HTML, "&lt;script&gt;")
}

func TestRender_EmptyInput(t *testing.T) {
	out, err := Render(resume.Normalize(resume.Input{}, nil))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out.PlainText, "Resume"))
	assert.Contains(t, out.Markdown, "# Resume")
	assert.NotContains(t, out.PlainText, "EXPERIENCE")
	assert.NotContains(t, out.HTML, "<h2>Skills</h2>")
}

func TestDisplayDate(t *testing.T) {
	assert.Equal(t, "Mar 2021", displayDate("2021-03-01"))
	assert.Equal(t, "May 2018", displayDate("2018-05"))
	assert.Equal(t, "Spring 2019", displayDate("Spring 2019"))
	assert.Equal(t, "", displayDate("  "))
}

func TestRender_ParityWithSpecialCharacters(t *testing.T) {
	in := resume.Normalize(resume.Input{
		PersonalInfo: resume.PersonalInfo{FullName: "Jane O'Neil"},
		Experience: []resume.Experience{{
			Company:          "Acme & Sons",
			Title:            "Engineer",
			Responsibilities: []string{"Owned the team's budget"},
		}},
		Education: []resume.Education{{Degree: "BSc", Institution: "King's College"}},
		Skills:    resume.Skills{resume.CategoryLanguages: {"C++", "C#"}},
	}, nil)

	out, err := Render(in)
	require.NoError(t, err)

	for _, fact := range []string{"Jane O'Neil", "Owned the team's budget", "King's College", "C++, C#"} {
		assert.Contains(t, out.HTML, fact)
		assert.Contains(t, out.Markdown, fact)
		assert.Contains(t, out.PlainText, fact)
	}
	assert.Contains(t, out.HTML, "Engineer - Acme &amp; Sons")
}
