package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/artem13815/folio/pkg/resume"
)

func TestIsITSupportRole(t *testing.T) {
	assert.True(t, IsITSupportRole("Looking for an IT Support technician"))
	assert.True(t, IsITSupportRole("Join our Help-Desk team"))
	assert.True(t, IsITSupportRole("helpdesk analyst"))
	assert.False(t, IsITSupportRole("Senior Go engineer, distributed systems"))
	assert.False(t, IsITSupportRole(""))
}

func TestITSupportSkills(t *testing.T) {
	in := resume.Normalize(*customInput(), nil)

	out := ITSupportSkills(in)

	assert.Equal(t, []string{"Active Directory"}, out.Skills[resume.CategoryITSupport])
	assert.Equal(t, []string{"Jira"}, out.Skills[resume.CategoryTools])
	assert.Empty(t, out.Skills[resume.CategoryLanguages])
	assert.Equal(t, []string{"Go"}, in.Skills[resume.CategoryLanguages])
}

func TestITSupportSkills_NoSupportSkillsKeepsInput(t *testing.T) {
	in := resume.Normalize(resume.Input{Skills: resume.Skills{resume.CategoryLanguages: {"Go"}}}, nil)

	assert.Equal(t, in, ITSupportSkills(in))
}
