package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "node js rest api", Normalize("  Node.JS / REST-API "))
	assert.Equal(t, "", Normalize("!!!"))
	assert.Equal(t, []string{}, Tokens(""))
	assert.Equal(t, []string{"a", "b"}, Tokens("a b"))
}

func TestContainsPhrase(t *testing.T) {
	assert.True(t, ContainsPhrase("built a rest api in go", "rest api"))
	assert.False(t, ContainsPhrase("built rest apis", "rest api"))
	assert.False(t, ContainsPhrase("anything", ""))
}

func TestHaystack_Contains(t *testing.T) {
	h := NewHaystack("Worked at Google on k8s clusters.\nC++ and CI/CD; PostgreSQL tuning; Node.js services")

	cases := []struct {
		keyword string
		want    bool
	}{
		{"go", false},
		{"Google", true},
		{"Kubernetes", false},
		{"c++", true},
		{"ci/cd", true},
		{"postgres", true},
		{"node js", false},
		{"Node.js", true},
		{"sql", false},
		{"terraform", false},
		{"", false},
		{"  K8S  ", true},
		{"clusters.", true},
		{"help desk", false},
		{"c#", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, h.Contains(tc.keyword), "keyword %q", tc.keyword)
	}
}
