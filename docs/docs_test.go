package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

type swaggerDoc struct {
	Paths       map[string]map[string]operation `json:"paths"`
	Definitions map[string]json.RawMessage      `json:"definitions"`
}

type operation struct {
	Parameters []struct {
		Name string `json:"name"`
		In   string `json:"in"`
	} `json:"parameters"`
	Responses map[string]struct {
		Schema *struct {
			Ref string `json:"$ref"`
		} `json:"schema"`
	} `json:"responses"`
}

func TestDocTemplate(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc swaggerDoc
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	analyze := doc.Paths["/api/resume/analyze"]["post"]
	var params []string
	for _, p := range analyze.Parameters {
		params = append(params, p.In+":"+p.Name)
	}
	assert.Equal(t, []string{"formData:file", "formData:targetJobDescription"}, params)

	for path, ops := range doc.Paths {
		for method, op := range ops {
			for code, resp := range op.Responses {
				if resp.Schema == nil || resp.Schema.Ref == "" {
					continue
				}
				name := resp.Schema.Ref[len("#/definitions/"):]
				assert.Contains(t, doc.Definitions, name, "%s %s %s", method, path, code)
			}
		}
	}
	assert.Contains(t, doc.Definitions, "generator.Result")
}
