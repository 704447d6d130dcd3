package handlers

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func docx(t *testing.T, paragraphs ...string) []byte {
	t.Helper()
	var body bytes.Buffer
	for _, p := range paragraphs {
		body.WriteString("<w:p><w:r><w:t>" + p + "</w:t></w:r></w:p>")
	}
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte("<w:document><w:body>" + body.String() + "</w:body></w:document>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func upload(t *testing.T, filename string, data []byte, jd string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if filename != "" {
		fw, err := mw.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = fw.Write(data)
		require.NoError(t, err)
	}
	if jd != "" {
		require.NoError(t, mw.WriteField("targetJobDescription", jd))
	}
	require.NoError(t, mw.Close())
	req := httptest.NewRequest(http.MethodPost, "/api/resume/analyze", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func newResumeApp() *fiber.App {
	app := fiber.New()
	app.Post("/api/resume/analyze", NewResumeHandler(nil).Analyze)
	return app
}

func TestAnalyze_Docx(t *testing.T) {
	data := docx(t, "Jane Doe jane@example.com", "Experience", "Cut costs by 30%", "Education", "Skills", "Go, Docker")

	resp, err := newResumeApp().Test(upload(t, "cv.docx", data, "Go and Kubernetes"), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body analyzeResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "cv.docx", body.Filename)
	assert.Equal(t, len(data), body.SizeB)
	assert.Equal(t, []string{"Go"}, body.Report.KeywordAnalysis.Matched)
	assert.Equal(t, []string{"Kubernetes"}, body.Report.KeywordAnalysis.Missing)
}

func TestAnalyze_Rejects(t *testing.T) {
	cases := []struct {
		name     string
		filename string
		data     []byte
		message  string
	}{
		{"no file", "", nil, "file is required (pdf or docx)"},
		{"wrong extension", "cv.txt", []byte("hello"), "unsupported file format: only pdf and docx are allowed"},
		{"empty document", "cv.docx", docx(t, " "), "empty resume content"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := newResumeApp().Test(upload(t, tc.filename, tc.data, ""), -1)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			var body map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tc.message, body["error"])
		})
	}
}

func TestReadAtMost(t *testing.T) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "a.pdf")
	require.NoError(t, err)
	_, err = fw.Write(bytes.Repeat([]byte("x"), 11))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	form, err := multipart.NewReader(&buf, mw.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	f, err := form.File["file"][0].Open()
	require.NoError(t, err)
	defer f.Close()

	_, err = readAtMost(f, 10)
	assert.EqualError(t, err, "file too large: limit is 10 bytes")
}
