package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJerard79809/capstone-scribe/internal/application/document"
	"github.com/MrJerard79809/capstone-scribe/internal/application/generation"
	"github.com/MrJerard79809/capstone-scribe/internal/domain/entity"
	"github.com/MrJerard79809/capstone-scribe/internal/interfaces/http/dto"
)

func newDocumentRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewDocumentHandler(document.NewEditor(document.NewStore()))

	r := gin.New()
	r.POST("/v1/documents", h.Create)
	r.GET("/v1/documents/:did", h.Get)
	r.PUT("/v1/documents/:did", h.UpdateTitle)
	r.POST("/v1/documents/:did/save", h.Save)
	r.PUT("/v1/documents/:did/chapters/:num", h.UpdateChapter)
	r.PUT("/v1/documents/:did/chapters/:num/sections/:idx", h.UpdateSection)
	r.GET("/v1/documents/:did/export", h.Export)
	return r
}

func testProject() *entity.GeneratedProject {
	engine := generation.NewEngine(generation.WithSeed(1))
	return engine.AssembleProject(entity.FormInput{
		Field:        "Information Technology",
		Topic:        "Smart Triage Systems",
		Keywords:     "machine learning, hospital",
		ResearchType: entity.ResearchQuantitative,
	}, "Smart Triage Systems: A Quantitative Analysis")
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createTestDocument(t *testing.T, r *gin.Engine) dto.DocumentResponse {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/v1/documents", dto.CreateDocumentRequest{Project: testProject()})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.Response[dto.DocumentResponse]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Data.Document)
	return resp.Data
}

func TestDocumentCreateAndGet(t *testing.T) {
	r := newDocumentRouter()

	created := createTestDocument(t, r)
	assert.NotEmpty(t, created.Document.ID)
	assert.Equal(t, "Smart Triage Systems: A Quantitative Analysis", created.Document.Title)
	require.Len(t, created.Document.Chapters, 5)
	assert.Positive(t, created.TotalWords)

	w := doJSON(t, r, http.MethodGet, "/v1/documents/"+created.Document.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response[dto.DocumentResponse]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, created.Document.ID, resp.Data.Document.ID)
}

func TestDocumentCreate_EmptyProjectRejected(t *testing.T) {
	r := newDocumentRouter()

	w := doJSON(t, r, http.MethodPost, "/v1/documents", dto.CreateDocumentRequest{
		Project: &entity.GeneratedProject{MainTitle: "Empty"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPost, "/v1/documents", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDocumentGet_NotFound(t *testing.T) {
	r := newDocumentRouter()

	w := doJSON(t, r, http.MethodGet, "/v1/documents/missing", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, "2001", resp.Error.ErrorCode)
}

func TestDocumentUpdateChapter(t *testing.T) {
	r := newDocumentRouter()
	created := createTestDocument(t, r)

	w := doJSON(t, r, http.MethodPut, "/v1/documents/"+created.Document.ID+"/chapters/1", dto.UpdateChapterRequest{
		Field: "introduction",
		Value: "A fresh introduction paragraph.",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response[dto.ChapterResponse]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "A fresh introduction paragraph.", resp.Data.Chapter.Content.Introduction)
	assert.Positive(t, resp.Data.Chapter.WordCount)

	// 非法字段名由绑定校验拦截
	w = doJSON(t, r, http.MethodPut, "/v1/documents/"+created.Document.ID+"/chapters/1", dto.UpdateChapterRequest{
		Field: "body",
		Value: "x",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 章节不存在返回 404
	w = doJSON(t, r, http.MethodPut, "/v1/documents/"+created.Document.ID+"/chapters/9", dto.UpdateChapterRequest{
		Field: "title",
		Value: "New Title",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDocumentUpdateSection(t *testing.T) {
	r := newDocumentRouter()
	created := createTestDocument(t, r)

	w := doJSON(t, r, http.MethodPut, "/v1/documents/"+created.Document.ID+"/chapters/2/sections/0", dto.UpdateSectionRequest{
		Field: "content",
		Value: "Rewritten section body.",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response[dto.ChapterResponse]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.Chapter.Content.Sections)
	assert.Equal(t, "Rewritten section body.", resp.Data.Chapter.Content.Sections[0].Content)

	// 小节下标越界返回 404
	w = doJSON(t, r, http.MethodPut, "/v1/documents/"+created.Document.ID+"/chapters/2/sections/99", dto.UpdateSectionRequest{
		Field: "content",
		Value: "x",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDocumentSave(t *testing.T) {
	r := newDocumentRouter()
	created := createTestDocument(t, r)

	w := doJSON(t, r, http.MethodPost, "/v1/documents/"+created.Document.ID+"/save", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response[dto.DocumentResponse]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Data.Document.LastSaved.IsZero())
}

func TestDocumentExport_Text(t *testing.T) {
	r := newDocumentRouter()
	created := createTestDocument(t, r)

	w := doJSON(t, r, http.MethodGet, "/v1/documents/"+created.Document.ID+"/export", nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	assert.Equal(t, "attachment; filename=Smart_Triage_Systems__A_Quantitative_Analysis.txt",
		w.Header().Get("Content-Disposition"))

	body := w.Body.String()
	assert.True(t, strings.HasPrefix(body, "Smart Triage Systems: A Quantitative Analysis\n"))
	assert.Contains(t, body, "CHAPTER 1: ")
}

func TestDocumentExport_Docx(t *testing.T) {
	r := newDocumentRouter()
	created := createTestDocument(t, r)

	w := doJSON(t, r, http.MethodGet, "/v1/documents/"+created.Document.ID+"/export?format=docx", nil)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, docxContentType, w.Header().Get("Content-Type"))
	// docx 本质是 zip 容器
	require.GreaterOrEqual(t, w.Body.Len(), 2)
	assert.Equal(t, []byte("PK"), w.Body.Bytes()[:2])
}

func TestDocumentExport_UnsupportedFormat(t *testing.T) {
	r := newDocumentRouter()
	created := createTestDocument(t, r)

	w := doJSON(t, r, http.MethodGet, "/v1/documents/"+created.Document.ID+"/export?format=pdf", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
