package router

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/studydesk/internal/database"
	"github.com/sbilibin2017/studydesk/internal/jwt"
	"github.com/sbilibin2017/studydesk/internal/storage"
)

// fakeProvider answers quiz prompts with a JSON array and everything else with fixed text.
type fakeProvider struct {
	fail    bool
	prompts []string
}

func (p *fakeProvider) Generate(ctx context.Context, prompt string) (string, error) {
	p.prompts = append(p.prompts, prompt)
	if p.fail {
		return "", errors.New("provider unavailable")
	}
	if strings.Contains(prompt, "multiple choice") {
		return "Here you go:\n```json\n" + `[
			{"question":"What is on page one?","options":["cells","atoms","stars","rocks"],"correct_answer":0},
			{"question":"What is on page two?","options":["a","b","c","d"],"correct_answer":9}
		]` + "\n```", nil
	}
	return "fake summary", nil
}

// buildPDF returns a minimal PDF with one text line per page.
func buildPDF(pages ...string) []byte {
	n := len(pages)
	fontID := 3 + 2*n

	kids := ""
	for i := range pages {
		kids += fmt.Sprintf("%d 0 R ", 3+2*i)
	}

	objects := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", kids, n),
	}
	for i, text := range pages {
		stream := fmt.Sprintf("BT /F1 12 Tf 72 712 Td (%s) Tj ET", text)
		objects = append(objects,
			fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 %d 0 R >> >> /Contents %d 0 R >>", fontID, 4+2*i),
			fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream),
		)
	}
	objects = append(objects, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>")

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)

	return buf.Bytes()
}

type testAPI struct {
	t          *testing.T
	handler    http.Handler
	provider   *fakeProvider
	uploadsDir string
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	dir := t.TempDir()
	db, err := database.Open(context.Background(), "sqlite:///"+filepath.Join(dir, "study.db"), 4, 4)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	uploads := filepath.Join(dir, "uploads")
	store, err := storage.NewLocalStorage(uploads)
	require.NoError(t, err)

	provider := &fakeProvider{}
	handler := New(Deps{
		DB:       db,
		Tokens:   jwt.New(jwt.WithSecretKey("test-secret")),
		Storage:  store,
		Provider: provider,
	}, Options{CORSOrigins: []string{"*"}})

	return &testAPI{t: t, handler: handler, provider: provider, uploadsDir: uploads}
}

func (a *testAPI) do(method, path, token string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	a.handler.ServeHTTP(rr, req)
	return rr
}

func (a *testAPI) doJSON(method, path, token string, body any) *httptest.ResponseRecorder {
	var r io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(a.t, err)
		r = bytes.NewReader(data)
	}
	return a.do(method, path, token, r, "application/json")
}

func (a *testAPI) upload(token, filename, title string, content []byte) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(a.t, mw.WriteField("title", title))
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(a.t, err)
	_, err = fw.Write(content)
	require.NoError(a.t, err)
	require.NoError(a.t, mw.Close())

	return a.do(http.MethodPost, "/api/materials/upload", token, &buf, mw.FormDataContentType())
}

func (a *testAPI) register(username string) string {
	rr := a.doJSON(http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": username,
		"email":    username + "@example.com",
		"password": "secret123",
	})
	require.Equal(a.t, http.StatusCreated, rr.Code, rr.Body.String())

	var resp struct {
		Token  string `json:"token"`
		UserID string `json:"user_id"`
	}
	require.NoError(a.t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotEmpty(a.t, resp.Token)
	return resp.Token
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

func TestAPI_StudyFlow(t *testing.T) {
	api := newTestAPI(t)

	rr := api.doJSON(http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rr.Body.String())

	token := api.register("alice")

	// login with the same credentials
	rr = api.doJSON(http.MethodPost, "/api/auth/login", "", map[string]string{"username": "alice", "password": "secret123"})
	require.Equal(t, http.StatusOK, rr.Code)

	rr = api.doJSON(http.MethodPost, "/api/auth/login", "", map[string]string{"username": "alice", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = api.upload(token, "notes.pdf", "Notes", buildPDF("Cells are small", "Atoms are smaller"))
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	uploaded := decode[map[string]string](t, rr)
	assert.Equal(t, "Notes", uploaded["title"])
	assert.Equal(t, "pdf", uploaded["file_type"])
	materialID := uploaded["id"]

	rr = api.doJSON(http.MethodGet, "/api/materials", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	list := decode[[]map[string]any](t, rr)
	require.Len(t, list, 1)
	assert.Equal(t, "Notes", list[0]["title"])

	rr = api.doJSON(http.MethodGet, "/api/materials/"+materialID, token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	detail := decode[map[string]any](t, rr)
	assert.Equal(t, float64(2), detail["pages"])

	// summary
	rr = api.doJSON(http.MethodPost, "/api/summary/generate", token, map[string]string{"material_id": materialID})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"summary":"fake summary","degraded":false}`, rr.Body.String())
	lastPrompt := api.provider.prompts[len(api.provider.prompts)-1]
	assert.Contains(t, lastPrompt, "Cells are small")
	assert.Contains(t, lastPrompt, "Atoms are smaller")

	// degraded summary
	api.provider.fail = true
	rr = api.doJSON(http.MethodPost, "/api/summary/generate", token, map[string]string{"material_id": materialID})
	require.Equal(t, http.StatusOK, rr.Code)
	degraded := decode[map[string]any](t, rr)
	assert.Equal(t, true, degraded["degraded"])
	assert.True(t, strings.HasPrefix(degraded["summary"].(string), "Error generating summary: "))
	api.provider.fail = false

	// quiz keeps only the well-formed question
	rr = api.doJSON(http.MethodPost, "/api/quiz/generate", token, map[string]any{"material_id": materialID, "num_questions": 2})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	quiz := decode[struct {
		QuizID    string `json:"quiz_id"`
		Questions []any  `json:"questions"`
	}](t, rr)
	require.NotEmpty(t, quiz.QuizID)
	assert.Len(t, quiz.Questions, 1)

	rr = api.doJSON(http.MethodPost, "/api/quizzes/"+quiz.QuizID+"/submit", token, map[string]any{"answers": []int{0}})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	score := decode[map[string]any](t, rr)
	assert.Equal(t, float64(100), score["score"])
	assert.Equal(t, float64(1), score["correct"])

	rr = api.doJSON(http.MethodGet, "/api/quizzes/"+quiz.QuizID+"/submissions", token, nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	attempts := decode[[]map[string]any](t, rr)
	require.Len(t, attempts, 1)
	assert.Equal(t, score["submission_id"], attempts[0]["id"])
	assert.Equal(t, float64(100), attempts[0]["score"])

	rr = api.doJSON(http.MethodGet, "/api/quizzes", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decode[[]any](t, rr), 1)

	// progress accumulates time
	for _, spent := range []int{60, 30} {
		rr = api.doJSON(http.MethodPut, "/api/progress/"+materialID, token, map[string]any{
			"pages_read": 1, "time_spent": spent, "completion_percentage": 150,
		})
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	}
	progress := decode[map[string]any](t, rr)
	assert.Equal(t, float64(90), progress["time_spent"])
	assert.Equal(t, float64(100), progress["completion_percentage"])

	// delete removes artifact and rows
	entries, err := os.ReadDir(api.uploadsDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	rr = api.doJSON(http.MethodDelete, "/api/materials/"+materialID, token, nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	entries, err = os.ReadDir(api.uploadsDir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	rr = api.doJSON(http.MethodGet, "/api/materials/"+materialID, token, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = api.doJSON(http.MethodGet, "/api/quizzes/"+quiz.QuizID, token, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = api.doJSON(http.MethodGet, "/api/progress", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestAPI_UploadValidation(t *testing.T) {
	api := newTestAPI(t)
	token := api.register("bob")

	rr := api.upload(token, "setup.exe", "Installer", []byte("MZ"))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"File type not allowed"}`, rr.Body.String())

	rr = api.upload(token, "empty.txt", "Empty", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"No file provided"}`, rr.Body.String())

	entries, err := os.ReadDir(api.uploadsDir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	// identical uploads in the same second get distinct artifacts
	for i := 0; i < 2; i++ {
		rr = api.upload(token, "same.txt", "Same", []byte("plain text"))
		require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	}
	entries, err = os.ReadDir(api.uploadsDir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestAPI_Unauthorized(t *testing.T) {
	api := newTestAPI(t)

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header"},
		{name: "wrong scheme", header: "Token abc"},
		{name: "garbage token", header: "Bearer not.a.jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/materials", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			api.handler.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.JSONEq(t, `{"error":"Unauthorized"}`, rr.Body.String())
		})
	}
}

func TestAPI_DuplicateRegistration(t *testing.T) {
	api := newTestAPI(t)
	api.register("carol")

	rr := api.doJSON(http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": "carol", "email": "other@example.com", "password": "x",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"Username already exists"}`, rr.Body.String())

	rr = api.doJSON(http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": "dave", "email": "carol@example.com", "password": "x",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"Email already exists"}`, rr.Body.String())
}

func TestAPI_DeleteAccount(t *testing.T) {
	api := newTestAPI(t)
	token := api.register("erin")

	rr := api.upload(token, "notes.txt", "Notes", []byte("some notes"))
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = api.doJSON(http.MethodPost, "/api/auth/refresh", token, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = api.doJSON(http.MethodDelete, "/api/account", token, nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	entries, err := os.ReadDir(api.uploadsDir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	rr = api.doJSON(http.MethodGet, "/api/materials", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = api.doJSON(http.MethodPost, "/api/auth/login", "", map[string]string{"username": "erin", "password": "secret123"})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAPI_CORSPreflight(t *testing.T) {
	api := newTestAPI(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/materials/upload", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rr := httptest.NewRecorder()
	api.handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "http://localhost:3000", rr.Header().Get("Access-Control-Allow-Origin"))
}
