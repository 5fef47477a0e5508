package app

import (
	"bytes"
	"cybit_edu/internal/config"
	"cybit_edu/internal/model"
	"cybit_edu/internal/quiz"
	"cybit_edu/internal/testutil"
	"cybit_edu/internal/util"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type harness struct {
	t      *testing.T
	app    *App
	course *model.Course
}

func testConfig() *config.Config {
	return &config.Config{
		Server:      config.ServerConfig{Port: "0", Mode: gin.TestMode},
		Storage:     config.StorageConfig{Type: util.StorageMemory},
		Quiz:        config.QuizConfig{CodingPolicy: "accept_any", SessionStore: "memory", SessionTTLMinutes: 60},
		Runner:      config.RunnerConfig{DelayMS: 0},
		Preferences: config.PreferencesConfig{DefaultTheme: "system", DefaultAccent: "blue"},
	}
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	db := testutil.DB(t)
	course := testutil.SeedCourse(t, db)

	a, err := New(testConfig(), db, nil)
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	t.Cleanup(a.cancel)
	return &harness{t: t, app: a, course: course}
}

func (h *harness) do(method, path, clientID string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	h.t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			h.t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if clientID != "" {
		req.Header.Set(util.ClientIDHeader, clientID)
	}
	w := httptest.NewRecorder()
	h.app.Router.ServeHTTP(w, req)

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			h.t.Fatalf("%s %s: decode response %q: %v", method, path, w.Body.String(), err)
		}
	}
	return w, env
}

func (h *harness) expect(method, path, clientID string, body interface{}, status int, out interface{}) envelope {
	h.t.Helper()
	w, env := h.do(method, path, clientID, body)
	if w.Code != status {
		h.t.Fatalf("%s %s: expected %d, got %d: %s", method, path, status, w.Code, w.Body.String())
	}
	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			h.t.Fatalf("%s %s: decode data: %v", method, path, err)
		}
	}
	return env
}

func TestHealthCheck(t *testing.T) {
	h := newHarness(t)

	var data struct {
		Status     string            `json:"status"`
		Components map[string]string `json:"components"`
	}
	h.expect(http.MethodGet, "/api/health", "", nil, http.StatusOK, &data)
	if data.Status != "ok" || data.Components["database"] != "sqlite" {
		t.Fatalf("unexpected health: %+v", data)
	}
}

func TestClientIDIsIssuedWhenMissing(t *testing.T) {
	h := newHarness(t)

	w, _ := h.do(http.MethodGet, "/api/preferences", "", nil)
	if w.Code != http.StatusOK || w.Header().Get(util.ClientIDHeader) == "" {
		t.Fatalf("expected a generated client id, got %d %q", w.Code, w.Header().Get(util.ClientIDHeader))
	}

	w, _ = h.do(http.MethodGet, "/api/preferences", "alice", nil)
	if got := w.Header().Get(util.ClientIDHeader); got != "alice" {
		t.Fatalf("expected client id to be echoed, got %q", got)
	}
}

func TestCourseProgressIsPerClient(t *testing.T) {
	h := newHarness(t)
	courseID := h.course.ID
	videoID := h.course.Sections[0].Videos[0].ID

	var list struct {
		Courses []model.Course `json:"courses"`
		Shown   int            `json:"shown"`
	}
	h.expect(http.MethodGet, "/api/courses?search=go&sort=rating", "alice", nil, http.StatusOK, &list)
	if list.Shown != 1 || len(list.Courses) != 1 {
		t.Fatalf("expected the seeded course, got %+v", list)
	}
	h.expect(http.MethodGet, "/api/courses?search=rust", "alice", nil, http.StatusOK, &list)
	if list.Shown != 0 || list.Courses == nil {
		t.Fatalf("expected an empty, non-null list, got %+v", list)
	}

	type summary struct {
		CompletedLessons int     `json:"completedLessons"`
		TotalLessons     int     `json:"totalLessons"`
		Percentage       float64 `json:"percentage"`
	}
	var s summary
	h.expect(http.MethodPost, fmt.Sprintf("/api/courses/%d/videos/%d/complete", courseID, videoID), "alice", nil, http.StatusOK, &s)
	h.expect(http.MethodPost, fmt.Sprintf("/api/courses/%d/videos/%d/complete", courseID, videoID), "alice", nil, http.StatusOK, &s)
	if s.CompletedLessons != 1 || s.TotalLessons != 12 {
		t.Fatalf("repeat completion must count once: %+v", s)
	}

	h.expect(http.MethodGet, fmt.Sprintf("/api/courses/%d/progress", courseID), "bob", nil, http.StatusOK, &s)
	if s.CompletedLessons != 0 {
		t.Fatalf("bob must not see alice's progress: %+v", s)
	}

	h.expect(http.MethodGet, "/api/courses/9999", "alice", nil, http.StatusNotFound, nil)
	h.expect(http.MethodGet, "/api/courses/abc", "alice", nil, http.StatusBadRequest, nil)
}

func TestPlayerClampsIndex(t *testing.T) {
	h := newHarness(t)

	var view struct {
		Index   int               `json:"index"`
		Lessons []json.RawMessage `json:"lessons"`
		Next    json.RawMessage   `json:"next"`
	}
	h.expect(http.MethodGet, fmt.Sprintf("/api/courses/%d/player?index=99", h.course.ID), "alice", nil, http.StatusOK, &view)
	if len(view.Lessons) != 3 || view.Index != 2 || view.Next != nil {
		t.Fatalf("expected clamp to the last lesson, got index %d of %d", view.Index, len(view.Lessons))
	}

	second := h.course.Sections[0].Videos[1].ID
	h.expect(http.MethodGet, fmt.Sprintf("/api/courses/%d/player?index=0&videoId=%d", h.course.ID, second), "alice", nil, http.StatusOK, &view)
	if view.Index != 1 {
		t.Fatalf("videoId should win over index, got %d", view.Index)
	}
	h.expect(http.MethodGet, fmt.Sprintf("/api/courses/%d/player?index=x", h.course.ID), "alice", nil, http.StatusBadRequest, nil)
}

type sessionView struct {
	ID          string             `json:"id"`
	State       quiz.State         `json:"state"`
	Total       int                `json:"total"`
	CurrentIdx  int                `json:"currentIndex"`
	Score       *int               `json:"score"`
	Review      []quiz.ReviewEntry `json:"review"`
	CanAdvance  bool               `json:"canAdvance"`
	AnsweredCnt int                `json:"answeredCount"`
}

func TestQuizAttempt(t *testing.T) {
	h := newHarness(t)
	videoID := h.course.Sections[0].Videos[0].ID

	var s sessionView
	h.expect(http.MethodPost, fmt.Sprintf("/api/videos/%d/quiz-sessions", videoID), "alice", nil, http.StatusCreated, &s)
	if s.ID == "" || s.Total != 3 || s.State != quiz.StateInProgress {
		t.Fatalf("unexpected new session: %+v", s)
	}
	base := "/api/quiz-sessions/" + s.ID

	h.expect(http.MethodPut, base+"/answers/q1", "alice", gin.H{"answer": "4"}, http.StatusOK, &s)
	if !s.CanAdvance {
		t.Fatalf("expected to be able to advance after answering")
	}
	h.expect(http.MethodPost, base+"/next", "alice", nil, http.StatusOK, &s)
	h.expect(http.MethodPut, base+"/answers/q2", "alice", gin.H{"answer": " GO "}, http.StatusOK, &s)
	h.expect(http.MethodPut, base+"/answers/q3", "alice", gin.H{"answer": "false"}, http.StatusOK, &s)
	h.expect(http.MethodPut, base+"/answers/nope", "alice", gin.H{"answer": "x"}, http.StatusBadRequest, nil)

	// 其他客户端看不到这个会话
	h.expect(http.MethodGet, base, "bob", nil, http.StatusNotFound, nil)
	h.expect(http.MethodGet, base+"/review", "alice", nil, http.StatusConflict, nil)

	h.expect(http.MethodPost, base+"/submit", "alice", nil, http.StatusOK, &s)
	if s.State != quiz.StateSubmitted || s.Score == nil || *s.Score != 75 {
		t.Fatalf("expected score 75, got %+v", s)
	}
	h.expect(http.MethodPut, base+"/answers/q3", "alice", gin.H{"answer": "true"}, http.StatusConflict, nil)
	h.expect(http.MethodPost, base+"/submit", "alice", nil, http.StatusConflict, nil)

	var review []quiz.ReviewEntry
	h.expect(http.MethodGet, base+"/review", "alice", nil, http.StatusOK, &review)
	if len(review) != 3 || review[2].Correct {
		t.Fatalf("unexpected review: %+v", review)
	}

	h.expect(http.MethodPost, base+"/retake", "alice", nil, http.StatusOK, &s)
	if s.State != quiz.StateInProgress || s.CurrentIdx != 0 || s.AnsweredCnt != 0 {
		t.Fatalf("retake should reset the session: %+v", s)
	}

	var best struct {
		Score    int  `json:"score"`
		Attempts int  `json:"attempts"`
		HasScore bool `json:"hasScore"`
	}
	h.expect(http.MethodGet, fmt.Sprintf("/api/videos/%d/quiz-scores", videoID), "alice", nil, http.StatusOK, &best)
	if !best.HasScore || best.Score != 75 || best.Attempts != 1 {
		t.Fatalf("unexpected best score: %+v", best)
	}
	h.expect(http.MethodGet, fmt.Sprintf("/api/videos/%d/quiz-scores", videoID), "bob", nil, http.StatusOK, &best)
	if best.HasScore || best.Attempts != 0 {
		t.Fatalf("bob has no attempts: %+v", best)
	}
}

func TestQuizStartErrors(t *testing.T) {
	h := newHarness(t)
	withoutQuiz := h.course.Sections[0].Videos[1].ID

	h.expect(http.MethodPost, fmt.Sprintf("/api/videos/%d/quiz-sessions", withoutQuiz), "alice", nil, http.StatusNotFound, nil)
	h.expect(http.MethodPost, "/api/videos/9999/quiz-sessions", "alice", nil, http.StatusNotFound, nil)
	h.expect(http.MethodGet, "/api/quiz-sessions/missing", "alice", nil, http.StatusNotFound, nil)
}

func TestPlaygroundFiles(t *testing.T) {
	h := newHarness(t)

	var file struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Language string `json:"language"`
		Code     string `json:"code"`
	}
	h.expect(http.MethodPost, "/api/playground/files", "alice", gin.H{"name": "demo", "language": "Python", "code": "print('hi')"}, http.StatusCreated, &file)
	if file.ID == "" || file.Language != "python" {
		t.Fatalf("unexpected saved file: %+v", file)
	}

	var list util.ListResponse
	h.expect(http.MethodGet, "/api/playground/files", "alice", nil, http.StatusOK, &list)
	if list.Total != 1 {
		t.Fatalf("expected one file, got %+v", list)
	}
	h.expect(http.MethodGet, "/api/playground/files", "bob", nil, http.StatusOK, &list)
	if list.Total != 0 {
		t.Fatalf("bob must not see alice's files, got %+v", list)
	}

	h.expect(http.MethodGet, "/api/playground/files/"+file.ID, "alice", nil, http.StatusOK, &file)
	if file.Code != "print('hi')" {
		t.Fatalf("unexpected code: %q", file.Code)
	}

	w, _ := h.do(http.MethodGet, "/api/playground/files/"+file.ID+"/download", "alice", nil)
	if w.Code != http.StatusOK || w.Body.String() != "print('hi')" {
		t.Fatalf("unexpected download: %d %q", w.Code, w.Body.String())
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "playground-code.py") {
		t.Fatalf("unexpected Content-Disposition: %q", cd)
	}

	h.expect(http.MethodGet, "/api/playground/files/"+file.ID, "bob", nil, http.StatusNotFound, nil)
	h.expect(http.MethodDelete, "/api/playground/files/"+file.ID, "alice", nil, http.StatusOK, nil)
	h.expect(http.MethodGet, "/api/playground/files/"+file.ID, "alice", nil, http.StatusNotFound, nil)

	h.expect(http.MethodPost, "/api/playground/files", "alice", gin.H{"name": "big", "language": "python", "code": strings.Repeat("x", util.MaxPlaygroundFileSize+1)}, http.StatusRequestEntityTooLarge, nil)
	h.expect(http.MethodPost, "/api/playground/files", "alice", gin.H{"name": "x"}, http.StatusBadRequest, nil)
}

func TestCodeRun(t *testing.T) {
	h := newHarness(t)

	var res struct {
		EditorID string `json:"editorId"`
		Profile  string `json:"profile"`
		Output   string `json:"output"`
	}
	h.expect(http.MethodPost, "/api/code/run", "alice", gin.H{"editorId": "main", "language": "javascript", "code": "console.log(1)"}, http.StatusOK, &res)
	if res.EditorID != "main" || res.Profile != "editor" || res.Output == "" {
		t.Fatalf("unexpected run result: %+v", res)
	}

	h.expect(http.MethodPost, "/api/code/run", "alice", gin.H{"language": "javascript"}, http.StatusBadRequest, nil)
	h.expect(http.MethodPost, "/api/code/run", "alice", gin.H{"editorId": "main", "language": "go", "profile": "ide"}, http.StatusBadRequest, nil)
}

func TestPreferences(t *testing.T) {
	h := newHarness(t)

	var pref struct {
		Theme  string            `json:"theme"`
		Accent model.AccentColor `json:"accent"`
		Saved  bool              `json:"saved"`
	}
	h.expect(http.MethodGet, "/api/preferences", "alice", nil, http.StatusOK, &pref)
	if pref.Theme != "system" || pref.Accent.Value != "blue" || pref.Saved {
		t.Fatalf("unexpected defaults: %+v", pref)
	}

	h.expect(http.MethodPut, "/api/preferences", "alice", gin.H{"theme": "dark"}, http.StatusOK, &pref)
	if pref.Theme != "dark" || pref.Accent.Value != "blue" || !pref.Saved {
		t.Fatalf("unexpected update: %+v", pref)
	}
	h.expect(http.MethodPut, "/api/preferences", "alice", gin.H{"accent": "teal"}, http.StatusBadRequest, nil)

	var accents []model.AccentColor
	h.expect(http.MethodGet, "/api/preferences/accents", "alice", nil, http.StatusOK, &accents)
	if len(accents) != len(model.AccentColors) {
		t.Fatalf("expected %d accents, got %d", len(model.AccentColors), len(accents))
	}
}

func TestAdminEndpoints(t *testing.T) {
	h := newHarness(t)

	var created model.Course
	h.expect(http.MethodPost, "/api/admin/courses", "", gin.H{
		"title": "Rust Basics", "instructor": "Ferris", "category": "Programming",
		"sections": []string{"Intro"},
	}, http.StatusCreated, &created)
	if created.ID == 0 || created.Status != model.StatusDraft {
		t.Fatalf("unexpected created course: %+v", created)
	}
	h.expect(http.MethodPost, "/api/admin/courses", "", gin.H{"title": "No category"}, http.StatusBadRequest, nil)

	var dash struct {
		TotalCourses     int `json:"totalCourses"`
		PublishedCourses int `json:"publishedCourses"`
	}
	h.expect(http.MethodGet, "/api/admin/dashboard", "", nil, http.StatusOK, &dash)
	if dash.TotalCourses != 2 || dash.PublishedCourses != 1 {
		t.Fatalf("unexpected dashboard: %+v", dash)
	}

	videoID := h.course.Sections[0].Videos[1].ID
	questions := []gin.H{{"id": "t1", "type": "true-false", "question": "Go is typed", "correctAnswer": "true", "points": 5}}
	var saved []model.QuizQuestion
	h.expect(http.MethodPut, fmt.Sprintf("/api/admin/videos/%d/questions", videoID), "", questions, http.StatusOK, &saved)
	if len(saved) != 1 {
		t.Fatalf("expected one question, got %d", len(saved))
	}
	dup := append(questions, questions[0])
	h.expect(http.MethodPut, fmt.Sprintf("/api/admin/videos/%d/questions", videoID), "", dup, http.StatusBadRequest, nil)

	// 新题目立即可以开始测验
	h.expect(http.MethodPost, fmt.Sprintf("/api/videos/%d/quiz-sessions", videoID), "alice", nil, http.StatusCreated, nil)

	h.expect(http.MethodDelete, fmt.Sprintf("/api/admin/courses/%d", created.ID), "", nil, http.StatusOK, nil)
	h.expect(http.MethodDelete, fmt.Sprintf("/api/admin/courses/%d", created.ID), "", nil, http.StatusNotFound, nil)
}

func TestReloadConfigAppliesLiveSettings(t *testing.T) {
	h := newHarness(t)

	cfg := testConfig()
	cfg.Quiz.CodingPolicy = "expected_output"
	cfg.Runner.DelayMS = 250
	cfg.Preferences.DefaultTheme = "dark"
	cfg.Preferences.DefaultAccent = "green"
	h.app.reloadConfig(cfg)

	s := h.app.services
	if s.quiz.CodingPolicy() != quiz.CodingExpectedOutput {
		t.Fatalf("coding policy not reloaded: %v", s.quiz.CodingPolicy())
	}
	if s.code.Runner.Delay() != 250*time.Millisecond {
		t.Fatalf("runner delay not reloaded: %v", s.code.Runner.Delay())
	}

	var pref struct {
		Theme string `json:"theme"`
	}
	h.expect(http.MethodGet, "/api/preferences", "carol", nil, http.StatusOK, &pref)
	if pref.Theme != "dark" {
		t.Fatalf("preference defaults not reloaded: %+v", pref)
	}

	// 无效的策略保持原值
	cfg.Quiz.CodingPolicy = "judge0"
	h.app.reloadConfig(cfg)
	if s.quiz.CodingPolicy() != quiz.CodingExpectedOutput {
		t.Fatalf("invalid policy must be ignored, got %v", s.quiz.CodingPolicy())
	}
}

func TestNewRejectsUnknownStores(t *testing.T) {
	db := testutil.DB(t)

	cfg := testConfig()
	cfg.Quiz.SessionStore = "redis"
	if _, err := New(cfg, db, nil); err == nil {
		t.Fatalf("redis session store without a client should fail")
	}

	cfg = testConfig()
	cfg.Storage.Type = "s3"
	if _, err := New(cfg, db, nil); err == nil {
		t.Fatalf("unknown storage type should fail")
	}
}
