package util

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestParseID(t *testing.T) {
	if id, err := ParseID("42"); err != nil || id != 42 {
		t.Fatalf("ParseID(42) = %d, %v", id, err)
	}
	for _, bad := range []string{"", "0", "-1", "abc"} {
		if _, err := ParseID(bad); err == nil {
			t.Fatalf("ParseID(%q): expected error", bad)
		}
	}
}

func TestHasAllowedExtension(t *testing.T) {
	if !HasAllowedExtension("Lesson.MP4", AllowedVideoExtensions) {
		t.Fatalf("extension match must be case-insensitive")
	}
	if HasAllowedExtension("notes.txt", AllowedVideoExtensions) {
		t.Fatalf("txt is not a video extension")
	}
}

func TestValidateMimeType(t *testing.T) {
	if _, err := ValidateMimeType(bytes.NewReader([]byte("plain text")), []string{MimeVideo}); err == nil {
		t.Fatalf("text must not pass as video")
	}
	mime, err := ValidateMimeType(bytes.NewReader([]byte("plain text")), []string{"text/"})
	if err != nil || mime != "text/plain; charset=utf-8" {
		t.Fatalf("unexpected result %q %v", mime, err)
	}
}

func TestResponseEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Success(c, gin.H{"ok": true})
	var resp Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Code != http.StatusOK || resp.Message != "success" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	LogInternalError(c, errors.New("boom"))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}
