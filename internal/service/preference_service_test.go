package service

import (
	"cybit_edu/internal/model"
	"cybit_edu/internal/repository"
	"cybit_edu/internal/testutil"
	"cybit_edu/internal/util"
	"errors"
	"testing"
)

func TestPreferenceService_DefaultsAndUpdate(t *testing.T) {
	svc := NewPreferenceService(repository.NewPreferenceRepository(testutil.DB(t)), "dark", "green")

	got, err := svc.Get("alice")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Saved || got.Theme != model.ThemeDark || got.Accent.Value != "green" {
		t.Fatalf("unexpected defaults: %+v", got)
	}

	got, err = svc.Update("alice", PreferenceRequest{Accent: "purple"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !got.Saved || got.Theme != model.ThemeDark || got.Accent.Value != "purple" {
		t.Fatalf("partial update should keep the theme: %+v", got)
	}

	got, _ = svc.Update("alice", PreferenceRequest{Theme: "light"})
	if got.Theme != model.ThemeLight || got.Accent.Value != "purple" {
		t.Fatalf("unexpected preference: %+v", got)
	}

	// 默认值热更新不影响已保存的偏好
	svc.SetDefaults("system", "red")
	if got, _ = svc.Get("alice"); got.Theme != model.ThemeLight {
		t.Fatalf("saved preference changed with defaults: %+v", got)
	}
	if got, _ = svc.Get("bob"); got.Theme != model.ThemeSystem || got.Accent.Value != "red" {
		t.Fatalf("new defaults not applied: %+v", got)
	}
}

func TestPreferenceService_Validation(t *testing.T) {
	svc := NewPreferenceService(repository.NewPreferenceRepository(testutil.DB(t)), "neon", "teal")

	got, _ := svc.Get("alice")
	if got.Theme != model.ThemeSystem || got.Accent.Value != "blue" {
		t.Fatalf("invalid defaults should fall back, got %+v", got)
	}

	for _, req := range []PreferenceRequest{{Theme: "neon"}, {Accent: "teal"}} {
		if _, err := svc.Update("alice", req); !errors.Is(err, util.ErrInvalidPreference) {
			t.Fatalf("expected ErrInvalidPreference for %+v, got %v", req, err)
		}
	}
	if len(svc.Accents()) != 8 {
		t.Fatalf("expected 8 accent colors, got %d", len(svc.Accents()))
	}
}
