package service

import (
	"cybit_edu/internal/model"
	"cybit_edu/internal/repository"
	"cybit_edu/internal/util"
	"sync/atomic"
)

type PreferenceRequest struct {
	Theme  string `json:"theme"`
	Accent string `json:"accent"`
}

type PreferenceView struct {
	Theme  model.Theme       `json:"theme"`
	Accent model.AccentColor `json:"accent"`
	Saved  bool              `json:"saved"`
}

type preferenceDefaults struct {
	theme  model.Theme
	accent string
}

// PreferenceService 主题与强调色。默认值来自配置，可热更新。
type PreferenceService struct {
	PreferenceRepo *repository.PreferenceRepository

	defaults atomic.Pointer[preferenceDefaults]
}

func NewPreferenceService(repo *repository.PreferenceRepository, theme, accent string) *PreferenceService {
	s := &PreferenceService{PreferenceRepo: repo}
	s.SetDefaults(theme, accent)
	return s
}

func validTheme(t model.Theme) bool {
	switch t {
	case model.ThemeLight, model.ThemeDark, model.ThemeSystem:
		return true
	}
	return false
}

// SetDefaults 非法取值回退到 system / blue
func (s *PreferenceService) SetDefaults(theme, accent string) {
	d := &preferenceDefaults{theme: model.Theme(theme), accent: accent}
	if !validTheme(d.theme) {
		d.theme = model.ThemeSystem
	}
	if _, ok := model.FindAccentColor(d.accent); !ok {
		d.accent = model.AccentColors[0].Value
	}
	s.defaults.Store(d)
}

func (s *PreferenceService) view(theme model.Theme, accent string, saved bool) *PreferenceView {
	color, ok := model.FindAccentColor(accent)
	if !ok {
		color, _ = model.FindAccentColor(s.defaults.Load().accent)
	}
	return &PreferenceView{Theme: theme, Accent: color, Saved: saved}
}

func (s *PreferenceService) Get(clientID string) (*PreferenceView, error) {
	pref, err := s.PreferenceRepo.FindByClient(clientID)
	if err != nil {
		return nil, err
	}
	d := s.defaults.Load()
	if pref == nil {
		return s.view(d.theme, d.accent, false), nil
	}
	return s.view(pref.Theme, pref.Accent, true), nil
}

// Update 只修改请求中给出的字段
func (s *PreferenceService) Update(clientID string, req PreferenceRequest) (*PreferenceView, error) {
	current, err := s.Get(clientID)
	if err != nil {
		return nil, err
	}

	theme := current.Theme
	if req.Theme != "" {
		theme = model.Theme(req.Theme)
		if !validTheme(theme) {
			return nil, util.ErrInvalidPreference
		}
	}
	accent := current.Accent.Value
	if req.Accent != "" {
		if _, ok := model.FindAccentColor(req.Accent); !ok {
			return nil, util.ErrInvalidPreference
		}
		accent = req.Accent
	}

	pref := &model.UserPreference{ClientID: clientID, Theme: theme, Accent: accent}
	if err := s.PreferenceRepo.Upsert(pref); err != nil {
		return nil, err
	}
	return s.view(theme, accent, true), nil
}

func (s *PreferenceService) Accents() []model.AccentColor {
	return append([]model.AccentColor(nil), model.AccentColors...)
}
