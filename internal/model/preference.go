package model

type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// AccentColor 主题强调色，Light/Dark 为 HSL 取值
type AccentColor struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Light string `json:"light"`
	Dark  string `json:"dark"`
}

var AccentColors = []AccentColor{
	{Name: "Blue", Value: "blue", Light: "221.2 83.2% 53.3%", Dark: "217.2 91.2% 59.8%"},
	{Name: "Purple", Value: "purple", Light: "262.1 83.3% 57.8%", Dark: "263.4 70% 50.4%"},
	{Name: "Green", Value: "green", Light: "142.1 76.2% 36.3%", Dark: "142.1 70.6% 45.3%"},
	{Name: "Orange", Value: "orange", Light: "24.6 95% 53.1%", Dark: "20.5 90.2% 48.2%"},
	{Name: "Red", Value: "red", Light: "0 84.2% 60.2%", Dark: "0 72.2% 50.6%"},
	{Name: "Pink", Value: "pink", Light: "322.2 84% 60.5%", Dark: "316.7 75.8% 47.6%"},
	{Name: "Cyan", Value: "cyan", Light: "188.7 85.7% 53.3%", Dark: "188.7 85.7% 53.3%"},
	{Name: "Yellow", Value: "yellow", Light: "47.9 95.8% 53.1%", Dark: "47.9 95.8% 53.1%"},
}

func FindAccentColor(value string) (AccentColor, bool) {
	for _, c := range AccentColors {
		if c.Value == value {
			return c, true
		}
	}
	return AccentColor{}, false
}

// UserPreference 按客户端保存的界面偏好
type UserPreference struct {
	BaseModel
	ClientID string `gorm:"size:64;uniqueIndex" json:"clientId"`
	Theme    Theme  `gorm:"size:16" json:"theme"`
	Accent   string `gorm:"size:16" json:"accent"`
}

func (UserPreference) TableName() string {
	return "user_preferences"
}
