package model

// PlaygroundFile 代码练习场保存的文件，代码内容存放在对象存储中
type PlaygroundFile struct {
	UUIDBase
	ClientID  string `gorm:"size:64;index" json:"-"`
	Name      string `gorm:"size:255;not null" json:"name"`
	Language  string `gorm:"size:32" json:"language"`
	ObjectKey string `gorm:"size:255" json:"-"`
	URL       string `gorm:"size:500" json:"url"`
	Size      int64  `json:"size"`
	Code      string `gorm:"-" json:"code,omitempty"`
}

func (PlaygroundFile) TableName() string {
	return "playground_files"
}
