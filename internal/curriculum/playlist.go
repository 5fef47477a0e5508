package curriculum

import "cybit_edu/internal/model"

// Lesson 扁平化后的课时，附带所属章节标题
type Lesson struct {
	model.Video
	SectionTitle string `json:"sectionTitle"`
}

// Flatten 按章节顺序展开所有视频
func Flatten(sections []model.Section) []Lesson {
	var out []Lesson
	for _, sec := range sections {
		for _, v := range sec.Videos {
			if v.SectionID == 0 {
				v.SectionID = sec.ID
			}
			out = append(out, Lesson{Video: v, SectionTitle: sec.Title})
		}
	}
	return out
}

// Playlist 课时播放器的导航，首尾不循环
type Playlist struct {
	lessons []Lesson
	current int
}

func NewPlaylist(sections []model.Section) *Playlist {
	return &Playlist{lessons: Flatten(sections)}
}

func (p *Playlist) Len() int {
	return len(p.lessons)
}

func (p *Playlist) Lessons() []Lesson {
	return append([]Lesson(nil), p.lessons...)
}

func (p *Playlist) Index() int {
	return p.current
}

func (p *Playlist) Current() (Lesson, bool) {
	if len(p.lessons) == 0 {
		return Lesson{}, false
	}
	return p.lessons[p.current], true
}

func (p *Playlist) HasNext() bool {
	return p.current < len(p.lessons)-1
}

func (p *Playlist) HasPrevious() bool {
	return p.current > 0
}

// Select 越界时夹到首尾
func (p *Playlist) Select(i int) {
	if i > len(p.lessons)-1 {
		i = len(p.lessons) - 1
	}
	if i < 0 {
		i = 0
	}
	p.current = i
}

func (p *Playlist) Next() {
	p.Select(p.current + 1)
}

func (p *Playlist) Previous() {
	p.Select(p.current - 1)
}

// IndexOf 按视频 ID 查找位置
func (p *Playlist) IndexOf(videoID uint) (int, bool) {
	for i, l := range p.lessons {
		if l.ID == videoID {
			return i, true
		}
	}
	return 0, false
}

// Progress 播放器显示的进度：已完成视频 / 实际视频数。
// 与 Summarize 的分母不同，两者可能不一致。
func (p *Playlist) Progress() float64 {
	if len(p.lessons) == 0 {
		return 0
	}
	done := 0
	for _, l := range p.lessons {
		if l.IsCompleted {
			done++
		}
	}
	return 100 * float64(done) / float64(len(p.lessons))
}
