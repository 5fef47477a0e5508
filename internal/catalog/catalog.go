package catalog

import (
	"sort"
	"strings"

	"cybit_edu/internal/model"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const All = "all"

type SortBy string

const (
	SortPopular      SortBy = "popular"
	SortRating       SortBy = "rating"
	SortNewest       SortBy = "newest"
	SortAlphabetical SortBy = "alphabetical"
)

// Query 课程列表的筛选条件，Category/Level 为空或 all 时不过滤
type Query struct {
	Search   string `form:"search"`
	Category string `form:"category"`
	Level    string `form:"level"`
	Sort     SortBy `form:"sort"`
}

// Filter 搜索标题、讲师、简介和标签，大小写不敏感
func Filter(courses []model.Course, q Query) []model.Course {
	term := strings.ToLower(strings.TrimSpace(q.Search))
	out := make([]model.Course, 0, len(courses))
	for _, c := range courses {
		if !matchesSearch(c, term) {
			continue
		}
		if active(q.Category) && c.Category != q.Category {
			continue
		}
		if active(q.Level) && string(c.Level) != q.Level {
			continue
		}
		out = append(out, c)
	}
	return out
}

func active(v string) bool {
	return v != "" && v != All
}

func matchesSearch(c model.Course, term string) bool {
	if term == "" {
		return true
	}
	if containsFold(c.Title, term) || containsFold(c.Instructor.Name, term) || containsFold(c.Description, term) {
		return true
	}
	for _, tag := range c.Tags {
		if containsFold(tag, term) {
			return true
		}
	}
	return false
}

func containsFold(s, lowerTerm string) bool {
	return strings.Contains(strings.ToLower(s), lowerTerm)
}

// Sort 稳定排序，未知的排序方式保持原顺序。返回新切片。
func Sort(courses []model.Course, by SortBy) []model.Course {
	out := make([]model.Course, len(courses))
	copy(out, courses)
	switch by {
	case SortPopular:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Students > out[j].Students })
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].LastUpdated.After(out[j].LastUpdated) })
	case SortAlphabetical:
		// Collator 非并发安全，每次排序单独创建
		col := collate.New(language.English, collate.Loose)
		sort.SliceStable(out, func(i, j int) bool { return col.CompareString(out[i].Title, out[j].Title) < 0 })
	}
	return out
}

// Apply 先筛选再排序
func Apply(courses []model.Course, q Query) []model.Course {
	return Sort(Filter(courses, q), q.Sort)
}

// Facets 列表页的分类和难度选项
type Facets struct {
	Categories []string `json:"categories"`
	Levels     []string `json:"levels"`
}

func BuildFacets(courses []model.Course) Facets {
	f := Facets{Categories: []string{}, Levels: []string{}}
	seenCat := map[string]bool{}
	seenLevel := map[string]bool{}
	for _, c := range courses {
		if c.Category != "" && !seenCat[c.Category] {
			seenCat[c.Category] = true
			f.Categories = append(f.Categories, c.Category)
		}
		if c.Level != "" && !seenLevel[string(c.Level)] {
			seenLevel[string(c.Level)] = true
			f.Levels = append(f.Levels, string(c.Level))
		}
	}
	sort.Strings(f.Categories)
	sort.Strings(f.Levels)
	return f
}

// AdminSearch 管理端搜索：标题、讲师或分类包含关键字
func AdminSearch(courses []model.Course, search string) []model.Course {
	term := strings.ToLower(strings.TrimSpace(search))
	if term == "" {
		return append([]model.Course(nil), courses...)
	}
	out := make([]model.Course, 0, len(courses))
	for _, c := range courses {
		if containsFold(c.Title, term) || containsFold(c.Instructor.Name, term) || containsFold(c.Category, term) {
			out = append(out, c)
		}
	}
	return out
}
