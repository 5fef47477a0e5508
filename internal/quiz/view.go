package quiz

// View 答题界面所需的只读数据
type View struct {
	State         State         `json:"state"`
	CurrentIndex  int           `json:"currentIndex"`
	Total         int           `json:"total"`
	Question      *Question     `json:"question,omitempty"`
	Unsupported   bool          `json:"unsupported"`
	Answer        Answer        `json:"answer"`
	CanAdvance    bool          `json:"canAdvance"`
	IsLast        bool          `json:"isLast"`
	Progress      float64       `json:"progress"`
	Score         *int          `json:"score,omitempty"`
	Review        []ReviewEntry `json:"review,omitempty"`
	AnsweredCount int           `json:"answeredCount"`
}

func (s *Session) View() View {
	v := View{
		State:        s.state,
		CurrentIndex: s.current,
		Total:        len(s.questions),
		IsLast:       s.IsLast(),
		CanAdvance:   s.CanAdvance(),
	}
	for _, a := range s.answers {
		if a.Given() {
			v.AnsweredCount++
		}
	}

	if q, ok := s.Current(); ok {
		v.Question = &q
		v.Unsupported = !q.Kind.Supported()
		v.Answer = s.answers[q.ID]
		v.Progress = float64(s.current+1) / float64(len(s.questions)) * 100
	}

	if s.state == StateSubmitted {
		score := s.score
		v.Score = &score
		v.Review, _ = s.Review()
	}
	return v
}
