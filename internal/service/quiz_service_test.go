package service

import (
	"context"
	"cybit_edu/internal/model"
	"cybit_edu/internal/quiz"
	"cybit_edu/internal/repository"
	"cybit_edu/internal/testutil"
	"cybit_edu/internal/util"
	"errors"
	"sync"
	"testing"
	"time"
)

func newQuizService(t *testing.T) (*QuizService, *model.Course) {
	t.Helper()
	db := testutil.DB(t)
	course := testutil.SeedCourse(t, db)
	svc := NewQuizService(
		repository.NewQuizRepository(db),
		repository.NewCourseRepository(db),
		repository.NewMemorySessionStore(time.Hour),
		quiz.CodingAcceptAny,
	)
	return svc, course
}

func TestQuizService_FullAttemptAndRetake(t *testing.T) {
	svc, course := newQuizService(t)
	ctx := context.Background()
	hello := course.Sections[0].Videos[0]

	view, err := svc.Start(ctx, "alice", hello.ID)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if view.Total != 3 || view.State != quiz.StateInProgress || view.Question == nil || view.Question.ID != "q1" {
		t.Fatalf("unexpected initial view: %+v", view)
	}
	id := view.ID

	for _, step := range []struct {
		question string
		answer   quiz.Answer
	}{
		{"q1", quiz.Text("4")},
		{"q2", quiz.Text(" go ")},
		{"q3", quiz.Text("false")},
	} {
		if _, err := svc.Answer(ctx, "alice", id, step.question, step.answer); err != nil {
			t.Fatalf("answer %s: %v", step.question, err)
		}
		if view, err = svc.Next(ctx, "alice", id); err != nil {
			t.Fatalf("next after %s: %v", step.question, err)
		}
	}

	if view.State != quiz.StateSubmitted || view.Score == nil || *view.Score != 75 {
		t.Fatalf("expected submitted with 75, got %+v", view)
	}
	if len(view.Review) != 3 || view.Review[2].Correct {
		t.Fatalf("unexpected review: %+v", view.Review)
	}

	if _, err := svc.Answer(ctx, "alice", id, "q1", quiz.Text("3")); !errors.Is(err, quiz.ErrSubmitted) {
		t.Fatalf("answer after submit: expected ErrSubmitted, got %v", err)
	}
	if !IsStateError(quiz.ErrSubmitted) {
		t.Fatalf("ErrSubmitted should be a state error")
	}

	review, err := svc.Review(ctx, "alice", id)
	if err != nil || len(review) != 3 {
		t.Fatalf("review: %v %d", err, len(review))
	}

	if view, err = svc.Retake(ctx, "alice", id); err != nil {
		t.Fatalf("retake: %v", err)
	}
	if view.State != quiz.StateInProgress || view.CurrentIndex != 0 || view.AnsweredCount != 0 {
		t.Fatalf("retake should reset the session, got %+v", view)
	}
	if _, err := svc.Review(ctx, "alice", id); !errors.Is(err, quiz.ErrNotSubmitted) {
		t.Fatalf("review after retake: expected ErrNotSubmitted, got %v", err)
	}

	_, _ = svc.Answer(ctx, "alice", id, "q1", quiz.Text("4"))
	_, _ = svc.Answer(ctx, "alice", id, "q2", quiz.Text("Go"))
	_, _ = svc.Answer(ctx, "alice", id, "q3", quiz.Text("true"))
	if view, err = svc.Submit(ctx, "alice", id); err != nil || *view.Score != 100 {
		t.Fatalf("second submit: %+v %v", view, err)
	}

	best, err := svc.BestScore("alice", hello.ID)
	if err != nil {
		t.Fatalf("best score: %v", err)
	}
	if !best.HasScore || best.Score != 100 || best.Attempts != 2 {
		t.Fatalf("unexpected best score: %+v", best)
	}
	none, _ := svc.BestScore("bob", hello.ID)
	if none.HasScore || none.Attempts != 0 {
		t.Fatalf("bob has no attempts, got %+v", none)
	}
}

func TestQuizService_SessionScoping(t *testing.T) {
	svc, course := newQuizService(t)
	ctx := context.Background()
	hello := course.Sections[0].Videos[0]
	types := course.Sections[0].Videos[1]

	view, err := svc.Start(ctx, "alice", hello.ID)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := svc.Get(ctx, "bob", view.ID); !errors.Is(err, util.ErrSessionNotFound) {
		t.Fatalf("other client must not see the session, got %v", err)
	}
	if _, err := svc.Get(ctx, "alice", "missing"); !errors.Is(err, util.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	if _, err := svc.Answer(ctx, "alice", view.ID, "nope", quiz.Text("x")); !errors.Is(err, quiz.ErrUnknownQuestion) {
		t.Fatalf("expected ErrUnknownQuestion, got %v", err)
	}
	if _, err := svc.Start(ctx, "alice", types.ID); !errors.Is(err, util.ErrNoQuizForVideo) {
		t.Fatalf("expected ErrNoQuizForVideo, got %v", err)
	}
	if _, err := svc.Start(ctx, "alice", 9999); !errors.Is(err, util.ErrVideoNotFound) {
		t.Fatalf("expected ErrVideoNotFound, got %v", err)
	}
}

func TestQuizService_PreviousClampsAtFirstQuestion(t *testing.T) {
	svc, course := newQuizService(t)
	ctx := context.Background()

	view, _ := svc.Start(ctx, "alice", course.Sections[0].Videos[0].ID)
	view, err := svc.Previous(ctx, "alice", view.ID)
	if err != nil || view.CurrentIndex != 0 {
		t.Fatalf("previous at first question: %+v %v", view, err)
	}
}

func TestQuizService_ConcurrentAnswersAreSerialised(t *testing.T) {
	svc, course := newQuizService(t)
	ctx := context.Background()

	view, err := svc.Start(ctx, "alice", course.Sections[0].Videos[0].ID)
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 3)
	for _, q := range []string{"q1", "q2", "q3"} {
		wg.Add(1)
		go func(q string) {
			defer wg.Done()
			if _, err := svc.Answer(ctx, "alice", view.ID, q, quiz.Text("x")); err != nil {
				errs <- err
			}
		}(q)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent answer: %v", err)
	}

	got, err := svc.Get(ctx, "alice", view.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.AnsweredCount != 3 {
		t.Fatalf("expected all three answers to survive, got %d", got.AnsweredCount)
	}
	if len(svc.locks.locks) != 0 {
		t.Fatalf("session locks should be released, %d left", len(svc.locks.locks))
	}
}

func TestQuizService_SetCodingPolicy(t *testing.T) {
	svc, _ := newQuizService(t)
	if svc.CodingPolicy() != quiz.CodingAcceptAny {
		t.Fatalf("unexpected default policy %q", svc.CodingPolicy())
	}
	svc.SetCodingPolicy(quiz.CodingExpectedOutput)
	if svc.CodingPolicy() != quiz.CodingExpectedOutput {
		t.Fatalf("policy was not swapped")
	}
}

func TestQuizService_OpenSessionKeepsItsQuestions(t *testing.T) {
	svc, course := newQuizService(t)
	ctx := context.Background()
	hello := course.Sections[0].Videos[0]

	view, err := svc.Start(ctx, "alice", hello.ID)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := svc.Answer(ctx, "alice", view.ID, "q1", quiz.Text("4")); err != nil {
		t.Fatalf("answer q1: %v", err)
	}

	replacement := []model.QuizQuestion{{
		Key:         "z",
		Type:        string(quiz.KindMultipleChoice),
		Prompt:      "Replaced?",
		Options:     []string{"yes", "no"},
		CorrectText: "yes",
		Points:      5,
	}}
	if err := svc.QuizRepo.ReplaceQuestions(hello.ID, replacement); err != nil {
		t.Fatalf("replace questions: %v", err)
	}

	got, err := svc.Get(ctx, "alice", view.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Total != 3 || got.AnsweredCount != 1 || got.Question == nil || got.Question.ID != "q1" {
		t.Fatalf("open session changed after questions were replaced: %+v", got)
	}
	if _, err := svc.Answer(ctx, "alice", view.ID, "z", quiz.Text("yes")); !errors.Is(err, quiz.ErrUnknownQuestion) {
		t.Fatalf("replacement question must not be answerable, got %v", err)
	}

	_, _ = svc.Answer(ctx, "alice", view.ID, "q2", quiz.Text("Go"))
	_, _ = svc.Answer(ctx, "alice", view.ID, "q3", quiz.Text("true"))
	got, err = svc.Submit(ctx, "alice", view.ID)
	if err != nil || got.Score == nil || *got.Score != 100 {
		t.Fatalf("submit should score against the original questions: %+v %v", got, err)
	}
	review, err := svc.Review(ctx, "alice", view.ID)
	if err != nil || len(review) != 3 {
		t.Fatalf("review: %v %d", err, len(review))
	}

	// 新会话使用替换后的题目
	fresh, err := svc.Start(ctx, "alice", hello.ID)
	if err != nil || fresh.Total != 1 || fresh.Question.ID != "z" {
		t.Fatalf("new session should see replaced questions: %+v %v", fresh, err)
	}
}

var errSaveFailed = errors.New("save failed")

// flakyStore 在 failNext 置位时让下一次 Save 失败
type flakyStore struct {
	*repository.MemorySessionStore
	failNext bool
}

func (s *flakyStore) Save(ctx context.Context, rec *repository.SessionRecord) error {
	if s.failNext {
		s.failNext = false
		return errSaveFailed
	}
	return s.MemorySessionStore.Save(ctx, rec)
}

func TestQuizService_SubmitRetryAfterSaveFailureRecordsOnce(t *testing.T) {
	svc, course := newQuizService(t)
	store := &flakyStore{MemorySessionStore: repository.NewMemorySessionStore(time.Hour)}
	svc.Store = store
	ctx := context.Background()
	hello := course.Sections[0].Videos[0]

	view, err := svc.Start(ctx, "alice", hello.ID)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	_, _ = svc.Answer(ctx, "alice", view.ID, "q1", quiz.Text("4"))

	store.failNext = true
	if _, err := svc.Submit(ctx, "alice", view.ID); !errors.Is(err, errSaveFailed) {
		t.Fatalf("expected save failure, got %v", err)
	}
	got, err := svc.Submit(ctx, "alice", view.ID)
	if err != nil || got.State != quiz.StateSubmitted || *got.Score != 25 {
		t.Fatalf("retry submit: %+v %v", got, err)
	}

	attempts, err := svc.QuizRepo.Attempts("alice", hello.ID)
	if err != nil {
		t.Fatalf("attempts: %v", err)
	}
	if len(attempts) != 1 || attempts[0].Sequence != 1 {
		t.Fatalf("expected one attempt with sequence 1, got %+v", attempts)
	}

	// 重考后的提交是新的序号
	if _, err := svc.Retake(ctx, "alice", view.ID); err != nil {
		t.Fatalf("retake: %v", err)
	}
	if _, err := svc.Submit(ctx, "alice", view.ID); err != nil {
		t.Fatalf("second submit: %v", err)
	}
	attempts, _ = svc.QuizRepo.Attempts("alice", hello.ID)
	if len(attempts) != 2 {
		t.Fatalf("expected two attempts after retake, got %d", len(attempts))
	}
}
