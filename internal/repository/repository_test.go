package repository

import (
	"cybit_edu/internal/model"
	"cybit_edu/internal/testutil"
	"errors"
	"testing"

	"gorm.io/gorm"
)

func TestCourseRepository_CurriculumOrderAndDelete(t *testing.T) {
	db := testutil.DB(t)
	course := testutil.SeedCourse(t, db)
	repo := NewCourseRepository(db)

	got, err := repo.FindByID(course.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(got.Sections) != 2 || got.Sections[0].Title != "Basics" || len(got.Sections[0].Videos) != 2 {
		t.Fatalf("unexpected curriculum: %+v", got.Sections)
	}
	if got.Sections[0].Videos[0].Title != "Hello" {
		t.Fatalf("videos must be ordered, got %q first", got.Sections[0].Videos[0].Title)
	}

	video := got.Sections[1].Videos[0]
	if _, err := repo.FindVideoInCourse(course.ID, video.ID); err != nil {
		t.Fatalf("video should belong to course: %v", err)
	}
	if _, err := repo.FindVideoInCourse(course.ID+1, video.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected not found for another course, got %v", err)
	}

	if err := repo.Delete(course.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.FindByID(course.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
	var questions int64
	db.Model(&model.QuizQuestion{}).Count(&questions)
	if questions != 0 {
		t.Fatalf("questions must be deleted with the course, %d left", questions)
	}
	if err := repo.Delete(course.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("second delete: expected not found, got %v", err)
	}
}

func TestQuizRepository_QuestionsAndBestScore(t *testing.T) {
	db := testutil.DB(t)
	course := testutil.SeedCourse(t, db)
	repo := NewQuizRepository(db)
	videoID := course.Sections[0].Videos[0].ID

	qs, err := repo.QuestionsForVideo(videoID)
	if err != nil {
		t.Fatalf("questions: %v", err)
	}
	if len(qs) != 3 || qs[0].Key != "q1" || qs[2].Key != "q3" {
		t.Fatalf("unexpected questions: %+v", qs)
	}

	if _, ok, err := repo.BestScore("c1", videoID); err != nil || ok {
		t.Fatalf("no attempts yet: ok=%v err=%v", ok, err)
	}
	for _, s := range []int{40, 90, 70} {
		if err := repo.CreateAttempt(&model.QuizAttempt{ClientID: "c1", VideoID: videoID, Score: s}); err != nil {
			t.Fatalf("create attempt: %v", err)
		}
	}
	_ = repo.CreateAttempt(&model.QuizAttempt{ClientID: "c2", VideoID: videoID, Score: 100})

	best, ok, err := repo.BestScore("c1", videoID)
	if err != nil || !ok || best != 90 {
		t.Fatalf("best score = %d, %v, %v", best, ok, err)
	}
	attempts, _ := repo.Attempts("c1", videoID)
	if len(attempts) != 3 {
		t.Fatalf("expected 3 attempts, got %d", len(attempts))
	}
	avg, n, err := repo.AverageScore()
	if err != nil || n != 4 || avg != 75 {
		t.Fatalf("average = %v over %d, %v", avg, n, err)
	}
}

func TestQuizRepository_CreateAttemptOnce(t *testing.T) {
	db := testutil.DB(t)
	repo := NewQuizRepository(db)

	attempt := func(seq, score int) *model.QuizAttempt {
		return &model.QuizAttempt{ClientID: "c1", VideoID: 1, SessionID: "s1", Sequence: seq, Score: score}
	}
	if created, err := repo.CreateAttemptOnce(attempt(1, 50)); err != nil || !created {
		t.Fatalf("first insert: created=%v err=%v", created, err)
	}
	if created, err := repo.CreateAttemptOnce(attempt(1, 50)); err != nil || created {
		t.Fatalf("same sequence must not be written twice: created=%v err=%v", created, err)
	}
	if created, err := repo.CreateAttemptOnce(attempt(2, 80)); err != nil || !created {
		t.Fatalf("next sequence: created=%v err=%v", created, err)
	}

	attempts, _ := repo.Attempts("c1", 1)
	if len(attempts) != 2 {
		t.Fatalf("expected 2 attempts, got %d", len(attempts))
	}
}

func TestVideoCompletionRepository(t *testing.T) {
	db := testutil.DB(t)
	repo := NewVideoCompletionRepository(db)

	for i := 0; i < 2; i++ {
		if err := repo.MarkCompleted("c1", 5); err != nil {
			t.Fatalf("mark: %v", err)
		}
	}
	if n, _ := repo.Count(); n != 1 {
		t.Fatalf("marking twice must be idempotent, got %d rows", n)
	}

	done, err := repo.CompletedVideoIDs("c1", []uint{5, 6})
	if err != nil || !done[5] || done[6] {
		t.Fatalf("unexpected completion set %v, %v", done, err)
	}
	other, _ := repo.CompletedVideoIDs("c2", []uint{5})
	if other[5] {
		t.Fatalf("completions must be per client")
	}
}

func TestPreferenceRepository_Upsert(t *testing.T) {
	db := testutil.DB(t)
	repo := NewPreferenceRepository(db)

	if p, err := repo.FindByClient("c1"); err != nil || p != nil {
		t.Fatalf("expected nil preference, got %+v %v", p, err)
	}
	if err := repo.Upsert(&model.UserPreference{ClientID: "c1", Theme: model.ThemeDark, Accent: "green"}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := repo.Upsert(&model.UserPreference{ClientID: "c1", Theme: model.ThemeLight, Accent: "pink"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	p, err := repo.FindByClient("c1")
	if err != nil || p.Theme != model.ThemeLight || p.Accent != "pink" {
		t.Fatalf("unexpected preference %+v %v", p, err)
	}
}

func TestPlaygroundFileRepository_ScopedToClient(t *testing.T) {
	db := testutil.DB(t)
	repo := NewPlaygroundFileRepository(db)

	f := &model.PlaygroundFile{ClientID: "c1", Name: "fib.py", Language: "python"}
	if err := repo.Create(f); err != nil {
		t.Fatalf("create: %v", err)
	}
	if f.ID == "" {
		t.Fatalf("expected generated uuid")
	}
	if _, err := repo.FindByID("c2", f.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("other clients must not see the file, got %v", err)
	}
	list, _ := repo.ListByClient("c1")
	if len(list) != 1 {
		t.Fatalf("expected 1 file, got %d", len(list))
	}
	if err := repo.Delete(f); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if list, _ := repo.ListByClient("c1"); len(list) != 0 {
		t.Fatalf("expected empty list after delete")
	}
}
