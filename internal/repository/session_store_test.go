package repository

import (
	"context"
	"cybit_edu/internal/quiz"
	"cybit_edu/internal/util"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
)

func sampleRecord(id string) *SessionRecord {
	return &SessionRecord{
		ID:       id,
		ClientID: "client-1",
		VideoID:  7,
		Questions: FreezeQuestions([]quiz.Question{
			{ID: "q1", Kind: quiz.KindShortAnswer, Prompt: "2+2?", Points: 10, CorrectText: "4"},
			{ID: "q4", Kind: quiz.KindMultipleSelect, Options: []string{"int", "list", "str"}, CorrectSet: []string{"int", "list"}},
		}),
		Snapshot: quiz.Snapshot{
			State:        quiz.StateInProgress,
			CurrentIndex: 1,
			Answers:      map[string]quiz.Answer{"q1": quiz.Text("4"), "q4": quiz.Selection("int", "list")},
		},
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

func exerciseStore(t *testing.T, store SessionStore) {
	t.Helper()
	ctx := context.Background()

	if _, err := store.Get(ctx, "missing"); !errors.Is(err, util.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}

	rec := sampleRecord("s1")
	if err := store.Save(ctx, rec); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := store.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.VideoID != 7 || got.Snapshot.CurrentIndex != 1 {
		t.Fatalf("unexpected record: %+v", got)
	}
	if sel, ok := got.Snapshot.Answers["q4"].SelectionValue(); !ok || len(sel) != 2 {
		t.Fatalf("selection answer lost: %+v", got.Snapshot.Answers)
	}
	qs := got.QuizQuestions()
	if len(qs) != 2 || qs[0].CorrectText != "4" || len(qs[1].CorrectSet) != 2 || qs[1].Kind != quiz.KindMultipleSelect {
		t.Fatalf("stored questions lost their answers: %+v", qs)
	}

	if err := store.Delete(ctx, "s1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Get(ctx, "s1"); !errors.Is(err, util.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound after delete, got %v", err)
	}
}

func TestMemorySessionStore(t *testing.T) {
	exerciseStore(t, NewMemorySessionStore(time.Hour))
}

func TestMemorySessionStore_Expiry(t *testing.T) {
	store := NewMemorySessionStore(time.Minute)
	now := time.Now()
	store.now = func() time.Time { return now }

	_ = store.Save(context.Background(), sampleRecord("s1"))
	now = now.Add(2 * time.Minute)

	if _, err := store.Get(context.Background(), "s1"); !errors.Is(err, util.ErrSessionNotFound) {
		t.Fatalf("expired session must not be returned, got %v", err)
	}
	if n := store.Sweep(); n != 1 || store.Len() != 0 {
		t.Fatalf("sweep removed %d, %d left", n, store.Len())
	}
}

func TestMemorySessionStore_ReturnsCopy(t *testing.T) {
	store := NewMemorySessionStore(time.Hour)
	_ = store.Save(context.Background(), sampleRecord("s1"))

	got, _ := store.Get(context.Background(), "s1")
	got.VideoID = 99
	again, _ := store.Get(context.Background(), "s1")
	if again.VideoID != 7 {
		t.Fatalf("stored record was mutated through a returned pointer")
	}
}

func TestRedisSessionStore(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("set TEST_REDIS_ADDR to run redis session store tests")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()
	exerciseStore(t, NewRedisSessionStore(client, time.Minute))
}
