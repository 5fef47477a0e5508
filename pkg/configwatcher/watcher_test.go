package configwatcher

import (
	"context"
	"cybit_edu/internal/config"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatchConfig_ReloadsOnWrite(t *testing.T) {
	Debounce = 20 * time.Millisecond
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	write := func(policy string) {
		body := "storage:\n  type: memory\nquiz:\n  coding_policy: " + policy + "\n"
		if err := os.WriteFile(path, []byte(body), 0644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	write("accept_any")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan *config.Config, 4)
	errc := make(chan error, 1)
	go func() {
		errc <- WatchConfig(ctx, path, func(cfg *config.Config) { reloaded <- cfg })
	}()

	// fsnotify 注册完成前的写入可能丢失，重复写入直到收到回调
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(100 * time.Millisecond)
	defer tick.Stop()
	for {
		select {
		case cfg := <-reloaded:
			if cfg.Quiz.CodingPolicy != "expected_output" {
				t.Fatalf("unexpected reloaded policy %q", cfg.Quiz.CodingPolicy)
			}
			cancel()
			if err := <-errc; err != nil {
				t.Fatalf("watcher returned error: %v", err)
			}
			return
		case <-tick.C:
			write("expected_output")
		case <-deadline:
			t.Fatalf("config was not reloaded")
		}
	}
}
