package notify_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"creator-studio/pkg/log"
	"creator-studio/pkg/notify"
)

func TestPublishAndRecent(t *testing.T) {
	c := notify.NewCenter(log.NewNoopLogger(), 10)
	ctx := context.Background()

	c.Publish(ctx, notify.LevelInfo, "sync_done", "channel sync finished", nil)
	c.Publish(ctx, notify.LevelWarning, "storage_degraded", "tasks slot corrupt, using defaults", map[string]string{"slot": "tasks"})

	got := c.Recent(0)
	if len(got) != 2 {
		t.Fatalf("Recent(0) returned %d notifications, want 2", len(got))
	}
	// Newest first.
	if got[0].Code != "storage_degraded" || got[1].Code != "sync_done" {
		t.Errorf("order = [%s, %s], want newest first", got[0].Code, got[1].Code)
	}
	if got[0].Meta["slot"] != "tasks" {
		t.Errorf("meta = %v, want slot=tasks", got[0].Meta)
	}
	if got[0].ID == "" || got[0].ID == got[1].ID {
		t.Errorf("ids must be unique and non-empty, got %q and %q", got[0].ID, got[1].ID)
	}
}

func TestCapacityDropsOldest(t *testing.T) {
	c := notify.NewCenter(log.NewNoopLogger(), 3)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		c.Publish(ctx, notify.LevelInfo, fmt.Sprintf("code_%d", i), "msg", nil)
	}

	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", c.Len())
	}
	got := c.Recent(0)
	if got[0].Code != "code_4" || got[2].Code != "code_2" {
		t.Errorf("kept window = [%s .. %s], want [code_4 .. code_2]", got[0].Code, got[2].Code)
	}
}

func TestRecentLimit(t *testing.T) {
	c := notify.NewCenter(log.NewNoopLogger(), 10)
	ctx := context.Background()

	for i := 0; i < 6; i++ {
		c.Publish(ctx, notify.LevelInfo, fmt.Sprintf("code_%d", i), "msg", nil)
	}

	got := c.Recent(2)
	if len(got) != 2 {
		t.Fatalf("Recent(2) returned %d, want 2", len(got))
	}
	if got[0].Code != "code_5" || got[1].Code != "code_4" {
		t.Errorf("Recent(2) = [%s, %s], want [code_5, code_4]", got[0].Code, got[1].Code)
	}
}

func TestConcurrentPublish(t *testing.T) {
	c := notify.NewCenter(log.NewNoopLogger(), 100)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				c.Publish(ctx, notify.LevelInfo, fmt.Sprintf("w%d_%d", n, j), "msg", nil)
			}
		}(i)
	}
	wg.Wait()

	if c.Len() != 100 {
		t.Errorf("Len() = %d, want 100", c.Len())
	}
}
