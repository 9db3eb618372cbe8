package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"creator-studio/internal/model"
	"creator-studio/internal/task"
)

func TestUpdateChecklistChecksItem(t *testing.T) {
	repo := newFakeRepo()
	repo.seed(model.Task{
		ID:          "t1",
		Title:       "Shoot day",
		Description: "- [ ] Charge batteries\n- [ ] Format cards",
		Status:      model.TaskStatusPending,
	})
	uc := newUseCase(repo)

	out, err := uc.UpdateChecklist(context.Background(), task.UpdateChecklistInput{
		ID:   "t1",
		Item: "charge",
		Done: true,
	})
	if err != nil {
		t.Fatalf("UpdateChecklist() error = %v", err)
	}
	if out.Matched != 1 {
		t.Errorf("Matched = %d, want 1", out.Matched)
	}
	if !strings.Contains(out.Task.Description, "- [x] Charge batteries") {
		t.Errorf("description = %q, item was not checked", out.Task.Description)
	}
	if out.Task.Completed {
		t.Error("task must stay open while checklist items remain")
	}
}

func TestUpdateChecklistCompletesTaskOnLastItem(t *testing.T) {
	repo := newFakeRepo()
	repo.seed(model.Task{
		ID:          "t1",
		Title:       "Shoot day",
		Description: "- [x] Charge batteries\n- [ ] Format cards",
		Status:      model.TaskStatusInProgress,
	})
	uc := newUseCase(repo)

	out, err := uc.UpdateChecklist(context.Background(), task.UpdateChecklistInput{
		ID:   "t1",
		Item: "format cards",
		Done: true,
	})
	if err != nil {
		t.Fatalf("UpdateChecklist() error = %v", err)
	}
	if !out.Task.Completed || out.Task.Status != model.TaskStatusCompleted {
		t.Errorf("checking the last item: completed=%v status=%s, want true/completed",
			out.Task.Completed, out.Task.Status)
	}
}

func TestUpdateChecklistUncheckKeepsTaskCompleted(t *testing.T) {
	repo := newFakeRepo()
	repo.seed(model.Task{
		ID:          "t1",
		Title:       "Shoot day",
		Description: "- [x] Charge batteries",
		Status:      model.TaskStatusCompleted,
		Completed:   true,
	})
	uc := newUseCase(repo)

	out, err := uc.UpdateChecklist(context.Background(), task.UpdateChecklistInput{
		ID:   "t1",
		Item: "charge",
		Done: false,
	})
	if err != nil {
		t.Fatalf("UpdateChecklist() error = %v", err)
	}
	if !strings.Contains(out.Task.Description, "- [ ] Charge batteries") {
		t.Error("item was not unchecked")
	}
	if !out.Task.Completed {
		t.Error("unchecking must not reopen the task")
	}
}

func TestUpdateChecklistNoMatch(t *testing.T) {
	repo := newFakeRepo()
	repo.seed(model.Task{ID: "t1", Title: "Shoot day", Description: "- [ ] Charge batteries"})
	uc := newUseCase(repo)

	_, err := uc.UpdateChecklist(context.Background(), task.UpdateChecklistInput{
		ID:   "t1",
		Item: "color grade",
		Done: true,
	})
	if !errors.Is(err, task.ErrNoChecklistItem) {
		t.Errorf("UpdateChecklist() error = %v, want ErrNoChecklistItem", err)
	}
	if repo.updateCalls != 0 {
		t.Errorf("no-match edit must not persist, got %d update calls", repo.updateCalls)
	}
}

func TestUpdateChecklistMissingTask(t *testing.T) {
	uc := newUseCase(newFakeRepo())

	_, err := uc.UpdateChecklist(context.Background(), task.UpdateChecklistInput{ID: "ghost", Item: "x", Done: true})
	if !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("UpdateChecklist() error = %v, want ErrTaskNotFound", err)
	}
}
