package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"creator-studio/internal/middleware"
	"creator-studio/internal/model"
	"creator-studio/internal/task"
	taskhttp "creator-studio/internal/task/delivery/http"
	"creator-studio/pkg/log"
)

type mockTaskUseCase struct {
	createOutput     task.CreateTaskOutput
	createErr        error
	detailOutput     task.DetailTaskOutput
	detailErr        error
	toggleOutput     task.ToggleTaskOutput
	toggleErr        error
	rescheduleOutput task.RescheduleTaskOutput
	rescheduleErr    error
	checklistOutput  task.UpdateChecklistOutput
	checklistErr     error

	gotChecklist task.UpdateChecklistInput
}

func (m *mockTaskUseCase) Create(ctx context.Context, input task.CreateTaskInput) (task.CreateTaskOutput, error) {
	return m.createOutput, m.createErr
}
func (m *mockTaskUseCase) List(ctx context.Context, input task.ListTasksInput) (task.ListTasksOutput, error) {
	return task.ListTasksOutput{}, nil
}
func (m *mockTaskUseCase) Detail(ctx context.Context, id string) (task.DetailTaskOutput, error) {
	return m.detailOutput, m.detailErr
}
func (m *mockTaskUseCase) Update(ctx context.Context, input task.UpdateTaskInput) (task.UpdateTaskOutput, error) {
	return task.UpdateTaskOutput{}, nil
}
func (m *mockTaskUseCase) Delete(ctx context.Context, id string) error { return nil }
func (m *mockTaskUseCase) Toggle(ctx context.Context, input task.ToggleTaskInput) (task.ToggleTaskOutput, error) {
	return m.toggleOutput, m.toggleErr
}
func (m *mockTaskUseCase) Reschedule(ctx context.Context, input task.RescheduleTaskInput) (task.RescheduleTaskOutput, error) {
	return m.rescheduleOutput, m.rescheduleErr
}
func (m *mockTaskUseCase) UpdateChecklist(ctx context.Context, input task.UpdateChecklistInput) (task.UpdateChecklistOutput, error) {
	m.gotChecklist = input
	return m.checklistOutput, m.checklistErr
}

func newTestRouter(uc task.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := taskhttp.New(log.NewNoopLogger(), uc)
	taskhttp.RegisterRoutes(router.Group("/api/v1"), h, middleware.Middleware{})
	return router
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (body %s)", err, w.Body.String())
	}
	return w, env
}

func TestCreateHandler(t *testing.T) {
	uc := &mockTaskUseCase{
		createOutput: task.CreateTaskOutput{
			Task: model.Task{ID: "task-1", Title: "Write script", Status: model.TaskStatusPending, Priority: model.PriorityMedium},
		},
	}
	router := newTestRouter(uc)

	w, env := doJSON(t, router, http.MethodPost, "/api/v1/tasks", gin.H{"title": "Write script"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}
	if env.ErrorCode != 0 {
		t.Errorf("error_code = %d, want 0", env.ErrorCode)
	}

	var data struct {
		Task struct {
			ID        string `json:"id"`
			Status    string `json:"status"`
			Completed bool   `json:"completed"`
		} `json:"task"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.Task.ID != "task-1" || data.Task.Status != "pending" || data.Task.Completed {
		t.Errorf("task = %+v", data.Task)
	}
}

func TestCreateHandlerRejectsBadStatus(t *testing.T) {
	router := newTestRouter(&mockTaskUseCase{})

	w, _ := doJSON(t, router, http.MethodPost, "/api/v1/tasks", gin.H{"title": "x", "status": "archived"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestDetailHandlerNotFound(t *testing.T) {
	uc := &mockTaskUseCase{detailErr: task.ErrTaskNotFound}
	router := newTestRouter(uc)

	w, env := doJSON(t, router, http.MethodGet, "/api/v1/tasks/ghost", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
	if env.ErrorCode != http.StatusNotFound {
		t.Errorf("error_code = %d, want 404", env.ErrorCode)
	}
}

func TestToggleHandler(t *testing.T) {
	uc := &mockTaskUseCase{
		toggleOutput: task.ToggleTaskOutput{
			Task: model.Task{ID: "task-1", Status: model.TaskStatusCompleted, Completed: true},
		},
	}
	router := newTestRouter(uc)

	w, env := doJSON(t, router, http.MethodPost, "/api/v1/tasks/task-1/toggle", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d (body %s)", w.Code, w.Body.String())
	}

	var data struct {
		Task struct {
			Status    string `json:"status"`
			Completed bool   `json:"completed"`
		} `json:"task"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if !data.Task.Completed || data.Task.Status != "completed" {
		t.Errorf("task = %+v, want completed/completed", data.Task)
	}
}

func TestRescheduleHandlerNoOp(t *testing.T) {
	uc := &mockTaskUseCase{
		rescheduleOutput: task.RescheduleTaskOutput{
			Task:  model.Task{ID: "task-1"},
			Moved: false,
		},
	}
	router := newTestRouter(uc)

	w, env := doJSON(t, router, http.MethodPost, "/api/v1/tasks/task-1/reschedule", gin.H{"date": "2024-07-10"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d (body %s)", w.Code, w.Body.String())
	}

	var data struct {
		Moved bool `json:"moved"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.Moved {
		t.Error("moved = true, want false for same-day drop")
	}
}

func TestRescheduleHandlerRejectsBadDate(t *testing.T) {
	router := newTestRouter(&mockTaskUseCase{})

	w, _ := doJSON(t, router, http.MethodPost, "/api/v1/tasks/task-1/reschedule", gin.H{"date": "07/10/2024"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestChecklistHandler(t *testing.T) {
	uc := &mockTaskUseCase{
		checklistOutput: task.UpdateChecklistOutput{
			Task: model.Task{
				ID:          "task-1",
				Title:       "Shoot day",
				Description: "- [x] Charge batteries\n- [ ] Format cards",
				Status:      model.TaskStatusPending,
			},
			Matched: 1,
		},
	}
	router := newTestRouter(uc)

	w, env := doJSON(t, router, http.MethodPut, "/api/v1/tasks/task-1/checklist",
		gin.H{"item": "charge batteries", "done": true})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d (body %s)", w.Code, w.Body.String())
	}
	if uc.gotChecklist.ID != "task-1" || uc.gotChecklist.Item != "charge batteries" || !uc.gotChecklist.Done {
		t.Errorf("use case input = %+v", uc.gotChecklist)
	}

	var data struct {
		Task struct {
			Checklist *struct {
				Total   int     `json:"total"`
				Done    int     `json:"done"`
				Percent float64 `json:"percent"`
			} `json:"checklist"`
		} `json:"task"`
		Matched int `json:"matched"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.Matched != 1 {
		t.Errorf("matched = %d, want 1", data.Matched)
	}
	if data.Task.Checklist == nil {
		t.Fatal("checklist progress missing from task response")
	}
	if data.Task.Checklist.Total != 2 || data.Task.Checklist.Done != 1 || data.Task.Checklist.Percent != 50 {
		t.Errorf("checklist = %+v, want 1 of 2 done", data.Task.Checklist)
	}
}

func TestChecklistHandlerRequiresDone(t *testing.T) {
	router := newTestRouter(&mockTaskUseCase{})

	// The done flag is a pointer binding so a missing field fails
	// validation instead of silently unchecking.
	w, _ := doJSON(t, router, http.MethodPut, "/api/v1/tasks/task-1/checklist", gin.H{"item": "charge"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestChecklistHandlerNoMatch(t *testing.T) {
	uc := &mockTaskUseCase{checklistErr: task.ErrNoChecklistItem}
	router := newTestRouter(uc)

	w, _ := doJSON(t, router, http.MethodPut, "/api/v1/tasks/task-1/checklist",
		gin.H{"item": "color grade", "done": true})
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
