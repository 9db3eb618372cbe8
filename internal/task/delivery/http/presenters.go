package http

import (
	"time"

	"creator-studio/internal/model"
	"creator-studio/internal/task"
	"creator-studio/pkg/checklist"
	"creator-studio/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Title       string   `json:"title"       binding:"required,min=1,max=255"`
	Description string   `json:"description" binding:"max=2000"`
	Priority    string   `json:"priority"    binding:"omitempty,oneof=low medium high urgent"`
	Status      string   `json:"status"      binding:"omitempty,oneof=pending in_progress completed cancelled on_hold"`
	DueDate     string   `json:"due_date"    binding:"omitempty,datetime=2006-01-02"`
	Tags        []string `json:"tags"        binding:"omitempty,max=20"`

	dueDate *time.Time
}

func (r *createReq) validate() error {
	var err error
	r.dueDate, err = parseDateField(r.DueDate)
	return err
}

func (r *createReq) toInput() task.CreateTaskInput {
	return task.CreateTaskInput{
		Title:       r.Title,
		Description: r.Description,
		Priority:    model.Priority(r.Priority),
		Status:      model.TaskStatus(r.Status),
		DueDate:     r.dueDate,
		Tags:        r.Tags,
	}
}

// ---

type listReq struct {
	Status    string `form:"status"    binding:"omitempty,oneof=pending in_progress completed cancelled on_hold"`
	Completed string `form:"completed" binding:"omitempty,oneof=true false"`
}

func (r *listReq) validate() error { return nil }

func (r *listReq) toInput() task.ListTasksInput {
	input := task.ListTasksInput{Status: model.TaskStatus(r.Status)}
	if r.Completed != "" {
		done := r.Completed == "true"
		input.Completed = &done
	}
	return input
}

// ---

type updateReq struct {
	ID           string   `json:"-"` // populated from URI param
	Title        string   `json:"title"          binding:"omitempty,min=1,max=255"`
	Description  string   `json:"description"    binding:"omitempty,max=2000"`
	Priority     string   `json:"priority"       binding:"omitempty,oneof=low medium high urgent"`
	Status       string   `json:"status"         binding:"omitempty,oneof=pending in_progress completed cancelled on_hold"`
	DueDate      string   `json:"due_date"       binding:"omitempty,datetime=2006-01-02"`
	ClearDueDate bool     `json:"clear_due_date"`
	Tags         []string `json:"tags"           binding:"omitempty,max=20"`

	dueDate *time.Time
}

func (r *updateReq) validate() error {
	var err error
	r.dueDate, err = parseDateField(r.DueDate)
	if err != nil {
		return err
	}
	// clear_due_date wins over due_date; the zero time tells the use
	// case to drop the stored date.
	if r.ClearDueDate {
		r.dueDate = &time.Time{}
	}
	return nil
}

func (r *updateReq) toInput() task.UpdateTaskInput {
	return task.UpdateTaskInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Priority:    model.Priority(r.Priority),
		Status:      model.TaskStatus(r.Status),
		DueDate:     r.dueDate,
		Tags:        r.Tags,
	}
}

// ---

type rescheduleReq struct {
	ID   string `json:"-"`
	Date string `json:"date" binding:"required,datetime=2006-01-02"`

	date time.Time
}

func (r *rescheduleReq) validate() error {
	d, err := time.Parse(response.DateFormat, r.Date)
	if err != nil {
		return task.ErrInvalidDate
	}
	r.date = d
	return nil
}

func (r *rescheduleReq) toInput() task.RescheduleTaskInput {
	return task.RescheduleTaskInput{
		ID:   r.ID,
		Date: r.date,
	}
}

// ---

type checklistReq struct {
	ID   string `json:"-"`
	Item string `json:"item" binding:"required,min=1,max=255"`
	Done *bool  `json:"done" binding:"required"`
}

func (r *checklistReq) validate() error { return nil }

func (r *checklistReq) toInput() task.UpdateChecklistInput {
	return task.UpdateChecklistInput{
		ID:   r.ID,
		Item: r.Item,
		Done: *r.Done,
	}
}

// --- Shared parsing helpers ---

func parseDateField(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	d, err := time.Parse(response.DateFormat, raw)
	if err != nil {
		return nil, task.ErrInvalidDate
	}
	return &d, nil
}

// --- Response DTOs ---

type checklistProgressResp struct {
	Total   int     `json:"total"`
	Done    int     `json:"done"`
	Percent float64 `json:"percent"`
}

type taskResp struct {
	ID          string                 `json:"id"`
	Title       string                 `json:"title"`
	Description string                 `json:"description,omitempty"`
	Priority    string                 `json:"priority"`
	Status      string                 `json:"status"`
	Completed   bool                   `json:"completed"`
	DueDate     string                 `json:"due_date,omitempty"`
	Tags        []string               `json:"tags,omitempty"`
	Checklist   *checklistProgressResp `json:"checklist,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

func newTaskResp(t model.Task) taskResp {
	resp := taskResp{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    string(t.Priority),
		Status:      string(t.Status),
		Completed:   t.Completed,
		Tags:        t.Tags,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	if t.DueDate != nil {
		resp.DueDate = t.DueDate.Format(response.DateFormat)
	}
	if st := checklist.Stats(t.Description); st.Total > 0 {
		resp.Checklist = &checklistProgressResp{
			Total:   st.Total,
			Done:    st.Done,
			Percent: st.Percent,
		}
	}
	return resp
}

type createResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newCreateResp(out task.CreateTaskOutput) createResp {
	return createResp{Task: newTaskResp(out.Task)}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
}

func (h *handler) newListResp(out task.ListTasksOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{Tasks: tasks, Total: len(out.Tasks)}
}

type detailResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newDetailResp(out task.DetailTaskOutput) detailResp {
	return detailResp{Task: newTaskResp(out.Task)}
}

type updateResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newUpdateResp(out task.UpdateTaskOutput) updateResp {
	return updateResp{Task: newTaskResp(out.Task)}
}

type toggleResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newToggleResp(out task.ToggleTaskOutput) toggleResp {
	return toggleResp{Task: newTaskResp(out.Task)}
}

type rescheduleResp struct {
	Task  taskResp `json:"task"`
	Moved bool     `json:"moved"`
}

func (h *handler) newRescheduleResp(out task.RescheduleTaskOutput) rescheduleResp {
	return rescheduleResp{Task: newTaskResp(out.Task), Moved: out.Moved}
}

type checklistResp struct {
	Task    taskResp `json:"task"`
	Matched int      `json:"matched"`
}

func (h *handler) newChecklistResp(out task.UpdateChecklistOutput) checklistResp {
	return checklistResp{Task: newTaskResp(out.Task), Matched: out.Matched}
}
