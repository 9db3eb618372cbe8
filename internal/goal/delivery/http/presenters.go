package http

import (
	"time"

	"creator-studio/internal/goal"
	"creator-studio/internal/model"
	"creator-studio/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Title       string   `json:"title"       binding:"required,min=1,max=255"`
	Description string   `json:"description" binding:"max=2000"`
	Priority    string   `json:"priority"    binding:"omitempty,oneof=low medium high urgent"`
	Metric      string   `json:"metric"      binding:"max=255"`
	Current     float64  `json:"current"     binding:"omitempty,min=0"`
	Target      float64  `json:"target"      binding:"required,gt=0"`
	DueDate     string   `json:"due_date"    binding:"omitempty,datetime=2006-01-02"`
	Tags        []string `json:"tags"        binding:"omitempty,max=20"`

	dueDate *time.Time
}

func (r *createReq) validate() error {
	var err error
	r.dueDate, err = parseDateField(r.DueDate)
	return err
}

func (r *createReq) toInput() goal.CreateGoalInput {
	return goal.CreateGoalInput{
		Title:       r.Title,
		Description: r.Description,
		Priority:    model.Priority(r.Priority),
		Metric:      r.Metric,
		Current:     r.Current,
		Target:      r.Target,
		DueDate:     r.dueDate,
		Tags:        r.Tags,
	}
}

// ---

type listReq struct {
	Achieved string `form:"achieved" binding:"omitempty,oneof=true false"`
}

func (r *listReq) validate() error { return nil }

func (r *listReq) toInput() goal.ListGoalsInput {
	input := goal.ListGoalsInput{}
	if r.Achieved != "" {
		done := r.Achieved == "true"
		input.Achieved = &done
	}
	return input
}

// ---

type updateReq struct {
	ID           string   `json:"-"` // populated from URI param
	Title        string   `json:"title"          binding:"omitempty,min=1,max=255"`
	Description  string   `json:"description"    binding:"omitempty,max=2000"`
	Priority     string   `json:"priority"       binding:"omitempty,oneof=low medium high urgent"`
	Metric       string   `json:"metric"         binding:"omitempty,max=255"`
	Target       *float64 `json:"target"         binding:"omitempty"`
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

func (r *updateReq) toInput() goal.UpdateGoalInput {
	return goal.UpdateGoalInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Priority:    model.Priority(r.Priority),
		Metric:      r.Metric,
		Target:      r.Target,
		DueDate:     r.dueDate,
		Tags:        r.Tags,
	}
}

// ---

type progressReq struct {
	ID      string   `json:"-"`
	Current *float64 `json:"current" binding:"required"`
}

func (r *progressReq) validate() error { return nil }

func (r *progressReq) toInput() goal.ProgressGoalInput {
	return goal.ProgressGoalInput{
		ID:      r.ID,
		Current: *r.Current,
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
		return goal.ErrInvalidDate
	}
	r.date = d
	return nil
}

func (r *rescheduleReq) toInput() goal.RescheduleGoalInput {
	return goal.RescheduleGoalInput{
		ID:   r.ID,
		Date: r.date,
	}
}

// --- Shared parsing helpers ---

func parseDateField(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	d, err := time.Parse(response.DateFormat, raw)
	if err != nil {
		return nil, goal.ErrInvalidDate
	}
	return &d, nil
}

// --- Response DTOs ---

type goalResp struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Priority    string    `json:"priority"`
	Metric      string    `json:"metric,omitempty"`
	Current     float64   `json:"current"`
	Target      float64   `json:"target"`
	Progress    float64   `json:"progress"`
	Achieved    bool      `json:"achieved"`
	DueDate     string    `json:"due_date,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newGoalResp(g model.Goal) goalResp {
	resp := goalResp{
		ID:          g.ID,
		Title:       g.Title,
		Description: g.Description,
		Priority:    string(g.Priority),
		Metric:      g.Metric,
		Current:     g.Current,
		Target:      g.Target,
		Progress:    g.Progress(),
		Achieved:    g.Achieved(),
		Tags:        g.Tags,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
	if g.DueDate != nil {
		resp.DueDate = g.DueDate.Format(response.DateFormat)
	}
	return resp
}

type createResp struct {
	Goal goalResp `json:"goal"`
}

func (h *handler) newCreateResp(out goal.CreateGoalOutput) createResp {
	return createResp{Goal: newGoalResp(out.Goal)}
}

type listResp struct {
	Goals []goalResp `json:"goals"`
	Total int        `json:"total"`
}

func (h *handler) newListResp(out goal.ListGoalsOutput) listResp {
	goals := make([]goalResp, len(out.Goals))
	for i, g := range out.Goals {
		goals[i] = newGoalResp(g)
	}
	return listResp{Goals: goals, Total: len(out.Goals)}
}

type detailResp struct {
	Goal goalResp `json:"goal"`
}

func (h *handler) newDetailResp(out goal.DetailGoalOutput) detailResp {
	return detailResp{Goal: newGoalResp(out.Goal)}
}

type updateResp struct {
	Goal goalResp `json:"goal"`
}

func (h *handler) newUpdateResp(out goal.UpdateGoalOutput) updateResp {
	return updateResp{Goal: newGoalResp(out.Goal)}
}

type progressResp struct {
	Goal     goalResp `json:"goal"`
	Achieved bool     `json:"achieved"`
}

func (h *handler) newProgressResp(out goal.ProgressGoalOutput) progressResp {
	return progressResp{Goal: newGoalResp(out.Goal), Achieved: out.Achieved}
}

type rescheduleResp struct {
	Goal  goalResp `json:"goal"`
	Moved bool     `json:"moved"`
}

func (h *handler) newRescheduleResp(out goal.RescheduleGoalOutput) rescheduleResp {
	return rescheduleResp{Goal: newGoalResp(out.Goal), Moved: out.Moved}
}
