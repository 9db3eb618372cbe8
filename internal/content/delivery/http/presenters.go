package http

import (
	"time"

	"creator-studio/internal/content"
	"creator-studio/internal/model"
	"creator-studio/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Title         string            `json:"title"           binding:"required,min=1,max=255"`
	Description   string            `json:"description"     binding:"max=2000"`
	Priority      string            `json:"priority"        binding:"omitempty,oneof=low medium high urgent"`
	Status        string            `json:"status"          binding:"omitempty,oneof=ideas planning in-progress published"`
	Pillar        string            `json:"pillar"          binding:"max=255"`
	DueDate       string            `json:"due_date"        binding:"omitempty,datetime=2006-01-02"`
	StageDueDates map[string]string `json:"stage_due_dates" binding:"omitempty"`
	Tags          []string          `json:"tags"            binding:"omitempty,max=20"`

	dueDate    *time.Time
	stageDates map[model.Stage]time.Time
}

func (r *createReq) validate() error {
	var err error
	r.dueDate, err = parseDateField(r.DueDate)
	if err != nil {
		return err
	}
	r.stageDates, err = parseStageDates(r.StageDueDates)
	return err
}

func (r *createReq) toInput() content.CreateItemInput {
	return content.CreateItemInput{
		Title:         r.Title,
		Description:   r.Description,
		Priority:      model.Priority(r.Priority),
		Status:        model.Stage(r.Status),
		Pillar:        r.Pillar,
		DueDate:       r.dueDate,
		StageDueDates: r.stageDates,
		Tags:          r.Tags,
	}
}

// ---

type listReq struct {
	Status string `form:"status" binding:"omitempty,oneof=ideas planning in-progress published"`
	Pillar string `form:"pillar"`
}

func (r *listReq) validate() error { return nil }

func (r *listReq) toInput() content.ListItemsInput {
	return content.ListItemsInput{
		Status: model.Stage(r.Status),
		Pillar: r.Pillar,
	}
}

// ---

type updateReq struct {
	ID            string            `json:"-"` // populated from URI param
	Title         string            `json:"title"           binding:"omitempty,min=1,max=255"`
	Description   string            `json:"description"     binding:"omitempty,max=2000"`
	Priority      string            `json:"priority"        binding:"omitempty,oneof=low medium high urgent"`
	Status        string            `json:"status"          binding:"omitempty,oneof=ideas planning in-progress published"`
	Pillar        string            `json:"pillar"          binding:"omitempty,max=255"`
	DueDate       string            `json:"due_date"        binding:"omitempty,datetime=2006-01-02"`
	ClearDueDate  bool              `json:"clear_due_date"`
	StageDueDates map[string]string `json:"stage_due_dates" binding:"omitempty"`
	Tags          []string          `json:"tags"            binding:"omitempty,max=20"`

	dueDate    *time.Time
	stageDates map[model.Stage]time.Time
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
	// An empty string clears the stage date; validate() maps it to the
	// zero time the use case treats as removal.
	r.stageDates, err = parseStageDatesAllowEmpty(r.StageDueDates)
	return err
}

func (r *updateReq) toInput() content.UpdateItemInput {
	return content.UpdateItemInput{
		ID:            r.ID,
		Title:         r.Title,
		Description:   r.Description,
		Priority:      model.Priority(r.Priority),
		Status:        model.Stage(r.Status),
		Pillar:        r.Pillar,
		DueDate:       r.dueDate,
		StageDueDates: r.stageDates,
		Tags:          r.Tags,
	}
}

// ---

type moveReq struct {
	ID   string `json:"-"`
	From string `json:"from" binding:"omitempty,oneof=ideas planning in-progress published"`
	To   string `json:"to"   binding:"required,oneof=ideas planning in-progress published"`
}

func (r *moveReq) validate() error { return nil }

func (r *moveReq) toInput() content.MoveItemInput {
	return content.MoveItemInput{
		ID:   r.ID,
		From: model.Stage(r.From),
		To:   model.Stage(r.To),
	}
}

// ---

type rescheduleReq struct {
	ID    string `json:"-"`
	Date  string `json:"date"  binding:"required,datetime=2006-01-02"`
	Stage string `json:"stage" binding:"omitempty,oneof=ideas planning in-progress published"`

	date time.Time
}

func (r *rescheduleReq) validate() error {
	d, err := time.Parse(response.DateFormat, r.Date)
	if err != nil {
		return content.ErrInvalidDate
	}
	r.date = d
	return nil
}

func (r *rescheduleReq) toInput() content.RescheduleItemInput {
	return content.RescheduleItemInput{
		ID:    r.ID,
		Date:  r.date,
		Stage: model.Stage(r.Stage),
	}
}

// --- Shared parsing helpers ---

func parseDateField(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	d, err := time.Parse(response.DateFormat, raw)
	if err != nil {
		return nil, content.ErrInvalidDate
	}
	return &d, nil
}

func parseStageDates(raw map[string]string) (map[model.Stage]time.Time, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make(map[model.Stage]time.Time, len(raw))
	for name, value := range raw {
		stage := model.Stage(name)
		if !stage.Valid() {
			return nil, content.ErrInvalidStage
		}
		d, err := time.Parse(response.DateFormat, value)
		if err != nil {
			return nil, content.ErrInvalidDate
		}
		out[stage] = d
	}
	return out, nil
}

func parseStageDatesAllowEmpty(raw map[string]string) (map[model.Stage]time.Time, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make(map[model.Stage]time.Time, len(raw))
	for name, value := range raw {
		stage := model.Stage(name)
		if !stage.Valid() {
			return nil, content.ErrInvalidStage
		}
		if value == "" {
			out[stage] = time.Time{}
			continue
		}
		d, err := time.Parse(response.DateFormat, value)
		if err != nil {
			return nil, content.ErrInvalidDate
		}
		out[stage] = d
	}
	return out, nil
}

// --- Response DTOs ---

type stageProgressResp struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

type itemResp struct {
	ID               string            `json:"id"`
	Title            string            `json:"title"`
	Description      string            `json:"description,omitempty"`
	Priority         string            `json:"priority"`
	Status           string            `json:"status"`
	Pillar           string            `json:"pillar,omitempty"`
	DueDate          string            `json:"due_date,omitempty"`
	CurrentDueDate   string            `json:"current_due_date,omitempty"`
	StageDueDates    map[string]string `json:"stage_due_dates,omitempty"`
	StageCompletions map[string]bool   `json:"stage_completions,omitempty"`
	Progress         stageProgressResp `json:"progress"`
	Tags             []string          `json:"tags,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

func newItemResp(item model.ContentItem) itemResp {
	resp := itemResp{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		Priority:    string(item.Priority),
		Status:      string(item.Status),
		Pillar:      item.Pillar,
		Tags:        item.Tags,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
	if item.DueDate != nil {
		resp.DueDate = item.DueDate.Format(response.DateFormat)
	}
	if d := content.CurrentStageDueDate(item); d != nil {
		resp.CurrentDueDate = d.Format(response.DateFormat)
	}
	if len(item.StageDueDates) > 0 {
		resp.StageDueDates = make(map[string]string, len(item.StageDueDates))
		for stage, d := range item.StageDueDates {
			resp.StageDueDates[string(stage)] = d.Format(response.DateFormat)
		}
	}
	if len(item.StageCompletions) > 0 {
		resp.StageCompletions = make(map[string]bool, len(item.StageCompletions))
		for stage, done := range item.StageCompletions {
			resp.StageCompletions[string(stage)] = done
		}
	}
	completed, total := content.StageProgress(item)
	resp.Progress = stageProgressResp{Completed: completed, Total: total}
	return resp
}

type createResp struct {
	Item itemResp `json:"item"`
}

func (h *handler) newCreateResp(out content.CreateItemOutput) createResp {
	return createResp{Item: newItemResp(out.Item)}
}

type listResp struct {
	Items []itemResp `json:"items"`
	Total int        `json:"total"`
}

func (h *handler) newListResp(out content.ListItemsOutput) listResp {
	items := make([]itemResp, len(out.Items))
	for i, item := range out.Items {
		items[i] = newItemResp(item)
	}
	return listResp{Items: items, Total: out.Total}
}

type detailResp struct {
	Item itemResp `json:"item"`
}

func (h *handler) newDetailResp(out content.DetailItemOutput) detailResp {
	return detailResp{Item: newItemResp(out.Item)}
}

type updateResp struct {
	Item itemResp `json:"item"`
}

func (h *handler) newUpdateResp(out content.UpdateItemOutput) updateResp {
	return updateResp{Item: newItemResp(out.Item)}
}

type moveResp struct {
	Item  itemResp `json:"item"`
	Moved bool     `json:"moved"`
}

func (h *handler) newMoveResp(out content.MoveItemOutput) moveResp {
	return moveResp{Item: newItemResp(out.Item), Moved: out.Moved}
}

func (h *handler) newRescheduleResp(out content.RescheduleItemOutput) moveResp {
	return moveResp{Item: newItemResp(out.Item), Moved: out.Moved}
}

type boardColumnResp struct {
	Stage string     `json:"stage"`
	Total int        `json:"total"`
	Items []itemResp `json:"items"`
}

type boardResp struct {
	Columns []boardColumnResp `json:"columns"`
}

func (h *handler) newBoardResp(out content.BoardOutput) boardResp {
	columns := make([]boardColumnResp, len(out.Columns))
	for i, col := range out.Columns {
		items := make([]itemResp, len(col.Items))
		for j, item := range col.Items {
			items[j] = newItemResp(item)
		}
		columns[i] = boardColumnResp{
			Stage: string(col.Stage),
			Total: col.Total,
			Items: items,
		}
	}
	return boardResp{Columns: columns}
}
