package http

import (
	"strings"
	"time"

	"creator-studio/internal/schedule"
	"creator-studio/pkg/datemath"
	"creator-studio/pkg/notify"
)

// --- Request DTOs ---

type dayReq struct {
	// Date accepts YYYY-MM-DD or a relative phrase such as "today",
	// "tomorrow", "in 3 days" or "next friday". Empty means today.
	Date string `form:"date"`

	date datemath.Date
}

type monthReq struct {
	Year  int `form:"year"  binding:"omitempty,min=1970,max=9999"`
	Month int `form:"month" binding:"omitempty,min=1,max=12"`
}

type notificationsReq struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=200"`
}

// --- Shared parsing helpers ---

// resolveDate turns the raw query value into a civil date. A value
// shaped like a date must parse exactly; anything else goes through the
// relative-phrase parser, which treats unknown phrases as today.
func (h *handler) resolveDate(raw string) (datemath.Date, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = "today"
	}
	if looksLikeDate(raw) {
		return datemath.ParseDate(raw)
	}
	t, err := h.parser.Parse(raw, time.Now())
	if err != nil {
		return datemath.Date{}, err
	}
	return datemath.DateOf(t, t.Location()), nil
}

// looksLikeDate guards the strict path: "2025-13-40" must be rejected,
// not fall through to the phrase parser and quietly mean today.
func looksLikeDate(s string) bool {
	return len(s) == len(datemath.DateFormat) && s[4] == '-' && s[7] == '-'
}

// --- Response DTOs ---

type dayResp struct {
	Date    string           `json:"date"`
	Entries []schedule.Entry `json:"entries"`
	Total   int              `json:"total"`
}

func (h *handler) newDayResp(date datemath.Date, entries []schedule.Entry) dayResp {
	if entries == nil {
		entries = []schedule.Entry{}
	}
	return dayResp{
		Date:    date.String(),
		Entries: entries,
		Total:   len(entries),
	}
}

type monthResp struct {
	Year  int                      `json:"year"`
	Month int                      `json:"month"`
	Days  map[int][]schedule.Entry `json:"days"`
}

func (h *handler) newMonthResp(out schedule.MonthOutput) monthResp {
	return monthResp{
		Year:  out.Year,
		Month: int(out.Month),
		Days:  out.Days,
	}
}

type goalSummaryResp struct {
	Total           int     `json:"total"`
	Achieved        int     `json:"achieved"`
	AverageProgress float64 `json:"average_progress"`
}

type summaryResp struct {
	DueToday       int              `json:"due_today"`
	OpenTasks      int              `json:"open_tasks"`
	TasksByStatus  map[string]int   `json:"tasks_by_status"`
	ContentByStage map[string]int   `json:"content_by_stage"`
	Goals          goalSummaryResp  `json:"goals"`
	UpcomingWeek   []schedule.Entry `json:"upcoming_week"`
}

func (h *handler) newSummaryResp(out schedule.SummaryOutput) summaryResp {
	tasks := make(map[string]int, len(out.TasksByStatus))
	for status, n := range out.TasksByStatus {
		tasks[string(status)] = n
	}
	stages := make(map[string]int, len(out.ContentByStage))
	for stage, n := range out.ContentByStage {
		stages[string(stage)] = n
	}
	upcoming := out.UpcomingWeek
	if upcoming == nil {
		upcoming = []schedule.Entry{}
	}
	return summaryResp{
		DueToday:       out.DueToday,
		OpenTasks:      out.OpenTasks,
		TasksByStatus:  tasks,
		ContentByStage: stages,
		Goals: goalSummaryResp{
			Total:           out.Goals.Total,
			Achieved:        out.Goals.Achieved,
			AverageProgress: out.Goals.AverageProgress,
		},
		UpcomingWeek: upcoming,
	}
}

type notificationsResp struct {
	Notifications []notify.Notification `json:"notifications"`
	Total         int                   `json:"total"`
}

func (h *handler) newNotificationsResp(items []notify.Notification) notificationsResp {
	if items == nil {
		items = []notify.Notification{}
	}
	return notificationsResp{
		Notifications: items,
		Total:         len(items),
	}
}
