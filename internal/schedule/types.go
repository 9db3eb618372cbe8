package schedule

import (
	"time"

	"creator-studio/internal/model"
	"creator-studio/pkg/datemath"
)

// Kind identifies which collection a schedule entry came from.
type Kind string

const (
	KindTask    Kind = "task"
	KindContent Kind = "content"
	KindGoal    Kind = "goal"
)

// Entry is one dated item, normalized across the task, content and
// goal collections for calendar display. Date is the calendar day the
// entry occupies: a task's or goal's due date, a content item's
// current stage deadline.
type Entry struct {
	Kind      Kind           `json:"kind"`
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Priority  model.Priority `json:"priority"`
	Status    string         `json:"status"`
	Date      datemath.Date  `json:"date"`
	Completed bool           `json:"completed"`
}

// MonthOutput buckets a month's entries by day of month. Days without
// entries are absent.
type MonthOutput struct {
	Year  int
	Month time.Month
	Days  map[int][]Entry
}

// GoalSummary aggregates goal progress for the dashboard.
type GoalSummary struct {
	Total           int
	Achieved        int
	AverageProgress float64
}

// SummaryOutput is the dashboard payload: today's load, open work by
// state, and the deadlines coming up in the next seven days. Counts
// exclude finished items; the calendar endpoints still show those.
type SummaryOutput struct {
	DueToday       int
	OpenTasks      int
	TasksByStatus  map[model.TaskStatus]int
	ContentByStage map[model.Stage]int
	Goals          GoalSummary
	UpcomingWeek   []Entry
}
