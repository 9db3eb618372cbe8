package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"creator-studio/pkg/ics"
	"creator-studio/pkg/response"
)

// Day godoc
// @Summary     Day view
// @Description Returns every task, content stage deadline and goal landing on the given calendar day.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       date query string false "YYYY-MM-DD or a relative phrase (today, tomorrow, in 3 days, next friday)"
// @Success     200 {object} dayResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/calendar/day [GET]
func (h *handler) Day(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDayReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	entries, err := h.uc.ItemsForDate(ctx, req.date)
	if err != nil {
		h.l.Errorf(ctx, "uc.ItemsForDate: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDayResp(req.date, entries))
}

// DayICS godoc
// @Summary     Day view as iCalendar
// @Description Exports the day's entries as all-day VEVENTs for import into external calendar apps.
// @Tags        Calendar
// @Produce     plain
// @Param       date query string false "YYYY-MM-DD or a relative phrase"
// @Success     200 {string} string "text/calendar document"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/calendar/day.ics [GET]
func (h *handler) DayICS(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDayReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	entries, err := h.uc.ItemsForDate(ctx, req.date)
	if err != nil {
		h.l.Errorf(ctx, "uc.ItemsForDate: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	events := make([]ics.Event, 0, len(entries))
	for _, e := range entries {
		events = append(events, ics.Event{
			UID:         fmt.Sprintf("%s-%s@creator-studio", e.Kind, e.ID),
			Summary:     e.Title,
			Description: "Status: " + e.Status,
			Category:    string(e.Kind),
			Date:        e.Date.Time,
		})
	}

	body := ics.BuildCalendar(fmt.Sprintf("Creator Studio %s", req.date), events, time.Now())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "schedule-"+req.date.String()+".ics"))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(body))
}

// Month godoc
// @Summary     Month view
// @Description Returns the month's entries bucketed by day of month. Days without entries are absent.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       year  query int false "Year (defaults to current)"
// @Param       month query int false "Month 1-12 (defaults to current)"
// @Success     200 {object} monthResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/calendar/month [GET]
func (h *handler) Month(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processMonthReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Month(ctx, req.Year, time.Month(req.Month))
	if err != nil {
		h.l.Errorf(ctx, "uc.Month: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newMonthResp(output))
}

// Summary godoc
// @Summary     Dashboard summary
// @Description Returns today's deadline count, open work by state, goal progress and the next seven days of deadlines.
// @Tags        Dashboard
// @Accept      json
// @Produce     json
// @Success     200 {object} summaryResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/dashboard/summary [GET]
func (h *handler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Summary(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Summary: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSummaryResp(output))
}

// Notifications godoc
// @Summary     Recent notifications
// @Description Returns buffered service notifications, newest first.
// @Tags        Notifications
// @Accept      json
// @Produce     json
// @Param       limit query int false "Maximum entries to return (default 50)"
// @Success     200 {object} notificationsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/notifications [GET]
func (h *handler) Notifications(c *gin.Context) {
	req, err := h.processNotificationsReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, h.newNotificationsResp(h.nc.Recent(req.Limit)))
}
