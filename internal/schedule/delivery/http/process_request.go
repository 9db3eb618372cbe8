package http

import (
	"time"

	"github.com/gin-gonic/gin"
)

const defaultNotificationLimit = 50

// processDayReq binds the day query and resolves its date parameter.
func (h *handler) processDayReq(c *gin.Context) (dayReq, error) {
	var req dayReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	var err error
	req.date, err = h.resolveDate(req.Date)
	return req, err
}

// processMonthReq binds the month query. Missing year or month default
// to the current one.
func (h *handler) processMonthReq(c *gin.Context) (monthReq, error) {
	var req monthReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	now := time.Now()
	if req.Year == 0 {
		req.Year = now.Year()
	}
	if req.Month == 0 {
		req.Month = int(now.Month())
	}
	return req, nil
}

// processNotificationsReq binds the notifications query parameters.
func (h *handler) processNotificationsReq(c *gin.Context) (notificationsReq, error) {
	var req notificationsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	if req.Limit == 0 {
		req.Limit = defaultNotificationLimit
	}
	return req, nil
}
