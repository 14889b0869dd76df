package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"canvas-assistant/internal/lms"
	"canvas-assistant/pkg/response"
)

// Me godoc
// @Summary     Current LMS user
// @Description Returns the owner of the configured LMS token. Fails with 401 when the token is not usable.
// @Tags        LMS
// @Produce     json
// @Success     200 {object} meResp
// @Failure     401 {object} response.Resp "Token rejected"
// @Router      /api/v1/lms/me [GET]
func (h *handler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	user, ok := h.uc.Profile(ctx)
	if !ok {
		response.Error(c, errTokenRejected, nil)
		return
	}

	response.OK(c, meResp{User: user})
}

// Courses godoc
// @Summary     List active courses
// @Description Returns active courses, date-restricted courses excluded. Served from cache when fresh.
// @Tags        LMS
// @Produce     json
// @Success     200 {object} coursesResp
// @Router      /api/v1/lms/courses [GET]
func (h *handler) Courses(c *gin.Context) {
	ctx := c.Request.Context()
	response.OK(c, newCoursesResp(h.uc.ActiveCourses(ctx)))
}

// Deadlines godoc
// @Summary     Upcoming deadlines
// @Description Future assignment deadlines across all active courses, sorted by due date.
// @Tags        LMS
// @Produce     json
// @Success     200 {object} deadlinesResp
// @Router      /api/v1/lms/deadlines [GET]
func (h *handler) Deadlines(c *gin.Context) {
	ctx := c.Request.Context()
	response.OK(c, newDeadlinesResp(h.uc.UpcomingDeadlines(ctx)))
}

// Aggregate godoc
// @Summary     Aggregate LMS data for an intent
// @Description Fetches the resource kinds named in the body, scoped to the referenced course, and returns the data bag.
// @Tags        LMS
// @Accept      json
// @Produce     json
// @Param       body body aggregateReq true "Explicit intent"
// @Success     200 {object} aggregateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/lms/aggregate [POST]
func (h *handler) Aggregate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAggregateReq(c)
	if err != nil {
		if errors.Is(err, lms.ErrInvalidKind) {
			err = h.mapError(err)
		}
		response.Error(c, err, nil)
		return
	}

	response.OK(c, newAggregateResp(h.uc.Aggregate(ctx, req.toInput())))
}

// CacheStats godoc
// @Summary     Cache statistics
// @Tags        LMS
// @Produce     json
// @Success     200 {object} cacheStatsResp
// @Router      /api/v1/lms/cache/stats [GET]
func (h *handler) CacheStats(c *gin.Context) {
	response.OK(c, cacheStatsResp{Stats: h.uc.CacheStats()})
}

// PurgeCache godoc
// @Summary     Drop every cached LMS payload
// @Tags        LMS
// @Produce     json
// @Success     200 {object} purgeResp
// @Router      /api/v1/lms/cache [DELETE]
func (h *handler) PurgeCache(c *gin.Context) {
	ctx := c.Request.Context()

	n := h.uc.PurgeCache()
	h.l.Infof(ctx, "lms.http.PurgeCache: dropped %d entries", n)
	response.OK(c, purgeResp{Purged: n})
}

// ExportDeadlines godoc
// @Summary     Export deadlines to Google Calendar
// @Description Creates a calendar event for every upcoming deadline not exported yet.
// @Tags        LMS
// @Produce     json
// @Success     200 {object} exportResp
// @Failure     412 {object} response.Resp "Calendar not configured"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/lms/deadlines/export [POST]
func (h *handler) ExportDeadlines(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ExportDeadlines(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ExportDeadlines: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newExportResp(output))
}
