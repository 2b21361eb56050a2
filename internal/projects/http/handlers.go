package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/timeledger/project-billing-api/internal/projects/domain"
)

type createReq struct {
	ProjectName string    `json:"project_name"`
	TaskOwner   string    `json:"task_owner"`
	ProjectType string    `json:"project_type"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	HourlyRate  float64   `json:"hourly_rate"`
}

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	p, err := h.svc.Create(c.Request.Context(), domain.CreateProjectRequest{
		ProjectName: req.ProjectName,
		TaskOwner:   req.TaskOwner,
		ProjectType: req.ProjectType,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		HourlyRate:  req.HourlyRate,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, p)
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) get(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		writeError(c, domain.NotFound())
		return
	}

	p, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) delete(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		writeError(c, domain.NotFound())
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// projectID returns the canonical form of the :id parameter. Ids that are
// not UUIDs cannot name a record.
func projectID(c *gin.Context) (string, bool) {
	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		return "", false
	}
	return id.String(), true
}
