package api

import (
	"errors"
	"net/http"

	resdto "mealpass-api/internal/handler/dto/response"
	"mealpass-api/internal/handler/httperr"
	"mealpass-api/internal/pkg/errs"
	"mealpass-api/internal/usecase/commands"
	"mealpass-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type NotificationHandler struct {
	cmds  commands.NotificationCommands
	sweep commands.SweepCommands
	q     queries.NotificationQueries
}

func NewNotificationHandler(cmds commands.NotificationCommands, sweep commands.SweepCommands, q queries.NotificationQueries) *NotificationHandler {
	return &NotificationHandler{cmds: cmds, sweep: sweep, q: q}
}

// @Summary List notifications
// @Description List recent notifications with the unread count
// @Tags notifications
// @Produce json
// @Success 200 {object} resdto.NotificationListResponse
// @Failure 500 {object} map[string]string
// @Router /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	result, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list notifications", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromNotificationList(result))
}

// @Summary Mark notification read
// @Tags notifications
// @Param id path string true "Notification ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /notifications/{id}/read [patch]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.MarkRead(c.Request.Context(), id); err != nil {
		if errors.Is(err, errs.ErrNotificationNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Notification not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Mark read failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Mark all notifications read
// @Tags notifications
// @Produce json
// @Success 200 {object} map[string]int64
// @Failure 500 {object} map[string]string
// @Router /notifications/read-all [patch]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	updated, err := h.cmds.MarkAllRead(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Mark all read failed", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": updated})
}

// @Summary Delete notification
// @Tags notifications
// @Param id path string true "Notification ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /notifications/{id} [delete]
func (h *NotificationHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, errs.ErrNotificationNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Notification not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Delete notification failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Run notification sweep
// @Description Evaluate the alert rules immediately instead of waiting for the scheduler
// @Tags notifications
// @Produce json
// @Success 200 {object} map[string]int
// @Failure 500 {object} map[string]string
// @Router /notifications/sweep [post]
func (h *NotificationHandler) Sweep(c *gin.Context) {
	result, err := h.sweep.Run(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Notification sweep failed", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"created": len(result.Created)})
}
