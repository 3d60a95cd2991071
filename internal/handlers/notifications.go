package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/vibegame/pixey-backend/internal/logger"
	"github.com/vibegame/pixey-backend/internal/models"
	"github.com/vibegame/pixey-backend/internal/services"
)

// NotificationLister defines the interface that the notification feed
// service must implement.
type NotificationLister interface {
	ListNotifications(ctx context.Context, recipient string, limit int) ([]models.NotificationDB, error)
	ListNotificationsByType(ctx context.Context, notificationType string, limit int) ([]models.NotificationDB, error)
}

// NotificationCreator defines the interface that the notification
// creation service must implement.
type NotificationCreator interface {
	CreateNotification(ctx context.Context, notificationType, message string, data json.RawMessage, recipient string) (*models.NotificationDB, error)
}

// NotificationMarker defines the interface that the mark-read service
// must implement.
type NotificationMarker interface {
	MarkNotificationRead(ctx context.Context, id int64) (*models.NotificationDB, error)
}

// CreateNotificationRequest represents the JSON body for creating a
// notification
// swagger:model CreateNotificationRequest
type CreateNotificationRequest struct {
	// Notification type
	// required: true
	Type string `json:"type"`

	// Human-readable message
	// required: true
	Message string `json:"message"`

	// Structured payload
	Data json.RawMessage `json:"data,omitempty"`

	// Recipient wallet, or "global"
	Recipient string `json:"recipient,omitempty"`
}

const defaultNotificationLimit = 50

// NewListNotificationsHandler returns an HTTP handler that serves the
// notification feed.
// @Summary List notifications
// @Description Return the newest notifications, filtered by recipient or type
// @Tags community
// @Produce json
// @Param recipient query string false "Recipient wallet" default(global)
// @Param type query string false "Notification type"
// @Param limit query int false "Maximum entries" default(50)
// @Success 200 {object} handlers.Envelope "Notifications"
// @Router /api/notifications [get]
func NewListNotificationsHandler(svc NotificationLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := defaultNotificationLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed <= 200 {
				limit = parsed
			}
		}

		var (
			rows []models.NotificationDB
			err  error
		)
		if notificationType := r.URL.Query().Get("type"); notificationType != "" {
			rows, err = svc.ListNotificationsByType(r.Context(), notificationType, limit)
		} else {
			recipient := r.URL.Query().Get("recipient")
			if recipient == "" {
				recipient = models.GlobalRecipient
			}
			rows, err = svc.ListNotifications(r.Context(), recipient, limit)
		}
		if err != nil {
			logger.Log.Errorw("failed to list notifications", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if rows == nil {
			rows = []models.NotificationDB{}
		}

		writeSuccess(w, http.StatusOK, rows)
	}
}

// NewCreateNotificationHandler returns an HTTP handler for creating a
// notification.
// @Summary Create notification
// @Description Insert a notification row
// @Tags community
// @Accept json
// @Produce json
// @Param request body handlers.CreateNotificationRequest true "Notification Request"
// @Success 201 {object} handlers.Envelope "Created notification"
// @Failure 400 {object} handlers.Envelope "Invalid request"
// @Failure 401 {object} handlers.Envelope "Unauthorized"
// @Router /api/notifications [post]
// @Security BearerAuth
func NewCreateNotificationHandler(svc NotificationCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateNotificationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Type == "" || req.Message == "" {
			writeError(w, http.StatusBadRequest, "Type and message are required")
			return
		}

		row, err := svc.CreateNotification(r.Context(), req.Type, req.Message, req.Data, req.Recipient)
		if err != nil {
			logger.Log.Errorw("failed to create notification", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeSuccess(w, http.StatusCreated, row)
	}
}

// NewMarkNotificationReadHandler returns an HTTP handler that flags a
// notification as read.
// @Summary Mark notification read
// @Description Flag one notification as read
// @Tags community
// @Produce json
// @Param id path int true "Notification id"
// @Success 200 {object} handlers.Envelope "Updated notification"
// @Failure 400 {object} handlers.Envelope "Invalid id"
// @Failure 401 {object} handlers.Envelope "Unauthorized"
// @Failure 404 {object} handlers.Envelope "Notification not found"
// @Router /api/notifications/{id}/read [put]
// @Security BearerAuth
func NewMarkNotificationReadHandler(svc NotificationMarker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid notification id")
			return
		}

		row, err := svc.MarkNotificationRead(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotificationNotFound):
				writeError(w, http.StatusNotFound, "Notification not found")
			default:
				logger.Log.Errorw("failed to mark notification read", "id", id, "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeSuccess(w, http.StatusOK, row)
	}
}
