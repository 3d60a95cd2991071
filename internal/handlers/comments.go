package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vibegame/pixey-backend/internal/logger"
	"github.com/vibegame/pixey-backend/internal/middlewares"
	"github.com/vibegame/pixey-backend/internal/models"
	"github.com/vibegame/pixey-backend/internal/services"
)

// CommentLister defines the interface that the chat feed service must
// implement.
type CommentLister interface {
	ListComments(ctx context.Context) ([]models.ChatMessageDB, error)
}

// CommentAdder defines the interface that the chat posting service must
// implement.
type CommentAdder interface {
	AddComment(ctx context.Context, walletAddress, message string) (*models.ChatMessageDB, error)
}

// AddCommentRequest represents the JSON body for posting a chat message
// swagger:model AddCommentRequest
type AddCommentRequest struct {
	// Message text
	// required: true
	Content string `json:"content"`
}

// NewListCommentsHandler returns an HTTP handler that serves the chat feed.
// @Summary List comments
// @Description Return the chat feed, oldest first
// @Tags community
// @Produce json
// @Success 200 {object} handlers.Envelope "Messages"
// @Router /api/comments [get]
func NewListCommentsHandler(svc CommentLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		comments, err := svc.ListComments(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to list comments", "err", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if comments == nil {
			comments = []models.ChatMessageDB{}
		}

		writeSuccess(w, http.StatusOK, comments)
	}
}

// NewAddCommentHandler returns an HTTP handler for posting a chat message.
// @Summary Post comment
// @Description Post a chat message as the authenticated user
// @Tags community
// @Accept json
// @Produce json
// @Param request body handlers.AddCommentRequest true "Comment Request"
// @Success 201 {object} handlers.Envelope "Created message"
// @Failure 400 {object} handlers.Envelope "Empty or over-long message"
// @Failure 401 {object} handlers.Envelope "Unauthorized"
// @Router /api/comments [post]
// @Security BearerAuth
func NewAddCommentHandler(svc CommentAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		wallet := middlewares.WalletFromContext(ctx)

		var req AddCommentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		comment, err := svc.AddComment(ctx, wallet, req.Content)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmptyComment):
				writeError(w, http.StatusBadRequest, "Comment is empty")
			case errors.Is(err, services.ErrCommentTooLong):
				writeError(w, http.StatusBadRequest, "Comment too long")
			default:
				logger.Log.Errorw("failed to add comment", "wallet", wallet, "err", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeSuccess(w, http.StatusCreated, comment)
	}
}
