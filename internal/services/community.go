package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/vibegame/pixey-backend/internal/models"
)

var (
	// ErrEmptyComment is returned when the message is blank after trimming.
	ErrEmptyComment = errors.New("comment is empty")

	// ErrCommentTooLong is returned when the message exceeds the length cap.
	ErrCommentTooLong = errors.New("comment too long")

	// ErrNotificationNotFound is returned for unknown notification ids.
	ErrNotificationNotFound = errors.New("notification not found")
)

// DefaultCommentLimit caps the chat feed page size.
const DefaultCommentLimit = 100

// CommentReader serves the chat feed.
type CommentReader interface {
	List(ctx context.Context, limit int) ([]models.ChatMessageDB, error)
}

// CommentWriter inserts chat messages.
type CommentWriter interface {
	Insert(ctx context.Context, walletAddress, message string) (*models.ChatMessageDB, error)
}

// NotificationReader serves the polling notification views.
type NotificationReader interface {
	ListByRecipient(ctx context.Context, recipientWallet string, limit int) ([]models.NotificationDB, error)
	ListByType(ctx context.Context, notificationType string, limit int) ([]models.NotificationDB, error)
}

// NotificationWriter inserts and updates notification rows.
type NotificationWriter interface {
	Insert(ctx context.Context, notificationType, message string, data json.RawMessage, recipient string) (*models.NotificationDB, error)
	MarkRead(ctx context.Context, id int64) (*models.NotificationDB, error)
}

// CommunityService serves chat messages and notifications.
type CommunityService struct {
	comments          CommentReader
	commentWriter     CommentWriter
	notifications     NotificationReader
	notificationWrite NotificationWriter
}

// NewCommunityService creates a new CommunityService instance.
func NewCommunityService(
	comments CommentReader,
	commentWriter CommentWriter,
	notifications NotificationReader,
	notificationWrite NotificationWriter,
) *CommunityService {
	return &CommunityService{
		comments:          comments,
		commentWriter:     commentWriter,
		notifications:     notifications,
		notificationWrite: notificationWrite,
	}
}

// ListComments returns the chat feed, oldest first.
func (svc *CommunityService) ListComments(ctx context.Context) ([]models.ChatMessageDB, error) {
	return svc.comments.List(ctx, DefaultCommentLimit)
}

// AddComment validates and stores a chat message.
func (svc *CommunityService) AddComment(ctx context.Context, walletAddress, message string) (*models.ChatMessageDB, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrEmptyComment
	}
	if len(message) > models.MaxCommentLength {
		return nil, ErrCommentTooLong
	}

	return svc.commentWriter.Insert(ctx, walletAddress, message)
}

// ListNotifications returns the newest notifications for a recipient
// ("global" for the shared feed).
func (svc *CommunityService) ListNotifications(ctx context.Context, recipient string, limit int) ([]models.NotificationDB, error) {
	return svc.notifications.ListByRecipient(ctx, recipient, limit)
}

// ListNotificationsByType returns the newest notifications of one type.
func (svc *CommunityService) ListNotificationsByType(ctx context.Context, notificationType string, limit int) ([]models.NotificationDB, error) {
	return svc.notifications.ListByType(ctx, notificationType, limit)
}

// CreateNotification inserts a notification row.
func (svc *CommunityService) CreateNotification(ctx context.Context, notificationType, message string, data json.RawMessage, recipient string) (*models.NotificationDB, error) {
	if recipient == "" {
		recipient = models.GlobalRecipient
	}
	return svc.notificationWrite.Insert(ctx, notificationType, message, data, recipient)
}

// MarkNotificationRead flags one notification as read.
func (svc *CommunityService) MarkNotificationRead(ctx context.Context, id int64) (*models.NotificationDB, error) {
	row, err := svc.notificationWrite.MarkRead(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrNotificationNotFound
	}
	return row, nil
}
