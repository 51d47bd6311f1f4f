package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/eltecal/backend/internal/app/models"
	"github.com/eltecal/backend/internal/app/repositories"
)

// NotificationService handles per-user notifications
type NotificationService struct {
	notificationRepo *repositories.NotificationRepository
	logger           zerolog.Logger
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(notificationRepo *repositories.NotificationRepository, logger zerolog.Logger) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// Notify creates a notification for the user
func (s *NotificationService) Notify(ctx context.Context, userID int64, title, message string) error {
	n := &models.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
	}
	return s.notificationRepo.Create(ctx, n)
}

// GetAll lists the user's notifications, optionally only unread ones
func (s *NotificationService) GetAll(ctx context.Context, userID int64, unreadOnly bool) ([]*models.Notification, error) {
	return s.notificationRepo.GetAllByUser(ctx, userID, unreadOnly)
}

// MarkRead marks one notification as read
func (s *NotificationService) MarkRead(ctx context.Context, userID, notificationID int64) error {
	return s.notificationRepo.MarkRead(ctx, userID, notificationID)
}

// MarkAllRead marks every unread notification as read and returns the count
func (s *NotificationService) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	return s.notificationRepo.MarkAllRead(ctx, userID)
}

// Delete removes one notification
func (s *NotificationService) Delete(ctx context.Context, userID, notificationID int64) error {
	return s.notificationRepo.Delete(ctx, userID, notificationID)
}
