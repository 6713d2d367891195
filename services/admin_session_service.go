package services

import (
	"context"
	"log"
	"time"

	"github.com/eneskalkann/seller-dashboard-backend/config"
	"github.com/eneskalkann/seller-dashboard-backend/models"
	"github.com/google/uuid"
)

// AdminSessionService handles admin session operations
type AdminSessionService struct{}

var adminSessionService = &AdminSessionService{}

// GetAdminSessionService returns the shared session service
func GetAdminSessionService() *AdminSessionService {
	return adminSessionService
}

// CreateSession creates a new admin session
func (s *AdminSessionService) CreateSession(
	ctx context.Context,
	adminID uuid.UUID,
	token string,
	ipAddress string,
	userAgent string,
) (*models.AdminSession, error) {
	tokenHash := GetAdminAuthService().HashToken(token)

	session := &models.AdminSession{
		ID:             uuid.Must(uuid.NewV7()),
		AdminID:        adminID,
		TokenHash:      tokenHash,
		IPAddress:      ipAddress,
		UserAgent:      userAgent,
		CreatedAt:      time.Now(),
		LastActivityAt: time.Now(),
		ExpiresAt:      time.Now().Add(24 * time.Hour),
		IsActive:       true,
	}

	if err := config.Gorm.WithContext(ctx).Create(session).Error; err != nil {
		log.Printf("[session] failed to create session: %v", err)
		return nil, err
	}

	log.Printf("[session] created session %s for admin %s", session.ID, adminID)
	return session, nil
}

// UpdateSessionActivity updates the last activity timestamp for a session
func (s *AdminSessionService) UpdateSessionActivity(
	ctx context.Context,
	tokenHash string,
) error {
	if err := config.Gorm.WithContext(ctx).
		Model(&models.AdminSession{}).
		Where("token_hash = ? AND is_active = ?", tokenHash, true).
		Update("last_activity_at", time.Now()).Error; err != nil {
		log.Printf("[session] failed to update session activity: %v", err)
		return err
	}
	return nil
}

// DeactivateSession marks all of an admin's sessions inactive (logout)
func (s *AdminSessionService) DeactivateSession(
	ctx context.Context,
	adminID uuid.UUID,
) error {
	if err := config.Gorm.WithContext(ctx).
		Model(&models.AdminSession{}).
		Where("admin_id = ? AND is_active = ?", adminID, true).
		Update("is_active", false).Error; err != nil {
		log.Printf("[session] failed to deactivate session: %v", err)
		return err
	}

	log.Printf("[session] deactivated session for admin %s", adminID)
	return nil
}

// CleanupExpiredSessions removes sessions past their expiry (run periodically)
func (s *AdminSessionService) CleanupExpiredSessions(ctx context.Context) error {
	result := config.Gorm.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&models.AdminSession{})
	if result.Error != nil {
		log.Printf("[session] failed to cleanup expired sessions: %v", result.Error)
		return result.Error
	}
	if result.RowsAffected > 0 {
		log.Printf("[session] cleaned up %d expired sessions", result.RowsAffected)
	}
	return nil
}
