// ════════════════════════════════════════════════════════════
// Path: utils/login_tracker.go
// Track admin login events
// ════════════════════════════════════════════════════════════

package utils

import (
	"log"
	"strings"

	"github.com/eneskalkann/seller-dashboard-backend/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LogLoginEvent records an admin login event to the database
func LogLoginEvent(c *gin.Context, adminID uuid.UUID) error {
	ctx := c.Request.Context()

	ipAddress := c.ClientIP()
	userAgent := c.GetHeader("User-Agent")

	// Parse device info (basic)
	deviceType := parseDeviceType(userAgent)
	browser := parseBrowser(userAgent)
	os := parseOS(userAgent)

	query := `
		INSERT INTO login_events (
			id, admin_id, logged_in_at, ip_address, user_agent,
			device_type, browser, os
		) VALUES ($1, $2, NOW(), $3, $4, $5, $6, $7)
	`

	_, err := config.DB.Exec(ctx, query,
		uuid.New().String(),
		adminID.String(),
		ipAddress,
		userAgent,
		deviceType,
		browser,
		os,
	)
	if err != nil {
		log.Printf("❌ Failed to log login event: %v", err)
		return err
	}

	log.Printf("✅ Login event logged for admin: %s from IP: %s", adminID.String(), ipAddress)
	return nil
}

// parseDeviceType determines if the request is from mobile, tablet, or desktop
func parseDeviceType(userAgent string) string {
	ua := strings.ToLower(userAgent)
	switch {
	case strings.Contains(ua, "ipad") || strings.Contains(ua, "tablet"):
		return "tablet"
	case strings.Contains(ua, "mobile") || strings.Contains(ua, "android") || strings.Contains(ua, "iphone"):
		return "mobile"
	default:
		return "desktop"
	}
}

// parseBrowser extracts the browser family from a user agent string
func parseBrowser(userAgent string) string {
	ua := strings.ToLower(userAgent)
	switch {
	case strings.Contains(ua, "edg/"):
		return "edge"
	case strings.Contains(ua, "chrome"):
		return "chrome"
	case strings.Contains(ua, "safari"):
		return "safari"
	case strings.Contains(ua, "firefox"):
		return "firefox"
	default:
		return "other"
	}
}

// parseOS extracts the operating system from a user agent string
func parseOS(userAgent string) string {
	ua := strings.ToLower(userAgent)
	switch {
	case strings.Contains(ua, "windows"):
		return "windows"
	case strings.Contains(ua, "mac os") || strings.Contains(ua, "macos"):
		return "macos"
	case strings.Contains(ua, "android"):
		return "android"
	case strings.Contains(ua, "iphone") || strings.Contains(ua, "ipad") || strings.Contains(ua, "ios"):
		return "ios"
	case strings.Contains(ua, "linux"):
		return "linux"
	default:
		return "other"
	}
}
