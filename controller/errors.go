package controller

import "errors"

// Custom error types for better error handling
// These errors can be checked using errors.Is() instead of string comparison
var (
	ErrCardNotFound     = errors.New("card not found")
	ErrCardConflict     = errors.New("card was modified by another request")
	ErrCardLimitReached = errors.New("team card limit reached")

	ErrLinkNotFound  = errors.New("link not found")
	ErrSlugTaken     = errors.New("slug is already taken")
	ErrInvalidSlug   = errors.New("slug contains invalid characters or is reserved")
	ErrLinkExpired   = errors.New("link has expired")
	ErrLinkPaused    = errors.New("link is paused")
	ErrLinkPassword  = errors.New("link password required or incorrect")
	ErrInvalidStatus = errors.New("status must be either 'active' or 'paused'")
	ErrInvalidQRSize = errors.New("invalid QR code size")

	ErrLeadNotFound = errors.New("lead not found")

	ErrTeamNotFound         = errors.New("team not found")
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrNfcIDTaken           = errors.New("NFC device is already registered to another card")

	ErrPermissionDenied = errors.New("permission denied")
)
