// Package errors provides custom error types for the application.
package errors

import "errors"

// User errors
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user with this email already exists")
)

// Auth errors
var (
	ErrUnauthorized     = errors.New("unauthorized")
	ErrInvalidToken     = errors.New("invalid token")
	ErrTokenExpired     = errors.New("token expired")
	ErrAdminRequired    = errors.New("admin access required")
	ErrNotResourceOwner = errors.New("you can only access your own resources")
)

// Post errors
var (
	ErrPostNotFound      = errors.New("post not found")
	ErrPostQuotaExceeded = errors.New("post limit reached, upgrade to Gold membership to keep posting")
)

// Comment errors
var (
	ErrCommentNotFound = errors.New("comment not found")
)

// Report errors
var (
	ErrReportNotFound       = errors.New("report not found")
	ErrReportMissingComment = errors.New("report does not reference a comment")
)

// Announcement and tag errors
var (
	ErrAnnouncementNotFound = errors.New("announcement not found")
	ErrTagNotFound          = errors.New("tag not found")
	ErrTagAlreadyExists     = errors.New("tag already exists")
)

// Payment errors
var (
	ErrPaymentNotFound = errors.New("payment not found")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidCartItem = errors.New("invalid cart item id")
)
