package config

import "time"

// Database and Performance Constants
const (
	DefaultQueryTimeout  = 30 * time.Second
	AggregateTimeout     = 15 * time.Second
	SchemaTimeout        = 2 * time.Minute
	UploadTimeout        = 60 * time.Second
	CommandTimeout       = 45 * time.Second
	NetworkDialTimeout   = 5 * time.Second
	ConnectRetries       = 3
	ConnectRetryInterval = time.Second
)

// Matchmaking defaults, overridable in the [matchmaking] config section
const (
	DefaultForwardLimit     = 50
	DefaultReverseLimit     = 30
	DefaultInsightLimit     = 10
	DefaultCatalogCacheSize = 4096
)

// User search
const (
	UserSearchSuggestions = 5
)

// Export
const (
	ExportContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ExportDateFormat  = "2006-01-02"
)
