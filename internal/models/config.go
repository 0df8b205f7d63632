package models

import (
	"path"
	"time"

	"github.com/kardianos/osext"
)

// AppConfig is the application's main configuration structure
// Every value can be overridden by the environment variable named in its env tag
type AppConfig struct {
	// The IP address to listen at - including the port number
	ListenAddress string `json:"listenAddress" env:"EVENTDESK_LISTEN_ADDRESS"`
	// The directory static files like event images are served from - defaults to the /ui subdirectory of the folder
	// the executable resides in
	UIDir string `json:"uiDir" env:"EVENTDESK_UI_DIR"`
	// Minutes a session (and the events created in it) survives without being used
	SessionExpiry uint `json:"sessionExpiry" env:"EVENTDESK_SESSION_EXPIRY"`
	// Log settings
	Log LogConfig `json:"log"`
}

// LogConfig configures the application's logger
type LogConfig struct {
	// One of the logrus level names (debug, info, warn, error, ...)
	Level string `json:"level" env:"EVENTDESK_LOG_LEVEL"`
	// "text" or "json"
	Format string `json:"format" env:"EVENTDESK_LOG_FORMAT"`
}

// DefaultSessionExpiry is used when no positive session expiry has been configured
const DefaultSessionExpiry = 60

// SessionTTL returns how long a session survives without being used
func (c AppConfig) SessionTTL() time.Duration {
	minutes := c.SessionExpiry
	if minutes == 0 {
		minutes = DefaultSessionExpiry
	}
	return time.Duration(minutes) * time.Minute
}

// GetDefaultConfig returns the default configuration values for the application
func GetDefaultConfig() (*AppConfig, error) {
	execDir, err := osext.ExecutableFolder()
	if err != nil {
		return nil, err
	}
	return &AppConfig{
		ListenAddress: ":3000",
		UIDir:         path.Join(execDir, "ui"),
		SessionExpiry: DefaultSessionExpiry,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}, nil
}
