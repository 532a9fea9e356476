package toml

import (
	"fmt"
	"time"

	"github.com/bnema/humanos-cli/internal/domain"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Version       int                 `toml:"version"`
	Notifications notificationsSchema `toml:"notifications"`
	API           apiSchema           `toml:"api,omitempty"`
	UpdatedAt     time.Time           `toml:"updated_at"`
}

type notificationsSchema struct {
	Permission string `toml:"permission"`
}

type apiSchema struct {
	URL          string `toml:"url,omitempty"`
	PollInterval string `toml:"poll_interval,omitempty"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
	if s.Notifications.Permission == "" {
		s.Notifications.Permission = string(domain.PermissionDefault)
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported preferences schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

func toSchema(prefs domain.Preferences) fileSchema {
	file := fileSchema{
		Version:       currentSchemaVersion,
		Notifications: notificationsSchema{Permission: string(prefs.NotificationPermission)},
		API:           apiSchema{URL: prefs.APIURL},
		UpdatedAt:     prefs.UpdatedAt.UTC(),
	}
	if prefs.PollInterval > 0 {
		file.API.PollInterval = prefs.PollInterval.String()
	}
	file.applyDefaults()
	return file
}

func fromSchema(file fileSchema) (domain.Preferences, error) {
	permission, err := domain.ParseNotificationPermission(file.Notifications.Permission)
	if err != nil {
		return domain.Preferences{}, fmt.Errorf("decode notification permission: %w", err)
	}

	prefs := domain.Preferences{
		NotificationPermission: permission,
		APIURL:                 file.API.URL,
		UpdatedAt:              file.UpdatedAt,
	}
	if file.API.PollInterval != "" {
		interval, err := time.ParseDuration(file.API.PollInterval)
		if err != nil {
			return domain.Preferences{}, fmt.Errorf("decode poll interval: %w", err)
		}
		prefs.PollInterval = interval
	}

	return prefs, nil
}
