package env

import "strings"

// BackupEnvironment configures the cron-driven pg_dump routine. Leaving the
// schedule empty disables backups entirely.
type BackupEnvironment struct {
	Schedule string `validate:"omitempty"`
	Dir      string `validate:"required_with=Schedule"`
}

func (e BackupEnvironment) IsEnabled() bool {
	return strings.TrimSpace(e.Schedule) != ""
}
