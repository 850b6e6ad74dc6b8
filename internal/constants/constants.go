package constants

const (
	AppName           = "medpet"
	DefaultConfigPath = "~/.config/medpet/medpet.json"
	Version           = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Slot arithmetic
	HoursPerDay    = 24
	MaxSlotsPerDay = 24

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "medpet-"

	// Assistant constants
	DefaultKeyringUser = "assistant-api-key"
	APIKeyEnvVar       = "MEDPET_API_KEY"
)
