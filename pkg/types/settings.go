package types

// Storage backend names carried in StorageSettings.
const (
	StorageTypeSQLite   = "sqlite"
	StorageTypeDocument = "document"
	StorageTypeCloud    = "cloud"
)

// RecentFoldersLimit bounds the recent-locations list.
const RecentFoldersLimit = 10

// Backup interval bounds in hours.
const (
	MinBackupIntervalHours = 1
	MaxBackupIntervalHours = 168
)

// knownStorageTypes is the set of accepted storageType values. Cloud is
// accepted for forward compatibility but has no backend yet.
var knownStorageTypes = map[string]bool{
	StorageTypeSQLite:   true,
	StorageTypeDocument: true,
	StorageTypeCloud:    true,
}

// StorageSettings is the single JSON settings document, read at startup
// and written wholesale on any change. DatabasePath, when set, overrides
// the default application-data location.
type StorageSettings struct {
	StorageType    string `json:"storageType"`
	AutoBackup     bool   `json:"autoBackup"`
	BackupInterval int    `json:"backupInterval"`
	DatabasePath   string `json:"databasePath,omitempty"`
}

// DefaultStorageSettings returns the settings a first run starts from.
func DefaultStorageSettings() *StorageSettings {
	return &StorageSettings{
		StorageType:    StorageTypeSQLite,
		AutoBackup:     true,
		BackupInterval: 24,
	}
}

// Validate checks that the settings document is well-formed.
func (s *StorageSettings) Validate() error {
	if !knownStorageTypes[s.StorageType] {
		return ErrInvalidArgument
	}
	if s.AutoBackup {
		if s.BackupInterval < MinBackupIntervalHours || s.BackupInterval > MaxBackupIntervalHours {
			return ErrInvalidArgument
		}
	}
	return nil
}
