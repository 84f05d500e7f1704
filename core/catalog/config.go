package catalog

const (
	SourceFile     = "file"
	SourceStorage  = "storage"
	SourceDatabase = "database"
)

// Config selects where the card catalog is loaded from.
type Config struct {
	// Source is one of file, storage or database.
	Source string `mapstructure:"source" default:"file"`
	// Path is the local AtomicCards JSON file used by the file source.
	Path string `mapstructure:"path" default:"AtomicCards.json"`
	// Object is the object name used by the storage source.
	Object string `mapstructure:"object" default:"AtomicCards.json"`
	// Table is the table read by the database source.
	Table string `mapstructure:"table" default:"cards"`
}

// IsValidSource checks if the configured source is supported.
func (c Config) IsValidSource() bool {
	switch c.Source {
	case SourceFile, SourceStorage, SourceDatabase:
		return true
	default:
		return false
	}
}
