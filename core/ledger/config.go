package ledger

// Config holds configuration for the ledger store.
type Config struct {
	// Shards is the number of owner shards in the store.
	Shards int `mapstructure:"shards" default:"32"`
}
