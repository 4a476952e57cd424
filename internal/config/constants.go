package config

const (
	// DefaultDatabasePath is the default path of the sqlite database file.
	DefaultDatabasePath = "./pronunciation.db"

	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)
