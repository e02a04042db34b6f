package config

// Config holds all configuration for the application.
type Config struct {
	DataFile  string
	CSVDir    string
	LogLevel  string
	LogFormat string
}
