package config

// DB holds the settings database configuration.
type DB struct {
	Engine   string `validate:"oneof=sqlite mysql postgres"` // sqlite, mysql or postgres
	Path     string `validate:"required_if=Engine sqlite"`   // sqlite database file
	Extras   string // mysql query string or postgres key=value pairs
	Host     string `validate:"required_unless=Engine sqlite"`
	Port     int
	User     string
	Password string
	Name     string
}
