package types

const (
	StoreDriverMemory   = "memory"
	StoreDriverPostgres = "postgres"
	StoreDriverMongo    = "mongo"
)

type Config struct {
	Environment     string `envconfig:"ENVIRONMENT" default:"development"`
	ServerPort      uint   `envconfig:"SERVER_PORT" default:"3000" validate:"gt=0,lt=65536"`
	ReadTimeoutSec  uint   `envconfig:"READ_TIMEOUT_SEC" default:"10"`
	WriteTimeoutSec uint   `envconfig:"WRITE_TIMEOUT_SEC" default:"15"`

	// Storage
	StoreDriver   string `envconfig:"STORE_DRIVER" default:"mongo" validate:"oneof=memory postgres mongo"`
	DatabaseURL   string `envconfig:"DATABASE_URL" validate:"required_if=StoreDriver postgres"`
	MongoURI      string `envconfig:"MONGO_URI" default:"mongodb://127.0.0.1:27017" validate:"required_if=StoreDriver mongo"`
	MongoDatabase string `envconfig:"MONGO_DATABASE" default:"careconnect" validate:"required_if=StoreDriver mongo"`

	// HTTP surface
	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS" default:"*"`
	RateLimitRPS   float64  `envconfig:"RATE_LIMIT_RPS" default:"5" validate:"gt=0"`
	RateLimitBurst int      `envconfig:"RATE_LIMIT_BURST" default:"10" validate:"gt=0"`

	// Logging
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json" validate:"oneof=json text"`
}
