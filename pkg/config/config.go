package config

import (
	"time"

	"github.com/shopspring/decimal"
)

// DB holds database connection settings.
type DB struct {
	Url string `envconfig:"URL"`
}

// Jwt holds session-token settings.
type Jwt struct {
	Secret string        `envconfig:"SECRET" required:"true"`
	Expiry time.Duration `envconfig:"EXPIRY" default:"24h"`
}

// Server holds HTTP listener settings.
type Server struct {
	Host string `envconfig:"HOST" default:"127.0.0.1"`
	Port int    `envconfig:"PORT" default:"3000"`
}

// Quote holds settings for the external quote provider. The API key is
// required: the process refuses to start without it.
type Quote struct {
	ApiUrl      string        `envconfig:"API_URL" default:"https://cloud.iexapis.com/stable"`
	ApiKey      string        `envconfig:"API_KEY" required:"true"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"5s"`
	CacheTTL    time.Duration `envconfig:"CACHE_TTL" default:"1m"`
}

// Trading holds business defaults.
type Trading struct {
	StartingCash decimal.Decimal `envconfig:"STARTING_CASH" default:"10000.00"`
}

// RateLimit holds request throttling settings.
type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

// App is the process-wide configuration, loaded once at startup.
type App struct {
	Env       string    `envconfig:"APP_ENV" default:"development"`
	Server    Server    `envconfig:"SERVER"`
	DB        DB        `envconfig:"DATABASE"`
	Jwt       Jwt       `envconfig:"JWT"`
	Quote     Quote     `envconfig:"QUOTE"`
	Trading   Trading   `envconfig:"TRADING"`
	RateLimit RateLimit `envconfig:"RATE_LIMIT"`
}
