package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config agrupa la configuración de runtime leída de variables de entorno.
type Config struct {
	Port string `env:"PORT, default=8080"`

	// DatabaseURL vacío => repos in-memory (modo dev).
	DatabaseURL string `env:"DB_DSN"`

	LogLevel  string `env:"LOG_LEVEL, default=info"`
	LogPretty bool   `env:"LOG_PRETTY, default=false"`

	CORSOrigins []string `env:"CORS_ALLOWED_ORIGINS, default=*"`

	JWTSecret     string `env:"JWT_SECRET, default=dev-secret-cambiar"`
	JWTIssuer     string `env:"JWT_ISSUER, default=gym-management"`
	JWTTTLMinutes int    `env:"JWT_TTL_MINUTES, default=60"`
}

func Load(ctx context.Context) (Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Addr() string {
	return ":" + c.Port
}

func (c Config) JWTTTL() time.Duration {
	return time.Duration(c.JWTTTLMinutes) * time.Minute
}
