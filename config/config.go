package config

import "github.com/caarlos0/env/v6"

type Config struct {
    Server struct {
        // Port the API listens on
        Port string `env:"PORT" envDefault:"5250"`

        // Origins allowed by the CORS middleware
        AllowedOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`
    }

    Database struct {
        // Path to the sqlite database file
        Path string `env:"DATABASE_PATH" envDefault:"database/inmolista.db"`
    }

    Auth struct {
        // HS256 key shared with the external login service
        SigningKey string `env:"JWT_KEY"`
    }

    Redis struct {
        // Redis address; the listing cache is disabled when empty
        Addr string `env:"REDIS_ADDR"`

        Password string `env:"REDIS_PASSWORD"`

        // Cache TTL for the listing collection (in seconds)
        TTL int `env:"REDIS_CACHE_TTL" envDefault:"300"`
    }

    Uploads struct {
        // Directory uploaded images are written to
        Dir string `env:"UPLOADS_DIR" envDefault:"uploads"`

        // Public base path the directory is served under
        BaseURL string `env:"UPLOADS_BASE_URL" envDefault:"/uploads"`
    }
}

func LoadConfig() (*Config, error) {
    cfg := &Config{}
    if err := env.Parse(cfg); err != nil {
        return nil, err
    }
    return cfg, nil
}
