package config

type App struct {
	Port          string `env:"APP_PORT" default:"8080"`
	JWTSecret     string `env:"JWT_SECRET" default:"local_dev_secret"`
	DataDir       string `env:"DATA_DIR" default:"./data"`
	MockLatencyMS int    `env:"MOCK_LATENCY_MS" default:"1000"`
	Env           string `env:"APP_ENV" default:"dev"`
}
