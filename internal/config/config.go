package config

import (
	"fmt"
	"math"

	"github.com/caarlos0/env/v10"
)

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort            string  `env:"HTTP_PORT" envDefault:"8080"`
	AnalyzerBaseURL     string  `env:"ANALYZER_BASE_URL" envDefault:"https://api.openai.com/v1"`
	AnalyzerAPIKey      string  `env:"ANALYZER_API_KEY,required"`
	AnalyzerModel       string  `env:"ANALYZER_MODEL" envDefault:"gpt-5.1"`
	AnalyzerTimeoutSecs int     `env:"ANALYZER_TIMEOUT_SECONDS" envDefault:"300"`
	MCWeight            float64 `env:"FUSION_MC_WEIGHT" envDefault:"0.6"`
	TextWeight          float64 `env:"FUSION_TEXT_WEIGHT" envDefault:"0.4"`
	SecondaryThreshold  float64 `env:"SECONDARY_THRESHOLD" envDefault:"0.7"`
	MaxSecondary        int     `env:"MAX_SECONDARY" envDefault:"2"`
	CacheSize           int     `env:"ANALYSIS_CACHE_SIZE" envDefault:"1024"`
	CacheTTLMinutes     int     `env:"ANALYSIS_CACHE_TTL_MINUTES" envDefault:"60"`
	RedisAddr           string  `env:"REDIS_ADDR"`
	RedisPassword       string  `env:"REDIS_PASSWORD"`
	RedisDB             int     `env:"REDIS_DB" envDefault:"0"`
}

// LoadConfig carga la configuración desde variables de entorno y valida
// los invariantes que deben fallar al arrancar, no por request.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate revisa los pesos de fusion y los limites del ranking.
func (c *Config) Validate() error {
	if c.MCWeight < 0 || c.TextWeight < 0 {
		return fmt.Errorf("fusion weights must be non-negative: mc=%v text=%v", c.MCWeight, c.TextWeight)
	}
	if math.Abs(c.MCWeight+c.TextWeight-1.0) > 1e-9 {
		return fmt.Errorf("fusion weights must sum to 1.0: mc=%v text=%v", c.MCWeight, c.TextWeight)
	}
	if c.SecondaryThreshold < 0 || c.SecondaryThreshold > 1 {
		return fmt.Errorf("secondary threshold must be in [0,1]: %v", c.SecondaryThreshold)
	}
	if c.MaxSecondary < 0 {
		return fmt.Errorf("max secondary must be >= 0: %d", c.MaxSecondary)
	}
	if c.AnalyzerTimeoutSecs <= 0 {
		return fmt.Errorf("analyzer timeout must be positive: %d", c.AnalyzerTimeoutSecs)
	}
	return nil
}
