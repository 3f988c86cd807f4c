package config

import "testing"

func validConfig() *Config {
	return &Config{
		MCWeight:            0.6,
		TextWeight:          0.4,
		SecondaryThreshold:  0.7,
		MaxSecondary:        2,
		AnalyzerTimeoutSecs: 300,
	}
}

func TestValidate(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	t.Run("fusion weights must sum to 1", func(t *testing.T) {
		cfg := validConfig()
		cfg.TextWeight = 0.5
		if err := cfg.Validate(); err == nil {
			t.Fatalf("expected error for weights summing to 1.1")
		}
	})

	t.Run("negative weight rejected", func(t *testing.T) {
		cfg := validConfig()
		cfg.MCWeight = -0.2
		cfg.TextWeight = 1.2
		if err := cfg.Validate(); err == nil {
			t.Fatalf("expected error for negative weight")
		}
	})

	t.Run("threshold bounds", func(t *testing.T) {
		cfg := validConfig()
		cfg.SecondaryThreshold = 1.5
		if err := cfg.Validate(); err == nil {
			t.Fatalf("expected error for threshold > 1")
		}
	})

	t.Run("timeout must be positive", func(t *testing.T) {
		cfg := validConfig()
		cfg.AnalyzerTimeoutSecs = 0
		if err := cfg.Validate(); err == nil {
			t.Fatalf("expected error for zero timeout")
		}
	})
}
