package config

import "time"

// defaultConfig returns the lowest-priority configuration source.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			PasswordHashCost: 10,
			TokenIssuer:      "meme-forge",
			TokenDuration:    7 * 24 * time.Hour,
			Version:          "dev",
		},
		Quota: Quota{
			GuestDailyLimit: 5,
			UserDailyLimit:  50,
		},
		Storage: Storage{
			DB: DB{MaxOpenConns: 10},
		},
		Server: Server{
			HTTPAddress:     "localhost:8080",
			RequestTimeout:  90 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Adapter: Adapter{
			ImageBackend: ImageBackend{
				BaseURL: "https://api.openai.com/v1",
				Model:   "dall-e-3",
				Quality: "standard",
				Style:   "vivid",
				Timeout: 60 * time.Second,
			},
			PersistTimeout: 20 * time.Second,
		},
		Workers: Workers{
			RetryInterval:  5 * time.Minute,
			RetryWindow:    50 * time.Minute,
			RetryBatchSize: 20,
		},
		Log: Log{
			Level:        "info",
			RotationTime: 24 * time.Hour,
			MaxAge:       7 * 24 * time.Hour,
		},
		Telemetry: Telemetry{
			ServiceName: "meme-forge",
		},
	}
}
