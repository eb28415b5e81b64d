package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON-friendly
// durations ("90s", "168h").
type StructuredJSONConfig struct {
	App struct {
		PasswordHashCost int      `json:"password_hash_cost"`
		TokenSignKey     string   `json:"token_sign_key"`
		TokenIssuer      string   `json:"token_issuer"`
		TokenDuration    Duration `json:"token_duration"`
		Version          string   `json:"version"`
	} `json:"app,omitempty"`

	Quota struct {
		GuestDailyLimit int `json:"guest_daily_limit"`
		UserDailyLimit  int `json:"user_daily_limit"`
	} `json:"quota,omitempty"`

	Storage struct {
		DB struct {
			DSN          string `json:"dsn"`
			MaxOpenConns int    `json:"max_open_conns"`
		} `json:"db,omitempty"`

		Blob struct {
			Bucket          string `json:"bucket"`
			Region          string `json:"region"`
			Endpoint        string `json:"endpoint"`
			AccessKeyID     string `json:"access_key_id"`
			SecretAccessKey string `json:"secret_access_key"`
			PublicBaseURL   string `json:"public_base_url"`
			UsePathStyle    bool   `json:"use_path_style"`
		} `json:"blob,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		GRPCAddress     string   `json:"grpc_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`

		TrustProxyHeaders bool `json:"trust_proxy_headers"`
	} `json:"server,omitempty"`

	Adapter struct {
		ImageBackend struct {
			BaseURL string   `json:"base_url"`
			APIKey  string   `json:"api_key"`
			Model   string   `json:"model"`
			Quality string   `json:"quality"`
			Style   string   `json:"style"`
			Timeout Duration `json:"timeout"`
		} `json:"image_backend,omitempty"`
		PersistTimeout Duration `json:"persist_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		RetryInterval  Duration `json:"retry_interval"`
		RetryWindow    Duration `json:"retry_window"`
		RetryBatchSize int      `json:"retry_batch_size"`
	} `json:"workers,omitempty"`

	Log struct {
		Level        string   `json:"level"`
		FilePath     string   `json:"file_path"`
		RotationTime Duration `json:"rotation_time"`
		MaxAge       Duration `json:"max_age"`
	} `json:"log,omitempty"`

	Telemetry struct {
		Endpoint    string `json:"endpoint"`
		ServiceName string `json:"service_name"`
	} `json:"telemetry,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var j StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&j); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			PasswordHashCost: j.App.PasswordHashCost,
			TokenSignKey:     j.App.TokenSignKey,
			TokenIssuer:      j.App.TokenIssuer,
			TokenDuration:    time.Duration(j.App.TokenDuration),
			Version:          j.App.Version,
		},
		Quota: Quota{
			GuestDailyLimit: j.Quota.GuestDailyLimit,
			UserDailyLimit:  j.Quota.UserDailyLimit,
		},
		Storage: Storage{
			DB: DB{
				DSN:          j.Storage.DB.DSN,
				MaxOpenConns: j.Storage.DB.MaxOpenConns,
			},
			Blob: Blob{
				Bucket:          j.Storage.Blob.Bucket,
				Region:          j.Storage.Blob.Region,
				Endpoint:        j.Storage.Blob.Endpoint,
				AccessKeyID:     j.Storage.Blob.AccessKeyID,
				SecretAccessKey: j.Storage.Blob.SecretAccessKey,
				PublicBaseURL:   j.Storage.Blob.PublicBaseURL,
				UsePathStyle:    j.Storage.Blob.UsePathStyle,
			},
		},
		Server: Server{
			HTTPAddress:     j.Server.HTTPAddress,
			GRPCAddress:     j.Server.GRPCAddress,
			RequestTimeout:  time.Duration(j.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(j.Server.ShutdownTimeout),

			TrustProxyHeaders: j.Server.TrustProxyHeaders,
		},
		Adapter: Adapter{
			ImageBackend: ImageBackend{
				BaseURL: j.Adapter.ImageBackend.BaseURL,
				APIKey:  j.Adapter.ImageBackend.APIKey,
				Model:   j.Adapter.ImageBackend.Model,
				Quality: j.Adapter.ImageBackend.Quality,
				Style:   j.Adapter.ImageBackend.Style,
				Timeout: time.Duration(j.Adapter.ImageBackend.Timeout),
			},
			PersistTimeout: time.Duration(j.Adapter.PersistTimeout),
		},
		Workers: Workers{
			RetryInterval:  time.Duration(j.Workers.RetryInterval),
			RetryWindow:    time.Duration(j.Workers.RetryWindow),
			RetryBatchSize: j.Workers.RetryBatchSize,
		},
		Log: Log{
			Level:        j.Log.Level,
			FilePath:     j.Log.FilePath,
			RotationTime: time.Duration(j.Log.RotationTime),
			MaxAge:       time.Duration(j.Log.MaxAge),
		},
		Telemetry: Telemetry{
			Endpoint:    j.Telemetry.Endpoint,
			ServiceName: j.Telemetry.ServiceName,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
