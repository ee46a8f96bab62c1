package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with snake_case JSON names.
type StructuredJSONConfig struct {
	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		MaxBodyBytes   int64    `json:"max_body_bytes"`
		Debug          bool     `json:"debug"`
	} `json:"server,omitempty"`

	Auth struct {
		Header            string `json:"header"`
		Token             string `json:"token"`
		TokenSignKey      string `json:"token_sign_key"`
		TokenIssuer       string `json:"token_issuer"`
		BasicUser         string `json:"basic_user"`
		BasicPasswordHash string `json:"basic_password_hash"`
	} `json:"auth,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	App struct {
		Title       string            `json:"title"`
		Version     string            `json:"version"`
		Description string            `json:"description"`
		Settings    map[string]string `json:"settings"`
	} `json:"app,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			MaxBodyBytes:   jsonCfg.Server.MaxBodyBytes,
			Debug:          jsonCfg.Server.Debug,
		},
		Auth: Auth{
			Header:            jsonCfg.Auth.Header,
			Token:             jsonCfg.Auth.Token,
			TokenSignKey:      jsonCfg.Auth.TokenSignKey,
			TokenIssuer:       jsonCfg.Auth.TokenIssuer,
			BasicUser:         jsonCfg.Auth.BasicUser,
			BasicPasswordHash: jsonCfg.Auth.BasicPasswordHash,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		App: App{
			Title:       jsonCfg.App.Title,
			Version:     jsonCfg.App.Version,
			Description: jsonCfg.App.Description,
			Settings:    jsonCfg.App.Settings,
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
