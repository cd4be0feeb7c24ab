package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the optional JSON config file.
type StructuredJSONConfig struct {
	App struct {
		ValidationTTL Duration `json:"validation_ttl"`
		Locale        string   `json:"locale"`
	} `json:"app,omitempty"`

	Storage struct {
		Backend string `json:"backend"`
		Path    string `json:"path"`
		Key     string `json:"key"`
	} `json:"storage,omitempty"`

	Log struct {
		Path string `json:"path"`
	} `json:"log,omitempty"`
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
		App: App{
			ValidationTTL: time.Duration(jsonCfg.App.ValidationTTL),
			Locale:        jsonCfg.App.Locale,
		},
		Storage: Storage{
			Backend: jsonCfg.Storage.Backend,
			Path:    jsonCfg.Storage.Path,
			Key:     jsonCfg.Storage.Key,
		},
		Log: Log{
			Path: jsonCfg.Log.Path,
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
