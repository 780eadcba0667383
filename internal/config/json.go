package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/authdesk/authdesk/internal/flagx"
	"github.com/authdesk/authdesk/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the submit delay either as a string
// like "800ms" or as integer nanoseconds. After parsing, values are copied
// into the runtime Config (which uses time.Duration).
type JsonConfig struct {
	DatabaseDSN string         `json:"database_dsn"`
	SubmitDelay timex.Duration `json:"submit_delay"`
	LogLevel    string         `json:"log_level"`
}

// parseJson overlays Config with values loaded from a JSON file selected via
// the -c/-config flags. When no file is given the function is a no-op.
// Read or unmarshal errors panic; the caller may recover if desired.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.SubmitDelay.Duration != 0 {
		cfg.SubmitDelay = time.Duration(jc.SubmitDelay.Duration)
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
