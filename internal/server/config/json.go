package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/groovestream/users/internal/flagx"
)

// JsonConfig is the DTO for the optional JSON config file. Durations are
// strings in time.ParseDuration format ("168h").
type JsonConfig struct {
	EndpointAddr  string `json:"endpoint_addr"`
	DatabaseDSN   string `json:"database_dsn"`
	MongoDBName   string `json:"mongo_db_name"`
	SecretKey     string `json:"secret_key"`
	TokenValidity string `json:"token_validity"`
	BcryptCost    int    `json:"bcrypt_cost"`
}

// parseJson overlays values from the JSON file named by the -c/-config
// flags, if any. Absent fields keep their current values. Unreadable files
// or invalid JSON panic, as a broken config file should not boot the server.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.MongoDBName != "" {
		config.MongoDBName = c.MongoDBName
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.TokenValidity != "" {
		d, err := time.ParseDuration(c.TokenValidity)
		if err != nil {
			panic(err)
		}
		config.TokenValidity = d
	}
	if c.BcryptCost != 0 {
		config.BcryptCost = c.BcryptCost
	}
}
