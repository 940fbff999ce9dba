package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

var (
	MYSQL_DSN          = ""          // MySQL will be used if this is set
	SQLITE_FILE        = "fusion.db" // Embedded SQLite database, used when MYSQL_DSN is not configured
	BIND_ADDRESS       = "0.0.0.0:8080"
	TLS_DOMAINS        = "" // e.g. "example.com,example2.com"
	TMP_DIR            = "/tmp"
	DEFAULT_BUCKET_DIR = "uploads" // Used for creating the initial storage bucket
	DEBUG_MODE         = true
)

func init() {
	// Optional .env file for local development
	_ = godotenv.Load()

	readEnvString("MYSQL_DSN", &MYSQL_DSN)
	readEnvString("SQLITE_FILE", &SQLITE_FILE)
	readEnvString("BIND_ADDRESS", &BIND_ADDRESS)
	readEnvString("TLS_DOMAINS", &TLS_DOMAINS)
	readEnvString("TMP_DIR", &TMP_DIR)
	readEnvString("DEFAULT_BUCKET_DIR", &DEFAULT_BUCKET_DIR)
	readEnvBool("DEBUG_MODE", &DEBUG_MODE)
}

func readEnvString(name string, value *string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	*value = v
}

func readEnvBool(name string, value *bool) {
	v := strings.ToLower(os.Getenv(name))
	if v == "true" || v == "1" || v == "yes" || v == "on" {
		*value = true
	} else if v == "false" || v == "0" || v == "no" || v == "off" {
		*value = false
	}
}
