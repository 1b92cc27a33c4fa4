package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	gormlogger "gorm.io/gorm/logger"
)

func TestConfigDSN(t *testing.T) {
	cfg := Config{Host: "localhost", Port: 5432, User: "cine", Password: "pulse", DBName: "reviews"}
	assert.Equal(t, "host=localhost port=5432 user=cine password=pulse dbname=reviews sslmode=disable", cfg.DSN())

	cfg.TimeZone = "America/Sao_Paulo"
	cfg.SSLMode = "require"
	assert.Equal(t, "host=localhost port=5432 user=cine password=pulse dbname=reviews sslmode=require TimeZone=America/Sao_Paulo", cfg.DSN())
}

func TestConfigDSNPrefersURL(t *testing.T) {
	cfg := Config{URL: "postgres://u:p@db:5432/x", Host: "ignored"}
	assert.Equal(t, "postgres://u:p@db:5432/x", cfg.DSN())
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Silent, parseLogLevel("silent"))
	assert.Equal(t, gormlogger.Info, parseLogLevel("info"))
	assert.Equal(t, gormlogger.Warn, parseLogLevel(""))
}
