package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
app:
  name: foodgram-go
  version: 0.1.0
  mode: debug
  port: 8000

database:
  host: localhost
  port: 5432
  user: foodgram
  password: secret
  dbname: foodgram
  sslmode: disable
  max_open_conns: 20
  max_idle_conns: 5
  conn_max_lifetime: 300

redis:
  host: localhost
  port: 6379
  db: 0
  pool_size: 10

kafka:
  brokers:
    - localhost:9092
  topics:
    recipe_index: recipe-index

elasticsearch:
  hosts:
    - localhost:9200
  index:
    recipes: recipes

jwt:
  secret: test-secret
  expire_hours: 24

log:
  level: info
  format: console
  output: stdout
`

func writeTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testConfigYAML), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeTestConfig(t))
	require.NoError(t, err)

	assert.Equal(t, "foodgram-go", cfg.App.Name)
	assert.Equal(t, 8000, cfg.App.Port)
	assert.Equal(t, "recipe-index", cfg.Kafka.Topics["recipe_index"])
	assert.Equal(t, []string{"localhost:9200"}, cfg.Elasticsearch.Hosts)
	assert.Equal(t, 24*time.Hour, cfg.JWT.ExpireDuration())

	// Load 之后全局访问器可用
	assert.Equal(t, cfg, Get())
	assert.Equal(t, "foodgram", GetDatabase().DBName)
}

func TestDatabaseDSN(t *testing.T) {
	d := DatabaseConfig{
		Host: "db", Port: 5432, User: "u", Password: "p", DBName: "food", SSLMode: "disable",
	}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=food sslmode=disable", d.DSN())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
