package core

import (
	"admin_server/internal/config"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSettings = `
system:
  webAddr: 127.0.0.1:8080
  mode: release
db:
  mode: postgres
  db_name: admin
  host: db
  port: 5432
  user: admin
  password: from-file
jwt:
  expires: 60
  issuer: admin_server
  secret: file-secret
whiteList:
  - /admin_server/login
`

func TestLoadConfig(t *testing.T) {
	file := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(file, []byte(testSettings), 0o600))

	t.Setenv("ADMIN_JWT_SECRET", "env-secret")

	c, err := LoadConfig(file)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8080", c.System.WebAddr)
	assert.Equal(t, "from-file", c.DB.Password)
	assert.Equal(t, "env-secret", c.Jwt.Secret)
	assert.Equal(t, []string{"/admin_server/login"}, c.WhiteList)
	assert.False(t, c.Redis.Enable())

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestDsn(t *testing.T) {
	pg := config.DB{Mode: "postgres", Host: "h", Port: 5432, User: "u", Password: "p", DbName: "d"}
	assert.Contains(t, pg.Dsn(), "host=h user=u password=p dbname=d port=5432")

	my := config.DB{Mode: "mysql", Host: "h", Port: 3306, User: "u", Password: "p", DbName: "d"}
	assert.Equal(t, "u:p@tcp(h:3306)/d?charset=utf8mb4&parseTime=True&loc=Local", my.Dsn())

	lite := config.DB{Mode: "sqlite", DbName: "a.db"}
	assert.Equal(t, "a.db", lite.Dsn())
}

func TestOpenDBSqlite(t *testing.T) {
	db, err := OpenDB(config.DB{Mode: "sqlite", DbName: filepath.Join(t.TempDir(), "admin.db")})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()
	assert.Equal(t, 100, sqlDB.Stats().MaxOpenConnections)

	_, err = Dialector(config.DB{Mode: "oracle"})
	assert.Error(t, err)
}
