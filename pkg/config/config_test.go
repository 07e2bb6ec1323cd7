package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, DriverSQLite, cfg.Store.Driver)
	assert.Equal(t, "0.0.0.0:4000", cfg.HTTP.Addr())
	assert.Equal(t, 10*time.Second, cfg.Client.Timeout)
	assert.Equal(t, "postgres://postgres:@localhost:5432/pesaje?sslmode=disable", cfg.DB.ConnectionString())
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("STORE_DRIVER", "Badger")
	v.Set("HTTP_PORT", "8081")
	v.Set("DB_PASSWORD", "p@ss:word")
	v.Set("DATABASE_URL", "")
	v.Set("STORE_TIMEOUT_SECONDS", 3)

	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, DriverBadger, cfg.Store.Driver)
	assert.Equal(t, 8081, cfg.HTTP.Port)
	assert.Equal(t, 3*time.Second, cfg.Client.Timeout)
	assert.Contains(t, cfg.DB.DSN(), "p%40ss%3Aword", "la contraseña se codifica en la URL")
}

func TestFromViper_DatabaseURLWins(t *testing.T) {
	v := viper.New()
	v.Set("DATABASE_URL", "postgresql://u:p@db:5432/x?sslmode=require")
	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "postgresql://u:p@db:5432/x?sslmode=require", cfg.DB.ConnectionString())
}

func TestFromViper_Invalid(t *testing.T) {
	v := viper.New()
	v.Set("STORE_DRIVER", "mongo")
	_, err := fromViper(v)
	assert.Error(t, err)

	v = viper.New()
	v.Set("STORE_TIMEOUT_SECONDS", "0")
	_, err = fromViper(v)
	assert.Error(t, err)
}
