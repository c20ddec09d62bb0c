package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	t.Run("EncodesPassword", func(t *testing.T) {
		dsn := DSN(Config{Host: "db", Port: 3306, User: "sync", Password: "p@ss:w/rd", Name: "content_sync", TimeoutSeconds: 5})
		assert.Equal(t,
			"sync:p%40ss%3Aw%2Frd@tcp(db:3306)/content_sync?charset=utf8mb4&parseTime=True&loc=UTC&timeout=5s&readTimeout=5s&writeTimeout=5s",
			dsn)
	})

	t.Run("DefaultTimeout", func(t *testing.T) {
		dsn := DSN(Config{Host: "localhost", Port: 3306, User: "root", Name: "x"})
		assert.Contains(t, dsn, "timeout=30s")
	})
}

func TestConnect(t *testing.T) {
	t.Run("Invalid Connection", func(t *testing.T) {
		cfg := Config{
			Host:           "localhost",
			Port:           9999, // Unused port
			User:           "root",
			Password:       "wrongpassword",
			Name:           "content_sync",
			TimeoutSeconds: 1,
		}

		// Connect should fail (timeout or refused)
		db, err := Connect(cfg)
		assert.Error(t, err)
		assert.Nil(t, db)
	})
}
