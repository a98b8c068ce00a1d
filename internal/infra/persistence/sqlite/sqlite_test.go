package sqlite

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"meuapp/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens a private in-memory database that lives as long as the test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	cfg := &config.Config{
		Database: &config.DatabaseConfig{
			Path:         "file:" + name + "?mode=memory&cache=shared&_busy_timeout=5000",
			MaxOpenConns: 1,
		},
	}

	db, err := Open(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

func TestBuildDSN(t *testing.T) {
	assert.Equal(t, "site.db?"+defaultDSNOptions, buildDSN("site.db"))
	assert.Equal(t, "file:x?mode=memory", buildDSN("file:x?mode=memory"))
}

func TestOpen_RequiresPath(t *testing.T) {
	_, err := Open(&config.Config{Database: &config.DatabaseConfig{}}, nil)
	assert.Error(t, err)

	_, err = Open(&config.Config{}, nil)
	assert.Error(t, err)
}

func TestOpen_MigratesSchema(t *testing.T) {
	db := newTestDB(t)

	assert.True(t, db.Migrator().HasTable("credentials"))
	assert.True(t, db.Migrator().HasTable("sessions"))
	assert.True(t, db.Migrator().HasIndex("credentials", "idx_credentials_email"))
	assert.True(t, db.Migrator().HasIndex("sessions", "idx_sessions_token_hash"))
}

func TestGormSlogLogger_ParamsFilter(t *testing.T) {
	l := newGormSlogLogger(nil, nil).(*gormSlogLogger)

	sql, params := l.ParamsFilter(t.Context(), "INSERT INTO credentials (email,password_hash) VALUES (?,?)", "a@example.com", "$2a$10$hash")
	assert.Equal(t, "INSERT INTO credentials (email,password_hash) VALUES (?,?)", sql)
	assert.Nil(t, params)
}
