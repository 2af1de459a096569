package repo

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// newTestDB поднимает отдельную in-memory SQLite (modernc.org/sqlite) на каждый тест
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}, &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite (modernc): %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestIsPostgresDSN(t *testing.T) {
	cases := map[string]bool{
		"postgres://u:p@localhost:5432/food":         true,
		"postgresql://localhost/food":                true,
		"host=localhost user=u dbname=food sslmode=x": true,
		"foodtracker.db":                             false,
		"file::memory:?cache=shared":                 false,
	}
	for dsn, want := range cases {
		if got := isPostgresDSN(dsn); got != want {
			t.Errorf("isPostgresDSN(%q) = %v, want %v", dsn, got, want)
		}
	}
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := newTestDB(t)
	for _, table := range []string{"users", "food", "addfood", "notes"} {
		if !db.Migrator().HasTable(table) {
			t.Fatalf("table %s must exist after migration", table)
		}
	}
	if !db.Migrator().HasIndex("addfood", "idx_addfood_user_id") {
		t.Fatalf("addfood must have an index on user_id")
	}
}

type recordingWriter struct {
	lines []string
}

func (w *recordingWriter) Printf(format string, args ...interface{}) {
	w.lines = append(w.lines, fmt.Sprintf(format, args...))
}

// Промах по id не должен попадать в лог как ошибка
func TestGormLogger_IgnoresRecordNotFound(t *testing.T) {
	w := &recordingWriter{}
	db := newTestDB(t).Session(&gorm.Session{Logger: newGormLogger(w)})

	users := NewUserRepository(db)
	_, err := users.GetByID(context.Background(), uuid.NewString())
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Empty(t, w.lines)

	// настоящая ошибка SQL по-прежнему пишется
	require.Error(t, db.Exec("SELECT * FROM no_such_table").Error)
	assert.NotEmpty(t, w.lines)
}
