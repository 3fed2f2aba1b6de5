package db

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
)

var errPing = errors.New("connection refused")

func TestOpenGormWithDialector(t *testing.T) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	mock.ExpectPing()

	gdb, err := OpenGormWithDialector(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}))
	if err != nil {
		t.Fatalf("OpenGormWithDialector: %v", err)
	}

	conn, err := gdb.DB()
	if err != nil {
		t.Fatalf("DB(): %v", err)
	}
	if got := conn.Stats().MaxOpenConnections; got != 30 {
		t.Fatalf("MaxOpenConnections = %d, want 30", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOpenGormWithDialectorPingFailure(t *testing.T) {
	sqlDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	mock.ExpectPing().WillReturnError(errPing)

	if _, err := OpenGormWithDialector(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	})); err == nil {
		t.Fatal("expected ping failure to propagate")
	}
}
