package db

import (
	"fmt"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"todoapp/internal/config"
)

func ConnectDB(conf *config.Config) (*sqlx.DB, error) {
	if conf.DbDriver == config.DriverSQLite {
		return ConnectSQLite(conf.SqlitePath)
	}

	params := conf.DbParams
	if params == "" {
		params = "parseTime=true&multiStatements=true"
	}

	dsn := fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?%s",
		conf.DbUser,
		conf.DbPassword,
		conf.DbHost,
		conf.DbPort,
		conf.DbName,
		params,
	)

	db, err := sqlx.Connect(config.DriverMySQL, dsn)
	if err != nil {
		return nil, err
	}

	return db, nil
}

// ConnectSQLite opens a SQLite database with foreign keys enforced. The pool
// is capped at one connection so in-memory databases stay shared and writers
// never contend for the file lock.
func ConnectSQLite(path string) (*sqlx.DB, error) {
	db, err := sqlx.Connect(config.DriverSQLite, sqliteDSN(path))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	return db, nil
}

func sqliteDSN(path string) string {
	if path == "" {
		path = "tasks.db"
	}
	if !strings.HasPrefix(path, "file:") {
		path = "file:" + path
	}
	separator := "?"
	if strings.Contains(path, "?") {
		separator = "&"
	}
	return path + separator + "_foreign_keys=on&_busy_timeout=5000"
}
