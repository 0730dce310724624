package mock

import (
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	once sync.Once
	db   *Db
)

// Db wraps the shared in-memory database used by the BDD suite.
type Db struct {
	DbConn *gorm.DB
	models []any
}

// NewDb opens the shared in-memory database and migrates the schema once.
// The single-connection pool keeps the shared cache alive for the whole run.
func NewDb(models []any) *Db {
	once.Do(func() {
		conn, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err != nil {
			panic("failed to connect to database: " + err.Error())
		}

		sqlDB, err := conn.DB()
		if err != nil {
			panic(err)
		}
		sqlDB.SetMaxOpenConns(1)

		if err := conn.AutoMigrate(models...); err != nil {
			panic("failed to migrate database: " + err.Error())
		}

		db = &Db{DbConn: conn, models: models}
	})
	return db
}

// ClearDB removes all rows between scenarios. Tables are cleared in reverse
// migration order so child rows go before their parents.
func (d *Db) ClearDB() error {
	for i := len(d.models) - 1; i >= 0; i-- {
		stmt := &gorm.Statement{DB: d.DbConn}
		if err := stmt.Parse(d.models[i]); err != nil {
			return err
		}
		if err := d.DbConn.Exec(fmt.Sprintf("DELETE FROM %s", stmt.Schema.Table)).Error; err != nil {
			return err
		}
	}
	return nil
}

// Count returns the number of rows in a table.
func (d *Db) Count(table string) (int64, error) {
	var count int64
	err := d.DbConn.Table(table).Count(&count).Error
	return count, err
}
