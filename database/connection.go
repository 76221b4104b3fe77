package database

import (
	"fmt"
	"log/slog"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/ImRehmankhan/nextcodehub/metal/env"
)

type Connection struct {
	driver     *gorm.DB
	driverName string
	env        *env.Environment
}

func MakeConnection(env *env.Environment) (*Connection, error) {
	dbEnv := env.DB
	driver, err := gorm.Open(postgres.Open(dbEnv.GetDSN()), &gorm.Config{})

	if err != nil {
		return nil, err
	}

	return &Connection{
		driver:     driver,
		driverName: dbEnv.DriverName,
		env:        env,
	}, nil
}

func (c *Connection) Close() bool {
	sqlDB, err := c.driver.DB()
	if err != nil {
		slog.Error("There was an error closing the db", "error", err)

		return false
	}

	if err = sqlDB.Close(); err != nil {
		slog.Error("There was an error closing the db", "error", err)

		return false
	}

	return true
}

func (c *Connection) Ping() error {
	sqlDB, err := c.driver.DB()
	if err != nil {
		return fmt.Errorf("retrieving the db driver: %w", err)
	}

	if err = sqlDB.Ping(); err != nil {
		return fmt.Errorf("pinging the db driver: %w", err)
	}

	return nil
}

func (c *Connection) Sql() *gorm.DB {
	return c.driver
}

func (c *Connection) GetSession() *gorm.Session {
	return &gorm.Session{QueryFields: true}
}

func (c *Connection) Transaction(callback func(db *gorm.DB) error) error {
	return c.driver.Transaction(callback)
}
