package database

import (
	"database/sql"
	"fmt"
	"gate-app/config"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
)

// Open connects to the application database using the configured driver.
func Open() (*gorm.DB, error) {
	return OpenDatabaseConnection(config.DBName)
}

// OpenDatabaseConnection connects to a named database on the configured
// server.
func OpenDatabaseConnection(dbName string) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch config.DBDriver {
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			config.DBHost, config.DBUser, config.DBPassword, dbName, config.DBPort)
		dialector = postgres.Open(dsn)
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			config.DBUser, config.DBPassword, config.DBHost, config.DBPort, dbName)
		dialector = mysql.Open(dsn)
	default: // mssql
		dsn := "sqlserver://" + config.DBUser + ":" + config.DBPassword + "@" +
			config.DBHost + ":" + config.DBPort + "?database=" + dbName
		dialector = sqlserver.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return nil, err
	}

	return db, nil
}

// EnsureDatabaseExists creates the database when the server does not have it
// yet. Only supported for the mssql driver, other drivers are expected to be
// provisioned up front.
func EnsureDatabaseExists(dbName string) {
	if config.DBDriver != "mssql" {
		return
	}

	dsn := "sqlserver://" + config.DBUser + ":" + config.DBPassword + "@" +
		config.DBHost + ":" + config.DBPort + "?database=master"

	sqlDB, err := sql.Open("sqlserver", dsn)
	if err != nil {
		log.Fatalf("Failed to connect to master database: %v", err)
	}
	defer sqlDB.Close()

	query := fmt.Sprintf("IF DB_ID('%s') IS NULL CREATE DATABASE [%s]", dbName, dbName)
	if _, err := sqlDB.Exec(query); err != nil {
		log.Fatalf("Failed to ensure database %s: %v", dbName, err)
	}
}
