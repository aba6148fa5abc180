package db

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/lib/pq"

	"github.com/alimx07/Social_Content_Backend/posts_service/models"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func InitDB(config models.Config) (*sql.DB, error) {
	DBpath := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName)

	DB, err := sql.Open("postgres", DBpath)
	if err != nil {
		log.Println("Failed to Connect with posts_service DB", err.Error())
		return nil, err
	}
	err = applyMigration(DB, config.DBName)
	if err != nil {
		return nil, err
	}

	// TODO:
	// Pool numbers may need tuning later
	DB.SetMaxOpenConns(15)
	DB.SetMaxIdleConns(5)

	return DB, nil
}

func applyMigration(db *sql.DB, dbname string) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		log.Println("Using same connection for migrations failed: ", err.Error())
		return err
	}
	m, err := migrate.NewWithDatabaseInstance(
		"file://posts_service/db/migrations",
		dbname,
		driver)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	// Migrations are applied in transactions in postgres
	// So in case of fail, it will run rollback
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		log.Println("Migration of database failed: ", err.Error())
		return err
	}

	log.Println("Migrations applied successfully!")
	return nil
}
