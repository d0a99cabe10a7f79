package storage

import (
	"fmt"
	"log/slog"

	"github.com/dhis2-sre/pick-a-date/pkg/config"
	"github.com/dhis2-sre/pick-a-date/pkg/model"
	slogGorm "github.com/orandin/slog-gorm"
	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDatabase(logger *slog.Logger, c config.Postgresql) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable", c.Host, c.Username, c.Password, c.DatabaseName, c.Port)

	databaseConfig := gorm.Config{
		Logger:         slogGorm.New(slogGorm.WithHandler(logger.Handler())),
		TranslateError: true,
	}

	db, err := gorm.Open(postgres.Open(dsn), &databaseConfig)
	if err != nil {
		return nil, err
	}

	if err := db.Use(otelgorm.NewPlugin()); err != nil {
		return nil, fmt.Errorf("failed to register tracing plugin: %v", err)
	}

	err = db.AutoMigrate(
		&model.Account{},
		&model.Event{},
		&model.EventAddress{},
		&model.AccessToken{},
		&model.Participant{},
		&model.Availability{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}
