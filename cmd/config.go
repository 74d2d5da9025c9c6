package cmd

import (
	"fmt"
	"time"
)

// Config carries everything the application needs at startup. Values come
// from the environment; see getConfigs in cmd/app.
type Config struct {
	HTTPPort             string
	DBHost               string
	DBPort               string
	DBUser               string
	DBPassword           string
	DBName               string
	DBSslMode            string
	GeoBaseURL           string
	GeoAPIKey            string
	ShopAddress          string
	DeliveryRadiusMeters int
	PaymentSweepSpec     string
	DeliverySweepSpec    string
	PaymentTimeout       time.Duration
	DeliveryTimeout      time.Duration
}

// DSN builds the postgres connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
