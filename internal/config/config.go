// Package config handles configuration for the storefront client, including
// defaults, .env/environment overlay, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the EaseShop storefront.
//
// Fields:
//   - StorePath: path of the local SQLite store file ("" or ":memory:" keeps
//     everything in memory for the session).
//   - SecretKey: HMAC secret signing the session token (HS256). Do not ship
//     the development default.
//   - SessionTTL: how long a login stays valid without extension.
//   - ResetTokenTTL: validity window of a password reset token.
//   - TaxAmount: flat tax added to every order, in rupees.
//   - ShippingFee: shipping charge applied below the free threshold.
//   - FreeShippingThreshold: subtotal strictly above which shipping is free.
//   - DeliveryDays: days added to the order date for the delivery estimate.
type Config struct {
	StorePath             string
	SecretKey             string
	SessionTTL            time.Duration
	ResetTokenTTL         time.Duration
	TaxAmount             int
	ShippingFee           int
	FreeShippingThreshold int
	DeliveryDays          int
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.StorePath = "easeshop.db"
	c.SecretKey = "secretKey"
	c.SessionTTL = 24 * time.Hour
	c.ResetTokenTTL = 15 * time.Minute
	c.TaxAmount = 50
	c.ShippingFee = 100
	c.FreeShippingThreshold = 1000
	c.DeliveryDays = 5
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from the environment (including an optional .env file), an optional JSON
// file, and finally command-line flags. Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
