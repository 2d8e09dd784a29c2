package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/easeshop/easeshop/internal/flagx"
	"github.com/easeshop/easeshop/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify lifetimes either as strings like "24h"
// or as integer nanoseconds. Pointer fields distinguish "absent" from zero.
type JsonConfig struct {
	StorePath             string          `json:"store_path"`
	SecretKey             string          `json:"secret_key"`
	SessionTTL            *timex.Duration `json:"session_ttl"`
	ResetTokenTTL         *timex.Duration `json:"reset_token_ttl"`
	TaxAmount             *int            `json:"tax_amount"`
	ShippingFee           *int            `json:"shipping_fee"`
	FreeShippingThreshold *int            `json:"free_shipping_threshold"`
	DeliveryDays          *int            `json:"delivery_days"`
}

// parseJson overlays Config with values loaded from a JSON file named by the
// -c/-config flags. If no file is named, nothing changes. Read or unmarshal
// errors panic (caller may recover).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.StorePath != "" {
		cfg.StorePath = jc.StorePath
	}
	if jc.SecretKey != "" {
		cfg.SecretKey = jc.SecretKey
	}
	if jc.SessionTTL != nil {
		cfg.SessionTTL = time.Duration(jc.SessionTTL.Duration)
	}
	if jc.ResetTokenTTL != nil {
		cfg.ResetTokenTTL = time.Duration(jc.ResetTokenTTL.Duration)
	}
	if jc.TaxAmount != nil {
		cfg.TaxAmount = *jc.TaxAmount
	}
	if jc.ShippingFee != nil {
		cfg.ShippingFee = *jc.ShippingFee
	}
	if jc.FreeShippingThreshold != nil {
		cfg.FreeShippingThreshold = *jc.FreeShippingThreshold
	}
	if jc.DeliveryDays != nil {
		cfg.DeliveryDays = *jc.DeliveryDays
	}
}
