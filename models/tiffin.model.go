package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Food type tags as entered by providers
const (
	FoodVeg    = "Veg"
	FoodNonVeg = "Non-Veg"
	FoodBoth   = "Both"
)

// Tiffin is a meal-delivery listing owned by a provider user.
type Tiffin struct {
	gorm.Model
	ProviderID        uint           `gorm:"not null;index" json:"providerId"`
	Name              string         `gorm:"not null" json:"name"`
	Phone             string         `gorm:"default:''" json:"phone"`
	Location          string         `gorm:"default:''" json:"location"`
	DeliveryLocations datatypes.JSON `gorm:"type:json" json:"deliveryLocations"` // JSON array of area names
	FoodType          string         `gorm:"default:'Veg'" json:"foodType"`      // Veg, Non-Veg, Both
	TimingMorning     string         `gorm:"default:''" json:"timingMorning"`
	TimingNight       string         `gorm:"default:''" json:"timingNight"`
	PriceMonthly      float64        `gorm:"default:0" json:"priceMonthly"`
	PriceDaily        float64        `gorm:"default:0" json:"priceDaily"`
	PricePerTiffin    float64        `gorm:"default:0" json:"pricePerTiffin"`
	ImageUrls         datatypes.JSON `gorm:"type:json" json:"imageUrls"` // JSON array of up to 3 URLs
	IsDeleted         bool           `gorm:"default:false" json:"-"`
}
