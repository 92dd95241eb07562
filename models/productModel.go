package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	AvailabilityAvailable    = "AVAILABLE"
	AvailabilityComingSoon   = "COMING_SOON"
	AvailabilityOutOfStock   = "OUT_OF_STOCK"
	AvailabilityDiscontinued = "DISCONTINUED"
)

type ProductImage struct {
	gorm.Model
	Url       string `json:"url" binding:"required"`
	ProductID uint   `json:"productId" binding:"required"`
}

type Product struct {
	gorm.Model
	Name               string         `json:"name" binding:"required"`
	Slug               string         `json:"slug" gorm:"uniqueIndex;size:191"`
	Description        string         `json:"description" binding:"required"`
	Pricing            float64        `json:"pricing" binding:"required"`
	Category           string         `json:"category"`
	StockQuantity      int            `json:"stockQuantity"`
	AvailabilityStatus string         `json:"availabilityStatus"`
	Features           datatypes.JSON `json:"features"`
	Specifications     datatypes.JSON `json:"specifications"`
	Discount           float64        `json:"discount"`
	CollectionID       *uint          `json:"collectionId"`
	Images             []ProductImage `json:"images" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}
