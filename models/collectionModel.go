package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Collection struct {
	gorm.Model
	Name          string         `json:"name" binding:"required" gorm:"uniqueIndex;size:191"`
	Slug          string         `json:"slug" binding:"required" gorm:"uniqueIndex;size:191"`
	Description   string         `json:"description" binding:"required"`
	BannerImage   string         `json:"bannerImage"`
	FeaturedImage string         `json:"featuredImage"`
	Highlights    datatypes.JSON `json:"highlights"`
	Tags          datatypes.JSON `json:"tags"`
	IsFeatured    bool           `json:"isFeatured"`
}
