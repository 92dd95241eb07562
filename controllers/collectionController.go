package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/biscenic/biscenic-api/models"
)

type CollectionController struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewCollectionController(db *gorm.DB, logger *zap.Logger) *CollectionController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CollectionController{db: db, logger: logger}
}

func (c *CollectionController) CreateCollection(ctx *gin.Context) {
	var collection models.Collection
	if err := ctx.ShouldBindJSON(&collection); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := c.db.Create(&collection).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			respondWithError(ctx, http.StatusConflict, "A collection with this name or slug already exists", nil)
			return
		}
		respondWithError(ctx, http.StatusInternalServerError, "Failed to create collection", err)
		return
	}

	ctx.JSON(http.StatusCreated, collection)
}

func (c *CollectionController) GetCollections(ctx *gin.Context) {
	var collections []models.Collection

	query := c.db.Order("created_at desc")
	if featured := ctx.Query("featured"); featured == "true" {
		query = query.Where("is_featured = ?", true)
	}

	if err := query.Find(&collections).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Unable to fetch collections", err)
		return
	}

	ctx.JSON(http.StatusOK, collections)
}

func (c *CollectionController) GetCollection(ctx *gin.Context) {
	collectionId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid collection ID", err)
		return
	}

	var collection models.Collection
	if err := c.db.First(&collection, collectionId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Collection not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve collection", err)
		}
		return
	}

	ctx.JSON(http.StatusOK, collection)
}

func (c *CollectionController) UpdateCollection(ctx *gin.Context) {
	collectionId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid collection ID", err)
		return
	}

	var collection models.Collection
	if err := c.db.First(&collection, collectionId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Collection not found", nil)
		} else {
			respondWithError(ctx, http.StatusInternalServerError, "Unable to retrieve collection", err)
		}
		return
	}

	var updates models.Collection
	if err := ctx.ShouldBindJSON(&updates); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := c.db.Model(&collection).Updates(updates).Error; err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to update collection", err)
		return
	}

	ctx.JSON(http.StatusOK, collection)
}

func (c *CollectionController) DeleteCollection(ctx *gin.Context) {
	collectionId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid collection ID", err)
		return
	}

	if result := c.db.Delete(&models.Collection{}, collectionId); result.Error != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to delete collection", result.Error)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Collection deleted successfully."})
}
