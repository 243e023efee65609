package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/portal-cosmico/backend/internal/database"
	"github.com/portal-cosmico/backend/internal/models"
	apperrors "github.com/portal-cosmico/backend/pkg/errors"
	"gorm.io/gorm"
)

// ListShopItems GET /shop/items
func ListShopItems(c *gin.Context) {
	var items []models.ShopItem
	if err := database.DB.Where("available = ?", true).Order("type, price").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch shop items"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// GetInventory GET /shop/inventory
func GetInventory(c *gin.Context) {
	userID := c.MustGet("userId").(string)

	var inventory []models.UserItem
	if err := database.DB.Preload("Item").Where("user_id = ?", userID).Find(&inventory).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch inventory"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"inventory": inventory})
}

// PurchaseItem POST /shop/items/:slug/purchase
// Debit and inventory insert happen in one transaction: the user is never
// charged without receiving the item or vice versa.
func PurchaseItem(c *gin.Context) {
	userID := c.MustGet("userId").(string)
	slug := c.Param("slug")

	var item models.ShopItem
	if err := database.DB.First(&item, "slug = ?", slug).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}
	if !item.Available {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Item not available"})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var owned models.UserItem
		if err := tx.First(&owned, "user_id = ? AND item_id = ?", userID, item.ID).Error; err == nil {
			return apperrors.BadRequest("Item already owned")
		}

		var user models.User
		if err := tx.First(&user, "id = ?", userID).Error; err != nil {
			return err
		}
		if user.Crystals < item.Price {
			return apperrors.InsufficientCrystals(item.Price, user.Crystals)
		}

		// Conditional debit guards against a concurrent purchase draining
		// the balance between the read above and this write.
		res := tx.Model(&models.User{}).
			Where("id = ? AND crystals >= ?", userID, item.Price).
			UpdateColumn("crystals", gorm.Expr("crystals - ?", item.Price))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.InsufficientCrystals(item.Price, user.Crystals)
		}

		return tx.Create(&models.UserItem{
			UserID:      userID,
			ItemID:      item.ID,
			PurchasedAt: time.Now(),
		}).Error
	})
	if err != nil {
		respondError(c, err)
		return
	}

	var user models.User
	database.DB.Select("crystals").First(&user, "id = ?", userID)

	c.JSON(http.StatusOK, gin.H{
		"message":  "Purchase complete",
		"item":     item,
		"crystals": user.Crystals,
	})
}

// EquipItem POST /shop/items/:slug/equip
// At most one equipped item per item type: siblings of the same type are
// cleared before the new one is set.
func EquipItem(c *gin.Context) {
	userID := c.MustGet("userId").(string)
	slug := c.Param("slug")

	var item models.ShopItem
	if err := database.DB.First(&item, "slug = ?", slug).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var owned models.UserItem
		if err := tx.First(&owned, "user_id = ? AND item_id = ?", userID, item.ID).Error; err != nil {
			return apperrors.NotFound("Item not in inventory")
		}

		sameType := tx.Model(&models.ShopItem{}).Select("id").Where("type = ?", item.Type)
		if err := tx.Model(&models.UserItem{}).
			Where("user_id = ? AND item_id IN (?)", userID, sameType).
			Update("equipped", false).Error; err != nil {
			return err
		}

		return tx.Model(&models.UserItem{}).
			Where("user_id = ? AND item_id = ?", userID, item.ID).
			Update("equipped", true).Error
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item equipped", "item": item})
}
