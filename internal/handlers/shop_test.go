package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/portal-cosmico/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func createShopItem(t *testing.T, db *gorm.DB, slug string, itemType models.ItemType, price int) models.ShopItem {
	t.Helper()
	item := models.ShopItem{
		ID:        uuid.New().String(),
		Slug:      slug,
		Name:      slug,
		Type:      itemType,
		Price:     price,
		Available: true,
	}
	assert.NoError(t, db.Create(&item).Error)
	return item
}

func TestPurchaseItem_Success(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, 100)
	createShopItem(t, db, "lunar-back", models.ItemCardBack, 60)

	c, w := authedContext(t, user.ID, gin.Param{Key: "slug", Value: "lunar-back"})
	PurchaseItem(c)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(40), body["crystals"])

	var fresh models.User
	assert.NoError(t, db.First(&fresh, "id = ?", user.ID).Error)
	assert.Equal(t, 40, fresh.Crystals)

	var rows int64
	assert.NoError(t, db.Model(&models.UserItem{}).Where("user_id = ?", user.ID).Count(&rows).Error)
	assert.Equal(t, int64(1), rows)
}

func TestPurchaseItem_InsufficientCrystals(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, 10)
	createShopItem(t, db, "gold-frame", models.ItemFrame, 50)

	c, w := authedContext(t, user.ID, gin.Param{Key: "slug", Value: "gold-frame"})
	PurchaseItem(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(50), body["required"])
	assert.Equal(t, float64(10), body["current"])
	assert.Equal(t, float64(40), body["missing"])

	// Nothing was debited and nothing was granted.
	var fresh models.User
	assert.NoError(t, db.First(&fresh, "id = ?", user.ID).Error)
	assert.Equal(t, 10, fresh.Crystals)

	var rows int64
	assert.NoError(t, db.Model(&models.UserItem{}).Where("user_id = ?", user.ID).Count(&rows).Error)
	assert.Equal(t, int64(0), rows)
}

func TestPurchaseItem_AlreadyOwned(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, 200)
	item := createShopItem(t, db, "lunar-back", models.ItemCardBack, 60)

	assert.NoError(t, db.Create(&models.UserItem{
		UserID: user.ID, ItemID: item.ID, PurchasedAt: time.Now(),
	}).Error)

	c, w := authedContext(t, user.ID, gin.Param{Key: "slug", Value: "lunar-back"})
	PurchaseItem(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Item already owned", decodeBody(t, w)["error"])

	var fresh models.User
	assert.NoError(t, db.First(&fresh, "id = ?", user.ID).Error)
	assert.Equal(t, 200, fresh.Crystals, "repeat purchase must not charge again")
}

func TestPurchaseItem_Unknown(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, 100)

	c, w := authedContext(t, user.ID, gin.Param{Key: "slug", Value: "no-such-item"})
	PurchaseItem(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEquipItem_OnePerType(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, 0)
	frameA := createShopItem(t, db, "gold-frame", models.ItemFrame, 50)
	frameB := createShopItem(t, db, "silver-frame", models.ItemFrame, 30)
	back := createShopItem(t, db, "lunar-back", models.ItemCardBack, 60)

	now := time.Now()
	for _, item := range []models.ShopItem{frameA, frameB, back} {
		assert.NoError(t, db.Create(&models.UserItem{
			UserID: user.ID, ItemID: item.ID, PurchasedAt: now,
		}).Error)
	}

	c, w := authedContext(t, user.ID, gin.Param{Key: "slug", Value: "gold-frame"})
	EquipItem(c)
	assert.Equal(t, http.StatusOK, w.Code)

	c, w = authedContext(t, user.ID, gin.Param{Key: "slug", Value: "lunar-back"})
	EquipItem(c)
	assert.Equal(t, http.StatusOK, w.Code)

	// Equipping the second frame clears the first but leaves the card back.
	c, w = authedContext(t, user.ID, gin.Param{Key: "slug", Value: "silver-frame"})
	EquipItem(c)
	assert.Equal(t, http.StatusOK, w.Code)

	equipped := map[string]bool{}
	var rows []models.UserItem
	assert.NoError(t, db.Where("user_id = ? AND equipped = ?", user.ID, true).Find(&rows).Error)
	for _, row := range rows {
		equipped[row.ItemID] = true
	}

	assert.Len(t, equipped, 2)
	assert.True(t, equipped[frameB.ID])
	assert.True(t, equipped[back.ID])
	assert.False(t, equipped[frameA.ID])
}

func TestEquipItem_NotOwned(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, 0)
	createShopItem(t, db, "gold-frame", models.ItemFrame, 50)

	c, w := authedContext(t, user.ID, gin.Param{Key: "slug", Value: "gold-frame"})
	EquipItem(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Item not in inventory", decodeBody(t, w)["error"])
}
