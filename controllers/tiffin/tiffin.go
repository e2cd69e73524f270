package tiffinController

import (
	"encoding/json"
	"log"
	"strings"
	"tiffin/database"
	"tiffin/middleware"
	"tiffin/models"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
	"gorm.io/datatypes"
)

type tiffinRequest struct {
	Name              string   `json:"name"`
	Phone             string   `json:"phone"`
	Location          string   `json:"location"`
	DeliveryLocations []string `json:"deliveryLocations"`
	FoodType          string   `json:"foodType"`
	TimingMorning     string   `json:"timingMorning"`
	TimingNight       string   `json:"timingNight"`
	PriceMonthly      float64  `json:"priceMonthly"`
	PriceDaily        float64  `json:"priceDaily"`
	PricePerTiffin    float64  `json:"pricePerTiffin"`
	ImageUrls         []string `json:"imageUrls"`
}

func toJSONArray(values []string) datatypes.JSON {
	cleaned := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			cleaned = append(cleaned, v)
		}
	}
	raw, _ := json.Marshal(cleaned)
	return raw
}

func fromJSONArray(raw datatypes.JSON) []string {
	var values []string
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &values)
	}
	return values
}

// AddTiffin creates a new listing owned by the logged-in provider.
func AddTiffin(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	reqData := new(tiffinRequest)
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	tiffin := models.Tiffin{
		ProviderID:        userId,
		Name:              reqData.Name,
		Phone:             reqData.Phone,
		Location:          reqData.Location,
		DeliveryLocations: toJSONArray(reqData.DeliveryLocations),
		FoodType:          reqData.FoodType,
		TimingMorning:     reqData.TimingMorning,
		TimingNight:       reqData.TimingNight,
		PriceMonthly:      reqData.PriceMonthly,
		PriceDaily:        reqData.PriceDaily,
		PricePerTiffin:    reqData.PricePerTiffin,
		ImageUrls:         toJSONArray(reqData.ImageUrls),
	}

	if err := database.Database.Db.Create(&tiffin).Error; err != nil {
		log.Printf("Error creating tiffin: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add tiffin!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Tiffin added successfully!", tiffin)
}

// UpdateTiffin edits a listing. Only the owning provider may update it.
func UpdateTiffin(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)
	tiffinId := c.Params("id")

	reqData := new(tiffinRequest)
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var tiffin models.Tiffin
	if err := db.Where("id = ? AND is_deleted = false", tiffinId).First(&tiffin).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Tiffin not found!", nil)
	}
	if tiffin.ProviderID != userId {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only update your own tiffins!", nil)
	}

	tiffin.Name = reqData.Name
	tiffin.Phone = reqData.Phone
	tiffin.Location = reqData.Location
	tiffin.DeliveryLocations = toJSONArray(reqData.DeliveryLocations)
	tiffin.FoodType = reqData.FoodType
	tiffin.TimingMorning = reqData.TimingMorning
	tiffin.TimingNight = reqData.TimingNight
	tiffin.PriceMonthly = reqData.PriceMonthly
	tiffin.PriceDaily = reqData.PriceDaily
	tiffin.PricePerTiffin = reqData.PricePerTiffin
	tiffin.ImageUrls = toJSONArray(reqData.ImageUrls)

	if err := db.Save(&tiffin).Error; err != nil {
		log.Printf("Error updating tiffin: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update tiffin!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tiffin updated successfully!", tiffin)
}

// DeleteTiffin soft-deletes a listing owned by the logged-in provider.
func DeleteTiffin(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)
	tiffinId := c.Params("id")

	db := database.Database.Db

	var tiffin models.Tiffin
	if err := db.Where("id = ? AND is_deleted = false", tiffinId).First(&tiffin).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Tiffin not found!", nil)
	}
	if tiffin.ProviderID != userId {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only delete your own tiffins!", nil)
	}

	tiffin.IsDeleted = true
	if err := db.Save(&tiffin).Error; err != nil {
		log.Printf("Error deleting tiffin: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete tiffin!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tiffin deleted successfully!", nil)
}

// MyTiffins lists the logged-in provider's own listings.
func MyTiffins(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	var tiffins []models.Tiffin
	if err := database.Database.Db.
		Where("provider_id = ? AND is_deleted = false", userId).
		Find(&tiffins).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch tiffins!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tiffins fetched!", tiffins)
}

// BrowseTiffins lists all listings with optional filters: location
// substring against delivery areas, name substring, and food type.
func BrowseTiffins(c *fiber.Ctx) error {
	location := strings.ToLower(strings.TrimSpace(c.Query("location")))
	name := strings.ToLower(strings.TrimSpace(c.Query("name")))
	foodType := c.Query("foodType")

	var tiffins []models.Tiffin
	if err := database.Database.Db.
		Where("is_deleted = false").
		Find(&tiffins).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch tiffins!", nil)
	}

	// The location filter matches against the delivery area list, which
	// lives in a JSON column, so filtering happens here rather than in SQL.
	filtered := make([]models.Tiffin, 0, len(tiffins))
	for _, t := range tiffins {
		if location != "" {
			areas := fromJSONArray(t.DeliveryLocations)
			if len(areas) == 0 {
				areas = []string{t.Location}
			}
			matched := false
			for _, area := range areas {
				if strings.Contains(strings.ToLower(area), location) {
					matched = true
					break
				}
			}
			if !matched {
				continue
			}
		}
		if name != "" && !strings.Contains(strings.ToLower(t.Name), name) {
			continue
		}
		if foodType != "" && foodType != "All" && t.FoodType != foodType {
			continue
		}
		filtered = append(filtered, t)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tiffins fetched!", filtered)
}

// Dashboard gives a provider per-listing review totals plus the review
// count for the current calendar month.
func Dashboard(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	db := database.Database.Db

	var tiffins []models.Tiffin
	if err := db.Where("provider_id = ? AND is_deleted = false", userId).Find(&tiffins).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch tiffins!", nil)
	}

	monthStart := now.BeginningOfMonth()

	type listingStats struct {
		Tiffin       models.Tiffin `json:"tiffin"`
		TotalReviews int64         `json:"totalReviews"`
		MonthReviews int64         `json:"monthReviews"`
	}

	stats := make([]listingStats, 0, len(tiffins))
	for _, t := range tiffins {
		var total, month int64
		db.Model(&models.Review{}).
			Where("tiffin_id = ? AND is_deleted = false", t.ID).
			Count(&total)
		db.Model(&models.Review{}).
			Where("tiffin_id = ? AND is_deleted = false AND created_at >= ?", t.ID, monthStart).
			Count(&month)
		stats = append(stats, listingStats{Tiffin: t, TotalReviews: total, MonthReviews: month})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched!", stats)
}
