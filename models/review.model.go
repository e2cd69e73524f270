package models

import "gorm.io/gorm"

// Review is one student's review of one tiffin. The unique index on
// (tiffin_id, user_id) enforces the one-review-per-author rule: a
// resubmission updates the existing row in place.
type Review struct {
	gorm.Model
	TiffinID  uint     `gorm:"not null;uniqueIndex:idx_tiffin_author" json:"tiffinId"`
	UserID    uint     `gorm:"not null;uniqueIndex:idx_tiffin_author" json:"userId"`
	Rating    int      `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"` // 1–5 rating
	Comment   string   `gorm:"type:text;default:''" json:"comment"`
	AiScore   int      `gorm:"default:0" json:"aiScore"` // 0–10, from Gemini or the rule-based fallback
	AiSummary string   `gorm:"default:''" json:"aiSummary"`
	Price     *float64 `json:"price"` // per-tiffin price at review time, if known
	IsDeleted bool     `gorm:"default:false" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
