package models

import (
	"time"

	"github.com/lib/pq"
)

type SubscriptionStatus string

const (
	SubStatusActive   SubscriptionStatus = "ACTIVE"
	SubStatusExpired  SubscriptionStatus = "EXPIRED"
	SubStatusCanceled SubscriptionStatus = "CANCELED"
)

// Plan is a billable subscription tier.
type Plan struct {
	ID       string         `gorm:"primaryKey;type:text" json:"id"`
	Slug     string         `gorm:"uniqueIndex" json:"slug"`
	Name     string         `json:"name"`
	Price    int            `json:"price"`    // in INR, rupees
	Interval string         `json:"interval"` // monthly | yearly
	Perks    pq.StringArray `gorm:"type:text[]" json:"perks"`
	Active   bool           `gorm:"default:true" json:"active"`
}

type Subscription struct {
	ID               string             `gorm:"primaryKey;type:text" json:"id"`
	UserID           string             `gorm:"index" json:"userId"`
	PlanID           string             `json:"planId"`
	Status           SubscriptionStatus `gorm:"type:text" json:"status"`
	PaymentID        string             `json:"paymentId"`
	CurrentPeriodEnd time.Time          `json:"currentPeriodEnd"`
	CreatedAt        time.Time          `json:"createdAt"`

	Plan Plan `gorm:"foreignKey:PlanID" json:"plan,omitempty"`
}
