package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BrandingConfig is the stored brand name and raw logo bytes. The newest
// document wins; updates overwrite the latest record or create the first one.
type BrandingConfig struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	BrandName string             `bson:"brandName" json:"brand_name"`
	Logo      []byte             `bson:"logo,omitempty" json:"-"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"-"`
}
