package model

import "time"

// Metadata is embedded inline into every stored document.
type Metadata struct {
	CreatedAt  time.Time `bson:"createdAt"`
	ModifiedAt time.Time `bson:"modifiedAt"`
	CreatedBy  string    `bson:"createdBy,omitempty"`
	ModifiedBy string    `bson:"modifiedBy,omitempty"`
}
