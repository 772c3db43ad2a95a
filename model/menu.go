package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LocalizedText holds the two site languages. Both fields are mandatory on
// create; the frontend decides which one to render.
type LocalizedText struct {
	EN string `bson:"en" json:"en"`
	VI string `bson:"vi" json:"vi"`
}

// MenuItem is a node of the navigation tree. The parent/child relation is
// carried by ParentID only; Children is filled in from parentId back-references
// when a tree view is assembled and is never written to the collection.
type MenuItem struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"id,omitempty"`
	Name      LocalizedText       `bson:"name" json:"name"`
	Link      string              `bson:"link" json:"link"`
	Slug      string              `bson:"slug" json:"slug"`
	Icon      string              `bson:"icon" json:"icon"`
	Order     int                 `bson:"order" json:"order"`
	ParentID  *primitive.ObjectID `bson:"parentId" json:"parentId"`
	IsActive  bool                `bson:"isActive" json:"isActive"`
	CreatedAt time.Time           `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time           `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`

	Children []MenuItem `bson:"-" json:"children"`
}

// MenuPayload is the write-endpoint body. Pointer fields distinguish "field
// absent" from a zero value so partial updates only touch what was sent.
type MenuPayload struct {
	Name     *LocalizedText `json:"name,omitempty"`
	Link     *string        `json:"link,omitempty"`
	Slug     *string        `json:"slug,omitempty"`
	Icon     *string        `json:"icon,omitempty"`
	Order    *int           `json:"order,omitempty"`
	ParentID *string        `json:"parentId,omitempty"`
	IsActive *bool          `json:"isActive,omitempty"`
}

// MovePayload is the reposition body: the target rank and the target parent.
// ParentID "null" or empty string means move to root.
type MovePayload struct {
	Order    *int    `json:"order"`
	ParentID *string `json:"parentId"`
}
