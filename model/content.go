package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Banner struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title     LocalizedText      `bson:"title" json:"title"`
	Subtitle  LocalizedText      `bson:"subtitle" json:"subtitle"`
	Image     string             `bson:"image" json:"image"`
	Link      string             `bson:"link" json:"link"`
	Order     int                `bson:"order" json:"order"`
	IsActive  bool               `bson:"isActive" json:"isActive"`
	CreatedAt time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

type Service struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        LocalizedText      `bson:"name" json:"name"`
	Description LocalizedText      `bson:"description" json:"description"`
	Slug        string             `bson:"slug" json:"slug"`
	Icon        string             `bson:"icon" json:"icon"`
	Image       string             `bson:"image" json:"image"`
	Order       int                `bson:"order" json:"order"`
	IsActive    bool               `bson:"isActive" json:"isActive"`
	CreatedAt   time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt   time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

type Testimonial struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Author    string             `bson:"author" json:"author"`
	Company   string             `bson:"company" json:"company"`
	Quote     LocalizedText      `bson:"quote" json:"quote"`
	Avatar    string             `bson:"avatar" json:"avatar"`
	Rating    int                `bson:"rating" json:"rating"`
	IsActive  bool               `bson:"isActive" json:"isActive"`
	CreatedAt time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

type Member struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Position  LocalizedText      `bson:"position" json:"position"`
	Bio       LocalizedText      `bson:"bio" json:"bio"`
	Photo     string             `bson:"photo" json:"photo"`
	Order     int                `bson:"order" json:"order"`
	IsActive  bool               `bson:"isActive" json:"isActive"`
	CreatedAt time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
