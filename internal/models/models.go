package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name       string             `bson:"name" json:"name"`
	Email      string             `bson:"email" json:"email"`
	Password   string             `bson:"password" json:"password,omitempty"`
	Role       string             `bson:"role" json:"role"`
	ProfilePic string             `bson:"profilePic,omitempty" json:"profilePic,omitempty"`
}

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Category    string             `bson:"category" json:"category"`
	Price       float64            `bson:"price" json:"price"`
	Description string             `bson:"description" json:"description"`
	Image       string             `bson:"image" json:"image"`
	AdminID     string             `bson:"adminId,omitempty" json:"adminId,omitempty"`
}

// ProductUpdate carries the fields of a partial product update; nil means
// "leave unchanged".
type ProductUpdate struct {
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
	Image       *string  `json:"image"`
}

type Cart struct {
	ID       primitive.ObjectID   `bson:"_id,omitempty" json:"_id"`
	UserID   primitive.ObjectID   `bson:"userId" json:"userId"`
	Products []primitive.ObjectID `bson:"products" json:"products"`
}

// OrderProduct is a line in an order: a snapshot of the product at the time
// the order was placed. Quantity is always 1 (carts hold each product once).
type OrderProduct struct {
	ProductID primitive.ObjectID `bson:"productId" json:"productId"`
	Name      string             `bson:"name" json:"name"`
	Price     float64            `bson:"price" json:"price"`
	Quantity  int                `bson:"quantity" json:"quantity"`
}

type Order struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	Products    []OrderProduct     `bson:"products" json:"products"`
	TotalAmount float64            `bson:"totalAmount" json:"totalAmount"`
	Status      string             `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// OtpRequest holds the latest verification code issued for an email address.
// Re-requesting overwrites the previous code.
type OtpRequest struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email     string             `bson:"email" json:"email"`
	Otp       int                `bson:"otp" json:"otp"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
