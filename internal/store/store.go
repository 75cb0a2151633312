// Package store owns all persistence. Handlers receive a Store handle
// instead of touching a shared database client.
package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"spicestore-backend/internal/models"
)

var (
	// ErrNotFound is returned when a looked-up document does not exist.
	ErrNotFound = errors.New("not found")
	// ErrNoCart is returned by cart operations when the user has no cart.
	ErrNoCart = errors.New("no cart")
)

type Store interface {
	CreateUser(ctx context.Context, u *models.User) error
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	UserByID(ctx context.Context, id string) (*models.User, error)
	Users(ctx context.Context) ([]models.User, error)

	// SaveOtp upserts the code keyed by email; at most one live record
	// exists per address.
	SaveOtp(ctx context.Context, rec *models.OtpRequest) error
	OtpByEmailAndCode(ctx context.Context, email string, otp int) (*models.OtpRequest, error)
	DeleteOtp(ctx context.Context, email string) error

	CreateProduct(ctx context.Context, p *models.Product) error
	Products(ctx context.Context) ([]models.Product, error)
	ProductsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error)
	UpdateProduct(ctx context.Context, id string, upd models.ProductUpdate) (*models.Product, error)
	DeleteProduct(ctx context.Context, id string) error

	// AddToCart finds or creates the user's cart and appends the product
	// only if it is not already present.
	AddToCart(ctx context.Context, userID, productID string) (*models.Cart, error)
	Cart(ctx context.Context, userID string) (*models.Cart, error)
	RemoveFromCart(ctx context.Context, userID, productID string) (*models.Cart, error)
	ClearCart(ctx context.Context, userID string) error

	CreateOrder(ctx context.Context, o *models.Order) error
	OrdersByUser(ctx context.Context, userID string) ([]models.Order, error)
	Orders(ctx context.Context) ([]models.Order, error)
}
