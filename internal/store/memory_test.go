package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"spicestore-backend/internal/models"
)

func TestMemoryCartSingleDocumentPerUser(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()
	uid := primitive.NewObjectID().Hex()
	p1 := primitive.NewObjectID().Hex()
	p2 := primitive.NewObjectID().Hex()

	first, err := s.AddToCart(ctx, uid, p1)
	require.NoError(t, err)
	second, err := s.AddToCart(ctx, uid, p2)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "adds for one user must land in one cart")
	assert.Len(t, second.Products, 2)
}

func TestMemoryAddToCartDeduplicates(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()
	uid := primitive.NewObjectID().Hex()
	pid := primitive.NewObjectID().Hex()

	_, err := s.AddToCart(ctx, uid, pid)
	require.NoError(t, err)
	cart, err := s.AddToCart(ctx, uid, pid)
	require.NoError(t, err)
	assert.Len(t, cart.Products, 1)
}

func TestMemoryCartAbsent(t *testing.T) {
	s := NewMemory()
	_, err := s.Cart(context.Background(), primitive.NewObjectID().Hex())
	assert.Equal(t, ErrNoCart, err)

	_, err = s.RemoveFromCart(context.Background(), primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex())
	assert.Equal(t, ErrNoCart, err)
}

func TestMemoryClearCartKeepsDocument(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()
	uid := primitive.NewObjectID().Hex()
	_, err := s.AddToCart(ctx, uid, primitive.NewObjectID().Hex())
	require.NoError(t, err)

	require.NoError(t, s.ClearCart(ctx, uid))
	cart, err := s.Cart(ctx, uid)
	require.NoError(t, err)
	assert.Empty(t, cart.Products)
}

func TestMemorySaveOtpOverwrites(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	first := models.OtpRequest{Email: "a@b.c", Otp: 111111, CreatedAt: time.Now()}
	require.NoError(t, s.SaveOtp(ctx, &first))
	second := models.OtpRequest{Email: "a@b.c", Otp: 222222, CreatedAt: time.Now()}
	require.NoError(t, s.SaveOtp(ctx, &second))
	assert.Equal(t, first.ID, second.ID, "re-request keys the same record")

	_, err := s.OtpByEmailAndCode(ctx, "a@b.c", 111111)
	assert.Equal(t, ErrNotFound, err)
	rec, err := s.OtpByEmailAndCode(ctx, "a@b.c", 222222)
	require.NoError(t, err)
	assert.Equal(t, 222222, rec.Otp)
}

func TestMemoryUpdateProductPartial(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()
	p := models.Product{Name: "Anise", Category: "spices", Price: 3, Image: "anise.jpg"}
	require.NoError(t, s.CreateProduct(ctx, &p))

	price := 4.25
	updated, err := s.UpdateProduct(ctx, p.ID.Hex(), models.ProductUpdate{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, 4.25, updated.Price)
	assert.Equal(t, "Anise", updated.Name)

	_, err = s.UpdateProduct(ctx, primitive.NewObjectID().Hex(), models.ProductUpdate{Price: &price})
	assert.Equal(t, ErrNotFound, err)
}

func TestMemoryProductsByIDsKeepsOrder(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()
	a := models.Product{Name: "A", Category: "c", Price: 1, Image: "a"}
	b := models.Product{Name: "B", Category: "c", Price: 2, Image: "b"}
	require.NoError(t, s.CreateProduct(ctx, &a))
	require.NoError(t, s.CreateProduct(ctx, &b))

	products, err := s.ProductsByIDs(ctx, []primitive.ObjectID{b.ID, a.ID})
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "B", products[0].Name)
	assert.Equal(t, "A", products[1].Name)
}

func TestMemoryDeleteProduct(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()
	p := models.Product{Name: "Bay", Category: "herbs", Price: 2, Image: "bay.jpg"}
	require.NoError(t, s.CreateProduct(ctx, &p))

	require.NoError(t, s.DeleteProduct(ctx, p.ID.Hex()))
	assert.Equal(t, ErrNotFound, s.DeleteProduct(ctx, p.ID.Hex()))

	products, err := s.Products(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)
}
