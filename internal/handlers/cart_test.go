package handlers_test

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAddToCartDeduplicates(t *testing.T) {
	r, _, _ := newTestServer(t)
	userID := primitive.NewObjectID().Hex()
	productID := createProduct(t, r, "Saffron", 30)

	w := doJSON(t, r, "POST", "/api/addtocart", gin.H{"userId": userID, "productId": productID})
	require.Equal(t, 200, w.Code, w.Body.String())

	w = doJSON(t, r, "POST", "/api/addtocart", gin.H{"userId": userID, "productId": productID})
	require.Equal(t, 200, w.Code)
	cart := decodeBody(t, w)["cart"].(map[string]interface{})
	products := cart["products"].([]interface{})
	require.Len(t, products, 1, "adding the same product twice must keep it once")
	assert.Equal(t, productID, products[0])
}

func TestGetCartResolvesProducts(t *testing.T) {
	r, _, _ := newTestServer(t)
	userID := primitive.NewObjectID().Hex()
	p1 := createProduct(t, r, "Saffron", 30)
	p2 := createProduct(t, r, "Sumac", 5)
	require.Equal(t, 200, doJSON(t, r, "POST", "/api/addtocart", gin.H{"userId": userID, "productId": p1}).Code)
	require.Equal(t, 200, doJSON(t, r, "POST", "/api/addtocart", gin.H{"userId": userID, "productId": p2}).Code)

	w := doJSON(t, r, "GET", "/api/cart/"+userID, nil)
	require.Equal(t, 200, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, userID, body["userId"])
	products := body["products"].([]interface{})
	require.Len(t, products, 2)
	first := products[0].(map[string]interface{})
	assert.Equal(t, "Saffron", first["name"])
	assert.Equal(t, float64(30), first["price"])
}

func TestGetCartAbsent(t *testing.T) {
	r, _, _ := newTestServer(t)

	w := doJSON(t, r, "GET", "/api/cart/"+primitive.NewObjectID().Hex(), nil)
	require.Equal(t, 404, w.Code)
	assert.Equal(t, "Cart empty", w.Body.String())
}

func TestRemoveFromCart(t *testing.T) {
	r, _, _ := newTestServer(t)
	userID := primitive.NewObjectID().Hex()
	p1 := createProduct(t, r, "Saffron", 30)
	p2 := createProduct(t, r, "Sumac", 5)
	require.Equal(t, 200, doJSON(t, r, "POST", "/api/addtocart", gin.H{"userId": userID, "productId": p1}).Code)
	require.Equal(t, 200, doJSON(t, r, "POST", "/api/addtocart", gin.H{"userId": userID, "productId": p2}).Code)

	w := doJSON(t, r, "POST", "/api/removefromcart", gin.H{"userId": userID, "productId": p1})
	require.Equal(t, 200, w.Code)
	cart := decodeBody(t, w)["cart"].(map[string]interface{})
	products := cart["products"].([]interface{})
	require.Len(t, products, 1)
	assert.Equal(t, p2, products[0])
}

func TestRemoveFromCartWithoutCart(t *testing.T) {
	r, _, _ := newTestServer(t)

	w := doJSON(t, r, "POST", "/api/removefromcart", gin.H{
		"userId":    primitive.NewObjectID().Hex(),
		"productId": primitive.NewObjectID().Hex(),
	})
	require.Equal(t, 500, w.Code)
	assert.Equal(t, "Server error", w.Body.String())
}
