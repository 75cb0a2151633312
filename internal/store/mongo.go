package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"spicestore-backend/internal/models"
)

// Mongo is the MongoDB-backed Store. A cart is keyed by userId with upserts,
// so a user can never end up with two cart documents.
type Mongo struct {
	db *mongo.Database
}

// Connect dials MongoDB and returns a Store over the named database.
func Connect(uri, dbName string) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}
	return &Mongo{db: client.Database(dbName)}, nil
}

func (m *Mongo) users() *mongo.Collection    { return m.db.Collection("users") }
func (m *Mongo) otps() *mongo.Collection     { return m.db.Collection("otps") }
func (m *Mongo) products() *mongo.Collection { return m.db.Collection("products") }
func (m *Mongo) carts() *mongo.Collection    { return m.db.Collection("carts") }
func (m *Mongo) orders() *mongo.Collection   { return m.db.Collection("orders") }

// ----- Users -----

func (m *Mongo) CreateUser(ctx context.Context, u *models.User) error {
	res, err := m.users().InsertOne(ctx, u)
	if err != nil {
		return err
	}
	u.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (m *Mongo) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := m.users().FindOne(ctx, bson.M{"email": email}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (m *Mongo) UserByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var u models.User
	err = m.users().FindOne(ctx, bson.M{"_id": oid}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (m *Mongo) Users(ctx context.Context) ([]models.User, error) {
	cur, err := m.users().Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// ----- OTP -----

func (m *Mongo) SaveOtp(ctx context.Context, rec *models.OtpRequest) error {
	_, err := m.otps().UpdateOne(ctx,
		bson.M{"email": rec.Email},
		bson.M{"$set": bson.M{"otp": rec.Otp, "createdAt": rec.CreatedAt}},
		options.Update().SetUpsert(true))
	return err
}

func (m *Mongo) OtpByEmailAndCode(ctx context.Context, email string, otp int) (*models.OtpRequest, error) {
	var rec models.OtpRequest
	err := m.otps().FindOne(ctx, bson.M{"email": email, "otp": otp}).Decode(&rec)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (m *Mongo) DeleteOtp(ctx context.Context, email string) error {
	_, err := m.otps().DeleteOne(ctx, bson.M{"email": email})
	return err
}

// ----- Products -----

func (m *Mongo) CreateProduct(ctx context.Context, p *models.Product) error {
	res, err := m.products().InsertOne(ctx, p)
	if err != nil {
		return err
	}
	p.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (m *Mongo) Products(ctx context.Context) ([]models.Product, error) {
	cur, err := m.products().Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var products []models.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (m *Mongo) ProductsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cur, err := m.products().Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	var found []models.Product
	if err := cur.All(ctx, &found); err != nil {
		return nil, err
	}
	// $in gives no ordering guarantee; put results back in cart order.
	byID := make(map[primitive.ObjectID]models.Product, len(found))
	for _, p := range found {
		byID[p.ID] = p
	}
	products := make([]models.Product, 0, len(found))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			products = append(products, p)
		}
	}
	return products, nil
}

func (m *Mongo) UpdateProduct(ctx context.Context, id string, upd models.ProductUpdate) (*models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	set := bson.M{}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.Category != nil {
		set["category"] = *upd.Category
	}
	if upd.Price != nil {
		set["price"] = *upd.Price
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.Image != nil {
		set["image"] = *upd.Image
	}
	var p models.Product
	if len(set) == 0 {
		err = m.products().FindOne(ctx, bson.M{"_id": oid}).Decode(&p)
	} else {
		err = m.products().FindOneAndUpdate(ctx,
			bson.M{"_id": oid}, bson.M{"$set": set},
			options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&p)
	}
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (m *Mongo) DeleteProduct(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := m.products().DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ----- Cart -----

func (m *Mongo) AddToCart(ctx context.Context, userID, productID string) (*models.Cart, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, err
	}
	pid, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return nil, err
	}
	_, err = m.carts().UpdateOne(ctx,
		bson.M{"userId": uid},
		bson.M{"$addToSet": bson.M{"products": pid}},
		options.Update().SetUpsert(true))
	if err != nil {
		return nil, err
	}
	var cart models.Cart
	if err := m.carts().FindOne(ctx, bson.M{"userId": uid}).Decode(&cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (m *Mongo) Cart(ctx context.Context, userID string) (*models.Cart, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrNoCart
	}
	var cart models.Cart
	err = m.carts().FindOne(ctx, bson.M{"userId": uid}).Decode(&cart)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNoCart
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (m *Mongo) RemoveFromCart(ctx context.Context, userID, productID string) (*models.Cart, error) {
	cart, err := m.Cart(ctx, userID)
	if err != nil {
		return nil, err
	}
	pid, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return nil, err
	}
	_, err = m.carts().UpdateOne(ctx,
		bson.M{"_id": cart.ID},
		bson.M{"$pull": bson.M{"products": pid}})
	if err != nil {
		return nil, err
	}
	return m.Cart(ctx, userID)
}

func (m *Mongo) ClearCart(ctx context.Context, userID string) error {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return ErrNoCart
	}
	_, err = m.carts().UpdateOne(ctx,
		bson.M{"userId": uid},
		bson.M{"$set": bson.M{"products": []primitive.ObjectID{}}})
	return err
}

// ----- Orders -----

func (m *Mongo) CreateOrder(ctx context.Context, o *models.Order) error {
	res, err := m.orders().InsertOne(ctx, o)
	if err != nil {
		return err
	}
	o.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (m *Mongo) OrdersByUser(ctx context.Context, userID string) ([]models.Order, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, err
	}
	cur, err := m.orders().Find(ctx, bson.M{"userId": uid})
	if err != nil {
		return nil, err
	}
	var orders []models.Order
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (m *Mongo) Orders(ctx context.Context) ([]models.Order, error) {
	cur, err := m.orders().Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var orders []models.Order
	if err := cur.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
