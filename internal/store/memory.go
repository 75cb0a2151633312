package store

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"spicestore-backend/internal/models"
)

// Memory is a map-backed Store. It backs the handler tests and is handy for
// running the server without a database.
type Memory struct {
	mu       sync.RWMutex
	users    map[primitive.ObjectID]models.User
	otps     map[string]models.OtpRequest
	products map[primitive.ObjectID]models.Product
	carts    map[primitive.ObjectID]models.Cart
	orders   []models.Order
	prodIDs  []primitive.ObjectID
}

func NewMemory() *Memory {
	return &Memory{
		users:    make(map[primitive.ObjectID]models.User),
		otps:     make(map[string]models.OtpRequest),
		products: make(map[primitive.ObjectID]models.Product),
		carts:    make(map[primitive.ObjectID]models.Cart),
	}
}

// ----- Users -----

func (s *Memory) CreateUser(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	s.users[u.ID] = *u
	return nil
}

func (s *Memory) UserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (s *Memory) UserByID(_ context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[oid]
	if !ok {
		return nil, ErrNotFound
	}
	out := u
	return &out, nil
}

func (s *Memory) Users(_ context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	return users, nil
}

// ----- OTP -----

func (s *Memory) SaveOtp(_ context.Context, rec *models.OtpRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.otps[rec.Email]; ok {
		rec.ID = existing.ID
	} else if rec.ID.IsZero() {
		rec.ID = primitive.NewObjectID()
	}
	s.otps[rec.Email] = *rec
	return nil
}

func (s *Memory) OtpByEmailAndCode(_ context.Context, email string, otp int) (*models.OtpRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.otps[email]
	if !ok || rec.Otp != otp {
		return nil, ErrNotFound
	}
	out := rec
	return &out, nil
}

func (s *Memory) DeleteOtp(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.otps, email)
	return nil
}

// ----- Products -----

func (s *Memory) CreateProduct(_ context.Context, p *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	s.products[p.ID] = *p
	s.prodIDs = append(s.prodIDs, p.ID)
	return nil
}

func (s *Memory) Products(_ context.Context) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	products := make([]models.Product, 0, len(s.products))
	for _, id := range s.prodIDs {
		if p, ok := s.products[id]; ok {
			products = append(products, p)
		}
	}
	return products, nil
}

func (s *Memory) ProductsByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	products := make([]models.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := s.products[id]; ok {
			products = append(products, p)
		}
	}
	return products, nil
}

func (s *Memory) UpdateProduct(_ context.Context, id string, upd models.ProductUpdate) (*models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[oid]
	if !ok {
		return nil, ErrNotFound
	}
	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.Category != nil {
		p.Category = *upd.Category
	}
	if upd.Price != nil {
		p.Price = *upd.Price
	}
	if upd.Description != nil {
		p.Description = *upd.Description
	}
	if upd.Image != nil {
		p.Image = *upd.Image
	}
	s.products[oid] = p
	out := p
	return &out, nil
}

func (s *Memory) DeleteProduct(_ context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[oid]; !ok {
		return ErrNotFound
	}
	delete(s.products, oid)
	return nil
}

// ----- Cart -----

func (s *Memory) AddToCart(_ context.Context, userID, productID string) (*models.Cart, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, err
	}
	pid, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cart, ok := s.carts[uid]
	if !ok {
		cart = models.Cart{ID: primitive.NewObjectID(), UserID: uid, Products: []primitive.ObjectID{}}
	}
	present := false
	for _, existing := range cart.Products {
		if existing == pid {
			present = true
			break
		}
	}
	if !present {
		cart.Products = append(cart.Products, pid)
	}
	s.carts[uid] = cart
	out := cart
	out.Products = append([]primitive.ObjectID(nil), cart.Products...)
	return &out, nil
}

func (s *Memory) Cart(_ context.Context, userID string) (*models.Cart, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrNoCart
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	cart, ok := s.carts[uid]
	if !ok {
		return nil, ErrNoCart
	}
	out := cart
	out.Products = append([]primitive.ObjectID(nil), cart.Products...)
	return &out, nil
}

func (s *Memory) RemoveFromCart(_ context.Context, userID, productID string) (*models.Cart, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrNoCart
	}
	pid, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cart, ok := s.carts[uid]
	if !ok {
		return nil, ErrNoCart
	}
	kept := cart.Products[:0:0]
	for _, existing := range cart.Products {
		if existing != pid {
			kept = append(kept, existing)
		}
	}
	cart.Products = kept
	s.carts[uid] = cart
	out := cart
	out.Products = append([]primitive.ObjectID(nil), cart.Products...)
	return &out, nil
}

func (s *Memory) ClearCart(_ context.Context, userID string) error {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return ErrNoCart
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	cart, ok := s.carts[uid]
	if !ok {
		return nil
	}
	cart.Products = []primitive.ObjectID{}
	s.carts[uid] = cart
	return nil
}

// ----- Orders -----

func (s *Memory) CreateOrder(_ context.Context, o *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o.ID.IsZero() {
		o.ID = primitive.NewObjectID()
	}
	s.orders = append(s.orders, *o)
	return nil
}

func (s *Memory) OrdersByUser(_ context.Context, userID string) ([]models.Order, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	orders := make([]models.Order, 0)
	for _, o := range s.orders {
		if o.UserID == uid {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

func (s *Memory) Orders(_ context.Context) ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Order(nil), s.orders...), nil
}
