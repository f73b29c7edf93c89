package handlers_test

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Zeldean/DBD-Project/internal/models"
	"github.com/Zeldean/DBD-Project/internal/repository"
)

// In-memory stands-ins for the mongo repositories. They enforce the same
// validation and sentinel-error contract so handler behavior is exercised
// end to end without a cluster.

type fakeUserStore struct {
	mu    sync.Mutex
	users []models.User
}

func (s *fakeUserStore) FindByCredentials(_ context.Context, email, region, password string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email && u.Region == region && u.Password == password {
			found := u
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeUserStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			found := u
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeUserStore) FindByRegion(_ context.Context, region string) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := make([]models.User, 0)
	for _, u := range s.users {
		if u.Region == region {
			users = append(users, u)
		}
	}
	return users, nil
}

func (s *fakeUserStore) Insert(_ context.Context, user *models.User) error {
	if err := user.Validate(); err != nil {
		return &repository.ValidationError{Err: err}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	user.ID = primitive.NewObjectID()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	s.users = append(s.users, *user)
	return nil
}

// add seeds a user directly, bypassing validation.
func (s *fakeUserStore) add(user models.User) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	s.users = append(s.users, user)
	return user
}

func (s *fakeUserStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

type fakeProductStore struct {
	mu       sync.Mutex
	products []models.Product

	// findGate, when set, runs after each FindByIDInRegion read completes.
	// The race test uses it to hold two readers at the same snapshot.
	findGate func()
}

func copyProduct(p models.Product) models.Product {
	cp := p
	cp.Reviews = append([]models.Review(nil), p.Reviews...)
	cp.Regions = append([]string(nil), p.Regions...)
	return cp
}

func containsRegion(regions []string, region string) bool {
	for _, r := range regions {
		if r == region {
			return true
		}
	}
	return false
}

func (s *fakeProductStore) FindByRegion(_ context.Context, region string) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	products := make([]models.Product, 0)
	for _, p := range s.products {
		if containsRegion(p.Regions, region) {
			products = append(products, copyProduct(p))
		}
	}
	return products, nil
}

func (s *fakeProductStore) FindByIDInRegion(_ context.Context, id primitive.ObjectID, region string) (*models.Product, error) {
	s.mu.Lock()
	var found *models.Product
	for _, p := range s.products {
		if p.ID == id && containsRegion(p.Regions, region) {
			cp := copyProduct(p)
			found = &cp
			break
		}
	}
	s.mu.Unlock()

	if found == nil {
		return nil, repository.ErrNotFound
	}
	if s.findGate != nil {
		s.findGate()
	}
	return found, nil
}

func (s *fakeProductStore) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	wanted := make(map[primitive.ObjectID]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	products := make([]models.Product, 0)
	for _, p := range s.products {
		if wanted[p.ID] {
			products = append(products, copyProduct(p))
		}
	}
	return products, nil
}

func (s *fakeProductStore) Save(_ context.Context, product *models.Product) error {
	if err := product.Validate(); err != nil {
		return &repository.ValidationError{Err: err}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == product.ID {
			s.products[i] = copyProduct(*product)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *fakeProductStore) Delete(_ context.Context, id primitive.ObjectID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeProductStore) ReviewsByUser(_ context.Context, region string, userID primitive.ObjectID) ([]models.UserReview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	reviews := make([]models.UserReview, 0)
	for _, p := range s.products {
		if !containsRegion(p.Regions, region) {
			continue
		}
		for _, r := range p.Reviews {
			if r.UserID == userID {
				reviews = append(reviews, models.UserReview{
					ID:          r.ID,
					UserID:      r.UserID,
					Rating:      r.Rating,
					Comment:     r.Comment,
					CreatedAt:   r.CreatedAt,
					ProductID:   p.ID,
					ProductName: p.Name,
				})
			}
		}
	}
	return reviews, nil
}

func (s *fakeProductStore) add(product models.Product) models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	s.products = append(s.products, copyProduct(product))
	return product
}

func (s *fakeProductStore) get(id primitive.ObjectID) *models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			cp := copyProduct(p)
			return &cp
		}
	}
	return nil
}

type fakeOrderStore struct {
	mu     sync.Mutex
	orders []models.Order
}

func (s *fakeOrderStore) Insert(_ context.Context, order *models.Order) error {
	if order.Status == "" {
		order.Status = models.StatusPending
	}
	if order.OrderDate.IsZero() {
		order.OrderDate = time.Now()
	}
	if err := order.Validate(); err != nil {
		return &repository.ValidationError{Err: err}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	order.ID = primitive.NewObjectID()
	s.orders = append(s.orders, *order)
	return nil
}

func (s *fakeOrderStore) FindByUserInRegion(_ context.Context, userID primitive.ObjectID, region string) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	orders := make([]models.Order, 0)
	for _, o := range s.orders {
		if o.UserID == userID && o.Region == region {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

func (s *fakeOrderStore) FindByRegion(_ context.Context, region string) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	orders := make([]models.Order, 0)
	for _, o := range s.orders {
		if o.Region == region {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

func (s *fakeOrderStore) DeletePending(_ context.Context, id, userID primitive.ObjectID, region string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, o := range s.orders {
		if o.ID == id && o.UserID == userID && o.Region == region && o.Status == models.StatusPending {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			return &o, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeOrderStore) SalesStats(_ context.Context, region string) (*models.SalesStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stats := &models.SalesStats{}
	for _, o := range s.orders {
		if o.Region == region {
			stats.TotalRevenue += o.TotalPrice
			stats.OrdersCount++
		}
	}
	return stats, nil
}

func (s *fakeOrderStore) add(order models.Order) models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	s.orders = append(s.orders, order)
	return order
}

func (s *fakeOrderStore) get(id primitive.ObjectID) *models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.ID == id {
			found := o
			return &found
		}
	}
	return nil
}

func (s *fakeOrderStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}
