package seed

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand"

	"github.com/brianvoe/gofakeit/v7"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mkazakov/shopdata/internal/models"
)

const batchSize = 200

type Seeder struct {
	DB  *gorm.DB
	Log *slog.Logger
}

// Run fills the schema in dependency order: users and products first, then
// orders, then items so that every order ends up with at least one item.
func (s *Seeder) Run(ctx context.Context, users, orders, extraItems int) error {
	userIDs, err := s.Users(ctx, users)
	if err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	if err := s.Products(ctx); err != nil {
		return fmt.Errorf("seed products: %w", err)
	}
	orderIDs, err := s.Orders(ctx, userIDs, orders)
	if err != nil {
		return fmt.Errorf("seed orders: %w", err)
	}
	if err := s.OrderItems(ctx, orderIDs, extraItems); err != nil {
		return fmt.Errorf("seed order items: %w", err)
	}
	return nil
}

// Users inserts n fake users with unique usernames and emails and returns
// their ids. Password hashes use bcrypt.MinCost, this is seed data.
func (s *Seeder) Users(ctx context.Context, n int) ([]uint, error) {
	usernames := make(map[string]struct{}, n)
	emails := make(map[string]struct{}, n)
	users := make([]models.User, 0, n)

	for len(users) < n {
		username := gofakeit.Username()
		if _, taken := usernames[username]; taken {
			username = fmt.Sprintf("%s%d", username, gofakeit.Number(1, 9999))
			if _, taken := usernames[username]; taken {
				continue
			}
		}
		email := gofakeit.Email()
		if _, taken := emails[email]; taken {
			continue
		}
		usernames[username] = struct{}{}
		emails[email] = struct{}{}

		hash, err := bcrypt.GenerateFromPassword(
			[]byte(gofakeit.Password(true, true, true, false, false, 16)),
			bcrypt.MinCost,
		)
		if err != nil {
			return nil, err
		}

		users = append(users, models.User{
			Username:     username,
			Email:        email,
			PasswordHash: string(hash),
		})
	}

	if err := s.DB.WithContext(ctx).CreateInBatches(&users, batchSize).Error; err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	s.log("seeded users", "count", len(ids))
	return ids, nil
}

// Products inserts the fixed catalog, skipping ids that already exist so
// reseeding an existing database keeps manual stock edits.
func (s *Seeder) Products(ctx context.Context) error {
	products := Catalog()
	err := s.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&products).Error
	if err != nil {
		return err
	}
	s.log("seeded products", "count", len(products))
	return nil
}

func (s *Seeder) Orders(ctx context.Context, userIDs []uint, n int) ([]uint, error) {
	if len(userIDs) == 0 {
		return nil, fmt.Errorf("no users to attach orders to")
	}

	statuses := []string{
		models.OrderStatusPending,
		models.OrderStatusCompleted,
		models.OrderStatusCanceled,
	}

	orders := make([]models.Order, 0, n)
	for i := 0; i < n; i++ {
		total := math.Round(gofakeit.Float64Range(10, 500)*100) / 100
		orders = append(orders, models.Order{
			UserID:      userIDs[rand.Intn(len(userIDs))],
			TotalAmount: total,
			Status:      statuses[rand.Intn(len(statuses))],
		})
	}

	if err := s.DB.WithContext(ctx).CreateInBatches(&orders, batchSize).Error; err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	s.log("seeded orders", "count", len(ids))
	return ids, nil
}

// OrderItems gives every order one item, then spreads extra random items
// across the existing orders.
func (s *Seeder) OrderItems(ctx context.Context, orderIDs []uint, extra int) error {
	if len(orderIDs) == 0 {
		return fmt.Errorf("no orders to attach items to")
	}

	catalogSize := len(Catalog())

	items := make([]models.OrderItem, 0, len(orderIDs)+extra)
	for _, orderID := range orderIDs {
		items = append(items, models.OrderItem{
			OrderID:   orderID,
			ProductID: uint(rand.Intn(catalogSize) + 1),
			Quantity:  uint(rand.Intn(10) + 1),
		})
	}
	for i := 0; i < extra; i++ {
		items = append(items, models.OrderItem{
			OrderID:   orderIDs[rand.Intn(len(orderIDs))],
			ProductID: uint(rand.Intn(catalogSize) + 1),
			Quantity:  uint(rand.Intn(10) + 1),
		})
	}

	if err := s.DB.WithContext(ctx).CreateInBatches(&items, batchSize).Error; err != nil {
		return err
	}
	s.log("seeded order items", "count", len(items))
	return nil
}

func (s *Seeder) log(msg string, args ...any) {
	if s.Log != nil {
		s.Log.Info(msg, args...)
	}
}
