package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mkazakov/shopdata/internal/events"
	"github.com/mkazakov/shopdata/internal/models"
	"github.com/mkazakov/shopdata/internal/repo"
	"github.com/mkazakov/shopdata/internal/service"
)

type testEnv struct {
	T  *testing.T
	E  *echo.Echo
	DB *gorm.DB
	O  *OrderHTTP
	S  *StoreHTTP
}

func newTestEnv(t *testing.T) *testEnv {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}
	if err := models.Migrate(db); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	e := echo.New()
	e.Validator = NewValidator()

	gormRepo := &repo.GormRepo{DB: db}
	producer := &events.Producer{}

	return &testEnv{
		T:  t,
		E:  e,
		DB: db,
		O:  &OrderHTTP{Svc: &service.OrderService{Repo: gormRepo}, Producer: producer},
		S:  &StoreHTTP{Svc: &service.StoreService{Repo: gormRepo}, Producer: producer},
	}
}

func (env *testEnv) doJSONRequest(method, path string, body interface{}) (*httptest.ResponseRecorder, echo.Context) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, c
}

func (env *testEnv) seedUser(username, email string) models.User {
	user := models.User{Username: username, Email: email, PasswordHash: "hash"}
	require.NoError(env.T, env.DB.Create(&user).Error)
	return user
}

func (env *testEnv) seedProduct(name, category string, price float64, stock uint) models.Product {
	product := models.Product{Name: name, Category: category, Price: price, Stock: stock}
	require.NoError(env.T, env.DB.Create(&product).Error)
	return product
}
