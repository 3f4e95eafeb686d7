package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/mkazakov/shopdata/internal/models"
)

func TestCreateOrder(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser("test_user", "test_user@example.com")
	p1 := env.seedProduct("Wireless Mouse", "Electronics", 25.99, 120)
	p2 := env.seedProduct("Mechanical Keyboard", "Electronics", 89.99, 75)

	payload := map[string]any{
		"user_id":      user.ID,
		"total_amount": 141.97,
		"status":       "pending",
		"products": []map[string]any{
			{"product_id": p1.ID, "quantity": 2},
			{"product_id": p2.ID, "quantity": 1},
		},
	}

	rec, c := env.doJSONRequest(http.MethodPost, "/api/orders", payload)
	require.NoError(t, env.O.CreateOrder(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Message string `json:"message"`
		OrderID uint   `json:"order_id"`
		Order   []struct {
			OrderID     uint    `json:"order_id"`
			Username    string  `json:"username"`
			ProductName string  `json:"product_name"`
			TotalAmount float64 `json:"total_amount"`
			Quantity    uint    `json:"quantity"`
		} `json:"order"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "Order inserted successfully", resp.Message)
	require.NotZero(t, resp.OrderID)
	require.Len(t, resp.Order, 2)
	require.Equal(t, "test_user", resp.Order[0].Username)

	var count int64
	require.NoError(t, env.DB.Model(&models.Order{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestCreateOrderMissingFields(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser("test_user", "test_user@example.com")

	payload := map[string]any{
		"user_id": 1,
		"status":  "pending",
		"products": []map[string]any{
			{"product_id": 1, "quantity": 1},
		},
	}

	_, c := env.doJSONRequest(http.MethodPost, "/api/orders", payload)
	err := env.O.CreateOrder(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusBadRequest, he.Code)
}

func TestCreateOrderNonNumericTotal(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser("test_user", "test_user@example.com")

	payload := map[string]any{
		"user_id":      1,
		"total_amount": "not-a-number",
		"status":       "pending",
		"products": []map[string]any{
			{"product_id": 1, "quantity": 1},
		},
	}

	_, c := env.doJSONRequest(http.MethodPost, "/api/orders", payload)
	err := env.O.CreateOrder(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusBadRequest, he.Code)
}

func TestCreateOrderUnknownUser(t *testing.T) {
	env := newTestEnv(t)
	env.seedProduct("Wireless Mouse", "Electronics", 25.99, 120)

	payload := map[string]any{
		"user_id":      99999,
		"total_amount": 10.0,
		"status":       "pending",
		"products": []map[string]any{
			{"product_id": 1, "quantity": 1},
		},
	}

	_, c := env.doJSONRequest(http.MethodPost, "/api/orders", payload)
	err := env.O.CreateOrder(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusNotFound, he.Code)

	var count int64
	require.NoError(t, env.DB.Model(&models.Order{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestCreateOrderMalformedItemPersistsNothing(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser("test_user", "test_user@example.com")
	env.seedProduct("Wireless Mouse", "Electronics", 25.99, 120)

	payload := map[string]any{
		"user_id":      user.ID,
		"total_amount": 60.0,
		"status":       "pending",
		"products": []map[string]any{
			{"product_id": 1, "quantity": 2},
			{"quantity": 3},
		},
	}

	_, c := env.doJSONRequest(http.MethodPost, "/api/orders", payload)
	err := env.O.CreateOrder(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusBadRequest, he.Code)

	var orderCount, itemCount int64
	require.NoError(t, env.DB.Model(&models.Order{}).Count(&orderCount).Error)
	require.NoError(t, env.DB.Model(&models.OrderItem{}).Count(&itemCount).Error)
	require.Zero(t, orderCount)
	require.Zero(t, itemCount)
}

func TestCreateOrderOverwritesStock(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser("test_user", "test_user@example.com")
	product := env.seedProduct("USB-C Charger", "Electronics", 15.99, 200)

	payload := map[string]any{
		"user_id":      user.ID,
		"total_amount": 15.99,
		"status":       "completed",
		"products": []map[string]any{
			{"product_id": product.ID, "quantity": 2},
		},
		"updated_stock": []map[string]any{
			{"product_id": product.ID, "new_stock": 17},
		},
	}

	rec, c := env.doJSONRequest(http.MethodPost, "/api/orders", payload)
	require.NoError(t, env.O.CreateOrder(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var updated models.Product
	require.NoError(t, env.DB.First(&updated, product.ID).Error)
	require.EqualValues(t, 17, updated.Stock)
}

func TestUpdateOrderStatusHandler(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser("test_user", "test_user@example.com")

	order := models.Order{UserID: user.ID, TotalAmount: 10, Status: models.OrderStatusPending}
	require.NoError(t, env.DB.Create(&order).Error)

	payload := map[string]any{
		"order_id":   order.ID,
		"new_status": "completed",
	}

	rec, c := env.doJSONRequest(http.MethodPatch, "/api/orders/status", payload)
	require.NoError(t, env.O.UpdateOrderStatus(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "Order status updated successfully", resp["message"])
	require.EqualValues(t, order.ID, resp["order_id"])
	require.Equal(t, "completed", resp["new_status"])

	recGet, cGet := env.doJSONRequest(http.MethodGet, "/api/get_orders", nil)
	require.NoError(t, env.S.GetOrders(cGet))
	require.Equal(t, http.StatusOK, recGet.Code)

	var orders []map[string]any
	require.NoError(t, json.Unmarshal(recGet.Body.Bytes(), &orders))
	require.Len(t, orders, 1)
	require.Equal(t, "completed", orders[0]["status"])
}

func TestUpdateOrderStatusUnknownOrder(t *testing.T) {
	env := newTestEnv(t)

	payload := map[string]any{
		"order_id":   99999,
		"new_status": "completed",
	}

	_, c := env.doJSONRequest(http.MethodPatch, "/api/orders/status", payload)
	err := env.O.UpdateOrderStatus(c)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusNotFound, he.Code)
}
