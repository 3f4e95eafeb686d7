package httpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mkazakov/shopdata/internal/events"
	"github.com/mkazakov/shopdata/internal/logging"
	"github.com/mkazakov/shopdata/internal/service"
	"github.com/mkazakov/shopdata/internal/transport"
)

type StoreHTTP struct {
	Svc      *service.StoreService
	Producer *events.Producer
}

func (h *StoreHTTP) publish(c echo.Context, topic, key string, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, topic, key, event); err != nil {
		c.Logger().Errorf("kafka publish error: %v", err)
	}
}

func (h *StoreHTTP) listError(c echo.Context, l *slog.Logger, name string, err error) error {
	if errors.Is(err, service.ErrUnavailable) {
		l.Error(name, "status", 503, "reason", "database connection failed", "error", err)
		return echo.NewHTTPError(http.StatusServiceUnavailable, "database connection failed")
	}
	l.Error(name, "status", 500, "reason", "internal error", "error", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
}

func (h *StoreHTTP) GetUsers(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "store.get_users")

	rows, err := h.Svc.ListUsers(ctx)
	if err != nil {
		return h.listError(c, l, "get_users_error", err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *StoreHTTP) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "store.get_products")

	rows, err := h.Svc.ListProducts(ctx)
	if err != nil {
		return h.listError(c, l, "get_products_error", err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *StoreHTTP) GetOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "store.get_orders")

	rows, err := h.Svc.ListOrders(ctx)
	if err != nil {
		return h.listError(c, l, "get_orders_error", err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *StoreHTTP) GetOrderItems(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "store.get_order_items")

	rows, err := h.Svc.ListOrderItems(ctx)
	if err != nil {
		return h.listError(c, l, "get_order_items_error", err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *StoreHTTP) GetData(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "store.get_data")

	rows, err := h.Svc.Dataset(ctx)
	if err != nil {
		return h.listError(c, l, "get_data_error", err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *StoreHTTP) CreateUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "store.create_user")

	var req transport.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_user_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		l.Warn("create_user_error", "status", 400, "reason", "missing required fields", "error", err)
		return err
	}

	user, err := h.Svc.CreateUser(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrUnavailable) {
			l.Error("create_user_error", "status", 503, "reason", "database connection failed", "error", err)
			return echo.NewHTTPError(http.StatusServiceUnavailable, "database connection failed")
		}
		l.Error("create_user_error", "status", 500, "reason", "error inserting user", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "error inserting user")
	}

	h.publish(c, events.TopicUserEvents, fmt.Sprint(user.ID), map[string]any{
		"type":     "user_created",
		"userID":   user.ID,
		"username": user.Username,
	})

	l.Info("create_user_success", "user_id", user.ID)
	return c.JSON(http.StatusCreated, map[string]any{
		"message": "User inserted successfully",
	})
}
