package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mkazakov/shopdata/internal/events"
	"github.com/mkazakov/shopdata/internal/logging"
	"github.com/mkazakov/shopdata/internal/service"
	"github.com/mkazakov/shopdata/internal/transport"
)

type OrderHTTP struct {
	Svc      *service.OrderService
	Producer *events.Producer
}

func (h *OrderHTTP) publish(c echo.Context, key string, event map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, events.TopicOrderEvents, key, event); err != nil {
		c.Logger().Errorf("kafka publish error: %v", err)
	}
}

func (h *OrderHTTP) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.create_order")

	var req transport.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_order_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		l.Warn("create_order_error", "status", 400, "reason", "missing required fields", "error", err)
		return err
	}

	orderID, rows, err := h.Svc.PlaceOrder(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			l.Warn("create_order_error", "status", 400, "reason", "invalid body", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrNotFound):
			l.Warn("create_order_error", "status", 404, "reason", "user does not exist", "error", err)
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrUnavailable):
			l.Error("create_order_error", "status", 503, "reason", "database connection failed", "error", err)
			return echo.NewHTTPError(http.StatusServiceUnavailable, "database connection failed")
		default:
			l.Error("create_order_error", "status", 500, "reason", "internal error", "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "error inserting order")
		}
	}

	h.publish(c, fmt.Sprint(orderID), map[string]any{
		"type":    "order_created",
		"orderID": orderID,
		"userID":  *req.UserID,
	})

	l.Info("create_order_success", "order_id", orderID)
	return c.JSON(http.StatusCreated, map[string]any{
		"message":  "Order inserted successfully",
		"order_id": orderID,
		"order":    rows,
	})
}

func (h *OrderHTTP) UpdateOrderStatus(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.update_status")

	var req transport.UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_status_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		l.Warn("update_status_error", "status", 400, "reason", "missing required fields", "error", err)
		return err
	}

	if err := h.Svc.UpdateOrderStatus(ctx, *req.OrderID, *req.NewStatus); err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			l.Warn("update_status_error", "status", 400, "reason", "transition rejected", "error", err)
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrNotFound):
			l.Warn("update_status_error", "status", 404, "reason", "order does not exist", "error", err)
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrUnavailable):
			l.Error("update_status_error", "status", 503, "reason", "database connection failed", "error", err)
			return echo.NewHTTPError(http.StatusServiceUnavailable, "database connection failed")
		default:
			l.Error("update_status_error", "status", 500, "reason", "internal error", "error", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "error updating order status")
		}
	}

	h.publish(c, fmt.Sprint(*req.OrderID), map[string]any{
		"type":       "order_status_updated",
		"orderID":    *req.OrderID,
		"new_status": *req.NewStatus,
	})

	l.Info("update_status_success", "order_id", *req.OrderID, "new_status", *req.NewStatus)
	return c.JSON(http.StatusOK, map[string]any{
		"message":    "Order status updated successfully",
		"order_id":   *req.OrderID,
		"new_status": *req.NewStatus,
	})
}
