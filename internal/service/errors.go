package service

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"os"
	"syscall"
)

var (
	ErrValidation  = errors.New("validation")            // 400
	ErrNotFound    = errors.New("not found")             // 404
	ErrUnavailable = errors.New("datastore unavailable") // 503
)

// classify wraps connectivity-shaped datastore errors in ErrUnavailable so
// callers can answer 503 instead of 500. Everything else passes through and
// ends up as an internal error.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if connectivity(err) {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return err
}

func connectivity(err error) bool {
	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, os.ErrDeadlineExceeded) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.EPIPE) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
