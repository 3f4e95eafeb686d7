package service

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyConnectivity(t *testing.T) {
	cases := []error{
		driver.ErrBadConn,
		context.DeadlineExceeded,
		syscall.ECONNREFUSED,
		&net.OpError{Op: "dial", Net: "tcp", Err: syscall.ECONNREFUSED},
		fmt.Errorf("exec: %w", driver.ErrBadConn),
	}

	for _, cause := range cases {
		err := classify(cause)
		require.ErrorIs(t, err, ErrUnavailable, "expected %v to classify as unavailable", cause)
	}
}

func TestClassifyPassesThroughOtherErrors(t *testing.T) {
	cause := errors.New("duplicate key value violates unique constraint")
	err := classify(cause)
	require.NotErrorIs(t, err, ErrUnavailable)
	require.Equal(t, cause, err)

	require.NoError(t, classify(nil))
}

func TestAllowTransitionIsPermissive(t *testing.T) {
	statuses := []string{"pending", "completed", "canceled", "anything_else"}
	for _, from := range statuses {
		for _, to := range statuses {
			require.NoError(t, AllowTransition(from, to))
		}
	}
}
