package domain

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyProviderMessages(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		kind      ErrorKind
		retryable bool
	}{
		{
			name:      "wallet rejection",
			err:       errors.New("MetaMask Tx Signature: User denied transaction signature."),
			kind:      ErrorKindUserRejected,
			retryable: false,
		},
		{
			name:      "rejection wins over timeout in same message",
			err:       errors.New("request timed out: user rejected the request"),
			kind:      ErrorKindUserRejected,
			retryable: false,
		},
		{
			name:      "entrypoint prefund code",
			err:       errors.New("AA21 didn't pay prefund"),
			kind:      ErrorKindInsufficientFunds,
			retryable: false,
		},
		{
			name:      "classic insufficient funds",
			err:       errors.New("insufficient funds for gas * price + value"),
			kind:      ErrorKindInsufficientFunds,
			retryable: false,
		},
		{
			name:      "bundler 503",
			err:       errors.New("unexpected HTTP status 503 Service Unavailable"),
			kind:      ErrorKindBundlerUnavailable,
			retryable: true,
		},
		{
			name:      "bundler rate limit",
			err:       errors.New("too many requests, slow down"),
			kind:      ErrorKindBundlerUnavailable,
			retryable: true,
		},
		{
			name:      "connection refused maps to bundler unavailable",
			err:       errors.New("dial tcp 127.0.0.1:4337: connection refused"),
			kind:      ErrorKindBundlerUnavailable,
			retryable: true,
		},
		{
			name:      "bare eof maps to bundler unavailable",
			err:       errors.New("EOF"),
			kind:      ErrorKindBundlerUnavailable,
			retryable: true,
		},
		{
			name:      "timeout text",
			err:       errors.New("request timed out after 30s"),
			kind:      ErrorKindNetworkTimeout,
			retryable: true,
		},
		{
			name:      "gas estimation wins over revert in same message",
			err:       errors.New("failed to estimate gas: execution reverted"),
			kind:      ErrorKindGasEstimation,
			retryable: false,
		},
		{
			name:      "plain revert with contract reason",
			err:       errors.New("execution reverted: ChannelRegistry: name taken"),
			kind:      ErrorKindChainReverted,
			retryable: false,
		},
		{
			name:      "unrecognized message defaults to retryable unknown",
			err:       errors.New("something novel went wrong"),
			kind:      ErrorKindUnknown,
			retryable: true,
		},
		{
			name:      "matching is case insensitive",
			err:       errors.New("USER REJECTED"),
			kind:      ErrorKindUserRejected,
			retryable: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Classify(tt.err)
			assert.Equal(t, tt.kind, c.Kind)
			assert.Equal(t, tt.retryable, c.Retryable)
		})
	}
}

func TestClassifyContextErrors(t *testing.T) {
	c := Classify(context.Canceled)
	assert.Equal(t, ErrorKindUserRejected, c.Kind)
	assert.False(t, c.Retryable)

	c = Classify(fmt.Errorf("wait receipt: %w", context.Canceled))
	assert.Equal(t, ErrorKindUserRejected, c.Kind)
	assert.False(t, c.Retryable)

	c = Classify(fmt.Errorf("submit operation: %w", context.DeadlineExceeded))
	assert.Equal(t, ErrorKindNetworkTimeout, c.Kind)
	assert.True(t, c.Retryable)
}

func TestClassifyNil(t *testing.T) {
	c := Classify(nil)
	assert.Equal(t, ErrorKindUnknown, c.Kind)
	assert.False(t, c.Retryable)
}

func TestClassifySeesWrappedText(t *testing.T) {
	inner := errors.New("bundler is down for maintenance")
	c := Classify(fmt.Errorf("send message: %w", inner))

	assert.Equal(t, ErrorKindBundlerUnavailable, c.Kind)
	assert.True(t, c.Retryable)
}

func TestErrorKindAdviceCoversAllKinds(t *testing.T) {
	kinds := []ErrorKind{
		ErrorKindUserRejected,
		ErrorKindInsufficientFunds,
		ErrorKindBundlerUnavailable,
		ErrorKindNetworkTimeout,
		ErrorKindGasEstimation,
		ErrorKindChainReverted,
		ErrorKindUnknown,
	}

	for _, k := range kinds {
		require.NotEmpty(t, k.Advice(), "kind %s", k)
	}
}
