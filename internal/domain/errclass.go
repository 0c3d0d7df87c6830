package domain

import (
	"context"
	"errors"
	"strings"
)

type ErrorKind string

const (
	ErrorKindUserRejected       ErrorKind = "user_rejected"
	ErrorKindInsufficientFunds  ErrorKind = "insufficient_funds"
	ErrorKindBundlerUnavailable ErrorKind = "bundler_unavailable"
	ErrorKindNetworkTimeout     ErrorKind = "network_timeout"
	ErrorKindGasEstimation      ErrorKind = "gas_estimation_failure"
	ErrorKindChainReverted      ErrorKind = "chain_reverted"
	ErrorKindUnknown            ErrorKind = "unknown"
)

type Classification struct {
	Kind      ErrorKind
	Retryable bool
}

type classifyRule struct {
	kind      ErrorKind
	retryable bool
	patterns  []string
}

// Rules are checked in order; the first pattern hit wins. The
// vocabularies are disjoint in practice, so ordering only decides
// genuinely ambiguous messages: rejection and prefund phrases are
// fatal and go first, revert markers go last among the named kinds
// because revert reasons often quote unrelated contract text.
var classifyRules = []classifyRule{
	{
		kind:      ErrorKindUserRejected,
		retryable: false,
		patterns: []string{
			"user rejected",
			"user denied",
			"rejected by user",
			"user cancelled",
			"user canceled",
			"request rejected",
			"signature denied",
		},
	},
	{
		kind:      ErrorKindInsufficientFunds,
		retryable: false,
		patterns: []string{
			"insufficient funds",
			"insufficient balance",
			"didn't pay prefund",
			"prefund",
			"exceeds balance",
			"aa21",
		},
	},
	{
		kind:      ErrorKindBundlerUnavailable,
		retryable: true,
		patterns: []string{
			"bundler unavailable",
			"bundler is down",
			"service unavailable",
			"too many requests",
			"status 429",
			"status 502",
			"status 503",
		},
	},
	{
		kind:      ErrorKindNetworkTimeout,
		retryable: true,
		patterns: []string{
			"deadline exceeded",
			"timed out",
			"timeout",
		},
	},
	{
		kind:      ErrorKindBundlerUnavailable,
		retryable: true,
		patterns: []string{
			"connection refused",
			"connection reset",
			"broken pipe",
			"no such host",
			"dial tcp",
			"network is unreachable",
			"eof",
		},
	},
	{
		kind:      ErrorKindGasEstimation,
		retryable: true,
		patterns: []string{
			"gas estimation",
			"estimate gas",
			"gas limit",
			"max fee per gas",
		},
	},
	{
		kind:      ErrorKindChainReverted,
		retryable: false,
		patterns: []string{
			"execution reverted",
			"reverted",
			"revert",
		},
	},
}

// Classify maps a raw collaborator error to an error kind and a
// retryability flag. It is total: unrecognized errors come back as
// ErrorKindUnknown and retryable, so transient failures from backends
// with unfamiliar message formats still get their retry budget.
func Classify(err error) Classification {
	if err == nil {
		return Classification{Kind: ErrorKindUnknown, Retryable: false}
	}

	// A canceled context means the caller walked away; retrying would
	// just burn attempts against a dead context.
	if errors.Is(err, context.Canceled) {
		return Classification{Kind: ErrorKindUserRejected, Retryable: false}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return Classification{Kind: ErrorKindNetworkTimeout, Retryable: true}
	}

	normalized := strings.ToLower(err.Error())
	for _, rule := range classifyRules {
		for _, pattern := range rule.patterns {
			if strings.Contains(normalized, pattern) {
				return Classification{Kind: rule.kind, Retryable: rule.retryable}
			}
		}
	}

	return Classification{Kind: ErrorKindUnknown, Retryable: true}
}

// Advice returns the follow-up suggestion surfaced with a failure of
// this kind. Empty when there is nothing actionable to suggest.
func (k ErrorKind) Advice() string {
	switch k {
	case ErrorKindUserRejected:
		return "approve the request in your signer and try again"
	case ErrorKindInsufficientFunds:
		return "fund your smart account, then retry"
	case ErrorKindChainReverted:
		return "the chain rejected this request; change it before retrying"
	case ErrorKindBundlerUnavailable:
		return "the bundler looks unreachable; try again shortly"
	case ErrorKindNetworkTimeout:
		return "the network is slow; the operation may still complete"
	case ErrorKindGasEstimation:
		return "gas estimation failed; try again shortly"
	default:
		return ""
	}
}
