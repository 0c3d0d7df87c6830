package jsonrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/bnema/chanterm/internal/domain"
)

const maxRPCResponseBytes = 1 << 20

// Adapter talks JSON-RPC to an ERC-4337 bundler that also proxies
// plain eth_ calls to its node. It implements ports.Bundler.
type Adapter struct {
	Endpoint       string
	EntryPoint     domain.Address
	HTTPClient     *http.Client
	RequestTimeout time.Duration

	// PollInterval paces eth_getUserOperationReceipt while waiting for
	// a receipt.
	PollInterval time.Duration

	id atomic.Uint64
}

type rpcRequest struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      uint64        `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      uint64          `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *rpcError       `json:"error"`
}

// rpcError keeps the bundler's message text intact so failures stay
// classifiable downstream.
type rpcError struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// wireUserOperation is the hex-quantity envelope bundlers accept.
// Fields the terminal never sets go out as empty byte strings.
type wireUserOperation struct {
	Sender               string `json:"sender"`
	Nonce                string `json:"nonce"`
	InitCode             string `json:"initCode"`
	CallData             string `json:"callData"`
	CallGasLimit         string `json:"callGasLimit"`
	VerificationGasLimit string `json:"verificationGasLimit"`
	PreVerificationGas   string `json:"preVerificationGas"`
	MaxFeePerGas         string `json:"maxFeePerGas"`
	MaxPriorityFeePerGas string `json:"maxPriorityFeePerGas"`
	PaymasterAndData     string `json:"paymasterAndData"`
	Signature            string `json:"signature"`
}

type gasEstimate struct {
	CallGasLimit         string `json:"callGasLimit"`
	VerificationGasLimit string `json:"verificationGasLimit"`
	PreVerificationGas   string `json:"preVerificationGas"`
}

type wireReceipt struct {
	UserOpHash    string `json:"userOpHash"`
	Success       bool   `json:"success"`
	ActualGasUsed string `json:"actualGasUsed"`
	Reason        string `json:"reason"`
	Receipt       struct {
		TransactionHash string `json:"transactionHash"`
		BlockNumber     string `json:"blockNumber"`
	} `json:"receipt"`
}

func (a *Adapter) ChainID(ctx context.Context) (string, error) {
	var raw string
	if err := a.call(ctx, "eth_chainId", nil, &raw); err != nil {
		return "", err
	}
	id, err := parseHexQuantity(raw)
	if err != nil {
		return "", fmt.Errorf("decode chain id: %w", err)
	}
	return strconv.FormatUint(id, 10), nil
}

func (a *Adapter) BuildOperation(ctx context.Context, req domain.OperationRequest, sender domain.Address) (domain.UserOperation, error) {
	if sender.IsZero() {
		return domain.UserOperation{}, errors.New("sender address is required")
	}

	callData, err := encodeOperationCall(req)
	if err != nil {
		return domain.UserOperation{}, fmt.Errorf("encode call data: %w", err)
	}

	nonce, err := a.accountNonce(ctx, sender)
	if err != nil {
		return domain.UserOperation{}, fmt.Errorf("fetch nonce: %w", err)
	}

	gasPrice, err := a.gasPrice(ctx)
	if err != nil {
		return domain.UserOperation{}, fmt.Errorf("fetch gas price: %w", err)
	}

	op := domain.UserOperation{
		Sender:       sender,
		Nonce:        nonce,
		CallData:     callData,
		MaxFeePerGas: gasPrice,
	}

	callGasLimit, err := a.estimateGas(ctx, op)
	if err != nil {
		return domain.UserOperation{}, fmt.Errorf("estimate user operation gas: %w", err)
	}
	op.CallGasLimit = callGasLimit

	return op, nil
}

func (a *Adapter) SubmitOperation(ctx context.Context, op domain.UserOperation) (domain.OperationHandle, error) {
	if len(op.Signature) == 0 {
		return domain.OperationHandle{}, errors.New("operation is unsigned")
	}

	var hash string
	err := a.call(ctx, "eth_sendUserOperation", []interface{}{encodeWireOperation(op), a.EntryPoint.String()}, &hash)
	if err != nil {
		return domain.OperationHandle{}, fmt.Errorf("send user operation: %w", err)
	}
	if hash == "" {
		return domain.OperationHandle{}, errors.New("bundler returned an empty operation hash")
	}

	return domain.OperationHandle{UserOpHash: hash, SubmittedAt: time.Now()}, nil
}

func (a *Adapter) WaitReceipt(ctx context.Context, userOpHash string, wait time.Duration) (domain.Receipt, error) {
	if userOpHash == "" {
		return domain.Receipt{}, errors.New("user operation hash is required")
	}

	interval := a.PollInterval
	if interval <= 0 {
		interval = 3 * time.Second
	}
	if wait <= 0 {
		wait = 60 * time.Second
	}

	deadline := time.Now().Add(wait)
	for {
		receipt, found, err := a.receiptOnce(ctx, userOpHash)
		if err != nil {
			return domain.Receipt{}, err
		}
		if found {
			return receipt, nil
		}

		if time.Now().Add(interval).After(deadline) {
			return domain.Receipt{}, domain.ErrReceiptTimeout
		}

		timer := time.NewTimer(interval)
		select {
		case <-ctx.Done():
			if !timer.Stop() {
				<-timer.C
			}
			return domain.Receipt{}, ctx.Err()
		case <-timer.C:
		}
	}
}

func (a *Adapter) receiptOnce(ctx context.Context, userOpHash string) (domain.Receipt, bool, error) {
	var raw json.RawMessage
	if err := a.call(ctx, "eth_getUserOperationReceipt", []interface{}{userOpHash}, &raw); err != nil {
		return domain.Receipt{}, false, fmt.Errorf("fetch receipt: %w", err)
	}
	if len(raw) == 0 || string(raw) == "null" {
		return domain.Receipt{}, false, nil
	}

	var wire wireReceipt
	if err := json.Unmarshal(raw, &wire); err != nil {
		return domain.Receipt{}, false, fmt.Errorf("decode receipt: %w", err)
	}

	receipt := domain.Receipt{
		UserOpHash: wire.UserOpHash,
		TxHash:     wire.Receipt.TransactionHash,
		Success:    wire.Success,
		Reason:     wire.Reason,
	}
	if receipt.UserOpHash == "" {
		receipt.UserOpHash = userOpHash
	}
	if wire.Receipt.BlockNumber != "" {
		block, err := parseHexQuantity(wire.Receipt.BlockNumber)
		if err != nil {
			return domain.Receipt{}, false, fmt.Errorf("decode receipt block number: %w", err)
		}
		receipt.BlockNumber = block
	}
	if wire.ActualGasUsed != "" {
		gas, err := parseHexQuantity(wire.ActualGasUsed)
		if err != nil {
			return domain.Receipt{}, false, fmt.Errorf("decode receipt gas used: %w", err)
		}
		receipt.GasUsed = gas
	}

	return receipt, true, nil
}

func (a *Adapter) accountNonce(ctx context.Context, sender domain.Address) (uint64, error) {
	data := encodeCall(sigGetNonce, addressArg(sender), uintArg(0))

	callMsg := map[string]string{
		"to":   a.EntryPoint.String(),
		"data": hexBytes(data),
	}
	var raw string
	if err := a.call(ctx, "eth_call", []interface{}{callMsg, "latest"}, &raw); err != nil {
		return 0, err
	}
	return parseHexQuantity(raw)
}

func (a *Adapter) gasPrice(ctx context.Context) (uint64, error) {
	var raw string
	if err := a.call(ctx, "eth_gasPrice", nil, &raw); err != nil {
		return 0, err
	}
	return parseHexQuantity(raw)
}

func (a *Adapter) estimateGas(ctx context.Context, op domain.UserOperation) (uint64, error) {
	var est gasEstimate
	err := a.call(ctx, "eth_estimateUserOperationGas", []interface{}{encodeWireOperation(op), a.EntryPoint.String()}, &est)
	if err != nil {
		return 0, err
	}
	if est.CallGasLimit == "" {
		return 0, errors.New("gas estimation response missing call gas limit")
	}
	return parseHexQuantity(est.CallGasLimit)
}

func (a *Adapter) call(ctx context.Context, method string, params []interface{}, result interface{}) error {
	endpoint, err := validateEndpoint(a.Endpoint)
	if err != nil {
		return err
	}
	if params == nil {
		params = []interface{}{}
	}

	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      a.id.Add(1),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return fmt.Errorf("encode %s request: %w", method, err)
	}

	reqCtx, cancel := a.requestContext(ctx)
	defer cancel()
	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("call %s: %w", method, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("call %s: status %d", method, resp.StatusCode)
	}

	var payload rpcResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxRPCResponseBytes)).Decode(&payload); err != nil {
		return fmt.Errorf("decode %s response: %w", method, err)
	}
	if payload.Error != nil {
		return fmt.Errorf("call %s: %w", method, payload.Error)
	}
	if result == nil {
		return nil
	}
	if err := json.Unmarshal(payload.Result, result); err != nil {
		return fmt.Errorf("decode %s result: %w", method, err)
	}
	return nil
}

func (a *Adapter) httpClient() *http.Client {
	if a.HTTPClient != nil {
		return a.HTTPClient
	}
	return http.DefaultClient
}

func (a *Adapter) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	requestTimeout := a.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = 30 * time.Second
	}

	return context.WithTimeout(ctx, requestTimeout)
}

func validateEndpoint(endpoint string) (string, error) {
	if endpoint == "" {
		return "", errors.New("bundler endpoint is required")
	}

	parsed, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("parse bundler endpoint: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("bundler endpoint must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("bundler endpoint host is required")
	}
	return parsed.String(), nil
}

func encodeWireOperation(op domain.UserOperation) wireUserOperation {
	return wireUserOperation{
		Sender:               op.Sender.String(),
		Nonce:                hexQuantity(op.Nonce),
		InitCode:             "0x",
		CallData:             hexBytes(op.CallData),
		CallGasLimit:         hexQuantity(op.CallGasLimit),
		VerificationGasLimit: hexQuantity(defaultVerificationGasLimit),
		PreVerificationGas:   hexQuantity(defaultPreVerificationGas),
		MaxFeePerGas:         hexQuantity(op.MaxFeePerGas),
		MaxPriorityFeePerGas: hexQuantity(op.MaxFeePerGas),
		PaymasterAndData:     "0x",
		Signature:            hexBytes(op.Signature),
	}
}

// Verification gas is account-model dependent and the registry calls
// are uniform enough that fixed ceilings hold across operations.
const (
	defaultVerificationGasLimit = 150_000
	defaultPreVerificationGas   = 50_000
)

func parseHexQuantity(s string) (uint64, error) {
	cleaned := strings.TrimPrefix(strings.TrimSpace(s), "0x")
	if cleaned == "" {
		return 0, fmt.Errorf("empty hex quantity")
	}
	cleaned = strings.TrimLeft(cleaned, "0")
	if cleaned == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(cleaned, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("parse hex quantity %q: %w", s, err)
	}
	return v, nil
}

func hexQuantity(v uint64) string {
	return "0x" + strconv.FormatUint(v, 16)
}
