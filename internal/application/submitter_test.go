package application

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/chanterm/internal/domain"
	"github.com/bnema/chanterm/internal/ports/mocks"
	"github.com/bnema/chanterm/internal/retry"
)

// fakeClock pins Now and fires every After immediately, recording the
// requested delays so backoff tests never sleep.
type fakeClock struct {
	mu    sync.Mutex
	now   time.Time
	slept []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, time.March, 7, 12, 0, 0, 0, time.UTC)}
}

func (f *fakeClock) Now() time.Time { return f.now }

func (f *fakeClock) After(d time.Duration) <-chan time.Time {
	f.mu.Lock()
	f.slept = append(f.slept, d)
	f.mu.Unlock()

	ch := make(chan time.Time, 1)
	ch <- f.now.Add(d)
	return ch
}

func (f *fakeClock) sleeps() []time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]time.Duration(nil), f.slept...)
}

func testSubmitterConfig() SubmitterConfig {
	return SubmitterConfig{
		SubmitPolicy: retry.Policy{MaxAttempts: 3, InitialDelay: 100 * time.Millisecond, MaxDelay: time.Second, Multiplier: 2},
		ReceiptWait:  30 * time.Second,
	}
}

func testOperationFixtures() (domain.OperationRequest, domain.UserOperation, domain.UserOperation, domain.OperationHandle) {
	req := domain.OperationRequest{Kind: domain.OpSendMessage, Channel: "ch-1", Body: "hello"}
	op := domain.UserOperation{
		Sender:       "0x1111111111111111111111111111111111111111",
		Nonce:        7,
		CallData:     []byte{0x01, 0x02},
		CallGasLimit: 90_000,
		MaxFeePerGas: 2_000_000_000,
	}
	signed := op
	signed.Signature = []byte{0xaa, 0xbb}
	handle := domain.OperationHandle{UserOpHash: "0xcafe0000000000000000000000000000000000000000000000000000000000ff"}
	return req, op, signed, handle
}

func TestSubmitterConfirmsOnFirstAttempt(t *testing.T) {
	bundler := mocks.NewMockBundler(t)
	wallet := mocks.NewMockWallet(t)
	clock := newFakeClock()
	sub := NewSubmitter(bundler, wallet, clock, nil, testSubmitterConfig())

	req, op, signed, handle := testOperationFixtures()
	receipt := domain.Receipt{UserOpHash: handle.UserOpHash, TxHash: "0xtx", BlockNumber: 12, GasUsed: 81_000, Success: true}

	bundler.EXPECT().BuildOperation(mockAnyContext(), req, op.Sender).Return(op, nil)
	wallet.EXPECT().SignOperation(mockAnyContext(), op).Return(signed, nil)
	bundler.EXPECT().SubmitOperation(mockAnyContext(), signed).Return(handle, nil)
	bundler.EXPECT().WaitReceipt(mockAnyContext(), handle.UserOpHash, 30*time.Second).Return(receipt, nil)

	res, err := sub.Submit(context.Background(), SubmitRequest{Request: req, Sender: op.Sender})
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeConfirmed, res.Outcome)
	assert.Equal(t, handle, res.Handle)
	require.NotNil(t, res.Receipt)
	assert.Equal(t, uint64(12), res.Receipt.BlockNumber)
	assert.Equal(t, 1, res.Attempts)
	assert.Empty(t, clock.sleeps())
}

func TestSubmitterRetriesTransientSubmitFailures(t *testing.T) {
	bundler := mocks.NewMockBundler(t)
	wallet := mocks.NewMockWallet(t)
	clock := newFakeClock()
	sub := NewSubmitter(bundler, wallet, clock, nil, testSubmitterConfig())

	req, op, signed, handle := testOperationFixtures()
	receipt := domain.Receipt{UserOpHash: handle.UserOpHash, BlockNumber: 40, Success: true}

	bundler.EXPECT().BuildOperation(mockAnyContext(), req, op.Sender).Return(op, nil)
	wallet.EXPECT().SignOperation(mockAnyContext(), op).Return(signed, nil)
	bundler.EXPECT().SubmitOperation(mockAnyContext(), signed).
		Return(domain.OperationHandle{}, errors.New("post user operation: status 503 service unavailable")).Twice()
	bundler.EXPECT().SubmitOperation(mockAnyContext(), signed).Return(handle, nil).Once()
	bundler.EXPECT().WaitReceipt(mockAnyContext(), handle.UserOpHash, 30*time.Second).Return(receipt, nil)

	res, err := sub.Submit(context.Background(), SubmitRequest{Request: req, Sender: op.Sender})
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeConfirmed, res.Outcome)
	assert.Equal(t, 3, res.Attempts)
	assert.Equal(t, []time.Duration{100 * time.Millisecond, 200 * time.Millisecond}, clock.sleeps())
}

func TestSubmitterStopsOnUserRejection(t *testing.T) {
	bundler := mocks.NewMockBundler(t)
	wallet := mocks.NewMockWallet(t)
	clock := newFakeClock()
	sub := NewSubmitter(bundler, wallet, clock, nil, testSubmitterConfig())

	req, op, signed, _ := testOperationFixtures()

	bundler.EXPECT().BuildOperation(mockAnyContext(), req, op.Sender).Return(op, nil)
	wallet.EXPECT().SignOperation(mockAnyContext(), op).Return(signed, nil)
	bundler.EXPECT().SubmitOperation(mockAnyContext(), signed).
		Return(domain.OperationHandle{}, errors.New("user rejected the request")).Once()

	res, err := sub.Submit(context.Background(), SubmitRequest{Request: req, Sender: op.Sender})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user rejected")
	assert.Equal(t, domain.ErrorKindUserRejected, domain.Classify(err).Kind)
	assert.Equal(t, 1, res.Attempts)
	assert.Empty(t, clock.sleeps())
}

func TestSubmitterGivesUpAfterAttemptBudget(t *testing.T) {
	bundler := mocks.NewMockBundler(t)
	wallet := mocks.NewMockWallet(t)
	clock := newFakeClock()
	sub := NewSubmitter(bundler, wallet, clock, nil, testSubmitterConfig())

	req, op, signed, _ := testOperationFixtures()

	bundler.EXPECT().BuildOperation(mockAnyContext(), req, op.Sender).Return(op, nil)
	wallet.EXPECT().SignOperation(mockAnyContext(), op).Return(signed, nil)
	bundler.EXPECT().SubmitOperation(mockAnyContext(), signed).
		Return(domain.OperationHandle{}, errors.New("dial tcp 127.0.0.1:4337: connection refused")).Times(3)

	res, err := sub.Submit(context.Background(), SubmitRequest{Request: req, Sender: op.Sender})
	require.Error(t, err)
	assert.Equal(t, 3, res.Attempts)
	assert.True(t, domain.Classify(err).Retryable, "the final error should stay classifiable")
	assert.Len(t, clock.sleeps(), 2)
}

func TestSubmitterReceiptTimeoutResolvesAmbiguous(t *testing.T) {
	bundler := mocks.NewMockBundler(t)
	wallet := mocks.NewMockWallet(t)
	clock := newFakeClock()
	sub := NewSubmitter(bundler, wallet, clock, nil, testSubmitterConfig())

	req, op, signed, handle := testOperationFixtures()

	bundler.EXPECT().BuildOperation(mockAnyContext(), req, op.Sender).Return(op, nil)
	wallet.EXPECT().SignOperation(mockAnyContext(), op).Return(signed, nil)
	bundler.EXPECT().SubmitOperation(mockAnyContext(), signed).Return(handle, nil).Once()
	bundler.EXPECT().WaitReceipt(mockAnyContext(), handle.UserOpHash, 30*time.Second).
		Return(domain.Receipt{}, fmt.Errorf("poll receipt: %w", domain.ErrReceiptTimeout))

	res, err := sub.Submit(context.Background(), SubmitRequest{Request: req, Sender: op.Sender})
	require.NoError(t, err, "an exhausted receipt wait is a resolution, not a failure")
	assert.Equal(t, domain.OutcomeAmbiguous, res.Outcome)
	assert.Equal(t, handle, res.Handle)
	assert.Nil(t, res.Receipt)
	assert.Equal(t, 1, res.Attempts)
}

func TestSubmitterPropagatesReceiptTransportFailure(t *testing.T) {
	bundler := mocks.NewMockBundler(t)
	wallet := mocks.NewMockWallet(t)
	clock := newFakeClock()
	sub := NewSubmitter(bundler, wallet, clock, nil, testSubmitterConfig())

	req, op, signed, handle := testOperationFixtures()

	bundler.EXPECT().BuildOperation(mockAnyContext(), req, op.Sender).Return(op, nil)
	wallet.EXPECT().SignOperation(mockAnyContext(), op).Return(signed, nil)
	bundler.EXPECT().SubmitOperation(mockAnyContext(), signed).Return(handle, nil).Once()
	bundler.EXPECT().WaitReceipt(mockAnyContext(), handle.UserOpHash, 30*time.Second).
		Return(domain.Receipt{}, errors.New("read receipt: connection reset by peer"))

	res, err := sub.Submit(context.Background(), SubmitRequest{Request: req, Sender: op.Sender})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wait receipt")
	assert.Equal(t, handle, res.Handle)
}

func TestSubmitterMarksRevertedReceipts(t *testing.T) {
	bundler := mocks.NewMockBundler(t)
	wallet := mocks.NewMockWallet(t)
	clock := newFakeClock()
	sub := NewSubmitter(bundler, wallet, clock, nil, testSubmitterConfig())

	req, op, signed, handle := testOperationFixtures()
	receipt := domain.Receipt{UserOpHash: handle.UserOpHash, BlockNumber: 55, Success: false, Reason: "channel name taken"}

	bundler.EXPECT().BuildOperation(mockAnyContext(), req, op.Sender).Return(op, nil)
	wallet.EXPECT().SignOperation(mockAnyContext(), op).Return(signed, nil)
	bundler.EXPECT().SubmitOperation(mockAnyContext(), signed).Return(handle, nil)
	bundler.EXPECT().WaitReceipt(mockAnyContext(), handle.UserOpHash, 30*time.Second).Return(receipt, nil)

	res, err := sub.Submit(context.Background(), SubmitRequest{Request: req, Sender: op.Sender})
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeReverted, res.Outcome)
	require.NotNil(t, res.Receipt)
	assert.Equal(t, "channel name taken", res.Receipt.Reason)
}

func TestSubmitterSignsWithSessionKeyWhenRequested(t *testing.T) {
	bundler := mocks.NewMockBundler(t)
	wallet := mocks.NewMockWallet(t)
	clock := newFakeClock()
	sub := NewSubmitter(bundler, wallet, clock, nil, testSubmitterConfig())

	req, op, signed, handle := testOperationFixtures()
	session := domain.Address("0x2222222222222222222222222222222222222222")
	receipt := domain.Receipt{UserOpHash: handle.UserOpHash, BlockNumber: 9, Success: true}

	bundler.EXPECT().BuildOperation(mockAnyContext(), req, op.Sender).Return(op, nil)
	wallet.EXPECT().SignWithSession(mockAnyContext(), op, session).Return(signed, nil)
	bundler.EXPECT().SubmitOperation(mockAnyContext(), signed).Return(handle, nil)
	bundler.EXPECT().WaitReceipt(mockAnyContext(), handle.UserOpHash, 30*time.Second).Return(receipt, nil)

	res, err := sub.Submit(context.Background(), SubmitRequest{Request: req, Sender: op.Sender, Session: &session})
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeConfirmed, res.Outcome)
}

func TestSubmitterBuildFailureSkipsSigningAndSubmission(t *testing.T) {
	bundler := mocks.NewMockBundler(t)
	wallet := mocks.NewMockWallet(t)
	clock := newFakeClock()
	sub := NewSubmitter(bundler, wallet, clock, nil, testSubmitterConfig())

	req, op, _, _ := testOperationFixtures()

	bundler.EXPECT().BuildOperation(mockAnyContext(), req, op.Sender).
		Return(domain.UserOperation{}, errors.New("estimate gas: aa21 didn't pay prefund"))

	_, err := sub.Submit(context.Background(), SubmitRequest{Request: req, Sender: op.Sender})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "build operation")
	assert.Equal(t, domain.ErrorKindInsufficientFunds, domain.Classify(err).Kind)
}

func TestSubmitterSignFailureSkipsSubmission(t *testing.T) {
	bundler := mocks.NewMockBundler(t)
	wallet := mocks.NewMockWallet(t)
	clock := newFakeClock()
	sub := NewSubmitter(bundler, wallet, clock, nil, testSubmitterConfig())

	req, op, _, _ := testOperationFixtures()

	bundler.EXPECT().BuildOperation(mockAnyContext(), req, op.Sender).Return(op, nil)
	wallet.EXPECT().SignOperation(mockAnyContext(), op).
		Return(domain.UserOperation{}, errors.New("signature denied in wallet"))

	_, err := sub.Submit(context.Background(), SubmitRequest{Request: req, Sender: op.Sender})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sign operation")
	assert.Equal(t, domain.ErrorKindUserRejected, domain.Classify(err).Kind)
}

func mockAnyContext() interface{} {
	return mock.Anything
}
