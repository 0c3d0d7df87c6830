package application

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bnema/chanterm/internal/domain"
	"github.com/bnema/chanterm/internal/retry"
)

// indexLagPolicy paces directory lookups right after a confirmed
// write, while the indexer catches up with the chain.
var indexLagPolicy = retry.Policy{
	MaxAttempts:  5,
	InitialDelay: 400 * time.Millisecond,
	MaxDelay:     2 * time.Second,
	Multiplier:   2,
}

func (it *Interpreter) dispatchConnect() Outcome {
	if it.state.IsConnected() {
		return Outcome{Lines: []domain.Line{
			domain.InfoLine("already connected as " + it.state.Account.Short()),
		}}
	}
	if it.state.Connection == domain.ConnectionConnecting {
		return Outcome{Lines: []domain.Line{domain.InfoLine("connection already in progress")}}
	}

	it.state.Connection = domain.ConnectionConnecting
	gen := it.state.Generation
	profile := it.profile

	eff := func(ctx context.Context) Event {
		addr, err := it.wallet.Address(ctx)
		if err != nil {
			return ConnectResult{Generation: gen, Err: fmt.Errorf("derive wallet address: %w", err)}
		}

		chainID, err := it.bundler.ChainID(ctx)
		if err != nil {
			return ConnectResult{Generation: gen, Err: fmt.Errorf("probe bundler: %w", err)}
		}
		if profile.ChainID != "" && chainID != profile.ChainID {
			return ConnectResult{Generation: gen, Err: fmt.Errorf(
				"bundler reports chain %s but profile %q expects %s", chainID, profile.Name, profile.ChainID)}
		}

		username, err := it.directory.ResolveName(ctx, addr)
		if err != nil {
			it.log.Warn("resolve username", zap.Error(err))
			username = ""
		}

		rt, err := it.runtime.GetByProfile(ctx, profile.Name)
		if err != nil && !errors.Is(err, domain.ErrRuntimeNotFound) {
			it.log.Warn("load runtime", zap.Error(err))
		}
		rt.PruneExpired(it.clock.Now())
		if username == "" {
			username = rt.Username
		}

		return ConnectResult{
			Generation: gen,
			Account:    addr,
			ChainID:    chainID,
			Username:   username,
			Runtime:    rt,
		}
	}

	return Outcome{
		Lines:  []domain.Line{domain.InfoLine("connecting to " + profile.BundlerURL)},
		Effect: eff,
	}
}

func (it *Interpreter) applyConnect(e ConnectResult) Outcome {
	if e.Err != nil {
		it.state.Connection = domain.ConnectionDisconnected
		return Outcome{Lines: classifiedLines("connect failed", e.Err)}
	}

	it.state.Connection = domain.ConnectionConnected
	it.state.Account = e.Account
	it.state.Username = e.Username
	it.state.Delegation = e.Runtime.Delegation

	lines := []domain.Line{
		domain.SystemLine(fmt.Sprintf("connected as %s on chain %s", e.Account.Short(), e.ChainID)),
	}
	if e.Username != "" {
		lines = append(lines, domain.InfoLine("signed in as "+e.Username))
	}
	if it.state.Delegation.ActiveAt(it.clock.Now()) {
		lines = append(lines, domain.SystemLine(
			"delegated session restored, expires "+it.state.Delegation.ExpiresAt.Format(time.RFC3339)))
	}
	if e.Runtime.LastChannel != "" {
		display := domain.DisplayChannelName(e.Runtime.LastChannel)
		lines = append(lines, domain.SystemLine(fmt.Sprintf("previous channel: %s ('join %s' to re-enter)", display, display)))
	}
	return Outcome{Lines: lines}
}

func (it *Interpreter) dispatchDisconnect() Outcome {
	if it.state.Connection == domain.ConnectionDisconnected {
		return Outcome{Lines: []domain.Line{domain.InfoLine("not connected")}}
	}

	rt := it.runtimeSnapshot()
	it.state.Reset()
	it.pending = map[uuid.UUID]domain.PendingOperation{}
	gen := it.state.Generation

	outcome := Outcome{Lines: []domain.Line{domain.SystemLine("disconnected")}}
	if rt.Resumable() {
		outcome.Effect = func(ctx context.Context) Event {
			return PersistResult{Generation: gen, What: "runtime", Err: it.runtime.Save(ctx, rt)}
		}
	}
	return outcome
}

func (it *Interpreter) dispatchSend(raw string) Outcome {
	if !it.limiter.Allow() {
		return Outcome{Lines: []domain.Line{domain.WarningLine("sending too fast, give it a second")}}
	}

	now := it.clock.Now()
	ch := *it.state.Channel
	msg := domain.Message{
		LocalID:    uuid.New(),
		Channel:    ch.ID,
		Author:     it.state.Account,
		AuthorName: it.state.Username,
		Body:       raw,
		SentAt:     now,
		Delivery:   domain.DeliveryPending,
	}

	req := domain.OperationRequest{Kind: domain.OpSendMessage, Channel: ch.ID, Body: raw}
	pend := domain.NewPendingOperation(req, it.state.Generation, now)
	it.pending[pend.ID] = pend

	gen := it.state.Generation
	sender := it.state.Account
	session := it.sessionSigner(now)

	eff := func(ctx context.Context) Event {
		if err := it.transcript.Append(ctx, msg); err != nil {
			it.log.Warn("cache outgoing message", zap.Error(err))
		}
		res, err := it.submitter.Submit(ctx, SubmitRequest{Request: req, Sender: sender, Session: session})
		return SendResult{Generation: gen, OpID: pend.ID, LocalID: msg.LocalID, Result: res, Err: err}
	}

	return Outcome{
		Lines:  []domain.Line{domain.OutputLine(formatMessageLine(msg) + " (sending)")},
		Effect: eff,
	}
}

func (it *Interpreter) applySend(e SendResult) Outcome {
	if _, ok := it.pending[e.OpID]; !ok {
		it.log.Debug("send completion without pending record", zap.String("op", e.OpID.String()))
		return Outcome{}
	}
	delete(it.pending, e.OpID)

	if e.Err != nil {
		return Outcome{
			Lines:  classifiedLines("send failed", e.Err),
			Effect: it.persistDelivery(e.Generation, e.LocalID, domain.DeliveryFailed),
		}
	}

	switch e.Result.Outcome {
	case domain.OutcomeConfirmed:
		text := fmt.Sprintf("delivered (block %d)", e.Result.Receipt.BlockNumber)
		if e.Result.Attempts > 1 {
			text += fmt.Sprintf(" after %d attempts", e.Result.Attempts)
		}
		return Outcome{
			Lines:  []domain.Line{domain.InfoLine(text)},
			Effect: it.persistDelivery(e.Generation, e.LocalID, domain.DeliveryConfirmed),
		}
	case domain.OutcomeReverted:
		return Outcome{
			Lines:  classifiedLines("message rejected on-chain", receiptError(e.Result.Receipt)),
			Effect: it.persistDelivery(e.Generation, e.LocalID, domain.DeliveryFailed),
		}
	default:
		return Outcome{
			Lines: []domain.Line{
				domain.WarningLine("delivery unconfirmed: no receipt for " + shortHash(e.Result.Handle.UserOpHash)),
				domain.InfoLine("it may still arrive; 'history' will show it if it landed"),
			},
			Effect: it.persistDelivery(e.Generation, e.LocalID, domain.DeliveryAmbiguous),
		}
	}
}

func (it *Interpreter) dispatchCreate(cmd domain.Command) Outcome {
	if len(cmd.Args) != 1 {
		return usageOutcome("create #channel")
	}
	name, err := domain.NormalizeChannelName(cmd.Args[0])
	if err != nil {
		return Outcome{Lines: []domain.Line{domain.ErrorLine(err.Error())}}
	}

	now := it.clock.Now()
	req := domain.OperationRequest{Kind: domain.OpCreateChannel, Channel: name}
	pend := domain.NewPendingOperation(req, it.state.Generation, now)
	it.pending[pend.ID] = pend

	gen := it.state.Generation
	sender := it.state.Account

	eff := func(ctx context.Context) Event {
		res, err := it.submitter.Submit(ctx, SubmitRequest{Request: req, Sender: sender})
		ev := ChannelOpResult{Generation: gen, OpID: pend.ID, Kind: domain.OpCreateChannel, Name: name, Result: res, Err: err}
		if err != nil || res.Outcome != domain.OutcomeConfirmed {
			return ev
		}
		ref, lookupErr := it.lookupChannelWithLag(ctx, name)
		if lookupErr != nil {
			it.log.Warn("created channel not indexed yet", zap.String("channel", name), zap.Error(lookupErr))
			return ev
		}
		ev.Channel = ref
		return ev
	}

	return Outcome{
		Lines:  []domain.Line{domain.InfoLine("creating " + domain.DisplayChannelName(name) + ", this signs an on-chain operation")},
		Effect: eff,
	}
}

func (it *Interpreter) dispatchJoin(cmd domain.Command) Outcome {
	if len(cmd.Args) != 1 {
		return usageOutcome("join #channel")
	}
	name, err := domain.NormalizeChannelName(cmd.Args[0])
	if err != nil {
		return Outcome{Lines: []domain.Line{domain.ErrorLine(err.Error())}}
	}
	if it.state.Channel != nil && it.state.Channel.Name == name {
		return Outcome{Lines: []domain.Line{domain.InfoLine("already in " + domain.DisplayChannelName(name))}}
	}

	now := it.clock.Now()
	req := domain.OperationRequest{Kind: domain.OpJoinChannel, Channel: name}
	pend := domain.NewPendingOperation(req, it.state.Generation, now)
	it.pending[pend.ID] = pend

	gen := it.state.Generation
	sender := it.state.Account

	eff := func(ctx context.Context) Event {
		ref, err := it.lookupChannelWithLag(ctx, name)
		if err != nil {
			return ChannelOpResult{Generation: gen, OpID: pend.ID, Kind: domain.OpJoinChannel, Name: name, Err: err}
		}
		res, err := it.submitter.Submit(ctx, SubmitRequest{
			Request: domain.OperationRequest{Kind: domain.OpJoinChannel, Channel: ref.ID},
			Sender:  sender,
		})
		return ChannelOpResult{Generation: gen, OpID: pend.ID, Kind: domain.OpJoinChannel, Name: name, Channel: ref, Result: res, Err: err}
	}

	return Outcome{
		Lines:  []domain.Line{domain.InfoLine("joining " + domain.DisplayChannelName(name))},
		Effect: eff,
	}
}

func (it *Interpreter) dispatchLeave() Outcome {
	ch := *it.state.Channel
	it.state.Channel = nil

	now := it.clock.Now()
	req := domain.OperationRequest{Kind: domain.OpLeaveChannel, Channel: ch.ID}
	pend := domain.NewPendingOperation(req, it.state.Generation, now)
	it.pending[pend.ID] = pend

	gen := it.state.Generation
	sender := it.state.Account
	rt := it.runtimeSnapshot()
	rt.LastChannel = ""

	eff := func(ctx context.Context) Event {
		if err := it.runtime.Save(ctx, rt); err != nil {
			it.log.Warn("save runtime", zap.Error(err))
		}
		res, err := it.submitter.Submit(ctx, SubmitRequest{Request: req, Sender: sender})
		return ChannelOpResult{Generation: gen, OpID: pend.ID, Kind: domain.OpLeaveChannel, Name: ch.Name, Result: res, Err: err}
	}

	return Outcome{
		Lines:  []domain.Line{domain.SystemLine("left " + domain.DisplayChannelName(ch.Name))},
		Effect: eff,
	}
}

func (it *Interpreter) applyChannelOp(e ChannelOpResult) Outcome {
	if _, ok := it.pending[e.OpID]; !ok {
		it.log.Debug("channel op completion without pending record", zap.String("op", e.OpID.String()))
		return Outcome{}
	}
	delete(it.pending, e.OpID)

	display := domain.DisplayChannelName(e.Name)
	verb := channelOpVerb(e.Kind)

	if e.Err != nil {
		if errors.Is(e.Err, domain.ErrChannelNotFound) {
			return Outcome{Lines: []domain.Line{
				domain.ErrorLine(display + " does not exist"),
				domain.InfoLine(fmt.Sprintf("'list channels' shows what exists, or 'create %s'", display)),
			}}
		}
		return Outcome{Lines: classifiedLines(verb+" failed", e.Err)}
	}

	switch e.Result.Outcome {
	case domain.OutcomeConfirmed:
		return it.applyChannelOpConfirmed(e, display)
	case domain.OutcomeReverted:
		return Outcome{Lines: classifiedLines(verb+" rejected on-chain", receiptError(e.Result.Receipt))}
	default:
		return Outcome{Lines: []domain.Line{
			domain.WarningLine(fmt.Sprintf("%s unconfirmed: no receipt for %s", verb, shortHash(e.Result.Handle.UserOpHash))),
			domain.InfoLine("it may still complete; 'list channels' will reflect it shortly"),
		}}
	}
}

func (it *Interpreter) applyChannelOpConfirmed(e ChannelOpResult, display string) Outcome {
	switch e.Kind {
	case domain.OpCreateChannel:
		lines := []domain.Line{domain.SystemLine("created " + display)}
		if e.Channel.ID == "" {
			lines = append(lines, domain.InfoLine("the directory is still indexing it"))
		}
		lines = append(lines, domain.InfoLine(fmt.Sprintf("'join %s' to enter", display)))
		lines = appendAttempts(lines, e.Result.Attempts)
		return Outcome{Lines: lines}

	case domain.OpJoinChannel:
		ch := e.Channel
		it.state.Channel = &ch
		lines := []domain.Line{domain.SystemLine("joined " + display)}
		if !it.state.Delegation.ActiveAt(it.clock.Now()) {
			lines = append(lines, domain.InfoLine("each message will ask for wallet confirmation; 'session authorize' removes the prompts"))
		}
		lines = appendAttempts(lines, e.Result.Attempts)
		return Outcome{Lines: lines, Effect: it.persistRuntime()}

	case domain.OpLeaveChannel:
		it.log.Debug("leave confirmed", zap.String("channel", e.Name))
		return Outcome{}
	}
	return Outcome{}
}

func (it *Interpreter) dispatchUsername(cmd domain.Command) Outcome {
	if len(cmd.Args) != 1 {
		return usageOutcome("username set <name>")
	}
	name := cmd.Args[0]
	if err := domain.ValidateUsername(name); err != nil {
		return Outcome{Lines: []domain.Line{domain.ErrorLine(err.Error())}}
	}

	now := it.clock.Now()
	req := domain.OperationRequest{Kind: domain.OpSetUsername, Body: name}
	pend := domain.NewPendingOperation(req, it.state.Generation, now)
	it.pending[pend.ID] = pend

	gen := it.state.Generation
	sender := it.state.Account

	eff := func(ctx context.Context) Event {
		res, err := it.submitter.Submit(ctx, SubmitRequest{Request: req, Sender: sender})
		return UsernameResult{Generation: gen, OpID: pend.ID, Name: name, Result: res, Err: err}
	}

	return Outcome{
		Lines:  []domain.Line{domain.InfoLine("registering username " + name)},
		Effect: eff,
	}
}

func (it *Interpreter) applyUsername(e UsernameResult) Outcome {
	if _, ok := it.pending[e.OpID]; !ok {
		return Outcome{}
	}
	delete(it.pending, e.OpID)

	if e.Err != nil {
		return Outcome{Lines: classifiedLines("username set failed", e.Err)}
	}

	switch e.Result.Outcome {
	case domain.OutcomeConfirmed:
		it.state.Username = e.Name
		lines := appendAttempts([]domain.Line{domain.SystemLine("username set to " + e.Name)}, e.Result.Attempts)
		return Outcome{Lines: lines, Effect: it.persistRuntime()}
	case domain.OutcomeReverted:
		return Outcome{Lines: classifiedLines("username rejected on-chain", receiptError(e.Result.Receipt))}
	default:
		return Outcome{Lines: []domain.Line{
			domain.WarningLine("username change unconfirmed: no receipt for " + shortHash(e.Result.Handle.UserOpHash)),
			domain.InfoLine("'whoami' will reflect it once it lands"),
		}}
	}
}

func (it *Interpreter) dispatchSessionAuthorize(cmd domain.Command) Outcome {
	if it.state.SessionOpInFlight {
		return Outcome{Lines: []domain.Line{domain.ErrorLine(domain.ErrSessionOpInFlight.Error())}}
	}

	hours := 24
	if len(cmd.Args) > 0 {
		parsed, err := strconv.Atoi(cmd.Args[0])
		if err != nil || parsed < 1 || parsed > 720 {
			return Outcome{Lines: []domain.Line{domain.ErrorLine("hours must be a number between 1 and 720")}}
		}
		hours = parsed
	}
	ttl := time.Duration(hours) * time.Hour

	now := it.clock.Now()
	req := domain.OperationRequest{Kind: domain.OpAuthorizeSession, TTL: ttl}
	pend := domain.NewPendingOperation(req, it.state.Generation, now)
	it.pending[pend.ID] = pend
	it.state.SessionOpInFlight = true

	gen := it.state.Generation
	sender := it.state.Account

	eff := func(ctx context.Context) Event {
		signer, err := it.wallet.NewSessionKey(ctx)
		if err != nil {
			return SessionOpResult{Generation: gen, OpID: pend.ID, Kind: domain.OpAuthorizeSession, Err: fmt.Errorf("mint session key: %w", err)}
		}

		signedReq := req
		signedReq.Body = signer.String()
		res, err := it.submitter.Submit(ctx, SubmitRequest{Request: signedReq, Sender: sender})
		if err != nil {
			return SessionOpResult{Generation: gen, OpID: pend.ID, Kind: domain.OpAuthorizeSession, Err: err}
		}

		completed := it.clock.Now()
		return SessionOpResult{
			Generation: gen,
			OpID:       pend.ID,
			Kind:       domain.OpAuthorizeSession,
			Delegation: domain.DelegationState{Signer: signer, GrantedAt: completed, ExpiresAt: completed.Add(ttl)},
			Result:     res,
		}
	}

	return Outcome{
		Lines: []domain.Line{domain.InfoLine(fmt.Sprintf(
			"authorizing a delegated session for %dh, confirm in your wallet", hours))},
		Effect: eff,
	}
}

func (it *Interpreter) dispatchSessionRevoke() Outcome {
	if it.state.SessionOpInFlight {
		return Outcome{Lines: []domain.Line{domain.ErrorLine(domain.ErrSessionOpInFlight.Error())}}
	}

	now := it.clock.Now()
	req := domain.OperationRequest{Kind: domain.OpRevokeSession, Body: it.state.Delegation.Signer.String()}
	pend := domain.NewPendingOperation(req, it.state.Generation, now)
	it.pending[pend.ID] = pend
	it.state.SessionOpInFlight = true

	gen := it.state.Generation
	sender := it.state.Account

	eff := func(ctx context.Context) Event {
		res, err := it.submitter.Submit(ctx, SubmitRequest{Request: req, Sender: sender})
		return SessionOpResult{Generation: gen, OpID: pend.ID, Kind: domain.OpRevokeSession, Result: res, Err: err}
	}

	return Outcome{
		Lines:  []domain.Line{domain.InfoLine("revoking the delegated session")},
		Effect: eff,
	}
}

func (it *Interpreter) applySessionOp(e SessionOpResult) Outcome {
	if _, ok := it.pending[e.OpID]; !ok {
		return Outcome{}
	}
	delete(it.pending, e.OpID)
	it.state.SessionOpInFlight = false

	label := "session authorize"
	if e.Kind == domain.OpRevokeSession {
		label = "session revoke"
	}

	if e.Err != nil {
		return Outcome{Lines: classifiedLines(label+" failed", e.Err)}
	}

	switch e.Result.Outcome {
	case domain.OutcomeConfirmed:
		if e.Kind == domain.OpAuthorizeSession {
			it.state.Delegation = e.Delegation
			lines := []domain.Line{
				domain.SystemLine("delegated session active until " + e.Delegation.ExpiresAt.Format(time.RFC3339)),
				domain.InfoLine("messages now send without confirmation prompts"),
			}
			return Outcome{Lines: appendAttempts(lines, e.Result.Attempts), Effect: it.persistRuntime()}
		}
		it.state.Delegation = domain.DelegationState{}
		return Outcome{
			Lines:  []domain.Line{domain.SystemLine("delegated session revoked")},
			Effect: it.persistRuntime(),
		}

	case domain.OutcomeReverted:
		return Outcome{Lines: classifiedLines(label+" rejected on-chain", receiptError(e.Result.Receipt))}

	default:
		if e.Kind == domain.OpRevokeSession {
			// The revocation may have landed. Either way the key must
			// not sign anything else from here.
			it.state.Delegation = domain.DelegationState{}
			return Outcome{
				Lines: []domain.Line{
					domain.WarningLine("revocation unconfirmed: no receipt for " + shortHash(e.Result.Handle.UserOpHash)),
					domain.InfoLine("the session key is no longer used locally"),
				},
				Effect: it.persistRuntime(),
			}
		}
		return Outcome{Lines: []domain.Line{
			domain.WarningLine("authorization unconfirmed: no receipt for " + shortHash(e.Result.Handle.UserOpHash)),
			domain.InfoLine("keeping per-message confirmation; run 'session status' later and retry if needed"),
		}}
	}
}

func (it *Interpreter) dispatchListChannels() Outcome {
	gen := it.state.Generation

	eff := func(ctx context.Context) Event {
		channels, err := it.directory.ListChannels(ctx)
		return ChannelList{Generation: gen, Channels: channels, Err: err}
	}

	return Outcome{
		Lines:  []domain.Line{domain.InfoLine("fetching channels")},
		Effect: eff,
	}
}

func (it *Interpreter) applyChannelList(e ChannelList) Outcome {
	if e.Err != nil {
		return Outcome{Lines: classifiedLines("list channels failed", e.Err)}
	}
	if len(e.Channels) == 0 {
		return Outcome{Lines: []domain.Line{
			domain.OutputLine("no channels yet"),
			domain.InfoLine("'create #name' makes the first one"),
		}}
	}

	lines := []domain.Line{domain.SystemLine(fmt.Sprintf("%d channels:", len(e.Channels)))}
	for _, ch := range e.Channels {
		lines = append(lines, domain.OutputLine(fmt.Sprintf("  %-24s %-12s created by %s",
			domain.DisplayChannelName(ch.Name), ch.ID, ch.Creator.Short())))
	}
	return Outcome{Lines: lines}
}

func (it *Interpreter) dispatchHistory(cmd domain.Command) Outcome {
	limit := 20
	if len(cmd.Args) > 0 {
		parsed, err := strconv.Atoi(cmd.Args[0])
		if err != nil || parsed < 1 || parsed > 200 {
			return Outcome{Lines: []domain.Line{domain.ErrorLine("count must be a number between 1 and 200")}}
		}
		limit = parsed
	}

	ch := *it.state.Channel
	gen := it.state.Generation

	eff := func(ctx context.Context) Event {
		msgs, err := it.directory.ListMessages(ctx, ch.ID, limit)
		if err != nil {
			cached, cacheErr := it.transcript.Recent(ctx, ch.ID, limit)
			if cacheErr == nil && len(cached) > 0 {
				return HistoryResult{Generation: gen, Channel: ch.Name, Messages: cached, FromCache: true}
			}
			return HistoryResult{Generation: gen, Channel: ch.Name, Err: err}
		}
		for _, m := range msgs {
			if cacheErr := it.transcript.Append(ctx, m); cacheErr != nil {
				it.log.Warn("cache history message", zap.Error(cacheErr))
				break
			}
		}
		return HistoryResult{Generation: gen, Channel: ch.Name, Messages: msgs}
	}

	return Outcome{Effect: eff}
}

func (it *Interpreter) applyHistory(e HistoryResult) Outcome {
	if e.Err != nil {
		return Outcome{Lines: classifiedLines("history failed", e.Err)}
	}

	var lines []domain.Line
	if e.FromCache {
		lines = append(lines, domain.WarningLine("directory unreachable, showing cached transcript"))
	}
	if len(e.Messages) == 0 {
		lines = append(lines, domain.OutputLine("no messages in "+domain.DisplayChannelName(e.Channel)+" yet"))
		return Outcome{Lines: lines}
	}

	lines = append(lines, domain.SystemLine(fmt.Sprintf("last %d messages in %s:", len(e.Messages), domain.DisplayChannelName(e.Channel))))
	for _, m := range e.Messages {
		lines = append(lines, domain.OutputLine(formatMessageLine(m)))
	}
	return Outcome{Lines: lines}
}

func (it *Interpreter) applyFeedMessage(e FeedMessage) Outcome {
	if it.state.Channel == nil || e.Message.Channel != it.state.Channel.ID {
		it.log.Debug("feed message for inactive channel", zap.String("channel", e.Message.Channel))
		return Outcome{}
	}
	if e.Message.Author == it.state.Account {
		// Our own messages already echoed locally.
		return Outcome{}
	}

	gen := e.Generation
	msg := e.Message
	eff := func(ctx context.Context) Event {
		return PersistResult{Generation: gen, What: "transcript append", Err: it.transcript.Append(ctx, msg)}
	}

	return Outcome{
		Lines:  []domain.Line{domain.OutputLine(formatMessageLine(e.Message))},
		Effect: eff,
	}
}

func (it *Interpreter) sessionSigner(now time.Time) *domain.Address {
	if it.state.Delegation.ActiveAt(now) {
		signer := it.state.Delegation.Signer
		return &signer
	}
	return nil
}

func (it *Interpreter) persistRuntime() Effect {
	rt := it.runtimeSnapshot()
	gen := it.state.Generation
	return func(ctx context.Context) Event {
		return PersistResult{Generation: gen, What: "runtime", Err: it.runtime.Save(ctx, rt)}
	}
}

func (it *Interpreter) persistDelivery(gen uint64, localID uuid.UUID, state domain.DeliveryState) Effect {
	return func(ctx context.Context) Event {
		return PersistResult{Generation: gen, What: "transcript delivery", Err: it.transcript.MarkDelivery(ctx, localID.String(), state)}
	}
}

func (it *Interpreter) lookupChannelWithLag(ctx context.Context, name string) (domain.ChannelRef, error) {
	opts := retry.Options{
		Clock:     it.clock,
		Retryable: func(err error) bool { return errors.Is(err, domain.ErrChannelProcessing) },
	}
	return retry.Do(ctx, indexLagPolicy, opts, func(ctx context.Context) (domain.ChannelRef, error) {
		return it.directory.GetChannel(ctx, name)
	})
}

func channelOpVerb(kind domain.OperationKind) string {
	switch kind {
	case domain.OpCreateChannel:
		return "create"
	case domain.OpJoinChannel:
		return "join"
	case domain.OpLeaveChannel:
		return "leave"
	}
	return string(kind)
}

func formatMessageLine(m domain.Message) string {
	return fmt.Sprintf("[%s] <%s> %s", m.SentAt.Local().Format("15:04"), m.DisplayAuthor(), m.Body)
}

func receiptError(r *domain.Receipt) error {
	if r == nil || r.Reason == "" {
		return errors.New("execution reverted")
	}
	return errors.New(r.Reason)
}

func shortHash(hash string) string {
	if len(hash) <= 14 {
		return hash
	}
	return hash[:10] + "…" + hash[len(hash)-4:]
}

func appendAttempts(lines []domain.Line, attempts int) []domain.Line {
	if attempts > 1 {
		lines = append(lines, domain.InfoLine(fmt.Sprintf("(took %d attempts)", attempts)))
	}
	return lines
}
