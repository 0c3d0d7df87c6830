package jsonrpc

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/sha3"

	"github.com/bnema/chanterm/internal/domain"
)

const wordSize = 32

// Registry and EntryPoint function signatures the terminal encodes.
const (
	sigSendMessage      = "sendMessage(string,string)"
	sigCreateChannel    = "createChannel(string)"
	sigJoinChannel      = "joinChannel(string)"
	sigLeaveChannel     = "leaveChannel(string)"
	sigSetUsername      = "setUsername(string)"
	sigAuthorizeSession = "authorizeSession(address,uint256)"
	sigRevokeSession    = "revokeSession(address)"
	sigGetNonce         = "getNonce(address,uint192)"
)

// encodeOperationCall builds the registry call data for one operation
// request. Session operations carry the signer address in Body.
func encodeOperationCall(req domain.OperationRequest) ([]byte, error) {
	switch req.Kind {
	case domain.OpSendMessage:
		return encodeCall(sigSendMessage, stringArg(req.Channel), stringArg(req.Body)), nil
	case domain.OpCreateChannel:
		return encodeCall(sigCreateChannel, stringArg(req.Channel)), nil
	case domain.OpJoinChannel:
		return encodeCall(sigJoinChannel, stringArg(req.Channel)), nil
	case domain.OpLeaveChannel:
		return encodeCall(sigLeaveChannel, stringArg(req.Channel)), nil
	case domain.OpSetUsername:
		return encodeCall(sigSetUsername, stringArg(req.Body)), nil
	case domain.OpAuthorizeSession:
		signer, err := domain.ParseAddress(req.Body)
		if err != nil {
			return nil, fmt.Errorf("parse session signer: %w", err)
		}
		return encodeCall(sigAuthorizeSession, addressArg(signer), uintArg(uint64(req.TTL/time.Second))), nil
	case domain.OpRevokeSession:
		signer, err := domain.ParseAddress(req.Body)
		if err != nil {
			return nil, fmt.Errorf("parse session signer: %w", err)
		}
		return encodeCall(sigRevokeSession, addressArg(signer)), nil
	}
	return nil, fmt.Errorf("unsupported operation kind %q", req.Kind)
}

// abiArg is one encoded call argument. Static args occupy a single
// head word; dynamic args put an offset in the head and their payload
// in the tail.
type abiArg struct {
	dynamic bool
	head    []byte
	tail    []byte
}

func stringArg(s string) abiArg {
	data := []byte(s)
	tail := make([]byte, wordSize+padded(len(data)))
	putUintWord(tail[:wordSize], uint64(len(data)))
	copy(tail[wordSize:], data)
	return abiArg{dynamic: true, tail: tail}
}

func addressArg(addr domain.Address) abiArg {
	word := make([]byte, wordSize)
	raw, _ := hex.DecodeString(strings.TrimPrefix(addr.String(), "0x"))
	copy(word[wordSize-len(raw):], raw)
	return abiArg{head: word}
}

func uintArg(v uint64) abiArg {
	word := make([]byte, wordSize)
	putUintWord(word, v)
	return abiArg{head: word}
}

// encodeCall packs a selector and arguments per the contract ABI:
// selector, one head word per argument, then dynamic tails in
// argument order.
func encodeCall(signature string, args ...abiArg) []byte {
	out := selector(signature)
	offset := wordSize * len(args)
	var tails [][]byte
	for _, arg := range args {
		if !arg.dynamic {
			out = append(out, arg.head...)
			continue
		}
		word := make([]byte, wordSize)
		putUintWord(word, uint64(offset))
		out = append(out, word...)
		tails = append(tails, arg.tail)
		offset += len(arg.tail)
	}
	for _, tail := range tails {
		out = append(out, tail...)
	}
	return out
}

// selector is the first four bytes of the keccak-256 hash of the
// canonical signature.
func selector(signature string) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(signature))
	return h.Sum(nil)[:4]
}

func putUintWord(word []byte, v uint64) {
	binary.BigEndian.PutUint64(word[len(word)-8:], v)
}

func padded(n int) int {
	if n%wordSize == 0 {
		return n
	}
	return n + wordSize - n%wordSize
}

func hexBytes(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}
