//go:build !wasm

package sdk

import (
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"
)

// DefaultRentExemptMinimum is the lamport floor the in-process ledger
// reports for account liveness unless configured otherwise. The ledger's
// own transfers do not check it.
const DefaultRentExemptMinimum uint64 = 1_500_000

// Ledger is the in-process host: a key-value account store with lamport and
// token balances, a mock clock, and a transaction runner that commits
// atomically or rolls back on revert. It stands in for the chain runtime in
// tests and local tooling.
type Ledger struct {
	clk     *clock.Mock
	log     *zap.Logger
	slot    uint64
	height  uint64
	rentMin uint64

	state    map[string]string
	lamports map[Address]uint64
	tokens   map[Address]TokenAccountInfo
	events   []string

	env      Env
	inTx     bool
	instance uint64
	txSeq    uint64
}

// instanceSeq keeps tx ids distinct across ledgers in one process, so the
// contract's per-tx env cache can never see a stale id repeat.
var instanceSeq uint64

// LedgerOption configures a test ledger.
type LedgerOption func(*Ledger)

// WithRentExemptMinimum overrides the account liveness floor.
func WithRentExemptMinimum(min uint64) LedgerOption {
	return func(l *Ledger) { l.rentMin = min }
}

// WithStartTime pins the mock clock to a known wall-clock instant.
func WithStartTime(t time.Time) LedgerOption {
	return func(l *Ledger) { l.clk.Set(t) }
}

// WithLogger routes host-side logging through the given zap logger.
func WithLogger(log *zap.Logger) LedgerOption {
	return func(l *Ledger) { l.log = log }
}

// NewTestLedger builds an empty in-process ledger and installs it as the
// active host.
func NewTestLedger(opts ...LedgerOption) *Ledger {
	l := &Ledger{
		clk:      clock.NewMock(),
		log:      zap.NewNop(),
		rentMin:  DefaultRentExemptMinimum,
		state:    make(map[string]string),
		lamports: make(map[Address]uint64),
		tokens:   make(map[Address]TokenAccountInfo),
	}
	instanceSeq++
	l.instance = instanceSeq
	for _, opt := range opts {
		opt(l)
	}
	SetHost(l)
	return l
}

// Clock exposes the mock clock so tests can step across phase boundaries.
func (l *Ledger) Clock() *clock.Mock {
	return l.clk
}

// Slot returns the current slot counter.
func (l *Ledger) Slot() uint64 {
	return l.slot
}

// AdvanceSlot moves the slot counter forward without executing anything.
func (l *Ledger) AdvanceSlot(n uint64) {
	l.slot += n
}

// Fund credits an account with lamports outside any transaction, the way a
// faucet or an external transfer would.
func (l *Ledger) Fund(a Address, lamports uint64) {
	l.lamports[a] += lamports
}

// MintTokens credits `amount` units of `mint` to the owner's associated
// token account, creating it on first use. Returns the account address.
func (l *Ledger) MintTokens(owner, mint Address, amount uint64) Address {
	addr := AssociatedTokenAddress(owner, mint)
	acct, ok := l.tokens[addr]
	if !ok {
		acct = TokenAccountInfo{Address: addr, Mint: mint, Owner: owner}
	}
	acct.Amount += amount
	l.tokens[addr] = acct
	return addr
}

// BurnTokens debits the owner's associated token account, used by tests to
// model post-snapshot token movement.
func (l *Ledger) BurnTokens(owner, mint Address, amount uint64) {
	addr := AssociatedTokenAddress(owner, mint)
	acct, ok := l.tokens[addr]
	if !ok || acct.Amount < amount {
		panic("ledger: burn exceeds balance")
	}
	acct.Amount -= amount
	l.tokens[addr] = acct
}

// Events returns every event line logged since the ledger was created,
// except those of reverted transactions, which are dropped on rollback.
func (l *Ledger) Events() []string {
	return l.events
}

// Execute runs one transaction: fn sees a fresh Env with the given signer
// and the current clock. On revert the state, balance and event snapshots
// are restored and the stable-coded error is returned; otherwise the
// transaction commits and its event lines are returned.
func (l *Ledger) Execute(signer Address, fn func() *string) (res *string, events []string, err error) {
	if l.inTx {
		panic("ledger: nested Execute")
	}
	l.txSeq++
	l.env = Env{
		ContractId:  "private_dao",
		TxId:        fmt.Sprintf("tx-%d-%d", l.instance, l.txSeq),
		BlockHeight: l.height,
		Slot:        l.slot,
		Timestamp:   l.clk.Now().Unix(),
		Sender:      Sender{Address: signer, RequiredAuths: []Address{signer}},
	}
	l.inTx = true

	stateSnap := make(map[string]string, len(l.state))
	for k, v := range l.state {
		stateSnap[k] = v
	}
	lamportSnap := make(map[Address]uint64, len(l.lamports))
	for k, v := range l.lamports {
		lamportSnap[k] = v
	}
	tokenSnap := make(map[Address]TokenAccountInfo, len(l.tokens))
	for k, v := range l.tokens {
		tokenSnap[k] = v
	}
	eventMark := len(l.events)

	defer func() {
		l.inTx = false
		l.height++
		l.slot++
		if r := recover(); r != nil {
			re, ok := r.(*RevertError)
			if !ok {
				panic(r)
			}
			l.state = stateSnap
			l.lamports = lamportSnap
			l.tokens = tokenSnap
			l.events = l.events[:eventMark]
			l.log.Info("transaction reverted",
				zap.String("tx", l.env.TxId),
				zap.String("symbol", re.Symbol),
				zap.String("msg", re.Msg))
			res, events, err = nil, nil, re
		}
	}()

	res = fn()
	events = append([]string(nil), l.events[eventMark:]...)
	l.log.Info("transaction committed",
		zap.String("tx", l.env.TxId),
		zap.Int("events", len(events)))
	return res, events, nil
}

// --- Host interface ---

func (l *Ledger) Log(msg string) {
	l.events = append(l.events, msg)
	l.log.Debug("contract log", zap.String("line", msg))
}

func (l *Ledger) Abort(msg string) {
	panic(&RevertError{Symbol: "Abort", Msg: msg})
}

func (l *Ledger) Revert(msg, symbol string) {
	panic(&RevertError{Symbol: symbol, Msg: msg})
}

func (l *Ledger) StateSet(key, value string) {
	l.state[key] = value
}

func (l *Ledger) StateGet(key string) *string {
	v, ok := l.state[key]
	if !ok {
		return nil
	}
	return &v
}

func (l *Ledger) StateDelete(key string) {
	delete(l.state, key)
}

func (l *Ledger) Env() Env {
	return l.env
}

func (l *Ledger) LamportBalance(a Address) uint64 {
	return l.lamports[a]
}

func (l *Ledger) LamportTransfer(from, to Address, amount uint64) {
	if l.lamports[from] < amount {
		l.Revert("lamport balance too low", "InsufficientBalance")
	}
	l.lamports[from] -= amount
	l.lamports[to] += amount
}

func (l *Ledger) TokenAccount(a Address) *TokenAccountInfo {
	acct, ok := l.tokens[a]
	if !ok {
		return nil
	}
	return &acct
}

func (l *Ledger) TokenTransfer(from, to Address, amount uint64) {
	src, ok := l.tokens[from]
	if !ok {
		l.Revert("source token account missing", "InsufficientBalance")
	}
	dst, ok := l.tokens[to]
	if !ok {
		l.Revert("destination token account missing", "TokenMintMismatch")
	}
	if src.Mint != dst.Mint {
		l.Revert("token mints differ", "TokenMintMismatch")
	}
	if src.Amount < amount {
		l.Revert("token balance too low", "InsufficientBalance")
	}
	src.Amount -= amount
	dst.Amount += amount
	l.tokens[from] = src
	l.tokens[to] = dst
}

func (l *Ledger) RentExemptMinimum() uint64 {
	return l.rentMin
}
