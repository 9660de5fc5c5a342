package contract

import (
	"github.com/mr-tron/base58"

	"private_dao/sdk"
)

// Hash32 is a 32-byte digest or salt, rendered as base58 in payloads.
type Hash32 [32]byte

// String returns the base58 form for events and debugging.
func (h Hash32) String() string {
	return base58.Encode(h[:])
}

// MarshalJSON renders the digest as a quoted base58 string.
func (h Hash32) MarshalJSON() ([]byte, error) {
	s := h.String()
	out := make([]byte, 0, len(s)+2)
	out = append(out, '"')
	out = append(out, s...)
	out = append(out, '"')
	return out, nil
}

// UnmarshalJSON parses a quoted base58 string back into the 32 bytes.
func (h *Hash32) UnmarshalJSON(data []byte) error {
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	raw, err := base58.Decode(string(data))
	if err != nil {
		return err
	}
	if len(raw) != len(h) {
		return errHashLength
	}
	copy(h[:], raw)
	return nil
}

// VotingMode selects how raw token balances turn into voting weight.
type VotingMode uint8

const (
	ModeTokenWeighted VotingMode = 0
	ModeQuadratic     VotingMode = 1
	ModeDualChamber   VotingMode = 2
)

// String prints the mode as lower-case text for events and logs.
func (m VotingMode) String() string {
	switch m {
	case ModeTokenWeighted:
		return "token_weighted"
	case ModeQuadratic:
		return "quadratic"
	case ModeDualChamber:
		return "dual_chamber"
	default:
		return "unspecified"
	}
}

// VotingConfig is the DAO's closed voting-mode variant. The thresholds are
// only meaningful for DualChamber and are percentages in [1,100].
type VotingConfig struct {
	Mode               VotingMode
	CapitalThreshold   uint8
	CommunityThreshold uint8
}

// ProposalStatus captures a proposal's lifecycle.
type ProposalStatus uint8

const (
	StatusVoting    ProposalStatus = 0
	StatusPassed    ProposalStatus = 1
	StatusFailed    ProposalStatus = 2
	StatusCancelled ProposalStatus = 3
	StatusVetoed    ProposalStatus = 4
)

// String prints the proposal status as lower-case text for events and logs.
func (s ProposalStatus) String() string {
	switch s {
	case StatusVoting:
		return "voting"
	case StatusPassed:
		return "passed"
	case StatusFailed:
		return "failed"
	case StatusCancelled:
		return "cancelled"
	case StatusVetoed:
		return "vetoed"
	default:
		return "unspecified"
	}
}

// Terminal reports whether the status admits no further transition: failed,
// cancelled or vetoed. Passed is not terminal, since it can still be vetoed
// or executed.
func (s ProposalStatus) Terminal() bool {
	return s == StatusFailed || s == StatusCancelled || s == StatusVetoed
}

// TreasuryActionKind is the closed set of on-pass treasury effects.
type TreasuryActionKind uint8

const (
	ActionSendSol   TreasuryActionKind = 0
	ActionSendToken TreasuryActionKind = 1
	ActionCustomCPI TreasuryActionKind = 2
)

// String prints the action kind in payload form.
func (k TreasuryActionKind) String() string {
	switch k {
	case ActionSendSol:
		return "send_sol"
	case ActionSendToken:
		return "send_token"
	case ActionCustomCPI:
		return "custom_cpi"
	default:
		return "unspecified"
	}
}

// TreasuryAction describes what executes when the proposal passes.
// SendToken requires TokenMint; SendSol and CustomCPI forbid it.
type TreasuryAction struct {
	Kind           TreasuryActionKind
	AmountLamports uint64
	Recipient      sdk.Address
	TokenMint      *sdk.Address
}

// Dao is the root governance account. Immutable after initialization except
// ProposalCount.
type Dao struct {
	Authority           sdk.Address
	Name                string
	GovernanceTokenMint sdk.Address
	QuorumPercentage    uint8
	MinTokensToVote     uint64
	RevealWindowSecs    int64
	ExecutionDelaySecs  int64
	Voting              VotingConfig
	ProposalCount       uint64
	MigratedFrom        *sdk.Address
}

// Proposal tracks one ballot through commit, reveal, finalize and execute.
// Tallies stay zero for the whole commit phase; that is the point.
type Proposal struct {
	Dao                sdk.Address
	Proposer           sdk.Address
	ProposalId         uint64
	Title              string
	Description        string
	Status             ProposalStatus
	VotingEnd          int64
	RevealEnd          int64
	YesCapital         uint64
	NoCapital          uint64
	YesCommunity       uint64
	NoCommunity        uint64
	CommitCount        uint64
	RevealCount        uint64
	TreasuryAction     *TreasuryAction
	ExecutionUnlocksAt int64
	IsExecuted         bool
}

// VoterRecord binds one voter's commitment and weight snapshot to a proposal.
// Weights are frozen at commit time; later token movement changes nothing.
type VoterRecord struct {
	Proposal        sdk.Address
	Voter           sdk.Address
	Commitment      Hash32
	WeightCapital   uint64
	WeightCommunity uint64
	RevealAuthority *sdk.Address
	Revealed        bool
	VotedYes        bool
}

// Delegation grants a delegator's snapshotted weight to a delegatee for
// exactly one proposal. IsUsed flips once when the delegatee folds it in.
type Delegation struct {
	Proposal           sdk.Address
	Delegator          sdk.Address
	Delegatee          sdk.Address
	DelegatedCapital   uint64
	DelegatedCommunity uint64
	IsUsed             bool
}

// VoterWeightRecord is the plugin-style export surface consumed by host
// governance stacks. Matches the spl-governance addin layout.
type VoterWeightRecord struct {
	Realm               sdk.Address
	GoverningTokenMint  sdk.Address
	GoverningTokenOwner sdk.Address
	VoterWeight         uint64
	VoterWeightExpiry   *uint64
	WeightAction        *uint8
	WeightActionTarget  *sdk.Address
}
