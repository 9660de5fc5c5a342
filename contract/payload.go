package contract

import (
	"github.com/CosmWasm/tinyjson"

	"private_dao/sdk"
)

// Instruction payloads arrive as JSON strings; 32-byte values are base58.

type VotingConfigArgs struct {
	Mode               string `json:"mode"`
	CapitalThreshold   uint8  `json:"capitalThreshold"`
	CommunityThreshold uint8  `json:"communityThreshold"`
}

type InitializeDaoArgs struct {
	Name                string           `json:"name"`
	GovernanceTokenMint sdk.Address      `json:"governanceTokenMint"`
	QuorumPercentage    uint8            `json:"quorumPercentage"`
	MinTokensToVote     uint64           `json:"minTokensToVote"`
	RevealWindowSecs    int64            `json:"revealWindowSecs"`
	ExecutionDelaySecs  int64            `json:"executionDelaySecs"`
	Voting              VotingConfigArgs `json:"voting"`
}

type MigrateFromRealmsArgs struct {
	Name               string           `json:"name"`
	RealmsGovernance   sdk.Address      `json:"realmsGovernance"`
	GovernanceToken    sdk.Address      `json:"governanceToken"`
	QuorumPercentage   uint8            `json:"quorumPercentage"`
	RevealWindowSecs   int64            `json:"revealWindowSecs"`
	ExecutionDelaySecs int64            `json:"executionDelaySecs"`
	Voting             VotingConfigArgs `json:"voting"`
}

type TreasuryActionArgs struct {
	Kind           string       `json:"kind"`
	AmountLamports uint64       `json:"amountLamports"`
	Recipient      sdk.Address  `json:"recipient"`
	TokenMint      *sdk.Address `json:"tokenMint"`
}

type CreateProposalArgs struct {
	Dao                sdk.Address         `json:"dao"`
	Title              string              `json:"title"`
	Description        string              `json:"description"`
	VotingDurationSecs int64               `json:"votingDurationSecs"`
	TreasuryAction     *TreasuryActionArgs `json:"treasuryAction"`
}

// ProposalRefArgs names one proposal; used by cancel, veto and finalize.
type ProposalRefArgs struct {
	Dao        sdk.Address `json:"dao"`
	ProposalId uint64      `json:"proposalId"`
}

type CommitVoteArgs struct {
	Dao             sdk.Address  `json:"dao"`
	ProposalId      uint64       `json:"proposalId"`
	Commitment      Hash32       `json:"commitment"`
	RevealAuthority *sdk.Address `json:"revealAuthority"`
}

type DelegateVoteArgs struct {
	Dao        sdk.Address `json:"dao"`
	ProposalId uint64      `json:"proposalId"`
	Delegatee  sdk.Address `json:"delegatee"`
}

type CommitDelegatedVoteArgs struct {
	Dao             sdk.Address  `json:"dao"`
	ProposalId      uint64       `json:"proposalId"`
	Delegator       sdk.Address  `json:"delegator"`
	Commitment      Hash32       `json:"commitment"`
	RevealAuthority *sdk.Address `json:"revealAuthority"`
}

type RevealVoteArgs struct {
	Dao        sdk.Address `json:"dao"`
	ProposalId uint64      `json:"proposalId"`
	Voter      sdk.Address `json:"voter"`
	Vote       bool        `json:"vote"`
	Salt       Hash32      `json:"salt"`
}

// ExecuteProposalArgs carries the executor-supplied accounts that the
// integrity checks compare against the stored treasury action.
type ExecuteProposalArgs struct {
	Dao                   sdk.Address  `json:"dao"`
	ProposalId            uint64       `json:"proposalId"`
	Recipient             sdk.Address  `json:"recipient"`
	TreasuryTokenAccount  *sdk.Address `json:"treasuryTokenAccount"`
	RecipientTokenAccount *sdk.Address `json:"recipientTokenAccount"`
}

type DepositTreasuryArgs struct {
	Dao    sdk.Address `json:"dao"`
	Amount uint64      `json:"amount"`
}

type UpdateVoterWeightArgs struct {
	Dao                sdk.Address  `json:"dao"`
	Realm              sdk.Address  `json:"realm"`
	WeightAction       *uint8       `json:"weightAction"`
	WeightActionTarget *sdk.Address `json:"weightActionTarget"`
}

type VoterWeightQueryArgs struct {
	Dao        sdk.Address `json:"dao"`
	ProposalId uint64      `json:"proposalId"`
	Voter      sdk.Address `json:"voter"`
}

// decodePayload unwraps the instruction payload or aborts with a stable code.
func decodePayload(payload *string, v tinyjson.Unmarshaler) {
	if payload == nil || *payload == "" {
		abortWith(ErrInvalidPayload)
	}
	if err := tinyjson.Unmarshal([]byte(*payload), v); err != nil {
		abortWith(ErrInvalidPayload)
	}
}

// parseVotingConfig maps payload text onto the closed mode variant and
// validates DualChamber thresholds.
func parseVotingConfig(args VotingConfigArgs) VotingConfig {
	cfg := VotingConfig{}
	switch args.Mode {
	case "token_weighted":
		cfg.Mode = ModeTokenWeighted
	case "quadratic":
		cfg.Mode = ModeQuadratic
	case "dual_chamber":
		cfg.Mode = ModeDualChamber
		if args.CapitalThreshold < 1 || args.CapitalThreshold > 100 {
			abortWith(ErrInvalidThreshold)
		}
		if args.CommunityThreshold < 1 || args.CommunityThreshold > 100 {
			abortWith(ErrInvalidThreshold)
		}
		cfg.CapitalThreshold = args.CapitalThreshold
		cfg.CommunityThreshold = args.CommunityThreshold
	default:
		abortWith(ErrInvalidPayload)
	}
	return cfg
}

// parseTreasuryAction validates the action invariants: amounts, mint
// presence per kind, and a non-zero recipient distinct from the treasury.
func parseTreasuryAction(args *TreasuryActionArgs, treasury sdk.Address) *TreasuryAction {
	if args == nil {
		return nil
	}
	action := &TreasuryAction{
		AmountLamports: args.AmountLamports,
		Recipient:      args.Recipient,
		TokenMint:      args.TokenMint,
	}
	switch args.Kind {
	case "send_sol":
		action.Kind = ActionSendSol
		if action.AmountLamports == 0 || action.TokenMint != nil {
			abortWith(ErrInvalidTreasuryAction)
		}
	case "send_token":
		action.Kind = ActionSendToken
		if action.AmountLamports == 0 {
			abortWith(ErrInvalidTreasuryAction)
		}
		if action.TokenMint == nil {
			abortWith(ErrTokenMintRequired)
		}
	case "custom_cpi":
		action.Kind = ActionCustomCPI
		if action.AmountLamports != 0 || action.TokenMint != nil {
			abortWith(ErrInvalidTreasuryAction)
		}
	default:
		abortWith(ErrInvalidTreasuryAction)
	}
	if action.Recipient.IsZero() || action.Recipient == treasury {
		abortWith(ErrInvalidTreasuryAction)
	}
	return action
}
