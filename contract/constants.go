package contract

// -----------------------------------------------------------------------------
// Protocol Constants
// -----------------------------------------------------------------------------

const (
	// RevealRebateLamports is paid from the proposal account to whoever
	// submits a valid reveal, when the account can afford it rent-safely.
	RevealRebateLamports uint64 = 1_000_000
	// MinRevealWindowSeconds floors the reveal window at DAO creation.
	MinRevealWindowSeconds int64 = 5
	// MinVotingDurationSeconds floors the commit window at proposal creation.
	MinVotingDurationSeconds int64 = 5
	// VoterWeightExpirySlots bounds how long an exported weight stays valid.
	VoterWeightExpirySlots uint64 = 100
)

// -----------------------------------------------------------------------------
// Validation Limits
// -----------------------------------------------------------------------------

const (
	// MaxDaoNameLength limits the DAO name used in the address seed.
	MaxDaoNameLength = 32
	// MaxTitleLength limits proposal titles.
	MaxTitleLength = 128
	// MaxDescriptionLength limits proposal descriptions.
	MaxDescriptionLength = 1024
)

// -----------------------------------------------------------------------------
// Address Seed Labels
// -----------------------------------------------------------------------------

const (
	seedDao         = "dao"
	seedProposal    = "proposal"
	seedVote        = "vote"
	seedDelegation  = "delegation"
	seedTreasury    = "treasury"
	seedVoterWeight = "voter-weight-record"
)

// -----------------------------------------------------------------------------
// Storage Key Prefixes
// -----------------------------------------------------------------------------

const (
	// kDaoAccount stores encoded Dao records.
	kDaoAccount byte = 0x01
	// kProposalAccount stores encoded Proposal records.
	kProposalAccount byte = 0x02
	// kVoterRecordAccount stores encoded VoterRecord records.
	kVoterRecordAccount byte = 0x03
	// kDelegationAccount stores encoded Delegation records.
	kDelegationAccount byte = 0x04
	// kVoterWeightAccount stores encoded VoterWeightRecord records.
	kVoterWeightAccount byte = 0x05
)
