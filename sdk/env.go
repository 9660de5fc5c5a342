package sdk

// Sender describes the transaction's signed caller set.
type Sender struct {
	Address       Address   `json:"id"`
	RequiredAuths []Address `json:"required_auths"`
}

// Env is the per-transaction execution environment supplied by the host:
// the signer set, the chain clock and the transaction identity.
type Env struct {
	ContractId  string `json:"contract.id"`
	TxId        string `json:"tx.id"`
	BlockHeight uint64 `json:"block.height"`
	Slot        uint64 `json:"block.slot"`
	Timestamp   int64  `json:"block.timestamp"`
	Sender      Sender `json:"msg.sender"`
}

// TokenAccountInfo is the host's view of one token account.
type TokenAccountInfo struct {
	Address Address
	Mint    Address
	Owner   Address
	Amount  uint64
}
