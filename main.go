//go:build wasm

////////////////////////////////////////////////////////////////////////////////
// Private DAO: commit-reveal governance with a concealed tally
////////////////////////////////////////////////////////////////////////////////

package main

import "private_dao/contract"

// main is left empty on purpose
func main() {

}

//go:wasmexport initialize_dao
func InitializeDao(payload *string) *string {
	return contract.InitializeDao(payload)
}

//go:wasmexport migrate_from_realms
func MigrateFromRealms(payload *string) *string {
	return contract.MigrateFromRealms(payload)
}

//go:wasmexport create_proposal
func CreateProposal(payload *string) *string {
	return contract.CreateProposal(payload)
}

//go:wasmexport cancel_proposal
func CancelProposal(payload *string) *string {
	return contract.CancelProposal(payload)
}

//go:wasmexport veto_proposal
func VetoProposal(payload *string) *string {
	return contract.VetoProposal(payload)
}

//go:wasmexport commit_vote
func CommitVote(payload *string) *string {
	return contract.CommitVote(payload)
}

//go:wasmexport delegate_vote
func DelegateVote(payload *string) *string {
	return contract.DelegateVote(payload)
}

//go:wasmexport commit_delegated_vote
func CommitDelegatedVote(payload *string) *string {
	return contract.CommitDelegatedVote(payload)
}

//go:wasmexport reveal_vote
func RevealVote(payload *string) *string {
	return contract.RevealVote(payload)
}

//go:wasmexport finalize_proposal
func FinalizeProposal(payload *string) *string {
	return contract.FinalizeProposal(payload)
}

//go:wasmexport execute_proposal
func ExecuteProposal(payload *string) *string {
	return contract.ExecuteProposal(payload)
}

//go:wasmexport deposit_treasury
func DepositTreasury(payload *string) *string {
	return contract.DepositTreasury(payload)
}

//go:wasmexport update_voter_weight_record
func UpdateVoterWeightRecord(payload *string) *string {
	return contract.UpdateVoterWeightRecord(payload)
}

//go:wasmexport get_voter_weight_record
func GetVoterWeightRecord(payload *string) *string {
	return contract.GetVoterWeightRecord(payload)
}
