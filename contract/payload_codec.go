package contract

import (
	"github.com/CosmWasm/tinyjson/jlexer"
	"github.com/CosmWasm/tinyjson/jwriter"

	"private_dao/sdk"
)

// tinyjson codecs for the instruction payload surface. Hand-maintained in
// the shape the tinyjson generator emits so the wasm build stays free of
// reflection.

func readAddress(in *jlexer.Lexer, out *sdk.Address) {
	in.AddError(out.UnmarshalJSON(in.Raw()))
}

func readOptionalAddress(in *jlexer.Lexer, out **sdk.Address) {
	if in.IsNull() {
		in.Skip()
		*out = nil
		return
	}
	var a sdk.Address
	in.AddError(a.UnmarshalJSON(in.Raw()))
	*out = &a
}

func readHash(in *jlexer.Lexer, out *Hash32) {
	in.AddError(out.UnmarshalJSON(in.Raw()))
}

func writeAddress(w *jwriter.Writer, a sdk.Address) {
	w.Raw(a.MarshalJSON())
}

func writeOptionalAddress(w *jwriter.Writer, a *sdk.Address) {
	if a == nil {
		w.RawString("null")
		return
	}
	writeAddress(w, *a)
}

func writeHash(w *jwriter.Writer, h Hash32) {
	w.Raw(h.MarshalJSON())
}

// UnmarshalTinyJSON implements tinyjson.Unmarshaler.
func (v *VotingConfigArgs) UnmarshalTinyJSON(in *jlexer.Lexer) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "mode":
			v.Mode = string(in.String())
		case "capitalThreshold":
			v.CapitalThreshold = in.Uint8()
		case "communityThreshold":
			v.CommunityThreshold = in.Uint8()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}

// MarshalTinyJSON implements tinyjson.Marshaler.
func (v VotingConfigArgs) MarshalTinyJSON(w *jwriter.Writer) {
	w.RawString(`{"mode":`)
	w.String(v.Mode)
	w.RawString(`,"capitalThreshold":`)
	w.Uint8(v.CapitalThreshold)
	w.RawString(`,"communityThreshold":`)
	w.Uint8(v.CommunityThreshold)
	w.RawByte('}')
}

// UnmarshalTinyJSON implements tinyjson.Unmarshaler.
func (v *InitializeDaoArgs) UnmarshalTinyJSON(in *jlexer.Lexer) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "name":
			v.Name = string(in.String())
		case "governanceTokenMint":
			readAddress(in, &v.GovernanceTokenMint)
		case "quorumPercentage":
			v.QuorumPercentage = in.Uint8()
		case "minTokensToVote":
			v.MinTokensToVote = in.Uint64()
		case "revealWindowSecs":
			v.RevealWindowSecs = in.Int64()
		case "executionDelaySecs":
			v.ExecutionDelaySecs = in.Int64()
		case "voting":
			v.Voting.UnmarshalTinyJSON(in)
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}

// MarshalTinyJSON implements tinyjson.Marshaler.
func (v InitializeDaoArgs) MarshalTinyJSON(w *jwriter.Writer) {
	w.RawString(`{"name":`)
	w.String(v.Name)
	w.RawString(`,"governanceTokenMint":`)
	writeAddress(w, v.GovernanceTokenMint)
	w.RawString(`,"quorumPercentage":`)
	w.Uint8(v.QuorumPercentage)
	w.RawString(`,"minTokensToVote":`)
	w.Uint64(v.MinTokensToVote)
	w.RawString(`,"revealWindowSecs":`)
	w.Int64(v.RevealWindowSecs)
	w.RawString(`,"executionDelaySecs":`)
	w.Int64(v.ExecutionDelaySecs)
	w.RawString(`,"voting":`)
	v.Voting.MarshalTinyJSON(w)
	w.RawByte('}')
}

// UnmarshalTinyJSON implements tinyjson.Unmarshaler.
func (v *MigrateFromRealmsArgs) UnmarshalTinyJSON(in *jlexer.Lexer) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "name":
			v.Name = string(in.String())
		case "realmsGovernance":
			readAddress(in, &v.RealmsGovernance)
		case "governanceToken":
			readAddress(in, &v.GovernanceToken)
		case "quorumPercentage":
			v.QuorumPercentage = in.Uint8()
		case "revealWindowSecs":
			v.RevealWindowSecs = in.Int64()
		case "executionDelaySecs":
			v.ExecutionDelaySecs = in.Int64()
		case "voting":
			v.Voting.UnmarshalTinyJSON(in)
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}

// MarshalTinyJSON implements tinyjson.Marshaler.
func (v MigrateFromRealmsArgs) MarshalTinyJSON(w *jwriter.Writer) {
	w.RawString(`{"name":`)
	w.String(v.Name)
	w.RawString(`,"realmsGovernance":`)
	writeAddress(w, v.RealmsGovernance)
	w.RawString(`,"governanceToken":`)
	writeAddress(w, v.GovernanceToken)
	w.RawString(`,"quorumPercentage":`)
	w.Uint8(v.QuorumPercentage)
	w.RawString(`,"revealWindowSecs":`)
	w.Int64(v.RevealWindowSecs)
	w.RawString(`,"executionDelaySecs":`)
	w.Int64(v.ExecutionDelaySecs)
	w.RawString(`,"voting":`)
	v.Voting.MarshalTinyJSON(w)
	w.RawByte('}')
}

// UnmarshalTinyJSON implements tinyjson.Unmarshaler.
func (v *TreasuryActionArgs) UnmarshalTinyJSON(in *jlexer.Lexer) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "kind":
			v.Kind = string(in.String())
		case "amountLamports":
			v.AmountLamports = in.Uint64()
		case "recipient":
			readAddress(in, &v.Recipient)
		case "tokenMint":
			readOptionalAddress(in, &v.TokenMint)
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}

// MarshalTinyJSON implements tinyjson.Marshaler.
func (v TreasuryActionArgs) MarshalTinyJSON(w *jwriter.Writer) {
	w.RawString(`{"kind":`)
	w.String(v.Kind)
	w.RawString(`,"amountLamports":`)
	w.Uint64(v.AmountLamports)
	w.RawString(`,"recipient":`)
	writeAddress(w, v.Recipient)
	w.RawString(`,"tokenMint":`)
	writeOptionalAddress(w, v.TokenMint)
	w.RawByte('}')
}

// UnmarshalTinyJSON implements tinyjson.Unmarshaler.
func (v *CreateProposalArgs) UnmarshalTinyJSON(in *jlexer.Lexer) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "dao":
			readAddress(in, &v.Dao)
		case "title":
			v.Title = string(in.String())
		case "description":
			v.Description = string(in.String())
		case "votingDurationSecs":
			v.VotingDurationSecs = in.Int64()
		case "treasuryAction":
			v.TreasuryAction = &TreasuryActionArgs{}
			v.TreasuryAction.UnmarshalTinyJSON(in)
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}

// MarshalTinyJSON implements tinyjson.Marshaler.
func (v CreateProposalArgs) MarshalTinyJSON(w *jwriter.Writer) {
	w.RawString(`{"dao":`)
	writeAddress(w, v.Dao)
	w.RawString(`,"title":`)
	w.String(v.Title)
	w.RawString(`,"description":`)
	w.String(v.Description)
	w.RawString(`,"votingDurationSecs":`)
	w.Int64(v.VotingDurationSecs)
	w.RawString(`,"treasuryAction":`)
	if v.TreasuryAction == nil {
		w.RawString("null")
	} else {
		v.TreasuryAction.MarshalTinyJSON(w)
	}
	w.RawByte('}')
}

// UnmarshalTinyJSON implements tinyjson.Unmarshaler.
func (v *ProposalRefArgs) UnmarshalTinyJSON(in *jlexer.Lexer) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "dao":
			readAddress(in, &v.Dao)
		case "proposalId":
			v.ProposalId = in.Uint64()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}

// MarshalTinyJSON implements tinyjson.Marshaler.
func (v ProposalRefArgs) MarshalTinyJSON(w *jwriter.Writer) {
	w.RawString(`{"dao":`)
	writeAddress(w, v.Dao)
	w.RawString(`,"proposalId":`)
	w.Uint64(v.ProposalId)
	w.RawByte('}')
}

// UnmarshalTinyJSON implements tinyjson.Unmarshaler.
func (v *CommitVoteArgs) UnmarshalTinyJSON(in *jlexer.Lexer) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "dao":
			readAddress(in, &v.Dao)
		case "proposalId":
			v.ProposalId = in.Uint64()
		case "commitment":
			readHash(in, &v.Commitment)
		case "revealAuthority":
			readOptionalAddress(in, &v.RevealAuthority)
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}

// MarshalTinyJSON implements tinyjson.Marshaler.
func (v CommitVoteArgs) MarshalTinyJSON(w *jwriter.Writer) {
	w.RawString(`{"dao":`)
	writeAddress(w, v.Dao)
	w.RawString(`,"proposalId":`)
	w.Uint64(v.ProposalId)
	w.RawString(`,"commitment":`)
	writeHash(w, v.Commitment)
	w.RawString(`,"revealAuthority":`)
	writeOptionalAddress(w, v.RevealAuthority)
	w.RawByte('}')
}

// UnmarshalTinyJSON implements tinyjson.Unmarshaler.
func (v *DelegateVoteArgs) UnmarshalTinyJSON(in *jlexer.Lexer) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "dao":
			readAddress(in, &v.Dao)
		case "proposalId":
			v.ProposalId = in.Uint64()
		case "delegatee":
			readAddress(in, &v.Delegatee)
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}

// MarshalTinyJSON implements tinyjson.Marshaler.
func (v DelegateVoteArgs) MarshalTinyJSON(w *jwriter.Writer) {
	w.RawString(`{"dao":`)
	writeAddress(w, v.Dao)
	w.RawString(`,"proposalId":`)
	w.Uint64(v.ProposalId)
	w.RawString(`,"delegatee":`)
	writeAddress(w, v.Delegatee)
	w.RawByte('}')
}

// UnmarshalTinyJSON implements tinyjson.Unmarshaler.
func (v *CommitDelegatedVoteArgs) UnmarshalTinyJSON(in *jlexer.Lexer) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "dao":
			readAddress(in, &v.Dao)
		case "proposalId":
			v.ProposalId = in.Uint64()
		case "delegator":
			readAddress(in, &v.Delegator)
		case "commitment":
			readHash(in, &v.Commitment)
		case "revealAuthority":
			readOptionalAddress(in, &v.RevealAuthority)
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}

// MarshalTinyJSON implements tinyjson.Marshaler.
func (v CommitDelegatedVoteArgs) MarshalTinyJSON(w *jwriter.Writer) {
	w.RawString(`{"dao":`)
	writeAddress(w, v.Dao)
	w.RawString(`,"proposalId":`)
	w.Uint64(v.ProposalId)
	w.RawString(`,"delegator":`)
	writeAddress(w, v.Delegator)
	w.RawString(`,"commitment":`)
	writeHash(w, v.Commitment)
	w.RawString(`,"revealAuthority":`)
	writeOptionalAddress(w, v.RevealAuthority)
	w.RawByte('}')
}

// UnmarshalTinyJSON implements tinyjson.Unmarshaler.
func (v *RevealVoteArgs) UnmarshalTinyJSON(in *jlexer.Lexer) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "dao":
			readAddress(in, &v.Dao)
		case "proposalId":
			v.ProposalId = in.Uint64()
		case "voter":
			readAddress(in, &v.Voter)
		case "vote":
			v.Vote = in.Bool()
		case "salt":
			readHash(in, &v.Salt)
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}

// MarshalTinyJSON implements tinyjson.Marshaler.
func (v RevealVoteArgs) MarshalTinyJSON(w *jwriter.Writer) {
	w.RawString(`{"dao":`)
	writeAddress(w, v.Dao)
	w.RawString(`,"proposalId":`)
	w.Uint64(v.ProposalId)
	w.RawString(`,"voter":`)
	writeAddress(w, v.Voter)
	w.RawString(`,"vote":`)
	w.Bool(v.Vote)
	w.RawString(`,"salt":`)
	writeHash(w, v.Salt)
	w.RawByte('}')
}

// UnmarshalTinyJSON implements tinyjson.Unmarshaler.
func (v *ExecuteProposalArgs) UnmarshalTinyJSON(in *jlexer.Lexer) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "dao":
			readAddress(in, &v.Dao)
		case "proposalId":
			v.ProposalId = in.Uint64()
		case "recipient":
			readAddress(in, &v.Recipient)
		case "treasuryTokenAccount":
			readOptionalAddress(in, &v.TreasuryTokenAccount)
		case "recipientTokenAccount":
			readOptionalAddress(in, &v.RecipientTokenAccount)
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}

// MarshalTinyJSON implements tinyjson.Marshaler.
func (v ExecuteProposalArgs) MarshalTinyJSON(w *jwriter.Writer) {
	w.RawString(`{"dao":`)
	writeAddress(w, v.Dao)
	w.RawString(`,"proposalId":`)
	w.Uint64(v.ProposalId)
	w.RawString(`,"recipient":`)
	writeAddress(w, v.Recipient)
	w.RawString(`,"treasuryTokenAccount":`)
	writeOptionalAddress(w, v.TreasuryTokenAccount)
	w.RawString(`,"recipientTokenAccount":`)
	writeOptionalAddress(w, v.RecipientTokenAccount)
	w.RawByte('}')
}

// UnmarshalTinyJSON implements tinyjson.Unmarshaler.
func (v *DepositTreasuryArgs) UnmarshalTinyJSON(in *jlexer.Lexer) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "dao":
			readAddress(in, &v.Dao)
		case "amount":
			v.Amount = in.Uint64()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}

// MarshalTinyJSON implements tinyjson.Marshaler.
func (v DepositTreasuryArgs) MarshalTinyJSON(w *jwriter.Writer) {
	w.RawString(`{"dao":`)
	writeAddress(w, v.Dao)
	w.RawString(`,"amount":`)
	w.Uint64(v.Amount)
	w.RawByte('}')
}

// UnmarshalTinyJSON implements tinyjson.Unmarshaler.
func (v *UpdateVoterWeightArgs) UnmarshalTinyJSON(in *jlexer.Lexer) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "dao":
			readAddress(in, &v.Dao)
		case "realm":
			readAddress(in, &v.Realm)
		case "weightAction":
			action := in.Uint8()
			v.WeightAction = &action
		case "weightActionTarget":
			readOptionalAddress(in, &v.WeightActionTarget)
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}

// MarshalTinyJSON implements tinyjson.Marshaler.
func (v UpdateVoterWeightArgs) MarshalTinyJSON(w *jwriter.Writer) {
	w.RawString(`{"dao":`)
	writeAddress(w, v.Dao)
	w.RawString(`,"realm":`)
	writeAddress(w, v.Realm)
	w.RawString(`,"weightAction":`)
	if v.WeightAction == nil {
		w.RawString("null")
	} else {
		w.Uint8(*v.WeightAction)
	}
	w.RawString(`,"weightActionTarget":`)
	writeOptionalAddress(w, v.WeightActionTarget)
	w.RawByte('}')
}

// UnmarshalTinyJSON implements tinyjson.Unmarshaler.
func (v *VoterWeightQueryArgs) UnmarshalTinyJSON(in *jlexer.Lexer) {
	isTopLevel := in.IsStart()
	if in.IsNull() {
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		if in.IsNull() {
			in.Skip()
			in.WantComma()
			continue
		}
		switch key {
		case "dao":
			readAddress(in, &v.Dao)
		case "proposalId":
			v.ProposalId = in.Uint64()
		case "voter":
			readAddress(in, &v.Voter)
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
	if isTopLevel {
		in.Consumed()
	}
}

// MarshalTinyJSON implements tinyjson.Marshaler.
func (v VoterWeightQueryArgs) MarshalTinyJSON(w *jwriter.Writer) {
	w.RawString(`{"dao":`)
	writeAddress(w, v.Dao)
	w.RawString(`,"proposalId":`)
	w.Uint64(v.ProposalId)
	w.RawString(`,"voter":`)
	writeAddress(w, v.Voter)
	w.RawByte('}')
}
