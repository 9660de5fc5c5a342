package contract

// -----------------------------------------------------------------------------
// Voter weight plugin surface
// -----------------------------------------------------------------------------

// UpdateVoterWeightRecord exports the caller's current weight in the
// spl-governance addin layout so host governance stacks can consume it. The
// exported weight follows the DAO's voting mode; DualChamber exports the
// community chamber since the surface is single-valued. A short slot-bound
// expiry keeps stale weights from being replayed.
func UpdateVoterWeightRecord(payload *string) *string {
	args := &UpdateVoterWeightArgs{}
	decodePayload(payload, args)

	dao := loadDao(args.Dao)
	voter := senderAddress()
	balance := tokenBalance(voter, dao.GovernanceTokenMint)

	weight := balance
	if dao.Voting.Mode != ModeTokenWeighted {
		weight = isqrt(balance)
	}

	expiry := currentSlot() + VoterWeightExpirySlots
	rec := &VoterWeightRecord{
		Realm:               args.Realm,
		GoverningTokenMint:  dao.GovernanceTokenMint,
		GoverningTokenOwner: voter,
		VoterWeight:         weight,
		VoterWeightExpiry:   &expiry,
		WeightAction:        args.WeightAction,
		WeightActionTarget:  args.WeightActionTarget,
	}
	addr := voterWeightRecordAddress(args.Realm, dao.GovernanceTokenMint, voter)
	saveVoterWeightRecord(addr, rec)

	return strptr(formatUint(weight))
}

// GetVoterWeightRecord is a read-only view: the committed community weight
// for (proposal, voter), or zero when no commitment exists.
func GetVoterWeightRecord(payload *string) *string {
	args := &VoterWeightQueryArgs{}
	decodePayload(payload, args)

	addr := proposalAddress(args.Dao, args.ProposalId)
	vr := loadVoterRecordIfExists(voterRecordAddress(addr, args.Voter))
	if vr == nil {
		return strptr("0")
	}
	return strptr(formatUint(vr.WeightCommunity))
}
