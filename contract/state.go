package contract

import "private_dao/sdk"

////////////////////////////////////////////////////////////////////////////////
// Contract State Persistence helpers
////////////////////////////////////////////////////////////////////////////////

func saveDao(addr sdk.Address, d *Dao) {
	sdk.StateSetObject(daoKey(addr), string(EncodeDao(d)))
}

func daoExists(addr sdk.Address) bool {
	return sdk.StateGetObject(daoKey(addr)) != nil
}

func loadDao(addr sdk.Address) *Dao {
	ptr := sdk.StateGetObject(daoKey(addr))
	if ptr == nil {
		abortWith(ErrAccountNotFound)
	}
	d, err := DecodeDao([]byte(*ptr))
	if err != nil {
		abortWith(ErrInvalidAccountData)
	}
	return d
}

func saveProposal(addr sdk.Address, p *Proposal) {
	sdk.StateSetObject(proposalKey(addr), string(EncodeProposal(p)))
}

func loadProposal(addr sdk.Address) *Proposal {
	ptr := sdk.StateGetObject(proposalKey(addr))
	if ptr == nil {
		abortWith(ErrAccountNotFound)
	}
	p, err := DecodeProposal([]byte(*ptr))
	if err != nil {
		abortWith(ErrInvalidAccountData)
	}
	return p
}

func saveVoterRecord(addr sdk.Address, v *VoterRecord) {
	sdk.StateSetObject(voterRecordKey(addr), string(EncodeVoterRecord(v)))
}

// loadVoterRecordIfExists returns nil when no commitment has been stored yet.
func loadVoterRecordIfExists(addr sdk.Address) *VoterRecord {
	ptr := sdk.StateGetObject(voterRecordKey(addr))
	if ptr == nil {
		return nil
	}
	v, err := DecodeVoterRecord([]byte(*ptr))
	if err != nil {
		abortWith(ErrInvalidAccountData)
	}
	return v
}

func saveDelegation(addr sdk.Address, d *Delegation) {
	sdk.StateSetObject(delegationKey(addr), string(EncodeDelegation(d)))
}

func delegationExists(addr sdk.Address) bool {
	return sdk.StateGetObject(delegationKey(addr)) != nil
}

func loadDelegation(addr sdk.Address) *Delegation {
	ptr := sdk.StateGetObject(delegationKey(addr))
	if ptr == nil {
		abortWith(ErrAccountNotFound)
	}
	d, err := DecodeDelegation([]byte(*ptr))
	if err != nil {
		abortWith(ErrInvalidAccountData)
	}
	return d
}

func saveVoterWeightRecord(addr sdk.Address, v *VoterWeightRecord) {
	sdk.StateSetObject(voterWeightKey(addr), string(EncodeVoterWeightRecord(v)))
}

// loadVoterWeightRecordIfExists returns nil before the first export.
func loadVoterWeightRecordIfExists(addr sdk.Address) *VoterWeightRecord {
	ptr := sdk.StateGetObject(voterWeightKey(addr))
	if ptr == nil {
		return nil
	}
	v, err := DecodeVoterWeightRecord([]byte(*ptr))
	if err != nil {
		abortWith(ErrInvalidAccountData)
	}
	return v
}
