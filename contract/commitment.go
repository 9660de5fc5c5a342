package contract

import (
	"crypto/subtle"

	"github.com/minio/sha256-simd"

	"private_dao/sdk"
)

// ComputeCommitment hashes the 65-byte preimage vote_byte ‖ salt ‖ voter.
// Binding the voter key makes commitments non-transferable: the same
// (vote, salt) under a different voter yields a different digest.
func ComputeCommitment(vote bool, salt Hash32, voter sdk.Address) Hash32 {
	var preimage [65]byte
	if vote {
		preimage[0] = 1
	}
	copy(preimage[1:33], salt[:])
	copy(preimage[33:65], voter[:])
	return Hash32(sha256.Sum256(preimage[:]))
}

// CommitmentEqual compares two digests in constant time.
func CommitmentEqual(a, b Hash32) bool {
	return subtle.ConstantTimeCompare(a[:], b[:]) == 1
}
