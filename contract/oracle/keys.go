package oracle

import "ucic_contracts/state"

// storage key prefixes
const (
	kSubmission byte = 0x01
	kChain      byte = 0x02
	kActed      byte = 0x03
	kVerifier   byte = 0x04
	kRepoLink   byte = 0x05
	kChallenge  byte = 0x06
)

// index bases and counters
const (
	idxVerifiers      = "verif"
	idxChallengesOpen = "chal:open"
	idxSubsPrefix     = "subs:" // + contributor
	cntSubmissions    = "count:subs"
	cntChallenges     = "count:chal"
	cntApprovals      = "count:appr"
	cntRejections     = "count:rej"
	cntAuditComplete  = "count:audit"
	cntForwarded      = "count:fwd"
	cntChalAccepted   = "count:chacc"
	cntVerifTimeSum   = "count:vtsum"
	cntVerifTimeN     = "count:vtn"
)

func submissionKey(id string) string {
	buf := make([]byte, 0, 1+len(id))
	buf = append(buf, kSubmission)
	buf = append(buf, id...)
	return string(buf)
}

// chainKey stores verification actions sequentially per submission.
func chainKey(id string, seq uint64) string {
	buf := make([]byte, 0, 1+len(id)+8)
	buf = append(buf, kChain)
	buf = append(buf, id...)
	buf = state.PackU64LE(seq, buf)
	return string(buf)
}

// actedKey marks that a verifier already acted on a submission. Length
// prefixing the id keeps (id, verifier) pairs collision free.
func actedKey(id string, verifier state.Address) string {
	v := verifier.String()
	buf := make([]byte, 0, 1+8+len(id)+len(v))
	buf = append(buf, kActed)
	buf = state.PackU64LE(uint64(len(id)), buf)
	buf = append(buf, id...)
	buf = append(buf, v...)
	return string(buf)
}

func verifierKey(addr state.Address) string {
	a := addr.String()
	buf := make([]byte, 0, 1+len(a))
	buf = append(buf, kVerifier)
	buf = append(buf, a...)
	return string(buf)
}

func repoLinkKey(addr state.Address) string {
	a := addr.String()
	buf := make([]byte, 0, 1+len(a))
	buf = append(buf, kRepoLink)
	buf = append(buf, a...)
	return string(buf)
}

func challengeKey(id string) string {
	buf := make([]byte, 0, 1+len(id))
	buf = append(buf, kChallenge)
	buf = append(buf, id...)
	return string(buf)
}

func subsIndex(addr state.Address) string {
	return idxSubsPrefix + addr.String()
}
