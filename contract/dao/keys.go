package dao

import "ucic_contracts/state"

// storage key prefixes
const (
	kContributor byte = 0x01
	kProposal    byte = 0x02
	kVote        byte = 0x03
	kBonus       byte = 0x04
	kAudit       byte = 0x05
	kGovLog      byte = 0x06
)

// index bases and counters
const (
	idxContributors   = "contrib"
	idxProposalsOpen  = "props:open"
	idxProposalsDone  = "props:closed"
	cntProposals      = "count:props"
	cntGovLog         = "count:gov"
	cntPointsAwarded  = "count:points"
	cntRewardsPaid    = "count:rewards"
	cntExecuted       = "count:exec"
	keyLastRewardTime = "rewards:last"
)

func contributorKey(addr state.Address) string {
	a := addr.String()
	buf := make([]byte, 0, 1+len(a))
	buf = append(buf, kContributor)
	buf = append(buf, a...)
	return string(buf)
}

func proposalKey(id uint64) string {
	var buf [9]byte
	buf[0] = kProposal
	copy(buf[1:], state.PackU64LE(id, nil))
	return string(buf[:])
}

// voteKey mixes proposal id plus voter bytes to avoid nested maps in host storage.
func voteKey(id uint64, voter state.Address) string {
	v := voter.String()
	buf := make([]byte, 0, 1+8+len(v))
	buf = append(buf, kVote)
	buf = state.PackU64LE(id, buf)
	buf = append(buf, v...)
	return string(buf)
}

// bonusKey marks a (module, contributor) pair as claimed.
func bonusKey(moduleID uint64, addr state.Address) string {
	a := addr.String()
	buf := make([]byte, 0, 1+8+len(a))
	buf = append(buf, kBonus)
	buf = state.PackU64LE(moduleID, buf)
	buf = append(buf, a...)
	return string(buf)
}

// auditKey stores a contributor's history entries sequentially.
func auditKey(addr state.Address, seq uint64) string {
	a := addr.String()
	buf := make([]byte, 0, 1+len(a)+8)
	buf = append(buf, kAudit)
	buf = append(buf, a...)
	buf = state.PackU64LE(seq, buf)
	return string(buf)
}

func govLogKey(seq uint64) string {
	var buf [9]byte
	buf[0] = kGovLog
	copy(buf[1:], state.PackU64LE(seq, nil))
	return string(buf[:])
}
