package dao

import "fmt"

func (e *Engine) emit(line string) {
	if e.log != nil {
		e.log(line)
	}
}

// emitContributorRegistered writes a tiny "cr" log for every fresh member.
func (e *Engine) emitContributorRegistered(addr string) {
	e.emit(fmt.Sprintf("cr|by:%s", addr))
}

// emitScoreSubmitted replays the weighted result so points can be audited
// from logs only.
func (e *Engine) emitScoreSubmitted(addr string, composite, total uint64, tier Tier) {
	e.emit(fmt.Sprintf("sc|by:%s|c:%d|tp:%d|t:%s", addr, composite, total, tier.String()))
}

// emitTierChanged marks promotions, the only direction tiers move.
func (e *Engine) emitTierChanged(addr string, from, to Tier) {
	e.emit(fmt.Sprintf("tu|by:%s|from:%s|to:%s", addr, from.String(), to.String()))
}

// emitBonusApplied records one-time module bonuses.
func (e *Engine) emitBonusApplied(addr string, moduleID, points uint64) {
	e.emit(fmt.Sprintf("mb|by:%s|m:%d|p:%d", addr, moduleID, points))
}

// emitRewardPaid traces each payout of a reward cycle.
func (e *Engine) emitRewardPaid(addr string, amount uint64, tier Tier) {
	e.emit(fmt.Sprintf("rp|to:%s|am:%d|t:%s", addr, amount, tier.String()))
}

// emitProposalCreated keeps observers updated with a short pc line.
func (e *Engine) emitProposalCreated(id uint64, by string) {
	e.emit(fmt.Sprintf("pc|id:%d|by:%s", id, by))
}

// emitProposalStateChanged is the swiss army knife log entry for any state flip.
func (e *Engine) emitProposalStateChanged(id uint64, s ProposalState) {
	e.emit(fmt.Sprintf("ps|id:%d|s:%s", id, s.String()))
}

// emitVoteCast includes the frozen power so tallies can be replayed from logs.
func (e *Engine) emitVoteCast(id uint64, voter string, vt VoteType, power uint64) {
	e.emit(fmt.Sprintf("v|id:%d|by:%s|vt:%s|w:%d", id, voter, vt.String(), power))
}
