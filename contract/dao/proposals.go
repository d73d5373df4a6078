package dao

import "ucic_contracts/state"

func (e *Engine) getProposal(id uint64) *Proposal {
	ptr := e.st.Get(proposalKey(id))
	if ptr == nil || *ptr == "" {
		return nil
	}
	p, err := DecodeProposal([]byte(*ptr))
	if err != nil {
		return nil
	}
	return p
}

func (e *Engine) putProposal(p *Proposal) {
	e.st.Set(proposalKey(p.ID), string(EncodeProposal(p)))
}

// appendGovLog adds one line to the global governance log.
func (e *Engine) appendGovLog(action string, actor state.Address, proposalID uint64, now int64) {
	seq := state.NextID(e.st, cntGovLog)
	entry := &GovEntry{Seq: seq, Action: action, Actor: actor, ProposalID: proposalID, Timestamp: now}
	e.st.Set(govLogKey(seq), string(EncodeGovEntry(entry)))
}

// CreateProposal opens a new proposal with the standard voting window.
// Only registered contributors may propose. Returns the new id, zero on
// failure.
func (e *Engine) CreateProposal(proposer state.Address, title, description string, now int64) uint64 {
	if title == "" {
		return 0
	}
	if e.getContributor(proposer) == nil {
		return 0
	}
	id := state.NextID(e.st, cntProposals)
	p := &Proposal{
		ID:          id,
		Proposer:    proposer,
		Title:       title,
		Description: description,
		CreatedAt:   now,
		Deadline:    now + VotingWindowSeconds,
		State:       ProposalPending,
	}
	e.putProposal(p)
	state.AddToIndex(e.st, idxProposalsOpen, state.UInt64ToString(id))
	e.appendGovLog("proposal_created", proposer, id, now)
	e.emitProposalCreated(id, proposer.String())
	return id
}

// GetProposal returns a copy of the stored proposal, nil when unknown.
func (e *Engine) GetProposal(id uint64) *Proposal {
	return e.getProposal(id)
}

// HasVoted reports whether the voter already acted on the proposal.
func (e *Engine) HasVoted(id uint64, voter state.Address) bool {
	return e.st.Get(voteKey(id, voter)) != nil
}

// GetVote returns the stored receipt, nil when the voter never voted.
func (e *Engine) GetVote(id uint64, voter state.Address) *VoteReceipt {
	ptr := e.st.Get(voteKey(id, voter))
	if ptr == nil || *ptr == "" {
		return nil
	}
	v, err := DecodeVoteReceipt([]byte(*ptr))
	if err != nil {
		return nil
	}
	return v
}

// CastVote records one vote per (proposal, voter). The voter's power is
// frozen into the receipt at cast time; later tier changes never rewrite a
// tally. The first vote flips the proposal to ACTIVE.
func (e *Engine) CastVote(id uint64, voter state.Address, vt VoteType, now int64) bool {
	if vt != VoteFor && vt != VoteAgainst && vt != VoteAbstain {
		return false
	}
	p := e.getProposal(id)
	if p == nil {
		return false
	}
	if p.State != ProposalPending && p.State != ProposalActive {
		return false
	}
	if now >= p.Deadline {
		return false
	}
	c := e.getContributor(voter)
	if c == nil {
		return false
	}
	if e.HasVoted(id, voter) {
		return false
	}

	power := c.Tier.VotingPower()
	receipt := &VoteReceipt{ProposalID: id, Voter: voter, Type: vt, Power: power, CastAt: now}
	e.st.Set(voteKey(id, voter), string(EncodeVoteReceipt(receipt)))

	switch vt {
	case VoteFor:
		p.ForPower += power
	case VoteAgainst:
		p.AgainstPower += power
	case VoteAbstain:
		p.AbstainPower += power
	}
	p.VoterCount++
	if p.State == ProposalPending {
		p.State = ProposalActive
		e.emitProposalStateChanged(id, ProposalActive)
	}
	e.putProposal(p)
	e.appendGovLog("vote_cast", voter, id, now)
	e.emitVoteCast(id, voter.String(), vt, power)
	return true
}

// totalVotingPower sums every registered contributor's current power.
func (e *Engine) totalVotingPower() uint64 {
	var total uint64
	for _, member := range state.IndexMembers(e.st, idxContributors) {
		if c := e.getContributor(state.Address(member)); c != nil {
			total += c.Tier.VotingPower()
		}
	}
	return total
}

// quorumReached checks participation against the quorum share of the total
// power, rounding the requirement up.
func quorumReached(participating, total uint64) bool {
	if total == 0 {
		return false
	}
	required := (total*QuorumPercent + 99) / 100
	return participating >= required
}

// FinalizeProposal settles an open proposal after its deadline: PASSED when
// quorum is reached and for-votes strictly exceed against-votes, FAILED
// otherwise. Finalizing before the deadline fails.
func (e *Engine) FinalizeProposal(id uint64, now int64) bool {
	p := e.getProposal(id)
	if p == nil {
		return false
	}
	if p.State != ProposalPending && p.State != ProposalActive {
		return false
	}
	if now < p.Deadline {
		return false
	}

	participating := p.ForPower + p.AgainstPower + p.AbstainPower
	if quorumReached(participating, e.totalVotingPower()) && p.ForPower > p.AgainstPower {
		p.State = ProposalPassed
	} else {
		p.State = ProposalFailed
	}
	e.putProposal(p)
	state.RemoveFromIndex(e.st, idxProposalsOpen, state.UInt64ToString(id))
	state.AddToIndex(e.st, idxProposalsDone, state.UInt64ToString(id))
	e.appendGovLog("proposal_finalized", p.Proposer, id, now)
	e.emitProposalStateChanged(id, p.State)
	return true
}

// ExecuteProposal marks a PASSED proposal as carried out. The actual effect
// happens off chain; the engine only pins the transition and its time.
func (e *Engine) ExecuteProposal(id uint64, now int64) bool {
	p := e.getProposal(id)
	if p == nil || p.State != ProposalPassed {
		return false
	}
	p.State = ProposalExecuted
	p.ExecutedAt = now
	e.putProposal(p)
	state.SetCount(e.st, cntExecuted, state.GetCount(e.st, cntExecuted)+1)
	e.appendGovLog("proposal_executed", p.Proposer, id, now)
	e.emitProposalStateChanged(id, ProposalExecuted)
	return true
}

// ActiveProposals lists open proposals whose window is still running.
func (e *Engine) ActiveProposals(now int64) []Proposal {
	var out []Proposal
	for _, member := range state.IndexMembers(e.st, idxProposalsOpen) {
		id, err := parseUint(member)
		if err != nil {
			continue
		}
		p := e.getProposal(id)
		if p == nil || now >= p.Deadline {
			continue
		}
		out = append(out, *p)
	}
	return out
}
