package dao

import (
	"ucic_contracts/codec"
	"ucic_contracts/state"
)

// EncodeContributor packs a Contributor into deterministic bytes for storage.
// Example payload: EncodeContributor(&Contributor{Address: "hive:alice", TotalPoints: 120})
func EncodeContributor(c *Contributor) []byte {
	w := codec.NewWriter()
	w.WriteString(c.Address.String())
	w.WriteInt64(c.JoinedAt)
	w.WriteUint64(c.TotalPoints)
	w.WriteUint8(byte(c.Tier))
	w.WriteUint64(c.ScoreCount)
	w.WriteInt64(c.LastScoredAt)
	w.WriteUint64(c.RewardsEarned)
	w.WriteInt64(c.LastRewardClaimAt)
	w.WriteUint64(c.AuditCount)
	return w.Bytes()
}

// DecodeContributor reads back the fields in exact writer order.
func DecodeContributor(data []byte) (*Contributor, error) {
	r := codec.NewReader(data)
	c := &Contributor{}
	addr, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	c.Address = state.Address(addr)
	if c.JoinedAt, err = r.ReadInt64(); err != nil {
		return nil, err
	}
	if c.TotalPoints, err = r.ReadUint64(); err != nil {
		return nil, err
	}
	tier, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	c.Tier = Tier(tier)
	if c.ScoreCount, err = r.ReadUint64(); err != nil {
		return nil, err
	}
	if c.LastScoredAt, err = r.ReadInt64(); err != nil {
		return nil, err
	}
	if c.RewardsEarned, err = r.ReadUint64(); err != nil {
		return nil, err
	}
	if c.LastRewardClaimAt, err = r.ReadInt64(); err != nil {
		return nil, err
	}
	if c.AuditCount, err = r.ReadUint64(); err != nil {
		return nil, err
	}
	return c, nil
}

// EncodeProposal turns a Proposal into bytes so we can persist tallies
// without json overhead.
func EncodeProposal(p *Proposal) []byte {
	w := codec.NewWriter()
	w.WriteUint64(p.ID)
	w.WriteString(p.Proposer.String())
	w.WriteString(p.Title)
	w.WriteString(p.Description)
	w.WriteInt64(p.CreatedAt)
	w.WriteInt64(p.Deadline)
	w.WriteUint8(byte(p.State))
	w.WriteUint64(p.ForPower)
	w.WriteUint64(p.AgainstPower)
	w.WriteUint64(p.AbstainPower)
	w.WriteUint64(p.VoterCount)
	w.WriteInt64(p.ExecutedAt)
	return w.Bytes()
}

// DecodeProposal lets governance tooling inspect stored proposals with one
// helper call.
func DecodeProposal(data []byte) (*Proposal, error) {
	r := codec.NewReader(data)
	p := &Proposal{}
	var err error
	if p.ID, err = r.ReadUint64(); err != nil {
		return nil, err
	}
	proposer, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	p.Proposer = state.Address(proposer)
	if p.Title, err = r.ReadString(); err != nil {
		return nil, err
	}
	if p.Description, err = r.ReadString(); err != nil {
		return nil, err
	}
	if p.CreatedAt, err = r.ReadInt64(); err != nil {
		return nil, err
	}
	if p.Deadline, err = r.ReadInt64(); err != nil {
		return nil, err
	}
	st, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	p.State = ProposalState(st)
	if p.ForPower, err = r.ReadUint64(); err != nil {
		return nil, err
	}
	if p.AgainstPower, err = r.ReadUint64(); err != nil {
		return nil, err
	}
	if p.AbstainPower, err = r.ReadUint64(); err != nil {
		return nil, err
	}
	if p.VoterCount, err = r.ReadUint64(); err != nil {
		return nil, err
	}
	if p.ExecutedAt, err = r.ReadInt64(); err != nil {
		return nil, err
	}
	return p, nil
}

// EncodeVoteReceipt persists one vote with its frozen power.
func EncodeVoteReceipt(v *VoteReceipt) []byte {
	w := codec.NewWriter()
	w.WriteUint64(v.ProposalID)
	w.WriteString(v.Voter.String())
	w.WriteUint8(byte(v.Type))
	w.WriteUint64(v.Power)
	w.WriteInt64(v.CastAt)
	return w.Bytes()
}

func DecodeVoteReceipt(data []byte) (*VoteReceipt, error) {
	r := codec.NewReader(data)
	v := &VoteReceipt{}
	var err error
	if v.ProposalID, err = r.ReadUint64(); err != nil {
		return nil, err
	}
	voter, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	v.Voter = state.Address(voter)
	vt, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	v.Type = VoteType(vt)
	if v.Power, err = r.ReadUint64(); err != nil {
		return nil, err
	}
	if v.CastAt, err = r.ReadInt64(); err != nil {
		return nil, err
	}
	return v, nil
}

// EncodeAuditEntry serializes one point-history line.
func EncodeAuditEntry(e *AuditEntry) []byte {
	w := codec.NewWriter()
	w.WriteUint64(e.Seq)
	w.WriteString(e.Action)
	w.WriteUint64(e.Points)
	w.WriteInt64(e.Timestamp)
	return w.Bytes()
}

func DecodeAuditEntry(data []byte) (*AuditEntry, error) {
	r := codec.NewReader(data)
	e := &AuditEntry{}
	var err error
	if e.Seq, err = r.ReadUint64(); err != nil {
		return nil, err
	}
	if e.Action, err = r.ReadString(); err != nil {
		return nil, err
	}
	if e.Points, err = r.ReadUint64(); err != nil {
		return nil, err
	}
	if e.Timestamp, err = r.ReadInt64(); err != nil {
		return nil, err
	}
	return e, nil
}

// EncodeGovEntry serializes one governance-log line.
func EncodeGovEntry(e *GovEntry) []byte {
	w := codec.NewWriter()
	w.WriteUint64(e.Seq)
	w.WriteString(e.Action)
	w.WriteString(e.Actor.String())
	w.WriteUint64(e.ProposalID)
	w.WriteInt64(e.Timestamp)
	return w.Bytes()
}

func DecodeGovEntry(data []byte) (*GovEntry, error) {
	r := codec.NewReader(data)
	e := &GovEntry{}
	var err error
	if e.Seq, err = r.ReadUint64(); err != nil {
		return nil, err
	}
	if e.Action, err = r.ReadString(); err != nil {
		return nil, err
	}
	actor, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	e.Actor = state.Address(actor)
	if e.ProposalID, err = r.ReadUint64(); err != nil {
		return nil, err
	}
	if e.Timestamp, err = r.ReadInt64(); err != nil {
		return nil, err
	}
	return e, nil
}
