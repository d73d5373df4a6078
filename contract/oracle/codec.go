package oracle

import (
	"ucic_contracts/codec"
	"ucic_contracts/contract/dao"
	"ucic_contracts/state"
)

func encodeScores(w *codec.Writer, s dao.ScoreSet) {
	w.WriteUint64(s.CodeQuality)
	w.WriteUint64(s.Documentation)
	w.WriteUint64(s.Testing)
	w.WriteUint64(s.Innovation)
	w.WriteUint64(s.Community)
}

func decodeScores(r *codec.Reader) (dao.ScoreSet, error) {
	var s dao.ScoreSet
	var err error
	if s.CodeQuality, err = r.ReadUint64(); err != nil {
		return s, err
	}
	if s.Documentation, err = r.ReadUint64(); err != nil {
		return s, err
	}
	if s.Testing, err = r.ReadUint64(); err != nil {
		return s, err
	}
	if s.Innovation, err = r.ReadUint64(); err != nil {
		return s, err
	}
	if s.Community, err = r.ReadUint64(); err != nil {
		return s, err
	}
	return s, nil
}

// EncodeSubmission packs a Submission into deterministic bytes. The same
// blob feeds storage and the submission id derivation.
func EncodeSubmission(s *Submission) []byte {
	w := codec.NewWriter()
	w.WriteString(s.ID)
	w.WriteString(s.Contributor.String())
	encodeScores(w, s.Scores)
	w.WriteString(s.RepoURL)
	w.WriteBytes(s.EvidenceHash)
	w.WriteInt64(s.SubmittedAt)
	w.WriteUint8(byte(s.Level))
	w.WriteUint64(s.Approvals)
	w.WriteUint64(s.Rejections)
	w.WriteUint64(s.ChainCount)
	w.WriteBool(s.Forwarded)
	w.WriteBool(s.Challenged)
	w.WriteBytes(s.MerkleRoot)
	return w.Bytes()
}

func DecodeSubmission(data []byte) (*Submission, error) {
	r := codec.NewReader(data)
	s := &Submission{}
	var err error
	if s.ID, err = r.ReadString(); err != nil {
		return nil, err
	}
	contributor, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	s.Contributor = state.Address(contributor)
	if s.Scores, err = decodeScores(r); err != nil {
		return nil, err
	}
	if s.RepoURL, err = r.ReadString(); err != nil {
		return nil, err
	}
	if s.EvidenceHash, err = r.ReadBytes(); err != nil {
		return nil, err
	}
	if s.SubmittedAt, err = r.ReadInt64(); err != nil {
		return nil, err
	}
	lvl, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	s.Level = VerificationLevel(lvl)
	if s.Approvals, err = r.ReadUint64(); err != nil {
		return nil, err
	}
	if s.Rejections, err = r.ReadUint64(); err != nil {
		return nil, err
	}
	if s.ChainCount, err = r.ReadUint64(); err != nil {
		return nil, err
	}
	if s.Forwarded, err = r.ReadBool(); err != nil {
		return nil, err
	}
	if s.Challenged, err = r.ReadBool(); err != nil {
		return nil, err
	}
	if s.MerkleRoot, err = r.ReadBytes(); err != nil {
		return nil, err
	}
	return s, nil
}

// EncodeVerification serializes one chain entry.
func EncodeVerification(v *Verification) []byte {
	w := codec.NewWriter()
	w.WriteUint64(v.Seq)
	w.WriteString(v.SubmissionID)
	w.WriteString(v.Verifier.String())
	w.WriteBool(v.Approved)
	w.WriteString(v.Notes)
	w.WriteUint8(byte(v.LevelAfter))
	w.WriteInt64(v.At)
	return w.Bytes()
}

func DecodeVerification(data []byte) (*Verification, error) {
	r := codec.NewReader(data)
	v := &Verification{}
	var err error
	if v.Seq, err = r.ReadUint64(); err != nil {
		return nil, err
	}
	if v.SubmissionID, err = r.ReadString(); err != nil {
		return nil, err
	}
	verifier, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	v.Verifier = state.Address(verifier)
	if v.Approved, err = r.ReadBool(); err != nil {
		return nil, err
	}
	if v.Notes, err = r.ReadString(); err != nil {
		return nil, err
	}
	lvl, err := r.ReadByte()
	if err != nil {
		return nil, err
	}
	v.LevelAfter = VerificationLevel(lvl)
	if v.At, err = r.ReadInt64(); err != nil {
		return nil, err
	}
	return v, nil
}

// EncodeVerifier serializes one allow-list record with its counters.
func EncodeVerifier(v *Verifier) []byte {
	w := codec.NewWriter()
	w.WriteString(v.Address.String())
	w.WriteInt64(v.RegisteredAt)
	w.WriteBool(v.Active)
	w.WriteUint64(v.Approvals)
	w.WriteUint64(v.Rejections)
	w.WriteInt64(v.LastActionAt)
	return w.Bytes()
}

func DecodeVerifier(data []byte) (*Verifier, error) {
	r := codec.NewReader(data)
	v := &Verifier{}
	addr, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	v.Address = state.Address(addr)
	if v.RegisteredAt, err = r.ReadInt64(); err != nil {
		return nil, err
	}
	if v.Active, err = r.ReadBool(); err != nil {
		return nil, err
	}
	if v.Approvals, err = r.ReadUint64(); err != nil {
		return nil, err
	}
	if v.Rejections, err = r.ReadUint64(); err != nil {
		return nil, err
	}
	if v.LastActionAt, err = r.ReadInt64(); err != nil {
		return nil, err
	}
	return v, nil
}

// EncodeRepoLink serializes a contributor's repository binding.
func EncodeRepoLink(l *RepoLink) []byte {
	w := codec.NewWriter()
	w.WriteString(l.Contributor.String())
	w.WriteString(l.RepoURL)
	w.WriteString(l.CommitSHA)
	return w.Bytes()
}

func DecodeRepoLink(data []byte) (*RepoLink, error) {
	r := codec.NewReader(data)
	l := &RepoLink{}
	contributor, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	l.Contributor = state.Address(contributor)
	if l.RepoURL, err = r.ReadString(); err != nil {
		return nil, err
	}
	if l.CommitSHA, err = r.ReadString(); err != nil {
		return nil, err
	}
	return l, nil
}

// EncodeChallenge serializes a dispute record.
func EncodeChallenge(c *Challenge) []byte {
	w := codec.NewWriter()
	w.WriteString(c.ID)
	w.WriteString(c.SubmissionID)
	w.WriteString(c.Challenger.String())
	w.WriteString(c.Reason)
	w.WriteInt64(c.CreatedAt)
	w.WriteBool(c.Resolved)
	w.WriteBool(c.Accepted)
	w.WriteInt64(c.ResolvedAt)
	return w.Bytes()
}

func DecodeChallenge(data []byte) (*Challenge, error) {
	r := codec.NewReader(data)
	c := &Challenge{}
	var err error
	if c.ID, err = r.ReadString(); err != nil {
		return nil, err
	}
	if c.SubmissionID, err = r.ReadString(); err != nil {
		return nil, err
	}
	challenger, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	c.Challenger = state.Address(challenger)
	if c.Reason, err = r.ReadString(); err != nil {
		return nil, err
	}
	if c.CreatedAt, err = r.ReadInt64(); err != nil {
		return nil, err
	}
	if c.Resolved, err = r.ReadBool(); err != nil {
		return nil, err
	}
	if c.Accepted, err = r.ReadBool(); err != nil {
		return nil, err
	}
	if c.ResolvedAt, err = r.ReadInt64(); err != nil {
		return nil, err
	}
	return c, nil
}
