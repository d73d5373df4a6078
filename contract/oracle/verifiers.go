package oracle

import "ucic_contracts/state"

func (o *Oracle) getVerifier(addr state.Address) *Verifier {
	ptr := o.st.Get(verifierKey(addr))
	if ptr == nil || *ptr == "" {
		return nil
	}
	v, err := DecodeVerifier([]byte(*ptr))
	if err != nil {
		return nil
	}
	return v
}

func (o *Oracle) putVerifier(v *Verifier) {
	o.st.Set(verifierKey(v.Address), string(EncodeVerifier(v)))
}

// RegisterVerifier adds an auditor to the allow-list. Only the admin may
// manage the list; re-adding an active verifier fails. A previously
// removed verifier comes back with their counters intact.
func (o *Oracle) RegisterVerifier(caller, addr state.Address, now int64) bool {
	if caller != o.admin || !addr.IsValid() {
		return false
	}
	v := o.getVerifier(addr)
	if v != nil && v.Active {
		return false
	}
	if v == nil {
		v = &Verifier{Address: addr}
	}
	v.Active = true
	v.RegisteredAt = now
	o.putVerifier(v)
	state.AddToIndex(o.st, idxVerifiers, addr.String())
	o.emitVerifierChange(addr.String(), true)
	return true
}

// RemoveVerifier drops an auditor from the allow-list. The stats record
// stays so past chain entries keep their counters.
func (o *Oracle) RemoveVerifier(caller, addr state.Address) bool {
	if caller != o.admin {
		return false
	}
	v := o.getVerifier(addr)
	if v == nil || !v.Active {
		return false
	}
	v.Active = false
	o.putVerifier(v)
	state.RemoveFromIndex(o.st, idxVerifiers, addr.String())
	o.emitVerifierChange(addr.String(), false)
	return true
}

// IsVerifier reports whether the address is currently allow-listed.
func (o *Oracle) IsVerifier(addr state.Address) bool {
	v := o.getVerifier(addr)
	return v != nil && v.Active
}

// Verifiers lists the current allow-list.
func (o *Oracle) Verifiers() []state.Address {
	members := state.IndexMembers(o.st, idxVerifiers)
	out := make([]state.Address, len(members))
	for i, m := range members {
		out[i] = state.Address(m)
	}
	return out
}

// VerifierStats returns the stored counters for one verifier, nil when the
// address was never registered. Removed verifiers keep their record.
func (o *Oracle) VerifierStats(addr state.Address) *Verifier {
	return o.getVerifier(addr)
}
