package state

// Store is the key/value surface each component owns exclusively. The host
// ledger decides durability; the contract only sees Set/Get/Delete on a
// string keyspace, mirroring the chain KV api.
type Store interface {
	Set(key, value string)
	Get(key string) *string
	Delete(key string)
}

// LogFunc receives the terse event lines components emit. A nil sink is
// valid and drops everything.
type LogFunc func(line string)

// MemoryStore keeps the whole keyspace in a plain map. It is the reference
// Store for hosts that replay the transaction log themselves and for tests.
type MemoryStore struct {
	db map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{db: make(map[string]string)}
}

func (m *MemoryStore) Set(key, value string) {
	m.db[key] = value
}

func (m *MemoryStore) Get(key string) *string {
	val, ok := m.db[key]
	if !ok {
		return nil
	}
	return &val
}

func (m *MemoryStore) Delete(key string) {
	delete(m.db, key)
}

// Len reports how many keys are live, handy for storage-growth assertions.
func (m *MemoryStore) Len() int {
	return len(m.db)
}
