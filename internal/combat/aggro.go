package combat

// aggroEntry tracks one attacker's accumulated threat. seq records when the
// attacker first appeared so ties resolve to the earliest attacker instead of
// map iteration order.
type aggroEntry struct {
	amount int
	seq    uint64
}

// AggroTable accumulates threat per attacker for one mob. It is owned by the
// mob's message handler and needs no locking.
type AggroTable struct {
	entries map[string]*aggroEntry
	nextSeq uint64
}

func NewAggroTable() *AggroTable {
	return &AggroTable{entries: make(map[string]*aggroEntry)}
}

// Add merges amount into the attacker's accumulated threat.
func (t *AggroTable) Add(attackerID string, amount int) {
	if e, ok := t.entries[attackerID]; ok {
		e.amount += amount
		return
	}
	t.entries[attackerID] = &aggroEntry{amount: amount, seq: t.nextSeq}
	t.nextSeq++
}

// Highest returns the attacker id with the largest accumulated threat. Equal
// threat resolves to the attacker that entered the table first. Returns false
// when the table is empty.
func (t *AggroTable) Highest() (string, bool) {
	var (
		bestID string
		best   *aggroEntry
	)
	for id, e := range t.entries {
		if best == nil || e.amount > best.amount ||
			(e.amount == best.amount && e.seq < best.seq) {
			bestID, best = id, e
		}
	}
	return bestID, best != nil
}

// Remove forgets one attacker, for when the target dies or leaves.
func (t *AggroTable) Remove(attackerID string) {
	delete(t.entries, attackerID)
}

// Clear empties the table. Called on the owning mob's death.
func (t *AggroTable) Clear() {
	t.entries = make(map[string]*aggroEntry)
	t.nextSeq = 0
}

// Len returns the number of tracked attackers.
func (t *AggroTable) Len() int {
	return len(t.entries)
}
