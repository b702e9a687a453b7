package label

// AddDestination inserts or replaces a destination by id. The replace is a
// full overwrite; partial fields are never merged.
func (m *Manager) AddDestination(dest *Destination) {
	if dest == nil || dest.ID == "" {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.destinations[dest.ID] = dest
}

// Destination returns the stored destination for id, or nil when unknown.
func (m *Manager) Destination(id string) *Destination {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.destinations[id]
}

// DestinationCount reports how many destinations are stored.
func (m *Manager) DestinationCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.destinations)
}
