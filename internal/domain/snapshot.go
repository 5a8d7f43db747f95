package domain

// Snapshot maps a service name to whether its port accepted a connection
// during one scan. A snapshot always holds exactly one entry per configured
// service.
type Snapshot map[string]bool

// Clone returns an independent copy.
func (s Snapshot) Clone() Snapshot {
	out := make(Snapshot, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// OnlineCount returns how many services were reachable.
func (s Snapshot) OnlineCount() int {
	n := 0
	for _, up := range s {
		if up {
			n++
		}
	}
	return n
}

// OfflineDurations maps a service name to the seconds it has been observed
// offline since it was last seen online.
type OfflineDurations map[string]float64

// Clone returns an independent copy.
func (d OfflineDurations) Clone() OfflineDurations {
	out := make(OfflineDurations, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}
