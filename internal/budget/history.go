package budget

// DefaultHistoryLimit bounds a History created with a non-positive limit.
const DefaultHistoryLimit = 50

// History is the session-local list of estimates, newest first. When full,
// adding an estimate evicts the oldest one. It is not safe for concurrent
// use; the client shell owns it from a single goroutine.
type History struct {
	items []Estimate
	limit int
}

func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &History{limit: limit}
}

// Add puts e in front of the history.
func (h *History) Add(e Estimate) {
	h.items = append([]Estimate{e}, h.items...)
	if len(h.items) > h.limit {
		h.items = h.items[:h.limit]
	}
}

// Items returns a copy of the history, newest first.
func (h *History) Items() []Estimate {
	out := make([]Estimate, len(h.items))
	copy(out, h.items)
	return out
}

// Latest returns the most recent estimate, if any.
func (h *History) Latest() (Estimate, bool) {
	if len(h.items) == 0 {
		return Estimate{}, false
	}
	return h.items[0], true
}

func (h *History) Len() int { return len(h.items) }

func (h *History) Limit() int { return h.limit }

func (h *History) Clear() { h.items = nil }
