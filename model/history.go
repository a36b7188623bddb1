package model

const historySize = 5

// History remembers recent generation hashes to spot still lifes and short cycles
type History struct {
	hashes []string
}

// Record adds a hash and drops the oldest once the history is full
func (h *History) Record(hash string) {
	h.hashes = append(h.hashes, hash)
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
}

// Stagnant reports whether hash repeats one of the last three recorded generations
func (h *History) Stagnant(hash string) bool {
	n := len(h.hashes)
	if n < 3 {
		return false
	}
	for _, prev := range h.hashes[n-3:] {
		if prev == hash {
			return true
		}
	}
	return false
}

// Reset forgets every recorded hash
func (h *History) Reset() {
	h.hashes = nil
}
