package monitor

// HistorySize is the number of latency samples retained per target.
const HistorySize = 50

// historyBuffer is a fixed-size circular buffer of latency samples.
// Oldest entries are evicted when the buffer is at capacity.
type historyBuffer struct {
	data  []Sample
	head  int
	count int
	size  int
}

// newHistoryBuffer creates a new ring buffer with the specified capacity.
func newHistoryBuffer(size int) *historyBuffer {
	if size <= 0 {
		size = HistorySize
	}
	return &historyBuffer{
		data: make([]Sample, size),
		size: size,
	}
}

// push adds a sample, evicting the oldest entry when at capacity.
func (b *historyBuffer) push(s Sample) {
	b.data[b.head] = s
	b.head = (b.head + 1) % b.size
	if b.count < b.size {
		b.count++
	}
}

// getLast returns the last count samples in chronological order (oldest first).
func (b *historyBuffer) getLast(count int) []Sample {
	if count <= 0 || b.count == 0 {
		return nil
	}

	if count > b.count {
		count = b.count
	}

	result := make([]Sample, count)

	// head points to the next write position, so the most recent sample is
	// at head-1; we want 'count' samples ending there.
	start := (b.head - count + b.size) % b.size

	for i := 0; i < count; i++ {
		idx := (start + i) % b.size
		result[i] = b.data[idx]
	}

	return result
}

// getAll returns all stored samples in chronological order.
func (b *historyBuffer) getAll() []Sample {
	return b.getLast(b.count)
}

// len returns the number of stored samples.
func (b *historyBuffer) len() int {
	return b.count
}
