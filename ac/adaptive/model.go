package adaptive

import (
	"github.com/Bukkk/acs/ac"
)

const (
	// SymbolCount is the size of the alphabet, one symbol per byte value.
	SymbolCount = 256

	// BlockSize is the number of symbols buffered in a Cache before it is merged into the Model.
	BlockSize = 128

	// MaxOccurrence bounds the sum of all counts of a Model.
	// Keeping the sum below a quarter of the whole interval keeps every symbol's sub-interval non-empty
	// and the products in ac.Interval.Sub within 64 bits.
	MaxOccurrence = ac.Quarter - 1

	// MaxSymbols is the longest sequence that can be coded before a Model's sum exceeds MaxOccurrence.
	// Counts are never halved, so longer inputs are rejected.
	MaxSymbols = MaxOccurrence - SymbolCount
)

// A Table is a cumulative frequency table: symbol s occupies [From[s], To[s]) out of Sum.
type Table struct {
	From [SymbolCount]uint64
	To   [SymbolCount]uint64
	Sum  uint64
}

// A Model counts occurrences of every symbol, starting from one each.
type Model struct {
	occurrence [SymbolCount]uint64
	table      Table
}

// NewModel returns a Model in which all symbols are equally likely.
func NewModel() *Model {
	m := &Model{}
	for i := range m.occurrence {
		m.occurrence[i] = 1
	}
	m.table.Sum = SymbolCount
	m.calculateScale()
	return m
}

func (m *Model) calculateScale() {
	var sum uint64
	for s, n := range m.occurrence {
		m.table.From[s] = sum
		sum += n
		m.table.To[s] = sum
	}
}

// ScaleFrom returns the lower cumulative bound of symbol.
func (m *Model) ScaleFrom(symbol byte) uint64 {
	return m.table.From[symbol]
}

// ScaleTo returns the upper cumulative bound of symbol.
func (m *Model) ScaleTo(symbol byte) uint64 {
	return m.table.To[symbol]
}

// OccurrenceSum returns the total count over all symbols.
func (m *Model) OccurrenceSum() uint64 {
	return m.table.Sum
}

// Occurrence returns the count of symbol.
func (m *Model) Occurrence(symbol byte) uint64 {
	return m.occurrence[symbol]
}

// Table returns the current cumulative frequency table.
// It stays valid until the next call to Update or Merge.
func (m *Model) Table() *Table {
	return &m.table
}

// Update counts one more occurrence of symbol.
func (m *Model) Update(symbol byte) {
	m.occurrence[symbol]++
	m.table.Sum++
	m.calculateScale()
}

// Merge adds the counts buffered in c, rebuilding the table once.
func (m *Model) Merge(c *Cache) {
	for s, d := range c.delta {
		m.occurrence[s] += d
	}
	m.table.Sum += c.sum
	m.calculateScale()
}

// A Cache buffers occurrences not yet merged into a Model.
type Cache struct {
	delta [SymbolCount]uint64
	sum   uint64
}

// Update counts one more occurrence of symbol.
func (c *Cache) Update(symbol byte) {
	c.delta[symbol]++
	c.sum++
}

// Sum returns the number of buffered occurrences.
func (c *Cache) Sum() uint64 {
	return c.sum
}

// Delta returns the number of buffered occurrences of symbol.
func (c *Cache) Delta(symbol byte) uint64 {
	return c.delta[symbol]
}

// state is the model and cache pair that encoders and decoders evolve in lock step.
type state struct {
	model *Model
	cache Cache
}

func newState() *state {
	return &state{model: NewModel()}
}

// observe records symbol, merging the cache into the model once it holds BlockSize symbols.
func (st *state) observe(symbol byte) {
	st.cache.Update(symbol)
	if st.cache.Sum() == BlockSize {
		st.model.Merge(&st.cache)
		st.cache = Cache{}
	}
}

// find returns the symbol whose sub-interval of iv contains z, along with that sub-interval.
func find(t *Table, iv ac.Interval, z uint64) (byte, ac.Interval, bool) {
	left, right := 0, SymbolCount-1
	for left <= right {
		mid := left + (right-left)/2
		lo, hi := iv.Sub(t.From[mid], t.To[mid], t.Sum)
		switch {
		case z < lo:
			right = mid - 1
		case z >= hi:
			left = mid + 1
		default:
			return byte(mid), ac.Interval{Low: lo, High: hi}, true
		}
	}
	return 0, ac.Interval{}, false
}
