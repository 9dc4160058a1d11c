package tether

// heightTable is the sparse index → measured-height store for the
// current measurement epoch, plus the running average derived from it.
//
// Entries are monotonic within an epoch: once an index is measured it
// keeps that value until the next reset, and reset clears the table
// and the average together so a consumer can never read a fresh,
// empty table against a stale average. The average itself is only
// recomputed by the pipeline after a whole batch has been folded in.
type heightTable struct {
	measured map[int]int
	avg      int
	avgSet   bool
}

func newHeightTable() *heightTable {
	return &heightTable{measured: make(map[int]int)}
}

// set records a measurement. Re-measuring an index within an epoch is
// ignored; only reset clears entries.
func (t *heightTable) set(index, height int) {
	if _, ok := t.measured[index]; ok {
		return
	}
	t.measured[index] = height
}

// get returns the measured height for index, if any.
func (t *heightTable) get(index int) (int, bool) {
	h, ok := t.measured[index]
	return h, ok
}

// len returns the number of measured entries this epoch.
func (t *heightTable) len() int {
	return len(t.measured)
}

// setAverage records the batch result: total rows over count measured
// entries. A zero count unsets the average.
func (t *heightTable) setAverage(total, count int) {
	if count <= 0 {
		t.avg = 0
		t.avgSet = false
		return
	}
	t.avg = total / count
	t.avgSet = true
}

// average reports the running average. ok is false when nothing has
// been measured this epoch; callers must fall back to their default
// height rather than surface an undefined size.
func (t *heightTable) average() (int, bool) {
	return t.avg, t.avgSet
}

// reset starts a new epoch, dropping all measurements and the average.
func (t *heightTable) reset() {
	t.measured = make(map[int]int)
	t.avg = 0
	t.avgSet = false
}
