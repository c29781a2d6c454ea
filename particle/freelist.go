package particle

// freeList is a fixed-capacity FIFO ring of slot indices.
type freeList struct {
	buf  []int
	head int
	n    int
}

func newFreeList(capacity int) freeList {
	f := freeList{buf: make([]int, capacity)}
	for i := range capacity {
		f.buf[i] = i
	}
	f.n = capacity
	return f
}

func (f *freeList) len() int { return f.n }

// push appends an index. Callers guarantee the ring never overflows,
// since every index is either free or in use.
func (f *freeList) push(i int) {
	f.buf[(f.head+f.n)%len(f.buf)] = i
	f.n++
}

func (f *freeList) pop() (int, bool) {
	if f.n == 0 {
		return 0, false
	}
	i := f.buf[f.head]
	f.head = (f.head + 1) % len(f.buf)
	f.n--
	return i, true
}

// reset refills the ring with every index in ascending order.
func (f *freeList) reset() {
	for i := range f.buf {
		f.buf[i] = i
	}
	f.head = 0
	f.n = len(f.buf)
}

// indices returns the queued indices in pop order.
func (f *freeList) indices() []int {
	out := make([]int, 0, f.n)
	for k := 0; k < f.n; k++ {
		out = append(out, f.buf[(f.head+k)%len(f.buf)])
	}
	return out
}
