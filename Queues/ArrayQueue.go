package Queues

// ArrayQueue is a FIFO queue backed by a circular array. The zero value is an
// empty queue ready to use. An ArrayQueue must not be copied by assignment
// after first use, use Clone instead.
type ArrayQueue[T any] struct {
	sz, head, tail uint
	content        []T
}

func MakeArrayQueue[T any](initCap uint) *ArrayQueue[T] {
	return &ArrayQueue[T]{0, 0, 0, make([]T, initCap)}
}

func (this *ArrayQueue[T]) Empty() bool {
	return this.sz == 0
}

// resize the underlying array to newLen>=sz, unwrapping the content to start at 0.
func (this *ArrayQueue[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if this.sz > 0 {
		if this.head < this.tail {
			copy(nc, this.content[this.head:this.tail])
		} else {
			copy(nc, this.content[this.head:])
			copy(nc[uint(len(this.content))-this.head:], this.content[:this.tail])
		}
	}
	this.content = nc
	this.head, this.tail = 0, 0
	if newLen > 0 {
		this.tail = this.sz % newLen
	}
}

func (this *ArrayQueue[T]) Shrink() {
	this.resize(this.sz | 1)
}

func (this *ArrayQueue[T]) Clear() {
	clear(this.content)
	this.tail, this.head, this.sz = 0, 0, 0
}

func (this *ArrayQueue[T]) Size() uint {
	return this.sz
}

func (this *ArrayQueue[T]) Push(item T) {
	if this.sz == uint(len(this.content)) {
		this.resize(max(this.sz+this.sz>>1, 4))
	}
	this.content[this.tail] = item
	this.tail = (this.tail + 1) % uint(len(this.content))
	this.sz++
}

func (this *ArrayQueue[T]) Pop() (item T, e error) {
	if this.Empty() {
		return *new(T), &EmptyQueueError{}
	} else {
		t := this.content[this.head]
		this.content[this.head] = *new(T)
		this.head = (this.head + 1) % uint(len(this.content))
		this.sz--
		return t, nil
	}
}

func (this *ArrayQueue[T]) Peek() (item T) {
	if this.Empty() {
		return *new(T)
	} else {
		return this.content[this.head]
	}
}

// Range calls f on the items from head to tail until f returns false.
func (this *ArrayQueue[T]) Range(f func(T) bool) {
	for i, j := uint(0), this.head; i < this.sz; i, j = i+1, (j+1)%uint(len(this.content)) {
		if !f(this.content[j]) {
			return
		}
	}
}

// Values from head to tail.
func (this *ArrayQueue[T]) Values() []T {
	vs := make([]T, 0, this.sz)
	this.Range(func(v T) bool {
		vs = append(vs, v)
		return true
	})
	return vs
}

// Clone returns a queue holding the same items in the same order. The new
// queue's capacity is fitted to its size.
func (this *ArrayQueue[T]) Clone() *ArrayQueue[T] {
	c := &ArrayQueue[T]{content: this.Values()}
	c.sz = uint(len(c.content))
	if c.sz > 0 {
		c.tail = c.sz % uint(len(c.content))
	}
	return c
}

// Equal reports whether a and b hold equal items in the same order. A nil
// queue is equal to an empty one.
func Equal[T comparable](a, b *ArrayQueue[T]) bool {
	var as, bs uint
	if a != nil {
		as = a.sz
	}
	if b != nil {
		bs = b.sz
	}
	if as != bs {
		return false
	}
	if as == 0 {
		return true
	}
	for i, j, k := uint(0), a.head, b.head; i < as; i++ {
		if a.content[j] != b.content[k] {
			return false
		}
		j, k = (j+1)%uint(len(a.content)), (k+1)%uint(len(b.content))
	}
	return true
}
