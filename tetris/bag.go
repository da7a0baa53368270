package tetris

import "math/rand/v2"

// allPieceKinds is the canonical ordering shuffled to build one bag.
var allPieceKinds = [7]PieceKind{I, O, T, S, Z, J, L}

// Bag is a 7-bag randomizer: a FIFO queue of upcoming pieces. Pop appends
// a fresh shuffled bag whenever fewer than 7 pieces remain, so at least 6
// pieces are always queued between calls.
type Bag struct {
	src   *rand.PCG
	rng   *rand.Rand
	queue []PieceKind
}

// NewBag constructs a Bag seeded deterministically from seed: the same
// seed always produces the same piece order. Two independent shuffled
// bags are appended up front.
func NewBag(seed uint64) *Bag {
	src := rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	b := &Bag{src: src, rng: rand.New(src)}
	b.appendBag()
	b.appendBag()
	return b
}

// appendBag shuffles a fresh permutation of the seven piece kinds onto the
// back of the queue.
func (b *Bag) appendBag() {
	bag := allPieceKinds
	b.rng.Shuffle(len(bag), func(i, j int) { bag[i], bag[j] = bag[j], bag[i] })
	b.queue = append(b.queue, bag[:]...)
}

// Pop removes and returns the head of the queue, topping up with a new
// shuffled bag first if fewer than 7 pieces remain.
func (b *Bag) Pop() PieceKind {
	if len(b.queue) < 7 {
		b.appendBag()
	}
	p := b.queue[0]
	b.queue = b.queue[1:]
	return p
}

// Peek returns the next n pieces without consuming them. If n exceeds the
// number of queued pieces (never fewer than 6), only the queued pieces are
// returned; Peek does not top up the queue.
func (b *Bag) Peek(n int) []PieceKind {
	if n > len(b.queue) {
		n = len(b.queue)
	}
	out := make([]PieceKind, n)
	copy(out, b.queue[:n])
	return out
}

// Clone returns a deep copy of the bag, including RNG state, so a GameState
// copy does not share mutable bag state with its source.
func (b *Bag) Clone() *Bag {
	srcCopy := *b.src
	queueCopy := make([]PieceKind, len(b.queue))
	copy(queueCopy, b.queue)
	return &Bag{src: &srcCopy, rng: rand.New(&srcCopy), queue: queueCopy}
}
