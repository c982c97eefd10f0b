package sha256

// State is the running hash state, 8 words.
type State [8]uint32

// registers is the working register file a..h of one compression.
type registers struct {
	a, b, c, d, e, f, g, h uint32
}

func newRegisters(s State) registers {
	return registers{s[0], s[1], s[2], s[3], s[4], s[5], s[6], s[7]}
}

func (r registers) state() State {
	return State{r.a, r.b, r.c, r.d, r.e, r.f, r.g, r.h}
}

// round applies one compression round with constant k and schedule word w.
func (r registers) round(k, w uint32) registers {
	S1 := rotr(r.e, 6) ^ rotr(r.e, 11) ^ rotr(r.e, 25)
	ch := (r.e & r.f) ^ (^r.e & r.g)
	t1 := r.h + S1 + ch + k + w

	S0 := rotr(r.a, 2) ^ rotr(r.a, 13) ^ rotr(r.a, 22)
	maj := (r.a & r.b) ^ (r.a & r.c) ^ (r.b & r.c)
	t2 := S0 + maj

	return registers{
		a: t1 + t2,
		b: r.a,
		c: r.b,
		d: r.c,
		e: r.d + t1,
		f: r.e,
		g: r.f,
		h: r.g,
	}
}

// Compress runs the 64 rounds over w starting from in and returns the
// final registers. It does not perform the feed-forward addition.
func Compress(w *Schedule, in State) State {
	r := newRegisters(in)
	for i := 0; i < ScheduleSize; i++ {
		r = r.round(_K[i], w[i])
	}
	return r.state()
}

// add folds out into s word by word, modulo 2^32.
func (s *State) add(out State) {
	for i := range s {
		s[i] += out[i]
	}
}

// block processes every complete block of p in order.
func (s *State) block(p []byte) {
	for len(p) >= chunk {
		w := Expand(p[:chunk])
		s.add(Compress(&w, *s))
		p = p[chunk:]
	}
}
