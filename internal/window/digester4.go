package window

import "github.com/gtank/tlsh/pearson"

// digester4 is the w=4 streaming digester: three bucket-update triplets per
// byte once running, a 3-byte lag window.
type digester4 struct {
	cfg      Config
	bucket   [256]uint64
	checksum [3]byte
	count    uint64
	lag      [3]byte // l1, l2, l3, most recent first
}

func newDigester4(cfg Config) *digester4 {
	return &digester4{cfg: cfg}
}

func (d *digester4) Update(p []byte) (int, error) {
	trips := allTriplets[:tripletCount[4]]
	t := pearson.Canonical
	for _, b0 := range p {
		d.count++
		if d.count >= 4 {
			d.step(t, b0, trips)
		}
		d.shift(b0)
	}
	return len(p), nil
}

func (d *digester4) step(t pearson.Table, b0 byte, trips []triplet) {
	l1 := d.lag[0]
	d.checksum[0] = t.Hash3(1^b0, l1, d.checksum[0])
	if d.cfg.C == 3 {
		for k := 1; k <= 2; k++ {
			x := t[d.checksum[k-1]]
			x = t[x^b0]
			x = t[x^l1]
			d.checksum[k] = t[x^d.checksum[k]]
		}
	}
	for _, tr := range trips {
		a := d.lag[tr.a-1]
		b := d.lag[tr.b-1]
		d.bucket[t.Hash3(tr.salt^b0, a, b)]++
	}
}

func (d *digester4) shift(b0 byte) {
	for i := len(d.lag) - 1; i > 0; i-- {
		d.lag[i] = d.lag[i-1]
	}
	d.lag[0] = b0
}

func (d *digester4) Reset() { *d = digester4{cfg: d.cfg} }

func (d *digester4) Count() uint64 { return d.count }

func (d *digester4) Snapshot() Snapshot {
	cs := make([]byte, d.cfg.C)
	copy(cs, d.checksum[:d.cfg.C])
	lag := make([]byte, len(d.lag))
	copy(lag, d.lag[:])
	return Snapshot{Buckets: d.bucket, Checksum: cs, Count: d.count, Lag: lag}
}
