package blast

import "testing"

// Test-only implode encoder. It emits literals and greedy matches found
// through a last-position table keyed by 3-byte prefixes, plus short
// two-byte matches, which is enough to exercise every decoder path.

type bitWriter struct {
	out []byte
	buf byte
	cnt uint
}

func (w *bitWriter) writeBit(b int) {
	w.buf |= byte(b&1) << w.cnt
	w.cnt++
	if w.cnt == 8 {
		w.out = append(w.out, w.buf)
		w.buf, w.cnt = 0, 0
	}
}

func (w *bitWriter) writeBits(v int, n uint) {
	for i := range n {
		w.writeBit(v >> i)
	}
}

// writeCode writes a canonical code most significant bit first, inverted.
func (w *bitWriter) writeCode(t encodingTable, sym int) {
	code, length := t.codes[sym], t.lengths[sym]
	for i := length - 1; i >= 0; i-- {
		w.writeBit((code>>i)&1 ^ 1)
	}
}

func (w *bitWriter) bytes() []byte {
	if w.cnt > 0 {
		w.out = append(w.out, w.buf)
		w.buf, w.cnt = 0, 0
	}
	return w.out
}

type encodingTable struct {
	codes   []int
	lengths []int
}

func newEncodingTable(h *huffman) encodingTable {
	t := encodingTable{codes: make([]int, len(h.symbol)), lengths: make([]int, len(h.symbol))}
	code, index := 0, 0
	for l := 1; l <= maxBits; l++ {
		count := int(h.count[l])
		for i := range count {
			sym := h.symbol[index+i]
			t.codes[sym] = code + i
			t.lengths[sym] = l
		}
		index += count
		code = (code + count) << 1
	}
	return t
}

type implodeEncoder struct {
	w        bitWriter
	coded    bool
	dictBits uint
	literal  encodingTable
	length   encodingTable
	distance encodingTable
}

func lengthSymbol(length int) int {
	for sym := range lengthBase {
		if length >= lengthBase[sym] && length < lengthBase[sym]+1<<lengthExtra[sym] {
			return sym
		}
	}
	return -1
}

func (e *implodeEncoder) literalToken(b byte) {
	e.w.writeBit(0)
	if e.coded {
		e.w.writeCode(e.literal, int(b))
		return
	}
	e.w.writeBits(int(b), 8)
}

func (e *implodeEncoder) lengthToken(length int) {
	e.w.writeBit(1)
	sym := lengthSymbol(length)
	e.w.writeCode(e.length, sym)
	e.w.writeBits(length-lengthBase[sym], lengthExtra[sym])
}

func (e *implodeEncoder) matchToken(length, dist int) {
	e.lengthToken(length)
	lowBits := e.dictBits
	if length == 2 {
		lowBits = 2
	}
	d := dist - 1
	e.w.writeCode(e.distance, d>>lowBits)
	e.w.writeBits(d&(1<<lowBits-1), lowBits)
}

// newImplodeEncoder writes the two header bytes of a stream.
func newImplodeEncoder(t testing.TB, coded bool, dictBits uint) *implodeEncoder {
	t.Helper()

	tables, err := builtinTables()
	if err != nil {
		t.Fatalf("builtinTables failed: %v", err)
	}

	e := &implodeEncoder{
		coded:    coded,
		dictBits: dictBits,
		literal:  newEncodingTable(&tables.literal),
		length:   newEncodingTable(&tables.length),
		distance: newEncodingTable(&tables.distance),
	}

	flag := 0
	if coded {
		flag = 1
	}
	e.w.writeBits(flag, 8)
	e.w.writeBits(int(dictBits), 8)
	return e
}

// finish writes the end-of-stream marker and returns the stream.
func (e *implodeEncoder) finish() []byte {
	e.lengthToken(endOfStream)
	return e.w.bytes()
}

// implode encodes data as a PKWARE DCL stream. coded selects Huffman coded
// literals; dictBits is 4, 5 or 6.
func implode(t testing.TB, data []byte, coded bool, dictBits uint) []byte {
	t.Helper()

	e := newImplodeEncoder(t, coded, dictBits)
	maxDist := 64 << dictBits
	head := make(map[[3]byte]int)
	remember := func(pos int) {
		if pos+3 <= len(data) {
			head[[3]byte{data[pos], data[pos+1], data[pos+2]}] = pos
		}
	}

	pos := 0
	for pos < len(data) {
		bestLen, bestDist := 0, 0
		if pos+3 <= len(data) {
			if cand, ok := head[[3]byte{data[pos], data[pos+1], data[pos+2]}]; ok && pos-cand <= maxDist {
				n := 0
				for pos+n < len(data) && n < endOfStream-1 && data[cand+n] == data[pos+n] {
					n++
				}
				bestLen, bestDist = n, pos-cand
			}
		}

		if bestLen < 3 && pos+2 <= len(data) {
			for dist := 1; dist <= min(pos, 256); dist++ {
				if data[pos-dist] == data[pos] && data[pos-dist+1] == data[pos+1] {
					bestLen, bestDist = 2, dist
					break
				}
			}
		}

		if bestLen >= 2 {
			e.matchToken(bestLen, bestDist)
			for i := range bestLen {
				remember(pos + i)
			}
			pos += bestLen
			continue
		}

		e.literalToken(data[pos])
		remember(pos)
		pos++
	}

	return e.finish()
}
