package font

// Entry is one 16x16 glyph of a Table, keyed by the bytes of the character in the
// charset the table serves.
type Entry struct {
	Key    string
	Bitmap [32]byte
}

// Table is an ordered list of 16x16 glyphs. Lookups scan it in order and the first
// matching key wins; a miss returns the Unknown glyph.
type Table struct {
	entries []Entry
}

// NewTable returns a Table holding entries in order.
func NewTable(entries ...Entry) *Table {
	t := &Table{}
	t.Add(entries...)
	return t
}

// Add appends entries after the existing ones. An entry whose key is already present is
// kept but shadowed by the earlier one.
func (t *Table) Add(entries ...Entry) {
	for _, e := range entries {
		if e.Key == "" {
			continue
		}
		t.entries = append(t.entries, e)
	}
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Lookup returns the glyph keyed by key. On a miss it returns the Unknown glyph and false.
func (t *Table) Lookup(key string) ([]byte, bool) {
	for i := range t.entries {
		if t.entries[i].Key == key {
			return t.entries[i].Bitmap[:], true
		}
	}
	return Unknown[:], false
}

// RuneEntry keys bitmap by the encoding of r in cs.
func RuneEntry(cs Charset, r rune, bitmap [32]byte) (Entry, bool) {
	k, ok := cs.Key(r)
	if !ok || len(k) < 2 {
		return Entry{}, false
	}
	return Entry{Key: k, Bitmap: bitmap}, true
}

// DefaultTable returns the built-in glyphs keyed for cs: the ideographic space and full
// stop, and the fullwidth forms U+FF01 to U+FF5E drawn from the ASCII face.
func DefaultTable(cs Charset) *Table {
	t := &Table{}
	for _, g := range ideographic {
		if e, ok := RuneEntry(cs, g.r, g.bitmap); ok {
			t.Add(e)
		}
	}
	for r := rune(0xFF01); r <= 0xFF5E; r++ {
		var bm [32]byte
		// Fullwidth forms sit 0xFEE0 above their ASCII counterparts
		copy(bm[:], rasterize(string(r-0xFEE0), Wide, Wide, 4))
		if e, ok := RuneEntry(cs, r, bm); ok {
			t.Add(e)
		}
	}
	return t
}

// Unknown is drawn for a multi-byte character missing from a Table: a box with a
// question mark.
var Unknown = func() (b [32]byte) {
	copy(b[:], rasterize("?", Wide, Wide, 5))
	for i := 0; i < Wide; i++ {
		b[i] |= 0x01      // top edge
		b[Wide+i] |= 0x80 // bottom edge
	}
	b[0], b[Wide] = 0xFF, 0xFF
	b[Wide-1], b[2*Wide-1] = 0xFF, 0xFF
	return b
}()

var ideographic = []struct {
	r      rune
	bitmap [32]byte
}{
	{'\u3000', [32]byte{}},
	{'\u3002', pattern(
		"................",
		"................",
		"................",
		"................",
		"................",
		"................",
		"................",
		"................",
		"................",
		"................",
		"..###...........",
		".#...#..........",
		".#...#..........",
		".#...#..........",
		"..###...........",
		"................",
	)},
}
