package encoding

const (
	Base64Table = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/="
	TaijiTable  = "䷁䷗䷆䷒䷎䷣䷭䷊䷏䷲䷧䷵䷽䷶䷟䷡" +
		"䷇䷂䷜䷻䷦䷾䷯䷄䷬䷐䷮䷹䷞䷰䷛䷪" +
		"䷖䷚䷃䷨䷳䷕䷑䷙䷢䷔䷿䷥䷷䷝䷱䷍" +
		"䷓䷩䷺䷼䷴䷤䷸䷈䷋䷘䷅䷉䷠䷌䷫䷀☯"

	// TableSize is the number of entries in both tables, padding included.
	TableSize = 65
	// PaddingIndex is the position of the padding entry in both tables.
	PaddingIndex = TableSize - 1

	Base64Padding = '='
	TaijiPadding  = '☯'

	// noIndex marks bytes which are absent from the base64 table.
	noIndex = 0xff
)

var (
	base64Index [256]byte
	taijiRunes  [TableSize]rune
	taijiIndex  map[rune]byte
)

func init() {
	for n := range base64Index {
		base64Index[n] = noIndex
	}
	for n := 0; n < TableSize; n++ {
		base64Index[Base64Table[n]] = byte(n)
	}

	taijiIndex = make(map[rune]byte, TableSize)
	n := 0
	for _, r := range TaijiTable {
		taijiRunes[n] = r
		taijiIndex[r] = byte(n)
		n++
	}
}

// Base64Index returns the table position of base64 character c.
func Base64Index(c byte) (int, bool) {
	n := base64Index[c]
	if n == noIndex {
		return 0, false
	}
	return int(n), true
}

// TaijiIndex returns the table position of symbol r.
func TaijiIndex(r rune) (int, bool) {
	n, ok := taijiIndex[r]
	return int(n), ok
}

// TaijiSymbol returns the symbol at table position n.
func TaijiSymbol(n int) rune {
	return taijiRunes[n]
}
