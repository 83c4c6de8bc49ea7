package section

const (
	// MinValue and MaxValue bound the supported element range.
	MinValue = 1
	MaxValue = 300

	// CountFlagBits is the size of the length-flag field: 0 selects the
	// short count field, 1 the long count field.
	CountFlagBits = 1
	// ShortCountBits is the size of the count field when the sequence has
	// fewer than 64 elements.
	ShortCountBits = 6
	// LongCountBits is the size of the count field otherwise.
	LongCountBits = 10
	// WidthCodeBits is the size of the width-code field.
	WidthCodeBits = 2

	// MaxShortCount is the largest count encodable in the short field.
	MaxShortCount = 1<<ShortCountBits - 1 // 63
	// MaxCount is the largest count encodable in the long field. Longer
	// sequences are rejected before any bits are written.
	MaxCount = 1<<LongCountBits - 1 // 1023
)
