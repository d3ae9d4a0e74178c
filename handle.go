package mythodius

// An opaque identifier assigned by an external collection (e.g. a font)
// to refer to itself or to the glyphs it owns. Glyphs only store handles,
// never references to their owners, and it's up to the collection to
// resolve them.
type Handle uint64

// The zero [Handle], meaning "no owner" or "no sibling".
const NoHandle Handle = 0
