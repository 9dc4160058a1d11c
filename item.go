package tether

// Item is one entry in a windowed item view: an opaque render node
// plus its declared height. A declared height is either a fixed row
// count, "auto" (measure the natural height off-screen), or absent.
type Item struct {
	Content Component
	Height  int  // fixed height in rows; 0 means not declared
	Auto    bool // measure the natural height instead
}

// FixedItem declares an item with an explicit height. Explicit heights
// are always honored verbatim, regardless of measurement state.
func FixedItem(content Component, rows int) Item {
	return Item{Content: content, Height: rows}
}

// AutoItem declares an item whose height is measured from its rendered
// content.
func AutoItem(content Component) Item {
	return Item{Content: content, Auto: true}
}

// PlainItem declares an item with no height information; it lays out
// at the engine's default height.
func PlainItem(content Component) Item {
	return Item{Content: content}
}
