package constant

// ToggleKey is the single key label reserved for play/pause of the last touched deck.
const ToggleKey = " "

// Default slot layout: one keyboard row per deck, disjoint so no two decks claim the same key.
var (
	DefaultSlotNames = []string{"a", "b", "c"}
	DefaultSlotKeys  = []string{"1234567890", "qwertyuiop", "asdfghjkl"}
)
