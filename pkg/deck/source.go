package deck

// CardSource produces cards on demand and reports when it needs a reshuffle.
// Deck and Shoe both satisfy it; they keep distinct reshuffle policies (a
// fixed card floor versus a cut card), so callers must not assume one.
//
// Callers are expected to check NeedsReshuffle() and call Reshuffle() before
// starting a round; Deal() still returns ErrEndOfDeck rather than panicking
// if a caller runs a source dry anyway.
type CardSource interface {
	// Deal removes and returns the next card, or ErrEndOfDeck when empty
	Deal() (*Card, error)
	// NeedsReshuffle reports whether too few cards remain for a fair round
	NeedsReshuffle() bool
	// Reshuffle rebuilds a full, freshly permuted source of the same kind and size
	Reshuffle()
	// CardsLeft returns the number of undealt cards
	CardsLeft() int
}

var _ CardSource = (*Deck)(nil)
var _ CardSource = (*Shoe)(nil)
