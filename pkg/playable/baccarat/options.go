package baccarat

// Options contains options for creating a new game of baccarat
type Options struct {
	// Variant selects the payout rules
	Variant Variant
	// Decks is the number of decks in the shoe (shoe games only)
	Decks int
	// Seed makes the shuffle reproducible when > 0; leave 0 for crypto randomness
	Seed int64
}

// DefaultOptions returns the default set of options
func DefaultOptions() Options {
	return Options{
		Variant: VariantClassic,
		Decks:   6,
		Seed:    0,
	}
}
