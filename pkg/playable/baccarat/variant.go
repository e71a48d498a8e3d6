package baccarat

import (
	"fmt"
	"strings"
)

// Variant selects which house payout rules a game uses
type Variant int

// Variant constants
const (
	VariantClassic Variant = iota
	VariantNoCommission
	VariantSpeed
	VariantEzBaccarat
)

// String returns the variant name
func (v Variant) String() string {
	switch v {
	case VariantClassic:
		return "Classic"
	case VariantNoCommission:
		return "No Commission"
	case VariantSpeed:
		return "Speed"
	case VariantEzBaccarat:
		return "EZ Baccarat"
	}

	panic(fmt.Sprintf("unknown variant: %d", int(v)))
}

// GetVariant returns the Variant based on the string
func GetVariant(s string) (Variant, error) {
	switch strings.ToLower(s) {
	case "classic":
		return VariantClassic, nil
	case "no commission", "no-commission", "nocommission":
		return VariantNoCommission, nil
	case "speed":
		return VariantSpeed, nil
	case "ez baccarat", "ez-baccarat", "ezbaccarat", "ez":
		return VariantEzBaccarat, nil
	}

	return -1, fmt.Errorf("unknown variant: %s", s)
}

// GetVariants returns the variants
func GetVariants() map[Variant]string {
	return map[Variant]string{
		VariantClassic:      VariantClassic.String(),
		VariantNoCommission: VariantNoCommission.String(),
		VariantSpeed:        VariantSpeed.String(),
		VariantEzBaccarat:   VariantEzBaccarat.String(),
	}
}

// payoutTable returns the payout rules for the variant.
// The table is fixed for the lifetime of a game.
func (v Variant) payoutTable() payoutTable {
	switch v {
	case VariantClassic:
		return &classicTable{}
	case VariantNoCommission:
		return &noCommissionTable{}
	case VariantSpeed:
		return &speedTable{}
	case VariantEzBaccarat:
		return &ezBaccaratTable{}
	}

	panic(fmt.Sprintf("unknown variant: %d", int(v)))
}
