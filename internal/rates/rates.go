package rates

import (
	"sort"

	"github.com/mchou/travelpulse/internal/constants"
	"github.com/mchou/travelpulse/internal/models"
)

// Table maps a currency code to its multiplier into the TWD base unit. It is
// a collaborator interface consumed read-only by the ledger summaries; the
// core never mutates it.
type Table map[string]float64

// Default is the fixed rate table the application ships with.
func Default() Table {
	return Table{"TWD": 1, "JPY": 0.21, "USD": 32.5}
}

// rate returns the multiplier for a currency, defaulting to the base rate for
// unknown or empty codes.
func (t Table) rate(currency string) float64 {
	if currency == "" {
		currency = constants.DefaultCurrency
	}
	if r, ok := t[currency]; ok {
		return r
	}
	return 1
}

// Convert re-expresses an amount from one currency in another via the base
// unit.
func (t Table) Convert(amount float64, from, to string) float64 {
	return amount * t.rate(from) / t.rate(to)
}

// DebtTotal sums the ledger in the given display currency.
func (t Table) DebtTotal(debts []models.DebtItem, display string) float64 {
	var base float64
	for _, d := range debts {
		base += d.Amount * t.rate(d.Currency)
	}
	return base / t.rate(display)
}

// DebtTotalsByPayer sums the ledger per payer in the given display currency.
func (t Table) DebtTotalsByPayer(debts []models.DebtItem, display string) map[string]float64 {
	totals := make(map[string]float64)
	for _, d := range debts {
		totals[d.Payer] += t.Convert(d.Amount, d.Currency, display)
	}
	return totals
}

// ShoppingTotal sums shopping items in the given display currency. With
// uncheckedOnly set, purchased items are excluded.
func (t Table) ShoppingTotal(items []models.ShoppingItem, display string, uncheckedOnly bool) float64 {
	var base float64
	for _, item := range items {
		if uncheckedOnly && item.IsChecked {
			continue
		}
		base += item.Amount * t.rate(item.Currency)
	}
	return base / t.rate(display)
}

// Buyers returns the distinct normalized buyer labels across shopping items,
// sorted. Empty labels collapse into the default "self" buyer.
func Buyers(items []models.ShoppingItem) []string {
	seen := make(map[string]bool)
	for _, item := range items {
		seen[BuyerLabel(item)] = true
	}
	buyers := make([]string, 0, len(seen))
	for b := range seen {
		buyers = append(buyers, b)
	}
	sort.Strings(buyers)
	return buyers
}

// BuyerLabel normalizes a shopping item's buyer, empty meaning "self".
func BuyerLabel(item models.ShoppingItem) string {
	if item.ForWhom == "" {
		return constants.DefaultForWhom
	}
	return item.ForWhom
}
