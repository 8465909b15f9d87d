// Package ledger holds the financial records produced when an order settles:
// immutable entries crediting the merchant and courier shares and charging
// the customer the full price, plus per-role report totals the entries roll
// up into.
package ledger
