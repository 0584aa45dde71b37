// Package exchange holds the small surface of the exchange client that the
// configuration layer depends on: the symbolic order kinds and the mapping from
// those kinds to the identifiers the exchange API expects.
package exchange
