// Package cost defines the CostModel capability consumed by apted and
// oracle — the three scalar costs of a tree edit operation — plus two
// ready-made models: UnitCost (every operation costs 1, renames of equal
// labels are free) and FixedCost (caller-supplied constant costs for
// delete/insert/update, independent of the labels involved).
//
// Costs must be non-negative and finite; Validate checks that for a
// FixedCost once, up front, rather than on every Delete/Insert/Update call.
package cost
