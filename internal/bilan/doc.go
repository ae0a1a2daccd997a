// Package bilan turns positions and their dated value records into
// net-worth snapshots.
//
// A bilan is the set of value records sharing one date. Compute returns an
// "as of now" snapshot built from the latest record of every position,
// followed by one point-in-time snapshot per recorded date, most recent
// first. Historical snapshots never carry values forward from earlier
// dates.
//
// All amounts are integers in minor currency units. Percentages and ratios
// are float64 and are left unrounded; rounding belongs to presentation.
package bilan
