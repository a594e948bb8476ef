// Package compass defines the four grid-aligned directions used for
// stepping between cells of a grid.Grid.
//
// What:
//
//   - Direction is a closed enumeration: North, East, South, West.
//   - All returns the directions in that declared order; every neighbor scan
//     in this module follows it, so traversal order is reproducible.
//   - Opposite, Clockwise and CounterClockwise are pure and total.
//
// Parsing:
//
//   - FromRelative maps puzzle-style tokens (U/R/D/L and ^/>/v/<).
//   - Parse accepts N/E/S/W or the full names, case-insensitive.
//
// Errors:
//
//   - ErrUnknownDirection: Parse received an unrecognized token.
package compass
