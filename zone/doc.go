// Package zone implements zone-of-influence partitioning (spec §4.6): given
// several groups of seed cells sharing one distfield.DistanceField, it
// grows each group outward from its own seeds along a monotone gradient
// frontier, producing a per-group claimed-cell set. Groups may overlap by
// a cell or two exactly where their distances to the nearest seed tie.
package zone
