// Package constants holds cross-layer constant values.
package constants

// Database table names.
const (
	TableDocks   = "docks"
	TableHaulers = "haulers"
	TableShips   = "ships"
)

// Pagination defaults.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Field length caps mirrored by the binding tags and the aggregates.
const (
	MaxNameLength     = 100
	MaxLocationLength = 200
	MaxNotesLength    = 5000
	MaxShipTypeLength = 50
)
