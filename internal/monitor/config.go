package monitor

import "time"

// Config holds the dashboard's tunables.
type Config struct {
	// Tick is the polling period and the unit of the refresh cadence.
	Tick time.Duration

	// ColumnWidth is the width of one chip column, borders included.
	ColumnWidth int

	// CommandBarHeight is the height of the bottom bar, borders included.
	CommandBarHeight int

	// DefaultInterval, MinInterval and MaxInterval bound the refresh
	// cadence, in ticks.
	DefaultInterval int
	MinInterval     int
	MaxInterval     int

	// Help is the static text shown in the command bar.
	Help string

	// KeyBuffer is how many keys may queue between ticks.
	KeyBuffer int
}

// DefaultConfig returns the stock dashboard configuration: a 50ms tick,
// one render per second, adjustable between 4 per second and one per 16s.
func DefaultConfig() Config {
	return Config{
		Tick:             50 * time.Millisecond,
		ColumnWidth:      32,
		CommandBarHeight: 3,
		DefaultInterval:  20,
		MinInterval:      5,
		MaxInterval:      320,
		Help:             "use arrow keys to navigate, Q to quit",
		KeyBuffer:        16,
	}
}
