//go:build !gameclock_debug

package gameclock

type DefaultTracer struct{}

func debugEvent(_ EventType, _ ...any) {}
func debugEnter(_ ...any)              {}
func debugExit(_ ...any)               {}
func debugInfo(_ ...any)               {}
func debugRange(_ ...any)              {}
func debugDecimal(_ ...any)            {}
func debugCalendar(_ ...any)           {}
func debugConstraint(_ ...any)         {}
func debugText(_ ...any)               {}
