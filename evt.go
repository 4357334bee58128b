package gameclock

/*
evt.go contains EventType constants which are (only) used
for debugging when this package was built or run with the
"-tags gameclock_debug" flag.
*/

/*
EventType describes a specific kind of [Tracer] event. See the
[EventType] constants for a full list and descriptions.

Note that this type and all of its constants are only meaningful
if/when this package was run or built with the "-tags gameclock_debug"
flag. Otherwise, they can be ignored entirely.
*/
type EventType int

const (
	EventNone EventType = 0     // NO events
	EventAll  EventType = 65535 // ALL events (use with extreme caution)
)

const (
	EventEnter      EventType = 1 << iota //     1: Decimal path begin, with inputs
	EventInfo                             //     2: Interim function event
	EventExit                             //     4: Decimal path exit, with results
	_                                     //     8: unassigned
	EventRange                            //    16: Range and overflow failures
	EventDecimal                          //    32: Decimal multiply/divide path
	EventCalendar                         //    64: Bounded calendar arithmetic
	EventConstraint                       //   128: Constraint ops
	EventText                             //   256: Text round trip
	_                                     //   512: unassigned
	_                                     //  1024: unassigned
	_                                     //  2048: unassigned
	_                                     //  4096: unassigned
	_                                     //  8192: unassigned
	_                                     // 16384: unassigned
	_                                     // 32768: unassigned
)
