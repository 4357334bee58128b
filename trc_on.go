//go:build gameclock_debug

package gameclock

import (
	"io"
	"os"
	"runtime"
	"strconv"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

/*
EnvDebugVar defines the environment variable name which can
be leveraged to invoke or disable use of the [DefaultTracer]
[Tracer] qualifier. Its value is a comma separated list of
event names (e.g.: "range,decimal") or "all".

Use sparingly in high-volume/performance-sensitive scenarios.
*/
const EnvDebugVar = "GAMECLOCK_DEBUG"

/*
EnvDebugOutputVar names the environment variable which selects
the destination of [DefaultTracer] output when [EnvDebugVar] is
set: "stderr" (the default), "stdout" or a file path.
*/
const EnvDebugOutputVar = "GAMECLOCK_DEBUG_OUTPUT"

type tracerConfig struct {
	Levels []string `env:"GAMECLOCK_DEBUG" envSeparator:","`
	Output string   `env:"GAMECLOCK_DEBUG_OUTPUT" envDefault:"stderr"`
}

/*
DefaultTracer is the package-level [Tracer] implementation, which
writes one structured zerolog record per event.
*/
type DefaultTracer struct {
	mu sync.Mutex
	zl zerolog.Logger
	ll loglevels
}

/*
NewDefaultTracer returns an instance of *[DefaultTracer]. The
input [io.Writer] value represents the writer interface type
to which debug data shall be written.
*/
func NewDefaultTracer(writer io.Writer) *DefaultTracer {
	return &DefaultTracer{
		zl: zerolog.New(writer),
		ll: newLoglevels(),
	}
}

/*
EnableLevel adds [EventType] ev to the collection of loglevels
to be used during debugging.
*/
func (r *DefaultTracer) EnableLevel(ev EventType) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ll.Shift(int(ev))
}

/*
DisableLevel removes [EventType] ev from the collection of loglevels
to be used during debugging.
*/
func (r *DefaultTracer) DisableLevel(ev EventType) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ll.Unshift(int(ev))
}

/*
Enabled returns a Boolean value indicative of the specified
[EventType] being enabled within the receiver instance.
*/
func (r *DefaultTracer) Enabled(e EventType) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ll.Positive(int(e))
}

/*
Trace writes [TraceRecord] rec to the [io.Writer] handled by the
receiver instance. This method need not be executed by the end
user directly.
*/
func (r *DefaultTracer) Trace(rec TraceRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.ll.Positive(int(rec.Type)) {
		return
	}

	e := r.zl.Log().
		Time(zerolog.TimestampFieldName, rec.Time).
		Str("event", eventNames[int(rec.Type)]).
		Str("func", trimFuncName(rec.Func))
	if len(rec.Args) > 0 {
		e = e.Strs("args", fmtArgs(rec.Args))
	}
	if len(rec.Ret) > 0 {
		e = e.Strs("ret", fmtArgs(rec.Ret))
	}
	e.Send()
}

func trimFuncName(full string) string {
	for i := len(full) - 1; i >= 0; i-- {
		if full[i] == '/' {
			return full[i+1:]
		}
	}
	return full
}

/*
TraceRecord encapsulates metadata pertaining to a particular event
observed by a [Tracer]. This includes a [time.Time] timestamp, an
[EventType] as well as in/out arguments.
*/
type TraceRecord struct {
	Time time.Time // timestamp, i.e.: time.Now()
	Type EventType // Enter, Info, Exit, Range ...
	Func string    // FuncName -or- TypeName.MethodName
	Args []any     // On Enter or interim events: parameters
	Ret  []any     // On Exit: return values (last entry may be error)
}

/*
Tracer implements an interface tracer type, which is implemented
by [DefaultTracer].
*/
type Tracer interface {
	Trace(TraceRecord)
}

type levelTracer interface {
	Tracer
	Enabled(EventType) bool
}

/*
EnableDebug registers and activates [Tracer] for debugging.

This function need not be called if an environment variable of
[EnvDebugVar] was read and successfully parsed at runtime.
*/
func EnableDebug(t Tracer) {
	tmu.Lock()
	defer tmu.Unlock()
	tracer = t
}

/*
DisableDebug disables [Tracer] debugging.
*/
func DisableDebug() {
	tmu.Lock()
	defer tmu.Unlock()
	tracer = &discardTracer{}
}

var (
	tmu    sync.RWMutex
	tracer Tracer = &discardTracer{} // default
)

type discardTracer struct{}

func (*discardTracer) Trace(_ TraceRecord)      {}
func (*discardTracer) Enabled(_ EventType) bool { return false }

func debugEvent(level EventType, args ...any) {
	tmu.RLock()
	t := tracer
	tmu.RUnlock()

	lt, ok := t.(levelTracer)
	if ok && !(lt.Enabled(level) || lt.Enabled(EventAll)) {
		return
	}

	rec := TraceRecord{
		Time: time.Now(),
		Type: level,
		Func: callerName(),
	}
	if level == EventExit {
		rec.Ret = args
	} else {
		rec.Args = args
	}
	t.Trace(rec)
}

const pkgPrefix = "go-gameclock."

func callerName() string {
	// skip: runtime.Callers, callerName, debugEvent
	pcs := make([]uintptr, 10)
	n := runtime.Callers(3, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	for {
		fr, more := frames.Next()
		name := trimFuncName(fr.Function)
		if !hasPfx(name, pkgPrefix+"debug") {
			return trimPfx(name, pkgPrefix)
		}
		if !more {
			break
		}
	}
	return "unknown"
}

func debugEnter(args ...any)      { debugEvent(EventEnter, args...) }
func debugExit(args ...any)       { debugEvent(EventExit, args...) }
func debugInfo(args ...any)       { debugEvent(EventInfo, args...) }
func debugRange(args ...any)      { debugEvent(EventRange, args...) }
func debugDecimal(args ...any)    { debugEvent(EventDecimal, args...) }
func debugCalendar(args ...any)   { debugEvent(EventCalendar, args...) }
func debugConstraint(args ...any) { debugEvent(EventConstraint, args...) }
func debugText(args ...any)       { debugEvent(EventText, args...) }

func fmtArgs(args []any) (s []string) {
	s = make([]string, len(args))
	for i, a := range args {
		s[i] = fmtArg(a)
	}
	return
}

func fmtArg(x any) (s string) {
	switch v := x.(type) {
	case nil:
		s = "<nil>"
	case string:
		s = v
	case int:
		s = itoa(v)
	case int64:
		s = fmtInt(v, 10)
	case float64:
		s = strconv.FormatFloat(v, 'g', -1, 64)
	case bool:
		s = strconv.FormatBool(v)
	case error:
		s = v.Error()
	case interface{ String() string }:
		s = v.String()
	default:
		s = typeName(v)
	}

	return
}

func openTraceOutput(name string) (io.Writer, error) {
	switch lc(name) {
	case "", "stderr":
		return os.Stderr, nil
	case "stdout":
		return os.Stdout, nil
	}
	return os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

func init() {
	var cfg tracerConfig
	if err := env.Parse(&cfg); err != nil || len(cfg.Levels) == 0 {
		return
	}

	w, err := openTraceOutput(cfg.Output)
	if err != nil {
		return
	}

	dt := NewDefaultTracer(w)
	for _, name := range cfg.Levels {
		name = trimS(name)
		if n, err := atoi(name); err == nil {
			if n < 0 {
				n = int(EventAll)
			}
			dt.ll.Shift(n)
		} else {
			dt.ll.Shift(lc(name))
		}
	}

	EnableDebug(dt)
	debugInfo("loglevels", join(dt.ll.enabled(), `,`))
}
