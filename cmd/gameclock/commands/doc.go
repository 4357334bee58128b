// Package commands defines the gameclock CLI, a calculator over the value
// types of the gameclock package.
//
// Commands
//
//   - add      Add a duration to a date-time, date, time or duration
//   - sub      Subtract a duration from a date-time, date, time or duration
//   - since    Print the signed duration between two values of one kind
//   - scale    Multiply or divide a duration by an integer or float factor
//   - bounds   Print the minimum and maximum of every type
//
// Values are given in the forms the library prints them in. A date-time
// may be passed either as one quoted word or as two words. Arguments that
// begin with a hyphen (negative durations and years) must follow "--".
//
// # Configuration
//
// GAMECLOCK_OUTPUT selects "text" (default) or "yaml" output and
// GAMECLOCK_LOG_LEVEL the zerolog level of diagnostics written to stderr.
// The --output and --log-level flags override both.
package commands
