package gameclock

/*
common.go contains elements, types and functions used by myriad
components throughout this package.
*/

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
)

/*
official import aliases.
*/
var (
	mkerr   func(string) error                    = errors.New
	itoa    func(int) string                      = strconv.Itoa
	atoi    func(string) (int, error)             = strconv.Atoi
	fmtInt  func(int64, int) string               = strconv.FormatInt
	pint    func(string, int, int) (int64, error) = strconv.ParseInt
	appInt  func([]byte, int64, int) []byte       = strconv.AppendInt
	quote   func(string) string                   = strconv.Quote
	join    func([]string, string) string         = strings.Join
	stridxb func(string, byte) int                = strings.IndexByte
	trimS   func(string) string                   = strings.TrimSpace
	lc      func(string) string                   = strings.ToLower
	hasPfx  func(string, string) bool             = strings.HasPrefix
	trimPfx func(string, string) string           = strings.TrimPrefix
	cntns   func(string, string) bool             = strings.Contains
	streqf  func(string, string) bool             = strings.EqualFold
)

func newStrBuilder() strings.Builder { return strings.Builder{} }

/*
pad2 appends the two-digit, zero-padded form of n to dst. The value
of n is assumed to be within [0, 99].
*/
func pad2(dst []byte, n int64) []byte {
	return append(dst, byte('0'+n/10), byte('0'+n%10))
}

/*
padN appends n to dst, left-padding with zeros until at least width
digits have been written. A negative n is preceded by a hyphen which
does not count toward width.
*/
func padN(dst []byte, n int64, width int) []byte {
	u := uint64(n)
	if n < 0 {
		dst = append(dst, '-')
		u = uint64(-n)
	}

	var digits [20]byte
	i := len(digits)
	for {
		i--
		digits[i] = byte('0' + u%10)
		if u /= 10; u == 0 {
			break
		}
	}
	for w := len(digits) - i; w < width; w++ {
		dst = append(dst, '0')
	}

	return append(dst, digits[i:]...)
}

/*
isDigits returns a Boolean value indicative of s being a non-zero
length sequence of ASCII decimal digits.
*/
func isDigits(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || '9' < s[i] {
			return false
		}
	}
	return true
}

func typeName(x any) (s string) {
	if s = "<nil>"; x != nil {
		s = reflect.TypeOf(x).String()
	}
	return
}
