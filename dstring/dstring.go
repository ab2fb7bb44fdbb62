// Package dstring implements a mutable byte string with small-string
// optimization thresholds exposed as an observable Representation, even
// though Go's garbage-collected slices make the allocation-avoidance
// itself automatic rather than hand-rolled.
package dstring

import (
	"fmt"
	"strings"
)

// Representation classifies the storage tier a String is currently using:
// a three-way small/medium/big split selected by capacity.
type Representation int

const (
	Small Representation = iota
	Medium
	Big
)

// Thresholds at which a String is promoted to the next representation.
// They bound the capacity, not the length: reclassification happens on
// reserve, not on every append.
const (
	SmallCapacityMax  = 254
	MediumCapacityMax = 65534
)

// String is a growable, mutable byte string.
type String struct {
	buf []byte
}

// New returns an empty String.
func New() *String { return &String{} }

// FromString copies s into a new String.
func FromString(s string) *String {
	return &String{buf: []byte(s)}
}

// FromBytes copies b into a new String.
func FromBytes(b []byte) *String {
	buf := make([]byte, len(b))
	copy(buf, b)
	return &String{buf: buf}
}

// FromCString copies b up to (not including) its first NUL byte, or all of
// b if it contains none — the C-interop construction path, where embedded
// zeros terminate the string.
func FromCString(b []byte) *String {
	for i, c := range b {
		if c == 0 {
			return FromBytes(b[:i])
		}
	}
	return FromBytes(b)
}

// FromFormat builds a String from a fmt-style format string.
func FromFormat(format string, args ...any) *String {
	return &String{buf: []byte(fmt.Sprintf(format, args...))}
}

// Repeat builds a String consisting of s repeated n times.
func Repeat(s string, n int) *String {
	return &String{buf: []byte(strings.Repeat(s, n))}
}

// Len returns the length in bytes.
func (s *String) Len() int { return len(s.buf) }

// Cap returns the current backing capacity.
func (s *String) Cap() int { return cap(s.buf) }

// Representation reports which storage tier the String's current capacity
// falls into.
func (s *String) Representation() Representation {
	switch {
	case cap(s.buf) <= SmallCapacityMax:
		return Small
	case cap(s.buf) <= MediumCapacityMax:
		return Medium
	default:
		return Big
	}
}

// String returns the contents as a Go string (a copy).
func (s *String) String() string { return string(s.buf) }

// Bytes exposes the backing slice directly.
func (s *String) Bytes() []byte { return s.buf }

// ToCString returns the contents with an explicit trailing NUL byte, as
// required to interoperate with C-style APIs. The receiver is left
// unmodified.
func (s *String) ToCString() []byte {
	out := make([]byte, len(s.buf)+1)
	copy(out, s.buf)
	out[len(s.buf)] = 0
	return out
}

// Reserve ensures capacity for at least n bytes.
func (s *String) Reserve(n int) {
	if n <= cap(s.buf) {
		return
	}
	grown := make([]byte, len(s.buf), n)
	copy(grown, s.buf)
	s.buf = grown
}

// Clear empties the String without releasing its backing array.
func (s *String) Clear() { s.buf = s.buf[:0] }

// Append appends s to the receiver and returns it for chaining.
func (s *String) Append(str string) *String {
	s.buf = append(s.buf, str...)
	return s
}

// AppendByte appends a single byte.
func (s *String) AppendByte(b byte) *String {
	s.buf = append(s.buf, b)
	return s
}

// AppendFormat appends a fmt-style formatted string to the receiver and
// returns it for chaining.
func (s *String) AppendFormat(format string, args ...any) *String {
	s.buf = fmt.Appendf(s.buf, format, args...)
	return s
}

// Insert inserts str at byte offset at.
func (s *String) Insert(at int, str string) *String {
	n := len(s.buf)
	s.Reserve(n + len(str))
	s.buf = s.buf[:n+len(str)]
	copy(s.buf[at+len(str):], s.buf[at:n])
	copy(s.buf[at:], str)
	return s
}

// Erase removes the half-open byte range [from, to).
func (s *String) Erase(from, to int) *String {
	s.buf = append(s.buf[:from], s.buf[to:]...)
	return s
}

// Replace overwrites the half-open byte range [from, to) with str.
func (s *String) Replace(from, to int, str string) *String {
	s.Erase(from, to)
	s.Insert(from, str)
	return s
}

// Substring returns a new String holding the half-open byte range
// [from, to).
func (s *String) Substring(from, to int) *String {
	return FromBytes(s.buf[from:to])
}

// SubstringInPlace reduces the receiver to the half-open byte range
// [from, to) and returns it for chaining.
func (s *String) SubstringInPlace(from, to int) *String {
	n := copy(s.buf, s.buf[from:to])
	s.buf = s.buf[:n]
	return s
}

// Strip removes leading and trailing bytes found in cutset.
func (s *String) Strip(cutset string) *String {
	s.buf = []byte(strings.Trim(string(s.buf), cutset))
	return s
}

// LStrip removes leading bytes found in cutset.
func (s *String) LStrip(cutset string) *String {
	s.buf = []byte(strings.TrimLeft(string(s.buf), cutset))
	return s
}

// RStrip removes trailing bytes found in cutset.
func (s *String) RStrip(cutset string) *String {
	s.buf = []byte(strings.TrimRight(string(s.buf), cutset))
	return s
}

// StartsWith reports whether the String begins with prefix.
func (s *String) StartsWith(prefix string) bool {
	return strings.HasPrefix(string(s.buf), prefix)
}

// EndsWith reports whether the String ends with suffix.
func (s *String) EndsWith(suffix string) bool {
	return strings.HasSuffix(string(s.buf), suffix)
}

// Compare performs a byte-lexicographic comparison, returning -1, 0 or 1.
func (s *String) Compare(other *String) int {
	return strings.Compare(string(s.buf), string(other.buf))
}

// Equals reports byte-for-byte equality.
func (s *String) Equals(other *String) bool {
	return string(s.buf) == string(other.buf)
}

// Find returns the byte offset of the first occurrence of substr at or
// after from, or -1 if not found. A from past the end yields -1; an empty
// substr matches at from.
func (s *String) Find(substr string, from int) int {
	if from > len(s.buf) {
		return -1
	}
	idx := strings.Index(string(s.buf[from:]), substr)
	if idx < 0 {
		return -1
	}
	return from + idx
}

// RFind returns the last byte offset not exceeding pos at which substr
// occurs, or -1 if not found. Pass Len() (or larger) for "search the whole
// string from the right".
func (s *String) RFind(substr string, pos int) int {
	end := pos + len(substr)
	if end > len(s.buf) {
		end = len(s.buf)
	}
	if end < 0 {
		return -1
	}
	return strings.LastIndex(string(s.buf[:end]), substr)
}

// FindFirstOf returns the offset of the first byte in chars, at or after
// from, or -1.
func (s *String) FindFirstOf(chars string, from int) int {
	idx := strings.IndexAny(string(s.buf[from:]), chars)
	if idx < 0 {
		return -1
	}
	return from + idx
}

// FindLastOf returns the offset of the last byte in chars before upto (the
// byte at upto is not examined), or -1.
func (s *String) FindLastOf(chars string, upto int) int {
	return strings.LastIndexAny(string(s.buf[:upto]), chars)
}

// FindFirstNotOf returns the offset of the first byte not in chars, at or
// after from, or -1.
func (s *String) FindFirstNotOf(chars string, from int) int {
	for i := from; i < len(s.buf); i++ {
		if !strings.ContainsRune(chars, rune(s.buf[i])) {
			return i
		}
	}
	return -1
}

// FindLastNotOf returns the offset of the last byte not in chars before
// upto (the byte at upto is not examined), or -1.
func (s *String) FindLastNotOf(chars string, upto int) int {
	for i := upto - 1; i >= 0; i-- {
		if !strings.ContainsRune(chars, rune(s.buf[i])) {
			return i
		}
	}
	return -1
}

// FindReplace replaces up to maxCount non-overlapping occurrences of old
// with replacement, scanning left to right. maxCount < 0 means unbounded.
func (s *String) FindReplace(old, replacement string, maxCount int) *String {
	if maxCount < 0 {
		maxCount = -1
	}
	s.buf = []byte(strings.Replace(string(s.buf), old, replacement, maxCount))
	return s
}

// RFindReplace replaces up to maxCount non-overlapping occurrences of old
// with replacement, counting occurrences from the right. maxCount < 0
// means unbounded (identical to FindReplace in that case).
func (s *String) RFindReplace(old, replacement string, maxCount int) *String {
	if old == "" {
		return s
	}
	str := string(s.buf)

	var allIdx []int
	for pos, off := 0, 0; ; {
		idx := strings.Index(str[off:], old)
		if idx < 0 {
			break
		}
		pos = off + idx
		allIdx = append(allIdx, pos)
		off = pos + len(old)
	}
	if maxCount >= 0 && maxCount < len(allIdx) {
		allIdx = allIdx[len(allIdx)-maxCount:]
	}

	var out strings.Builder
	cursor := 0
	for _, idx := range allIdx {
		out.WriteString(str[cursor:idx])
		out.WriteString(replacement)
		cursor = idx + len(old)
	}
	out.WriteString(str[cursor:])
	s.buf = []byte(out.String())
	return s
}

// Split splits on every occurrence of sep, left to right.
func (s *String) Split(sep string) []*String {
	parts := strings.Split(string(s.buf), sep)
	out := make([]*String, len(parts))
	for i, p := range parts {
		out[i] = FromString(p)
	}
	return out
}

// SplitViews is Split without allocating owned Strings for the pieces:
// the returned strings are immutable views copied out of the receiver's
// current contents.
func (s *String) SplitViews(sep string) []string {
	return strings.Split(string(s.buf), sep)
}

// RSplit splits on every occurrence of sep, but bounds the number of
// splits counting from the right: at most n pieces are produced, with any
// excess left-most separators folded into the first piece.
func (s *String) RSplit(sep string, n int) []*String {
	if n <= 0 {
		return s.Split(sep)
	}
	str := string(s.buf)
	var pieces []string
	for len(pieces) < n-1 {
		idx := strings.LastIndex(str, sep)
		if idx < 0 {
			break
		}
		pieces = append([]string{str[idx+len(sep):]}, pieces...)
		str = str[:idx]
	}
	pieces = append([]string{str}, pieces...)
	out := make([]*String, len(pieces))
	for i, p := range pieces {
		out[i] = FromString(p)
	}
	return out
}
