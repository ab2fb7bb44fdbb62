package dstring

import (
	"strings"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

// TestAlphabetAppendScenario appends the lowercase alphabet 100 times and
// checks the length, every 26-byte window, and the first/last positions of
// "xyz".
func TestAlphabetAppendScenario(t *testing.T) {
	const alphabet = "abcdefghijklmnopqrstuvwxyz"
	s := New()
	for i := 0; i < 100; i++ {
		s.Append(alphabet)
	}
	require.Equal(t, 2600, s.Len())
	for k := 0; k < 100; k++ {
		require.Equal(t, alphabet, s.Substring(26*k, 26*k+26).String())
	}
	require.Equal(t, 23, s.Find("xyz", 0))
	require.Equal(t, 2597, s.RFind("xyz", s.Len()))
}

func TestFindPastEndAndEmptyNeedle(t *testing.T) {
	s := FromString("abc")
	require.Equal(t, -1, s.Find("a", 4))
	require.Equal(t, 2, s.Find("", 2))
	require.Equal(t, -1, s.Find("abcd", 0))
}

func TestRFindPositionIsLastPossibleStart(t *testing.T) {
	s := FromString("ab ab ab")
	require.Equal(t, 6, s.RFind("ab", s.Len()))
	require.Equal(t, 6, s.RFind("ab", 6))
	require.Equal(t, 3, s.RFind("ab", 5))
	require.Equal(t, 0, s.RFind("ab", 2))
	require.Equal(t, -1, s.RFind("zz", s.Len()))
}

func TestFromCStringTruncatesAtNul(t *testing.T) {
	require.Equal(t, "abc", FromCString([]byte{'a', 'b', 'c', 0, 'd'}).String())
	require.Equal(t, "abc", FromCString([]byte("abc")).String())
	require.Equal(t, "", FromCString([]byte{0, 'x'}).String())
}

func TestFromFormatAndAppendFormat(t *testing.T) {
	s := FromFormat("%s-%04d", "id", 7)
	require.Equal(t, "id-0007", s.String())
	s.AppendFormat("/%x", 255)
	require.Equal(t, "id-0007/ff", s.String())
}

func TestSubstringInPlace(t *testing.T) {
	s := FromString("hello world")
	s.SubstringInPlace(6, 11)
	require.Equal(t, "world", s.String())
	require.Equal(t, 5, s.Len())
}

func TestStripIsIdempotent(t *testing.T) {
	s := FromString("  padded  ")
	once := s.Strip(" ").String()
	twice := s.Strip(" ").String()
	require.Equal(t, once, twice)
	require.Equal(t, "padded", twice)
}

func TestRoundTripAlphabetRepetition(t *testing.T) {
	alphabet := "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	s := Repeat(alphabet, 2600/len(alphabet)+1)
	want := s.String()
	got := FromString(want)
	require.Equal(t, want, got.String())
	require.True(t, strings.HasPrefix(got.String(), alphabet))
}

func TestRepresentationThresholds(t *testing.T) {
	small := New()
	small.Reserve(10)
	require.Equal(t, Small, small.Representation())

	medium := New()
	medium.Reserve(1000)
	require.Equal(t, Medium, medium.Representation())

	big := New()
	big.Reserve(70000)
	require.Equal(t, Big, big.Representation())
}

func TestAppendInsertEraseReplace(t *testing.T) {
	s := FromString("hello world")
	s.Append("!")
	require.Equal(t, "hello world!", s.String())

	s.Insert(5, ",")
	require.Equal(t, "hello, world!", s.String())

	s.Erase(5, 6)
	require.Equal(t, "hello world!", s.String())

	s.Replace(6, 11, "there")
	require.Equal(t, "hello there!", s.String())
}

func TestStripVariants(t *testing.T) {
	s := FromString("  \t hello \n ")
	s.Strip(" \t\n")
	require.Equal(t, "hello", s.String())

	s2 := FromString("xxhelloxx")
	s2.LStrip("x")
	require.Equal(t, "helloxx", s2.String())

	s3 := FromString("xxhelloxx")
	s3.RStrip("x")
	require.Equal(t, "xxhello", s3.String())
}

func TestFindFamily(t *testing.T) {
	s := FromString("the quick brown fox jumps over the lazy dog")
	require.Equal(t, 4, s.Find("quick", 0))
	require.Equal(t, -1, s.Find("slow", 0))
	require.Equal(t, 31, s.RFind("the", len(s.String())))
	require.Equal(t, 0, s.RFind("the", 3))

	require.Equal(t, 3, s.FindFirstOf(" ", 0))
	require.Equal(t, len(s.String())-1, s.FindLastOf("g", len(s.String())))
	require.Equal(t, 0, s.FindFirstNotOf(" ", 0))
}

func TestFindReplaceForwardAndBackwardBounded(t *testing.T) {
	s := FromString("a-b-a-b-a")
	s.FindReplace("a", "X", 2)
	require.Equal(t, "X-b-X-b-a", s.String())

	s2 := FromString("a-b-a-b-a")
	s2.RFindReplace("a", "X", 2)
	require.Equal(t, "a-b-X-b-X", s2.String())

	s3 := FromString("a-b-a-b-a")
	s3.FindReplace("a", "X", -1)
	require.Equal(t, "X-b-X-b-X", s3.String())
}

func TestSplitAndRSplit(t *testing.T) {
	s := FromString("a,b,c,d")
	parts := s.Split(",")
	require.Len(t, parts, 4)
	require.Equal(t, "c", parts[2].String())

	rparts := s.RSplit(",", 2)
	require.Len(t, rparts, 2)
	require.Equal(t, "a,b,c", rparts[0].String())
	require.Equal(t, "d", rparts[1].String())

	require.Equal(t, []string{"a", "b", "c", "d"}, s.SplitViews(","))
}

func TestStartsEndsWithCompareEquals(t *testing.T) {
	a := FromString("hello")
	b := FromString("hello world")
	require.True(t, b.StartsWith("hello"))
	require.True(t, b.EndsWith("world"))
	require.False(t, a.Equals(b))
	require.True(t, a.Compare(a) == 0)
	require.True(t, a.Compare(b) < 0)
}

func TestToCStringAppendsNulWithoutMutatingReceiver(t *testing.T) {
	s := FromString("abc")
	c := s.ToCString()
	require.Equal(t, []byte{'a', 'b', 'c', 0}, c)
	require.Equal(t, "abc", s.String())
}

func TestViewHelpersMatchStdlibSemantics(t *testing.T) {
	f := func(a, b string) bool {
		want := strings.Compare(a, b)
		got := Compare([]byte(a), []byte(b))
		return (want < 0) == (got < 0) && (want == 0) == (got == 0) && (want > 0) == (got > 0)
	}
	require.NoError(t, quick.Check(f, nil))
}

func TestHasPrefixSuffix(t *testing.T) {
	require.True(t, HasPrefix([]byte("hello"), []byte("he")))
	require.False(t, HasPrefix([]byte("hello"), []byte("lo")))
	require.True(t, HasSuffix([]byte("hello"), []byte("lo")))
	require.False(t, HasSuffix([]byte("hi"), []byte("hello")))
}
