package furl_test

import (
	"furl/internal/furl"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	cases := []struct {
		name string
		a, b string
		want int // sign only
	}{
		{name: "identical", a: "test.com/a/b", b: "test.com/a/b", want: 0},
		{name: "identical explicit", a: "https://test.com/a/b", b: "https://test.com/a/b", want: 0},
		{name: "query is ignored", a: "test.com/a/b?k=v", b: "test.com/a/b?j=r", want: 0},
		{name: "one differing segment", a: "test.com/a/b", b: "test.com/a/c", want: 0},
		{name: "two differing segments", a: "test.com/a/b/c", b: "test.com/a/c/d", want: -1},
		{name: "first difference decides", a: "test.com/a/b/e", b: "test.com/a/x/d", want: -1},
		{name: "more segments sort last", a: "test.com/a/b/c", b: "test.com/a/d", want: 1},
		{name: "scheme first", a: "ftp://test.com/a/b/e", b: "test.com/a/x/d", want: -1},
		{name: "authority second", a: "b.test.com/a", b: "a.test.com/a", want: 1},
		{name: "numeric segments ignored", a: "test.com/post/123/edit", b: "test.com/post/edit", want: 0},
		{name: "trailing slash ignored", a: "test.com/a/b/", b: "test.com/a/b", want: 0},
		{name: "different lengths", a: "test.com/a/b", b: "test.com/a/c/d/fs", want: -1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, b := mustParse(t, tc.a), mustParse(t, tc.b)
			require.Equal(t, tc.want, sign(furl.Compare(a, b)))
			require.Equal(t, -tc.want, sign(furl.Compare(b, a)))
		})
	}
}

func TestCompare_NotTransitive(t *testing.T) {
	a, b, c := mustParse(t, "test.com/a/b"), mustParse(t, "test.com/a/c"), mustParse(t, "test.com/x/c")

	require.Zero(t, furl.Compare(a, b))
	require.Zero(t, furl.Compare(b, c))
	require.NotZero(t, furl.Compare(a, c))
}

func TestDedup_MergesQueries(t *testing.T) {
	res := furl.Dedup(parseAll(t, "test.com/a/b?k=v", "test.com/a/b?j=r"))

	require.Len(t, res, 1)
	require.Equal(t, "j=r&k=v", res[0].Query())
	require.Equal(t, "https://test.com/a/b?j=r&k=v", res[0].String())
}

func TestDedup_LastValueWins(t *testing.T) {
	res := furl.Dedup(parseAll(t, "test.com/a?k=1&x=a+b", "test.com/a?k=2"))

	require.Len(t, res, 1)
	require.Equal(t, "k=2&x=a+b", res[0].Query())
}

func TestDedup_NoQueryLeavesNoQuestionMark(t *testing.T) {
	res := furl.Dedup(parseAll(t, "test.com/a/1", "test.com/a/2"))

	require.Len(t, res, 1)
	require.Equal(t, "https://test.com/a/1", res[0].String())
}

func TestDedup_SortedOrder(t *testing.T) {
	res := furl.Dedup(parseAll(t,
		"https://memoryleaks.ir/tag/%d9%87%da%a9/",
		"https://memoryleaks.ir/author/soloboy/",
		"https://memoryleaks.ir/tag/rce/",
	))

	require.Equal(t, []string{
		"https://memoryleaks.ir/author/soloboy/",
		"https://memoryleaks.ir/tag/%d9%87%da%a9/",
	}, urlStrings(res))
}

func TestDedup_InputUntouched(t *testing.T) {
	in := parseAll(t, "test.com/b?x=1", "test.com/a?y=2")
	_ = furl.Dedup(in)

	require.Equal(t, []string{"https://test.com/b?x=1", "https://test.com/a?y=2"}, urlStrings(in))
}

func TestDedup_KeepsDistinct(t *testing.T) {
	res := furl.Dedup(parseAll(t, "test.com/a/b/c", "test.com/a/c/d", "other.com/a"))

	require.Equal(t, []string{
		"https://other.com/a",
		"https://test.com/a/b/c",
		"https://test.com/a/c/d",
	}, urlStrings(res))
}

func TestCluster_TransitiveClosure(t *testing.T) {
	in := parseAll(t, "test.com/a/b?p=1", "test.com/x/c?r=3", "test.com/a/c?q=2")

	// sorted: /a/b ~ /a/c ~ /x/c, but /a/b and /x/c differ in two segments
	adjacent := furl.Dedup(in)
	clustered := furl.Cluster(in)

	require.Len(t, clustered, 1)
	require.Equal(t, "p=1&q=2&r=3", clustered[0].Query())
	require.GreaterOrEqual(t, len(adjacent), len(clustered))
}

func TestCluster_SeparateGroups(t *testing.T) {
	res := furl.Cluster(parseAll(t, "b.com/x?k=1", "a.com/x?k=1", "a.com/y?j=2", "b.com/x/y/z"))

	require.Equal(t, []string{
		"https://a.com/x?j=2&k=1",
		"https://b.com/x?k=1",
		"https://b.com/x/y/z",
	}, urlStrings(res))
}

func TestMergeQueries(t *testing.T) {
	require.Empty(t, furl.MergeQueries("", ""))
	require.Equal(t, "a=1&b=", furl.MergeQueries("b", "a=1"))
	require.Equal(t, "a=x+y&c=%26", furl.MergeQueries("a=x%20y", "c=%26"))
}

func parseAll(t *testing.T, tokens ...string) []*furl.URL {
	t.Helper()

	res := make([]*furl.URL, 0, len(tokens))
	for _, token := range tokens {
		res = append(res, mustParse(t, token))
	}

	return res
}

func urlStrings(urls []*furl.URL) []string {
	res := make([]string, 0, len(urls))
	for _, u := range urls {
		res = append(res, u.String())
	}

	return res
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
