package natsort

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSort(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			"numeric runs compare by value",
			[]string{"img2.jpg", "img10.jpg", "img1.jpg"},
			[]string{"img1.jpg", "img2.jpg", "img10.jpg"},
		},
		{
			"bare numbers",
			[]string{"3.JPG", "1.jpg", "2.jpg", "10.jpg"},
			[]string{"1.jpg", "2.jpg", "3.JPG", "10.jpg"},
		},
		{
			"text compares case-insensitively",
			[]string{"b.jpg", "A.jpg", "c.jpg"},
			[]string{"A.jpg", "b.jpg", "c.jpg"},
		},
		{
			"leading digits before letters",
			[]string{"a.jpg", "1.jpg"},
			[]string{"1.jpg", "a.jpg"},
		},
		{
			"prefix sorts first",
			[]string{"img1a", "img1"},
			[]string{"img1", "img1a"},
		},
		{
			"leading zeros keep numeric value",
			[]string{"010.jpg", "9.jpg", "002.jpg"},
			[]string{"002.jpg", "9.jpg", "010.jpg"},
		},
		{
			"fewer leading zeros first on equal value",
			[]string{"01.jpg", "1.jpg", "001.jpg"},
			[]string{"1.jpg", "01.jpg", "001.jpg"},
		},
		{
			"numbers beyond int64",
			[]string{"99999999999999999999999.jpg", "100000000000000000000000.jpg", "5.jpg"},
			[]string{"5.jpg", "99999999999999999999999.jpg", "100000000000000000000000.jpg"},
		},
		{
			"multiple numeric runs",
			[]string{"v1.10.jpg", "v1.9.jpg", "v1.2.jpg"},
			[]string{"v1.2.jpg", "v1.9.jpg", "v1.10.jpg"},
		},
		{
			"empty input",
			[]string{},
			[]string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := append([]string{}, tt.in...)
			Sort(got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKeyOf(t *testing.T) {
	key := KeyOf("Img007.JPG")
	assert.Equal(t, Key{
		{Text: "img"},
		{Digits: "7", Width: 3, Numeric: true},
		{Text: ".jpg"},
	}, key)

	lead := KeyOf("12abc")
	assert.Equal(t, Key{
		{Text: ""},
		{Digits: "12", Width: 2, Numeric: true},
		{Text: "abc"},
	}, lead)

	assert.Equal(t, Key{{Text: ""}}, KeyOf(""))
}

func TestCompare_TotalOrder(t *testing.T) {
	// Case-only differences are equal under natural ordering; byte order breaks the tie.
	assert.Equal(t, -1, Compare("A.jpg", "a.jpg"))
	assert.Equal(t, 1, Compare("a.jpg", "A.jpg"))
	assert.Equal(t, 0, Compare("a.jpg", "a.jpg"))
	assert.True(t, Less("img2.jpg", "img10.jpg"))
	assert.False(t, Less("img10.jpg", "img2.jpg"))
}

func TestSort_AgreesWithLess(t *testing.T) {
	names := []string{"x10", "x9", "X1", "x01", "y", "x", "10", "9x", ""}
	got := append([]string{}, names...)
	Sort(got)
	assert.True(t, sort.SliceIsSorted(got, func(i, j int) bool { return Less(got[i], got[j]) }))
	assert.ElementsMatch(t, names, got)
}
