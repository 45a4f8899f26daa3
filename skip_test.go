package rvn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkipValues(t *testing.T) {
	valid := []string{
		"23",
		"-23",
		"12.5",
		"999999999999999999999999999999",
		"0b1010",
		"0xdead_BEEF",
		"Bool.true",
		"Bool.false",
		`"a\nb\$c"`,
		`""`,
		"[]",
		"[1,2,]",
		`[1,"two",(3,),]`,
		"()",
		"(1,2)",
		"{}",
		"{ }",
		`{anything:{nested:[1,2,3],},other:"x"}`,
		" # comment\n 5 ",
	}
	for _, s := range valid {
		assert.NoError(t, Unmarshal([]byte(s), Skip()), "input %q", s)
	}

	invalid := []string{
		"",
		"]",
		",",
		"Foo",          // tags have no decoder
		"Foo 1",        // even with attributes
		"Bool.maybe",   // dispatches to bool, fails the literal
		"-0x1a",        // a sign dispatches to the decimal parser, which takes no radix
		`"unterminated`,
		"[1,2",
		"{a:1",
		"(1,",
		"{a}",
		"0x",
		"_1",
	}
	for _, s := range invalid {
		assert.ErrorIs(t, Unmarshal([]byte(s), Skip()), ErrTooShort, "input %q", s)
	}
}

func TestSkipRest(t *testing.T) {
	rest, err := UnmarshalPartial([]byte(`{a:1} trailing`), Skip())
	require.NoError(t, err)
	assert.Equal(t, "trailing", string(rest))
}

func TestSkipWithinRecord(t *testing.T) {
	// The skip decoder consumes whole unknown subtrees between claimed
	// fields without disturbing the field loop.
	var p pair
	input := `{pre:(1,[2,],{x:Bool.true}),a:1,mid:"s,]}",b:2,post:0xff,}`
	require.NoError(t, Unmarshal([]byte(input), decPair(&p)))
	assert.Equal(t, pair{1, 2}, p)
}
