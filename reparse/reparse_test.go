package reparse

import (
	"testing"

	"relab/reast"
	"relab/rerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInfixPrecedence(t *testing.T) {
	n, err := ParseInfix("a+bc*")
	require.NoError(t, err)
	assert.Equal(t, "a+bc*", n.String())
}

func TestParseInfixGrouping(t *testing.T) {
	n, err := ParseInfix("(a+b)*c")
	require.NoError(t, err)
	assert.Equal(t, "(a+b)*c", n.String())
}

func TestParseInfixZeroOneAbsorption(t *testing.T) {
	n, err := ParseInfix("0a")
	require.NoError(t, err)
	assert.True(t, reast.IsNone(n))

	n, err = ParseInfix("1a")
	require.NoError(t, err)
	assert.Equal(t, "a", n.String())
}

func TestParseInfixRejectsMismatchedParens(t *testing.T) {
	_, err := ParseInfix("(a+b")
	assert.Error(t, err)
}

func TestParseInfixRejectsBareStar(t *testing.T) {
	_, err := ParseInfix("*a")
	assert.Error(t, err)
}

func TestParseRPN(t *testing.T) {
	n, err := ParseRPN("a b .")
	require.NoError(t, err)
	assert.Equal(t, "ab", n.String())

	n, err = ParseRPN("a b + c .")
	require.NoError(t, err)
	assert.Equal(t, "(a+b)c", n.String())

	n, err = ParseRPN("a *")
	require.NoError(t, err)
	assert.Equal(t, "a*", n.String())
}

func TestParseRPNErrorKinds(t *testing.T) {
	_, err := ParseRPN("*")
	assert.ErrorIs(t, err, rerrors.NoArgumentForStar)

	_, err = ParseRPN("a +")
	assert.ErrorIs(t, err, rerrors.NotEnoughArgumentsForPlus)

	_, err = ParseRPN("a .")
	assert.ErrorIs(t, err, rerrors.NotEnoughArgumentsForDot)

	_, err = ParseRPN("a b")
	assert.ErrorIs(t, err, rerrors.UnconsumedOperands)
}
