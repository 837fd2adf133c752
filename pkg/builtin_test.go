package lox

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringify(t *testing.T) {
	class := &Class{Name: "Bagel"}
	fn := &Function{Declaration: &FunctionStmt{Name: ident("eat")}}

	cases := []struct {
		value  Value
		expect string
	}{
		{nil, "nil"},
		{true, "true"},
		{false, "false"},
		{1.0, "1"},
		{-0.5, "-0.5"},
		{123456789.0, "123456789"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
		{math.NaN(), "NaN"},
		{"text", "text"},
		{fn, "<fn eat>"},
		{class, "Bagel"},
		{NewInstance(class), "Bagel instance"},
	}

	for _, c := range cases {
		assert.Equal(t, c.expect, Stringify(c.value))
	}
}

func TestTruthiness(t *testing.T) {
	assert.False(t, isTruthy(nil))
	assert.False(t, isTruthy(false))

	for _, v := range []Value{true, 0.0, "", &Class{Name: "C"}} {
		assert.True(t, isTruthy(v), v)
	}
}

func TestEquality(t *testing.T) {
	instance := NewInstance(&Class{Name: "C"})

	cases := []struct {
		a, b   Value
		expect bool
	}{
		{nil, nil, true},
		{nil, false, false},
		{false, nil, false},
		{1.0, 1.0, true},
		{1.0, "1", false},
		{"a", "a", true},
		{true, true, true},
		{math.NaN(), math.NaN(), false},
		{instance, instance, true},
		{instance, NewInstance(instance.Class), false},
	}

	for _, c := range cases {
		assert.Equal(t, c.expect, isEqual(c.a, c.b), "%v == %v", c.a, c.b)
	}
}
