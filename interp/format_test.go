package interp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/timewinder-dev/rpn/vm"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in        float64
		precision int
		expected  string
	}{
		{7, -1, "7"},
		{0.25, -1, "0.25"},
		{-3.5, -1, "-3.5"},
		{math.Inf(1), -1, "Infinity"},
		{math.Inf(-1), -1, "-Infinity"},
		{math.NaN(), -1, "NaN"},
		{1e21, -1, "1e+21"},
		{1e-7, -1, "1e-7"},
		{1.5e-10, -1, "1.5e-10"},
		{-2.5e-8, -1, "-2.5e-8"},
		{1e100, -1, "1e+100"},
		{123456789, -1, "123456789"},
		{2.0 / 3.0, 3, "0.667"},
		{math.Inf(1), 2, "Infinity"},
	}
	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatNumber(tt.in, tt.precision))
		})
	}
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "14", FormatValue(vm.NumberValue(14)))
	assert.Equal(t, "5", FormatValue(vm.RefValue{Name: "x", Number: 5}))
	assert.Equal(t, "y", FormatValue(vm.NameValue("y")))
	assert.Equal(t, "None", FormatValue(vm.None))
}
