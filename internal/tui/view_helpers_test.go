// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "Rp 0"},
		{999, "Rp 999"},
		{1000, "Rp 1.000"},
		{9000000, "Rp 9.000.000"},
		{123456.6, "Rp 123.457"},
		{-2500, "-Rp 2.500"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatAmount(tt.in))
	}
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "Monthly...", fitText("Monthly Salary", 10))
	assert.Equal(t, "Mon", fitText("Monthly", 3))
	assert.Equal(t, "Pengelu...", fitText("Pengeluaran bulanan", 10))
}

func TestHumanizeError(t *testing.T) {
	assert.Equal(t, msgServerUnavailable, humanizeError("Post \"http://x/login\": dial tcp: connection refused"))
	assert.Equal(t, "Invalid credentials", humanizeError("Invalid credentials"))
}

func TestForm_Focus(t *testing.T) {
	f := newForm(newInput("a", 10), newInput("b", 10), newInput("c", 10))

	f.next()
	f.next()
	assert.Equal(t, 2, f.focus)
	f.next()
	assert.Equal(t, 0, f.focus)
	f.prev()
	assert.Equal(t, 2, f.focus)
	assert.True(t, f.inputs[2].Focused())
	assert.False(t, f.inputs[0].Focused())

	f.inputs[2].SetValue("x")
	f.reset()
	assert.Equal(t, 0, f.focus)
	assert.Empty(t, f.value(2))
}
