// Stub for Blinkt! integration to allow build on non-Raspbian platforms.
//go:build !raspbian
// +build !raspbian

package main

// Blinkt shows the latest result on a Pimoroni Blinkt!.
type Blinkt struct {
}

// Stop turns the display off.
func (b *Blinkt) Stop() {
}

// NewBlinkt returns an active display of value.
func NewBlinkt(brightness float64, value int, prime bool) *Blinkt {
	return &Blinkt{}
}
