//go:build raspbian
// +build raspbian

package main

import (
	"time"

	blinkt "github.com/alexellis/blinkt_go"

	"github.com/mlowicki/termprime/intseq"
)

const pixels = 8

// Blinkt shows the latest result on a Pimoroni Blinkt!.
type Blinkt struct {
	ch chan struct{}
}

// Stop turns the display off.
func (b *Blinkt) Stop() {
	b.ch <- struct{}{}
	<-b.ch
}

// showBits lights the pixels for the low 8 bits of value.
func showBits(bl *blinkt.Blinkt, value int, r, g, b int) {
	bl.Clear()
	for i := 0; i < pixels; i++ {
		if value&(1<<uint(i)) != 0 {
			bl.SetPixel(i, r, g, b)
		}
	}
	bl.Show()
}

// NewBlinkt returns an active display of value: green bits for a prime, red
// otherwise. A prime is announced with one sweep across the strip first.
func NewBlinkt(brightness float64, value int, prime bool) *Blinkt {
	ch := make(chan struct{})
	go func() {
		bl := blinkt.NewBlinkt(brightness)
		bl.Setup()
		r, g, b := 150, 0, 0
		stopped := false
		if prime {
			r, g = 0, 150
			path := intseq.Range(0, pixels-1).Values()
			path = append(path, intseq.Range(pixels-2, 1).Values()...)
		sweep:
			for _, pixel := range path {
				bl.Clear()
				bl.SetPixel(pixel, r, g, b)
				bl.Show()
				select {
				case <-time.After(100 * time.Millisecond):
				case <-ch:
					stopped = true
					break sweep
				}
			}
		}
		if !stopped {
			showBits(&bl, value, r, g, b)
			<-ch
		}
		bl.Clear()
		bl.Show()
		close(ch)
	}()
	return &Blinkt{ch}
}
