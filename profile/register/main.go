// Profiling:
// go build ./profile/register
// ./register
// go tool pprof -http=":8000" -nodefraction=0.001 ./register mem.pprof

package main

import (
	"github.com/hupe1980/bitreg"
	"github.com/pkg/profile"
)

func main() {
	rounds := 50
	iters := 100000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run[bitreg.U8](rounds, iters)
	run[bitreg.U16](rounds, iters)
	run[bitreg.U32](rounds, iters)
	run[bitreg.U64](rounds, iters)
	run[bitreg.U128](rounds, iters)
	p.Stop()
}

func run[T bitreg.Word[T]](rounds, iters int) {
	batch := make([]uint, 0, 16)
	for range rounds {
		reg := bitreg.New[T]()
		width := reg.InMemorySize()

		for i := range iters {
			bit := uint(i) % (width + 4)
			reg.SetBit(bit)
			reg.IsBitOn(bit)
			reg.ClearBit(bit)

			batch = append(batch, bit)
			if len(batch) == cap(batch) {
				reg.SetBits(batch)
				reg.AreBitsOn(batch)
				reg.ClearBits(batch)
				batch = batch[:0]
			}
		}
		reg.SetAllFlags()
		reg.ClearAllBits()
	}
}
