package bitreg_test

import (
	"fmt"

	"github.com/hupe1980/bitreg"
)

// Example demonstrates setting a group of flags on an 8-bit register.
func Example() {
	reg := bitreg.New[bitreg.U8]()

	activity := reg.SetBits([]uint{1, 3, 5, 2, 65}) // 65 is ignored
	fmt.Println(activity)
	fmt.Println(reg.Value(), reg.String())
	// Output:
	// [false true true true false true false false]
	// 46 00101110
}

// ExampleRegister_SetBit shows that out-of-range indices are ignored.
func ExampleRegister_SetBit() {
	reg := bitreg.New[bitreg.U8]()

	fmt.Println(reg.SetBit(10), reg.IsBitOn(10), reg.Value())
	fmt.Println(reg.SetBit(7), reg.IsBitOn(7), reg.Value())
	// Output:
	// false false 0
	// true true 128
}

// ExampleRegister_ClearAllBits shows that whole-register resets keep the
// activity record.
func ExampleRegister_ClearAllBits() {
	reg := bitreg.New[bitreg.U16]()
	reg.SetBit(4)

	reg.ClearAllBits()
	fmt.Println(reg.Value(), reg.AllBits()[4])

	reg.ClearBit(4)
	fmt.Println(reg.Value(), reg.AllBits()[4])
	// Output:
	// 0 true
	// 0 false
}

// ExampleRegister_OnBits enumerates the bits that are on.
func ExampleRegister_OnBits() {
	reg := bitreg.New[bitreg.U128]()
	reg.SetBits([]uint{0, 64, 127})

	fmt.Println(reg.OnBits().ToArray())
	fmt.Println(reg.Count())
	// Output:
	// [0 64 127]
	// 3
}

// ExampleRegister_SetAllFlags saturates a 128-bit register.
func ExampleRegister_SetAllFlags() {
	reg := bitreg.New[bitreg.U128]()
	reg.SetAllFlags()

	fmt.Println(reg.Value())
	// Output: 340282366920938463463374607431768211455
}
