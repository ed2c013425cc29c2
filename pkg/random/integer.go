package random

import "fmt"

// Intn returns a uniform integer in [0, bound) drawn from gen using the Fast
// Dice Roller. It panics when bound is not positive.
func Intn(gen BitGenerator, bound int) int {
	if bound <= 0 {
		panic(fmt.Sprintf("random: non-positive bound %d", bound))
	}
	v, c := 1, 0
	for {
		v *= 2
		c *= 2
		if gen.Bit() {
			c++
		}
		if v >= bound {
			if c < bound {
				return c
			}
			v -= bound
			c -= bound
		}
	}
}
