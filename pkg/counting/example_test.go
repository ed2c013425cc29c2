package counting_test

import (
	"fmt"

	"github.com/sanjoy/graphs/pkg/counting"
)

func ExampleCountRegular() {
	fmt.Println("cubic graphs on 6 nodes:", counting.CountRegular(6, 3))
	fmt.Println("4-regular graphs on 7 nodes:", counting.CountRegular(7, 4))
	// Output:
	// cubic graphs on 6 nodes: 2
	// 4-regular graphs on 7 nodes: 2
}

func ExampleValidate() {
	fmt.Println(counting.Validate(5, 3))
	// Output:
	// order 5, degree 3: order*degree must be even
}
