package leverarm_test

import (
	"fmt"

	"github.com/cwbudde/algo-nav/nav/leverarm"
	"github.com/cwbudde/algo-nav/spatial"
)

func ExampleResolve() {
	arm := spatial.Vec3{0.5, 3, 4}

	r, _ := leverarm.Resolve(arm, 0)
	fmt.Printf("%.3f %.3f %.3f\n", r[0], r[1], r[2])
	// Output:
	// -0.500 -3.000 -4.000
}
