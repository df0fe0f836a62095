package window

import "fmt"

func ExampleGenerate() {
	w := Generate(TypeHamming, 5)
	fmt.Printf("%.2f %.2f %.2f %.2f %.2f\n", w[0], w[1], w[2], w[3], w[4])
	// Output:
	// 0.08 0.54 1.00 0.54 0.08
}

func ExampleKaiserOrder() {
	n, beta, _ := KaiserOrder(65, 0.1)
	fmt.Printf("%d %.3f\n", n, beta)
	// Output:
	// 81 6.204
}
