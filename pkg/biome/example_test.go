package biome_test

import (
	"fmt"

	"github.com/matzehuels/terramap/pkg/biome"
)

func ExampleTable_Classify() {
	table := biome.Classic()
	for _, e := range []float64{0, 0.35, 0.350001, 1} {
		fmt.Printf("%.6f %s\n", e, table.Classify(e).Name)
	}
	// Output:
	// 0.000000 deep ocean
	// 0.350000 deep ocean
	// 0.350001 coast
	// 1.000000 mountain
}
