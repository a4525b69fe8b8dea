package rules

/*
ApplyConwayRules applies Conway's Game of Life rules (B3/S23) to determine the next state of a cell.

A dead cell with exactly three living neighbors is born. A living cell survives with two or
three living neighbors and dies of underpopulation (fewer than two) or overpopulation
(more than three) otherwise.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}
