package rules

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

A live cell survives with 2 or 3 living neighbours, a dead cell is born with exactly 3.
Conway's Game of Life rules: (alive && neighbours == 2) || neighbours == 3
*/
func ApplyConwayRules(neighbours uint8, alive bool) bool {
	return (alive && neighbours == 2) || neighbours == 3
}
