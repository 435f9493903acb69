package sim

// buildArena builds the four static walls of a width×height arena. Inner
// faces align with (0,0)–(width,height); the walls extend outward by
// thickness so a fast body cannot fully cross one between two ticks.
func buildArena(width, height, thickness float64) [4]*Body {
	return [4]*Body{
		newWall("ground", width/2, height+thickness/2, width+2*thickness, thickness),
		newWall("ceiling", width/2, -thickness/2, width+2*thickness, thickness),
		newWall("leftWall", -thickness/2, height/2, thickness, height),
		newWall("rightWall", width+thickness/2, height/2, thickness, height),
	}
}
