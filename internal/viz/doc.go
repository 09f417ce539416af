// Package viz renders orbits in the terminal.
//
// The package has two layers:
//
//   - [Canvas]: a braille dot matrix with a world-space [Viewport],
//     shared by the static trajectory plot and the live view
//   - [Model]: an interactive Bubble Tea view of a running field
//
// # Key Bindings
//
//	Space - Pause/Resume
//	R     - Rebuild the field and restart
//	T     - Toggle orbit trails
//	+/-   - Double/halve steps per tick
//	Q     - Quit
package viz
