// Package viz renders walks in the terminal.
//
//   - [Canvas]: Braille sub-pixel canvas for path previews
//   - [AxisCharts]: one asciigraph chart per coordinate
//   - [LiveModel]: Bubble Tea program that reveals a path frame by frame
//
// # Key Bindings
//
//	Space - Pause/Resume
//	R     - Restart from frame 0
//	T     - Cycle color themes
//	←/→   - Step one frame while paused
//	Q     - Quit
package viz
