// Package viz renders comparison results in the terminal.
//
// Three surfaces build on each other:
//
//   - [RenderTable] and [EnvelopeChart]: static output for the compare
//     command
//   - [Model]: live explicit-scheme diffusion on a Braille [Canvas]
//   - [App]: full-screen explorer with a material menu and parameter
//     editor
//
// # Key Bindings
//
//	Space - Pause/Resume stepping
//	R     - Restart the simulation
//	Tab   - Cycle materials
//	+/-   - Speed up / slow down
//	?     - Help overlay
package viz
