// Package canvas models the rendering surface grid widgets live on.
//
// A [Layer] holds grid widgets in enumeration order and is drawn through a
// [Viewport], which carries the pan/zoom transform, the pointer cursor and
// a set of interaction [Mediator]s (panning, zooming). Widgets are positioned
// in layer space; pointer events arrive in device space.
//
// Redraws are requested with [Layer.Batch]. A batch runs a layout pass over
// every widget and then notifies the registered listeners; it never blocks
// on drawing.
package canvas
