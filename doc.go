// Package boxzoom is a touch gesture core for drawing and resizing a single
// selection box over a pannable, pinch-zoomable image.
//
// An [Editor] owns a [Viewport] (one zoom factor and translate shared by every
// gesture), a box engine, and a gesture router that picks exactly one handler
// per touch session:
//
//   - two touches pinch (zoom with midpoint drift),
//   - one touch pans while move mode is on,
//   - one touch resizes an existing box,
//   - otherwise one touch draws a new box.
//
// The package has no dependency on a windowing system. A host polls its
// touch points once per frame and hands them to [Editor.Update]:
//
//	ed := boxzoom.NewEditor(boxzoom.DefaultConfig(), boxzoom.Size{Width: 1024, Height: 768})
//	ed.SetContainer(boxzoom.Size{Width: 400, Height: 300})
//	ed.OnCommit(func(d boxzoom.Data) { fmt.Println(d.Rect()) })
//
//	// every frame
//	ed.Update(1.0/60, touches)
//
// The ebitenview subpackage is such a host for [Ebitengine].
//
// # Coordinates
//
// Screen points are pixels relative to the viewport container. Content points
// are pixels of the unscaled image. The transform maps between them as
//
//	screen = (content + translate) * zoom
//
// and the box is always stored in content space, so it follows pans and zooms
// without being rewritten.
//
// # Scripted input
//
// [Editor.InjectTap], [Editor.InjectDrag] and [Editor.InjectPinch] queue
// synthetic frames that replace live input until consumed. A [TestRunner]
// loaded with [LoadTestScript] plays a YAML or JSON list of steps through the
// same queue:
//
//	steps:
//	  - action: drag
//	    fromX: 50
//	    fromY: 50
//	    toX: 150
//	    toY: 120
//	    frames: 10
//	  - action: screenshot
//	    label: drawn
//
// [Ebitengine]: https://ebitengine.org
package boxzoom
