// Package widgets provides the Lottie animation host and the widgets it is
// built from.
//
// # Widgets
//
//   - [Lottie] mounts an engine player on its own surface and keeps it in
//     step with its props.
//   - [SurfaceView] allocates the empty [surface.Node] a player draws into.
//   - [ErrorBoundary] contains configuration panics from its subtree.
//
// # Widget Construction
//
// Widgets are plain struct literals. Zero values are the documented
// defaults, so only the fields that matter need to be set:
//
//	engine := lottie.NewEngine()
//	widgets.ErrorBoundary{
//	    ChildWidget: widgets.Lottie{
//	        Engine: engine,
//	        Config: lottie.Config{Source: lottie.FromPath("spinner.json")},
//	        Width:  "120px",
//	    },
//	}
//
// Widgets are values and are compared by type and Key when the tree is
// rebuilt; a changed key remounts the widget.
package widgets
