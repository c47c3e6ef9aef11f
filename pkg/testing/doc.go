// Package testing provides helpers for testing widgets that host Lottie
// animations without a real frame loop.
//
// [WidgetTester] mounts, updates and unmounts a widget tree synchronously
// and installs a [FakeClock] as the animation clock. [RecordingEngine] is a
// lottie.Engine that records every call its players receive, so tests can
// assert the exact sequence a widget issued:
//
//	func TestSpinner(t *testing.T) {
//	    tester := drifttest.NewWidgetTesterWithT(t)
//	    engine := drifttest.NewRecordingEngine()
//	    tester.Mount(widgets.Lottie{Engine: engine, Config: lottie.Config{Source: lottie.FromPath("spinner.json")}})
//	    assert.Equal(t, []string{"create(path:spinner.json)", "play", "setSpeed(1)", "setDirection(unset)"},
//	        engine.Last().Calls())
//	}
package testing
