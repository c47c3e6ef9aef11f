package testing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/drift-lottie/pkg/animation"
	"github.com/go-drift/drift-lottie/pkg/core"
	"github.com/go-drift/drift-lottie/pkg/surface"
	drifttest "github.com/go-drift/drift-lottie/pkg/testing"
	"github.com/go-drift/drift-lottie/pkg/widgets"
)

func TestWidgetTesterSurfaceLifecycle(t *testing.T) {
	tester := drifttest.NewWidgetTesterWithT(t)
	ref := &core.Ref[*surface.Node]{}

	tester.Mount(widgets.SurfaceView{Width: "40px", Ref: ref})
	node := tester.Surface()
	require.NotNil(t, node)
	assert.Same(t, node, ref.Current())
	assert.True(t, node.Attached())
	assert.Equal(t, "40px", node.Style("width"))
	assert.Equal(t, surface.DefaultExtent, node.Style("height"))

	tester.Update(widgets.SurfaceView{Width: "80px", Class: "anim", Ref: ref})
	assert.Same(t, node, tester.Surface(), "update keeps the node")
	assert.Equal(t, "80px", node.Style("width"))
	assert.Equal(t, "anim", node.Class())

	tester.Unmount()
	assert.False(t, node.Attached())
	assert.False(t, ref.IsSet())
	assert.Nil(t, tester.Root())
	assert.Nil(t, tester.Surface())
}

func TestWidgetTesterCleanupRestoresClock(t *testing.T) {
	tester := drifttest.NewWidgetTester()
	assert.Equal(t, tester.Clock().Now(), animation.Now())

	tester.Mount(widgets.SurfaceView{})
	node := tester.Surface()
	tester.Cleanup()

	assert.False(t, node.Attached())
	assert.NotEqual(t, tester.Clock().Now(), animation.Now())
}
