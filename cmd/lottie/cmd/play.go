package cmd

import (
	"fmt"
	"io"
	"strconv"
	"sync"
	"time"

	"github.com/go-drift/drift-lottie/pkg/animation"
	"github.com/go-drift/drift-lottie/pkg/core"
	"github.com/go-drift/drift-lottie/pkg/errors"
	"github.com/go-drift/drift-lottie/pkg/lottie"
	"github.com/go-drift/drift-lottie/pkg/widgets"
)

func init() {
	RegisterCommand(&Command{
		Name:  "play",
		Short: "Play an animation headlessly and print its events",
		Long: `Mount a Lottie widget on the default engine, run a fixed number of
frames on a simulated clock, then unmount it. Segment, loop and
completion events are printed with the frame they fired on.

Flags:
  --frames N      Number of frames to run (default: 60)
  --fps N         Simulated display refresh rate (default: 60)
  --speed X       Playback speed (default: 1)
  --reverse       Play in reverse
  --loop          Loop the animation
  --marker NAME   Play only the named marker

Examples:
  lottie play spinner.json --frames 120 --loop
  lottie play spinner.yaml --marker intro`,
		Usage: "lottie play <file> [--frames N] [--fps N] [--speed X] [--reverse] [--loop] [--marker NAME]",
		Run:   runPlay,
	})
}

type playOptions struct {
	frames  int
	fps     float64
	speed   float64
	reverse bool
	loop    bool
	marker  string
}

func parsePlayOptions(args []string) (playOptions, error) {
	opts := playOptions{frames: 60, fps: 60, speed: 1}
	value := func(i int, flag string) (string, error) {
		if i+1 >= len(args) {
			return "", fmt.Errorf("%s requires a value", flag)
		}
		return args[i+1], nil
	}

	for i := 0; i < len(args); i++ {
		flag := args[i]
		switch flag {
		case "--reverse":
			opts.reverse = true
		case "--loop":
			opts.loop = true
		case "--frames", "--fps", "--speed", "--marker":
			v, err := value(i, flag)
			if err != nil {
				return opts, err
			}
			i++
			switch flag {
			case "--frames":
				opts.frames, err = strconv.Atoi(v)
			case "--fps":
				opts.fps, err = strconv.ParseFloat(v, 64)
			case "--speed":
				opts.speed, err = strconv.ParseFloat(v, 64)
			case "--marker":
				opts.marker = v
			}
			if err != nil {
				return opts, fmt.Errorf("invalid %s %q: %w", flag, v, err)
			}
		default:
			return opts, fmt.Errorf("unknown flag %q", flag)
		}
	}
	if opts.frames < 0 || opts.fps <= 0 {
		return opts, fmt.Errorf("--frames must be >= 0 and --fps > 0")
	}
	return opts, nil
}

func runPlay(args []string, out io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("file is required\n\nUsage: lottie play <file>")
	}
	opts, err := parsePlayOptions(args[1:])
	if err != nil {
		return err
	}
	cfg, anim, err := loadConfig(args[0])
	if err != nil {
		return err
	}
	if opts.loop {
		cfg.Loop = lottie.Bool(true)
	}

	host := widgets.Lottie{
		Engine: lottie.NewEngine(),
		Config: cfg,
		Speed:  opts.speed,
	}
	if opts.reverse {
		host.Direction = lottie.Reverse
	}
	if opts.marker != "" {
		m, ok := anim.Marker(opts.marker)
		if !ok {
			return fmt.Errorf("no marker %q in %s", opts.marker, args[0])
		}
		host.Segments = []lottie.Segment{m.Segment()}
	}

	report := lottie.NewCallback(func(e lottie.Event) {
		fmt.Fprintf(out, "%-13s frame=%.2f/%g\n", e.Type, e.CurrentFrame, e.TotalFrames)
	})
	for _, name := range []lottie.EventName{
		lottie.EventSegmentStart,
		lottie.EventLoopComplete,
		lottie.EventComplete,
	} {
		host.Listeners = append(host.Listeners, lottie.EventListener{Name: name, Callback: report})
	}
	player := &core.Ref[lottie.Player]{}
	host.AnimationRef = player

	clock := &frameClock{now: time.Unix(0, 0)}
	prev := animation.SetClock(clock)
	defer animation.SetClock(prev)

	owner := core.NewBuildOwner()
	root, err := mount(host, owner)
	if err != nil {
		return err
	}

	interval := time.Duration(float64(time.Second) / opts.fps)
	for range opts.frames {
		clock.advance(interval)
		animation.StepTickers()
	}
	if item, ok := player.Current().(*lottie.AnimationItem); ok {
		fmt.Fprintf(out, "stopped at frame %.2f of segment %g-%g after %d frames\n",
			item.CurrentFrame(), item.ActiveSegment()[0], item.ActiveSegment()[1], opts.frames)
	}
	root.Unmount()
	return nil
}

// mount turns configuration panics raised while mounting into errors.
func mount(w core.Widget, owner *core.BuildOwner) (root core.Element, err error) {
	defer func() {
		if r := recover(); r != nil {
			var cfgErr *errors.ConfigError
			if e, ok := r.(error); ok && errors.As(e, &cfgErr) {
				err = cfgErr
				return
			}
			panic(r)
		}
	}()
	root = core.MountRoot(w, owner)
	owner.FlushBuild()
	return root, nil
}

// frameClock is an animation.Clock moved forward one display frame at a time.
type frameClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *frameClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *frameClock) advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}
