package cmd

import (
	"fmt"
	"io"
)

func init() {
	RegisterCommand(&Command{
		Name:  "inspect",
		Short: "Show animation timing and markers",
		Long: `Print the header of a Lottie animation: frame rate, frame range,
duration, size, layer count and markers.

The file may be Lottie JSON or a YAML manifest.`,
		Usage: "lottie inspect <file>",
		Run:   runInspect,
	})
}

func runInspect(args []string, out io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("file is required\n\nUsage: lottie inspect <file>")
	}
	cfg, anim, err := loadConfig(args[0])
	if err != nil {
		return err
	}

	name := cfg.Name
	if name == "" {
		name = anim.Name
	}
	fmt.Fprintf(out, "Name:      %s\n", name)
	fmt.Fprintf(out, "Version:   %s\n", anim.Version)
	fmt.Fprintf(out, "Frames:    %g-%g (%g at %g fps)\n", anim.InPoint, anim.OutPoint, anim.TotalFrames(), anim.FrameRate)
	fmt.Fprintf(out, "Duration:  %s\n", anim.Duration())
	fmt.Fprintf(out, "Size:      %gx%g\n", anim.Width, anim.Height)
	fmt.Fprintf(out, "Layers:    %d\n", len(anim.Layers))
	if cfg.Renderer != "" {
		fmt.Fprintf(out, "Renderer:  %s\n", cfg.Renderer)
	}
	if cfg.InitialSegment != nil {
		fmt.Fprintf(out, "Segment:   %g-%g\n", cfg.InitialSegment[0], cfg.InitialSegment[1])
	}
	if len(anim.Markers) > 0 {
		fmt.Fprintln(out, "Markers:")
		for _, m := range anim.Markers {
			seg := m.Segment()
			fmt.Fprintf(out, "  %-12s %g-%g\n", m.Name, seg[0], seg[1])
		}
	}
	return nil
}
