// Command display-test renders a moving test pattern through the
// framebuffer backend. It exercises the whole backend lifecycle:
// init, render, flip, blank and teardown.
package main

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/image/font"

	"github.com/openrescue/display"
	"github.com/openrescue/display/draw"
	"github.com/openrescue/display/fbdev"
)

func main() {
	root := &cobra.Command{
		Use:           "display-test",
		Short:         "Render a moving test pattern on the framebuffer",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	flags := root.Flags()
	flags.String("device", fbdev.DefaultDevice, "framebuffer device")
	flags.Bool("force-565", false, "force a 16-bit 5-6-5 pixel layout")
	flags.Bool("swap-rb", false, "swap red/blue channel order on flip")
	flags.String("brightness-path", "", "backlight brightness file (blank via brightness instead of ioctl)")
	flags.Int("max-brightness", 255, "brightness written on unblank")
	flags.Duration("interval", 50*time.Millisecond, "delay between frames")
	flags.Int("frames", 0, "number of frames to render (0 = until interrupted)")
	flags.String("font", "", "TrueType font for the on-screen label")
	cobra.CheckErr(viper.BindPFlags(flags))
	viper.SetEnvPrefix("display_test")
	viper.AutomaticEnv()

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	backend := fbdev.New(fbdev.Config{
		Device:         viper.GetString("device"),
		ForceRGB565:    viper.GetBool("force-565"),
		SwapRedBlue:    viper.GetBool("swap-rb"),
		BrightnessPath: viper.GetString("brightness-path"),
		MaxBrightness:  viper.GetInt("max-brightness"),
		Logger:         log,
	})

	surface, err := backend.Init()
	if err != nil {
		return err
	}
	defer backend.Close()

	var face font.Face
	if path := viper.GetString("font"); path != "" {
		if face, err = draw.LoadFontFace(path, 16); err != nil {
			return err
		}
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	var (
		ticker = time.NewTicker(viper.GetDuration("interval"))
		frames = viper.GetInt("frames")
		bounds = surface.Bounds()
		label  = fmt.Sprintf("%dx%d %s", surface.Width, surface.Height, surface.Format)
	)
	defer ticker.Stop()

	log.Info("rendering", zap.String("label", label))
	for offset := 0; frames == 0 || offset < frames; offset++ {
		for y := 1; y < bounds.Max.Y-1; y++ {
			for x := 1; x < bounds.Max.X-1; x++ {
				surface.Set(x, y, color.RGBA{
					R: uint8(x + y + offset),
					G: uint8(x - y + offset),
					B: uint8(x + y - offset),
					A: 0xff,
				})
			}
		}
		draw.Rectangle(surface, bounds, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
		draw.Text(surface, image.Pt(8, 24), face, label, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})

		if _, err := backend.Flip(); err != nil {
			return err
		}

		select {
		case <-stop:
			log.Info("interrupted, blanking display")
			return backend.Blank(true)
		case <-ticker.C:
		}
	}
	return nil
}

func newLogger() (*zap.Logger, error) {
	if display.Debug() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
