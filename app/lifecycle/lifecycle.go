package lifecycle

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/shuaxinkong/EarTrumpet/app/tray"
	"github.com/shuaxinkong/EarTrumpet/app/tray/commontray"
	"github.com/shuaxinkong/EarTrumpet/app/tray/notifyicon"
	"golang.org/x/sync/errgroup"
)

func Run() {
	InitLogging()

	t, err := tray.NewTray()
	if err != nil {
		log.Fatalf("Failed to start: %s", err)
	}
	callbacks := t.GetCallbacks()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Debug("starting callback loop")
		for {
			select {
			case <-ctx.Done():
				return nil
			case button := <-callbacks.Click:
				handleClick(t, button)
			case delta := <-callbacks.Wheel:
				// The volume engine is not part of this build; report the
				// scroll so the plumbing is visible end to end.
				slog.Info("volume wheel", "delta", delta)
			case <-signals:
				slog.Debug("shutting down due to signal")
				t.Quit()
			}
		}
	})

	// Blocks on the message pump until the icon is torn down.
	t.Run()
	cancel()
	if err := g.Wait(); err != nil {
		slog.Warn(fmt.Sprintf("callback loop failed: %s", err))
	}
	slog.Info("EarTrumpet app exiting")
}

func handleClick(t commontray.Tray, button notifyicon.MouseButton) {
	switch button {
	case notifyicon.LeftButton:
		slog.Info("flyout requested")
	case notifyicon.MiddleButton:
		slog.Info("mute toggle requested")
	case notifyicon.RightButton:
		// There is no context menu in this build, so the secondary click
		// is the exit path.
		t.Quit()
	}
}
