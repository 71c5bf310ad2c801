package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cabinside/cabinctl/internal/anim"
	"github.com/cabinside/cabinctl/internal/chime"
	"github.com/cabinside/cabinctl/internal/config"
	"github.com/cabinside/cabinctl/internal/feed"
	"github.com/cabinside/cabinctl/internal/logging"
	"github.com/cabinside/cabinctl/internal/track"
	"github.com/cabinside/cabinctl/internal/ui"
)

func main() {
	var cfgPath string
	if len(os.Args) > 1 {
		cfgPath = os.Args[1]
	}

	if err := config.Load(cfgPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	settings, err := config.Current()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid config: %v\n", err)
		os.Exit(1)
	}
	easing, err := anim.EasingByName(settings.Easing)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	run := uuid.NewString()
	log, logFile, err := logging.Open(settings.LogFile, settings.LogLevel, run)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	log.Info().
		Str("config", config.Used()).
		Dur("settle", settings.Timing.Settle).
		Dur("main", settings.Timing.Main).
		Dur("loop", settings.Timing.Loop).
		Int("fps", settings.FPS).
		Str("easing", settings.Easing).
		Msg("starting")

	opts := ui.Options{
		Data:          settings.Dashboard,
		Layout:        track.DefaultLayout(),
		Timing:        settings.Timing,
		Easing:        easing,
		FrameInterval: settings.FrameInterval(),
		Start:         time.Now(),
		Log:           log,
	}

	if settings.ChimeEnabled {
		if p := openChime(settings, log); p != nil {
			defer p.Close()
			opts.Chime = p
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if settings.FeedAddr != "" {
		srv := feed.New(run, settings.FeedInterval, log)
		opts.Feed = srv
		go func() {
			if err := srv.ListenAndServe(ctx, settings.FeedAddr); err != nil {
				log.Error().Err(err).Str("addr", settings.FeedAddr).Msg("feed stopped")
			}
		}()
	}

	program := tea.NewProgram(ui.New(opts), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Error().Err(err).Msg("program failed")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	log.Info().Msg("shutdown")
}

// openChime loads the configured chime, falling back to the built-in tone.
// Audio problems only disable the chime.
func openChime(s config.Settings, log zerolog.Logger) *chime.Player {
	clip := chime.Tone()
	if s.ChimeFile != "" {
		c, err := chime.Load(s.ChimeFile)
		if err != nil {
			log.Warn().Err(err).Str("file", s.ChimeFile).Msg("chime file unusable, using built-in tone")
		} else {
			clip = c
		}
	}
	p, err := chime.New(clip, s.ChimeVolume, log)
	if err != nil {
		log.Warn().Err(err).Msg("chime disabled")
		return nil
	}
	log.Info().Str("chime", clip.Title).Dur("length", clip.Duration()).Msg("chime ready")
	return p
}
