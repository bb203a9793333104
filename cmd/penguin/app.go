package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/penguin-jump/internal/audio"
	"github.com/vovakirdan/penguin-jump/internal/audio/speakerout"
	"github.com/vovakirdan/penguin-jump/internal/config"
	"github.com/vovakirdan/penguin-jump/internal/core"
	"github.com/vovakirdan/penguin-jump/internal/game"
	"github.com/vovakirdan/penguin-jump/internal/registry"
	"github.com/vovakirdan/penguin-jump/internal/storage"
)

// newLogger builds a logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: unknown log level %q, using info\n", flagLogLevel)
		level = log.InfoLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
}

// fileLogger logs to ~/.penguin/penguin.log so the alt screen stays clean.
// The returned func closes the file.
func fileLogger() (*log.Logger, func()) {
	home, err := os.UserHomeDir()
	if err != nil {
		return newLogger(io.Discard, "penguin"), func() {}
	}
	dir := filepath.Join(home, ".penguin")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return newLogger(io.Discard, "penguin"), func() {}
	}
	f, err := os.OpenFile(filepath.Join(dir, "penguin.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return newLogger(io.Discard, "penguin"), func() {}
	}
	return newLogger(f, "penguin"), func() { f.Close() }
}

// loadConfig loads the game configuration and applies --difficulty.
func loadConfig() (config.PenguinConfig, error) {
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		return config.PenguinConfig{}, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		if flagConfig != "" {
			return cfg, err
		}
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

// openStore opens the profile database. Without one the game still works,
// but nothing is kept between runs.
func openStore(logger *log.Logger) storage.Profiles {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open profile database, progress will not be saved", "path", flagDBPath, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open profile database: %v\n", err)
		return storage.NewMemoryStore()
	}
	return store
}

// runtimeConfig sizes the screen from the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	cfg.Debug = flagDebug
	return cfg
}

// startAudio opens the speaker and restores the saved music state.
// It returns nil when no audio device is available.
func startAudio(store storage.Profiles, logger *log.Logger) *audio.Player {
	player := audio.NewPlayer(audio.DefaultSampleRate, logger)
	player.SetVolume(flagVolume)
	player.SetMuted(flagMute)
	if err := speakerout.Start(player); err != nil {
		logger.Warn("audio disabled", "error", err)
		return nil
	}

	profile, err := store.LoadProfile()
	if err != nil {
		profile = game.DefaultProfile()
	}
	player.SetMusic(profile.MusicEnabled)
	return player
}

// stopAudio remembers whether music was playing and releases the speaker.
func stopAudio(player *audio.Player, store storage.Profiles, logger *log.Logger) {
	if player == nil {
		return
	}
	if err := store.SetMusicPlaying(player.MusicPlaying()); err != nil {
		logger.Warn("could not save music state", "error", err)
	}
	speakerout.Stop()
}

// gameFactory returns a constructor for games sharing the given
// collaborators.
func gameFactory(cfg config.PenguinConfig, player *audio.Player, logger *log.Logger) func(store storage.Profiles, name string) registry.Game {
	var cues game.CueSink
	if player != nil {
		cues = player
	}
	return func(store storage.Profiles, name string) registry.Game {
		var profiles game.ProfileStore
		if store != nil {
			profiles = store
		}
		return game.New(game.Options{
			Config: &cfg,
			Store:  profiles,
			Cues:   cues,
			Logger: logger.With("player", name),
			Player: name,
		})
	}
}

// playerName is the name recorded with local runs.
func playerName() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "local"
}
