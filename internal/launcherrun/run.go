package launcherrun

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"launchguard/internal/config"
	"launchguard/internal/exitcode"
	"launchguard/internal/instance"
	"launchguard/internal/launch"
	"launchguard/internal/locale"
	"launchguard/internal/trust"
	"launchguard/internal/verify"
)

// Runner executes one complete launch attempt: instance guard, sequential
// target verification, then fire-and-forget spawn of the primary target.
type Runner struct {
	cfg      *config.Config
	store    trust.Store
	logger   *slog.Logger
	messages *locale.Catalog

	// dialog receives the single user-facing notification of a failure,
	// standing in for the original message boxes. Defaults to stderr.
	dialog io.Writer

	// start and installDir are indirections for tests.
	start      func(path string, args []string) error
	installDir func() (string, error)
}

// New constructs a Runner with production wiring.
func New(cfg *config.Config, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{
		cfg:        cfg,
		store:      trust.Embedded(cfg.Targets.Primary, cfg.Targets.Helper),
		logger:     logger,
		messages:   locale.New(cfg.UI.Language),
		dialog:     os.Stderr,
		start:      launch.Start,
		installDir: launch.InstallDir,
	}
}

// Run drives the launch state machine. The returned error, when non-nil, is
// an *exitcode.Error carrying the process exit code; resources acquired
// along the way are released on every path.
func (r *Runner) Run(args []string) error {
	runID := uuid.NewString()
	log := r.logger.With(slog.String("run_id", runID))

	guard, err := instance.Acquire(r.cfg.Paths.LockFile)
	if err != nil {
		if errors.Is(err, instance.ErrAlreadyRunning) {
			r.notify(r.messages.LauncherTitle(), r.messages.AlreadyRunning())
			log.Warn("launch rejected", slog.String("reason", "already_running"))
			return exitcode.New(exitcode.AlreadyRunning, err)
		}
		return fmt.Errorf("instance guard: %w", err)
	}
	defer func() {
		if releaseErr := guard.Release(); releaseErr != nil {
			log.Warn("release instance lock", slog.Any("error", releaseErr))
		}
	}()
	log.Debug("instance lock acquired", slog.String("lock", guard.Path()))

	dir := r.cfg.Paths.InstallDir
	if dir == "" {
		dir, err = r.installDir()
		if err != nil {
			return fmt.Errorf("locate install directory: %w", err)
		}
	}

	if verr := verify.Run(dir, r.store); verr != nil {
		r.notifyVerifyFailure(verr)
		log.Error("integrity verification failed",
			slog.String("target", verr.Target.Name),
			slog.String("file", verr.Target.FileName),
			slog.String("reason", verr.Reason.String()),
		)
		return exitcode.New(verr.ExitCode, verr)
	}
	log.Info("integrity verification passed", slog.String("install_dir", dir))

	primary := r.store.Targets()[0]
	targetPath := filepath.Join(dir, primary.FileName)
	forwarded := launch.QuoteArgs(args)
	if err := r.start(targetPath, args); err != nil {
		r.notify(r.messages.ErrorTitle(), r.messages.LaunchFailed(primary.FileName))
		log.Error("launch failed", slog.String("target", targetPath), slog.Any("error", err))
		return exitcode.New(exitcode.LaunchFailed, err)
	}

	log.Info("target launched",
		slog.String("target", targetPath),
		slog.String("forwarded_args", forwarded),
	)
	return nil
}

func (r *Runner) notifyVerifyFailure(verr *verify.Error) {
	file := verr.Target.FileName
	switch verr.Reason {
	case verify.Missing:
		r.notify(r.messages.LauncherTitle(), r.messages.FileNotFound(file))
	default:
		detailed := verr.Target.Name == "primary"
		r.notify(r.messages.SecurityTitle(), r.messages.IntegrityFailed(file, detailed))
	}
}

func (r *Runner) notify(title, body string) {
	fmt.Fprintf(r.dialog, "[%s] %s\n", title, body)
}
