package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/inkwell-labs/inkwell-cli/internal/adapters/driving/tui"
	"github.com/inkwell-labs/inkwell-cli/internal/adapters/driving/tui/messages"
	"github.com/inkwell-labs/inkwell-cli/internal/core/domain"
	"github.com/inkwell-labs/inkwell-cli/internal/core/ports/driving"
)

var (
	syncMaxEmails int
	syncPlain     bool
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Download and index sent emails",
	Long: `Downloads sent emails from Gmail, skips the ones already indexed,
embeds the rest and adds them to the corpus.

Requires a completed 'inkwell auth' and a running Chroma server.`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().IntVarP(&syncMaxEmails, "max", "m", 0, "maximum emails to fetch (default from config)")
	syncCmd.Flags().BoolVar(&syncPlain, "plain", false, "print plain progress instead of the progress bar")
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	service, err := ensureSyncService(ctx)
	if err != nil {
		return err
	}

	maxEmails := syncMaxEmails
	if maxEmails <= 0 {
		cfg, err := ensureConfig()
		if err != nil {
			return err
		}
		maxEmails = cfg.SyncMaxEmails
	}

	var stats domain.SyncStats
	if syncPlain || !term.IsTerminal(int(os.Stdout.Fd())) {
		stats, err = syncWithPlainProgress(cmd, service, maxEmails)
	} else {
		stats, err = syncWithProgressBar(ctx, service, maxEmails)
	}
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	cmd.Printf("Downloaded %d emails\n", stats.Downloaded)
	cmd.Printf("Embedded   %d new\n", stats.Embedded)
	cmd.Printf("Skipped    %d (%d already indexed, %d empty)\n",
		stats.Skipped(), stats.SkippedExisting, stats.SkippedEmpty)
	return nil
}

// syncWithPlainProgress runs the sync printing one line per page.
func syncWithPlainProgress(
	cmd *cobra.Command, service driving.SyncOrchestrator, maxEmails int,
) (domain.SyncStats, error) {
	progress := make(chan driving.Progress, 8)
	done := make(chan struct{})

	go func() {
		defer close(done)
		for p := range progress {
			cmd.Printf("Downloaded %d / %d emails\n", p.Accumulated, p.Max)
		}
	}()

	stats, err := service.Sync(cmd.Context(), maxEmails, progress)
	close(progress)
	<-done
	return stats, err
}

// syncWithProgressBar runs the sync behind the Bubbletea progress view.
func syncWithProgressBar(
	ctx context.Context, service driving.SyncOrchestrator, maxEmails int,
) (domain.SyncStats, error) {
	progress := make(chan driving.Progress, 8)
	done := make(chan messages.SyncFinished, 1)

	model := tui.NewSyncModel(progress, done)

	go func() {
		stats, err := service.Sync(ctx, maxEmails, progress)
		close(progress)
		done <- messages.SyncFinished{Stats: stats, Err: err}
	}()

	final, err := model.Run()
	if err != nil {
		return domain.SyncStats{}, err
	}
	return final.Stats(), final.Err()
}
