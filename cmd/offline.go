package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/minhokang/baeum/internal/config"
	"github.com/minhokang/baeum/internal/engine"
	"github.com/minhokang/baeum/internal/offline"
	"github.com/minhokang/baeum/internal/srs"
	"github.com/minhokang/baeum/internal/store"
)

var offlineCmd = &cobra.Command{
	Use:   "offline",
	Short: "Manage offline study sessions",
}

var offlineStartCmd = &cobra.Command{
	Use:   "start <pack.json> <snapshot.json>",
	Short: "Snapshot due cards for offline study",
	Long:  "Write a snapshot of every due card's scheduling state. The snapshot expires after 48 hours.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		pack, err := loadPack(args[0])
		if err != nil {
			return err
		}
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()
		now := time.Now()
		states, err := st.ProgressRepo().All(ctx)
		if err != nil {
			return err
		}

		// Snapshot everything coming due within the replay window.
		pool := engine.BuildPool(pack, states, nil, nil, now, offline.SessionTTL)
		cards := make(map[string]srs.MemoryState, len(pool))
		for _, c := range pool {
			cards[c.ID] = c.Memory
		}
		if len(cards) == 0 {
			return fmt.Errorf("nothing is due; no snapshot written")
		}

		sess := offline.NewSession(now, cards, cfg.Scheduler.TargetRetention, cfg.Scheduler.FocusMode)
		if err := st.OfflineSessionRepo().Save(ctx, sess); err != nil {
			return err
		}
		if err := writeJSON(args[1], sess); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "snapshot %s: %d cards, replay before %s\n",
			sess.ID, len(cards), sess.ExpiresAt.Format(time.RFC3339))
		return nil
	},
}

// offlineBatch is the sync payload a device hands back.
type offlineBatch struct {
	SessionID string           `json:"session_id"`
	Reviews   []offline.Review `json:"reviews"`
}

var offlineSyncCmd = &cobra.Command{
	Use:   "sync <batch.json>",
	Short: "Replay reviews recorded offline",
	Long:  "Recompute scheduling from an offline review batch. The batch applies atomically or not at all.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read batch: %w", err)
		}
		var batch offlineBatch
		if err := json.Unmarshal(data, &batch); err != nil {
			return fmt.Errorf("decode batch: %w", err)
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		sched := srs.New(srs.Choice(cfg.Scheduler.Algorithm), srs.Options{
			TargetRetention: cfg.Scheduler.TargetRetention,
			FocusMode:       cfg.Scheduler.FocusMode,
		})
		svc := store.NewSyncService(st, sched)
		states, err := svc.Reconcile(cmd.Context(), batch.SessionID, batch.Reviews, time.Now())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "reconciled %d reviews across %d cards\n",
			len(batch.Reviews), len(states))
		return nil
	},
}

func init() {
	offlineCmd.AddCommand(offlineStartCmd)
	offlineCmd.AddCommand(offlineSyncCmd)
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
