package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jarvis-assistant/jarvisd/internal/config"
	"github.com/jarvis-assistant/jarvisd/internal/memory"
	"github.com/jarvis-assistant/jarvisd/internal/store"
)

var exportOut string

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default jarvis-backup-<date>.json)")
	wipeCmd.Flags().Bool("yes", false, "skip the confirmation prompt")
}

// openServices opens the database for an offline admin command.
func openServices() (*store.DB, *memory.Service, *store.KV, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}
	logger := newLogger(cfg.LogLevel)

	db, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open database: %w", err)
	}

	kv := store.NewKV(db, cfg.QuotaBytes, logger)
	return db, memory.NewService(kv, logger), kv, nil
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show stored state and storage usage",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, mem, kv, err := openServices()
		if err != nil {
			return err
		}
		defer db.Close()

		st := kv.StorageStatus(context.Background())
		rel := mem.Relationship()
		streak := mem.Streak()

		fmt.Printf("chats:        %d\n", len(mem.Chats()))
		fmt.Printf("interactions: %d (level %d)\n", rel.TotalInteractions, rel.Level)
		fmt.Printf("streak:       %d days (longest %d)\n", streak.CurrentStreak, streak.LongestStreak)
		fmt.Printf("storage:      %d / %d bytes (%d%%)\n", st.Used, st.Total, st.Percent)
		if st.Critical {
			fmt.Println("storage is critical, old chats will be evicted on the next turn")
		}
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a full backup snapshot to a JSON file",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, mem, _, err := openServices()
		if err != nil {
			return err
		}
		defer db.Close()

		out := exportOut
		if out == "" {
			out = fmt.Sprintf("jarvis-backup-%s.json", time.Now().Format("2006-01-02"))
		}

		data, err := json.MarshalIndent(mem.ExportAllData(), "", "  ")
		if err != nil {
			return fmt.Errorf("marshal snapshot: %w", err)
		}
		if err := os.WriteFile(out, data, 0o644); err != nil {
			return fmt.Errorf("write backup: %w", err)
		}

		fmt.Printf("wrote %s (%d bytes)\n", out, len(data))
		return nil
	},
}

var wipeCmd = &cobra.Command{
	Use:   "wipe",
	Short: "Delete all stored data",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Print("this deletes every chat, preference and stat. type 'yes' to continue: ")
			line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
			if strings.TrimSpace(line) != "yes" {
				fmt.Println("aborted")
				return nil
			}
		}

		db, mem, _, err := openServices()
		if err != nil {
			return err
		}
		defer db.Close()

		if err := mem.DeleteAllData(); err != nil {
			return fmt.Errorf("delete data: %w", err)
		}
		fmt.Println("all data deleted")
		return nil
	},
}
