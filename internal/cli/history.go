package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxn_bld/internal/storage"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse stored memos",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent memos",
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <memo-id-prefix>",
	Short: "Show a stored memo",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <memo-id-prefix>",
	Short: "Delete a stored memo",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

var historyLimit int

func init() {
	historyListCmd.Flags().IntVarP(&historyLimit, "limit", "l", 20, "Number of memos to list")
	historyCmd.AddCommand(historyListCmd, historyShowCmd, historyDeleteCmd)
	rootCmd.AddCommand(historyCmd)
}

func withMemos(cmd *cobra.Command, fn func(*storage.MemoRepository) error) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	db, err := s.openDB()
	if err != nil {
		return err
	}
	defer db.Close()
	debugf("database %s\n", db.Path())
	return fn(storage.NewMemoRepository(db))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	return withMemos(cmd, func(repo *storage.MemoRepository) error {
		memos, err := repo.List(historyLimit)
		if err != nil {
			return err
		}
		if len(memos) == 0 {
			fmt.Println("No memos stored. Save one with: nxnbld memo --save <scramble>")
			return nil
		}

		fmt.Printf("%-8s  %-16s  %4s  %5s  %7s  %s\n", "ID", "Created", "Size", "Edges", "Corners", "Scramble")
		fmt.Println(strings.Repeat("-", 80))
		for _, m := range memos {
			fmt.Printf("%-8s  %-16s  %4d  %5d  %7d  %s\n",
				m.MemoID[:8],
				m.CreatedAt.Local().Format("2006-01-02 15:04"),
				m.Size,
				m.EdgeTargets,
				m.CornerTargets,
				truncate(m.Scramble, 32),
			)
		}
		return nil
	})
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	return withMemos(cmd, func(repo *storage.MemoRepository) error {
		id, err := repo.Resolve(args[0])
		if err != nil {
			return err
		}
		m, err := repo.Get(id)
		if err != nil {
			return err
		}
		fmt.Printf("Memo:     %s\n", m.MemoID)
		fmt.Printf("Created:  %s\n", m.CreatedAt.Local().Format(time.RFC1123))
		fmt.Printf("Size:     %dx%d\n", m.Size, m.Size)
		if m.Seed != nil {
			fmt.Printf("Seed:     %d\n", *m.Seed)
		}
		fmt.Printf("Scramble: %s\n", m.Scramble)
		fmt.Printf("Targets:  %d edge, %d corner\n\n", m.EdgeTargets, m.CornerTargets)
		fmt.Println(m.Text)
		return nil
	})
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	return withMemos(cmd, func(repo *storage.MemoRepository) error {
		id, err := repo.Resolve(args[0])
		if err != nil {
			return err
		}
		if err := repo.Delete(id); err != nil {
			return err
		}
		fmt.Printf("Deleted memo %s\n", id)
		return nil
	})
}
