package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxn_bld/internal/ble"
	"github.com/SeamusWaldron/nxn_bld/internal/storage"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "List nearby GoCubes",
	Long: `Scan for GoCubes over Bluetooth and list their names, addresses and
signal strength. A cube connected to another device, such as the phone app,
does not advertise.`,
	RunE: runScan,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the resolved configuration and database contents",
	RunE:  runStatus,
}

var scanTimeout time.Duration

func init() {
	scanCmd.Flags().DurationVar(&scanTimeout, "timeout", 5*time.Second, "How long to scan")
	rootCmd.AddCommand(scanCmd, statusCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	client, err := ble.NewClient()
	if err != nil {
		return fmt.Errorf("bluetooth not available: %w", err)
	}

	fmt.Println("Scanning for GoCubes...")
	ctx, cancel := context.WithTimeout(cmd.Context(), scanTimeout)
	defer cancel()
	results, err := client.Scan(ctx, scanTimeout)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Println("No GoCube found. Make sure it is awake and not connected to the app.")
		return nil
	}
	for _, r := range results {
		fmt.Printf("%-16s  %s  %4d dBm\n", r.Name, r.UUID, r.RSSI)
	}
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	v, err := newViper(cmd, configFile)
	if err != nil {
		return err
	}
	s, err := settingsFrom(v)
	if err != nil {
		return err
	}
	db, err := s.openDB()
	if err != nil {
		return err
	}
	defer db.Close()
	return writeStatus(cmd.OutOrStdout(), v.ConfigFileUsed(), s, db)
}

func writeStatus(w io.Writer, configUsed string, s settings, db *storage.DB) error {
	if configUsed == "" {
		configUsed = "none"
	}
	fmt.Fprintf(w, "Config:    %s\n", configUsed)
	fmt.Fprintf(w, "Size:      %dx%d\n", s.Size, s.Size)
	fmt.Fprintf(w, "Lettering: %s\n", s.BLD.Lettering)
	b := s.BLD.Buffers
	fmt.Fprintf(w, "Buffers:   edges %s, corners %s, wings %s\n", b.Edges, b.Corners, b.Wings)
	fmt.Fprintf(w, "           x-centers %s, t-centers %s, obliques %s\n", b.XCenters, b.TCenters, b.LeftObliques)

	version, err := db.CurrentVersion()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\nDatabase:  %s (schema %d)\n", db.Path(), version)

	memos, err := storage.NewMemoRepository(db).Count()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Memos:     %d\n", memos)

	sessions, err := storage.NewSessionRepository(db).List(1)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Fprintln(w, "Sessions:  none")
		return nil
	}
	last := sessions[0]
	fmt.Fprintf(w, "Last live: %s, %d moves\n", last.StartedAt.Local().Format("2006-01-02 15:04"), last.MoveCount)
	return nil
}
