package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxn_bld/internal/bld"
	"github.com/SeamusWaldron/nxn_bld/internal/cube"
	"github.com/SeamusWaldron/nxn_bld/internal/notation"
	"github.com/SeamusWaldron/nxn_bld/internal/storage"
	"github.com/SeamusWaldron/nxn_bld/pkg/types"
)

var showCmd = &cobra.Command{
	Use:   "show [scramble]",
	Short: "Show a scrambled cube and its memo",
	Long: `Apply a scramble to a solved cube and print the cube net followed by
the memo. The scramble may be given as several arguments.`,
	Example: `  nxnbld show "R U R' U'"
  nxnbld show -n 5 Rw U2 3Fw'
  nxnbld show --plain "[R, U]"`,
	RunE: runShow,
}

var memoCmd = &cobra.Command{
	Use:   "memo [scramble]",
	Short: "Print the memo of a scramble",
	Long: `Apply a scramble to a solved cube and print the letter-pair memo of every
piece type. With --save the memo is stored in the history database.`,
	RunE: runMemo,
}

var (
	showPlain bool
	memoSave  bool
)

func init() {
	showCmd.Flags().BoolVar(&showPlain, "plain", false, "Print face letters instead of colors")
	memoCmd.Flags().BoolVar(&memoSave, "save", false, "Store the memo in the history database")
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(memoCmd)
}

// scrambled applies a scramble to a solved n cube.
func scrambled(n int, text string) (*cube.RotatedCube, []types.Move, error) {
	moves, err := notation.ParseMoves(n, text)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse scramble: %w", err)
	}
	r := cube.NewRotated(cube.New(n))
	r.ApplyMoves(moves)
	return r, moves, nil
}

func runShow(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	r, moves, err := scrambled(s.Size, strings.Join(args, " "))
	if err != nil {
		return err
	}
	debugf("%d moves\n", len(moves))

	fmt.Println(renderNet(r.Cube, showPlain))
	fmt.Println()
	fmt.Println(bld.Render(r.Cube, s.BLD))
	return nil
}

func runMemo(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	text := strings.Join(args, " ")
	r, moves, err := scrambled(s.Size, text)
	if err != nil {
		return err
	}

	m := bld.MemoCube(r.Cube, s.BLD.Buffers)
	fmt.Println(bld.RenderMemo(m, s.BLD.Lettering))
	debugf("edge targets: %d, corner targets: %d\n", m.EdgeTargets(), m.CornerTargets())

	if memoSave {
		return saveMemo(s, types.FormatMoves(moves), nil, m)
	}
	return nil
}

// saveMemo stores a memo in the history database.
func saveMemo(s settings, scramble string, seed *uint64, m bld.CubeMemo) error {
	db, err := s.openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	id, err := storage.NewMemoRepository(db).Create(storage.MemoRecord{
		Size:          m.N,
		Scramble:      scramble,
		Seed:          seed,
		Text:          bld.RenderMemo(m, s.BLD.Lettering),
		EdgeTargets:   m.EdgeTargets(),
		CornerTargets: m.CornerTargets(),
	})
	if err != nil {
		return err
	}
	fmt.Printf("Saved memo %s\n", id)
	return nil
}
