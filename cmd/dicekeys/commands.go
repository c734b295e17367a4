package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/dicekeys/compare"
	"github.com/katalvlaran/dicekeys/grid"
	"github.com/katalvlaran/dicekeys/identity"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// errBackupMismatch makes `compare` exit non-zero for an imperfect backup.
var errBackupMismatch = errors.New("backup does not match the original")

// decode parses a text form and logs actionable detail on failure.
func (a *app) decode(s string) (grid.Grid, error) {
	g, err := grid.Decode(strings.TrimSpace(s))
	if err != nil {
		var ue *grid.UniquenessError
		if errors.As(err, &ue) {
			for _, line := range ue.Diagnostics() {
				a.logger.Warn("letter check failed", zap.String("detail", line))
			}
		}

		return grid.Grid{}, err
	}

	return g, nil
}

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <text>",
		Short: "Check that a text form is a complete, fully keyed grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := grid.Decode(strings.TrimSpace(args[0]))
			type report struct {
				Valid    bool     `json:"valid"`
				Error    string   `json:"error,omitempty"`
				Problems []string `json:"problems,omitempty"`
			}
			rep := report{Valid: err == nil}
			if err != nil {
				rep.Error = err.Error()
				var ue *grid.UniquenessError
				if errors.As(err, &ue) {
					rep.Problems = ue.Diagnostics()
				}
			}
			if outErr := a.emit(cmd, rep, func() {
				if rep.Valid {
					fmt.Fprintln(cmd.OutOrStdout(), "valid")

					return
				}
				fmt.Fprintln(cmd.OutOrStdout(), "invalid:", rep.Error)
				for _, p := range rep.Problems {
					fmt.Fprintln(cmd.OutOrStdout(), "  -", p)
				}
			}); outErr != nil {
				return outErr
			}

			return err
		},
	}
}

func (a *app) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <text>",
		Short: "Lay a grid out as the 5x5 box",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.decode(args[0])
			if err != nil {
				return err
			}
			rows := strings.Split(strings.TrimSuffix(grid.Render(g), "\n"), "\n")

			return a.emit(cmd, map[string]any{"rows": rows}, func() {
				fmt.Fprint(cmd.OutOrStdout(), grid.Render(g))
			})
		},
	}
}

func (a *app) canonicalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "canonical <text>",
		Short: "Print the canonical seed string of a grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.decode(args[0])
			if err != nil {
				return err
			}
			r := grid.CanonicalRotation(g)
			seed := grid.Encode(grid.Rotate(g, r))
			a.logger.Debug("canonicalised", zap.Int("rotation", int(r)))

			return a.emit(cmd, map[string]any{"rotation": int(r), "seed": seed}, func() {
				fmt.Fprintln(cmd.OutOrStdout(), seed)
			})
		},
	}
}

func (a *app) idCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "id <text>...",
		Short: "Derive the key id of one or more grids",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			grids := make([]grid.Grid, 0, len(args))
			for i, s := range args {
				g, err := a.decode(s)
				if err != nil {
					return fmt.Errorf("argument %d: %w", i+1, err)
				}
				grids = append(grids, g)
			}

			cache := identity.NewCache(identity.SHA256())
			ids, err := cache.AttachAll(cmd.Context(), grids, a.cfg.Workers)
			if err != nil {
				return err
			}
			a.logger.Debug("key ids derived", zap.Int("grids", len(ids)), zap.Int("distinct", cache.Len()))

			type entry struct {
				KeyID string `json:"key_id"`
				Seed  string `json:"seed"`
			}
			out := make([]entry, len(ids))
			for i, id := range ids {
				out[i] = entry{KeyID: id.KeyID(), Seed: id.Seed()}
			}

			return a.emit(cmd, out, func() {
				for _, e := range out {
					fmt.Fprintln(cmd.OutOrStdout(), e.KeyID)
				}
			})
		},
	}
}

func (a *app) numberCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "number <text>",
		Short: "Encode a grid as its numeric form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.decode(args[0])
			if err != nil {
				return err
			}
			n, err := grid.ToNumber(g)
			if err != nil {
				return err
			}

			return a.emit(cmd, map[string]string{"number": n.String()}, func() {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			})
		},
	}
}

func (a *app) fromNumberCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "from-number [--] <n>",
		Short: "Decode a numeric form back to the text form",
		Long: `Decode a base-10 numeric form back to the 75-character text form.

Arguments starting with '-' are read as flags; put "--" before a negative
value to have it checked as a number (it is then rejected as out of range).`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := grid.ParseNumber(strings.TrimSpace(args[0]))
			if err != nil {
				return err
			}
			text := grid.Encode(g)

			return a.emit(cmd, map[string]string{"text": text}, func() {
				fmt.Fprintln(cmd.OutOrStdout(), text)
			})
		},
	}
}

func (a *app) compareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <original> <backup>",
		Short: "Check a backup against the original in any rotation",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			original, err := a.decode(args[0])
			if err != nil {
				return fmt.Errorf("original: %w", err)
			}
			// A miscopied backup may repeat a letter, so only its symbols are checked.
			backup, err := grid.DecodeWith(strings.TrimSpace(args[1]), grid.WithUnknownOrientation())
			if err != nil {
				return fmt.Errorf("backup: %w", err)
			}

			res := compare.Compare(original, backup)
			a.logger.Info("backup compared",
				zap.Int("rotation", int(res.Rotation)),
				zap.Int("mismatches", len(res.Mismatches)))

			type mismatch struct {
				Position int      `json:"position"`
				Fields   []string `json:"fields"`
				Want     string   `json:"want"`
				Got      string   `json:"got"`
			}
			mm := make([]mismatch, len(res.Mismatches))
			for i, m := range res.Mismatches {
				mm[i] = mismatch{Position: m.Position, Fields: m.Fields.Names(), Want: m.Want.String(), Got: m.Got.String()}
			}
			if err := a.emit(cmd, map[string]any{"rotation": int(res.Rotation), "mismatches": mm}, func() {
				if res.Perfect() {
					fmt.Fprintf(cmd.OutOrStdout(), "perfect backup (rotation %d)\n", res.Rotation)

					return
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%d mismatches (rotation %d)\n", len(res.Mismatches), res.Rotation)
				for _, m := range res.Mismatches {
					fmt.Fprintln(cmd.OutOrStdout(), "  -", m)
				}
			}); err != nil {
				return err
			}
			if !res.Perfect() {
				return fmt.Errorf("%w: %d positions differ", errBackupMismatch, len(res.Mismatches))
			}

			return nil
		},
	}
}

func (a *app) randomCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "random",
		Short: "Print a random grid for testing (never a real key)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := grid.Random(nil)
			if err != nil {
				return err
			}
			a.logger.Warn("random grids are for testing only; do not derive real secrets from them")
			text := grid.Encode(g)

			return a.emit(cmd, map[string]string{"text": text}, func() {
				fmt.Fprintln(cmd.OutOrStdout(), text)
			})
		},
	}
}
