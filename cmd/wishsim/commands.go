package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/osse101/WishBot_Go/internal/banner"
	"github.com/osse101/WishBot_Go/internal/config"
	"github.com/osse101/WishBot_Go/internal/database/sqlite"
	"github.com/osse101/WishBot_Go/internal/domain"
	"github.com/osse101/WishBot_Go/internal/gacha"
	"github.com/osse101/WishBot_Go/internal/wish"
)

const (
	defaultTrials = 10000
	defaultPulls  = 90
)

// options are the flags shared by every subcommand
type options struct {
	dbPath    string
	bannerDir string
	seed      uint64
}

// session is an opened store with a service on top
type session struct {
	svc   wish.Service
	close func() error
}

func (o *options) open(ctx context.Context) (*session, error) {
	catalog := banner.NewCatalog()
	var err error
	if o.bannerDir != "" {
		err = catalog.Load(o.bannerDir)
	} else {
		err = catalog.LoadFS(banner.Defaults())
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load banners: %w", err)
	}

	st, err := sqlite.Open(o.dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}

	rng := gacha.DefaultSource()
	if o.seed != 0 {
		rng = gacha.NewSeededSource(o.seed)
	}
	svc := wish.NewService(st, catalog, gacha.NewEngine(rng), wish.DefaultCacheSize, wish.DefaultCacheTTL)

	return &session{
		svc: svc,
		close: func() error {
			_ = svc.Shutdown(ctx)
			return st.Close()
		},
	}, nil
}

// withSession runs fn against a freshly opened session and closes it afterwards
func (o *options) withSession(cmd *cobra.Command, fn func(ctx context.Context, svc wish.Service, out io.Writer) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	s, err := o.open(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := s.close(); cerr != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "failed to close db: %v\n", cerr)
		}
	}()
	return fn(ctx, s.svc, cmd.OutOrStdout())
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:          "wishsim",
		Short:        "Pull on gacha banners and estimate odds locally",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.dbPath, "db", config.DefaultSQLitePath, "SQLite database path")
	rootCmd.PersistentFlags().StringVar(&opts.bannerDir, "banners", "", "directory of banner YAML files (default: built-in banners)")
	rootCmd.PersistentFlags().Uint64Var(&opts.seed, "seed", 0, "seed for a replayable random stream (0: random)")

	rootCmd.AddCommand(newBannersCmd(opts))
	rootCmd.AddCommand(newPullCmd(opts))
	rootCmd.AddCommand(newInfoCmd(opts))
	rootCmd.AddCommand(newHistoryCmd(opts))
	rootCmd.AddCommand(newTargetCmd(opts))
	rootCmd.AddCommand(newSimulateCmd(opts))

	return rootCmd
}

func newBannersCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "banners",
		Short: "List loaded banners",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withSession(cmd, func(ctx context.Context, svc wish.Service, out io.Writer) error {
				tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tTYPE\tACTIVE\tRATE-UP 5\tRATE-UP 4")
				for _, b := range svc.ListBanners(ctx) {
					fmt.Fprintf(tw, "%s\t%s\t%t\t%s\t%s\n", b.ID, b.BannerType, b.Active, joinInts(b.RateUpItems5), joinInts(b.RateUpItems4))
				}
				return tw.Flush()
			})
		},
	}
}

func newPullCmd(opts *options) *cobra.Command {
	var ten bool
	cmd := &cobra.Command{
		Use:   "pull <player> <banner>",
		Short: "Pull once, or ten times with --ten",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			times := gacha.PullsSingle
			if ten {
				times = gacha.PullsTen
			}
			return opts.withSession(cmd, func(ctx context.Context, svc wish.Service, out io.Writer) error {
				res, err := svc.Pull(ctx, args[0], args[1], times)
				if err != nil {
					return err
				}
				for _, it := range res.Items {
					fmt.Fprintf(out, "%s %d\n", stars(it.Rarity), it.ItemID)
				}
				fmt.Fprintf(out, "pity5=%d pity4=%d total=%d\n", res.State.Pity5, res.State.Pity4, res.State.TotalPulls)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&ten, "ten", false, "ten-pull")
	return cmd
}

func newInfoCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "info <player>",
		Short: "Show pity counters for every banner type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withSession(cmd, func(ctx context.Context, svc wish.Service, out io.Writer) error {
				info, err := svc.GetInfo(ctx, args[0])
				if err != nil {
					return err
				}
				tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
				fmt.Fprintln(tw, "TYPE\tPITY5\tPITY4\tTOTAL\tTARGET\tFATE")
				for _, bt := range []domain.BannerType{domain.BannerTypeStandard, domain.BannerTypeCharacter, domain.BannerTypeWeapon} {
					st := gacha.BannerInfo(info, bt)
					fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%d\n", bt, st.Pity5, st.Pity4, st.TotalPulls, st.WishItemID, st.FailedChosenItemPulls)
				}
				return tw.Flush()
			})
		},
	}
}

func newHistoryCmd(opts *options) *cobra.Command {
	var (
		bannerType string
		limit      int
	)
	cmd := &cobra.Command{
		Use:   "history <player>",
		Short: "Show the newest wish records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withSession(cmd, func(ctx context.Context, svc wish.Service, out io.Writer) error {
				records, err := svc.GetHistory(ctx, args[0], domain.BannerType(bannerType), limit)
				if err != nil {
					return err
				}
				for _, r := range records {
					fmt.Fprintf(out, "%s %-10s %s %d\n", r.PulledAt.Format(time.RFC3339), r.BannerID, stars(r.Rarity), r.ItemID)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&bannerType, "type", "", "standard, character or weapon (default: all)")
	cmd.Flags().IntVar(&limit, "limit", wish.DefaultHistoryLimit, "maximum records")
	return cmd
}

func newTargetCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "target <player> <banner> <item>",
		Short: "Set the weapon wish target; item 0 clears it",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			itemID, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid item id %q: %w", args[2], err)
			}
			return opts.withSession(cmd, func(ctx context.Context, svc wish.Service, out io.Writer) error {
				st, err := svc.SetWishTarget(ctx, args[0], args[1], itemID)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "target=%d fate=%d\n", st.WishItemID, st.FailedChosenItemPulls)
				return nil
			})
		},
	}
}

func newSimulateCmd(opts *options) *cobra.Command {
	var params wish.SimulationParams
	cmd := &cobra.Command{
		Use:   "simulate <banner>",
		Short: "Estimate drop rates with a Monte Carlo run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withSession(cmd, func(ctx context.Context, svc wish.Service, out io.Writer) error {
				stats, err := svc.Simulate(ctx, args[0], params, opts.seed)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%d trials x %d pulls\n", stats.Trials, stats.PullsPerTrial)
				tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
				fmt.Fprintln(tw, "METRIC\tMEAN\tSTDDEV\tP50\tP90\tP99")
				writeStats(tw, "5-star", stats.FiveStars)
				writeStats(tw, "featured 5-star", stats.Featured5)
				writeStats(tw, "4-star", stats.FourStars)
				writeStats(tw, "first 5-star at", stats.FirstFiveStar)
				return tw.Flush()
			})
		},
	}
	cmd.Flags().IntVar(&params.Trials, "trials", defaultTrials, "number of independent players")
	cmd.Flags().IntVar(&params.PullsPerTrial, "pulls", defaultPulls, "pulls per player")
	cmd.Flags().IntVar(&params.WishItemID, "wish", 0, "epitomized target for weapon banners")
	return cmd
}

func writeStats(w io.Writer, name string, s wish.Stats) {
	fmt.Fprintf(w, "%s\t%.3f\t%.3f\t%.1f\t%.1f\t%.1f\n", name, s.Mean, s.StdDev, s.P50, s.P90, s.P99)
}

func stars(rarity int) string {
	return strings.Repeat("*", rarity)
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, ",")
}
