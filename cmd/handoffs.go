package main

import (
	"context"
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/guttosm/mary-storefront/internal/app"
	"github.com/guttosm/mary-storefront/internal/repository"
	"github.com/guttosm/mary-storefront/internal/service"
	"github.com/spf13/cobra"
)

var handoffsFlags struct {
	session string
	since   time.Duration
	limit   int
}

var handoffsCmd = &cobra.Command{
	Use:   "handoffs",
	Short: "List recorded order handoffs",
	Long:  `Lists the orders shoppers handed off to WhatsApp, newest first. Requires MongoDB.`,
	RunE:  runHandoffs,
}

func init() {
	handoffsCmd.Flags().StringVar(&handoffsFlags.session, "session", "", "Only show handoffs of this cart session")
	handoffsCmd.Flags().DurationVar(&handoffsFlags.since, "since", 24*time.Hour, "How far back to look (0 for everything)")
	handoffsCmd.Flags().IntVar(&handoffsFlags.limit, "limit", 20, "Maximum number of handoffs to list")
}

func runHandoffs(cmd *cobra.Command, _ []string) error {
	if !cfg.Database.Enabled {
		return errors.New("MongoDB is disabled; set MONGODB_ENABLED=true")
	}
	db := app.InitializeDatabase(cfg.Database)
	if db == nil {
		return fmt.Errorf("could not connect to MongoDB at %s", cfg.Database.URI)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = db.Close(ctx)
	}()

	opts := repository.HandoffQueryOptions{SessionID: handoffsFlags.session, Limit: handoffsFlags.limit}
	if handoffsFlags.since > 0 {
		since := time.Now().Add(-handoffsFlags.since)
		opts.Since = &since
	}

	docs, total, err := service.NewCheckoutService(nil, db.Handoffs, "").History(cmd.Context(), opts)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "WHEN\tSESSION\tITEMS\tUNITS\tTOTAL")
	for _, d := range docs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n", humanize.Time(d.CreatedAt), d.SessionID, d.Items, d.TotalQuantity, d.Total)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\n%d of %s handoff(s)\n", len(docs), humanize.Comma(total))
	return nil
}
