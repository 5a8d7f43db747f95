package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/lanscout/internal/app"
	"github.com/MrSnakeDoc/lanscout/internal/domain"
	"github.com/MrSnakeDoc/lanscout/internal/monitor"
)

// ErrServicesOffline is returned by `scan --fail-offline`.
var ErrServicesOffline = errors.New("services offline")

type scanReport struct {
	Status           domain.Snapshot         `json:"status"`
	OfflineDurations domain.OfflineDurations `json:"offline_durations"`
}

func newScanCmd(opts *options) *cobra.Command {
	var (
		asJSON      bool
		failOffline bool
	)

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Probe every service once and print the result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig(cmd, opts)
			if !cmd.Flags().Changed("log-level") {
				cfg.LogLevel = "warn"
			}
			log := newLogger(cfg)
			defer func() { _ = log.Sync() }()

			a, err := app.New(cfg, log)
			if err != nil {
				return err
			}

			st := a.Status(cmd.Context())
			out := cmd.OutOrStdout()
			if asJSON {
				err = writeScanJSON(out, st)
			} else {
				err = writeScanTable(out, a.Services(), st)
			}
			if err != nil {
				return err
			}

			if failOffline {
				if down := len(st.Snapshot) - st.Snapshot.OnlineCount(); down > 0 {
					return fmt.Errorf("%w: %d of %d", ErrServicesOffline, down, len(st.Snapshot))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the same JSON as GET /api/status")
	cmd.Flags().BoolVar(&failOffline, "fail-offline", false, "exit with an error when any service is offline")
	return cmd
}

func writeScanJSON(w io.Writer, st monitor.Status) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(scanReport{
		Status:           st.Snapshot,
		OfflineDurations: st.OfflineDurations,
	})
}

func writeScanTable(w io.Writer, services []*domain.Service, st monitor.Status) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SERVICE\tADDRESS\tSTATUS\tDOMAIN")
	for _, s := range services {
		state := "offline"
		if st.Snapshot[s.Name] {
			state = "online"
		}
		domainName := s.Domain
		if domainName == "" {
			domainName = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", s.Name, s.Addr(), state, domainName)
	}
	fmt.Fprintf(tw, "\n%d of %d online\n", st.Snapshot.OnlineCount(), len(st.Snapshot))
	return tw.Flush()
}
