package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"medimanager/internal/domain/overview"
	"medimanager/internal/platform/httpclient"
)

type overviewOptions struct {
	server   string
	username string
	password string
	date     string
	timeout  time.Duration
}

func NewOverviewCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &overviewOptions{}

	cmd := &cobra.Command{
		Use:   "overview",
		Short: "Print the day overview from a running server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.username == "" || opts.password == "" {
				return errors.New("--username and --password are required")
			}

			client, err := httpclient.New(opts.server, opts.timeout)
			if err != nil {
				return err
			}

			ov, err := fetchOverview(cmd, client, opts)
			if err != nil {
				return err
			}

			if rootOpts.Format == "json" {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(ov)
			}
			return printOverview(cmd.OutOrStdout(), ov)
		},
	}

	cmd.Flags().StringVar(&opts.server, "server", "http://localhost:8000", "API base URL")
	cmd.Flags().StringVarP(&opts.username, "username", "u", "", "username (required)")
	cmd.Flags().StringVarP(&opts.password, "password", "p", "", "password (required)")
	cmd.Flags().StringVar(&opts.date, "date", "", "day YYYY-MM-DD (default: today UTC)")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", httpclient.DefaultTimeout, "request timeout")

	return cmd
}

func fetchOverview(cmd *cobra.Command, client *httpclient.Client, opts *overviewOptions) (overview.DayOverview, error) {
	ctx := cmd.Context()

	var login struct {
		Token string `json:"token"`
	}
	err := client.DoJSON(ctx, http.MethodPost, "/api/login", map[string]string{
		"username": opts.username,
		"password": opts.password,
	}, &login)
	if err != nil {
		return overview.DayOverview{}, fmt.Errorf("login: %w", err)
	}
	client.Token = login.Token

	// el token no sobrevive al comando
	defer func() { _ = client.DoJSON(ctx, http.MethodPost, "/api/logout", nil, nil) }()

	path := "/api/day-overview"
	if opts.date != "" {
		path += "?date=" + url.QueryEscape(opts.date)
	}

	var ov overview.DayOverview
	if err := client.DoJSON(ctx, http.MethodGet, path, nil, &ov); err != nil {
		return overview.DayOverview{}, fmt.Errorf("day overview: %w", err)
	}
	return ov, nil
}

func printOverview(w io.Writer, ov overview.DayOverview) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %d/%d taken\n", ov.Date, ov.Summary.Taken, ov.Summary.Total)

	for _, m := range ov.PerMedication {
		mark := " "
		if m.TakenToday {
			mark = "x"
		}
		fmt.Fprintf(&b, "[%s] %s %s", mark, m.Name, m.Dosage)
		if len(m.Times) > 0 {
			fmt.Fprintf(&b, "  (%s)", strings.Join(m.Times, ", "))
		}
		b.WriteString("\n")

		for _, in := range m.IntakeEntries {
			status := "skipped"
			if in.Taken {
				status = "taken"
			}
			when := in.Time
			if when == "" {
				when = "--:--"
			}
			fmt.Fprintf(&b, "    %s %s", when, status)
			if in.Notes != "" {
				fmt.Fprintf(&b, "  %s", in.Notes)
			}
			b.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
