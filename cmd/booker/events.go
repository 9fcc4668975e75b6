package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"meeting-room-booking/pkg/apiclient"
	"meeting-room-booking/pkg/datemath"
)

func printEvent(w io.Writer, e apiclient.Event, parser *datemath.Parser) {
	if parser == nil {
		parser, _ = newParser()
		if parser == nil {
			parser = datemath.NewLocalParser()
		}
	}
	fmt.Fprintf(w, "Booked %s, %s to %s\n", e.Room, parser.ConvertToLocaleTime(e.Start), parser.ConvertToLocaleTime(e.End))
	fmt.Fprintf(w, "  event: %s\n", e.EventID)
	if e.Meet != "" {
		fmt.Fprintf(w, "  meet:  %s\n", e.Meet)
	}
}

func newEventsCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "events",
		Short: "List your room bookings for a day",
		RunE: func(cmd *cobra.Command, args []string) error {
			parser, err := newParser()
			if err != nil {
				return err
			}
			if date == "" {
				date = parser.Today()
			}
			day, err := time.ParseInLocation(datemath.DateLayout, date, parser.Location())
			if err != nil {
				return fmt.Errorf("invalid --date %q, want YYYY-MM-DD", date)
			}

			start, err := parser.ConvertToRFC3339(date, "12:00 AM")
			if err != nil {
				return err
			}
			end, err := parser.ConvertToRFC3339(day.AddDate(0, 0, 1).Format(datemath.DateLayout), "12:00 AM")
			if err != nil {
				return err
			}

			env := newClient(cmd).GetRooms(cmd.Context(), apiclient.EventsQuery{
				StartTime: start,
				EndTime:   end,
				TimeZone:  parser.TimeZone(),
			})
			if err := envelopeErr(env); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(env.Data) == 0 {
				fmt.Fprintln(out, "No bookings")
				return nil
			}
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "START\tEND\tROOM\tTITLE\tEDITABLE\tID")
			for _, e := range env.Data {
				editable := ""
				if e.IsEditable {
					editable = "yes"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
					parser.ConvertToLocaleTime(e.Start), parser.ConvertToLocaleTime(e.End),
					e.Room, strings.TrimSpace(e.Title), editable, e.EventID)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "day to list, YYYY-MM-DD (default today)")
	return cmd
}

func newCancelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel EVENT_ID",
		Short: "Cancel a booking you organize",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env := newClient(cmd).DeleteEvent(cmd.Context(), args[0])
			if err := envelopeErr(env); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cancelled %s\n", env.Data.EventID)
			return nil
		},
	}
}
