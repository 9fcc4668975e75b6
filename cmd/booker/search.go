package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"meeting-room-booking/internal/bookingview"
	"meeting-room-booking/pkg/apiclient"
)

// searchFlags are shared by rooms and book.
type searchFlags struct {
	start    string
	duration int
	seats    int
	floor    string
}

func (f *searchFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.start, "start", "", `start time today, e.g. "2:15 PM" (default: next quarter hour)`)
	cmd.Flags().IntVar(&f.duration, "duration", 0, "meeting length in minutes (default 30)")
	cmd.Flags().IntVar(&f.seats, "seats", 0, "minimum seats (default 1)")
	cmd.Flags().StringVar(&f.floor, "floor", "", "only rooms on this floor")
}

// cliNotifier prints view messages.
type cliNotifier struct {
	mu     sync.Mutex
	out    io.Writer
	errors []string
}

func (n *cliNotifier) Success(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintln(n.out, msg)
}

func (n *cliNotifier) Error(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.errors = append(n.errors, msg)
	fmt.Fprintln(n.out, "error:", msg)
}

// openView mounts a booking view and applies the flags. The returned view
// has settled its latest search.
func openView(ctx context.Context, cmd *cobra.Command, f searchFlags, onBooked func(apiclient.Event)) (*bookingview.View, *cliNotifier, error) {
	parser, err := newParser()
	if err != nil {
		return nil, nil, err
	}

	notifier := &cliNotifier{out: cmd.OutOrStdout()}
	v := bookingview.New(bookingview.Config{
		API:      newClient(cmd),
		Parser:   parser,
		Notifier: notifier,
		Logger:   newLogger(),
		OnBooked: onBooked,
	})

	if err := v.Mount(ctx); err != nil {
		return nil, nil, err
	}
	if f.start != "" {
		v.SetStartTime(strings.ToUpper(f.start))
	}
	if f.duration > 0 {
		v.SetDuration(f.duration)
	}
	if f.seats > 0 {
		v.SetSeats(f.seats)
	}
	if f.floor != "" {
		v.SetFloor(f.floor)
	}
	v.Wait()

	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	if len(notifier.errors) > 0 {
		return nil, nil, fmt.Errorf("%s", notifier.errors[len(notifier.errors)-1])
	}
	return v, notifier, nil
}

func printRooms(w io.Writer, s bookingview.State) {
	if s.NoRooms || len(s.Rooms) == 0 {
		fmt.Fprintln(w, bookingview.NoRoomsMessage)
		return
	}
	fmt.Fprintf(w, "Free at %s for %d min, %d+ seats:\n", s.StartTime, s.Duration, s.Seats)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "\tNAME\tSEATS\tFLOOR\tEMAIL")
	for _, r := range s.Rooms {
		mark := ""
		if r.Email == s.Room {
			mark = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n", mark, r.Name, r.Seats, r.Floor, r.Email)
	}
	tw.Flush()
}

func newRoomsCmd() *cobra.Command {
	var f searchFlags

	cmd := &cobra.Command{
		Use:   "rooms",
		Short: "List rooms free for the given time, length and size",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, _, err := openView(cmd.Context(), cmd, f, nil)
			if err != nil {
				return err
			}
			defer v.Close()
			printRooms(cmd.OutOrStdout(), v.Snapshot())
			return nil
		},
	}
	f.register(cmd)
	return cmd
}

func newFloorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "floors",
		Short: "List the floors that have rooms",
		RunE: func(cmd *cobra.Command, args []string) error {
			env := newClient(cmd).GetFloors(cmd.Context())
			if err := envelopeErr(env); err != nil {
				return err
			}
			for _, floor := range env.Data {
				fmt.Fprintln(cmd.OutOrStdout(), floor)
			}
			return nil
		},
	}
}
