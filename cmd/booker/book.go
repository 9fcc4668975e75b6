package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"meeting-room-booking/pkg/apiclient"
)

func newBookCmd() *cobra.Command {
	var (
		f         searchFlags
		room      string
		title     string
		meet      bool
		attendees []string
	)

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Book a free room",
		Long: `Searches like "booker rooms" and books the chosen room. Without --room
the smallest free room that fits is booked.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			var booked *apiclient.Event
			v, _, err := openView(ctx, cmd, f, func(e apiclient.Event) { booked = &e })
			if err != nil {
				return err
			}
			defer v.Close()

			if room != "" && !v.SelectRoom(room) {
				printRooms(out, v.Snapshot())
				return fmt.Errorf("room %s is not free at that time", room)
			}
			v.SetTitle(title)
			v.SetCreateConference(meet)
			v.SetAttendees(attendees)

			if v.Snapshot().Room == "" {
				printRooms(out, v.Snapshot())
				return fmt.Errorf("nothing to book")
			}
			if !v.Submit(ctx) {
				v.Wait()
				return fmt.Errorf("booking failed")
			}

			printEvent(out, *booked, nil)
			return nil
		},
	}

	f.register(cmd)
	cmd.Flags().StringVar(&room, "room", "", "room email to book (default: first free room)")
	cmd.Flags().StringVar(&title, "title", "", `event title (default "Meeting Room Booking")`)
	cmd.Flags().BoolVar(&meet, "meet", false, "add a Google Meet link")
	cmd.Flags().StringSliceVar(&attendees, "attendee", nil, "attendee email, repeatable")
	return cmd
}
