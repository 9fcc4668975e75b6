package gcalendar

import (
	"context"

	admin "google.golang.org/api/admin/directory/v1"
)

const categoryConferenceRoom = "CONFERENCE_ROOM"

// ListRooms returns every conference room resource of the customer.
// Resources of other categories are skipped.
func (c *Client) ListRooms(ctx context.Context, customer string) ([]Room, error) {
	if customer == "" {
		customer = DefaultCustomer
	}

	var rooms []Room
	err := c.directory.Resources.Calendars.List(customer).
		MaxResults(500).
		Pages(ctx, func(page *admin.CalendarResources) error {
			for _, r := range page.Items {
				if r.ResourceCategory != "" && r.ResourceCategory != categoryConferenceRoom {
					continue
				}
				rooms = append(rooms, Room{
					ID:       r.ResourceId,
					Email:    r.ResourceEmail,
					Name:     r.ResourceName,
					Capacity: int(r.Capacity),
					Floor:    r.FloorName,
					Building: r.BuildingId,
					Category: r.ResourceCategory,
				})
			}
			return nil
		})
	if err != nil {
		return nil, wrap("failed to list room resources", err)
	}
	return rooms, nil
}
