package http

import (
	"github.com/gin-gonic/gin"

	"meeting-room-booking/pkg/response"
)

// ListEvents godoc
// @Summary     List room bookings
// @Description Returns the caller's events that book a conference room within the window.
// @Tags        Rooms
// @Produce     json
// @Security    BearerAuth
// @Param       startTime query string true  "Window start (RFC 3339)"
// @Param       endTime   query string true  "Window end (RFC 3339)"
// @Param       timeZone  query string false "IANA timezone of the wall-clock times"
// @Success     200 {object} response.Resp{data=[]eventResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /rooms [GET]
func (h *handler) ListEvents(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	req, err := h.processListEventsReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.Error(c, err)
		return
	}

	events, err := h.uc.ListEvents(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListEvents: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListEventsResp(events))
}

// AvailableRooms godoc
// @Summary     List available rooms
// @Description Returns rooms with enough seats that are free for the whole window, smallest first.
// @Tags        Rooms
// @Produce     json
// @Security    BearerAuth
// @Param       startTime query string true  "Start (RFC 3339)"
// @Param       duration  query int    true  "Duration in minutes"
// @Param       timeZone  query string false "IANA timezone"
// @Param       seats     query int    true  "Minimum seats"
// @Param       floor     query string false "Floor filter"
// @Param       eventId   query string false "Event being moved; its own booking is ignored"
// @Success     200 {object} response.Resp{data=[]roomResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /available-rooms [GET]
func (h *handler) AvailableRooms(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	req, err := h.processAvailableRoomsReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.Error(c, err)
		return
	}

	rooms, err := h.uc.AvailableRooms(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.AvailableRooms: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newRoomsResp(rooms))
}

// HighestSeatCount godoc
// @Summary     Highest seat count
// @Description Returns the capacity of the largest room in the directory.
// @Tags        Rooms
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} response.Resp{data=int}
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /highest-seat-count [GET]
func (h *handler) HighestSeatCount(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	seats, err := h.uc.HighestSeatCount(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.HighestSeatCount: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, seats)
}

// ListFloors godoc
// @Summary     List floors
// @Tags        Rooms
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} response.Resp{data=[]string}
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /floors [GET]
func (h *handler) ListFloors(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	floors, err := h.uc.ListFloors(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListFloors: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, floors)
}

// CreateEvent godoc
// @Summary     Book a room
// @Description Creates an event in the caller's calendar with the room as a resource attendee.
// @Tags        Rooms
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body bookingReq true "Booking"
// @Success     200 {object} response.Resp{data=eventResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Room not found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /room [POST]
func (h *handler) CreateEvent(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	req, err := h.processCreateEventReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.Error(c, err)
		return
	}

	ev, err := h.uc.CreateEvent(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateEvent: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newEventResp(ev))
}

// UpdateEvent godoc
// @Summary     Update a booking
// @Description Replaces the room, time window, title and attendees of an event the caller organizes.
// @Tags        Rooms
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body updateEventReq true "Booking with eventId"
// @Success     200 {object} response.Resp{data=eventResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "Not the organizer"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /room [PUT]
func (h *handler) UpdateEvent(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	req, err := h.processUpdateEventReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.Error(c, err)
		return
	}

	ev, err := h.uc.UpdateEvent(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateEvent: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newEventResp(ev))
}

// DeleteEvent godoc
// @Summary     Cancel a booking
// @Tags        Rooms
// @Produce     json
// @Security    BearerAuth
// @Param       id query string true "Event ID"
// @Success     200 {object} response.Resp{data=deleteResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "Not the organizer"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /room [DELETE]
func (h *handler) DeleteEvent(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	id, err := h.processDeleteEventReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	res, err := h.uc.DeleteEvent(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.DeleteEvent: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDeleteResp(res))
}
