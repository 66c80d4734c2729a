package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	ucAvailability "github.com/BruksfildServices01/salon-scheduler/internal/usecase/availability"
)

// ======================================================
// HANDLER
// ======================================================

type AvailabilityHandler struct {
	getWeek     *ucAvailability.GetWeek
	saveWeek    *ucAvailability.SaveWeek
	addSlot     *ucAvailability.AddSlot
	deleteSlot  *ucAvailability.DeleteSlot
	moveSlot    *ucAvailability.MoveSlot
	setStatus   *ucAvailability.SetSlotStatus
	getBookable *ucAvailability.GetBookable
}

func NewAvailabilityHandler(
	getWeek *ucAvailability.GetWeek,
	saveWeek *ucAvailability.SaveWeek,
	addSlot *ucAvailability.AddSlot,
	deleteSlot *ucAvailability.DeleteSlot,
	moveSlot *ucAvailability.MoveSlot,
	setStatus *ucAvailability.SetSlotStatus,
	getBookable *ucAvailability.GetBookable,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		getWeek:     getWeek,
		saveWeek:    saveWeek,
		addSlot:     addSlot,
		deleteSlot:  deleteSlot,
		moveSlot:    moveSlot,
		setStatus:   setStatus,
		getBookable: getBookable,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type SlotRequest struct {
	Day    string `json:"day" binding:"required,weekday"`
	Time   string `json:"time" binding:"required,hhmm"`
	Status string `json:"status" binding:"omitempty,slot_status"`
}

type SaveWeekRequest struct {
	Slots []SlotRequest `json:"slots" binding:"dive"`
}

type MoveSlotRequest struct {
	Day string `json:"day" binding:"required,weekday"`
}

type SlotStatusRequest struct {
	Status string `json:"status" binding:"required,slot_status"`
}

func (r SlotRequest) input() domain.SlotInput {
	return domain.SlotInput{Day: r.Day, Time: r.Time, Status: r.Status}
}

// ======================================================
// WEEK
// ======================================================

func (h *AvailabilityHandler) Get(c *gin.Context) {
	workerID, ok := uintParam(c, "workerId")
	if !ok {
		return
	}

	week, err := h.getWeek.Execute(c.Request.Context(), workerID, httperr.Lang(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, week)
}

// Save replaces the whole week. An empty slot list clears it.
func (h *AvailabilityHandler) Save(c *gin.Context) {
	workerID, ok := uintParam(c, "workerId")
	if !ok {
		return
	}

	var req SaveWeekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Invalid(c, err)
		return
	}

	in := make([]domain.SlotInput, 0, len(req.Slots))
	for _, s := range req.Slots {
		in = append(in, s.input())
	}

	week, err := h.saveWeek.Execute(c.Request.Context(), workerID, in, httperr.Lang(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, week)
}

// ======================================================
// SINGLE SLOT
// ======================================================

func (h *AvailabilityHandler) AddSlot(c *gin.Context) {
	workerID, ok := uintParam(c, "workerId")
	if !ok {
		return
	}

	var req SlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Invalid(c, err)
		return
	}

	slot, err := h.addSlot.Execute(c.Request.Context(), workerID, req.input())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, slot)
}

func (h *AvailabilityHandler) DeleteSlot(c *gin.Context) {
	workerID, ok := uintParam(c, "workerId")
	if !ok {
		return
	}
	slotID, ok := uintParam(c, "slotId")
	if !ok {
		return
	}

	if err := h.deleteSlot.Execute(c.Request.Context(), workerID, slotID); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.NoContent(c)
}

// MoveSlot recategorizes a slot to another day, as the dashboard does on
// drag and drop.
func (h *AvailabilityHandler) MoveSlot(c *gin.Context) {
	workerID, ok := uintParam(c, "workerId")
	if !ok {
		return
	}
	slotID, ok := uintParam(c, "slotId")
	if !ok {
		return
	}

	var req MoveSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Invalid(c, err)
		return
	}

	slot, err := h.moveSlot.Execute(c.Request.Context(), workerID, slotID, req.Day)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, slot)
}

func (h *AvailabilityHandler) SetStatus(c *gin.Context) {
	workerID, ok := uintParam(c, "workerId")
	if !ok {
		return
	}
	slotID, ok := uintParam(c, "slotId")
	if !ok {
		return
	}

	var req SlotStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Invalid(c, err)
		return
	}

	slot, err := h.setStatus.Execute(c.Request.Context(), workerID, slotID, req.Status)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, slot)
}

// ======================================================
// BOOKABLE
// ======================================================

func (h *AvailabilityHandler) Bookable(c *gin.Context) {
	workerID, ok := uintParam(c, "workerId")
	if !ok {
		return
	}

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date")
		return
	}

	day, err := h.getBookable.Execute(c.Request.Context(), workerID, date, httperr.Lang(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, day)
}
