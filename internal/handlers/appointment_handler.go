package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/weekday"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	ucAppointment "github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	book         *ucAppointment.BookAppointment
	cancel       *ucAppointment.CancelAppointment
	complete     *ucAppointment.CompleteAppointment
	get          *ucAppointment.GetAppointment
	listByDate   *ucAppointment.ListAppointmentsByDate
	listByMonth  *ucAppointment.ListAppointmentsByMonth
	listByClient *ucAppointment.ListClientAppointments
}

func NewAppointmentHandler(
	book *ucAppointment.BookAppointment,
	cancel *ucAppointment.CancelAppointment,
	complete *ucAppointment.CompleteAppointment,
	get *ucAppointment.GetAppointment,
	listByDate *ucAppointment.ListAppointmentsByDate,
	listByMonth *ucAppointment.ListAppointmentsByMonth,
	listByClient *ucAppointment.ListClientAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		book:         book,
		cancel:       cancel,
		complete:     complete,
		get:          get,
		listByDate:   listByDate,
		listByMonth:  listByMonth,
		listByClient: listByClient,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookAppointmentRequest struct {
	WorkerID uint   `json:"worker_id" binding:"required"`
	SlotID   uint   `json:"slot_id" binding:"required"`
	Date     string `json:"date" binding:"required,date"`
	Notes    string `json:"notes" binding:"max=500"`
}

// ======================================================
// BOOK
// ======================================================

func (h *AppointmentHandler) Book(c *gin.Context) {
	clientID, ok := uintParam(c, "clientId")
	if !ok {
		return
	}

	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Invalid(c, err)
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), ucAppointment.BookAppointmentInput{
		ClientID: clientID,
		WorkerID: req.WorkerID,
		SlotID:   req.SlotID,
		Date:     req.Date,
		Notes:    req.Notes,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, view(c, ap))
}

// ======================================================
// STATE CHANGES
// ======================================================

func (h *AppointmentHandler) CancelByClient(c *gin.Context) {
	h.cancelAs(c, "clientId", func(id uint) ucAppointment.Owner {
		return ucAppointment.Owner{ClientID: id}
	})
}

func (h *AppointmentHandler) CancelByWorker(c *gin.Context) {
	h.cancelAs(c, "workerId", func(id uint) ucAppointment.Owner {
		return ucAppointment.Owner{WorkerID: id}
	})
}

func (h *AppointmentHandler) cancelAs(c *gin.Context, param string, owner func(uint) ucAppointment.Owner) {
	ownerID, ok := uintParam(c, param)
	if !ok {
		return
	}
	appointmentID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), owner(ownerID), appointmentID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, view(c, ap))
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	workerID, ok := uintParam(c, "workerId")
	if !ok {
		return
	}
	appointmentID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	ap, err := h.complete.Execute(c.Request.Context(), workerID, appointmentID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, view(c, ap))
}

// ======================================================
// READ
// ======================================================

func (h *AppointmentHandler) GetForClient(c *gin.Context) {
	h.getAs(c, "clientId", func(id uint) ucAppointment.Owner {
		return ucAppointment.Owner{ClientID: id}
	})
}

func (h *AppointmentHandler) GetForWorker(c *gin.Context) {
	h.getAs(c, "workerId", func(id uint) ucAppointment.Owner {
		return ucAppointment.Owner{WorkerID: id}
	})
}

func (h *AppointmentHandler) getAs(c *gin.Context, param string, owner func(uint) ucAppointment.Owner) {
	ownerID, ok := uintParam(c, param)
	if !ok {
		return
	}
	appointmentID, ok := uintParam(c, "id")
	if !ok {
		return
	}

	out, err := h.get.Execute(c.Request.Context(), owner(ownerID), appointmentID, httperr.Lang(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, out)
}

func (h *AppointmentHandler) ListForClient(c *gin.Context) {
	clientID, ok := uintParam(c, "clientId")
	if !ok {
		return
	}

	out, err := h.listByClient.Execute(c.Request.Context(), clientID, httperr.Lang(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, out)
}

// ListForWorker serves ?date=YYYY-MM-DD or ?year=&month=.
func (h *AppointmentHandler) ListForWorker(c *gin.Context) {
	workerID, ok := uintParam(c, "workerId")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	lang := httperr.Lang(c)

	if date := c.Query("date"); date != "" {
		out, err := h.listByDate.Execute(ctx, workerID, date, lang)
		if err != nil {
			httperr.Respond(c, err)
			return
		}
		httpresp.List(c, out)
		return
	}

	yearStr, monthStr := c.Query("year"), c.Query("month")
	if yearStr == "" || monthStr == "" {
		httperr.BadRequest(c, "missing_date")
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_year")
		return
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_month")
		return
	}

	out, err := h.listByMonth.Execute(ctx, workerID, year, month, lang)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, out)
}

func view(c *gin.Context, ap *models.Appointment) dto.AppointmentListDTO {
	return dto.FromAppointment(*ap, weekday.Day(ap.Slot.Day).Label(httperr.Lang(c)))
}
