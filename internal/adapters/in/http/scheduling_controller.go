package http

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/suchimauz/medcenter-scheduling-service/internal/config"
	"github.com/suchimauz/medcenter-scheduling-service/internal/core/domain"
	"github.com/suchimauz/medcenter-scheduling-service/internal/core/ports/in"
)

type SchedulingController struct {
	useCase in.SchedulingUseCase
	cfg     *config.Config
}

func NewSchedulingController(useCase in.SchedulingUseCase, cfg *config.Config) *SchedulingController {
	return &SchedulingController{
		useCase: useCase,
		cfg:     cfg,
	}
}

func (c *SchedulingController) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")
	api.Use(c.basicAuth())
	{
		api.POST("/specialities", c.addSpecialities)
		api.GET("/specialities", c.getSpecialities)
		api.GET("/specialities/:name/doctors", c.getSpecialists)

		api.POST("/doctors", c.addDoctor)
		api.GET("/doctors/:id", c.getDoctor)
		api.POST("/doctors/:id/schedules", c.addDailySchedule)
		api.GET("/doctors/:id/schedules/:date", c.getDailySchedule)
		api.GET("/doctors/:id/appointments", c.listAppointments)
		api.GET("/doctors/:id/next-appointment", c.nextAppointment)
		api.POST("/doctors/:id/appointments/:appointmentId/complete", c.completeAppointment)

		api.GET("/slots", c.findSlots)

		api.POST("/appointments", c.bookAppointment)
		api.GET("/appointments/:id", c.getAppointment)

		api.PUT("/current-date", c.setCurrentDate)
		api.POST("/reception/accept", c.acceptPatient)

		api.GET("/analytics/show-rate", c.showRate)
		api.GET("/analytics/completeness", c.scheduleCompleteness)
	}
}

type AddSpecialitiesRequest struct {
	Names []string `json:"names" binding:"required,min=1"`
}

type AddDoctorRequest struct {
	ID         string `json:"id" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Surname    string `json:"surname" binding:"required"`
	Speciality string `json:"speciality" binding:"required"`
}

type AddDailyScheduleRequest struct {
	Date            string `json:"date" binding:"required"`
	Start           string `json:"start" binding:"required"`
	End             string `json:"end" binding:"required"`
	DurationMinutes int    `json:"durationMinutes" binding:"required"`
}

type BookAppointmentRequest struct {
	SSN      string `json:"ssn" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Surname  string `json:"surname" binding:"required"`
	DoctorID string `json:"doctorId" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Slot     string `json:"slot" binding:"required"`
}

type SetCurrentDateRequest struct {
	Date string `json:"date" binding:"required"`
}

type AcceptPatientRequest struct {
	SSN string `json:"ssn" binding:"required"`
}

func (c *SchedulingController) addSpecialities(ctx *gin.Context) {
	var req AddSpecialitiesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.useCase.AddSpecialities(ctx.Request.Context(), req.Names...)
	ctx.JSON(http.StatusOK, gin.H{"specialities": c.useCase.GetSpecialities(ctx.Request.Context())})
}

func (c *SchedulingController) getSpecialities(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"specialities": c.useCase.GetSpecialities(ctx.Request.Context())})
}

func (c *SchedulingController) getSpecialists(ctx *gin.Context) {
	names := c.useCase.GetSpecialists(ctx.Request.Context(), ctx.Param("name"))
	ctx.JSON(http.StatusOK, gin.H{"doctors": names})
}

func (c *SchedulingController) addDoctor(ctx *gin.Context) {
	var req AddDoctorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := c.useCase.AddDoctor(ctx.Request.Context(), req.ID, req.Name, req.Surname, req.Speciality); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"id": req.ID})
}

func (c *SchedulingController) getDoctor(ctx *gin.Context) {
	doctor, err := c.useCase.GetDoctor(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, doctor)
}

func (c *SchedulingController) addDailySchedule(ctx *gin.Context) {
	var req AddDailyScheduleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	added, err := c.useCase.AddDailySchedule(ctx.Request.Context(), ctx.Param("id"), req.Date, req.Start, req.End, req.DurationMinutes)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"slotsAdded": added})
}

func (c *SchedulingController) getDailySchedule(ctx *gin.Context) {
	slots, err := c.useCase.GetDailySchedule(ctx.Request.Context(), ctx.Param("id"), ctx.Param("date"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"slots": slots})
}

func (c *SchedulingController) findSlots(ctx *gin.Context) {
	date := ctx.Query("date")
	speciality := ctx.Query("speciality")
	if date == "" || speciality == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "date and speciality query parameters are required"})
		return
	}

	slots := c.useCase.FindSlots(ctx.Request.Context(), date, speciality)
	ctx.JSON(http.StatusOK, gin.H{"slots": slots})
}

func (c *SchedulingController) bookAppointment(ctx *gin.Context) {
	var req BookAppointmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := c.useCase.BookAppointment(ctx.Request.Context(), req.SSN, req.Name, req.Surname, req.DoctorID, req.Date, req.Slot)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"id": id})
}

func (c *SchedulingController) getAppointment(ctx *gin.Context) {
	appointment, err := c.useCase.GetAppointment(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"id":       appointment.ID,
		"doctorId": appointment.DoctorID,
		"ssn":      appointment.SSN,
		"date":     appointment.Date,
		"time":     appointment.StartTime(),
		"slot":     appointment.Slot,
		"status":   appointment.Status,
	})
}

func (c *SchedulingController) listAppointments(ctx *gin.Context) {
	date := ctx.Query("date")
	if date == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
		return
	}

	entries := c.useCase.ListAppointments(ctx.Request.Context(), ctx.Param("id"), date)
	ctx.JSON(http.StatusOK, gin.H{"appointments": entries})
}

func (c *SchedulingController) setCurrentDate(ctx *gin.Context) {
	var req SetCurrentDateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	count := c.useCase.SetCurrentDate(ctx.Request.Context(), req.Date)
	ctx.JSON(http.StatusOK, gin.H{"date": req.Date, "appointments": count})
}

func (c *SchedulingController) acceptPatient(ctx *gin.Context) {
	var req AcceptPatientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := c.useCase.AcceptPatient(ctx.Request.Context(), req.SSN)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"appointmentId": id})
}

func (c *SchedulingController) nextAppointment(ctx *gin.Context) {
	id, err := c.useCase.NextAppointment(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"appointmentId": id})
}

func (c *SchedulingController) completeAppointment(ctx *gin.Context) {
	err := c.useCase.CompleteAppointment(ctx.Request.Context(), ctx.Param("id"), ctx.Param("appointmentId"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": string(domain.AppointmentStatusCompleted)})
}

func (c *SchedulingController) showRate(ctx *gin.Context) {
	doctorID := ctx.Query("doctorId")
	date := ctx.Query("date")
	if doctorID == "" || date == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "doctorId and date query parameters are required"})
		return
	}

	rate, err := c.useCase.ShowRate(ctx.Request.Context(), doctorID, date)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"doctorId": doctorID, "date": date, "showRate": rate})
}

func (c *SchedulingController) scheduleCompleteness(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"completeness": c.useCase.ScheduleCompleteness(ctx.Request.Context())})
}

// respondError транслирует доменные ошибки в HTTP статусы.
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrUnknownDoctor),
		errors.Is(err, domain.ErrUnknownAppointment):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrDoctorMismatch):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidSpeciality),
		errors.Is(err, domain.ErrInvalidTimeRange),
		errors.Is(err, domain.ErrNoSchedule),
		errors.Is(err, domain.ErrSlotNotFound),
		errors.Is(err, domain.ErrCurrentDateNotSet),
		errors.Is(err, domain.ErrNoPatientAppointment),
		errors.Is(err, domain.ErrNoAppointments):
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func (c *SchedulingController) basicAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		username, password, hasAuth := ctx.Request.BasicAuth()
		if !hasAuth {
			ctx.Header("WWW-Authenticate", "Basic realm=Authorization Required")
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		for _, client := range c.cfg.Auth.BasicClients {
			if subtle.ConstantTimeCompare([]byte(username), []byte(client.Username)) == 1 &&
				subtle.ConstantTimeCompare([]byte(password), []byte(client.Password)) == 1 {
				ctx.Next()
				return
			}
		}

		ctx.Header("WWW-Authenticate", "Basic realm=Authorization Required")
		ctx.AbortWithStatus(http.StatusUnauthorized)
	}
}
