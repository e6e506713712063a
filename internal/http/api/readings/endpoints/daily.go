package endpoints

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/biblemind/internal/http/api"
	"github.com/Nixie-Tech-LLC/biblemind/internal/http/api/readings/packets"
	"github.com/Nixie-Tech-LLC/biblemind/internal/http/middleware"
	"github.com/Nixie-Tech-LLC/biblemind/internal/metrics"
	"github.com/Nixie-Tech-LLC/biblemind/internal/reading"
)

type ReadingsController struct {
	service *reading.Service
	metrics *metrics.Metrics
}

func NewReadingsController(service *reading.Service, m *metrics.Metrics) *ReadingsController {
	return &ReadingsController{service: service, metrics: m}
}

// ReadingsModule mounts GET /daily-readings.
func ReadingsModule(service *reading.Service, m *metrics.Metrics) api.Module {
	return api.ModuleFunc(func(c *api.Controller) {
		ctl := NewReadingsController(service, m)
		c.Group.GET("/daily-readings", api.ResolveEndpoint(ctl.dailyReadings))
	})
}

// GET /daily-readings?date=DD-MM-YYYY
func (r *ReadingsController) dailyReadings(c *gin.Context) (any, *api.Error) {
	var query packets.DailyReadingsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		r.metrics.Lookup(metrics.OutcomeInvalidDate)
		return nil, &api.Error{Code: http.StatusBadRequest, Message: reading.InvalidDateFormatMessage}
	}

	result, err := r.service.Lookup(c.Request.Context(), query.Date)
	if err != nil {
		return nil, r.lookupError(c, query.Date, err)
	}

	if result.Matched {
		r.metrics.Lookup(metrics.OutcomeMatched)
	} else {
		r.metrics.Lookup(metrics.OutcomeFallback)
	}
	return result.Record, nil
}

func (r *ReadingsController) lookupError(c *gin.Context, date string, err error) *api.Error {
	if errors.Is(err, reading.ErrInvalidDateFormat) {
		r.metrics.Lookup(metrics.OutcomeInvalidDate)
		return &api.Error{Code: http.StatusBadRequest, Message: reading.InvalidDateFormatMessage}
	}

	var dsErr *reading.DataSourceError
	if errors.As(err, &dsErr) {
		r.metrics.Lookup(metrics.OutcomeSourceError)
		log.Error().Err(err).
			Str("date", date).
			Str("request_id", middleware.GetRequestID(c)).
			Msg("failed to fetch readings dataset")
	} else {
		r.metrics.Lookup(metrics.OutcomeError)
		log.Error().Err(err).
			Str("date", date).
			Str("request_id", middleware.GetRequestID(c)).
			Msg("unexpected error looking up reading")
	}
	return &api.Error{Code: http.StatusInternalServerError, Message: err.Error()}
}
