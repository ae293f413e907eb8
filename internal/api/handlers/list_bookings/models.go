package list_bookings

import (
	"net/url"

	"github.com/m04kA/SMC-ConsultationService/internal/service/bookings/models"
)

// FromQuery собирает фильтры из query: search, status, from, to
func FromQuery(q url.Values) *models.ListBookingsRequest {
	req := &models.ListBookingsRequest{Search: q.Get("search")}
	if v := q.Get("status"); v != "" {
		req.Status = &v
	}
	if v := q.Get("from"); v != "" {
		req.From = &v
	}
	if v := q.Get("to"); v != "" {
		req.To = &v
	}
	return req
}
