package delete_booking

// DeletedBooking ID снятой записи
type DeletedBooking struct {
	ID int64 `json:"id"`
}

// DeleteBookingResponse HTTP response model
type DeleteBookingResponse struct {
	Success bool           `json:"success"`
	Deleted DeletedBooking `json:"deleted"`
}
