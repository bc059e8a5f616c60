package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"chainstay/internal/app"
	"chainstay/internal/domain"
)

type Handlers struct {
	Dir  *app.DirectoryService
	Book *app.BookingService
	Q    *app.QueryService
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Route("/v1", func(m chi.Router) {
		m.Post("/hotel-chains", h.createChain)
		m.Get("/hotel-chains", h.listChains)
		m.Put("/hotel-chains/{name}", h.updateChain)
		m.Delete("/hotel-chains/{name}", h.deleteChain)

		m.Post("/hotels", h.createHotel)
		m.Get("/hotels", h.listHotels)
		m.Put("/hotels/{address}", h.updateHotel)
		m.Delete("/hotels/{address}", h.deleteHotel)

		m.Post("/rooms", h.createRoom)
		m.Get("/rooms", h.listRooms)
		m.Post("/rooms/search", h.searchRooms)
		m.Put("/rooms/{number}/{address}", h.updateRoom)
		m.Delete("/rooms/{number}/{address}", h.deleteRoom)

		m.Post("/employees", h.createEmployee)
		m.Get("/employees", h.listEmployees)
		m.Put("/employees/{ssn}", h.updateEmployee)
		m.Delete("/employees/{ssn}", h.deleteEmployee)

		m.Post("/customers", h.createCustomer)
		m.Get("/customers", h.listCustomers)
		m.Put("/customers/{id}", h.updateCustomer)
		m.Delete("/customers/{id}", h.deleteCustomer)

		m.Post("/bookings", h.createBooking)
		m.Get("/bookings", h.listBookings)
		m.Put("/bookings/{id}", h.updateBooking)
		m.Delete("/bookings/{id}", h.deleteBooking)
		m.Post("/bookings/{id}/convert-to-renting", h.convertBooking)

		m.Post("/rentings", h.createRenting)
		m.Get("/rentings", h.listRentings)
		m.Put("/rentings/{id}", h.updateRenting)
		m.Delete("/rentings/{id}", h.deleteRenting)

		m.Get("/views/available-rooms-per-area", h.availableRoomsPerArea)
		m.Get("/views/hotel-room-capacity", h.hotelRoomCapacity)
	})
}

// ---- response/request plumbing ----

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// writeErr maps the domain taxonomy onto HTTP statuses.
func writeErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeProblem(w, http.StatusBadRequest, "Invalid Request", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, domain.ErrConflict):
		writeProblem(w, http.StatusConflict, "Conflict", err.Error())
	default:
		log.Error().Err(err).Msg("request failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "unexpected error")
	}
}

// decode parses the JSON body into dst; on failure it answers 400 and
// returns false.
func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Request", "malformed JSON body: "+err.Error())
		return false
	}
	return true
}

func pageFrom(r *http.Request) domain.Page {
	var pg domain.Page
	if v := r.URL.Query().Get("limit"); v != "" {
		pg.Limit, _ = strconv.Atoi(v)
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		pg.Offset, _ = strconv.Atoi(v)
	}
	return pg
}

// pathParam returns the unescaped URL parameter (hotel addresses carry
// commas and spaces).
func pathParam(r *http.Request, name string) string {
	v := chi.URLParam(r, name)
	if u, err := url.PathUnescape(v); err == nil {
		return u
	}
	return v
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Request", name+" must be a number")
		return 0, false
	}
	return id, true
}

// ---- hotel chains ----

func (h *Handlers) createChain(w http.ResponseWriter, r *http.Request) {
	var c domain.HotelChain
	if !decode(w, r, &c) {
		return
	}
	if err := h.Dir.CreateChain(r.Context(), c); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *Handlers) listChains(w http.ResponseWriter, r *http.Request) {
	out, err := h.Dir.ListChains(r.Context(), pageFrom(r))
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) updateChain(w http.ResponseWriter, r *http.Request) {
	var p domain.ChainPatch
	if !decode(w, r, &p) {
		return
	}
	out, err := h.Dir.UpdateChain(r.Context(), pathParam(r, "name"), p)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) deleteChain(w http.ResponseWriter, r *http.Request) {
	if err := h.Dir.DeleteChain(r.Context(), pathParam(r, "name")); err != nil {
		writeErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---- hotels ----

func (h *Handlers) createHotel(w http.ResponseWriter, r *http.Request) {
	var ht domain.Hotel
	if !decode(w, r, &ht) {
		return
	}
	if err := h.Dir.CreateHotel(r.Context(), ht); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ht)
}

func (h *Handlers) listHotels(w http.ResponseWriter, r *http.Request) {
	out, err := h.Dir.ListHotels(r.Context(), pageFrom(r))
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) updateHotel(w http.ResponseWriter, r *http.Request) {
	var p domain.HotelPatch
	if !decode(w, r, &p) {
		return
	}
	out, err := h.Dir.UpdateHotel(r.Context(), pathParam(r, "address"), p)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) deleteHotel(w http.ResponseWriter, r *http.Request) {
	if err := h.Dir.DeleteHotel(r.Context(), pathParam(r, "address")); err != nil {
		writeErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---- rooms ----

func (h *Handlers) createRoom(w http.ResponseWriter, r *http.Request) {
	var rm domain.Room
	if !decode(w, r, &rm) {
		return
	}
	if err := h.Dir.CreateRoom(r.Context(), rm); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rm)
}

func (h *Handlers) listRooms(w http.ResponseWriter, r *http.Request) {
	out, err := h.Dir.ListRooms(r.Context(), pageFrom(r))
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) searchRooms(w http.ResponseWriter, r *http.Request) {
	var q domain.RoomSearch
	if !decode(w, r, &q) {
		return
	}
	out, err := h.Q.SearchRooms(r.Context(), q)
	if err != nil {
		writeErr(w, err)
		return
	}
	if out == nil {
		out = []domain.Room{}
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) updateRoom(w http.ResponseWriter, r *http.Request) {
	number, ok := pathID(w, r, "number")
	if !ok {
		return
	}
	var p domain.RoomPatch
	if !decode(w, r, &p) {
		return
	}
	out, err := h.Dir.UpdateRoom(r.Context(), number, pathParam(r, "address"), p)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) deleteRoom(w http.ResponseWriter, r *http.Request) {
	number, ok := pathID(w, r, "number")
	if !ok {
		return
	}
	if err := h.Dir.DeleteRoom(r.Context(), number, pathParam(r, "address")); err != nil {
		writeErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---- employees ----

func (h *Handlers) createEmployee(w http.ResponseWriter, r *http.Request) {
	var e domain.Employee
	if !decode(w, r, &e) {
		return
	}
	if err := h.Dir.CreateEmployee(r.Context(), e); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, e)
}

func (h *Handlers) listEmployees(w http.ResponseWriter, r *http.Request) {
	out, err := h.Dir.ListEmployees(r.Context(), pageFrom(r))
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) updateEmployee(w http.ResponseWriter, r *http.Request) {
	var p domain.EmployeePatch
	if !decode(w, r, &p) {
		return
	}
	out, err := h.Dir.UpdateEmployee(r.Context(), chi.URLParam(r, "ssn"), p)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) deleteEmployee(w http.ResponseWriter, r *http.Request) {
	if err := h.Dir.DeleteEmployee(r.Context(), chi.URLParam(r, "ssn")); err != nil {
		writeErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---- customers ----

func (h *Handlers) createCustomer(w http.ResponseWriter, r *http.Request) {
	var c domain.Customer
	if !decode(w, r, &c) {
		return
	}
	if err := h.Dir.CreateCustomer(r.Context(), c); err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *Handlers) listCustomers(w http.ResponseWriter, r *http.Request) {
	out, err := h.Dir.ListCustomers(r.Context(), pageFrom(r))
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) updateCustomer(w http.ResponseWriter, r *http.Request) {
	var p domain.CustomerPatch
	if !decode(w, r, &p) {
		return
	}
	out, err := h.Dir.UpdateCustomer(r.Context(), pathParam(r, "id"), p)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) deleteCustomer(w http.ResponseWriter, r *http.Request) {
	if err := h.Dir.DeleteCustomer(r.Context(), pathParam(r, "id")); err != nil {
		writeErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---- bookings ----

func (h *Handlers) createBooking(w http.ResponseWriter, r *http.Request) {
	var b domain.Booking
	if !decode(w, r, &b) {
		return
	}
	out, err := h.Book.CreateBooking(r.Context(), b)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, out)
}

func (h *Handlers) listBookings(w http.ResponseWriter, r *http.Request) {
	out, err := h.Book.ListBookings(r.Context(), pageFrom(r))
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) updateBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var p domain.BookingPatch
	if !decode(w, r, &p) {
		return
	}
	out, err := h.Book.UpdateBooking(r.Context(), id, p)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) deleteBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.Book.DeleteBooking(r.Context(), id); err != nil {
		writeErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) convertBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req struct {
		PaymentInfo string `json:"payment_info"`
		EmployeeSSN string `json:"employee_ssn"`
	}
	if !decode(w, r, &req) {
		return
	}
	out, err := h.Book.ConvertToRenting(r.Context(), id, req.PaymentInfo, req.EmployeeSSN)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, out)
}

// ---- rentings ----

func (h *Handlers) createRenting(w http.ResponseWriter, r *http.Request) {
	var rent domain.Renting
	if !decode(w, r, &rent) {
		return
	}
	out, err := h.Book.CreateRenting(r.Context(), rent)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, out)
}

func (h *Handlers) listRentings(w http.ResponseWriter, r *http.Request) {
	out, err := h.Book.ListRentings(r.Context(), pageFrom(r))
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) updateRenting(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var p domain.RentingPatch
	if !decode(w, r, &p) {
		return
	}
	out, err := h.Book.UpdateRenting(r.Context(), id, p)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) deleteRenting(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.Book.DeleteRenting(r.Context(), id); err != nil {
		writeErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---- reporting views ----

func (h *Handlers) availableRoomsPerArea(w http.ResponseWriter, r *http.Request) {
	out, err := h.Q.AvailableRoomsPerArea(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	if out == nil {
		out = []domain.AreaAvailability{}
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) hotelRoomCapacity(w http.ResponseWriter, r *http.Request) {
	out, err := h.Q.HotelRoomCapacity(r.Context())
	if err != nil {
		writeErr(w, err)
		return
	}
	if out == nil {
		out = []domain.HotelCapacity{}
	}
	writeJSON(w, http.StatusOK, out)
}
