package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"scoopo-app/booking-service/internal/models"
	"scoopo-app/booking-service/internal/utils"
)

func submission() models.BookingRequest {
	return models.BookingRequest{
		Name:      "John Doe",
		Phone:     "0400 000 000",
		Address:   "123 Example St",
		NumCats:   1,
		Frequency: models.Frequency{Visits: 2},
		Plan:      "Essential",
		Language:  models.LangEnglish,
	}
}

func TestBookingClient_Submit(t *testing.T) {
	var received models.BookingRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/bookings", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	err := NewBookingClient(srv.URL).Submit(context.Background(), submission())
	assert.NoError(t, err)
	assert.Equal(t, "John Doe", received.Name)
	assert.Equal(t, 2, received.Frequency.Visits)
}

func TestBookingClient_ServerFailureIsOpaque(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := NewBookingClient(srv.URL).Submit(context.Background(), submission())
	assert.ErrorIs(t, err, models.ErrSubmissionFailed)
}

func TestBookingClient_TransportFailureIsOpaque(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	err := NewBookingClient(srv.URL).Submit(context.Background(), submission())
	assert.ErrorIs(t, err, models.ErrSubmissionFailed)
}

func TestAdminClient_ListSendsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(utils.AdminTokenHeader) != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode([]models.Booking{})
	}))
	defer srv.Close()

	_, err := NewAdminClient(srv.URL, "secret").List(context.Background())
	assert.NoError(t, err)

	_, err = NewAdminClient(srv.URL, "wrong").List(context.Background())
	assert.Error(t, err)
}

func TestAdminClient_UpdateStatusAndDelete(t *testing.T) {
	var gotMethod, gotPath, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		if r.Body != nil {
			var buf [128]byte
			n, _ := r.Body.Read(buf[:])
			gotBody = string(buf[:n])
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewAdminClient(srv.URL, "secret")

	assert.NoError(t, c.UpdateStatus(context.Background(), "abc123", models.StatusContacted))
	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/api/bookings/abc123", gotPath)
	assert.JSONEq(t, `{"status":"contacted"}`, gotBody)

	assert.NoError(t, c.Delete(context.Background(), "abc123"))
	assert.Equal(t, http.MethodDelete, gotMethod)
}

func TestFilter(t *testing.T) {
	bookings := []models.Booking{
		{BookingRequest: models.BookingRequest{Name: "Alice Zhang", Address: "5 Station St, Box Hill"}},
		{BookingRequest: models.BookingRequest{Name: "Bob Smith", Address: "9 Main Rd, Blackburn"}},
	}

	assert.Len(t, Filter(bookings, ""), 2)
	assert.Len(t, Filter(bookings, "alice"), 1)
	assert.Len(t, Filter(bookings, "BLACKBURN"), 1)
	assert.Len(t, Filter(bookings, "station"), 1)
	assert.Empty(t, Filter(bookings, "melbourne"))
}
