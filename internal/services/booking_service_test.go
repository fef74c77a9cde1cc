package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"scoopo-app/booking-service/internal/models"
	"scoopo-app/booking-service/internal/repository"
)

// --- Mock Mailer ---

type sentMail struct {
	to      string
	subject string
	body    string
}

type mockMailer struct {
	failOwner    bool
	failCustomer bool
	ownerEmail   string
	sent         []sentMail
}

func (m *mockMailer) Send(to, subject, body string) error {
	if m.failOwner && to == m.ownerEmail {
		return errors.New("smtp: owner mailbox unreachable")
	}
	if m.failCustomer && to != m.ownerEmail {
		return errors.New("smtp: customer mailbox unreachable")
	}
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

// --- Mock repository ---

type mockRepo struct {
	repository.MemoryBookingRepository
	createErr error
}

func (m *mockRepo) Create(ctx context.Context, booking *models.Booking) error {
	if m.createErr != nil {
		return m.createErr
	}
	return m.MemoryBookingRepository.Create(ctx, booking)
}

const ownerEmail = "admin@scoopo.com.au"

func newTestService(mailer *mockMailer) (*BookingService, *mockRepo) {
	mailer.ownerEmail = ownerEmail
	repo := &mockRepo{}
	return NewBookingService(repo, mailer, nil, ownerEmail), repo
}

func validRequest() models.BookingRequest {
	return models.BookingRequest{
		Name:      "John Doe",
		Email:     "john@example.com",
		Address:   "123 Example St, Blackburn",
		NumCats:   2,
		Frequency: models.Frequency{Visits: 3},
		Plan:      "Care Plus",
		TimeOfDay: models.TimeMorning,
		Language:  models.LangEnglish,
	}
}

func TestCreateBooking_Success(t *testing.T) {
	mailer := &mockMailer{}
	svc, _ := newTestService(mailer)

	booking, err := svc.CreateBooking(context.Background(), validRequest())
	assert.NoError(t, err)
	assert.NotNil(t, booking)
	assert.Equal(t, models.StatusPending, booking.Status)
	assert.False(t, booking.ID.IsZero())

	// Owner first, customer second.
	assert.Len(t, mailer.sent, 2)
	assert.Equal(t, ownerEmail, mailer.sent[0].to)
	assert.Equal(t, "john@example.com", mailer.sent[1].to)
}

func TestCreateBooking_EmailOnlyAccepted(t *testing.T) {
	mailer := &mockMailer{}
	svc, _ := newTestService(mailer)

	req := validRequest()
	req.Phone = ""
	_, err := svc.CreateBooking(context.Background(), req)
	assert.NoError(t, err)
}

func TestCreateBooking_PhoneOnlySkipsCustomerEmail(t *testing.T) {
	mailer := &mockMailer{}
	svc, _ := newTestService(mailer)

	req := validRequest()
	req.Email = ""
	req.Phone = "0400 000 000"
	_, err := svc.CreateBooking(context.Background(), req)
	assert.NoError(t, err)
	assert.Len(t, mailer.sent, 1)
	assert.Equal(t, ownerEmail, mailer.sent[0].to)
}

func TestCreateBooking_MissingContactRejectedBeforeSideEffects(t *testing.T) {
	mailer := &mockMailer{}
	svc, repo := newTestService(mailer)

	req := validRequest()
	req.Email = ""
	req.Phone = ""
	booking, err := svc.CreateBooking(context.Background(), req)
	assert.Nil(t, booking)

	var verrs models.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
	names := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		names = append(names, fe.Field)
	}
	assert.Contains(t, names, "email")
	assert.Contains(t, names, "phone")

	// No record, no emails.
	stored, _ := repo.List(context.Background())
	assert.Empty(t, stored)
	assert.Empty(t, mailer.sent)
}

func TestCreateBooking_OwnerNotificationFailureFailsRequestButPersists(t *testing.T) {
	mailer := &mockMailer{failOwner: true}
	svc, repo := newTestService(mailer)

	booking, err := svc.CreateBooking(context.Background(), validRequest())
	assert.ErrorIs(t, err, models.ErrOwnerNotification)
	assert.NotNil(t, booking)

	stored, _ := repo.List(context.Background())
	assert.Len(t, stored, 1)
	// Customer confirmation is not attempted once the owner dispatch failed.
	assert.Empty(t, mailer.sent)
}

func TestCreateBooking_CustomerNotificationFailureIsSwallowed(t *testing.T) {
	mailer := &mockMailer{failCustomer: true}
	svc, repo := newTestService(mailer)

	booking, err := svc.CreateBooking(context.Background(), validRequest())
	assert.NoError(t, err)
	assert.NotNil(t, booking)

	stored, _ := repo.List(context.Background())
	assert.Len(t, stored, 1)
	assert.Len(t, mailer.sent, 1)
}

func TestCreateBooking_PersistenceErrorFailsRequest(t *testing.T) {
	mailer := &mockMailer{}
	mailer.ownerEmail = ownerEmail
	repo := &mockRepo{createErr: errors.New("write refused")}
	svc := NewBookingService(repo, mailer, nil, ownerEmail)

	booking, err := svc.CreateBooking(context.Background(), validRequest())
	assert.Error(t, err)
	assert.Nil(t, booking)
	assert.Empty(t, mailer.sent)
}

func TestCreateBooking_IDsNeverRepeat(t *testing.T) {
	mailer := &mockMailer{}
	svc, _ := newTestService(mailer)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		booking, err := svc.CreateBooking(context.Background(), validRequest())
		assert.NoError(t, err)
		id := booking.ID.Hex()
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	mailer := &mockMailer{}
	svc, _ := newTestService(mailer)

	err := svc.UpdateStatus(context.Background(), "abc", models.BookingStatus("archived"))
	var verrs models.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestUpdateStatus_AbsentIDIsNoOp(t *testing.T) {
	mailer := &mockMailer{}
	svc, _ := newTestService(mailer)

	err := svc.UpdateStatus(context.Background(), "64f000000000000000000000", models.StatusContacted)
	assert.NoError(t, err)
}

func TestOwnerNotification_Content(t *testing.T) {
	req := validRequest()
	req.Frequency = models.Frequency{Custom: true}

	body := OwnerNotification(req)
	assert.Contains(t, body, req.Name)
	assert.Contains(t, body, req.Address)
	assert.Contains(t, body, "7次以上 (联系定制)")
	assert.Equal(t, "新预约通知: John Doe", OwnerSubject(req))
}

func TestCustomerConfirmation_FollowsLanguage(t *testing.T) {
	req := validRequest()

	english := CustomerConfirmation(req)
	assert.True(t, strings.HasPrefix(english, "Hi John Doe"))
	assert.Contains(t, english, "3 visits/week")

	req.Language = models.LangChinese
	chinese := CustomerConfirmation(req)
	assert.Contains(t, chinese, "您好 John Doe")
	assert.Contains(t, chinese, "3 次/周")

	assert.Equal(t, "Booking Confirmed - ScooPo Pet Cleaning Service", CustomerSubject(models.LangEnglish))
	assert.Equal(t, "预约确认 - ScooPo 宠物清洁服务", CustomerSubject(models.LangChinese))
}
