package participant

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"testing"

	"github.com/dhis2-sre/pick-a-date/internal/errdef"
	"github.com/dhis2-sre/pick-a-date/pkg/model"
	"github.com/dhis2-sre/pick-a-date/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRandomColor(t *testing.T) {
	pattern := regexp.MustCompile(`^#[0-9a-f]{6}$`)
	for range 100 {
		assert.Regexp(t, pattern, randomColor())
	}
}

func TestService_Create(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repository := &mockRepository{}
		repository.
			On("create", mock.AnythingOfType("*model.Participant")).
			Run(func(args mock.Arguments) {
				args.Get(0).(*model.Participant).ID = 7
			}).
			Return(nil)
		events := &mockEventService{}
		events.On("FindWritable", "event-1").Return(&model.Event{ID: "event-1", Active: true}, nil)
		service := newService(repository, events)

		participant, err := service.Create(context.Background(), "event-1", NewParticipant{
			Name:       " Ann ",
			Phone:      "555-0100",
			PostalCode: "0150",
			IsDriver:   true,
		})

		require.NoError(t, err)
		assert.Equal(t, uint(7), participant.ID)
		assert.Equal(t, "event-1", participant.EventID)
		assert.Equal(t, "Ann", participant.Name)
		assert.Equal(t, "555-0100", participant.Phone)
		assert.Equal(t, model.RoleParticipant, participant.Role)
		assert.True(t, participant.IsDriver)
		assert.Equal(t, model.DefaultIconPath, participant.IconPath)
		assert.Equal(t, "#0a0b0c", participant.Color)
		repository.AssertExpectations(t)
	})

	t.Run("Organizer", func(t *testing.T) {
		repository := &mockRepository{}
		repository.On("create", mock.AnythingOfType("*model.Participant")).Return(nil)
		events := &mockEventService{}
		events.On("FindWritable", "event-1").Return(&model.Event{ID: "event-1", Active: true}, nil)
		service := newService(repository, events)

		participant, err := service.Create(context.Background(), "event-1", NewParticipant{Name: "Ann", Phone: "555-0100", Role: model.RoleOrganizer})

		require.NoError(t, err)
		assert.Equal(t, model.RoleOrganizer, participant.Role)
	})

	t.Run("DuplicatePhone", func(t *testing.T) {
		repository := &mockRepository{}
		repository.
			On("create", mock.AnythingOfType("*model.Participant")).
			Return(errdef.NewDuplicated("phone %q already joined the event", "555-0100"))
		events := &mockEventService{}
		events.On("FindWritable", "event-1").Return(&model.Event{ID: "event-1", Active: true}, nil)
		service := newService(repository, events)

		_, err := service.Create(context.Background(), "event-1", NewParticipant{Name: "Ann", Phone: "555-0100"})

		require.Error(t, err)
		assert.True(t, errdef.IsDuplicated(err))
	})

	t.Run("InactiveEvent", func(t *testing.T) {
		repository := &mockRepository{}
		events := &mockEventService{}
		events.On("FindWritable", "event-1").Return(nil, errdef.NewConflict("event is not active"))
		service := newService(repository, events)

		_, err := service.Create(context.Background(), "event-1", NewParticipant{Name: "Ann", Phone: "555-0100"})

		require.Error(t, err)
		assert.True(t, errdef.IsConflict(err))
		repository.AssertNotCalled(t, "create", mock.Anything)
	})

	t.Run("UnknownRole", func(t *testing.T) {
		repository := &mockRepository{}
		events := &mockEventService{}
		service := newService(repository, events)

		_, err := service.Create(context.Background(), "event-1", NewParticipant{Name: "Ann", Phone: "555-0100", Role: "admin"})

		require.Error(t, err)
		assert.True(t, errdef.IsBadRequest(err))
		events.AssertNotCalled(t, "FindWritable", mock.Anything)
	})
}

func TestService_FindByPhone(t *testing.T) {
	repository := &mockRepository{}
	repository.
		On("findByPhone", "event-1", "555-0100").
		Return(&model.Participant{ID: 1, Phone: "555-0100"}, nil)
	repository.
		On("findByPhone", "event-1", "555-0199").
		Return(nil, errdef.NewNotFound("participant with phone %q not found", "555-0199"))
	service := newService(repository, &mockEventService{})

	participant, err := service.FindByPhone(context.Background(), "event-1", "555-0100")
	require.NoError(t, err)
	assert.NotNil(t, participant.Dates)

	_, err = service.FindByPhone(context.Background(), "event-1", "555-0199")
	require.Error(t, err)
	assert.True(t, errdef.IsNotFound(err))
}

func TestService_Update(t *testing.T) {
	name := "Annie"
	isDriver := false

	t.Run("Success", func(t *testing.T) {
		repository := &mockRepository{}
		repository.
			On("find", "event-1", uint(1)).
			Return(&model.Participant{ID: 1, Name: "Ann", PostalCode: "0150", IsDriver: true}, nil)
		repository.
			On("update", mock.AnythingOfType("*model.Participant")).
			Return(nil)
		events := &mockEventService{}
		events.On("FindWritable", "event-1").Return(&model.Event{ID: "event-1", Active: true}, nil)
		service := newService(repository, events)

		participant, err := service.Update(context.Background(), "event-1", 1, ParticipantUpdate{Name: &name, IsDriver: &isDriver})

		require.NoError(t, err)
		assert.Equal(t, "Annie", participant.Name)
		assert.Equal(t, "0150", participant.PostalCode)
		assert.False(t, participant.IsDriver)
		repository.AssertExpectations(t)
	})

	t.Run("ParticipantOfOtherEvent", func(t *testing.T) {
		repository := &mockRepository{}
		repository.
			On("find", "event-1", uint(2)).
			Return(nil, errdef.NewNotFound("participant %d not found", 2))
		events := &mockEventService{}
		events.On("FindWritable", "event-1").Return(&model.Event{ID: "event-1", Active: true}, nil)
		service := newService(repository, events)

		_, err := service.Update(context.Background(), "event-1", 2, ParticipantUpdate{Name: &name})

		require.Error(t, err)
		assert.True(t, errdef.IsNotFound(err))
		repository.AssertNotCalled(t, "update", mock.Anything)
	})
}

func newService(repository participantRepository, events eventService) *service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := NewService(logger, fakeTransactor{}, repository, events)
	s.color = func() string { return "#0a0b0c" }
	return s
}

type fakeTransactor struct{}

func (fakeTransactor) Do(_ context.Context, fn func(uow *storage.UnitOfWork) error) error {
	return fn(&storage.UnitOfWork{})
}

type mockRepository struct{ mock.Mock }

func (m *mockRepository) create(_ *storage.UnitOfWork, participant *model.Participant) error {
	return m.Called(participant).Error(0)
}

func (m *mockRepository) findAll(_ context.Context, eventID string) ([]model.Participant, error) {
	called := m.Called(eventID)
	participants, _ := called.Get(0).([]model.Participant)
	return participants, called.Error(1)
}

func (m *mockRepository) findByPhone(_ context.Context, eventID string, phone string) (*model.Participant, error) {
	called := m.Called(eventID, phone)
	participant, _ := called.Get(0).(*model.Participant)
	return participant, called.Error(1)
}

func (m *mockRepository) find(_ *storage.UnitOfWork, eventID string, id uint) (*model.Participant, error) {
	called := m.Called(eventID, id)
	participant, _ := called.Get(0).(*model.Participant)
	return participant, called.Error(1)
}

func (m *mockRepository) update(_ *storage.UnitOfWork, participant *model.Participant) error {
	return m.Called(participant).Error(0)
}

type mockEventService struct{ mock.Mock }

func (m *mockEventService) FindWritable(_ *storage.UnitOfWork, id string) (*model.Event, error) {
	called := m.Called(id)
	event, _ := called.Get(0).(*model.Event)
	return event, called.Error(1)
}
