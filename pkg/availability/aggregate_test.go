package availability

import (
	"testing"
	"time"

	"github.com/dhis2-sre/pick-a-date/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate(t *testing.T) {
	alice := model.Participant{ID: 1, Name: "Alice", Color: "#aa0000", IconPath: model.DefaultIconPath}
	bob := model.Participant{ID: 2, Name: "Bob", Color: "#00bb00", IconPath: model.DefaultIconPath}
	participants := []model.Participant{bob, alice}

	t.Run("OneBucketPerDate", func(t *testing.T) {
		entries := []model.Availability{
			{ID: 1, ParticipantID: 1, Date: day(t, "2024-01-01"), Level: model.LevelAvailable},
			{ID: 2, ParticipantID: 2, Date: day(t, "2024-01-01"), Level: model.LevelUnavailable},
		}

		buckets := Aggregate(entries, participants)

		require.Len(t, buckets, 1)
		assert.Equal(t, "2024-01-01", buckets[0].Date.String())
		assert.Equal(t, []ParticipantLevel{
			{ParticipantID: 1, Name: "Alice", Color: "#aa0000", IconPath: model.DefaultIconPath, Level: model.LevelAvailable},
			{ParticipantID: 2, Name: "Bob", Color: "#00bb00", IconPath: model.DefaultIconPath, Level: model.LevelUnavailable},
		}, buckets[0].Participants)
	})

	t.Run("OrderedByDate", func(t *testing.T) {
		entries := []model.Availability{
			{ID: 1, ParticipantID: 1, Date: day(t, "2024-01-03")},
			{ID: 2, ParticipantID: 2, Date: day(t, "2024-01-01")},
			{ID: 3, ParticipantID: 1, Date: day(t, "2024-01-02")},
			{ID: 4, ParticipantID: 1, Date: day(t, "2024-01-01")},
		}

		buckets := Aggregate(entries, participants)

		require.Len(t, buckets, 3)
		assert.Equal(t, "2024-01-01", buckets[0].Date.String())
		assert.Equal(t, "2024-01-02", buckets[1].Date.String())
		assert.Equal(t, "2024-01-03", buckets[2].Date.String())
		require.Len(t, buckets[0].Participants, 2)
		assert.EqualValues(t, 1, buckets[0].Participants[0].ParticipantID)
		assert.EqualValues(t, 2, buckets[0].Participants[1].ParticipantID)
	})

	t.Run("LatestEntryWins", func(t *testing.T) {
		now := time.Now()
		entries := []model.Availability{
			{ID: 1, ParticipantID: 1, Date: day(t, "2024-01-01"), Level: model.LevelUnavailable, UpdatedAt: now},
			{ID: 2, ParticipantID: 1, Date: day(t, "2024-01-01"), Level: model.LevelTentative, UpdatedAt: now.Add(time.Minute)},
			{ID: 3, ParticipantID: 1, Date: day(t, "2024-01-01"), Level: model.LevelAvailable, UpdatedAt: now.Add(-time.Minute)},
		}

		buckets := Aggregate(entries, participants)

		require.Len(t, buckets, 1)
		require.Len(t, buckets[0].Participants, 1)
		assert.Equal(t, model.LevelTentative, buckets[0].Participants[0].Level)
	})

	t.Run("HigherIdWinsOnEqualUpdate", func(t *testing.T) {
		now := time.Now()
		entries := []model.Availability{
			{ID: 5, ParticipantID: 2, Date: day(t, "2024-01-01"), Level: model.LevelAvailable, UpdatedAt: now},
			{ID: 4, ParticipantID: 2, Date: day(t, "2024-01-01"), Level: model.LevelUnavailable, UpdatedAt: now},
		}

		buckets := Aggregate(entries, participants)

		require.Len(t, buckets, 1)
		require.Len(t, buckets[0].Participants, 1)
		assert.Equal(t, model.LevelAvailable, buckets[0].Participants[0].Level)
	})

	t.Run("UnknownParticipantIsSkipped", func(t *testing.T) {
		entries := []model.Availability{
			{ID: 1, ParticipantID: 99, Date: day(t, "2024-01-01")},
		}

		assert.Empty(t, Aggregate(entries, participants))
	})

	t.Run("NoEntries", func(t *testing.T) {
		buckets := Aggregate(nil, participants)

		assert.NotNil(t, buckets)
		assert.Empty(t, buckets)
	})
}

func TestAvailableOn(t *testing.T) {
	participants := []model.Participant{
		{ID: 1, Name: "P1", Dates: []model.Availability{{ID: 1}}},
		{ID: 2, Name: "P2"},
		{ID: 3, Name: "P3"},
	}
	entries := []model.Availability{
		{ID: 1, ParticipantID: 1, Date: day(t, "2024-01-01"), Level: model.LevelAvailable},
		{ID: 2, ParticipantID: 2, Date: day(t, "2024-01-01"), Level: model.LevelUnavailable},
		{ID: 3, ParticipantID: 3, Date: day(t, "2024-01-01"), Level: model.LevelTentative},
		{ID: 4, ParticipantID: 2, Date: day(t, "2024-01-02"), Level: model.LevelAvailable},
	}

	t.Run("ExcludesUnavailable", func(t *testing.T) {
		available := AvailableOn(entries[:2], participants, day(t, "2024-01-01"))

		require.Len(t, available, 1)
		assert.Equal(t, "P1", available[0].Name)
		assert.Nil(t, available[0].Dates)
	})

	t.Run("IncludesTentative", func(t *testing.T) {
		available := AvailableOn(entries, participants, day(t, "2024-01-01"))

		require.Len(t, available, 2)
		assert.Equal(t, "P1", available[0].Name)
		assert.Equal(t, "P3", available[1].Name)
	})

	t.Run("DateWithoutEntries", func(t *testing.T) {
		available := AvailableOn(entries, participants, day(t, "2024-01-05"))

		assert.NotNil(t, available)
		assert.Empty(t, available)
	})
}

func TestRank(t *testing.T) {
	level := func(id uint, l model.Level) ParticipantLevel {
		return ParticipantLevel{ParticipantID: id, Level: l}
	}

	t.Run("MostAttendingFirst", func(t *testing.T) {
		buckets := []Bucket{
			{Date: day(t, "2024-01-01"), Participants: []ParticipantLevel{level(1, model.LevelAvailable), level(2, model.LevelUnavailable)}},
			{Date: day(t, "2024-01-02"), Participants: []ParticipantLevel{level(1, model.LevelTentative), level(2, model.LevelTentative)}},
		}

		rankings := Rank(buckets)

		require.Len(t, rankings, 2)
		assert.Equal(t, Ranking{Date: day(t, "2024-01-02"), Tentative: 2}, rankings[0])
		assert.Equal(t, Ranking{Date: day(t, "2024-01-01"), Available: 1, Unavailable: 1}, rankings[1])
		assert.Equal(t, 2, rankings[0].Attending())
	})

	t.Run("AvailableBreaksTie", func(t *testing.T) {
		buckets := []Bucket{
			{Date: day(t, "2024-01-01"), Participants: []ParticipantLevel{level(1, model.LevelTentative), level(2, model.LevelTentative)}},
			{Date: day(t, "2024-01-02"), Participants: []ParticipantLevel{level(1, model.LevelAvailable), level(2, model.LevelTentative)}},
		}

		rankings := Rank(buckets)

		assert.Equal(t, "2024-01-02", rankings[0].Date.String())
	})

	t.Run("EarlierDateBreaksTie", func(t *testing.T) {
		buckets := []Bucket{
			{Date: day(t, "2024-01-03"), Participants: []ParticipantLevel{level(1, model.LevelAvailable)}},
			{Date: day(t, "2024-01-02"), Participants: []ParticipantLevel{level(2, model.LevelAvailable)}},
		}

		rankings := Rank(buckets)

		assert.Equal(t, "2024-01-02", rankings[0].Date.String())
		assert.Equal(t, "2024-01-03", rankings[1].Date.String())
	})

	t.Run("NoBuckets", func(t *testing.T) {
		assert.Empty(t, Rank(nil))
	})
}

func day(t *testing.T, s string) model.Day {
	t.Helper()
	d, err := model.ParseDay(s)
	require.NoError(t, err)
	return d
}
