package availability

import (
	"cmp"
	"slices"

	"github.com/dhis2-sre/pick-a-date/pkg/model"
)

// ParticipantLevel is the level a participant stated for a date.
type ParticipantLevel struct {
	ParticipantID uint        `json:"participant_id"`
	Name          string      `json:"name"`
	Color         string      `json:"color"`
	IconPath      string      `json:"icon_path"`
	Level         model.Level `json:"level"`
}

// Bucket holds every participant who stated a level for its date.
type Bucket struct {
	Date         model.Day          `json:"date"`
	Participants []ParticipantLevel `json:"participants"`
}

// Aggregate groups the entries by date. Every distinct date yields exactly one bucket and every
// participant appears at most once per bucket. Should a participant have more than one entry for a
// date the most recently updated one wins. Buckets are ordered by date, participants within a
// bucket by id. Entries of participants not given are skipped.
func Aggregate(entries []model.Availability, participants []model.Participant) []Bucket {
	participantsByID := make(map[uint]model.Participant, len(participants))
	for _, participant := range participants {
		participantsByID[participant.ID] = participant
	}

	type key struct {
		date          model.Day
		participantID uint
	}
	latest := make(map[key]model.Availability)
	for _, entry := range entries {
		if _, ok := participantsByID[entry.ParticipantID]; !ok {
			continue
		}
		k := key{entry.Date, entry.ParticipantID}
		if current, ok := latest[k]; ok && !newer(entry, current) {
			continue
		}
		latest[k] = entry
	}

	bucketsByDate := make(map[model.Day]*Bucket)
	for k, entry := range latest {
		bucket, ok := bucketsByDate[k.date]
		if !ok {
			bucket = &Bucket{Date: k.date}
			bucketsByDate[k.date] = bucket
		}
		participant := participantsByID[k.participantID]
		bucket.Participants = append(bucket.Participants, ParticipantLevel{
			ParticipantID: participant.ID,
			Name:          participant.Name,
			Color:         participant.Color,
			IconPath:      participant.IconPath,
			Level:         entry.Level,
		})
	}

	buckets := make([]Bucket, 0, len(bucketsByDate))
	for _, bucket := range bucketsByDate {
		slices.SortFunc(bucket.Participants, func(a, b ParticipantLevel) int {
			return cmp.Compare(a.ParticipantID, b.ParticipantID)
		})
		buckets = append(buckets, *bucket)
	}
	slices.SortFunc(buckets, func(a, b Bucket) int {
		return a.Date.Compare(b.Date)
	})

	return buckets
}

func newer(a, b model.Availability) bool {
	if !a.UpdatedAt.Equal(b.UpdatedAt) {
		return a.UpdatedAt.After(b.UpdatedAt)
	}
	return a.ID > b.ID
}

// AvailableOn returns the participants who are not unavailable on date. Participants without an
// entry for date are not considered available.
func AvailableOn(entries []model.Availability, participants []model.Participant, date model.Day) []model.Participant {
	available := []model.Participant{}
	for _, bucket := range Aggregate(entries, participants) {
		if bucket.Date != date {
			continue
		}
		for _, level := range bucket.Participants {
			if level.Level == model.LevelUnavailable {
				continue
			}
			for _, participant := range participants {
				if participant.ID == level.ParticipantID {
					participant.Dates = nil
					available = append(available, participant)
					break
				}
			}
		}
	}
	return available
}

// Ranking summarizes the levels stated for a date.
type Ranking struct {
	Date        model.Day `json:"date"`
	Available   int       `json:"available"`
	Tentative   int       `json:"tentative"`
	Unavailable int       `json:"unavailable"`
}

// Attending is the number of participants who are not unavailable.
func (r Ranking) Attending() int {
	return r.Available + r.Tentative
}

// Rank orders the dates of the buckets from best to worst. A date is better the more participants
// are not unavailable. Ties are broken by the number of available participants and then by the
// earlier date.
func Rank(buckets []Bucket) []Ranking {
	rankings := make([]Ranking, 0, len(buckets))
	for _, bucket := range buckets {
		ranking := Ranking{Date: bucket.Date}
		for _, participant := range bucket.Participants {
			switch participant.Level {
			case model.LevelAvailable:
				ranking.Available++
			case model.LevelTentative:
				ranking.Tentative++
			case model.LevelUnavailable:
				ranking.Unavailable++
			}
		}
		rankings = append(rankings, ranking)
	}

	slices.SortFunc(rankings, func(a, b Ranking) int {
		if c := cmp.Compare(b.Attending(), a.Attending()); c != 0 {
			return c
		}
		if c := cmp.Compare(b.Available, a.Available); c != 0 {
			return c
		}
		return a.Date.Compare(b.Date)
	})

	return rankings
}
