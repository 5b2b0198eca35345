package attendance

import (
	"context"
	"fmt"
	"strconv"
	"time"

	attendanceRepo "ritmo/database/repository/attendance"
	"ritmo/models"
	"ritmo/services/schedule"
	"ritmo/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// countTTL bounds staleness of a cached occurrence count. Writes invalidate the
// key, so the TTL only matters for counts mutated outside this service.
const countTTL = 5 * time.Minute

// DefaultAttendanceService implements AttendanceService.
type DefaultAttendanceService struct {
	Repo  attendanceRepo.AttendanceRepository
	Cache *redis.Client
}

func redisKey(eventID, date string) string {
	return utils.AttendanceKeyPrefix + eventID + ":" + date
}

func validOccurrenceDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}

// Attend records a user's RSVP for one occurrence.
func (s *DefaultAttendanceService) Attend(userID, eventID, date string) error {
	if !validOccurrenceDate(date) {
		return NewInvalidDateError(date)
	}

	att := &models.Attendance{
		ID:      uuid.NewString(),
		UserID:  userID,
		EventID: eventID,
		Date:    date,
	}
	if err := s.Repo.Create(att); err != nil {
		return err
	}

	s.invalidate(eventID, date)
	return nil
}

// Unattend removes a user's RSVP for one occurrence.
func (s *DefaultAttendanceService) Unattend(userID, eventID, date string) error {
	if !validOccurrenceDate(date) {
		return NewInvalidDateError(date)
	}

	if err := s.Repo.Delete(userID, eventID, date); err != nil {
		return err
	}

	s.invalidate(eventID, date)
	return nil
}

// invalidate drops the cached count so the next read hits MongoDB. A failed
// delete is only logged: the TTL caps how long the stale count survives.
func (s *DefaultAttendanceService) invalidate(eventID, date string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := s.Cache.Del(ctx, redisKey(eventID, date)).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate attendance count",
			zap.String("eventId", eventID), zap.String("date", date), zap.Error(err))
	}
}

// Count returns the RSVP count for one occurrence, via the cache.
func (s *DefaultAttendanceService) Count(eventID, date string) (int64, error) {
	if !validOccurrenceDate(date) {
		return 0, NewInvalidDateError(date)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	cached, err := s.Cache.Get(ctx, redisKey(eventID, date)).Result()
	if err == nil {
		if count, perr := strconv.ParseInt(cached, 10, 64); perr == nil {
			return count, nil
		}
	} else if err != redis.Nil {
		utils.GetLogger().Warn("attendance count cache read failed", zap.Error(err))
	}

	count, err := s.Repo.Count(eventID, date)
	if err != nil {
		return 0, fmt.Errorf("failed to count attendance: %w", err)
	}

	if err := s.Cache.Set(ctx, redisKey(eventID, date), count, countTTL).Err(); err != nil {
		utils.GetLogger().Warn("attendance count cache write failed", zap.Error(err))
	}
	return count, nil
}

// Counts bulk-resolves counts for a set of occurrences with one MGET; cache
// misses fall back to MongoDB individually.
func (s *DefaultAttendanceService) Counts(occurrences []schedule.Occurrence) (map[string]int64, error) {
	counts := make(map[string]int64, len(occurrences))
	if len(occurrences) == 0 {
		return counts, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	keys := make([]string, 0, len(occurrences))
	for _, occ := range occurrences {
		keys = append(keys, redisKey(occ.SourceID, occ.Date))
	}

	values, err := s.Cache.MGet(ctx, keys...).Result()
	if err != nil {
		utils.GetLogger().Warn("attendance bulk cache read failed", zap.Error(err))
		values = make([]interface{}, len(keys))
	}

	for i, occ := range occurrences {
		if raw, ok := values[i].(string); ok {
			if count, perr := strconv.ParseInt(raw, 10, 64); perr == nil {
				counts[CountKey(occ.SourceID, occ.Date)] = count
				continue
			}
		}

		count, err := s.Count(occ.SourceID, occ.Date)
		if err != nil {
			return nil, err
		}
		counts[CountKey(occ.SourceID, occ.Date)] = count
	}
	return counts, nil
}

// ListForUser returns all of a user's RSVPs.
func (s *DefaultAttendanceService) ListForUser(userID string) ([]models.Attendance, error) {
	return s.Repo.GetByUser(userID)
}
