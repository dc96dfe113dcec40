package services

import (
	"context"
	"math"
	"time"

	"github.com/totomace/VitaZen-sub000/models"
	"github.com/totomace/VitaZen-sub000/repositories"
	"github.com/totomace/VitaZen-sub000/utils"
)

type AnalyticsService struct {
	repos *repositories.Repositories
	loc   *time.Location
}

func NewAnalyticsService(repos *repositories.Repositories, loc *time.Location) *AnalyticsService {
	if loc == nil {
		loc = time.Local
	}
	return &AnalyticsService{repos: repos, loc: loc}
}

// DayBucket is one chart column. Averages cover the day's history records
// that carry the metric; WaterMl is the day's logged total.
type DayBucket struct {
	Date         string  `json:"date"`
	Weekday      string  `json:"weekday"`
	Count        int     `json:"count"`
	AvgWeight    float64 `json:"avg_weight"`
	AvgHeartRate float64 `json:"avg_heart_rate"`
	AvgSteps     float64 `json:"avg_steps"`
	AvgSleep     float64 `json:"avg_sleep_hours"`
	WaterMl      int     `json:"water_ml"`
}

type WeekAverages struct {
	Weight    float64 `json:"weight"`
	HeartRate float64 `json:"heart_rate"`
	Steps     float64 `json:"steps"`
	Sleep     float64 `json:"sleep_hours"`
	WaterMl   float64 `json:"water_ml"`
}

type WeeklyOverview struct {
	WeekStart string       `json:"week_start"`
	WeekEnd   string       `json:"week_end"`
	Days      []DayBucket  `json:"days"`
	Averages  WeekAverages `json:"averages"`
}

// mean ignores zero samples, which stand for "not measured".
type mean struct {
	sum float64
	n   int
}

func (m *mean) add(v float64) {
	if v > 0 {
		m.sum += v
		m.n++
	}
}

func (m mean) value() float64 {
	if m.n == 0 {
		return 0
	}
	return round2(m.sum / float64(m.n))
}

// Weekly groups the Monday-first week containing weekStart into seven day buckets.
func (s *AnalyticsService) Weekly(ctx context.Context, uid string, weekStart time.Time) (*WeeklyOverview, error) {
	from := utils.StartOfWeek(weekStart, s.loc)
	to := from.AddDate(0, 0, 7)

	recs, err := s.repos.HealthHistory.ListBetween(ctx, uid, from, to)
	if err != nil {
		return nil, err
	}
	water, err := s.repos.Water.ListBetween(ctx, uid, from, to)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string][]models.HealthHistory, 7)
	for _, r := range recs {
		key := r.Timestamp.In(s.loc).Format(utils.DateLayout)
		byDay[key] = append(byDay[key], r)
	}
	waterByDay := make(map[string]int, 7)
	for _, w := range water {
		waterByDay[w.Date.In(s.loc).Format(utils.DateLayout)] += w.AmountMl
	}

	out := &WeeklyOverview{
		WeekStart: from.Format(utils.DateLayout),
		WeekEnd:   from.AddDate(0, 0, 6).Format(utils.DateLayout),
		Days:      make([]DayBucket, 0, 7),
	}
	var wkWeight, wkHeart, wkSteps, wkSleep, wkWater mean
	for i := 0; i < 7; i++ {
		d := from.AddDate(0, 0, i)
		key := d.Format(utils.DateLayout)

		var weight, heart, steps, sleep mean
		for _, r := range byDay[key] {
			weight.add(r.Weight)
			heart.add(float64(r.HeartRate))
			steps.add(float64(r.Steps))
			sleep.add(r.SleepHours)
		}
		b := DayBucket{
			Date:         key,
			Weekday:      d.Weekday().String()[:3],
			Count:        len(byDay[key]),
			AvgWeight:    weight.value(),
			AvgHeartRate: heart.value(),
			AvgSteps:     steps.value(),
			AvgSleep:     sleep.value(),
			WaterMl:      waterByDay[key],
		}
		out.Days = append(out.Days, b)

		wkWeight.add(b.AvgWeight)
		wkHeart.add(b.AvgHeartRate)
		wkSteps.add(b.AvgSteps)
		wkSleep.add(b.AvgSleep)
		wkWater.add(float64(b.WaterMl))
	}
	out.Averages = WeekAverages{
		Weight:    wkWeight.value(),
		HeartRate: wkHeart.value(),
		Steps:     wkSteps.value(),
		Sleep:     wkSleep.value(),
		WaterMl:   wkWater.value(),
	}
	return out, nil
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
