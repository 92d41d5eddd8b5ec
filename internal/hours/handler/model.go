package handler

import "github.com/wkdev/pacelular-backend/internal/schedule"

type DayRequest struct {
	IsOpen    bool   `json:"isOpen"`
	OpenTime  string `json:"openTime" validate:"required"`
	CloseTime string `json:"closeTime" validate:"required"`
}

// HoursRequest requires all seven days; the schedule is replaced wholesale,
// never patched per day.
type HoursRequest struct {
	Monday    *DayRequest `json:"monday" validate:"required"`
	Tuesday   *DayRequest `json:"tuesday" validate:"required"`
	Wednesday *DayRequest `json:"wednesday" validate:"required"`
	Thursday  *DayRequest `json:"thursday" validate:"required"`
	Friday    *DayRequest `json:"friday" validate:"required"`
	Saturday  *DayRequest `json:"saturday" validate:"required"`
	Sunday    *DayRequest `json:"sunday" validate:"required"`
}

func (hr *HoursRequest) ToDomain() *schedule.BusinessHours {
	toDay := func(d *DayRequest) schedule.BusinessDay {
		return schedule.BusinessDay{
			IsOpen:    d.IsOpen,
			OpenTime:  d.OpenTime,
			CloseTime: d.CloseTime,
		}
	}

	return &schedule.BusinessHours{
		Monday:    toDay(hr.Monday),
		Tuesday:   toDay(hr.Tuesday),
		Wednesday: toDay(hr.Wednesday),
		Thursday:  toDay(hr.Thursday),
		Friday:    toDay(hr.Friday),
		Saturday:  toDay(hr.Saturday),
		Sunday:    toDay(hr.Sunday),
	}
}

type HoursResponse struct {
	Hours schedule.BusinessHours `json:"hours"`
}

type StatusResponse struct {
	IsOpen bool `json:"isOpen"`
}
