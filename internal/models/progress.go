package models

// DailyProgress is the persisted study record. LastStudyDate is a calendar
// date in time.DateOnly format, empty before the first ever study event.
type DailyProgress struct {
	LastStudyDate  string `json:"lastStudyDate"`
	StudiedToday   int    `json:"studiedToday"`
	ExercisesToday int    `json:"exercisesToday"`
	Streak         int    `json:"streak"`
	TotalStudied   int    `json:"totalStudied"`
}
