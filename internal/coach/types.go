package coach

import (
	"time"
)

const coachDateLayout = "2006-01-02"

// DailyRecord mirrors a row returned by /data/daily_data endpoints.
type DailyRecord struct {
	Date              string  `json:"date"`
	TotalSteps        float64 `json:"totalsteps"`
	TotalDistance     float64 `json:"totaldistance"`
	Calories          float64 `json:"calories"`
	VeryActiveMinutes float64 `json:"veryactiveminutes"`
	TotalSleepMinutes float64 `json:"total_sleep_minutes"`
	WeightKG          float64 `json:"weightkg"`
}

// ParsedDate returns the record date as time.Time when possible.
func (r DailyRecord) ParsedDate() time.Time {
	return parseDate(r.Date)
}

// weekBackResponse mirrors /data/{dataset}/week-back.
type weekBackResponse struct {
	AvailableData []DailyRecord `json:"available_data"`
}

// SleepRecord mirrors a row of /data/daily_data/sleep-week-back.
type SleepRecord struct {
	Date              string  `json:"date"`
	TotalSleepMinutes float64 `json:"total_sleep_minutes"`
}

// ParsedDate returns the sleep record date as time.Time when possible.
func (r SleepRecord) ParsedDate() time.Time {
	return parseDate(r.Date)
}

type sleepWeekBackResponse struct {
	AvailableSleepData []SleepRecord `json:"available_sleep_data"`
}

// HourlyRecord mirrors a row of /data/hourly_merged/by-date.
type HourlyRecord struct {
	Timestamp string  `json:"timestamp"`
	StepTotal float64 `json:"steptotal"`
	Calories  float64 `json:"calories"`
}

// ParsedTimestamp returns the sample timestamp as time.Time when possible.
func (r HourlyRecord) ParsedTimestamp() time.Time {
	return parseTime(r.Timestamp)
}

type heartRateResponse struct {
	Date            string    `json:"date"`
	HeartRateValues []float64 `json:"heart_rate_values"`
}

// Goal mirrors a row of /data/goals/{user_id}.
type Goal struct {
	UserID int     `json:"id"`
	Metric string  `json:"metric"`
	Goal   float64 `json:"goal"`
}

// ConversationSubject describes one entry of the paged conversation list.
type ConversationSubject struct {
	ConversationID string `json:"conversation_id"`
	UserID         string `json:"user_id"`
	Subject        string `json:"subject"`
	FirstMessage   string `json:"first_message"`
	Timestamp      string `json:"timestamp"`
}

// SubjectPage mirrors /data/conversation_subjects/{user_id}.
type SubjectPage struct {
	Conversations []ConversationSubject `json:"conversations"`
	Total         int                   `json:"total"`
	Offset        int                   `json:"offset"`
	Limit         int                   `json:"limit"`
}

// ConversationMessage mirrors a row of /data/conversation_messages/{id}.
type ConversationMessage struct {
	ConversationID string `json:"conversation_id"`
	Sender         string `json:"sender"`
	Message        string `json:"message"`
	Timestamp      string `json:"timestamp"`
}

// FromUser reports whether the message was written by the user.
func (m ConversationMessage) FromUser() bool {
	return m.Sender == "user"
}

// WeightLogEntry is the POST body for /data/weight_log/add.
type WeightLogEntry struct {
	UserID    string  `json:"id"`
	WeightKG  float64 `json:"weightkg"`
	BMI       float64 `json:"bmi"`
	Timestamp string  `json:"timestamp"`
	Date      string  `json:"date"`
}

// ChatRequest is the POST body for /chat/chat.
type ChatRequest struct {
	UserID         string  `json:"user_id"`
	Message        string  `json:"message"`
	ConversationID *string `json:"conversation_id"`
}

// ChatResponse mirrors the /chat/chat reply.
type ChatResponse struct {
	Response       string `json:"response"`
	ConversationID string `json:"conversation_id"`
}

// Recommendation mirrors an entry of /chat/recommendations.
type Recommendation struct {
	Recommendation string `json:"recommendation"`
	Reason         string `json:"reason"`
	Benefit        string `json:"benefit"`
	BasedOn        string `json:"based_on"`
	Metric         string `json:"metric"`
	Question       string `json:"question"`
}

type recommendationsResponse struct {
	Recommendations []Recommendation `json:"recommendations"`
}

// SuggestedQuestion mirrors an entry of /chat/suggested_questions.
type SuggestedQuestion struct {
	Question string `json:"question"`
}

type suggestedQuestionsResponse struct {
	Questions []SuggestedQuestion `json:"questions"`
}

// Detail is the coach-generated insight for a metric and date.
type Detail struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

type detailResponse struct {
	Output Detail `json:"output"`
}

func parseDate(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	if t, err := time.ParseInLocation(coachDateLayout, value, time.Local); err == nil {
		return t
	}
	return parseTime(value)
}

func parseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	if t, err := time.ParseInLocation("2006-01-02 15:04:05", value, time.Local); err == nil {
		return t
	}
	return time.Time{}
}
