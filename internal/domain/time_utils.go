package domain

import "time"

// OnlyDateTimeLayout - Human-readable date-time layout for chat replies
const OnlyDateTimeLayout = "2006-01-02 15:04:05"

// BangkokTime converts t to the wedding's local timezone
func BangkokTime(t time.Time) time.Time {
	location, err := time.LoadLocation("Asia/Bangkok")
	if err != nil {
		return t
	}
	return t.In(location)
}

// FormatBangkok renders t as a local date-time string for user-facing replies
func FormatBangkok(t time.Time) string {
	return BangkokTime(t).Format(OnlyDateTimeLayout)
}
