package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/prabhatlnct2008/digipath/internals/features/sessions/model"
	speakerModel "github.com/prabhatlnct2008/digipath/internals/features/speakers/model"
	helper "github.com/prabhatlnct2008/digipath/internals/helpers"
)

const icsTimestampLayout = "20060102T150405"

// GenerateICS renders an RFC 5545 event for the session, with a 15 minute
// display reminder. Lines are CRLF joined as calendar clients expect.
func GenerateICS(session model.SessionModel, speaker speakerModel.SpeakerModel, now time.Time) (string, error) {
	start, err := sessionStart(session)
	if err != nil {
		return "", err
	}
	end := start.Add(time.Duration(session.SessionDurationMinutes) * time.Minute)

	var description strings.Builder
	fmt.Fprintf(&description, "%s\\n\\n", session.SessionSummary)
	fmt.Fprintf(&description, "Abstract: %s\\n\\n", session.SessionAbstract)
	if len(session.SessionObjectives) > 0 {
		description.WriteString("Objectives:\\n")
		for _, objective := range session.SessionObjectives {
			fmt.Fprintf(&description, "- %s\\n", objective)
		}
		description.WriteString("\\n")
	}
	fmt.Fprintf(&description, "Speaker: %s\\n", speaker.SpeakerName)
	fmt.Fprintf(&description, "Designation: %s\\n\\n", speaker.SpeakerDesignation)
	if session.SessionMeetingLink != nil {
		fmt.Fprintf(&description, "Meeting Link: %s\\n", *session.SessionMeetingLink)
	}
	if session.SessionMeetingID != nil {
		fmt.Fprintf(&description, "Meeting ID: %s\\n", *session.SessionMeetingID)
	}
	if session.SessionMeetingPassword != nil {
		fmt.Fprintf(&description, "Password: %s\\n", *session.SessionMeetingPassword)
	}

	location := session.SessionPlatform
	if session.SessionMeetingLink != nil {
		location += " - " + *session.SessionMeetingLink
	}

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//AIIMS Telepathology//Teaching Session//EN",
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
		"BEGIN:VEVENT",
		fmt.Sprintf("UID:%s@aiims-telepathology.edu", session.SessionID),
		fmt.Sprintf("DTSTAMP:%sZ", now.UTC().Format(icsTimestampLayout)),
		fmt.Sprintf("DTSTART:%s", start.Format(icsTimestampLayout)),
		fmt.Sprintf("DTEND:%s", end.Format(icsTimestampLayout)),
		fmt.Sprintf("SUMMARY:%s", session.SessionTitle),
		fmt.Sprintf("DESCRIPTION:%s", description.String()),
		fmt.Sprintf("LOCATION:%s", location),
		"STATUS:CONFIRMED",
		"SEQUENCE:0",
		"BEGIN:VALARM",
		"TRIGGER:-PT15M",
		"ACTION:DISPLAY",
		"DESCRIPTION:Reminder: Session starts in 15 minutes",
		"END:VALARM",
		"END:VEVENT",
		"END:VCALENDAR",
	}
	return strings.Join(lines, "\r\n"), nil
}

// CalendarICS loads the session and its speaker and renders the event.
func (s *SessionService) CalendarICS(session model.SessionModel) (string, error) {
	var speaker speakerModel.SpeakerModel
	if err := s.DB.First(&speaker, "speaker_id = ?", session.SessionSpeakerID).Error; err != nil {
		return "", err
	}
	return GenerateICS(session, speaker, s.now())
}

func sessionStart(session model.SessionModel) (time.Time, error) {
	clock, err := time.Parse(helper.TimeLayout, session.SessionTime)
	if err != nil {
		return time.Time{}, helper.NewValidationError("Invalid session time")
	}
	date := time.Time(session.SessionDate)
	return time.Date(date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), 0, 0, time.UTC), nil
}
