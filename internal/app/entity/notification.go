package entity

import "time"

type NotificationID int64

type Notifications []Notification

type Notification struct {
	ID          NotificationID
	UserID      UserID
	Title       string
	Description string
	Href        string
	Read        bool
	CreatedAt   time.Time
}

type NotificationSections []NotificationSection

type NotificationSection struct {
	Day           string
	Notifications Notifications
}
