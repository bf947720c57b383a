package model

type NotificationResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Href        string `json:"href,omitempty"`
	Time        string `json:"time"`
	Read        bool   `json:"read"`
}

type NotificationSectionResponse struct {
	Day           string                 `json:"day"`
	Notifications []NotificationResponse `json:"data"`
}

type NotificationsResponse struct {
	Sections []NotificationSectionResponse `json:"sections"`
	Unread   int                           `json:"unread"`
}
