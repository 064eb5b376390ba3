package domain

import (
	"github.com/anyproto/anytype-fcm-notifier/channel"
	"github.com/anyproto/anytype-fcm-notifier/fcmmessage"
)

var _ channel.Notification = PushNotification{}

// PushNotification is a serializable notification, suitable for the queue.
// Zero fields are not applied to the message.
type PushNotification struct {
	Title       string         `json:"title,omitempty"`
	Body        string         `json:"body,omitempty"`
	Sound       string         `json:"sound,omitempty"`
	Icon        string         `json:"icon,omitempty"`
	ClickAction string         `json:"clickAction,omitempty"`
	Data        map[string]any `json:"data,omitempty"`
	Priority    string         `json:"priority,omitempty"`

	// Topic and Condition bypass the recipient lookup
	Topic     string `json:"topic,omitempty"`
	Condition string `json:"condition,omitempty"`

	CollapseKey           string `json:"collapseKey,omitempty"`
	ContentAvailable      *bool  `json:"contentAvailable,omitempty"`
	MutableContent        *bool  `json:"mutableContent,omitempty"`
	TimeToLive            *int   `json:"timeToLive,omitempty"`
	RestrictedPackageName string `json:"restrictedPackageName,omitempty"`
}

func (n PushNotification) ToFCM(notifiable channel.Notifiable) *fcmmessage.Message {
	msg := fcmmessage.New().
		Sound(n.Sound).
		Icon(n.Icon).
		ClickAction(n.ClickAction).
		Condition(n.Condition).
		CollapseKey(n.CollapseKey).
		RestrictedPackageName(n.RestrictedPackageName)
	if n.Title != "" {
		msg.Title(n.Title)
	}
	if n.Body != "" {
		msg.Body(n.Body)
	}
	if len(n.Data) > 0 {
		msg.Data(n.Data)
	}
	if n.Priority != "" {
		msg.Priority(fcmmessage.Priority(n.Priority))
	}
	if n.Topic != "" {
		msg.To(fcmmessage.Topic(n.Topic))
	} else if n.Condition != "" {
		// a condition alone is a complete target
		msg.To(fcmmessage.Token(""))
	}
	if n.ContentAvailable != nil {
		msg.ContentAvailable(*n.ContentAvailable)
	}
	if n.MutableContent != nil {
		msg.MutableContent(*n.MutableContent)
	}
	if n.TimeToLive != nil {
		msg.TimeToLive(*n.TimeToLive)
	}
	return msg
}
