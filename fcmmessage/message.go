// Package fcmmessage builds FCM HTTP v1 message payloads.
//
// A Message is filled through chained setters and turned into the wire
// structure by Format. Only the fields that were set appear in the output.
package fcmmessage

type Priority string

const (
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
)

const (
	apnsPriorityHigh   = 10
	apnsPriorityNormal = 5
)

// Message is a single-use builder, it is not safe for concurrent use.
type Message struct {
	to           Recipient
	notification Notification
	data         map[string]any
	priority     Priority
	condition    string
	collapseKey  string

	contentAvailable      *bool
	mutableContent        *bool
	timeToLive            *int
	restrictedPackageName string
}

func New() *Message {
	return &Message{priority: PriorityNormal}
}

func (m *Message) To(recipient Recipient) *Message {
	m.to = recipient
	return m
}

func (m *Message) Recipient() Recipient {
	return m.to
}

func (m *Message) Title(title string) *Message {
	m.notification.Title = &title
	return m
}

func (m *Message) Body(body string) *Message {
	m.notification.Body = &body
	return m
}

// Sound, Icon and ClickAction ignore empty values.
func (m *Message) Sound(sound string) *Message {
	if sound != "" {
		m.notification.Sound = sound
	}
	return m
}

func (m *Message) Icon(icon string) *Message {
	if icon != "" {
		m.notification.Icon = icon
	}
	return m
}

func (m *Message) ClickAction(action string) *Message {
	if action != "" {
		m.notification.ClickAction = action
	}
	return m
}

func (m *Message) Data(data map[string]any) *Message {
	m.data = data
	return m
}

func (m *Message) Priority(priority Priority) *Message {
	m.priority = priority
	return m
}

func (m *Message) Condition(condition string) *Message {
	m.condition = condition
	return m
}

func (m *Message) CollapseKey(key string) *Message {
	m.collapseKey = key
	return m
}

func (m *Message) ContentAvailable(available bool) *Message {
	m.contentAvailable = &available
	return m
}

func (m *Message) MutableContent(mutable bool) *Message {
	m.mutableContent = &mutable
	return m
}

// TimeToLive sets how long, in seconds, FCM keeps the message for an offline device.
func (m *Message) TimeToLive(seconds int) *Message {
	m.timeToLive = &seconds
	return m
}

func (m *Message) RestrictedPackageName(name string) *Message {
	m.restrictedPackageName = name
	return m
}

// Format builds the request body. The message itself is left untouched.
func (m *Message) Format() Envelope {
	p := Payload{
		Android: AndroidConfig{Priority: string(m.priority)},
		APNS:    APNSConfig{Payload: APNSPayload{Aps: Aps{Priority: apnsPriority(m.priority)}}},
	}

	if icon := m.notification.Icon; icon != "" {
		p.Android.Notification = &AndroidNotification{ImageURL: icon}
		p.APNS.FCMOptions = &APNSFCMOptions{Image: icon}
	}

	p.Token = m.to.String()

	if len(m.data) > 0 {
		p.Data = stringifyData(m.data)
	}

	if !m.notification.isZero() {
		n := m.notification
		p.Notification = &n
	}

	p.Condition = m.condition
	p.CollapseKey = m.collapseKey
	p.ContentAvailable = copyPtr(m.contentAvailable)
	p.MutableContent = copyPtr(m.mutableContent)
	p.TimeToLive = copyPtr(m.timeToLive)
	p.RestrictedPackageName = m.restrictedPackageName

	return Envelope{Message: p}
}

func apnsPriority(p Priority) int {
	if p == PriorityHigh {
		return apnsPriorityHigh
	}
	return apnsPriorityNormal
}

func copyPtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
