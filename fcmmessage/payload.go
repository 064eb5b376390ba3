package fcmmessage

import "encoding/json"

// Envelope is the body of a POST to the FCM HTTP v1 messages:send endpoint.
type Envelope struct {
	Message Payload `json:"message"`
}

func (e Envelope) JSON() ([]byte, error) {
	return json.Marshal(e)
}

type Payload struct {
	Token                 string            `json:"token,omitempty"`
	Condition             string            `json:"condition,omitempty"`
	Data                  map[string]string `json:"data,omitempty"`
	Notification          *Notification     `json:"notification,omitempty"`
	Android               AndroidConfig     `json:"android"`
	APNS                  APNSConfig        `json:"apns"`
	CollapseKey           string            `json:"collapse_key,omitempty"`
	ContentAvailable      *bool             `json:"content_available,omitempty"`
	MutableContent        *bool             `json:"mutable_content,omitempty"`
	TimeToLive            *int              `json:"time_to_live,omitempty"`
	RestrictedPackageName string            `json:"restricted_package_name,omitempty"`
}

// Notification holds only the keys that were explicitly set on the builder.
type Notification struct {
	Title       *string `json:"title,omitempty"`
	Body        *string `json:"body,omitempty"`
	Sound       string  `json:"sound,omitempty"`
	Icon        string  `json:"icon,omitempty"`
	ClickAction string  `json:"click_action,omitempty"`
}

func (n Notification) isZero() bool {
	return n.Title == nil && n.Body == nil && n.Sound == "" && n.Icon == "" && n.ClickAction == ""
}

type AndroidConfig struct {
	Priority     string               `json:"priority"`
	Notification *AndroidNotification `json:"notification,omitempty"`
}

type AndroidNotification struct {
	ImageURL string `json:"imageUrl,omitempty"`
}

type APNSConfig struct {
	Payload    APNSPayload     `json:"payload"`
	FCMOptions *APNSFCMOptions `json:"fcm_options,omitempty"`
}

type APNSPayload struct {
	Aps Aps `json:"aps"`
}

type Aps struct {
	Priority int `json:"priority"`
}

type APNSFCMOptions struct {
	Image string `json:"image,omitempty"`
}
