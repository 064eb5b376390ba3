package main

import (
	"fmt"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"

	"github.com/anyproto/anytype-fcm-notifier/domain"
	"github.com/anyproto/anytype-fcm-notifier/fcmmessage"
)

type notificationFlags struct {
	title, body, sound, icon, clickAction string
	priority, collapseKey, packageName    string
	topic, condition                      string
	ttl                                   string
	data                                  map[string]string
	contentAvailable, mutableContent      bool
}

func (f *notificationFlags) bind(fs *pflag.FlagSet) {
	fs.StringVar(&f.title, "title", "", "notification title")
	fs.StringVar(&f.body, "body", "", "notification body")
	fs.StringVar(&f.sound, "sound", "", "notification sound")
	fs.StringVar(&f.icon, "icon", "", "notification icon or image url")
	fs.StringVar(&f.clickAction, "click-action", "", "android click action")
	fs.StringVar(&f.priority, "priority", "", "delivery priority: normal or high")
	fs.StringVar(&f.collapseKey, "collapse-key", "", "collapse key")
	fs.StringVar(&f.packageName, "package-name", "", "restricted package name")
	fs.StringVar(&f.topic, "topic", "", "send to topic instead of device tokens")
	fs.StringVar(&f.condition, "condition", "", "topic condition expression")
	fs.StringToStringVar(&f.data, "data", nil, "data payload, key=value")
	fs.StringVar(&f.ttl, "ttl", "", "time to live, seconds or a duration like 1h")
	fs.BoolVar(&f.contentAvailable, "content-available", false, "set the content available flag")
	fs.BoolVar(&f.mutableContent, "mutable-content", false, "set the mutable content flag")
}

// notification builds a notification, optional fields are taken only when their flag was passed.
func (f *notificationFlags) notification(fs *pflag.FlagSet) (n domain.PushNotification, err error) {
	n = domain.PushNotification{
		Title:                 f.title,
		Body:                  f.body,
		Sound:                 f.sound,
		Icon:                  f.icon,
		ClickAction:           f.clickAction,
		CollapseKey:           f.collapseKey,
		RestrictedPackageName: f.packageName,
		Topic:                 f.topic,
		Condition:             f.condition,
	}
	switch fcmmessage.Priority(f.priority) {
	case "", fcmmessage.PriorityNormal, fcmmessage.PriorityHigh:
		n.Priority = f.priority
	default:
		return n, fmt.Errorf("invalid priority %q", f.priority)
	}
	if len(f.data) > 0 {
		n.Data = make(map[string]any, len(f.data))
		for k, v := range f.data {
			n.Data[k] = v
		}
	}
	if fs.Changed("ttl") {
		ttl, err := parseTTL(f.ttl)
		if err != nil {
			return n, err
		}
		n.TimeToLive = &ttl
	}
	if fs.Changed("content-available") {
		n.ContentAvailable = &f.contentAvailable
	}
	if fs.Changed("mutable-content") {
		n.MutableContent = &f.mutableContent
	}
	return n, nil
}

func (f *notificationFlags) hasTarget() bool {
	return f.topic != "" || f.condition != ""
}

func parseTTL(v string) (int, error) {
	secs, err := cast.ToIntE(v)
	if err != nil {
		d, dErr := cast.ToDurationE(v)
		if dErr != nil {
			return 0, fmt.Errorf("invalid ttl %q", v)
		}
		secs = int(d / time.Second)
	}
	if secs < 0 {
		return 0, fmt.Errorf("invalid ttl %q", v)
	}
	return secs, nil
}
