package fcmmessage

import "strings"

const topicPrefix = "/topics/"

// Recipient is a message target: a single device token, a list of tokens or a topic.
// The zero value means "not set".
type Recipient struct {
	tokens []string
	set    bool
}

func Token(token string) Recipient {
	return Recipient{tokens: []string{token}, set: true}
}

func Tokens(tokens ...string) Recipient {
	return Recipient{tokens: tokens, set: true}
}

func Topic(name string) Recipient {
	return Token(topicPrefix + name)
}

func (r Recipient) IsSet() bool {
	return r.set
}

// IsEmpty reports whether the recipient addresses nobody.
func (r Recipient) IsEmpty() bool {
	for _, t := range r.tokens {
		if t != "" {
			return false
		}
	}
	return true
}

func (r Recipient) String() string {
	return strings.Join(r.tokens, ",")
}

// TopicName returns the topic of a formatted target, ok is false for device tokens.
func TopicName(target string) (name string, ok bool) {
	return strings.CutPrefix(target, topicPrefix)
}
