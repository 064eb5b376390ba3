package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownPlatform = errors.New("unknown platform")

type Platform uint8

const (
	PlatformIOS Platform = iota
	PlatformAndroid
)

func (p Platform) String() string {
	switch p {
	case PlatformIOS:
		return "ios"
	case PlatformAndroid:
		return "android"
	}
	return "unknown"
}

func ParsePlatform(s string) (Platform, error) {
	switch strings.ToLower(s) {
	case "ios":
		return PlatformIOS, nil
	case "android":
		return PlatformAndroid, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPlatform, s)
}

type TokenStatus uint8

const (
	TokenStatusValid TokenStatus = iota
	TokenStatusInvalid
)

type Token struct {
	Id        string      `bson:"_id"`
	AccountId string      `bson:"accountId"`
	PeerId    string      `bson:"peerId"`
	Platform  Platform    `bson:"platform"`
	Status    TokenStatus `bson:"status"`
	Created   int64       `bson:"created"`
	Updated   int64       `bson:"updated"`
}
