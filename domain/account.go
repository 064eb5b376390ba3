package domain

// Account is a notification audience member. Groups are service side
// audiences, unrelated to FCM topics.
type Account struct {
	Id      string   `bson:"_id"`
	Groups  []string `bson:"groups"`
	Updated int64    `bson:"updated"`
	Created int64    `bson:"created"`
}
