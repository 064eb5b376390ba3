package config

import (
	"os"

	"github.com/anyproto/any-sync/app"
	"github.com/anyproto/any-sync/app/logger"
	"github.com/anyproto/any-sync/metric"
	"gopkg.in/yaml.v3"

	"github.com/anyproto/anytype-fcm-notifier/channel"
	"github.com/anyproto/anytype-fcm-notifier/db"
	"github.com/anyproto/anytype-fcm-notifier/queue"
	"github.com/anyproto/anytype-fcm-notifier/redisprovider"
)

const CName = "config"

func NewFromFile(path string) (c *Config, err error) {
	c = &Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err = yaml.Unmarshal(data, c); err != nil {
		return nil, err
	}
	return
}

type Config struct {
	Log    logger.Config        `yaml:"log"`
	Metric metric.Config        `yaml:"metric"`
	Mongo  db.Mongo             `yaml:"mongo"`
	Redis  redisprovider.Config `yaml:"redis"`
	Queue  queue.Config         `yaml:"queue"`
	FCM    channel.Config       `yaml:"fcm"`
}

func (c *Config) Init(a *app.App) (err error) {
	return nil
}

func (c *Config) Name() (name string) {
	return CName
}

func (c *Config) GetLog() logger.Config {
	return c.Log
}

func (c *Config) GetMetric() metric.Config {
	return c.Metric
}

func (c *Config) GetMongo() db.Mongo {
	return c.Mongo
}

func (c *Config) GetRedis() redisprovider.Config {
	return c.Redis
}

func (c *Config) GetQueue() queue.Config {
	return c.Queue
}

func (c *Config) GetFCM() channel.Config {
	return c.FCM
}
