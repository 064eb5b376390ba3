package channel

const (
	TransportHTTP = "http"
	TransportSDK  = "sdk"
)

const defaultEndpoint = "https://fcm.googleapis.com"

type configSource interface {
	GetFCM() Config
}

type Config struct {
	CredentialsFile string `yaml:"credentialsFile"`
	// Transport is "http" (default) or "sdk" for the Firebase Admin SDK
	Transport string `yaml:"transport"`
	Endpoint  string `yaml:"endpoint"`
}

func (c Config) endpoint() string {
	if c.Endpoint == "" {
		return defaultEndpoint
	}
	return c.Endpoint
}
