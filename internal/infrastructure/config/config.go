package config

import "github.com/kelseyhightower/envconfig"

// Settings holds the console configuration. Values come from the
// environment; main loads a local .env file first when one exists.
type Settings struct {
	Port        int    `envconfig:"PORT" default:"8080"`
	APIBaseURL  string `envconfig:"HABITUS_API_URL" default:"http://localhost:3000/api/v1"`
	SessionFile string `envconfig:"HABITUS_SESSION_FILE" default:".habitus/session.json"`
}

func Load() (Settings, error) {
	var s Settings
	if err := envconfig.Process("", &s); err != nil {
		return Settings{}, err
	}
	return s, nil
}
