package app

import (
	"chancli/internal/comment"
	"chancli/internal/config"
	"chancli/internal/imageboard"
	"chancli/internal/interpreter"
	"chancli/internal/session"
)

// Services holds the collaborators behind the interpreter.
type Services struct {
	Client      *imageboard.Client
	Session     *session.Engine
	Interpreter *interpreter.Interpreter
}

// InitializeServices builds the fetcher, session engine and interpreter
// from the loaded settings.
func InitializeServices(cfg *Config) (*Services, error) {
	settings := cfg.Settings

	userAgent := settings.API.UserAgent
	if userAgent == config.DefaultUserAgent && cfg.Version != "" {
		userAgent += "/" + cfg.Version
	}

	client := imageboard.NewClient(imageboard.ClientConfig{
		BaseURL:           settings.API.BaseURL,
		Timeout:           settings.API.Timeout,
		RetryMax:          settings.API.Retries(),
		RequestsPerSecond: settings.API.RateLimit(),
		UserAgent:         userAgent,
	})

	engine := session.New(session.Config{
		Fetcher:   client,
		Formatter: comment.Formatter{},
		Indent:    settings.UI.IndentWidth(),
		Version:   cfg.Version,
	})

	return &Services{
		Client:      client,
		Session:     engine,
		Interpreter: interpreter.New(engine),
	}, nil
}
