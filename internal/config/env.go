package config

import (
	"os"
	"strings"
	"time"
)

type Env struct {
	AppAddr        string
	GinMode        string
	BackendBaseURL string
	BackendTimeout time.Duration
	SessionSecret  string
	CORSOrigins    []string
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8081"
	}

	baseURL := strings.TrimSpace(os.Getenv("BACKEND_BASE_URL"))
	if baseURL == "" {
		baseURL = "http://localhost:8000/api"
	}

	timeout := 30 * time.Second
	if raw := strings.TrimSpace(os.Getenv("BACKEND_TIMEOUT")); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			timeout = d
		}
	}

	secret := strings.TrimSpace(os.Getenv("SESSION_SECRET"))
	if secret == "" {
		secret = "super-secret-key-change-me"
	}

	origins := []string{}
	if env := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); env != "" {
		for _, o := range strings.Split(env, ",") {
			o = strings.TrimSpace(o)
			if o != "" {
				origins = append(origins, o)
			}
		}
	}
	if len(origins) == 0 {
		origins = []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
			"http://localhost:5173",
			"http://127.0.0.1:5173",
		}
	}

	return Env{
		AppAddr:        appAddr,
		GinMode:        strings.TrimSpace(os.Getenv("GIN_MODE")),
		BackendBaseURL: strings.TrimRight(baseURL, "/"),
		BackendTimeout: timeout,
		SessionSecret:  secret,
		CORSOrigins:    origins,
	}
}
