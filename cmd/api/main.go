package main

import (
	"expvar"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"reliance/internal/payments"
	"reliance/internal/ratelimiter"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// The frontend lives inside a WordPress theme, so the fallback carries the
// theme path.
const defaultFrontendURL = "https://reliance.orbits-it.com/wp-content/themes/your-theme/react-app"

// defaultAllowedOrigins covers local development plus the production site.
// Override with CORS_ALLOWED_ORIGINS (comma separated).
var defaultAllowedOrigins = []string{
	"http://localhost:5175",
	"http://localhost:3000",
	"https://reliance.orbits-it.com",
	"https://reliance.orbits-it.com/wp-content/themes/your-theme/react-app",
}

// LoadRateLimiterConfig retrieves rate limiter settings from environment variables
func LoadRateLimiterConfig() ratelimiter.Config {
	// Default values
	defaultRequests := 200
	defaultEnabled := false

	// Retrieve request count with error handling
	requestsPerTimeFrame := defaultRequests
	if val, exists := os.LookupEnv("RATELIMITER_REQUESTS_COUNT"); exists {
		if parsedVal, err := strconv.Atoi(val); err == nil {
			requestsPerTimeFrame = parsedVal
		} else {
			fmt.Println("Invalid RATELIMITER_REQUESTS_COUNT, defaulting to", defaultRequests)
		}
	}

	// Retrieve enabled flag with error handling
	enabled := defaultEnabled
	if val, exists := os.LookupEnv("RATE_LIMITER_ENABLED"); exists {
		if parsedVal, err := strconv.ParseBool(val); err == nil {
			enabled = parsedVal
		} else {
			fmt.Println("Invalid RATE_LIMITER_ENABLED, defaulting to", defaultEnabled)
		}
	}

	return ratelimiter.Config{
		RequestsPerTimeFrame: requestsPerTimeFrame,
		TimeFrame:            5 * time.Second,
		Enabled:              enabled,
	}
}

// NewLogger creates a new zap logger with color.
func NewLogger() (*zap.SugaredLogger, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	consoleEncoder := zapcore.NewConsoleEncoder(encoderCfg)
	level := zapcore.InfoLevel

	core := zapcore.NewCore(consoleEncoder, zapcore.NewMultiWriteSyncer(zapcore.AddSync(os.Stdout)), level)

	logger := zap.New(core)

	return logger.Sugar(), nil
}

func allowedOrigins() []string {
	env := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS"))
	if env == "" {
		return defaultAllowedOrigins
	}

	var origins []string
	for _, o := range strings.Split(env, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

var version = "1.0.0"

//	@title			Reliance Checkout API
//	@description	Checkout session gateway for the Reliance moving-service frontend.

//	@contact.name	API Support
//	@contact.email	support@orbits-it.com

//	@BasePath					/
//	@securityDefinitions.basic	BasicAuth

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("no .env file found, relying on the environment")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	frontendURL := os.Getenv("FRONTEND_URL")
	if frontendURL == "" {
		frontendURL = defaultFrontendURL
	}

	cfg := config{
		addr:           ":" + port,
		env:            os.Getenv("ENV"),
		apiURL:         os.Getenv("EXTERNAL_URL"),
		frontendURL:    frontendURL,
		allowedOrigins: allowedOrigins(),
		auth: authConfig{
			basic: basicConfig{
				user: os.Getenv("AUTH_BASIC_USER"),
				pass: os.Getenv("AUTH_BASIC_PASS"),
			},
		},
		rateLimiter: LoadRateLimiterConfig(),
	}

	// Logger
	logger, err := NewLogger()
	if err != nil {
		fmt.Println("Error creating logger:", err)
		return
	}
	defer logger.Sync()

	// The key selects the Stripe account and mode (live vs test). Never log it.
	secretKey := os.Getenv("STRIPE_SECRET_KEY")
	if secretKey == "" {
		logger.Fatal("STRIPE_SECRET_KEY is not set")
	}

	// Stripe substitutes the placeholder with the real session id on redirect.
	gateway := payments.NewStripeAdapter(
		secretKey,
		cfg.frontendURL+"/#/payment-success?session_id={CHECKOUT_SESSION_ID}",
		cfg.frontendURL+"/#/payment-failed",
	)

	// Rate limiter
	rateLimiter := ratelimiter.NewFixedWindowLimiter(
		cfg.rateLimiter.RequestsPerTimeFrame,
		cfg.rateLimiter.TimeFrame,
	)

	app := &application{
		config:      cfg,
		logger:      logger,
		gateway:     gateway,
		rateLimiter: rateLimiter,
	}

	//Metrics collected at /debug/vars
	expvar.NewString("version").Set(version)
	expvar.Publish("goroutines", expvar.Func(func() any {
		return runtime.NumGoroutine()
	}))

	mux := app.mount()

	logger.Fatal(app.run(mux))
}
