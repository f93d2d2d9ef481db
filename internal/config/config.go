package config // package config loads application configuration from environment variables

import (
	"log"     // log reports configuration errors and halts execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
)

// Config holds all runtime configuration values.  Each field corresponds
// to an environment variable, read once at startup and treated as
// immutable afterwards.  Handlers receive the loaded Config by value and
// never consult the environment mid-request.
type Config struct {
	Env         string // application environment (e.g. "dev", "prod")
	Port        string // HTTP port to listen on
	DBUser      string // database username
	DBPass      string // database password (optional)
	DBHost      string // database host address
	DBPort      string // database port number
	DBName      string // database name
	JWTSecret   string // secret used to sign and verify JWTs (required, no default)
	TokenTTLMin int    // access token time-to-live in minutes
	BcryptCost  int    // bcrypt cost for password hashing

	// Logical table names for the entity stores.  These default to the
	// schema names but can be pointed at per-environment copies.
	OrdersTable       string
	ProductsTable     string
	ReservationsTable string
	SchedulesTable    string
	MoviesTable       string
	UsersTable        string
}

// Load reads configuration values from environment variables and returns
// a Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.  The JWT secret is
// deliberately required: the service refuses to boot with a default
// signing key.
func Load() Config {
	return Config{
		Env:         must("APP_ENV"),      // environment (dev/test/prod)
		Port:        must("APP_PORT"),     // port to bind the HTTP server
		DBUser:      must("DB_USER"),      // database user
		DBPass:      os.Getenv("DB_PASS"), // database password (empty allowed)
		DBHost:      must("DB_HOST"),      // database host
		DBPort:      must("DB_PORT"),      // database port
		DBName:      must("DB_NAME"),      // database name
		JWTSecret:   must("JWT_SECRET"),   // signing secret, never defaulted
		TokenTTLMin: mustInt("TOKEN_TTL_MIN"),
		BcryptCost:  mustInt("BCRYPT_COST"),

		OrdersTable:       orDefault("ORDERS_TABLE", "orders"),
		ProductsTable:     orDefault("PRODUCTS_TABLE", "products"),
		ReservationsTable: orDefault("RESERVATIONS_TABLE", "reservations"),
		SchedulesTable:    orDefault("SCHEDULES_TABLE", "schedules"),
		MoviesTable:       orDefault("MOVIES_TABLE", "movies"),
		UsersTable:        orDefault("USERS_TABLE", "users"),
	}
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// mustInt is like must() but converts the retrieved string into an integer.
func mustInt(key string) int {
	s := must(key)
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}

// orDefault returns the variable's value or def when unset or empty.
func orDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
