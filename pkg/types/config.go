package types

type BackendKind string

const (
	BackendPostgres BackendKind = "postgres"
	BackendSupabase BackendKind = "supabase"
)

type Config struct {
	Environment     string `envconfig:"ENVIRONMENT" default:"development"`
	ServerPort      uint   `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeoutSec  uint   `envconfig:"READ_TIMEOUT_SEC" default:"10"`
	WriteTimeoutSec uint   `envconfig:"WRITE_TIMEOUT_SEC" default:"15"`

	// Which data backend serves charities and accepts suggestions
	Backend BackendKind `envconfig:"BACKEND" default:"postgres"`

	// Postgres
	DatabaseURL      string `envconfig:"DATABASE_URL"`
	DatabaseMaxConns int32  `envconfig:"DATABASE_MAX_CONNS" default:"10"`

	// Supabase (PostgREST)
	SupabaseURL     string `envconfig:"SUPABASE_URL"`
	SupabaseAnonKey string `envconfig:"SUPABASE_ANON_KEY"`

	// Map view
	ReferenceLatitude  float64 `envconfig:"REFERENCE_LATITUDE" default:"51.5074"`
	ReferenceLongitude float64 `envconfig:"REFERENCE_LONGITUDE" default:"-0.1278"`
	MapZoom            int     `envconfig:"MAP_ZOOM" default:"12"`
	TileURL            string  `envconfig:"TILE_URL" default:"https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"`

	// Donation cookie
	CookieName      string `envconfig:"DONATION_COOKIE_NAME" default:"donation"`
	CookieMaxAgeSec int    `envconfig:"DONATION_COOKIE_MAX_AGE_SEC" default:"3600"`

	// Cookie encryption keys (base64 encoded)
	// openssl rand -base64 32
	// to generate values
	CookieHashKey  string `envconfig:"COOKIE_HASH_KEY"`  // 32 or 64 bytes
	CookieBlockKey string `envconfig:"COOKIE_BLOCK_KEY"` // 16, 24, or 32 bytes
}
