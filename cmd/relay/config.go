package main

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	queueBadger = "badger"
	queueRedis  = "redis"

	membershipPostgres = "postgres"
	membershipMongo    = "mongo"
)

type Config struct {
	LogLevel string `env:"LOG_LEVEL,required=true" validate:"required"`
	Host     string `env:"HOST,default=localhost"`
	Port     int    `env:"PORT,default=8080" validate:"min=1,max=65535"`
	GrpcPort int    `env:"GRPC_PORT,default=9090" validate:"min=1,max=65535"`

	JWTSecret      string `env:"JWT_SECRET,required=true" validate:"required,min=16"`
	JWTIssuer      string `env:"JWT_ISSUER,default=chat-relay"`
	InternalAPIKey string `env:"INTERNAL_API_KEY"`

	QueueBackend   string        `env:"QUEUE_BACKEND,default=badger" validate:"oneof=badger redis"`
	QueueRetention time.Duration `env:"QUEUE_RETENTION,default=168h" validate:"min=1s"`
	BadgerFilepath string        `env:"BADGER_FILEPATH" validate:"required_if=QueueBackend badger"`
	RedisAddr      string        `env:"REDIS_ADDR" validate:"required_if=QueueBackend redis"`
	RedisPassword  string        `env:"REDIS_PASSWORD"`
	RedisDB        int           `env:"REDIS_DB,default=0" validate:"min=0"`

	MembershipBackend string `env:"MEMBERSHIP_BACKEND,default=postgres" validate:"oneof=postgres mongo"`
	PostgresDSN       string `env:"POSTGRES_DSN" validate:"required_if=MembershipBackend postgres"`
	MongoURI          string `env:"MONGO_URI" validate:"required_if=MembershipBackend mongo"`
	MongoDatabase     string `env:"MONGO_DATABASE,default=chat"`

	ConnectionBufferSize int           `env:"CONNECTION_BUFFER_SIZE,default=256" validate:"min=1"`
	PingInterval         time.Duration `env:"PING_INTERVAL,default=25s"`
	PongWait             time.Duration `env:"PONG_WAIT,default=60s" validate:"gtfield=PingInterval"`
	WriteWait            time.Duration `env:"WRITE_WAIT,default=10s"`
	MaxMessageSize       int64         `env:"MAX_MESSAGE_SIZE,default=65536" validate:"min=512"`
	AllowedOrigins       string        `env:"ALLOWED_ORIGINS"`
	SinkTimeout          time.Duration `env:"SINK_TIMEOUT,default=2s"`

	RestartInterval time.Duration `env:"RESTART_INTERVAL,default=5s"`
	MetricInterval  time.Duration `env:"METRIC_INTERVAL,default=1m"`
	SampleInterval  time.Duration `env:"PROCESS_SAMPLE_INTERVAL,default=15s"`
	ProbeInterval   time.Duration `env:"PROBE_INTERVAL,default=10s"`
	ProbeTimeout    time.Duration `env:"PROBE_TIMEOUT,default=2s"`
	DebugPort       int           `env:"DEBUG_PORT,default=8081"`
}

func (c Config) Validate() error {
	return validator.New().Struct(c)
}

// Origins splits ALLOWED_ORIGINS. An empty list accepts every origin.
func (c Config) Origins() []string {
	var origins []string
	for _, origin := range strings.Split(c.AllowedOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
