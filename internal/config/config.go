package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	CacheTypeMemory = "memory"
	CacheTypeRedis  = "redis"

	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

type Config struct {
	App struct {
		Port      string `mapstructure:"port"`
		Env       string `mapstructure:"env"`
		PublicURL string `mapstructure:"public_url"`
		OwnerName string `mapstructure:"owner_name"`
	} `mapstructure:"app"`
	DB struct {
		DSN         string `mapstructure:"dsn"`
		AutoMigrate bool   `mapstructure:"auto_migrate"`
	} `mapstructure:"db"`
	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	} `mapstructure:"redis"`
	Kafka struct {
		Brokers []string `mapstructure:"brokers"`
		GroupID string   `mapstructure:"group_id"`
	} `mapstructure:"kafka"`
	Auth struct {
		JWTSecret     string        `mapstructure:"jwt_secret"`
		TokenLifespan time.Duration `mapstructure:"token_lifespan"`
		CookieName    string        `mapstructure:"cookie_name"`
		SessionStore  string        `mapstructure:"session_store"`
	} `mapstructure:"auth"`
	Cloudinary struct {
		CloudName string `mapstructure:"cloud_name"`
		ApiKey    string `mapstructure:"api_key"`
		ApiSecret string `mapstructure:"api_secret"`
		Bucket    string `mapstructure:"bucket"`
	} `mapstructure:"cloudinary"`
	Upload struct {
		MaxBytes int64 `mapstructure:"max_bytes"`
	} `mapstructure:"upload"`
	Cache struct {
		Type    string        `mapstructure:"type"`
		TTL     time.Duration `mapstructure:"ttl"`
		RedisDB int           `mapstructure:"redis_db"`
	} `mapstructure:"cache"`
	CORS struct {
		AllowedOrigins []string `mapstructure:"allowed_origins"`
	} `mapstructure:"cors"`
	Mail struct {
		Enabled   bool   `mapstructure:"enabled"`
		SMTPHost  string `mapstructure:"smtp_host"`
		SMTPPort  int    `mapstructure:"smtp_port"`
		Username  string `mapstructure:"username"`
		Password  string `mapstructure:"password"`
		UseTLS    bool   `mapstructure:"use_tls"`
		FromEmail string `mapstructure:"from_email"`
		FromName  string `mapstructure:"from_name"`
		OwnerTo   string `mapstructure:"owner_to"`
	} `mapstructure:"mail"`
	Backup struct {
		Enabled  bool   `mapstructure:"enabled"`
		Schedule string `mapstructure:"schedule"`
		Folder   string `mapstructure:"folder"`
	} `mapstructure:"backup"`
	Jaeger struct {
		OTLPEndpoint string `mapstructure:"otlp_endpoint"`
	} `mapstructure:"jaeger"`
	Web struct {
		DistDir string `mapstructure:"dist_dir"`
	} `mapstructure:"web"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.port", "8080")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.public_url", "http://localhost:8080")
	v.SetDefault("app.owner_name", "Portfolio Owner")
	v.SetDefault("db.auto_migrate", true)
	v.SetDefault("kafka.group_id", "contact-notifier-group")
	v.SetDefault("auth.token_lifespan", 24*time.Hour)
	v.SetDefault("auth.cookie_name", "portfolio_session")
	v.SetDefault("auth.session_store", SessionStoreRedis)
	v.SetDefault("cloudinary.bucket", "portfolio-images")
	v.SetDefault("upload.max_bytes", 5<<20)
	v.SetDefault("cache.type", CacheTypeRedis)
	v.SetDefault("cache.ttl", 5*time.Minute)
	v.SetDefault("cache.redis_db", 1)
	v.SetDefault("mail.smtp_port", 587)
	v.SetDefault("mail.use_tls", true)
	v.SetDefault("mail.from_name", "Portfolio")
	v.SetDefault("backup.schedule", "0 3 * * *")
	v.SetDefault("backup.folder", "backups/database")
	v.SetDefault("web.dist_dir", "./web/dist")
}

// LoadConfig reads .env, then config.yaml from the given paths (default "."). Env vars win.
func LoadConfig(paths ...string) (cfg Config, err error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	envFiles := make([]string, 0, len(paths))
	for _, p := range paths {
		envFiles = append(envFiles, strings.TrimSuffix(p, "/")+"/.env")
	}
	if err = godotenv.Load(envFiles...); err != nil {
		log.Println("warning: .env file not found, use default.")
	}

	v := viper.New()
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if err = v.ReadInConfig(); err != nil {
		log.Printf("note: config.yaml not found, read .env only. Error: %v", err)
	}

	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.BindEnv("app.port", "APP_PORT")
	v.BindEnv("app.env", "APP_ENV")
	v.BindEnv("app.public_url", "APP_PUBLIC_URL")
	v.BindEnv("app.owner_name", "APP_OWNER_NAME")
	v.BindEnv("db.dsn", "DB_DSN")
	v.BindEnv("db.auto_migrate", "DB_AUTO_MIGRATE")
	v.BindEnv("redis.addr", "REDIS_ADDR")
	v.BindEnv("redis.password", "REDIS_PASSWORD")
	v.BindEnv("redis.db", "REDIS_DB")
	v.BindEnv("kafka.brokers", "KAFKA_BROKERS")
	v.BindEnv("kafka.group_id", "KAFKA_GROUP_ID")
	v.BindEnv("auth.jwt_secret", "JWT_SECRET")
	v.BindEnv("auth.token_lifespan", "TOKEN_LIFESPAN")
	v.BindEnv("auth.cookie_name", "AUTH_COOKIE_NAME")
	v.BindEnv("auth.session_store", "SESSION_STORE")

	v.BindEnv("cloudinary.cloud_name", "CLOUDINARY_CLOUD_NAME")
	v.BindEnv("cloudinary.api_key", "CLOUDINARY_API_KEY")
	v.BindEnv("cloudinary.api_secret", "CLOUDINARY_API_SECRET")
	v.BindEnv("cloudinary.bucket", "CLOUDINARY_BUCKET")

	v.BindEnv("upload.max_bytes", "UPLOAD_MAX_BYTES")
	v.BindEnv("cache.type", "CACHE_TYPE")
	v.BindEnv("cache.ttl", "CACHE_TTL")
	v.BindEnv("cache.redis_db", "CACHE_REDIS_DB")
	v.BindEnv("cors.allowed_origins", "CORS_ALLOWED_ORIGINS")

	v.BindEnv("mail.enabled", "MAIL_ENABLED")
	v.BindEnv("mail.smtp_host", "MAIL_SMTP_HOST")
	v.BindEnv("mail.smtp_port", "MAIL_SMTP_PORT")
	v.BindEnv("mail.username", "MAIL_USERNAME")
	v.BindEnv("mail.password", "MAIL_PASSWORD")
	v.BindEnv("mail.use_tls", "MAIL_USE_TLS")
	v.BindEnv("mail.from_email", "MAIL_FROM_EMAIL")
	v.BindEnv("mail.from_name", "MAIL_FROM_NAME")
	v.BindEnv("mail.owner_to", "MAIL_OWNER_TO")

	v.BindEnv("backup.enabled", "BACKUP_ENABLED")
	v.BindEnv("backup.schedule", "BACKUP_SCHEDULE")
	v.BindEnv("backup.folder", "BACKUP_FOLDER")
	v.BindEnv("jaeger.otlp_endpoint", "OTEL_EXPORTER_OTLP_ENDPOINT")
	v.BindEnv("web.dist_dir", "WEB_DIST_DIR")

	err = v.Unmarshal(&cfg)
	if err != nil {
		return
	}

	// KAFKA_BROKERS / CORS_ALLOWED_ORIGINS có thể là chuỗi "a,b"
	cfg.Kafka.Brokers = splitCSV(cfg.Kafka.Brokers)
	cfg.CORS.AllowedOrigins = splitCSV(cfg.CORS.AllowedOrigins)
	return
}

func splitCSV(in []string) []string {
	out := make([]string, 0, len(in))
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
