package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/totomace/VitaZen-sub000/models"
	"github.com/totomace/VitaZen-sub000/utils"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Config struct {
	Port string `mapstructure:"port"`

	DBDriver   string `mapstructure:"db_driver"` // "postgres" | "sqlite"
	DBHost     string `mapstructure:"db_host"`
	DBUser     string `mapstructure:"db_user"`
	DBPassword string `mapstructure:"db_password"`
	DBName     string `mapstructure:"db_name"`
	DBPort     string `mapstructure:"db_port"`
	DBSSLMode  string `mapstructure:"db_sslmode"`
	SQLitePath string `mapstructure:"sqlite_path"`

	JWTSecret string `mapstructure:"jwt_secret"`

	AWSRegion     string `mapstructure:"aws_region"`
	S3Region      string `mapstructure:"s3_region"`
	S3Bucket      string `mapstructure:"s3_bucket"`
	CloudFrontURL string `mapstructure:"cloudfront_url"`
	SESEmail      string `mapstructure:"ses_email"`
	SNSFCMArn     string `mapstructure:"sns_fcm_arn"`

	RedisAddr     string `mapstructure:"redis_addr"`
	RedisPassword string `mapstructure:"redis_password"`

	SchedulerTick time.Duration `mapstructure:"scheduler_tick"`
	Timezone      string        `mapstructure:"timezone"`
}

var defaults = map[string]any{
	"port":           "8080",
	"db_driver":      "postgres",
	"db_host":        "localhost",
	"db_user":        "postgres",
	"db_password":    "",
	"db_name":        "vitazen",
	"db_port":        "5432",
	"db_sslmode":     "disable",
	"sqlite_path":    "vitazen.db",
	"jwt_secret":     "",
	"aws_region":     "ap-south-1",
	"s3_region":      "",
	"s3_bucket":      "",
	"cloudfront_url": "",
	"ses_email":      "",
	"sns_fcm_arn":    "",
	"redis_addr":     "",
	"redis_password": "",
	"scheduler_tick": "30s",
	"timezone":       "Local",
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		utils.LogDebug("no .env file loaded: %v", err)
	}

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.S3Region == "" {
		cfg.S3Region = cfg.AWSRegion
	}
	if cfg.SchedulerTick <= 0 {
		cfg.SchedulerTick = 30 * time.Second
	}
	return &cfg, nil
}

// Location resolves the configured timezone used for day buckets and reminder clocks.
func (c *Config) Location() *time.Location {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		utils.LogError("unknown timezone %q, falling back to local: %v", c.Timezone, err)
		return time.Local
	}
	return loc
}

func (c *Config) postgresDSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode)
}

// InitDB opens the configured database and migrates every table.
func InitDB(cfg *Config) (*gorm.DB, error) {
	db, err := OpenDB(cfg)
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	utils.LogSuccess("connected to %s database", cfg.DBDriver)
	return db, nil
}

// OpenDB connects without touching the schema; short-lived workers use it
// against a database the API has already migrated.
func OpenDB(cfg *Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dialector = postgres.Open(cfg.postgresDSN())
	case "sqlite":
		dialector = sqlite.Open(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, GormConfig(logger.Warn))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// GormConfig stamps every autoupdated column in UTC. sqlite compares
// times as text, so rows must share one offset.
func GormConfig(level logger.LogLevel) *gorm.Config {
	return &gorm.Config{
		Logger:  logger.Default.LogMode(level),
		NowFunc: func() time.Time { return time.Now().UTC() },
	}
}

// Migrate creates or updates the schema. Users go first so the history FK resolves.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}); err != nil {
		return fmt.Errorf("AutoMigrate users failed: %w", err)
	}
	err := db.AutoMigrate(
		&models.HealthData{},
		&models.HealthHistory{},
		&models.History{},
		&models.Note{},
		&models.Reminder{},
		&models.WaterLog{},
		&models.DailyGoal{},
		&models.UserDevice{},
		&models.Notification{},
	)
	if err != nil {
		return fmt.Errorf("AutoMigrate failed: %w", err)
	}
	return nil
}
