package env

// MinioConfig locates the object store holding catalogs and archives.
type MinioConfig struct {
	Endpoint      string `env:"MINIO_ENDPOINT,required"`
	AccessKey     string `env:"MINIO_ACCESS_KEY,required"`
	SecretKey     string `env:"MINIO_SECRET_KEY,required"`
	UseSSL        bool   `env:"MINIO_USE_SSL" envDefault:"false"`
	CatalogBucket string `env:"MINIO_CATALOG_BUCKET" envDefault:"locshare-i18n"`
	ArchiveBucket string `env:"MINIO_ARCHIVE_BUCKET" envDefault:"locshare-locations"`
}

type KafkaConfig struct {
	Broker  string `env:"KAFKA_BROKER,required"`
	Topic   string `env:"KAFKA_TOPIC" envDefault:"location.saved"`
	GroupID string `env:"KAFKA_GROUP_ID" envDefault:"locshare-enricher"`
}

// ServerConfig configures cmd/server.
type ServerConfig struct {
	Addr            string   `env:"LOCSHARE_ADDR" envDefault:":8080"`
	DatabaseURL     string   `env:"DATABASE_URL,required"`
	AllowedOrigins  []string `env:"LOCSHARE_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	DefaultLanguage string   `env:"LOCSHARE_DEFAULT_LANGUAGE" envDefault:"english"`
	LogJSON         bool     `env:"LOCSHARE_LOG_JSON" envDefault:"false"`
	Minio           MinioConfig
	Kafka           KafkaConfig
}

// EnricherConfig configures cmd/enricher.
type EnricherConfig struct {
	NominatimURL string `env:"NOMINATIM_URL" envDefault:"https://nominatim.openstreetmap.org"`
	UserAgent    string `env:"NOMINATIM_USER_AGENT" envDefault:"locshare-enricher/1.0"`
	Minio        MinioConfig
	Kafka        KafkaConfig
}

// SeederConfig configures cmd/seeder.
type SeederConfig struct {
	Overwrite bool `env:"SEED_OVERWRITE" envDefault:"false"`
	Minio     MinioConfig
}
