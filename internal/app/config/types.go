package config

type (
	InternalConfig struct {
		App         App
		CMS         CMS
		AnswerStore AnswerStore
		JWT         JWT
	}

	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Minio    Minio
		RabbitMQ RabbitMQ
		Logger   Logger
	}

	App struct {
		Env                        string
		Port                       string
		Version                    string
		Timezone                   string
		EndpointPrefix             string
		MaxRequests                int
		ShutdownTimeout            int
		RequestTimeoutInSeconds    int
		JourneyContextTTLInMinutes int
		StatusEventQueue           string
		SuperadminAPIKeyBcryptHash string
		DocumentBucketName         string
	}

	CMS struct {
		BaseUrl           string
		RequestsPerSecond int
	}

	AnswerStore struct {
		BaseUrl string
	}

	JWT struct {
		Secret      string
		ExpiryHours int
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	Minio struct {
		Port     string
		Host     string
		Username string
		Password string
		UseSSL   bool
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
