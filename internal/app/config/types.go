package config

type (
	InternalConfig struct {
		App App
	}

	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		Minio    Minio
		Logger   Logger
	}

	App struct {
		Env                       string
		Port                      string
		EndpointPrefix            string
		MaxRequests               int
		MaxTimeRequestsPerSeconds int
		ShutdownTimeoutInSeconds  int

		// TeamEndpointSuffix is appended to a team's base URL when posting
		// generated inputs, e.g. "/mailtime".
		TeamEndpointSuffix         string
		TeamCallTimeoutInSeconds   int
		TeamRequestsPerSecond      int
		CallbackTimeoutInSeconds   int
		CoordinatorAuthToken       string
		EvaluationLockTTLInMinutes int
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
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port       string
		Host       string
		Username   string
		Password   string
		BucketName string
		UseSSL     bool
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
