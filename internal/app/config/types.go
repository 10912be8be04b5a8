package config

type (
	InternalConfig struct {
		App           App
		RecordService RecordService
	}

	DriverConfig struct {
		Redis  Redis
		Logger Logger
	}

	App struct {
		Env                       string
		Port                      string
		Version                   string
		Timezone                  string
		EndpointPrefix            string
		MaxRequests               int
		ShutdownTimeout           int
		MutationQuotaPerWindow    int
		MutationWindowDurationSec int
	}

	RecordService struct {
		BaseUrl string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
