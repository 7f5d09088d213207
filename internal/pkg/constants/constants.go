package constants

const (
	ViperAPIBaseURLKey       = "api.base_url"
	ViperAPITokenKey         = "api.token"
	ViperAPITimeoutKey       = "api.timeout"
	ViperAPIMaxRetriesKey    = "api.max_retries"
	ViperAPIRetryIntervalKey = "api.retry_interval"
	ViperAPIUserAgentKey     = "api.user_agent"

	ViperStoreDriverKey      = "store.driver"
	ViperStoreRootKey        = "store.root"
	ViperStoreS3BucketKey    = "store.s3.bucket"
	ViperStoreS3RegionKey    = "store.s3.region"
	ViperStoreS3EndpointKey  = "store.s3.endpoint"
	ViperStoreS3PathStyleKey = "store.s3.path_style"

	ViperServerAddrKey         = "server.addr"
	ViperSecretKey             = "server.secret"
	ViperServerAllowOriginsKey = "server.allow_origins"

	ViperLogLevelKey  = "log.level"
	ViperLogFormatKey = "log.format"

	EnvPrefix = "PERDASH"
)

const CookieKeySecretToken = "perdash_admin_token"

// Raw inputs, as fetched from the GO API.
const (
	DatasetStatus         = "per-status.json"
	DatasetCountries      = "countries.json"
	DatasetPrioritization = "prioritization.json"
	DatasetAssessments    = "per-assessments.json"
	DatasetOverview       = "per-overview.json"
)

// Derived outputs.
const (
	DatasetMapData               = "map-data.json"
	DatasetComponentDescriptions = "component-descriptions.json"
	DatasetAssessmentsProcessed  = "per-assessments-processed.json"
	DatasetDashboard             = "per-dashboard-data.json"
	DatasetLastUpdate            = "last-update.json"
)

const JSONContentType = "application/json"
