package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY ContextKey = "request_id"
)

const (
	ResourceMailtime    = "mailtime"
	ResourceExample     = "example"
	ResourceEvaluate    = "evaluate"
	ResourceCoordinator = "coordinator"
	ResourceRuns        = "runs"
)

const (
	URLParamRunID = "run_id"
)

const (
	RedisKeyEvaluationLockFormat = "mailtime:evaluation-lock:%s"
)

const (
	MongoCollectionRuns = "evaluation_runs"
)

const (
	ArtifactObjectNameFormat = "runs/%s/%s.json"
)

const (
	SubjectReplyPrefix = "RE: "
)
