package constants

// Redis key formats
const (
	KeyDataset     = "planner:dataset:%s"      // Format: planner:dataset:{dataset_id}
	KeyUploadQuota = "planner:ratelimit:%s:%s" // Format: planner:ratelimit:{route}:{client_ip}
	KeyHealthProbe = "planner:health:probe"    // Written and read back by the cache health check
)
