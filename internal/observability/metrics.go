package observability

const (
	MUsecaseRequests      MetricKey = "usecase_requests_total"
	MUsecaseDuration      MetricKey = "usecase_duration_seconds"
	MHTTPRequests         MetricKey = "http_requests_total"
	MHTTPRequestDuration  MetricKey = "http_request_duration_seconds"
	MNotifyPublishFailed  MetricKey = "notification_publish_failed_total"
	MNotifyPublishDropped MetricKey = "notification_publish_dropped_total"
)
