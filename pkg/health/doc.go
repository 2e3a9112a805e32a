// Package health serves liveness and readiness probes.
//
// [LivenessHandler] always answers OK while the process runs.
// [ReadinessHandler] runs a set of named [Checks] concurrently and answers
// 503 when any of them fails:
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//		"mailer": m.Healthcheck,
//	}, health.WithTimeout(2*time.Second)))
//
// Responses are plain text ("OK" or "Service Unavailable") unless the client
// sends Accept: application/json or ?format=json, in which case the per-check
// breakdown is returned:
//
//	{"status":"unhealthy","checks":{"mailer":{"status":"unhealthy","error":"mailer: sender is not configured"}}}
package health
