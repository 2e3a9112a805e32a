// Package middlewares provides the HTTP middleware used by mailform.
//
// RequestID, Recover and RequestLogger are framework middlewares registered
// with WithMiddleware. CORS is a plain net/http middleware backed by
// go-chi/cors and is registered with WithHTTPMiddleware so that preflight
// requests are answered before routing:
//
//	app := mailform.New(
//		mailform.WithLogger(log),
//		mailform.WithHTTPMiddleware(middlewares.CORS(middlewares.WithAllowOrigins(origins...))),
//		mailform.WithMiddleware(
//			middlewares.RequestID(),
//			middlewares.RequestLogger(),
//			middlewares.Recover(),
//		),
//	)
//
// Pair RequestIDExtractor with the logger to put request_id on every log line:
//
//	log := logger.NewWithConfig(cfg.Log, middlewares.RequestIDExtractor())
//
// Recover converts panics into *PanicError, which the application error
// handler renders as a 500 response.
package middlewares
