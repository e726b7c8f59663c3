// Package coach provides an HTTP client for the remote coaching API.
//
// # Overview
//
// This package defines the API client for communicating with the fitness
// coaching backend. It handles HTTP communication, JSON serialization, and
// type-safe representation of daily records, goals, conversations, and
// coach-generated recommendations.
//
// # Architecture
//
// The package is split into two files:
//
//   - client.go: HTTP client implementation and request/response handling
//   - types.go: Data structures mirroring the coach API schema
//
// # Client Usage
//
// Create a client using the base URL from configuration:
//
//	client, err := coach.NewClient("127.0.0.1:8000")
//	if err != nil {
//		log.Fatalf("failed to create client: %v", err)
//	}
//
//	// Fetch today's daily records
//	records, err := client.DailyByDate(ctx, "2016-04-09", userID)
//	if err != nil {
//		log.Printf("daily fetch failed: %v", err)
//	}
//
// # API Endpoints
//
// Read endpoints:
//
//   - GET /data/daily_data/by-date: Daily summary records for one date
//   - GET /data/daily_data/week-back: Trailing week of daily records
//   - GET /data/daily_data/sleep-week-back: Trailing week of sleep records
//   - GET /data/weight_log/week-back: Trailing week of weight records
//   - GET /data/hourly_merged/by-date: Hour-grained samples for one date
//   - GET /data/heartrate/minute: Minute-grained heart rate series
//   - GET /data/goals/{user}[/{metric}]: Stored goals
//   - GET /data/conversation_subjects/{user}: Paged conversation list
//   - GET /data/conversation_messages/{id}: Full conversation history
//   - GET /chat/recommendations, /chat/suggested_questions, /chat/detail
//
// Mutation endpoints:
//
//   - POST /data/goals/{user}/{metric}?goal_value=: Create or update a goal
//   - POST /data/weight_log/add: Append a weight log entry
//   - POST /chat/chat: Send one chat message, receive the coach reply
//
// # Request Handling
//
// All requests:
//   - Use context for cancellation and timeout control
//   - Set Accept: application/json (and Content-Type for POST bodies)
//   - Include User-Agent: stride/0.1 header
//   - Have a 10-second timeout (configurable via http.Client)
//   - Return wrapped errors with context about what failed
//
// # Error Handling
//
// Non-2xx responses are returned as *APIError. When the body carries a
// FastAPI-style {"detail": "..."} payload, the detail message is preserved
// so mutation handlers can surface it to the user. Network and decode
// failures are wrapped with fmt.Errorf.
//
// # Thread Safety
//
// The Client struct is safe for concurrent use. Screens routinely issue
// several requests in parallel (fan-out/fan-in joins); the underlying
// http.Client handles connection pooling internally.
//
// # Design Rationale
//
// The package is intentionally minimal:
//   - No caching (the snapshot cache lives a layer above)
//   - No retries (the UI decides retry policy)
//   - No streaming (request/response is sufficient)
package coach
