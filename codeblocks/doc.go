// Package codeblocks is a small SDK for declaring HTTP API code blocks.
//
// A code block is an [API] with a set of routes, each mapping HTTP verbs to
// handlers:
//
//	api := codeblocks.NewAPI(codeblocks.WithTitle("Hello"))
//	err := api.AddRoute("/hello", codeblocks.Handlers{
//		"GET": codeblocks.HandlerFunc(func(r *http.Request, args codeblocks.Args) (any, error) {
//			return "hi", nil
//		}),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	log.Fatal(api.Run("0.0.0.0", 5000, false))
//
// Every API serves /healthz, a ReDoc page on /doc backed by the generated
// OpenAPI document on /doc/openapi.json, and Prometheus metrics on
// /metrics. Verbs can be gated by an [AuthCodeBlock]; by default POST, PUT
// and DELETE are gated once the API has one.
//
// Storage code blocks ([DataStorage], [PersistentDataStorage],
// [BlobStorage] and [SQL]) cover key/value, blob and relational data.
package codeblocks
