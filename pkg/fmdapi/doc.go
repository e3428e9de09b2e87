// Package fmdapi is a client for the FileMaker Data API: record
// create/read/update/delete/find over named layouts in one database.
//
// # Authentication
//
// Two mutually exclusive modes, fixed at construction:
//
//   - Username/Password: the client creates a Data API session lazily on
//     first use and caches its token. Concurrent first calls share a
//     single login. Disconnect ends the session.
//   - APIKey: requests route through the Otto Data API proxy (port 3030
//     unless OttoPort is set) and the key itself authorizes every call.
//     No session exists; Disconnect fails with ErrNoSession.
//
// The client does not retry failed requests and does not refresh the
// token behind a failing call; an expired session surfaces as an
// *APIError and the next client created (or an explicit Disconnect
// followed by any operation) logs in again.
//
// # Errors
//
// Any non-2xx API response is normalized into *APIError carrying the
// FileMaker error code from the response envelope ("500" when the body
// is unparseable). Local contract failures (missing layout, FindOne
// count mismatch, Disconnect under an API key) are *Error values
// wrapping the package sentinels and never reach the network.
//
// The single deliberate exception: Find with IgnoreEmptyResult treats
// FileMaker error 401, "no records match the request", as an empty
// result set. FindOne and FindFirst rely on this internally.
//
// # Usage
//
//	client, err := fmdapi.New(&fmdapi.Config{
//		Server:   "https://fms.example.com",
//		Database: "Sales",
//		Username: "api",
//		Password: "secret",
//		Layout:   "Contacts",
//	})
//	if err != nil {
//		return err
//	}
//	defer client.Disconnect(ctx)
//
//	rec, err := client.FindOne(ctx, fmdapi.FindParams{
//		Query: map[string]any{"Email": "ada@example.com"},
//	})
package fmdapi
