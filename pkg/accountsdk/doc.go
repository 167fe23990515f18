// Package accountsdk is a typed Go client for the accounts service HTTP API.
//
// The zero-dependency types in this package double as the wire contract for
// the service itself: handlers encode them, the client decodes them.
//
// Basic usage:
//
//	client := accountsdk.NewClient("http://localhost:8080")
//	auth, err := client.Login(ctx, "jordan@example.com", "Sunrise99")
//	if err != nil {
//		// *accountsdk.APIError carries the status code and server message
//	}
//	session := client.WithToken(auth.Token)
//	me, err := session.Me(ctx)
package accountsdk
