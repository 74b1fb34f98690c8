// Package pixhaven provides a client for the PixHaven image server API.
//
// The client wraps every endpoint of the image API behind typed methods and
// normalizes all failures into a single classified error type, so callers
// can show a human-readable message without inspecting transport details.
//
// # Usage
//
// Create a client with the server address, a credential store, and a logger:
//
//	store := auth.NewFileStore(credentialsPath)
//	client, err := pixhaven.NewClient(
//		"http://localhost:4000",
//		store,
//		logger,
//		pixhaven.WithTimeout(30*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	images, err := client.GetAllImages(ctx, pixhaven.ImageFilter{Category: "wallpapers"})
//
// # Error handling
//
// Every request failure is an *APIError with a Kind:
//
//   - KindTimeout: the 30-second request timer fired
//   - KindNetwork: the transport could not reach the network
//   - KindHTTPStatus: the server answered with a non-2xx status
//   - KindDecode: a success response body could not be decoded
//   - KindTransport: any other transport failure, passed through
//
// The error message alone is suitable for display:
//
//	var apiErr *pixhaven.APIError
//	if errors.As(err, &apiErr) && apiErr.IsUnauthorized() {
//		// prompt for login
//	}
//
// The client never retries and keeps no state between calls; the only thing
// it reads besides its own configuration is the bearer token from the
// injected credential store.
package pixhaven
