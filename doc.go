// Package hovercode provides a Go client for the Hovercode API, which
// creates and manages static and dynamic QR codes.
//
// Basic usage:
//
//	client, err := hovercode.New("your-api-token")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	qr, err := client.Hovercodes().Create(ctx, hovercode.CreateParams{
//	    Workspace: "YOUR-WORKSPACE-ID",
//	    QRData:    "https://example.com",
//	    Dynamic:   hovercode.Some(true),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Created:", qr["id"])
//
// An empty token is read from HOVERCODE_API_TOKEN. The timeout, retry count
// and retry backoff likewise fall back to HOVERCODE_TIMEOUT_SECONDS,
// HOVERCODE_MAX_RETRIES and HOVERCODE_RETRY_BACKOFF_SECONDS; malformed values
// are ignored. Use WithDotenv to load these from a .env file.
//
// Failed calls return an *APIError or a *NetworkError. Match them with
// errors.Is against ErrNotFound, ErrRateLimited, ErrServer and the other
// sentinels, or with errors.As to read the status code and response payload.
//
// Rendered PNG and SVG files appear some time after creation. WaitForFiles
// polls until they are available:
//
//	qr, err = client.Hovercodes().WaitForFiles(ctx, qr["id"].(string))
//
// Webhook requests are verified with VerifyRequest or VerifySignature.
package hovercode
