package hovercode_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"

	hovercode "github.com/hovercode/client-go"
)

func ExampleNew() {
	client, err := hovercode.New("your-api-token",
		hovercode.WithEnvironment(map[string]string{}),
		hovercode.WithRetries(5),
	)
	if err != nil {
		panic(err)
	}
	defer client.Close()

	fmt.Println(client.BaseURL(), client.MaxRetries())
	// Output: https://hovercode.com/api/v2 5
}

func ExampleHovercodes_Create() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"0f9e1c2a","qr_data":"https://example.com","dynamic":true}`))
	}))
	defer server.Close()

	client, err := hovercode.New("your-api-token", hovercode.WithBaseURL(server.URL))
	if err != nil {
		panic(err)
	}

	qr, err := client.Hovercodes().Create(context.Background(), hovercode.CreateParams{
		Workspace: "YOUR-WORKSPACE-ID",
		QRData:    "https://example.com",
		Dynamic:   hovercode.Some(true),
		Pattern:   hovercode.Some(hovercode.PatternDiamonds),
	})
	if err != nil {
		panic(err)
	}

	fmt.Println(qr["id"])
	// Output: 0f9e1c2a
}

func ExampleAPIError() {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"Not found."}`))
	}))
	defer server.Close()

	client, _ := hovercode.New("your-api-token", hovercode.WithBaseURL(server.URL))

	_, err := client.Hovercodes().Get(context.Background(), "missing")

	var apiErr *hovercode.APIError
	if errors.As(err, &apiErr) && errors.Is(err, hovercode.ErrNotFound) {
		fmt.Println(apiErr.StatusCode, apiErr.Payload)
	}
	// Output: 404 map[detail:Not found.]
}

func ExampleVerifySignature() {
	secret := "webhook-secret"
	body := []byte(`{"qr_code_id":"0f9e1c2a"}`)
	signature := hovercode.ComputeSignature(secret, body)

	fmt.Println(hovercode.VerifySignature(secret, body, signature))
	fmt.Println(hovercode.VerifySignature(secret, body, "forged"))
	// Output:
	// true
	// false
}
