// Package delivery waits for server-side work to complete by polling.
//
// Hovercode renders the PNG and SVG files of a QR code asynchronously, so a
// freshly created code may not list its file URLs yet. A [Poller] re-fetches
// a resource until a [Matcher] accepts it, using adaptive backoff to reduce
// API calls while nothing changes.
//
// # Usage
//
//	p := delivery.NewPoller(delivery.Config{InitialInterval: time.Second})
//	qr, err := p.Wait(ctx,
//	    func(ctx context.Context) (map[string]any, error) {
//	        return fetchCode(ctx, id)
//	    },
//	    func(qr map[string]any) bool {
//	        return qr["png"] != nil
//	    },
//	)
//
// # Backoff
//
// The first fetch happens immediately. After each fetch that does not match,
// the interval grows by BackoffMultiplier up to MaxBackoff, and random jitter
// of up to JitterFactor times the interval is added so that many clients do
// not poll in lockstep.
//
// # Cancellation
//
// Wait returns ctx.Err() as soon as the context is done. Fetch errors end the
// wait immediately; transient failures are already retried by the transport.
package delivery
