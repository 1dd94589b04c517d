// Package imageboard is the client side of the read-only imageboard JSON API.
//
// It knows four resources (the boards list, one page of a board, a single
// thread and a board's archive), fetches them over HTTP and classifies every
// failure into a FetchError whose Kind tells the caller whether the problem
// was connectivity, a non-2xx answer, a timeout, a cancellation or a payload
// that could not be decoded.
//
// A Client bounds every fetch with a timeout, rate limits requests to follow
// the API's etiquette and retries transport errors and 5xx answers through
// go-retryablehttp:
//
//	client := imageboard.NewClient(imageboard.ClientConfig{
//	    BaseURL: "https://a.4cdn.org",
//	    Timeout: 10 * time.Second,
//	})
//	raw, err := client.Fetch(ctx, imageboard.ThreadPage("g", 1))
//	if err != nil {
//	    // imageboard.KindOf(err) == imageboard.ErrorRemote, ...
//	}
//	summaries, err := imageboard.DecodeThreadPage(imageboard.ThreadPage("g", 1), raw)
package imageboard
