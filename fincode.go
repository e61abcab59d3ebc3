// Package fincode provides a Go client for the fincode payment API.
//
// Every resource is reached through a Client, which carries the API key,
// environment and transport settings. Calls either return the decoded
// response or an error that is a *ProviderError (the API answered with a
// non-2xx status), a *TransportError (no usable response) or a
// *ConfigurationError (the request could not be built).
//
// Basic usage:
//
//	client, err := fincode.NewClient("sk_test_xxxxx")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	customer, err := client.Customers.Create(ctx, fincode.CustomerRequest{
//	    Name:  "Taro Yamada",
//	    Email: "taro@example.com",
//	}, nil)
//	if err != nil {
//	    var perr *fincode.ProviderError
//	    if errors.As(err, &perr) {
//	        log.Printf("%s: %s", perr.Category(), perr.Message())
//	    }
//	}
package fincode

// Version is the SDK version.
const Version = "0.1.0"
